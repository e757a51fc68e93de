package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"produktmanager/internal/csv"
	"produktmanager/internal/store"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var ErrUnknownCollection = errors.New("unknown collection")

type Service struct {
	repo *store.Repository
}

func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// ValidFormat reports whether format is json or csv.
func ValidFormat(format string) bool {
	return format == FormatJSON || format == FormatCSV
}

func (s *Service) BackupCollection(collectionName, outputDir, format string) (string, error) {
	if !ValidFormat(format) {
		return "", fmt.Errorf("invalid format: %s. Use 'json' or 'csv'", format)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("backup_%s_%s.%s", collectionName, timestamp, format)
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if err := s.Export(collectionName, file, format); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("backup failed: %w", err)
	}

	return path, nil
}

func (s *Service) BackupAll(outputDir, format string) ([]string, error) {
	var backupFiles []string
	for _, collection := range store.Collections {
		backupFile, err := s.BackupCollection(collection, outputDir, format)
		if err != nil {
			return backupFiles, fmt.Errorf("failed to backup collection %s: %w", collection, err)
		}
		backupFiles = append(backupFiles, backupFile)
	}
	return backupFiles, nil
}

// Export writes a whole collection to w, as the stored JSON array or as CSV.
// JSON exports carry every stored object unchanged.
func (s *Service) Export(collectionName string, w io.Writer, format string) error {
	if !slices.Contains(store.Collections, collectionName) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collectionName)
	}
	if format == FormatJSON {
		records, err := s.repo.Raw(collectionName)
		if err != nil {
			return err
		}
		return writeJSON(w, records)
	}

	if lossyFormat(collectionName, format) {
		log.Printf("WARNING: %s as %s leaves out Nährwerttabelle and values that are not numbers", collectionName, format)
	}
	switch collectionName {
	case store.BooksCollection:
		books, err := s.repo.Books()
		if err != nil {
			return err
		}
		return csv.WriteBooks(w, books)
	default:
		foods, err := s.repo.Foods()
		if err != nil {
			return err
		}
		return csv.WriteFoods(w, foods)
	}
}

// lossyFormat reports whether format cannot hold every field of the
// collection.
func lossyFormat(collectionName, format string) bool {
	return format == FormatCSV && collectionName == store.FoodsCollection
}

func writeJSON[T any](w io.Writer, records []T) error {
	data, err := store.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// RestoreCollection replaces the collection with the records of inputFile and
// returns how many were restored. CSV backups carry no nutrition tables.
func (s *Service) RestoreCollection(collectionName, inputFile, format string) (int, error) {
	if !slices.Contains(store.Collections, collectionName) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collectionName)
	}
	if format == FormatJSON {
		records, err := store.Load[json.RawMessage](inputFile)
		if err != nil {
			return 0, fmt.Errorf("restore failed: %w", err)
		}
		return len(records), s.repo.ReplaceRaw(collectionName, records)
	}

	switch collectionName {
	case store.BooksCollection:
		books, _, err := csv.NewParser(inputFile).ParseBooks()
		if err != nil {
			return 0, fmt.Errorf("restore failed: %w", err)
		}
		return len(books), s.repo.ReplaceBooks(books)
	default:
		foods, _, err := csv.NewParser(inputFile).ParseFoods()
		if err != nil {
			return 0, fmt.Errorf("restore failed: %w", err)
		}
		return len(foods), s.repo.ReplaceFoods(foods)
	}
}

func (s *Service) ValidateBackupFile(filename, expectedFormat string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open backup file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("cannot get file info: %w", err)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("backup file is empty")
	}

	extension := filepath.Ext(filename)
	if expectedFormat == FormatJSON && extension != ".json" {
		return fmt.Errorf("expected JSON file but got %s", extension)
	}
	if expectedFormat == FormatCSV && extension != ".csv" {
		return fmt.Errorf("expected CSV file but got %s", extension)
	}

	return nil
}

// FormatFromFilename derives the format from the file extension.
func FormatFromFilename(filename string) (string, error) {
	switch extension := filepath.Ext(filename); extension {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("cannot auto-detect format from extension '%s'", extension)
	}
}

// CollectionFromFilename reads the collection out of a name written by
// BackupCollection, backup_<collection>_<date>_<time>.<ext>.
func CollectionFromFilename(filename string) string {
	basename := filepath.Base(filename)
	if !strings.HasPrefix(basename, "backup_") {
		return ""
	}
	parts := strings.Split(basename, "_")
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}
