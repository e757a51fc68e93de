package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"produktmanager/internal/backup"

	"github.com/spf13/cobra"
)

var (
	inputFile         string
	restoreFormat     string
	restoreCollection string
	skipConfirmation  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a collection from backup",
	Long:  "Replace a collection with the records of a JSON or CSV backup file",
	RunE:  runRestore,
}

func init() {
	restoreCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input backup file to restore (required)")
	restoreCmd.Flags().StringVarP(&restoreFormat, "format", "f", "", "Backup format: json or csv (auto-detected if not specified)")
	restoreCmd.Flags().StringVarP(&restoreCollection, "collection", "c", "", "Target collection (defaults to the collection named in the backup file)")
	restoreCmd.Flags().BoolVar(&skipConfirmation, "yes", false, "Skip confirmation prompts")

	restoreCmd.MarkFlagRequired("input")
}

func runRestore(cmd *cobra.Command, args []string) error {
	if inputFile == "" {
		return fmt.Errorf("input file is required")
	}

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", inputFile)
	}

	format := restoreFormat
	if format == "" {
		detected, err := backup.FormatFromFilename(inputFile)
		if err != nil {
			return fmt.Errorf("%w. Please specify --format", err)
		}
		format = detected
	}

	if !backup.ValidFormat(format) {
		return fmt.Errorf("invalid format: %s. Use 'json' or 'csv'", format)
	}

	targetCollection := restoreCollection
	if targetCollection == "" {
		targetCollection = backup.CollectionFromFilename(inputFile)
		if targetCollection == "" {
			return fmt.Errorf("cannot determine target collection name. Please specify --collection")
		}
	}
	if err := checkCollection(targetCollection); err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	if !skipConfirmation {
		log.Printf("About to restore:")
		log.Printf("  Source file: %s", inputFile)
		log.Printf("  Target collection: %s (%s)", targetCollection, repo.Dir())
		log.Printf("  Format: %s", format)
		log.Printf("  WARNING: Existing records of the collection will be REPLACED!")

		if !confirmAction(cmd.InOrStdin(), cmd.OutOrStdout(), "Do you want to continue?") {
			log.Println("Restore cancelled")
			return nil
		}
	}

	backupService := backup.NewService(repo)

	if err := backupService.ValidateBackupFile(inputFile, format); err != nil {
		return fmt.Errorf("backup file validation failed: %w", err)
	}

	log.Printf("Starting restore of collection '%s' from %s...", targetCollection, inputFile)

	count, err := backupService.RestoreCollection(targetCollection, inputFile, format)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	log.Printf("Restore completed successfully: %d records", count)
	return nil
}

func confirmAction(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s (y/N): ", message)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
