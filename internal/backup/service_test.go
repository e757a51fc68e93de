package backup

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"produktmanager/internal/models"
	"produktmanager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *store.Repository) {
	t.Helper()
	repo := store.NewRepository(filepath.Join(t.TempDir(), "Produktliste"))
	require.NoError(t, repo.Init())
	return NewService(repo), repo
}

func TestBackupCollection_JSON(t *testing.T) {
	s, repo := newService(t)
	require.NoError(t, repo.AppendBook(models.Book{Title: models.Text("Anna")}))

	outputDir := filepath.Join(t.TempDir(), "backups")
	path, err := s.BackupCollection(store.BooksCollection, outputDir, FormatJSON)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(path), "backup_buecher_"))
	assert.Equal(t, ".json", filepath.Ext(path))

	backupData, err := os.ReadFile(path)
	require.NoError(t, err)
	original, err := os.ReadFile(repo.BooksPath())
	require.NoError(t, err)
	assert.Equal(t, string(original), string(backupData))
}

func TestBackupCollection_Invalid(t *testing.T) {
	s, _ := newService(t)
	outputDir := t.TempDir()

	_, err := s.BackupCollection(store.BooksCollection, outputDir, "bson")
	assert.Error(t, err)

	_, err = s.BackupCollection("zeitschriften", outputDir, FormatJSON)
	assert.ErrorIs(t, err, ErrUnknownCollection)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed backups leave no file behind")
}

func TestBackupAll(t *testing.T) {
	s, _ := newService(t)

	files, err := s.BackupAll(t.TempDir(), FormatCSV)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, store.BooksCollection, CollectionFromFilename(files[0]))
	assert.Equal(t, store.FoodsCollection, CollectionFromFilename(files[1]))
}

func TestRestoreCollection_JSON(t *testing.T) {
	s, repo := newService(t)

	drink := models.NewFood(models.KindDrink)
	drink.Brand = models.Text("Quelle")
	drink.Nutrition = &models.NutritionTable{}
	food := models.NewFood(models.KindFood)
	food.Brand = models.Text("Alpro")
	require.NoError(t, repo.AppendFood(drink))
	require.NoError(t, repo.AppendFood(food))

	path, err := s.BackupCollection(store.FoodsCollection, t.TempDir(), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, s.ValidateBackupFile(path, FormatJSON))

	require.NoError(t, repo.ReplaceFoods(nil))
	count, err := s.RestoreCollection(store.FoodsCollection, path, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	foods, err := repo.Foods()
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Alpro", models.Deref(foods[0].Brand))
	assert.Equal(t, drink, foods[1])
}

func TestRestoreCollection_CSV(t *testing.T) {
	s, repo := newService(t)
	require.NoError(t, repo.AppendBook(models.Book{Title: models.Text("Ben")}))
	require.NoError(t, repo.AppendBook(models.Book{Title: models.Text("Anna"), Price: models.Num(9.99)}))

	path, err := s.BackupCollection(store.BooksCollection, t.TempDir(), FormatCSV)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceBooks(nil))
	count, err := s.RestoreCollection(store.BooksCollection, path, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	books, err := repo.Books()
	require.NoError(t, err)
	assert.Equal(t, "Anna", models.Deref(books[0].Title))
	assert.Equal(t, models.Number(9.99), *books[0].Price)
}

func TestRestoreCollection_CorruptBackup(t *testing.T) {
	s, repo := newService(t)
	require.NoError(t, repo.AppendBook(models.Book{Title: models.Text("Anna")}))

	path := filepath.Join(t.TempDir(), "backup_buecher_20240101_120000.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0644))

	_, err := s.RestoreCollection(store.BooksCollection, path, FormatJSON)
	assert.Error(t, err)

	books, err := repo.Books()
	require.NoError(t, err)
	assert.Len(t, books, 1, "collection is untouched")
}

func TestRestoreCollection_KeepsUnknownFields(t *testing.T) {
	s, repo := newService(t)
	stored := `[{"Titel":"Zeta","Notiz":"keep me","Erscheinungsjahr":"2019"}]`
	require.NoError(t, os.WriteFile(repo.BooksPath(), []byte(stored), 0644))

	path, err := s.BackupCollection(store.BooksCollection, t.TempDir(), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceBooks(nil))

	count, err := s.RestoreCollection(store.BooksCollection, path, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(repo.BooksPath())
	require.NoError(t, err)
	assert.JSONEq(t, stored, string(data))
}

func TestExport_CSVFoodsWarnsAboutDroppedFields(t *testing.T) {
	s, _ := newService(t)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	require.NoError(t, s.Export(store.BooksCollection, &out, FormatCSV))
	assert.Empty(t, logs.String())

	require.NoError(t, s.Export(store.FoodsCollection, &out, FormatCSV))
	assert.Contains(t, logs.String(), "WARNING: lebensmittel as csv leaves out Nährwerttabelle")

	logs.Reset()
	require.NoError(t, s.Export(store.FoodsCollection, &out, FormatJSON))
	assert.Empty(t, logs.String())
}

func TestValidateBackupFile(t *testing.T) {
	s, _ := newService(t)
	dir := t.TempDir()

	empty := filepath.Join(dir, "backup_buecher_1_2.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.Error(t, s.ValidateBackupFile(empty, FormatJSON))

	wrongExt := filepath.Join(dir, "backup_buecher_1_2.csv")
	require.NoError(t, os.WriteFile(wrongExt, []byte("Titel\n"), 0644))
	assert.Error(t, s.ValidateBackupFile(wrongExt, FormatJSON))
	assert.NoError(t, s.ValidateBackupFile(wrongExt, FormatCSV))

	assert.Error(t, s.ValidateBackupFile(filepath.Join(dir, "missing.json"), FormatJSON))
}

func TestFilenameHelpers(t *testing.T) {
	assert.Equal(t, "lebensmittel", CollectionFromFilename("/tmp/backup_lebensmittel_20240101_120000.json"))
	assert.Equal(t, "", CollectionFromFilename("lebensmittel.json"))

	format, err := FormatFromFilename("x.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	_, err = FormatFromFilename("x.bson")
	assert.Error(t, err)
}
