package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"produktmanager/internal/backup"
	"produktmanager/internal/models"
	"produktmanager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state, feeding input to
// stdin and returning what was written to stdout.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	dataDir = defaultDataDir()
	rootCmd.PersistentFlags().Lookup("dir").Changed = false
	importCollection = store.BooksCollection
	exportCollection = store.BooksCollection
	exportOutput = "-"
	backupCollection = ""
	backupFormat = backup.FormatJSON
	restoreFormat = ""
	restoreCollection = ""
	skipConfirmation = false

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_ExitImmediately(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Produktliste")

	out, err := execute(t, "0\n", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Programm beendet.")
	for _, name := range []string{store.BooksFile, store.FoodsFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}

func TestRoot_RecordsBook(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Produktliste")
	input := strings.Join([]string{"1", "Anna", "?", "Lena Muster", "?", "Roman", "2019", "Deutsch", "978-3", "12,50", "0"}, "\n") + "\n"

	_, err := execute(t, input, "--dir", dir)
	require.NoError(t, err)

	books, err := store.NewRepository(dir).Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Anna", models.Deref(books[0].Title))
	assert.Nil(t, books[0].Volume)
	assert.Equal(t, models.Number(12.5), *books[0].Price)
}

func TestRoot_EnvironmentSetsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Produktliste")
	t.Setenv("PRODUKTLISTE_DIR", dir)

	_, err := execute(t, "0\n")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, store.BooksFile))
}

func TestRoot_FlagBeatsEnvironment(t *testing.T) {
	envDir := filepath.Join(t.TempDir(), "env")
	flagDir := filepath.Join(t.TempDir(), "flag")
	t.Setenv("PRODUKTLISTE_DIR", envDir)

	_, err := execute(t, "0\n", "--dir", flagDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(flagDir, store.BooksFile))
	assert.NoDirExists(t, envDir)
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "heute")

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "produktmanager version 1.2.3 (built heute)\n", out)
}

func TestImportExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Produktliste")
	csvPath := filepath.Join(t.TempDir(), "buecher.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Titel,Autor\nBen,B\nAnna,A\n,\n"), 0644))

	_, err := execute(t, "", "import", "--dir", dir, "--csv", csvPath)
	require.NoError(t, err)

	out, err := execute(t, "", "export", "--dir", dir, "--collection", store.BooksCollection)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Anna,"))
	assert.True(t, strings.HasPrefix(lines[2], "Ben,"))
}

func TestImport_UnknownCollection(t *testing.T) {
	_, err := execute(t, "", "import", "--dir", t.TempDir(), "--csv", "x.csv", "--collection", "zeitschriften")
	assert.ErrorIs(t, err, backup.ErrUnknownCollection)
}

func TestBackupRestore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Produktliste")
	repo := store.NewRepository(dir)
	require.NoError(t, repo.Init())
	require.NoError(t, repo.AppendBook(models.Book{Title: models.Text("Anna")}))

	backupDir := t.TempDir()
	_, err := execute(t, "", "backup", "--dir", dir, "--output", backupDir, "--collection", store.BooksCollection)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(backupDir, "backup_buecher_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	require.NoError(t, repo.ReplaceBooks(nil))

	// declining leaves the collection alone
	_, err = execute(t, "n\n", "restore", "--dir", dir, "--input", files[0])
	require.NoError(t, err)
	books, err := repo.Books()
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = execute(t, "y\n", "restore", "--dir", dir, "--input", files[0])
	require.NoError(t, err)
	books, err = repo.Books()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Anna", models.Deref(books[0].Title))
}

func TestConfirmAction(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := confirmAction(strings.NewReader(tt.input), &out, "Weiter?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Weiter? (y/N): ", out.String())
	}
}

func TestCheckCollection(t *testing.T) {
	assert.NoError(t, checkCollection(store.BooksCollection))
	assert.NoError(t, checkCollection(store.FoodsCollection))
	assert.ErrorIs(t, checkCollection("zeitschriften"), backup.ErrUnknownCollection)
}
