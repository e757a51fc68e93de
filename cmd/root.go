package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"produktmanager/internal/backup"
	"produktmanager/internal/manager"
	"produktmanager/internal/prompt"
	"produktmanager/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// dataDirName is the folder beside the executable that holds the collections.
const dataDirName = "Produktliste"

var (
	dataDir string

	version   string
	buildTime string
)

var rootCmd = &cobra.Command{
	Use:   "produktmanager",
	Short: "Interactive data entry for books and foods/drinks",
	Long: `Produktmanager asks for the details of books and foods/drinks and keeps
them in two sorted JSON files (buecher.json, lebensmittel.json).

Without a subcommand the interactive entry menu starts.`,
	RunE:          runEntry,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDataDir(), "Directory holding the collection files")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "produktmanager version %s (built %s)\n", version, buildTime)
		},
	})
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tuiCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	if v := os.Getenv("PRODUKTLISTE_DIR"); v != "" && !rootCmd.PersistentFlags().Changed("dir") {
		dataDir = v
	}
	if v := os.Getenv("DB_URI"); v != "" && !syncCmd.Flags().Changed("db-uri") {
		dbURI = v
	}
	if v := os.Getenv("DB_NAME"); v != "" && !syncCmd.Flags().Changed("database") {
		dbName = v
	}
}

// defaultDataDir places the collections beside the executable.
func defaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return dataDirName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), dataDirName)
}

func openRepository() (*store.Repository, error) {
	repo := store.NewRepository(dataDir)
	if err := repo.Init(); err != nil {
		return nil, fmt.Errorf("failed to prepare %s: %w", dataDir, err)
	}
	return repo, nil
}

func checkCollection(name string) error {
	if !slices.Contains(store.Collections, name) {
		return fmt.Errorf("%w: %q (use %v)", backup.ErrUnknownCollection, name, store.Collections)
	}
	return nil
}

func runEntry(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	defer session.Close()

	return manager.New(session, repo).Run()
}
