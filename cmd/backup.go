package cmd

import (
	"fmt"
	"log"

	"produktmanager/internal/backup"

	"github.com/spf13/cobra"
)

var (
	outputDir        string
	backupFormat     string
	backupCollection string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Backup the collections",
	Long:  "Backup the collection files to timestamped JSON or CSV files",
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVarP(&outputDir, "output", "o", "./backups", "Output directory for backup files")
	backupCmd.Flags().StringVarP(&backupFormat, "format", "f", backup.FormatJSON, "Backup format: json or csv")
	backupCmd.Flags().StringVarP(&backupCollection, "collection", "c", "", "Specific collection to backup (if empty, backs up all collections)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	if !backup.ValidFormat(backupFormat) {
		return fmt.Errorf("invalid format: %s. Use 'json' or 'csv'", backupFormat)
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	backupService := backup.NewService(repo)

	if backupCollection != "" {
		if err := checkCollection(backupCollection); err != nil {
			return err
		}
		log.Printf("Starting backup of collection '%s' to %s format...", backupCollection, backupFormat)
		backupFile, err := backupService.BackupCollection(backupCollection, outputDir, backupFormat)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		log.Printf("Backup completed successfully: %s", backupFile)
		return nil
	}

	log.Printf("Starting backup of all collections in '%s' to %s format...", repo.Dir(), backupFormat)
	backupFiles, err := backupService.BackupAll(outputDir, backupFormat)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	log.Printf("Backup completed successfully. Created %d backup files:", len(backupFiles))
	for _, file := range backupFiles {
		log.Printf("  - %s", file)
	}
	return nil
}
