package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"produktmanager/internal/backup"
	"produktmanager/internal/store"

	"github.com/spf13/cobra"
)

var (
	exportCollection string
	exportOutput     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a collection as CSV",
	Long:  "Export the book or food/drink collection as CSV. Nutrition tables are not part of the CSV form.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportCollection, "collection", "t", store.BooksCollection, "Collection to export: buecher or lebensmittel")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "Output file, - for standard output")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := checkCollection(exportCollection); err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "-" {
		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	if err := backup.NewService(repo).Export(exportCollection, w, backup.FormatCSV); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if exportOutput != "-" {
		log.Printf("Exported %s to %s", exportCollection, exportOutput)
	}
	return nil
}
