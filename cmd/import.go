package cmd

import (
	"fmt"
	"log"

	"produktmanager/internal/csv"
	"produktmanager/internal/store"

	"github.com/spf13/cobra"
)

var (
	csvFile          string
	importCollection string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV rows into a collection",
	Long: `Import CSV rows into the book or food/drink collection. The header row
uses the same field names as the JSON files. The collection is re-sorted
and saved once all rows are read.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file to import (required)")
	importCmd.Flags().StringVarP(&importCollection, "collection", "t", store.BooksCollection, "Target collection: buecher or lebensmittel")

	importCmd.MarkFlagRequired("csv")
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := checkCollection(importCollection); err != nil {
		return err
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}

	parser := csv.NewParser(csvFile)

	var imported, skipped int
	switch importCollection {
	case store.BooksCollection:
		books, n, err := parser.ParseBooks()
		if err != nil {
			return fmt.Errorf("failed to parse CSV: %w", err)
		}
		if err := repo.AppendBooks(books); err != nil {
			return fmt.Errorf("failed to save books: %w", err)
		}
		imported, skipped = len(books), n
	case store.FoodsCollection:
		foods, n, err := parser.ParseFoods()
		if err != nil {
			return fmt.Errorf("failed to parse CSV: %w", err)
		}
		if err := repo.AppendFoods(foods); err != nil {
			return fmt.Errorf("failed to save foods: %w", err)
		}
		imported, skipped = len(foods), n
	}

	if skipped > 0 {
		log.Printf("WARNING: Skipped %d rows", skipped)
	}
	log.Printf("Successfully imported %d records from %s into %s", imported, csvFile, importCollection)
	return nil
}
