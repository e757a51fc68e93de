package cmd

import (
	"fmt"
	"log"
	"slices"

	"produktmanager/internal/database"
	"produktmanager/internal/store"

	"github.com/spf13/cobra"
)

var (
	dbURI  string
	dbName string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the collections into MongoDB",
	Long: `Mirror both collections into MongoDB. Books are matched by ISBN and
foods/drinks by Strichcode. Records without that field, or repeating a
value already mirrored, are matched by a key derived from their content.
Fields that only exist in MongoDB are preserved.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&dbURI, "db-uri", "u", "mongodb://localhost:27017", "MongoDB connection URI")
	syncCmd.Flags().StringVarP(&dbName, "database", "d", "produktmanager", "Database name")
}

func runSync(cmd *cobra.Command, args []string) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}

	books, err := repo.Raw(store.BooksCollection)
	if err != nil {
		return err
	}
	foods, err := repo.Raw(store.FoodsCollection)
	if err != nil {
		return err
	}

	db, err := database.NewMongoDB(dbURI, dbName)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer db.Close()

	existing, err := db.ListCollections()
	if err != nil {
		return err
	}

	targets := []struct {
		collection string
		key        string
		records    []interface{}
	}{
		{store.BooksCollection, database.BookKey, toInterfaces(books)},
		{store.FoodsCollection, database.FoodKey, toInterfaces(foods)},
	}

	for _, t := range targets {
		if !slices.Contains(existing, t.collection) {
			log.Printf("Collection '%s' does not exist yet and will be created", t.collection)
		}

		result, err := database.Mirror(db.Collection(t.collection), t.key, t.records)
		if err != nil {
			return fmt.Errorf("failed to mirror %s: %w", t.collection, err)
		}
		log.Printf("Mirrored %s.%s: %d total, %d new, %d updated, %d without %s, %d repeated %s, %d removed, %d failed",
			dbName, t.collection, result.Total, result.New, result.Updated, result.Unkeyed, t.key,
			result.Collisions, t.key, result.Removed, result.Failed)
	}
	return nil
}

func toInterfaces[T any](records []T) []interface{} {
	out := make([]interface{}, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
