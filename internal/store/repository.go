package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"

	"produktmanager/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// File names of the two collections inside the data directory.
const (
	BooksFile = "buecher.json"
	FoodsFile = "lebensmittel.json"
)

// Collection names as used by backups, CSV import/export and the mirror.
const (
	BooksCollection = "buecher"
	FoodsCollection = "lebensmittel"
)

var Collections = []string{BooksCollection, FoodsCollection}

// sortFields names the field each collection is ordered by.
var sortFields = map[string]string{
	BooksCollection: "Titel",
	FoodsCollection: "Markenname",
}

// Repository owns the two collection files below one directory. Every append
// loads the file fresh, sorts and writes it back.
type Repository struct {
	dir       string
	booksPath string
	foodsPath string
	collator  *collate.Collator
}

func NewRepository(dir string) *Repository {
	return &Repository{
		dir:       dir,
		booksPath: filepath.Join(dir, BooksFile),
		foodsPath: filepath.Join(dir, FoodsFile),
		collator:  collate.New(language.German),
	}
}

// Init creates the data directory and both collection files if missing.
func (r *Repository) Init() error {
	for _, path := range []string{r.booksPath, r.foodsPath} {
		if err := EnsureFile(path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Dir() string       { return r.dir }
func (r *Repository) BooksPath() string { return r.booksPath }
func (r *Repository) FoodsPath() string { return r.foodsPath }

// Path returns the file of a named collection.
func (r *Repository) Path(collection string) (string, error) {
	switch collection {
	case BooksCollection:
		return r.booksPath, nil
	case FoodsCollection:
		return r.foodsPath, nil
	}
	return "", fmt.Errorf("unknown collection %q", collection)
}

func (r *Repository) Books() ([]models.Book, error) {
	return Load[models.Book](r.booksPath)
}

func (r *Repository) Foods() ([]models.Food, error) {
	return Load[models.Food](r.foodsPath)
}

// Raw returns the stored objects of a collection exactly as they are on disk.
func (r *Repository) Raw(collection string) ([]json.RawMessage, error) {
	path, err := r.Path(collection)
	if err != nil {
		return nil, err
	}
	return Load[json.RawMessage](path)
}

// AppendBook adds book to the collection, kept sorted by title.
func (r *Repository) AppendBook(book models.Book) error {
	return r.AppendBooks([]models.Book{book})
}

func (r *Repository) AppendBooks(books []models.Book) error {
	return appendRecords(r, BooksCollection, books)
}

// AppendFood adds food to the collection, kept sorted by brand.
func (r *Repository) AppendFood(food models.Food) error {
	return r.AppendFoods([]models.Food{food})
}

func (r *Repository) AppendFoods(foods []models.Food) error {
	return appendRecords(r, FoodsCollection, foods)
}

// ReplaceBooks sorts books and writes them as the whole collection.
func (r *Repository) ReplaceBooks(books []models.Book) error {
	return replaceRecords(r, BooksCollection, books)
}

// ReplaceFoods sorts foods and writes them as the whole collection.
func (r *Repository) ReplaceFoods(foods []models.Food) error {
	return replaceRecords(r, FoodsCollection, foods)
}

// ReplaceRaw sorts records and writes them as the whole collection. The
// objects are written back unchanged.
func (r *Repository) ReplaceRaw(collection string, records []json.RawMessage) error {
	path, err := r.Path(collection)
	if err != nil {
		return err
	}

	type keyed struct {
		key    string
		record json.RawMessage
	}
	items := make([]keyed, len(records))
	for i, record := range records {
		items[i] = keyed{key: sortKey(record, sortFields[collection]), record: record}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return r.collator.CompareString(a.key, b.key)
	})

	sorted := make([]json.RawMessage, len(items))
	for i, item := range items {
		sorted[i] = item.record
	}
	return Save(path, sorted)
}

// appendRecords loads the collection without interpreting the stored
// objects, so fields the typed records do not know survive the rewrite.
func appendRecords[T any](r *Repository, collection string, records []T) error {
	stored, err := r.Raw(collection)
	if err != nil {
		return err
	}
	encoded, err := encodeEach(records)
	if err != nil {
		return err
	}
	return r.ReplaceRaw(collection, append(stored, encoded...))
}

func replaceRecords[T any](r *Repository, collection string, records []T) error {
	encoded, err := encodeEach(records)
	if err != nil {
		return err
	}
	return r.ReplaceRaw(collection, encoded)
}

// sortKey is the string value of field, or "" when the object has none.
func sortKey(record json.RawMessage, field string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return ""
	}
	var key string
	if err := json.Unmarshal(fields[field], &key); err != nil {
		return ""
	}
	return key
}
