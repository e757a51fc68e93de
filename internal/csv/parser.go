package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"produktmanager/internal/models"

	"github.com/jszwec/csvutil"
)

type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseBooks reads all rows of a book CSV. Rows without title and ISBN are
// skipped; skipped is their count.
func (p *Parser) ParseBooks() (books []models.Book, skipped int, err error) {
	var rows []BookRow
	if err := p.decode(&rows); err != nil {
		return nil, 0, err
	}

	for i, row := range rows {
		if row.IsEmpty() {
			log.Printf("Skipping row %d: both Titel and ISBN are empty", i+1)
			skipped++
			continue
		}
		books = append(books, row.Book())
	}
	return books, skipped, nil
}

// ParseFoods reads all rows of a food/drink CSV. Rows without brand and
// barcode, or with an invalid kind or Nutri-Score, are skipped.
func (p *Parser) ParseFoods() (foods []models.Food, skipped int, err error) {
	var rows []FoodRow
	if err := p.decode(&rows); err != nil {
		return nil, 0, err
	}

	for i, row := range rows {
		if row.IsEmpty() {
			log.Printf("Skipping row %d: both Markenname and Strichcode are empty", i+1)
			skipped++
			continue
		}
		food, err := row.Food()
		if err != nil {
			log.Printf("Skipping row %d: %v", i+1, err)
			skipped++
			continue
		}
		foods = append(foods, food)
	}
	return foods, skipped, nil
}

func (p *Parser) decode(rows interface{}) error {
	file, err := os.Open(p.filename)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	decoder, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		return fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	if err := decoder.Decode(rows); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode CSV: %w", err)
	}
	return nil
}

// WriteBooks writes books as CSV with a header row, also when there are none.
func WriteBooks(w io.Writer, books []models.Book) error {
	rows := make([]BookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, NewBookRow(b))
	}
	return encode(w, BookRow{}, rows)
}

// WriteFoods writes foods as CSV with a header row.
func WriteFoods(w io.Writer, foods []models.Food) error {
	rows := make([]FoodRow, 0, len(foods))
	for _, f := range foods {
		rows = append(rows, NewFoodRow(f))
	}
	return encode(w, FoodRow{}, rows)
}

func encode[T any](w io.Writer, header T, rows []T) error {
	writer := csv.NewWriter(w)
	encoder := csvutil.NewEncoder(writer)

	if err := encoder.EncodeHeader(header); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	for _, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
