package csv

import (
	"fmt"
	"strings"

	"produktmanager/internal/models"
)

// listSep joins list fields inside a single cell.
const listSep = ";"

// BookRow is the CSV shape of a book. Empty cells are absent fields.
type BookRow struct {
	Title     string `csv:"Titel"`
	Volume    string `csv:"Band"`
	Author    string `csv:"Autor"`
	Publisher string `csv:"Verlag"`
	Genre     string `csv:"Genre"`
	Year      string `csv:"Erscheinungsjahr"`
	Language  string `csv:"Sprache"`
	ISBN      string `csv:"ISBN"`
	Price     string `csv:"Original-Preis"`
}

// FoodRow is the CSV shape of a food or drink. The nutrition table has no
// CSV form and is left out.
type FoodRow struct {
	Kind           string `csv:"Art des Produktes"`
	Brand          string `csv:"Markenname"`
	TradeName      string `csv:"Verkehrsbezeichnung"`
	Quantity       string `csv:"Gewicht/Füllmenge"`
	Ingredients    string `csv:"Zutaten"`
	Manufacturers  string `csv:"Herstellungsunternehmen"`
	Barcode        string `csv:"Strichcode"`
	DepositPresent string `csv:"Pfand vorhanden"`
	DepositValue   string `csv:"Pfand-Wert"`
	NutriScore     string `csv:"Nutri-Score"`
}

func NewBookRow(b models.Book) BookRow {
	return BookRow{
		Title:     models.Deref(b.Title),
		Volume:    models.Deref(b.Volume),
		Author:    models.Deref(b.Author),
		Publisher: models.Deref(b.Publisher),
		Genre:     models.Deref(b.Genre),
		Year:      cell(b.Year),
		Language:  models.Deref(b.Language),
		ISBN:      models.Deref(b.ISBN),
		Price:     cell(b.Price),
	}
}

func (r BookRow) Book() models.Book {
	return models.Book{
		Title:     text(r.Title),
		Volume:    text(r.Volume),
		Author:    text(r.Author),
		Publisher: text(r.Publisher),
		Genre:     text(r.Genre),
		Year:      integer(r.Year),
		Language:  text(r.Language),
		ISBN:      text(r.ISBN),
		Price:     decimal(r.Price),
	}
}

// IsEmpty reports a row carrying neither title nor ISBN.
func (r BookRow) IsEmpty() bool {
	return strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.ISBN) == ""
}

func NewFoodRow(f models.Food) FoodRow {
	return FoodRow{
		Kind:           string(f.Kind),
		Brand:          models.Deref(f.Brand),
		TradeName:      models.Deref(f.TradeName),
		Quantity:       cell(f.Quantity),
		Ingredients:    strings.Join(f.Ingredients, listSep+" "),
		Manufacturers:  strings.Join(f.Manufacturers, listSep+" "),
		Barcode:        models.Deref(f.Barcode),
		DepositPresent: models.Deref(f.DepositPresent),
		DepositValue:   cell(f.DepositValue),
		NutriScore:     models.Deref(f.NutriScore),
	}
}

// Food converts the row back into a record. Unknown kinds and Nutri-Scores
// are rejected.
func (r FoodRow) Food() (models.Food, error) {
	var kind models.ProductKind
	switch strings.TrimSpace(r.Kind) {
	case string(models.KindFood):
		kind = models.KindFood
	case string(models.KindDrink):
		kind = models.KindDrink
	default:
		return models.Food{}, fmt.Errorf("unknown product kind %q", r.Kind)
	}

	food := models.NewFood(kind)
	food.Brand = text(r.Brand)
	food.TradeName = text(r.TradeName)
	food.Quantity = decimal(r.Quantity)
	food.Ingredients = split(r.Ingredients)
	food.Manufacturers = split(r.Manufacturers)
	food.Barcode = text(r.Barcode)
	if food.IsDrink() {
		food.DepositPresent = text(r.DepositPresent)
		if food.HasDeposit() {
			food.DepositValue = decimal(r.DepositValue)
		}
	}

	if score := strings.ToUpper(strings.TrimSpace(r.NutriScore)); score != "" {
		if !models.IsNutriScore(score) {
			return models.Food{}, fmt.Errorf("invalid Nutri-Score %q", r.NutriScore)
		}
		food.NutriScore = &score
	}
	return food, nil
}

// IsEmpty reports a row carrying neither brand nor barcode.
func (r FoodRow) IsEmpty() bool {
	return strings.TrimSpace(r.Brand) == "" && strings.TrimSpace(r.Barcode) == ""
}

func cell(n *models.Number) string {
	if n == nil || n.IsNaN() {
		return ""
	}
	return n.String()
}

func text(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func decimal(s string) *models.Number {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return models.Num(models.ParseDecimal(models.Normalize(s)))
}

func integer(s string) *models.Number {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return models.Num(models.ParseInteger(s))
}

func split(s string) []string {
	var items []string
	for _, part := range strings.Split(s, listSep) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
