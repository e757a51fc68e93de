package models

import "strings"

const FoodCategory = "Lebensmittel/Getränk"

// ProductKind tells foods and drinks apart.
type ProductKind string

const (
	KindFood  ProductKind = "Lebensmittel"
	KindDrink ProductKind = "Getränk"
)

// Unit is the unit of measure quantities of this kind are entered in.
func (k ProductKind) Unit() string {
	if k == KindDrink {
		return "Liter"
	}
	return "Kilogramm"
}

// NutriScores lists the accepted Nutri-Score grades.
var NutriScores = []string{"A", "B", "C", "D", "E"}

// IsNutriScore reports whether s is one of the five grades.
func IsNutriScore(s string) bool {
	for _, grade := range NutriScores {
		if s == grade {
			return true
		}
	}
	return false
}

// Food is one entry of the food/drink collection.
type Food struct {
	Category       string          `json:"Kategorie"`
	Kind           ProductKind     `json:"Art des Produktes"`
	Unit           string          `json:"Maßeinheit"`
	Brand          *string         `json:"Markenname,omitempty"`
	TradeName      *string         `json:"Verkehrsbezeichnung,omitempty"`
	Quantity       *Number         `json:"Gewicht/Füllmenge,omitempty"`
	Ingredients    []string        `json:"Zutaten,omitempty"`
	Nutrition      *NutritionTable `json:"Nährwerttabelle,omitempty"`
	Manufacturers  []string        `json:"Herstellungsunternehmen,omitempty"`
	Barcode        *string         `json:"Strichcode,omitempty"`
	DepositPresent *string         `json:"Pfand vorhanden,omitempty"`
	DepositValue   *Number         `json:"Pfand-Wert,omitempty"`
	NutriScore     *string         `json:"Nutri-Score,omitempty"`
}

// NewFood starts a record of the given kind with the fixed fields filled in.
func NewFood(kind ProductKind) Food {
	return Food{
		Category: FoodCategory,
		Kind:     kind,
		Unit:     kind.Unit(),
	}
}

func (f Food) IsDrink() bool {
	return f.Kind == KindDrink
}

// HasDeposit reports whether the deposit answer was affirmative.
func (f Food) HasDeposit() bool {
	return f.DepositPresent != nil && strings.EqualFold(*f.DepositPresent, "ja")
}
