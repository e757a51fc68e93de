package models

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reference quantities the nutrition facts are entered for.
const (
	Per100 = "100ml/g"
	Per250 = "250ml/g"
)

var ReferenceQuantities = []string{Per100, Per250}

// AmountUnits are the units offered for minerals and vitamins. The unit is
// not checked against this list.
var AmountUnits = []string{"mg", "µg"}

type Energy struct {
	KJ   Number `json:"kJ"`
	Kcal Number `json:"kcal"`
}

// NutritionFacts holds the values for one reference quantity.
type NutritionFacts struct {
	Energy        Energy `json:"Brennwert"`
	Fat           Number `json:"Fett"`
	SaturatedFat  Number `json:"davon gesättigte Fettsäuren"`
	Carbohydrates Number `json:"Kohlenhydrate"`
	Sugar         Number `json:"davon Zucker"`
	Fiber         Number `json:"Ballaststoffe"`
	Protein       Number `json:"Eiweiß"`
	Salt          Number `json:"Salz"`
}

// NutritionTable is stored as {} when the product carries no nutrition values.
type NutritionTable struct {
	Per100   *NutritionFacts `json:"100ml/g,omitempty"`
	Per250   *NutritionFacts `json:"250ml/g,omitempty"`
	Minerals *Listing        `json:"Mineralstoffe,omitempty"`
	Vitamins *Listing        `json:"Vitamine,omitempty"`
}

// SetFacts stores facts under one of the ReferenceQuantities.
func (t *NutritionTable) SetFacts(reference string, facts NutritionFacts) error {
	switch reference {
	case Per100:
		t.Per100 = &facts
	case Per250:
		t.Per250 = &facts
	default:
		return fmt.Errorf("unknown reference quantity %q", reference)
	}
	return nil
}

// Listing maps mineral or vitamin names to "<amount> <unit>". Its JSON
// object keeps the names in the order they were entered.
type Listing = orderedmap.OrderedMap[string, string]

func NewListing() *Listing {
	return orderedmap.New[string, string]()
}

// Amount formats a mineral or vitamin quantity as "<amount> <unit>".
func Amount(amount Number, unit string) string {
	return amount.String() + " " + unit
}
