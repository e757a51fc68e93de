package collect

import (
	"errors"
	"fmt"
	"strings"

	"produktmanager/internal/models"
)

// ErrInvalidKind is returned when the product kind is neither food nor drink.
var ErrInvalidKind = errors.New("invalid product kind")

// Food asks for a food or drink. An invalid kind ends the entry before any
// other question with ErrInvalidKind.
func Food(p Prompter) (models.Food, error) {
	answer, err := p.Ask("Handelt es sich um ein Lebensmittel (1) oder ein Getränk (2)? ")
	if err != nil {
		return models.Food{}, err
	}

	var kind models.ProductKind
	switch answer {
	case "1":
		kind = models.KindFood
	case "2":
		kind = models.KindDrink
	default:
		return models.Food{}, fmt.Errorf("%w: %q", ErrInvalidKind, answer)
	}

	food := models.NewFood(kind)
	p.Say("Geben Sie die Informationen ein (mit %s überspringen):", Skip)

	f := newForm(p)
	food.Brand = f.text("Markenname: ")
	food.TradeName = f.text("Verkehrsbezeichnung: ")
	food.Quantity = f.decimal(fmt.Sprintf("Gewicht/Füllmenge (in %s): ", food.Unit))
	if f.err == nil {
		p.Say("Geben Sie die Zutaten einzeln ein. Drücken Sie Enter ohne Eingabe, um die Eingabe zu beenden:")
	}
	food.Ingredients = f.repeated("Zutat: ")
	if f.err != nil {
		return models.Food{}, f.err
	}

	table, err := NutritionTable(p)
	if err != nil {
		return models.Food{}, err
	}
	food.Nutrition = table

	food.Manufacturers = f.list("Herstellungsunternehmen (bei mehreren durch ; trennen): ", ";")
	food.Barcode = f.text("Strichcode: ")
	if food.IsDrink() {
		food.DepositPresent = f.text("Pfand vorhanden? (ja oder nein): ")
		if food.HasDeposit() {
			food.DepositValue = f.decimal("Pfand-Wert (in €): ")
		}
	}
	food.NutriScore = nutriScore(f)

	if f.err != nil {
		return models.Food{}, f.err
	}
	return food, nil
}

// nutriScore repeats the question until a grade, Skip or a blank line is
// entered. Only a grade is kept.
func nutriScore(f *form) *string {
	for {
		grade := strings.ToUpper(strings.TrimSpace(f.answer("Nutri-Score (A, B, C, D oder E): ")))
		if f.err != nil {
			return nil
		}
		if models.IsNutriScore(grade) {
			return &grade
		}
		if grade == "" || grade == Skip {
			return nil
		}
		f.p.Say("Ungültige Eingabe. Bitte geben Sie A, B, C, D, E oder %s ein.", Skip)
	}
}
