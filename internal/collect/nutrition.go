package collect

import (
	"fmt"
	"strings"

	"produktmanager/internal/models"
)

// NutritionTable asks whether the product lists nutrition values and, if so,
// collects them for every reference quantity followed by the optional
// mineral and vitamin listings. Without nutrition values the table is empty.
func NutritionTable(p Prompter) (*models.NutritionTable, error) {
	f := newForm(p)
	table := &models.NutritionTable{}
	if !f.yes("Sind Nährwerte auf dem Produkt angegeben? (ja oder nein): ") {
		return table, f.err
	}

	for _, reference := range models.ReferenceQuantities {
		p.Say("\nGeben Sie die Nährwerte pro %s ein:", reference)
		facts := models.NutritionFacts{
			Energy: models.Energy{
				KJ:   f.value("Brennwert (kJ): "),
				Kcal: f.value("Brennwert (kcal): "),
			},
			Fat:           f.value("Fett (g): "),
			SaturatedFat:  f.value("davon gesättigte Fettsäuren (g): "),
			Carbohydrates: f.value("Kohlenhydrate (g): "),
			Sugar:         f.value("davon Zucker (g): "),
			Fiber:         f.value("Ballaststoffe (g): "),
			Protein:       f.value("Eiweiß (g): "),
			Salt:          f.value("Salz (g): "),
		}
		if f.err != nil {
			return nil, f.err
		}
		if err := table.SetFacts(reference, facts); err != nil {
			return nil, err
		}
	}

	table.Minerals = listing(f, "Mineralstoffe", "Mineralstoff")
	table.Vitamins = listing(f, "Vitamine", "Vitamin")
	if f.err != nil {
		return nil, f.err
	}
	return table, nil
}

// listing collects name → "<amount> <unit>" pairs until a blank name. It is
// nil when the product lists none of them.
func listing(f *form, plural, singular string) *models.Listing {
	if !f.yes(fmt.Sprintf("\nSind %s auf dem Produkt angegeben? (ja oder nein): ", plural)) {
		return nil
	}
	f.p.Say("Geben Sie die %s einzeln ein. Drücken Sie Enter ohne Eingabe, um die Eingabe zu beenden:", plural)

	units := strings.Join(models.AmountUnits, " oder ")
	l := models.NewListing()
	for {
		name := f.answer(singular + ": ")
		if f.err != nil {
			return nil
		}
		if strings.TrimSpace(name) == "" {
			return l
		}
		amount := f.value(fmt.Sprintf("Menge von %s (nur Zahl): ", name))
		unit := f.answer(fmt.Sprintf("Einheit für %s (%s): ", name, units))
		if f.err != nil {
			return nil
		}
		l.Set(name, models.Amount(amount, unit))
	}
}
