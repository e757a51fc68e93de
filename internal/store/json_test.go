package store

import (
	"os"
	"path/filepath"
	"testing"

	"produktmanager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFile_CreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Produktliste", "buecher.json")

	require.NoError(t, EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEnsureFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Titel":"Anna"}]`), 0644))

	require.NoError(t, EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"Titel":"Anna"}]`, string(data))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	books, err := Load[models.Book](filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Titel":`), 0644))

	_, err := Load[models.Book](path)
	assert.Error(t, err)
}

func TestLoad_NullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0644))

	books, err := Load[models.Book](path)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestSave_FourSpaceIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buecher.json")
	books := []models.Book{{Title: models.Text("Anna & Ben <1>"), Price: models.Num(12.5)}}

	require.NoError(t, Save(path, books))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[\n" +
		"    {\n" +
		"        \"Titel\": \"Anna & Ben <1>\",\n" +
		"        \"Original-Preis\": 12.5\n" +
		"    }\n" +
		"]"
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebensmittel.json")

	require.NoError(t, Save[models.Food](path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "buecher.json")
	assert.Error(t, Save(path, []models.Book{{}}))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebensmittel.json")

	minerals := models.NewListing()
	minerals.Set("Calcium", "120 mg")
	minerals.Set("Eisen", "2.1 mg")

	drink := models.NewFood(models.KindDrink)
	drink.Brand = models.Text("Quellwasser")
	drink.Quantity = models.Num(1.5)
	drink.Ingredients = []string{"Wasser", "Kohlensäure"}
	drink.Nutrition = &models.NutritionTable{
		Per100: &models.NutritionFacts{
			Energy: models.Energy{KJ: 0, Kcal: 0},
			Salt:   0.01,
		},
		Minerals: minerals,
	}
	drink.Manufacturers = []string{"Firma A", "Firma B"}
	drink.DepositPresent = models.Text("ja")
	drink.DepositValue = models.Num(0.25)
	drink.NutriScore = models.Text("A")

	food := models.NewFood(models.KindFood)
	food.Nutrition = &models.NutritionTable{}

	foods := []models.Food{drink, food}
	require.NoError(t, Save(path, foods))

	loaded, err := Load[models.Food](path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, drink.Brand, loaded[0].Brand)
	assert.Equal(t, drink.Ingredients, loaded[0].Ingredients)
	assert.Equal(t, *drink.Nutrition.Per100, *loaded[0].Nutrition.Per100)
	assert.Equal(t, &models.NutritionTable{}, loaded[1].Nutrition)

	want, err := Encode(foods)
	require.NoError(t, err)
	got, err := Encode(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}
