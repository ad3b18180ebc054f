package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() Catalog {
	return Catalog{
		"Egg":            {Calories: 155, Protein: 13, Carbs: 1, Fat: 11, UnitType: "per_piece"},
		"Chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, UnitType: "per_100g"},
		"Rice":           {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, UnitType: "per_100g"},
		"Milk":           {Calories: 64, Protein: 3.4, Carbs: 4.8, Fat: 3.6, UnitType: "per_ml"},
		"Almonds":        {Calories: 170, Protein: 6, Carbs: 6, Fat: 15, UnitType: "per_handful"},
		"Olive oil":      {Calories: 884, Protein: 0, Carbs: 0, Fat: 100, UnitType: "per_100g"},
	}
}

func TestAggregateUnitAware(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Egg", Amount: 2, Unit: "stuks"},
		{Name: "Chicken breast", Amount: 150, Unit: "gram"},
		{Name: "Milk", Amount: 200, Unit: "per_ml"},
		{Name: "Olive oil", Amount: 1, Unit: "eetlepel"},
	}

	got, missing := Aggregate(ingredients, testCatalog())
	assert.Empty(t, missing)

	// 2*155 + 1.5*165 + 2*64 + 0.15*884 = 818.1 -> 818
	assert.Equal(t, 818.0, got.Calories)
	// 2*13 + 1.5*31 + 2*3.4 = 79.3
	assert.Equal(t, 79.3, got.Protein)
	// 2*1 + 2*4.8 = 11.6
	assert.Equal(t, 11.6, got.Carbs)
	// 2*11 + 1.5*3.6 + 2*3.6 + 0.15*100 = 49.6
	assert.Equal(t, 49.6, got.Fat)
}

func TestAggregateMissingIngredientsContributeZero(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Unicorn steak", Amount: 100, Unit: "gram"},
		{Name: "Egg", Amount: 1, Unit: "stuks"},
	}

	got, missing := Aggregate(ingredients, testCatalog())
	assert.Equal(t, []string{"Unicorn steak"}, missing)
	assert.Equal(t, 155.0, got.Calories)
}

func TestAggregateEmptyCatalog(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Egg", Amount: 3, Unit: "stuks"},
		{Name: "Rice", Amount: 100, Unit: "gram"},
	}

	got, missing := Aggregate(ingredients, Catalog{})
	assert.Equal(t, Nutrition{}, got)
	assert.Len(t, missing, 2)
}

func TestAggregateConsistencyWithPerIngredientSums(t *testing.T) {
	catalog := testCatalog()
	ingredients := []Ingredient{
		{Name: "Chicken breast", Amount: 125, Unit: "gram"},
		{Name: "Rice", Amount: 80, Unit: "gram"},
		{Name: "Almonds", Amount: 2, Unit: "handje"},
	}

	total, _ := Aggregate(ingredients, catalog)

	var calories, protein, carbs, fat float64
	for _, ing := range ingredients {
		nut, ok := catalog.Resolve(ing.Name)
		assert.True(t, ok)
		m := multiplier(ing.Amount, ing.Unit)
		calories += nut.Calories * m
		protein += nut.Protein * m
		carbs += nut.Carbs * m
		fat += nut.Fat * m
	}

	assert.InDelta(t, calories, total.Calories, 0.5)
	assert.InDelta(t, protein, total.Protein, 0.05)
	assert.InDelta(t, carbs, total.Carbs, 0.05)
	assert.InDelta(t, fat, total.Fat, 0.05)
}
