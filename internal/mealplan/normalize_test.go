package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNestedMealsShape(t *testing.T) {
	doc := []byte(`{
		"monday": {
			"meals": {
				"ontbijt": {"ingredients": [{"name": "Egg", "amount": 3, "unit": "stuks"}]},
				"ochtend_snack": {"ingredients": [{"name": "Apple", "amount": 1, "unit": "stuks"}]}
			}
		}
	}`)

	week, err := Normalize(doc)
	require.NoError(t, err)
	require.Contains(t, week, "monday")

	day := week["monday"]
	require.Contains(t, day, "breakfast")
	require.Contains(t, day, "morning-snack")
	assert.Equal(t, "Egg", day["breakfast"].Ingredients[0].Name)
	assert.Equal(t, 3.0, day["breakfast"].Ingredients[0].Amount)
}

func TestNormalizeFlatShapeFiltersCacheKeys(t *testing.T) {
	doc := []byte(`{
		"dinsdag": {
			"avond_snack": {"ingredients": [{"name": "Yogurt", "amount": 150, "unit": "gram"}]},
			"lunch_snack": {"ingredients": [{"name": "Nuts", "amount": 1, "unit": "handje"}]},
			"dailyTotals": {"calories": 1800}
		}
	}`)

	week, err := Normalize(doc)
	require.NoError(t, err)
	require.Contains(t, week, "tuesday")

	day := week["tuesday"]
	assert.Len(t, day, 2)
	assert.Contains(t, day, "evening-snack")
	assert.Contains(t, day, "afternoon-snack")
}

func TestNormalizeBaseAmountWinsOverAmount(t *testing.T) {
	doc := []byte(`{
		"monday": {
			"breakfast": {"ingredients": [{"name": "Oats", "amount": 40, "baseAmount": 60, "unit": "gram"}]}
		}
	}`)

	week, err := Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, 60.0, week["monday"]["breakfast"].Ingredients[0].Amount)
}

func TestNormalizeCarriesCompleteSnapshot(t *testing.T) {
	doc := []byte(`{
		"monday": {
			"breakfast": {
				"ingredients": [{"name": "Egg", "amount": 2, "unit": "stuks"}],
				"nutrition": {"calories": 310, "protein": 26, "carbs": 2, "fat": 22}
			},
			"lunch": {
				"ingredients": [{"name": "Bread", "amount": 2, "unit": "stuks"}],
				"nutrition": {"calories": 160, "protein": 6, "carbs": 30}
			}
		}
	}`)

	week, err := Normalize(doc)
	require.NoError(t, err)

	breakfast := week["monday"]["breakfast"]
	require.NotNil(t, breakfast.Nutrition)
	assert.Equal(t, 310.0, breakfast.Nutrition.Calories)

	// Incomplete snapshot (fat missing) is not trusted.
	assert.Nil(t, week["monday"]["lunch"].Nutrition)
}

func TestNormalizeDropsUnknownDayKeys(t *testing.T) {
	doc := []byte(`{
		"weekTotals": {"calories": 12000},
		"zondag": {"diner": {"ingredients": []}}
	}`)

	week, err := Normalize(doc)
	require.NoError(t, err)
	assert.Len(t, week, 1)
	assert.Contains(t, week, "sunday")
	assert.Contains(t, week["sunday"], "dinner")
}

func TestNormalizeRejectsInvalidDocument(t *testing.T) {
	_, err := Normalize([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}
