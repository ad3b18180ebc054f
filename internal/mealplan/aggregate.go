package mealplan

import "math"

// Aggregate sums the nutrient contributions of a list of ingredients.
// Ingredients without a catalog record contribute zero and are returned by
// name so callers can surface a missing-ingredients report. Calories round
// to the nearest kcal, macros to one decimal.
func Aggregate(ingredients []Ingredient, catalog Catalog) (Nutrition, []string) {
	var total Nutrition
	var missing []string
	for _, ing := range ingredients {
		nut, ok := catalog.Resolve(ing.Name)
		if !ok {
			missing = append(missing, ing.Name)
			continue
		}
		m := multiplier(ing.Amount, ing.Unit)
		total.Calories += nut.Calories * m
		total.Protein += nut.Protein * m
		total.Carbs += nut.Carbs * m
		total.Fat += nut.Fat * m
	}
	return roundNutrition(total), missing
}

func roundNutrition(n Nutrition) Nutrition {
	return Nutrition{
		Calories: math.Round(n.Calories),
		Protein:  round1(n.Protein),
		Carbs:    round1(n.Carbs),
		Fat:      round1(n.Fat),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
