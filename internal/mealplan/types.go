package mealplan

// Nutrition holds totals for a meal, a day or a whole week.
// Calories are kcal, macros are grams.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Nutrient is the nutrient density of one catalog item, defined per
// reference quantity (one piece, one handful, 100 g or 100 ml depending
// on UnitType).
type Nutrient struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	UnitType string
}

// Catalog is the in-memory nutrient store, built once per request from the
// active ingredient records. A miss is not fatal: the ingredient counts as
// zero nutrition and its name ends up in the missing report.
type Catalog map[string]Nutrient

// Resolve looks up the nutrient record for an ingredient name.
func (c Catalog) Resolve(name string) (Nutrient, bool) {
	n, ok := c[name]
	return n, ok
}

// Ingredient is one ingredient reference inside a meal slot.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Meal is a canonical meal slot. Nutrition is nil until computed, or carried
// through from the source when the stored snapshot is complete.
type Meal struct {
	Ingredients []Ingredient `json:"ingredients"`
	Nutrition   *Nutrition   `json:"nutrition,omitempty"`
}

// Day maps canonical meal-slot keys to meals.
type Day map[string]Meal

// WeekPlan is the canonical unscaled template: canonical day keys to days.
type WeekPlan map[string]Day

// DayOrder fixes the iteration order over day keys so identical inputs
// always produce identical output.
var DayOrder = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// MealOrder fixes the iteration order over meal-slot keys.
var MealOrder = []string{
	"breakfast", "morning-snack", "lunch", "afternoon-snack", "dinner", "evening-snack",
}
