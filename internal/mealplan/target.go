package mealplan

// Caloric density per gram of macro.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// Target is a user's daily nutrition goal. Macro goals come either as
// percentages of calories or as explicit gram targets; explicit grams win
// when both are set.
type Target struct {
	Calories   float64
	ProteinPct float64
	CarbsPct   float64
	FatPct     float64

	ProteinGrams *float64
	CarbsGrams   *float64
	FatGrams     *float64
}

// Breakdown resolves the target into absolute daily numbers: calories plus
// gram targets per macro.
func (t Target) Breakdown() Nutrition {
	n := Nutrition{
		Calories: t.Calories,
		Protein:  t.Calories * t.ProteinPct / 100 / kcalPerGramProtein,
		Carbs:    t.Calories * t.CarbsPct / 100 / kcalPerGramCarbs,
		Fat:      t.Calories * t.FatPct / 100 / kcalPerGramFat,
	}
	if t.ProteinGrams != nil {
		n.Protein = *t.ProteinGrams
	}
	if t.CarbsGrams != nil {
		n.Carbs = *t.CarbsGrams
	}
	if t.FatGrams != nil {
		n.Fat = *t.FatGrams
	}
	return roundNutrition(n)
}
