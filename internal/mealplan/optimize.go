package mealplan

import "math"

const (
	// macroTolerance is the relative deviation under which a meal counts as
	// on target and the optimizer leaves it alone.
	macroTolerance = 0.05

	// An ingredient only gets nudged for a macro when it is dense in that
	// macro (grams per reference quantity).
	proteinDenseMin = 10.0
	carbsDenseMin   = 10.0
	fatDenseMin     = 5.0

	// Minimum gram gap before a macro is worth correcting at all.
	proteinDeltaMin = 5.0
	carbsDeltaMin   = 5.0
	fatDeltaMin     = 3.0

	// Fraction of the relative delta applied as a multiplicative nudge.
	nudgeFraction = 0.10
)

// OptimizeMeal runs one bounded corrective pass over a meal's ingredients,
// nudging macro-dense ingredients toward the meal target. It is a single
// heuristic pass and must stay that way: it does not guarantee the tolerance
// is met afterward and must never be turned into an iterative solver, since
// repeated passes would drift amounts away from the original recipe.
// Adjusted amounts are re-snapped to their unit grid.
func OptimizeMeal(ingredients []Ingredient, current, target Nutrition, catalog Catalog) []Ingredient {
	if withinTolerance(current, target) {
		return ingredients
	}

	deltaProtein := target.Protein - current.Protein
	deltaCarbs := target.Carbs - current.Carbs
	deltaFat := target.Fat - current.Fat

	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	for i := range out {
		nut, ok := catalog.Resolve(out[i].Name)
		if !ok {
			continue
		}
		adjust := 1.0
		if nut.Protein > proteinDenseMin && math.Abs(deltaProtein) > proteinDeltaMin && target.Protein > 0 {
			adjust += nudgeFraction * deltaProtein / target.Protein
		}
		if nut.Carbs > carbsDenseMin && math.Abs(deltaCarbs) > carbsDeltaMin && target.Carbs > 0 {
			adjust += nudgeFraction * deltaCarbs / target.Carbs
		}
		if nut.Fat > fatDenseMin && math.Abs(deltaFat) > fatDeltaMin && target.Fat > 0 {
			adjust += nudgeFraction * deltaFat / target.Fat
		}
		if adjust != 1.0 {
			out[i].Amount = SnapAmount(out[i].Amount*adjust, out[i].Unit)
		}
	}
	return out
}

// withinTolerance reports whether every axis of current is within 5% of the
// target. Axes with a non-positive target are skipped: there is no sensible
// relative deviation against a zero goal.
func withinTolerance(current, target Nutrition) bool {
	pairs := [...][2]float64{
		{current.Calories, target.Calories},
		{current.Protein, target.Protein},
		{current.Carbs, target.Carbs},
		{current.Fat, target.Fat},
	}
	for _, p := range pairs {
		if p[1] <= 0 {
			continue
		}
		if math.Abs(p[1]-p[0])/p[1] > macroTolerance {
			return false
		}
	}
	return true
}
