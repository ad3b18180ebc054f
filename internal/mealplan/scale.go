package mealplan

// ScaleIngredients multiplies every amount by the scale factor and snaps the
// result to the unit's rounding grid. Note that even a factor of 1 snaps
// off-grid amounts onto the grid; that is a documented property of the
// grids, not something to special-case away.
func ScaleIngredients(ingredients []Ingredient, factor float64) []Ingredient {
	out := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		ing.Amount = SnapAmount(ing.Amount*factor, ing.Unit)
		out[i] = ing
	}
	return out
}
