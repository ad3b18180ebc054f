package mealplan

// ReferenceCalories computes the plan's own average daily caloric total.
// Days without any caloric data are excluded from the average so a sparse
// template does not drag the reference toward zero. Returns 0 when no day
// has data.
func ReferenceCalories(week WeekPlan, catalog Catalog) float64 {
	var sum float64
	var counted int
	for _, dayKey := range DayOrder {
		day, ok := week[dayKey]
		if !ok {
			continue
		}
		var dayCalories float64
		for _, slot := range MealOrder {
			meal, ok := day[slot]
			if !ok {
				continue
			}
			n, _ := Aggregate(meal.Ingredients, catalog)
			dayCalories += n.Calories
		}
		if dayCalories > 0 {
			sum += dayCalories
			counted++
		}
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// ScaleFactor derives the proportional factor from target vs. reference
// calories. Degenerate inputs never divide by zero: the factor falls back
// to 1 and the returned warning says why.
func ScaleFactor(targetCalories, referenceCalories float64) (float64, string) {
	if targetCalories <= 0 {
		return 1, "target calories not positive, plan left unscaled"
	}
	if referenceCalories <= 0 {
		return 1, "reference calories not positive, plan left unscaled"
	}
	return targetCalories / referenceCalories, ""
}
