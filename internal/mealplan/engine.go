package mealplan

// Info describes how a plan was scaled.
type Info struct {
	Factor            float64 `json:"scale_factor"`
	ReferenceCalories float64 `json:"reference_calories"`
	TargetCalories    float64 `json:"target_calories"`
}

// ScaledDay is one day of the scaled plan: the same meal slots as the
// template plus computed day totals.
type ScaledDay struct {
	Meals  map[string]Meal `json:"meals"`
	Totals Nutrition       `json:"totals"`
}

// Result is the full outcome of a scaling run.
type Result struct {
	Days               map[string]ScaledDay `json:"days"`
	Info               Info                 `json:"scaling"`
	WeekAverage        Nutrition            `json:"week_average"`
	MissingIngredients []string             `json:"missing_ingredients"`
	Warnings           []string             `json:"warnings"`
}

// Scale runs the whole pipeline over a normalized week plan: reference
// baseline, scale factor, per-ingredient quantity scaling, one macro
// correction pass per meal, and final reaggregation into meal, day and week
// totals. The input plan is never mutated; day and meal-slot keys survive
// unchanged. The computation is pure, so concurrent calls need no locking.
func Scale(week WeekPlan, target Target, catalog Catalog) Result {
	res := Result{Days: make(map[string]ScaledDay, len(week))}

	res.Info.ReferenceCalories = ReferenceCalories(week, catalog)
	res.Info.TargetCalories = target.Calories
	factor, warn := ScaleFactor(target.Calories, res.Info.ReferenceCalories)
	res.Info.Factor = factor
	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	goal := target.Breakdown()
	seenMissing := make(map[string]bool)
	var daysWithMeals int
	var weekTotal Nutrition

	for _, dayKey := range DayOrder {
		day, ok := week[dayKey]
		if !ok {
			continue
		}
		scaled := ScaledDay{Meals: make(map[string]Meal, len(day))}
		for _, slot := range MealOrder {
			meal, ok := day[slot]
			if !ok {
				continue
			}

			// Baseline for the correction target: trust a stored snapshot,
			// otherwise aggregate the template amounts.
			baseline := Nutrition{}
			if meal.Nutrition != nil {
				baseline = *meal.Nutrition
			} else {
				baseline, _ = Aggregate(meal.Ingredients, catalog)
			}

			ingredients := ScaleIngredients(meal.Ingredients, factor)
			current, missing := Aggregate(ingredients, catalog)

			ingredients = OptimizeMeal(ingredients, current, mealTarget(baseline, factor, target, goal), catalog)
			final, _ := Aggregate(ingredients, catalog)

			for _, name := range missing {
				if !seenMissing[name] {
					seenMissing[name] = true
					res.MissingIngredients = append(res.MissingIngredients, name)
				}
			}

			snapshot := final
			scaled.Meals[slot] = Meal{Ingredients: ingredients, Nutrition: &snapshot}
			scaled.Totals.Calories += final.Calories
			scaled.Totals.Protein += final.Protein
			scaled.Totals.Carbs += final.Carbs
			scaled.Totals.Fat += final.Fat
		}
		scaled.Totals = roundNutrition(scaled.Totals)
		res.Days[dayKey] = scaled

		if len(scaled.Meals) > 0 {
			daysWithMeals++
			weekTotal.Calories += scaled.Totals.Calories
			weekTotal.Protein += scaled.Totals.Protein
			weekTotal.Carbs += scaled.Totals.Carbs
			weekTotal.Fat += scaled.Totals.Fat
		}
	}

	if daysWithMeals > 0 {
		n := float64(daysWithMeals)
		res.WeekAverage = roundNutrition(Nutrition{
			Calories: weekTotal.Calories / n,
			Protein:  weekTotal.Protein / n,
			Carbs:    weekTotal.Carbs / n,
			Fat:      weekTotal.Fat / n,
		})
	}
	return res
}

// mealTarget derives the correction target for one meal. The meal's calorie
// goal is its own baseline scaled by the factor, so corrections stay local
// to the meal; macro gram goals are the daily gram goals weighted by the
// meal's share of daily target calories.
func mealTarget(baseline Nutrition, factor float64, target Target, goal Nutrition) Nutrition {
	t := Nutrition{Calories: baseline.Calories * factor}
	if target.Calories > 0 && t.Calories > 0 {
		share := t.Calories / target.Calories
		t.Protein = goal.Protein * share
		t.Carbs = goal.Carbs * share
		t.Fat = goal.Fat * share
	}
	return t
}
