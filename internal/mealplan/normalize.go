package mealplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stored plans exist in two historical shapes: days whose meals live under a
// nested "meals" object, and days whose meal keys sit at the top level next
// to non-meal keys such as cached daily totals. Both are normalized here,
// once, so nothing downstream branches on the source shape.

// dayKeys maps source day spellings to the canonical vocabulary.
var dayKeys = map[string]string{
	"monday": "monday", "maandag": "monday",
	"tuesday": "tuesday", "dinsdag": "tuesday",
	"wednesday": "wednesday", "woensdag": "wednesday",
	"thursday": "thursday", "donderdag": "thursday",
	"friday": "friday", "vrijdag": "friday",
	"saturday": "saturday", "zaterdag": "saturday",
	"sunday": "sunday", "zondag": "sunday",
}

// mealKeys maps source meal-slot spellings to the canonical vocabulary.
var mealKeys = map[string]string{
	"breakfast": "breakfast", "ontbijt": "breakfast",
	"morning-snack": "morning-snack", "morning_snack": "morning-snack",
	"ochtend_snack": "morning-snack", "snack1": "morning-snack",
	"lunch":           "lunch",
	"afternoon-snack": "afternoon-snack", "afternoon_snack": "afternoon-snack",
	"lunch_snack": "afternoon-snack", "snack2": "afternoon-snack",
	"dinner": "dinner", "diner": "dinner", "avondeten": "dinner",
	"evening-snack": "evening-snack", "evening_snack": "evening-snack",
	"avond_snack": "evening-snack", "snack3": "evening-snack",
}

type rawIngredient struct {
	Name       string   `json:"name"`
	Amount     float64  `json:"amount"`
	BaseAmount *float64 `json:"baseAmount"`
	Unit       string   `json:"unit"`
}

type rawNutrition struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

type rawMeal struct {
	Ingredients []rawIngredient `json:"ingredients"`
	Nutrition   *rawNutrition   `json:"nutrition"`
}

// Normalize converts a stored weekly plan document into the canonical
// WeekPlan. Unknown day keys and non-meal keys are dropped, meal and day
// synonyms are translated, and complete stored nutrition snapshots are
// carried through untouched.
func Normalize(doc []byte) (WeekPlan, error) {
	var days map[string]json.RawMessage
	if err := json.Unmarshal(doc, &days); err != nil {
		return nil, fmt.Errorf("invalid plan document: %w", err)
	}

	week := make(WeekPlan)
	for key, rawDay := range days {
		canonical, ok := dayKeys[normalizeKey(key)]
		if !ok {
			continue
		}
		day, err := normalizeDay(rawDay)
		if err != nil {
			return nil, fmt.Errorf("day %q: %w", key, err)
		}
		week[canonical] = day
	}
	return week, nil
}

func normalizeDay(raw json.RawMessage) (Day, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	// Shape (a): meals nested under a "meals" object.
	if nested, ok := fields["meals"]; ok {
		if err := json.Unmarshal(nested, &fields); err != nil {
			return nil, fmt.Errorf("meals object: %w", err)
		}
	}

	// Shape (b) is the same map with meal keys at the top level; anything
	// that does not translate to a meal slot is a cache field and is skipped.
	day := make(Day)
	for key, rawSlot := range fields {
		slot, ok := mealKeys[normalizeKey(key)]
		if !ok {
			continue
		}
		meal, err := normalizeMeal(rawSlot)
		if err != nil {
			return nil, fmt.Errorf("meal %q: %w", key, err)
		}
		day[slot] = meal
	}
	return day, nil
}

func normalizeMeal(raw json.RawMessage) (Meal, error) {
	var rm rawMeal
	if err := json.Unmarshal(raw, &rm); err != nil {
		return Meal{}, err
	}

	meal := Meal{Ingredients: make([]Ingredient, 0, len(rm.Ingredients))}
	for _, ri := range rm.Ingredients {
		amount := ri.Amount
		if ri.BaseAmount != nil {
			amount = *ri.BaseAmount
		}
		meal.Ingredients = append(meal.Ingredients, Ingredient{
			Name:   ri.Name,
			Amount: amount,
			Unit:   ri.Unit,
		})
	}

	// A stored snapshot is only trusted when all four fields are present.
	if n := rm.Nutrition; n != nil && n.Calories != nil && n.Protein != nil && n.Carbs != nil && n.Fat != nil {
		meal.Nutrition = &Nutrition{
			Calories: *n.Calories,
			Protein:  *n.Protein,
			Carbs:    *n.Carbs,
			Fat:      *n.Fat,
		}
	}
	return meal, nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
