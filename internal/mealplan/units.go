package mealplan

import (
	"math"
	"strings"
)

type unitClass int

const (
	classPiece unitClass = iota
	classHandful
	classMass
	classVolume
	classTablespoon
	classTeaspoon
	classUnknown
)

// Spoon conversions are approximate kitchen constants, not ingredient
// specific: 1 eetlepel = 15 g, 1 theelepel = 5 g.
const (
	tablespoonGrams = 15.0
	teaspoonGrams   = 5.0
)

// classifyUnit maps the loosely typed unit strings found in stored plans to
// a unit class. Dutch synonyms come from the historical plan data.
func classifyUnit(unit string) unitClass {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "per_piece", "stuk", "stuks", "piece", "pieces":
		return classPiece
	case "per_handful", "handje", "handful":
		return classHandful
	case "per_100g", "g", "gr", "gram", "grams":
		return classMass
	case "per_ml", "ml":
		return classVolume
	case "eetlepel", "el", "tbsp":
		return classTablespoon
	case "theelepel", "tl", "tsp":
		return classTeaspoon
	default:
		return classUnknown
	}
}

// multiplier converts an amount in its unit to the number of reference
// quantities of the nutrient record. Unknown units fall back to the per-100g
// convention on purpose; liquids share that convention (density ~1).
func multiplier(amount float64, unit string) float64 {
	switch classifyUnit(unit) {
	case classPiece, classHandful:
		return amount
	case classTablespoon:
		return amount * tablespoonGrams / 100
	case classTeaspoon:
		return amount * teaspoonGrams / 100
	default:
		return amount / 100
	}
}

// roundingRule returns the grid the scaled amount snaps to and the minimum
// amount for the unit class. Grams snap to 5, milliliters to 10, countable
// things to 1. The result is always a shoppable whole quantity.
func roundingRule(unit string) (grid, floor float64) {
	switch classifyUnit(unit) {
	case classMass:
		return 5, 5
	case classVolume:
		return 10, 10
	default:
		return 1, 1
	}
}

// SnapAmount rounds an amount to the grid of its unit class and clamps it to
// the class floor. Output is a positive integer multiple of the grid.
func SnapAmount(amount float64, unit string) float64 {
	grid, floor := roundingRule(unit)
	snapped := math.Round(amount/grid) * grid
	if snapped < floor {
		snapped = floor
	}
	return snapped
}
