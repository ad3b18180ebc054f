package service

import (
	"math"

	"github.com/media2net-app/toptiermen-sub008/internal/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// estimateCalories estimates a daily calorie target from body data using
// Mifflin-St Jeor BMR times the activity multiplier. Returns 0 when the
// profile lacks the data for a meaningful estimate.
func estimateCalories(p *models.UserProfile) float64 {
	if p.WeightKG <= 0 || p.HeightCM <= 0 || p.Age <= 0 {
		return 0
	}

	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	return math.Round(bmr * mult)
}
