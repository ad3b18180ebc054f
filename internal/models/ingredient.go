package models

import "gorm.io/gorm"

// Ingredient is one nutrient catalog entry. Nutrient values are defined per
// reference quantity of UnitType: one piece, one handful, 100 g or 100 ml.
type Ingredient struct {
	gorm.Model
	Name     string `gorm:"size:255;not null;uniqueIndex"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	UnitType string `gorm:"size:50;not null;default:'per_100g'"` // per_piece, per_100g, per_ml, per_handful
	Active   bool   `gorm:"default:true"`
}
