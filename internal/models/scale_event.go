package models

import "gorm.io/gorm"

// ScaleEvent is the audit trail of scaling runs: who scaled which plan,
// with which factor, and how much catalog data was missing.
type ScaleEvent struct {
	gorm.Model
	UserID            uint     `gorm:"index"`
	User              User     `gorm:"foreignKey:UserID"`
	PlanID            uint     `gorm:"index"`
	Plan              MealPlan `gorm:"foreignKey:PlanID"`
	RequestID         string   `gorm:"size:36"`
	Factor            float64
	ReferenceCalories float64
	TargetCalories    float64
	MissingCount      int
}
