package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealPlan is a weekly template plan. Days holds the raw weekly document as
// authored: older plans nest meals under a "meals" object per day, newer
// ones put meal keys directly on the day. The scaling core normalizes both.
type MealPlan struct {
	gorm.Model
	Title          string `gorm:"size:255;not null"`
	Description    string `gorm:"type:text"`
	TargetCalories int    `gorm:"not null"`
	ProteinPct     float64
	CarbsPct       float64
	FatPct         float64
	CategoryID     *uint
	Category       Category `gorm:"foreignKey:CategoryID"`
	Active         bool     `gorm:"default:false"`
	Days           datatypes.JSON
}
