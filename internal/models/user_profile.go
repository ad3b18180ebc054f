package models

import "gorm.io/gorm"

// UserProfile holds a member's nutrition goals and body data. TargetCalories
// of zero means no explicit goal; the service then falls back to the plan's
// own target or a TDEE estimate.
type UserProfile struct {
	gorm.Model
	UserID         uint `gorm:"not null;uniqueIndex"`
	User           User `gorm:"foreignKey:UserID"`
	Age            int
	WeightKG       float64
	HeightCM       float64
	Sex            string `gorm:"size:10"`
	ActivityLevel  string `gorm:"size:20;default:'moderate'"`
	TargetCalories int
	ProteinPct     float64
	CarbsPct       float64
	FatPct         float64
}
