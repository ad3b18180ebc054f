package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email     string `gorm:"size:255;uniqueIndex"`
	FirstName string
	LastName  string
	Name      string
	Role      string `gorm:"default:'member'"`
	IsAdmin   bool
}
