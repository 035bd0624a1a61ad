package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HydrationEntry accumulates one user's water intake for one calendar day.
type HydrationEntry struct {
	gorm.Model
	UserID  uint    `gorm:"index:idx_hydration_user_date,unique;not null"`
	Date    string  `gorm:"index:idx_hydration_user_date,unique;size:10;not null"` // YYYY-MM-DD
	Amount  float64 // ml consumed so far
	Goal    float64 // daily goal in ml
	Intakes datatypes.JSON // [{time, amount}] individual pours
}
