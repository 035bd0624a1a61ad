package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	Name           string
	Birthday       time.Time
	Sex            string  `gorm:"size:10"`
	Height         float64 // cm
	Weight         float64 // kg
	ActivityLevel  string  `gorm:"size:16"` // sedentary | light | moderate | active | very_active
	FitnessGoal    string  `gorm:"size:24"` // lose_weight | gain_muscle | maintain_fitness
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Onboarded      bool
}
