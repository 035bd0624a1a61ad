package models

import (
	"time"

	"gorm.io/datatypes"
)

type WorkoutPlan struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	Name      string
	Goal      string `gorm:"size:24"` // weight_loss | muscle_gain | flexibility | endurance | general_fitness
	StartDate string `gorm:"size:10"`
	EndDate   string `gorm:"size:10"`
	Sessions  []WorkoutSession `gorm:"foreignKey:PlanID"`
	CreatedAt time.Time
}

// WorkoutSession snapshots its exercise list as JSON at generation time, so
// later catalog edits don't rewrite history.
type WorkoutSession struct {
	ID                 string `gorm:"primaryKey;size:48"`
	PlanID             string `gorm:"index;size:36"`
	UserID             uint   `gorm:"index;not null"`
	Date               string `gorm:"index;size:10;not null"`
	Name               string
	Type               string `gorm:"size:16"`
	Difficulty         string `gorm:"size:16"`
	TotalDuration      int    // minutes
	Completed          bool   `gorm:"not null;default:false"`
	CompletedAt        *time.Time
	Exercises          datatypes.JSON // []services.Exercise snapshot
	CompletedExercises datatypes.JSON // []string of exercise ids
}
