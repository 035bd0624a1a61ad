package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FitnessMetric is one day's synced activity data for one user.
type FitnessMetric struct {
	ID                string `gorm:"primaryKey;size:36"`
	UserID            uint   `gorm:"index:idx_metric_user_date,unique;not null"`
	Date              string `gorm:"index:idx_metric_user_date,unique;size:10;not null"`
	Steps             int
	CaloriesBurned    int
	HeartRateAvg      int
	HeartRateMin      int
	HeartRateMax      int
	HeartRateReadings datatypes.JSON // [{time, value}]
	Distance          int            // meters
	ActiveMinutes     int
	Source            string `gorm:"size:16"` // manual | google_fit | device
	SyncedAt          time.Time
}

type FitnessGoal struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex;not null"`
	DailySteps     int
	DailyCalories  int
	ActiveMinutes  int
	WeeklyWorkouts int
}
