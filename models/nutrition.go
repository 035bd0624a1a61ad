package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionGoal holds each user's daily macro targets.
type NutritionGoal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // e.g. 2200 kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
}

type FoodEntry struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"index;size:10;not null"`
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Quantity float64
	Unit     string `gorm:"size:24"`
	MealType string `gorm:"size:16"` // breakfast | lunch | dinner | snack
}

type MealPlan struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    uint   `gorm:"index;not null"`
	Name      string
	Goal      string `gorm:"size:24"`
	StartDate string `gorm:"size:10"`
	EndDate   string `gorm:"size:10"`
	Meals     []MealPlanEntry `gorm:"foreignKey:MealPlanID"`
	CreatedAt time.Time
}

type MealPlanEntry struct {
	ID           string `gorm:"primaryKey;size:48"`
	MealPlanID   string `gorm:"index;size:36;not null"`
	Date         string `gorm:"size:10"`
	MealType     string `gorm:"size:16"`
	Foods        []MealPlanFood `gorm:"foreignKey:MealPlanEntryID"`
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
}

type MealPlanFood struct {
	ID              uint   `gorm:"primaryKey"`
	MealPlanEntryID string `gorm:"index;size:48;not null"`
	Name            string
	Calories        float64
	Protein         float64
	Carbs           float64
	Fat             float64
	Quantity        float64
}
