// services/recommendation_service.go
package services

import "math"

type RecommendedGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// RecommendGoals derives daily macro targets from Mifflin-St Jeor BMR
// scaled by activity level, then adjusted for the fitness goal.
func RecommendGoals(age int, weightKg, heightCm float64, sex, activityLevel, fitnessGoal string) RecommendedGoals {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	tdee := bmr * mult

	switch fitnessGoal {
	case "lose_weight":
		tdee *= 0.8
	case "gain_muscle":
		tdee *= 1.1
	}

	proteinPerKg := 1.6
	if fitnessGoal == "gain_muscle" {
		proteinPerKg = 2.2
	}
	protein := weightKg * proteinPerKg
	fat := tdee * 0.25 / 9
	carbs := (tdee - protein*4 - fat*9) / 4

	return RecommendedGoals{
		Calories: math.Round(tdee),
		Protein:  math.Round(protein),
		Carbs:    math.Round(carbs),
		Fat:      math.Round(fat),
	}
}
