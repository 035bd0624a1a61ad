package services

import "fittrack/models"

// ActivityType tags every point award and streak update explicitly. It is
// never derived from the reason string.
type ActivityType string

const (
	ActivityWorkout   ActivityType = "workout"
	ActivityNutrition ActivityType = "nutrition"
	ActivityHydration ActivityType = "hydration"
	ActivityGeneral   ActivityType = "general"
)

// Point values per award reason. These are part of the wire contract:
// changing one breaks compatibility of every stored point total.
const (
	ReasonWorkoutCompleted      = "workout_completed"
	ReasonWorkoutCompletedBonus = "workout_completed_bonus"
	ReasonHydrationGoalMet      = "hydration_goal_met"
	ReasonHydrationBonus        = "hydration_bonus"
	ReasonMealLogged            = "meal_logged"
	ReasonDailyNutritionGoal    = "daily_nutrition_goal"
	ReasonStreakBonus7          = "streak_bonus_7"
	ReasonStreakBonus30         = "streak_bonus_30"
	ReasonStreakBonus100        = "streak_bonus_100"
	ReasonProfileCompleted      = "profile_completed"
	ReasonFirstWorkout          = "first_workout"
	ReasonFirstMealLog          = "first_meal_log"
	ReasonFirstHydrationLog     = "first_hydration_log"
)

var PointValues = map[string]int{
	ReasonWorkoutCompleted:      50,
	ReasonWorkoutCompletedBonus: 25,
	ReasonHydrationGoalMet:      20,
	ReasonHydrationBonus:        10,
	ReasonMealLogged:            15,
	ReasonDailyNutritionGoal:    30,
	ReasonStreakBonus7:          100,
	ReasonStreakBonus30:         500,
	ReasonStreakBonus100:        2000,
	ReasonProfileCompleted:      100,
	ReasonFirstWorkout:          200,
	ReasonFirstMealLog:          150,
	ReasonFirstHydrationLog:     100,
}

// LevelThresholds[i] is the cumulative point total at which level i+1 starts.
var LevelThresholds = []int{
	0, 100, 250, 500, 1000, 2000, 3500, 5500, 8000, 12000, 17000, 25000, 35000, 50000, 75000,
}

// nextBand is the width of the point band from `level` to level+1. Past the
// fixed table it extrapolates the previous band by 1.5x, rounded down —
// integer division keeps repeated awards reproducible.
func nextBand(level, prevBand int) int {
	if level < len(LevelThresholds) {
		return LevelThresholds[level] - LevelThresholds[level-1]
	}
	return prevBand * 3 / 2
}

// applyPointsDelta adds delta to the profile's totals and resolves any
// level-ups by stepping through the bands. Returns true if the level changed.
// Levels never decrease: a non-positive delta leaves the level alone.
func applyPointsDelta(p *models.GamificationProfile, delta int) bool {
	p.TotalPoints += delta
	p.CurrentLevelPoints += delta

	before := p.Level
	for p.PointsToNextLevel > 0 && p.CurrentLevelPoints >= p.PointsToNextLevel {
		p.CurrentLevelPoints -= p.PointsToNextLevel
		p.Level++
		p.PointsToNextLevel = nextBand(p.Level, p.PointsToNextLevel)
	}
	return p.Level > before
}
