package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendGoals(t *testing.T) {
	t.Run("MaintainMale", func(t *testing.T) {
		goals := RecommendGoals(30, 80, 180, "male", "moderate", "maintain")
		assert.Equal(t, 2759.0, goals.Calories)
		assert.Equal(t, 128.0, goals.Protein)
		assert.Equal(t, 389.0, goals.Carbs)
		assert.Equal(t, 77.0, goals.Fat)
	})

	t.Run("LoseWeightFemale", func(t *testing.T) {
		goals := RecommendGoals(28, 60, 165, "female", "light", "lose_weight")
		assert.Equal(t, 1463.0, goals.Calories)
		assert.Equal(t, 96.0, goals.Protein)
		assert.Equal(t, 178.0, goals.Carbs)
		assert.Equal(t, 41.0, goals.Fat)
	})

	t.Run("GainMuscleUsesHigherProtein", func(t *testing.T) {
		goals := RecommendGoals(25, 70, 175, "male", "active", "gain_muscle")
		assert.Equal(t, 3176.0, goals.Calories)
		assert.Equal(t, 154.0, goals.Protein)
		assert.Equal(t, 441.0, goals.Carbs)
		assert.Equal(t, 88.0, goals.Fat)
	})

	t.Run("UnknownActivityFallsBackToSedentary", func(t *testing.T) {
		got := RecommendGoals(30, 80, 180, "male", "couch", "maintain")
		want := RecommendGoals(30, 80, 180, "male", "sedentary", "maintain")
		assert.Equal(t, want, got)
	})
}
