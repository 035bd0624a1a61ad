package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/models"
)

func newUserService(t *testing.T) (*UserService, *GamificationService, *models.User) {
	db := newTestDB(t)
	gam := NewGamificationService(db)

	user := models.User{Email: "jane@example.com", Password: "hashed", Name: "Jane"}
	require.NoError(t, db.Create(&user).Error)

	return NewUserService(db, gam), gam, &user
}

func TestUpdateProfile(t *testing.T) {
	svc, _, user := newUserService(t)

	err := svc.UpdateProfile(user.ID, ProfileInput{
		Birthday:      "1995-06-15",
		Sex:           "female",
		Height:        168,
		Weight:        62,
		ActivityLevel: "moderate",
		FitnessGoal:   "maintain_fitness",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile["name"]) // empty input keeps existing value
	assert.Equal(t, "1995-06-15", profile["birthday"])
	assert.Equal(t, 168.0, profile["height"])
	assert.Greater(t, profile["age"], 25)

	bmi, ok := profile["bmi"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 22.0, bmi, 0.5)
	assert.Equal(t, "Normal weight", profile["bmi_category"])

	err = svc.UpdateProfile(9999, ProfileInput{Name: "Ghost"})
	assert.Error(t, err)
}

func TestCompleteOnboarding_AwardsOnce(t *testing.T) {
	svc, gam, user := newUserService(t)

	input := ProfileInput{Sex: "female", Height: 168, Weight: 62, Birthday: "1995-06-15"}
	require.NoError(t, svc.CompleteOnboarding(user.ID, input))

	profile, err := gam.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, PointValues[ReasonProfileCompleted], profile.TotalPoints)

	// onboarding again never double-pays
	require.NoError(t, svc.CompleteOnboarding(user.ID, input))
	profile, err = gam.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, PointValues[ReasonProfileCompleted], profile.TotalPoints)

	got, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, true, got["onboarded"])
}

func TestRecommendedGoals_RequiresProfile(t *testing.T) {
	svc, _, user := newUserService(t)

	_, err := svc.RecommendedGoals(user.ID)
	require.Error(t, err)

	require.NoError(t, svc.UpdateProfile(user.ID, ProfileInput{
		Birthday:      "1995-06-15",
		Sex:           "female",
		Height:        168,
		Weight:        62,
		ActivityLevel: "moderate",
		FitnessGoal:   "lose_weight",
	}))

	goals, err := svc.RecommendedGoals(user.ID)
	require.NoError(t, err)
	assert.Greater(t, goals.Calories, 1000.0)
	assert.Equal(t, 99.0, goals.Protein) // 62kg x 1.6g
}

func TestDeleteAccount(t *testing.T) {
	svc, _, user := newUserService(t)

	require.NoError(t, svc.DeleteAccount(user.ID))
	_, err := svc.GetProfile(user.ID)
	assert.Error(t, err)

	assert.Error(t, svc.DeleteAccount(user.ID))
}
