package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkoutService(t *testing.T) (*WorkoutService, *GamificationService) {
	db := newTestDB(t)
	gam := NewGamificationService(db)
	return NewWorkoutService(db, gam), gam
}

func TestGeneratePlan(t *testing.T) {
	svc, _ := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "muscle_gain", "2025-03-01", 2)
	require.NoError(t, err)
	assert.Equal(t, "Muscle Building Program", plan.Name)
	assert.Len(t, plan.Sessions, 8) // 2 weeks x 4 sessions

	for _, s := range plan.Sessions {
		assert.Equal(t, "strength", s.Type)
		assert.Equal(t, "intermediate", s.Difficulty)
		assert.Equal(t, 60, s.TotalDuration)
		assert.Len(t, decodeExercises(s.Exercises), 4) // catalog has 4 strength exercises
		assert.False(t, s.Completed)
	}

	_, err = svc.GeneratePlan(1, "not-a-goal", "2025-03-01", 2)
	assert.Error(t, err)
	_, err = svc.GeneratePlan(1, "endurance", "bad-date", 2)
	assert.Error(t, err)
}

func TestGeneratePlan_TypeRotation(t *testing.T) {
	svc, _ := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "weight_loss", "2025-03-01", 1)
	require.NoError(t, err)
	require.Len(t, plan.Sessions, 5)
	assert.Equal(t, "hiit", plan.Sessions[0].Type)
	assert.Equal(t, "cardio", plan.Sessions[1].Type)
	assert.Equal(t, "strength", plan.Sessions[2].Type)
	assert.Equal(t, "hiit", plan.Sessions[3].Type)
	assert.Equal(t, "beginner", plan.Sessions[0].Difficulty)
}

func TestCompleteExercise_FullSession(t *testing.T) {
	svc, gam := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "muscle_gain", "2025-03-01", 1)
	require.NoError(t, err)
	session := plan.Sessions[0]
	exercises := decodeExercises(session.Exercises)
	require.Len(t, exercises, 4)

	for i, ex := range exercises {
		updated, err := svc.CompleteExercise(1, session.ID, ex.ID)
		require.NoError(t, err)
		if i < len(exercises)-1 {
			assert.False(t, updated.Completed)
		} else {
			assert.True(t, updated.Completed)
			assert.NotNil(t, updated.CompletedAt)
		}
	}

	p, err := gam.GetProfile(1)
	require.NoError(t, err)
	// 4 x per-exercise + first workout + long-session bonus + first-workout badge bonus
	want := 4*PointValues[ReasonWorkoutCompleted] +
		PointValues[ReasonFirstWorkout] +
		PointValues[ReasonWorkoutCompletedBonus] +
		50
	assert.Equal(t, want, p.TotalPoints)

	streaks, err := gam.GetStreaks(1)
	require.NoError(t, err)
	assert.Equal(t, 1, streaks.Workout)

	badges, err := gam.GetUserBadges(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "first-workout", badges[0].ID)
}

func TestCompleteExercise_Idempotent(t *testing.T) {
	svc, gam := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "flexibility", "2025-03-01", 1)
	require.NoError(t, err)
	session := plan.Sessions[0]
	ex := decodeExercises(session.Exercises)[0]

	_, err = svc.CompleteExercise(1, session.ID, ex.ID)
	require.NoError(t, err)
	p, _ := gam.GetProfile(1)
	points := p.TotalPoints

	_, err = svc.CompleteExercise(1, session.ID, ex.ID)
	require.NoError(t, err)
	p, _ = gam.GetProfile(1)
	assert.Equal(t, points, p.TotalPoints)

	_, err = svc.CompleteExercise(1, session.ID, "not-in-session")
	assert.Error(t, err)
	_, err = svc.CompleteExercise(1, "no-such-session", ex.ID)
	assert.Error(t, err)
}

func TestUncompleteExercise(t *testing.T) {
	svc, gam := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "muscle_gain", "2025-03-01", 1)
	require.NoError(t, err)
	session := plan.Sessions[0]
	exercises := decodeExercises(session.Exercises)

	for _, ex := range exercises {
		_, err := svc.CompleteExercise(1, session.ID, ex.ID)
		require.NoError(t, err)
	}
	p, _ := gam.GetProfile(1)
	points := p.TotalPoints

	updated, err := svc.UncompleteExercise(1, session.ID, exercises[0].ID)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)

	// points stay earned
	p, _ = gam.GetProfile(1)
	assert.Equal(t, points, p.TotalPoints)

	// clearing every tick drops the day's streak mark
	for _, ex := range exercises[1:] {
		_, err := svc.UncompleteExercise(1, session.ID, ex.ID)
		require.NoError(t, err)
	}
	streaks, err := gam.GetStreaks(1)
	require.NoError(t, err)
	assert.Equal(t, 0, streaks.Workout)
}

func TestWorkoutProgress(t *testing.T) {
	svc, _ := newWorkoutService(t)

	plan, err := svc.GeneratePlan(1, "muscle_gain", "2025-03-01", 1)
	require.NoError(t, err)
	session := plan.Sessions[0]
	for _, ex := range decodeExercises(session.Exercises) {
		_, err := svc.CompleteExercise(1, session.ID, ex.ID)
		require.NoError(t, err)
	}

	progress, err := svc.GetProgress(1, "2025-03-01", "2025-03-07")
	require.NoError(t, err)
	require.NotEmpty(t, progress)

	day := progress[0]
	assert.Equal(t, "2025-03-01", day.Date)
	assert.Equal(t, 1, day.CompletedSessions)
	assert.Equal(t, 4, day.CompletedExercises)
	assert.Equal(t, 60, day.TotalDuration)
	assert.Greater(t, day.CaloriesBurned, 0)
}

func TestExerciseCatalogIntegrity(t *testing.T) {
	assert.Len(t, ExerciseCatalog, 12)

	seen := map[string]bool{}
	byType := map[string]int{}
	for _, ex := range ExerciseCatalog {
		assert.False(t, seen[ex.ID], "duplicate exercise id %s", ex.ID)
		seen[ex.ID] = true
		byType[ex.Type]++
		assert.NotEmpty(t, ex.Instructions)
		assert.NotEmpty(t, ex.TargetMuscles)
	}
	assert.Equal(t, 4, byType["strength"])
	assert.Equal(t, 1, byType["cardio"])
	assert.Equal(t, 2, byType["hiit"])
	assert.Equal(t, 3, byType["yoga"])
	assert.Equal(t, 2, byType["flexibility"])
}
