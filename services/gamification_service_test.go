package services

import (
	"fmt"
	"strings"
	"testing"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.GamificationProfile{},
		&models.StreakRecord{},
		&models.UserBadge{},
		&models.ActivityCounter{},
		&models.ActivityLogEntry{},
		&models.HydrationEntry{},
		&models.NutritionGoal{},
		&models.FoodEntry{},
		&models.MealPlan{},
		&models.MealPlanEntry{},
		&models.MealPlanFood{},
		&models.WorkoutPlan{},
		&models.WorkoutSession{},
		&models.FitnessMetric{},
		&models.FitnessGoal{},
		&models.ChatMessage{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestInitializeUserGamification(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	profile, err := svc.InitializeUserGamification(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 0, profile.TotalPoints)
	assert.Equal(t, LevelThresholds[1], profile.PointsToNextLevel)

	// second call returns the same profile, no duplicates
	again, err := svc.InitializeUserGamification(1)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)

	var streakCount, counterCount int64
	db.Model(&models.StreakRecord{}).Where("user_id = ?", 1).Count(&streakCount)
	db.Model(&models.ActivityCounter{}).Where("user_id = ?", 1).Count(&counterCount)
	assert.EqualValues(t, 3, streakCount)
	assert.EqualValues(t, 3, counterCount)
}

func TestAwardPoints_LevelProgression(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	p, err := svc.AwardPoints(1, ActivityWorkout, ReasonWorkoutCompleted, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 50, p.CurrentLevelPoints)
	assert.Equal(t, 100, p.PointsToNextLevel)

	p, err = svc.AwardPoints(1, ActivityWorkout, ReasonWorkoutCompleted, 50)
	require.NoError(t, err)
	assert.Equal(t, 100, p.TotalPoints)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 0, p.CurrentLevelPoints)
	assert.Equal(t, 150, p.PointsToNextLevel)
}

func TestAwardPoints_MultiLevelJump(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	p, err := svc.AwardPoints(1, ActivityGeneral, "import", 1000)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Level)
	assert.Equal(t, 0, p.CurrentLevelPoints)
	assert.Equal(t, 1000, p.PointsToNextLevel)

	// a level_up entry was logged
	var entries []models.ActivityLogEntry
	require.NoError(t, db.Where("user_id = ? AND type = ?", 1, models.LogLevelUp).Find(&entries).Error)
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "level 5")
}

func TestAwardPoints_LevelNeverDecreases(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	last := 1
	for i := 0; i < 40; i++ {
		p, err := svc.AwardPoints(1, ActivityWorkout, ReasonWorkoutCompleted, 50)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Level, last)
		last = p.Level
	}
}

func TestUpdateStreak_Semantics(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	streakOf := func() int {
		var rec models.StreakRecord
		require.NoError(t, db.Where("user_id = ? AND type = ?", 1, "hydration").First(&rec).Error)
		return rec.CurrentStreak
	}

	t.Run("FirstDay", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-01", true))
		assert.Equal(t, 1, streakOf())
	})

	t.Run("SameDayIdempotent", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-01", true))
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-01", true))
		assert.Equal(t, 1, streakOf())
	})

	t.Run("ConsecutiveDayIncrements", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-02", true))
		assert.Equal(t, 2, streakOf())
	})

	t.Run("OutOfOrderIgnored", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-02-27", true))
		assert.Equal(t, 2, streakOf())
	})

	t.Run("GapRestartsAtOne", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-05", true))
		assert.Equal(t, 1, streakOf())
	})

	t.Run("FailureResetsImmediately", func(t *testing.T) {
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-06", true))
		assert.Equal(t, 2, streakOf())
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-06", false))
		assert.Equal(t, 0, streakOf())
	})

	t.Run("LongestStreakSurvivesReset", func(t *testing.T) {
		var rec models.StreakRecord
		require.NoError(t, db.Where("user_id = ? AND type = ?", 1, "hydration").First(&rec).Error)
		assert.Equal(t, 2, rec.LongestStreak)
	})
}

func TestUpdateStreak_MilestoneBonusOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	for d := 1; d <= 7; d++ {
		date := fmt.Sprintf("2025-03-%02d", d)
		require.NoError(t, svc.UpdateStreak(1, ActivityHydration, date, true))
	}

	p, err := svc.GetProfile(1)
	require.NoError(t, err)
	// 100 streak bonus + hydration-hero-bronze (150) + streak-starter (100)
	assert.Equal(t, 350, p.TotalPoints)

	var milestones []models.ActivityLogEntry
	require.NoError(t, db.Where("user_id = ? AND type = ?", 1, models.LogStreakMilestone).Find(&milestones).Error)
	require.Len(t, milestones, 1)
	assert.Equal(t, 100, milestones[0].Points)

	// repeating day 7 must not double anything
	require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-07", true))
	p, err = svc.GetProfile(1)
	require.NoError(t, err)
	assert.Equal(t, 350, p.TotalPoints)
}

func TestOverallStreakIsMinOfThree(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	require.NoError(t, svc.UpdateStreak(1, ActivityWorkout, "2025-03-01", true))
	require.NoError(t, svc.UpdateStreak(1, ActivityWorkout, "2025-03-02", true))
	require.NoError(t, svc.UpdateStreak(1, ActivityNutrition, "2025-03-02", true))

	streaks, err := svc.GetStreaks(1)
	require.NoError(t, err)
	assert.Equal(t, 2, streaks.Workout)
	assert.Equal(t, 1, streaks.Nutrition)
	assert.Equal(t, 0, streaks.Hydration)
	assert.Equal(t, 0, streaks.Overall)

	require.NoError(t, svc.UpdateStreak(1, ActivityHydration, "2025-03-02", true))
	streaks, err = svc.GetStreaks(1)
	require.NoError(t, err)
	assert.Equal(t, 1, streaks.Overall)

	p, err := svc.GetProfile(1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.OverallStreak)
}

func TestBadges_CountRequirement(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	count, err := svc.IncrementActivityCount(1, ActivityWorkout)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// badge evaluation runs on the next point award
	_, err = svc.AwardPoints(1, ActivityWorkout, ReasonFirstWorkout, PointValues[ReasonFirstWorkout])
	require.NoError(t, err)

	badges, err := svc.GetUserBadges(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "first-workout", badges[0].ID)
	assert.False(t, badges[0].Seen)

	// 200 award + 50 badge bonus
	p, err := svc.GetProfile(1)
	require.NoError(t, err)
	assert.Equal(t, 250, p.TotalPoints)
}

func TestBadges_NoDoubleGrant(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	_, err := svc.IncrementActivityCount(1, ActivityWorkout)
	require.NoError(t, err)
	_, err = svc.AwardPoints(1, ActivityWorkout, ReasonWorkoutCompleted, 50)
	require.NoError(t, err)
	_, err = svc.AwardPoints(1, ActivityWorkout, ReasonWorkoutCompleted, 50)
	require.NoError(t, err)

	badges, err := svc.GetUserBadges(1)
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestBadges_PermanentAfterStreakReset(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	for d := 1; d <= 7; d++ {
		require.NoError(t, svc.UpdateStreak(1, ActivityNutrition, fmt.Sprintf("2025-03-%02d", d), true))
	}
	badges, err := svc.GetUserBadges(1)
	require.NoError(t, err)
	require.Len(t, badges, 2) // meal-master-bronze + streak-starter

	require.NoError(t, svc.UpdateStreak(1, ActivityNutrition, "2025-03-08", false))

	after, err := svc.GetUserBadges(1)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestAwardBadge_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	badge, ok := BadgeByID("first-workout")
	require.True(t, ok)

	first, err := svc.AwardBadge(1, badge)
	require.NoError(t, err)
	second, err := svc.AwardBadge(1, badge)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.UserBadge{}).Where("user_id = ?", 1).Count(&count)
	assert.EqualValues(t, 1, count)

	_, err = svc.AwardBadge(1, Badge{ID: "not-a-badge"})
	assert.Error(t, err)
}

func TestMarkBadgesAsSeen(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	badge, _ := BadgeByID("first-workout")
	_, err := svc.AwardBadge(1, badge)
	require.NoError(t, err)

	require.NoError(t, svc.MarkBadgesAsSeen(1, []string{"first-workout", "unknown-badge"}))
	require.NoError(t, svc.MarkBadgesAsSeen(1, []string{"first-workout"})) // idempotent
	require.NoError(t, svc.MarkBadgesAsSeen(1, nil))

	badges, err := svc.GetUserBadges(1)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.True(t, badges[0].Seen)
}

func TestGetNextBadgeProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	for i := 0; i < 3; i++ {
		_, err := svc.IncrementActivityCount(1, ActivityWorkout)
		require.NoError(t, err)
	}

	next, err := svc.GetNextBadgeProgress(1)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "workout-warrior-bronze", next.Badge.ID)
	assert.Equal(t, 3, next.Progress)
	assert.Equal(t, 10, next.Total)
}

func TestGetActivityLogs(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	for i := 0; i < 15; i++ {
		_, err := svc.AwardPoints(1, ActivityNutrition, ReasonMealLogged, 15)
		require.NoError(t, err)
	}

	logs, err := svc.GetActivityLogs(1, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 10) // default limit

	logs, err = svc.GetActivityLogs(1, 5)
	require.NoError(t, err)
	require.Len(t, logs, 5)
	// newest first
	for i := 1; i < len(logs); i++ {
		assert.GreaterOrEqual(t, logs[i-1].ID, logs[i].ID)
	}
}

func TestGetLeaderboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewGamificationService(db)

	_, err := svc.AwardPoints(1, ActivityGeneral, "seed", 100)
	require.NoError(t, err)
	_, err = svc.AwardPoints(2, ActivityGeneral, "seed", 300)
	require.NoError(t, err)
	_, err = svc.AwardPoints(3, ActivityGeneral, "seed", 200)
	require.NoError(t, err)

	board, err := svc.GetLeaderboard(2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, uint(2), board[0].UserID)
	assert.Equal(t, uint(3), board[1].UserID)
}
