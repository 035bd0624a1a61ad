// services/fitness_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"fittrack/models"
	"fittrack/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FitnessProvider fetches one day of activity data from an external source.
type FitnessProvider interface {
	FetchDay(ctx context.Context, userID uint, date string) (*models.FitnessMetric, error)
}

type HeartRateReading struct {
	Time  time.Time `json:"time"`
	Value int       `json:"value"`
}

var defaultFitnessGoals = models.FitnessGoal{
	DailySteps:     10000,
	DailyCalories:  2000,
	ActiveMinutes:  30,
	WeeklyWorkouts: 4,
}

type FitnessService struct {
	db       *gorm.DB
	provider FitnessProvider
	// sleep is swappable so tests don't wait out the backoff.
	sleep func(time.Duration)
}

func NewFitnessService(db *gorm.DB, provider FitnessProvider) *FitnessService {
	return &FitnessService{db: db, provider: provider, sleep: time.Sleep}
}

// Sync pulls a day's data from the provider and upserts it, latest sync
// wins. Provider failures are retried up to three times with exponential
// backoff.
func (s *FitnessService) Sync(ctx context.Context, userID uint, date string) (*models.FitnessMetric, error) {
	var lastErr error
	for attempt := 0; attempt <= 3; attempt++ {
		if attempt > 0 {
			s.sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
		metric, err := s.provider.FetchDay(ctx, userID, date)
		if err != nil {
			lastErr = err
			continue
		}
		if metric == nil {
			return nil, errors.New("no data available")
		}
		if err := s.storeMetric(metric); err != nil {
			return nil, err
		}
		return metric, nil
	}
	return nil, fmt.Errorf("sync failed after retries: %w", lastErr)
}

func (s *FitnessService) storeMetric(metric *models.FitnessMetric) error {
	metric.SyncedAt = time.Now()
	if metric.ID == "" {
		metric.ID = uuid.NewString()
	}

	var existing models.FitnessMetric
	err := s.db.Where("user_id = ? AND date = ?", metric.UserID, metric.Date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(metric).Error
	}
	if err != nil {
		return err
	}
	metric.ID = existing.ID
	return s.db.Save(metric).Error
}

func (s *FitnessService) GetMetrics(userID uint, date string) (*models.FitnessMetric, error) {
	var metric models.FitnessMetric
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

func (s *FitnessService) GetMetricsRange(userID uint, startDate, endDate string) ([]models.FitnessMetric, error) {
	var metrics []models.FitnessMetric
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&metrics).Error
	return metrics, err
}

// GetGoals returns the user's targets, creating defaults on first access.
func (s *FitnessService) GetGoals(userID uint) (*models.FitnessGoal, error) {
	goals := models.FitnessGoal{UserID: userID}
	err := s.db.
		Where("user_id = ?", userID).
		Attrs(defaultFitnessGoals).
		FirstOrCreate(&goals).Error
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

func (s *FitnessService) UpdateGoals(userID uint, dailySteps, dailyCalories, activeMinutes, weeklyWorkouts int) (*models.FitnessGoal, error) {
	goals, err := s.GetGoals(userID)
	if err != nil {
		return nil, err
	}
	if dailySteps > 0 {
		goals.DailySteps = dailySteps
	}
	if dailyCalories > 0 {
		goals.DailyCalories = dailyCalories
	}
	if activeMinutes > 0 {
		goals.ActiveMinutes = activeMinutes
	}
	if weeklyWorkouts > 0 {
		goals.WeeklyWorkouts = weeklyWorkouts
	}
	if err := s.db.Save(goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

type WeeklyFitness struct {
	Steps         int `json:"steps"`
	Calories      int `json:"calories"`
	ActiveMinutes int `json:"activeMinutes"`
	ActiveDays    int `json:"activeDays"`
	AvgHeartRate  int `json:"avgHeartRate"`
}

// GetWeeklyProgress totals the current week, Sunday through today.
func (s *FitnessService) GetWeeklyProgress(userID uint) (*WeeklyFitness, error) {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))

	metrics, err := s.GetMetricsRange(userID, utils.DayKey(weekStart), utils.DayKey(now))
	if err != nil {
		return nil, err
	}

	week := WeeklyFitness{}
	hrSum := 0
	for _, m := range metrics {
		week.Steps += m.Steps
		week.Calories += m.CaloriesBurned
		week.ActiveMinutes += m.ActiveMinutes
		week.ActiveDays++
		hrSum += m.HeartRateAvg
	}
	if week.ActiveDays > 0 {
		week.AvgHeartRate = hrSum / week.ActiveDays
	}
	return &week, nil
}

type TrendPoint struct {
	Date          string `json:"date"`
	Steps         int    `json:"steps"`
	Calories      int    `json:"calories"`
	ActiveMinutes int    `json:"activeMinutes"`
	HeartRateAvg  int    `json:"heartRateAvg"`
}

// GetTrends returns one point per synced day over the last 30 days.
func (s *FitnessService) GetTrends(userID uint) ([]TrendPoint, error) {
	now := time.Now()
	metrics, err := s.GetMetricsRange(userID, utils.DayKey(now.AddDate(0, 0, -30)), utils.DayKey(now))
	if err != nil {
		return nil, err
	}

	trends := make([]TrendPoint, 0, len(metrics))
	for _, m := range metrics {
		trends = append(trends, TrendPoint{
			Date:          m.Date,
			Steps:         m.Steps,
			Calories:      m.CaloriesBurned,
			ActiveMinutes: m.ActiveMinutes,
			HeartRateAvg:  m.HeartRateAvg,
		})
	}
	return trends, nil
}

// SimulatedFitProvider stands in for a real wearable API. It generates
// plausible daily numbers and fails a small fraction of calls so the retry
// path gets exercised.
type SimulatedFitProvider struct {
	rng *rand.Rand
}

func NewSimulatedFitProvider() *SimulatedFitProvider {
	return &SimulatedFitProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *SimulatedFitProvider) FetchDay(ctx context.Context, userID uint, date string) (*models.FitnessMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.rng.Float64() < 0.05 {
		return nil, errors.New("rate limit exceeded")
	}

	steps := 8000 + p.rng.Intn(6000)
	hrAvg := 70 + p.rng.Intn(30)

	readings := make([]HeartRateReading, 0, 24)
	now := time.Now()
	for i := 0; i < 24; i++ {
		v := hrAvg + p.rng.Intn(20) - 10
		if v < 50 {
			v = 50
		}
		if v > 180 {
			v = 180
		}
		readings = append(readings, HeartRateReading{
			Time:  now.Add(-time.Duration(23-i) * time.Hour),
			Value: v,
		})
	}
	raw, _ := json.Marshal(readings)

	return &models.FitnessMetric{
		ID:                uuid.NewString(),
		UserID:            userID,
		Date:              date,
		Steps:             steps,
		CaloriesBurned:    1800 + p.rng.Intn(800),
		HeartRateAvg:      hrAvg,
		HeartRateMin:      hrAvg - 10 - p.rng.Intn(10),
		HeartRateMax:      hrAvg + 20 + p.rng.Intn(20),
		HeartRateReadings: datatypes.JSON(raw),
		Distance:          int(float64(steps) * 0.762),
		ActiveMinutes:     20 + p.rng.Intn(40),
		Source:            "google_fit",
	}, nil
}
