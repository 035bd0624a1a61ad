// services/hydration_service.go
package services

import (
	"encoding/json"
	"errors"
	"time"

	"fittrack/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const DefaultHydrationGoalML = 2500

type IntakeEvent struct {
	Time   time.Time `json:"time"`
	Amount float64   `json:"amount"`
}

type HydrationService struct {
	db  *gorm.DB
	gam *GamificationService
}

func NewHydrationService(db *gorm.DB, gam *GamificationService) *HydrationService {
	return &HydrationService{db: db, gam: gam}
}

// GetForDate returns the day's entry, or nil if nothing was logged.
func (s *HydrationService) GetForDate(userID uint, date string) (*models.HydrationEntry, error) {
	var entry models.HydrationEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddWater accumulates the day's intake and fires the gamification triggers
// on goal crossings. The goal-met award, counter bump and streak mark happen
// on the pour that crosses the goal, once per day; the bonus fires on
// crossing 150% of the goal.
func (s *HydrationService) AddWater(userID uint, date string, amount, goal float64) (*models.HydrationEntry, error) {
	if goal <= 0 {
		goal = DefaultHydrationGoalML
	}

	entry := models.HydrationEntry{UserID: userID, Date: date}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Attrs(models.HydrationEntry{Goal: goal}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}

	prev := entry.Amount
	entry.Amount += amount

	var intakes []IntakeEvent
	if len(entry.Intakes) > 0 {
		_ = json.Unmarshal(entry.Intakes, &intakes)
	}
	intakes = append(intakes, IntakeEvent{Time: time.Now(), Amount: amount})
	raw, _ := json.Marshal(intakes)
	entry.Intakes = datatypes.JSON(raw)

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}

	if prev < entry.Goal && entry.Amount >= entry.Goal {
		count, err := s.gam.IncrementActivityCount(userID, ActivityHydration)
		if err != nil {
			return nil, err
		}
		if count == 1 {
			if _, err := s.gam.AwardPoints(userID, ActivityHydration, ReasonFirstHydrationLog, PointValues[ReasonFirstHydrationLog]); err != nil {
				return nil, err
			}
		}
		if _, err := s.gam.AwardPoints(userID, ActivityHydration, ReasonHydrationGoalMet, PointValues[ReasonHydrationGoalMet]); err != nil {
			return nil, err
		}
		if err := s.gam.UpdateStreak(userID, ActivityHydration, date, true); err != nil {
			return nil, err
		}
	}

	if prev < entry.Goal*1.5 && entry.Amount >= entry.Goal*1.5 {
		if _, err := s.gam.AwardPoints(userID, ActivityHydration, ReasonHydrationBonus, PointValues[ReasonHydrationBonus]); err != nil {
			return nil, err
		}
	}

	return &entry, nil
}

// History returns the most recent daily entries, newest first.
func (s *HydrationService) History(userID uint, limit int) ([]models.HydrationEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.HydrationEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
