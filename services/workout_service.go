// services/workout_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fittrack/models"
	"fittrack/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkoutService struct {
	db  *gorm.DB
	gam *GamificationService
}

func NewWorkoutService(db *gorm.DB, gam *GamificationService) *WorkoutService {
	return &WorkoutService{db: db, gam: gam}
}

// GeneratePlan lays out sessions week by week from the goal's template,
// cycling through its session types. Each session snapshots its exercises.
func (s *WorkoutService) GeneratePlan(userID uint, goal, startDate string, weeks int) (*models.WorkoutPlan, error) {
	template, ok := workoutTemplates[goal]
	if !ok {
		return nil, fmt.Errorf("unknown fitness goal: %s", goal)
	}
	if weeks <= 0 {
		weeks = 4
	}
	start, err := utils.ParseDay(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	plan := models.WorkoutPlan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      template.Name,
		Goal:      goal,
		StartDate: startDate,
		EndDate:   utils.DayKey(start.AddDate(0, 0, weeks*7)),
	}

	for week := 0; week < weeks; week++ {
		for i := 0; i < template.SessionsPerWeek; i++ {
			sessionDate := start.AddDate(0, 0, week*7+i)
			sessionType := template.Types[i%len(template.Types)]

			exRaw, _ := json.Marshal(exercisesForType(sessionType, goal))
			emptyIDs, _ := json.Marshal([]string{})

			plan.Sessions = append(plan.Sessions, models.WorkoutSession{
				ID:                 fmt.Sprintf("%s-%d-%d", plan.ID, week, i),
				PlanID:             plan.ID,
				UserID:             userID,
				Date:               utils.DayKey(sessionDate),
				Name:               fmt.Sprintf("%s - Day %d", template.Name, i+1),
				Type:               sessionType,
				Difficulty:         difficultyForGoal(goal),
				TotalDuration:      template.Duration,
				Exercises:          datatypes.JSON(exRaw),
				CompletedExercises: datatypes.JSON(emptyIDs),
			})
		}
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *WorkoutService) GetPlans(userID uint) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := s.db.
		Preload("Sessions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *WorkoutService) GetSessions(userID uint, startDate, endDate string) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&sessions).Error
	return sessions, err
}

func (s *WorkoutService) GetTodaysWorkout(userID uint) (*models.WorkoutSession, error) {
	today := utils.DayKey(time.Now())
	var session models.WorkoutSession
	err := s.db.Where("user_id = ? AND date = ?", userID, today).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *WorkoutService) getSession(userID uint, sessionID string) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := s.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("workout session not found")
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func decodeIDs(raw datatypes.JSON) []string {
	var ids []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &ids)
	}
	return ids
}

func decodeExercises(raw datatypes.JSON) []Exercise {
	var exs []Exercise
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &exs)
	}
	return exs
}

// CompleteExercise ticks one exercise off a session. Each first-time tick
// earns points; completing the last exercise finishes the session, bumps
// the workout counter (with the starter award on the very first workout),
// grants the long-session bonus for sessions over 45 minutes, and marks
// the workout streak for the session's date.
func (s *WorkoutService) CompleteExercise(userID uint, sessionID, exerciseID string) (*models.WorkoutSession, error) {
	session, err := s.getSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	exercises := decodeExercises(session.Exercises)
	known := false
	for _, ex := range exercises {
		if ex.ID == exerciseID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("exercise %s is not part of this session", exerciseID)
	}

	done := decodeIDs(session.CompletedExercises)
	for _, id := range done {
		if id == exerciseID {
			return session, nil
		}
	}

	done = append(done, exerciseID)
	raw, _ := json.Marshal(done)
	session.CompletedExercises = datatypes.JSON(raw)

	if _, err := s.gam.AwardPoints(userID, ActivityWorkout, ReasonWorkoutCompleted, PointValues[ReasonWorkoutCompleted]); err != nil {
		return nil, err
	}

	if len(done) == len(exercises) && !session.Completed {
		now := time.Now()
		session.Completed = true
		session.CompletedAt = &now

		count, err := s.gam.IncrementActivityCount(userID, ActivityWorkout)
		if err != nil {
			return nil, err
		}
		if count == 1 {
			if _, err := s.gam.AwardPoints(userID, ActivityWorkout, ReasonFirstWorkout, PointValues[ReasonFirstWorkout]); err != nil {
				return nil, err
			}
		}
		if session.TotalDuration > 45 {
			if _, err := s.gam.AwardPoints(userID, ActivityWorkout, ReasonWorkoutCompletedBonus, PointValues[ReasonWorkoutCompletedBonus]); err != nil {
				return nil, err
			}
		}
		if err := s.gam.UpdateStreak(userID, ActivityWorkout, session.Date, true); err != nil {
			return nil, err
		}
	}

	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// UncompleteExercise unticks an exercise and reopens the session. Points
// already earned are kept; clearing the last tick drops the day's workout
// streak mark.
func (s *WorkoutService) UncompleteExercise(userID uint, sessionID, exerciseID string) (*models.WorkoutSession, error) {
	session, err := s.getSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	done := decodeIDs(session.CompletedExercises)
	kept := done[:0]
	for _, id := range done {
		if id != exerciseID {
			kept = append(kept, id)
		}
	}
	raw, _ := json.Marshal(kept)
	session.CompletedExercises = datatypes.JSON(raw)
	session.Completed = false
	session.CompletedAt = nil

	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}

	if len(kept) == 0 {
		if err := s.gam.UpdateStreak(userID, ActivityWorkout, session.Date, false); err != nil {
			return nil, err
		}
	}
	return session, nil
}

type DayProgress struct {
	Date               string `json:"date"`
	CompletedSessions  int    `json:"completedSessions"`
	TotalSessions      int    `json:"totalSessions"`
	CompletedExercises int    `json:"completedExercises"`
	TotalExercises     int    `json:"totalExercises"`
	TotalDuration      int    `json:"totalDuration"`
	CaloriesBurned     int    `json:"caloriesBurned"`
}

// GetProgress aggregates session state per day over a date range. Duration
// and calories only count finished sessions.
func (s *WorkoutService) GetProgress(userID uint, startDate, endDate string) ([]DayProgress, error) {
	sessions, err := s.GetSessions(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	byDate := map[string]*DayProgress{}
	var order []string
	for _, session := range sessions {
		p, ok := byDate[session.Date]
		if !ok {
			p = &DayProgress{Date: session.Date}
			byDate[session.Date] = p
			order = append(order, session.Date)
		}

		exercises := decodeExercises(session.Exercises)
		p.TotalSessions++
		p.TotalExercises += len(exercises)
		p.CompletedExercises += len(decodeIDs(session.CompletedExercises))

		if session.Completed {
			p.CompletedSessions++
			p.TotalDuration += session.TotalDuration
			for _, ex := range exercises {
				p.CaloriesBurned += ex.CaloriesBurned
			}
		}
	}

	progress := make([]DayProgress, 0, len(order))
	for _, date := range order {
		progress = append(progress, *byDate[date])
	}
	return progress, nil
}

type WeeklySummary struct {
	CompletedSessions    int     `json:"completedSessions"`
	TotalSessions        int     `json:"totalSessions"`
	CompletionPercentage float64 `json:"completionPercentage"`
	TotalDuration        int     `json:"totalDuration"`
	CaloriesBurned       int     `json:"caloriesBurned"`
}

// GetWeeklySummary covers the current calendar week, Sunday through Saturday.
func (s *WorkoutService) GetWeeklySummary(userID uint) (*WeeklySummary, error) {
	now := time.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	sessions, err := s.GetSessions(userID, utils.DayKey(weekStart), utils.DayKey(weekEnd))
	if err != nil {
		return nil, err
	}

	summary := WeeklySummary{TotalSessions: len(sessions)}
	for _, session := range sessions {
		if !session.Completed {
			continue
		}
		summary.CompletedSessions++
		summary.TotalDuration += session.TotalDuration
		for _, ex := range decodeExercises(session.Exercises) {
			summary.CaloriesBurned += ex.CaloriesBurned
		}
	}
	if summary.TotalSessions > 0 {
		summary.CompletionPercentage = float64(summary.CompletedSessions) / float64(summary.TotalSessions) * 100
	}
	return &summary, nil
}
