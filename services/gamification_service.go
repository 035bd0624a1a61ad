// services/gamification_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fittrack/models"
	"fittrack/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var streakTypes = []ActivityType{ActivityWorkout, ActivityNutrition, ActivityHydration}

// GamificationEvent is fanned out to websocket clients (and, for badges, as a
// push notification) whenever the engine changes something user-visible.
type GamificationEvent struct {
	Type      string    `json:"type"` // badge_earned | level_up | streak_milestone
	BadgeID   string    `json:"badgeId,omitempty"`
	BadgeName string    `json:"badgeName,omitempty"`
	Points    int       `json:"points,omitempty"`
	Level     int       `json:"level,omitempty"`
	Streak    int       `json:"streak,omitempty"`
	Activity  string    `json:"activity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// GamificationService owns the per-user profile, streaks, badges and activity
// log. All state goes through the injected *gorm.DB; the service keeps no
// profile data in memory.
type GamificationService struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[uint]*sync.Mutex

	hub  *RealtimeHub
	push *PushService
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{db: db, locks: make(map[uint]*sync.Mutex)}
}

// SetNotifiers wires the optional realtime/push fan-out. Tests skip it.
func (s *GamificationService) SetNotifiers(hub *RealtimeHub, push *PushService) {
	s.hub = hub
	s.push = push
}

// userLock serializes mutations per user. A hydration POST and a workout POST
// landing together would otherwise race the read-modify-write on the profile
// row and lose an update.
func (s *GamificationService) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *GamificationService) emit(userID uint, ev GamificationEvent) {
	ev.Timestamp = time.Now()
	if s.hub != nil {
		s.hub.BroadcastEvent(userID, ev)
	}
}

// InitializeUserGamification creates the profile, streak records and counters
// for a new user. Idempotent: calling it again returns the existing profile.
func (s *GamificationService) InitializeUserGamification(userID uint) (*models.GamificationProfile, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return s.ensureProfileLocked(userID)
}

func (s *GamificationService) ensureProfileLocked(userID uint) (*models.GamificationProfile, error) {
	profile := models.GamificationProfile{UserID: userID}
	err := s.db.
		Where("user_id = ?", userID).
		Attrs(models.GamificationProfile{
			Level:             1,
			PointsToNextLevel: LevelThresholds[1],
			LastActive:        time.Now(),
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}

	for _, t := range streakTypes {
		rec := models.StreakRecord{UserID: userID, Type: string(t)}
		if err := s.db.
			Where("user_id = ? AND type = ?", userID, string(t)).
			FirstOrCreate(&rec).Error; err != nil {
			return nil, err
		}
		cnt := models.ActivityCounter{UserID: userID, Type: string(t)}
		if err := s.db.
			Where("user_id = ? AND type = ?", userID, string(t)).
			FirstOrCreate(&cnt).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

// GetProfile lazily creates the profile on first read.
func (s *GamificationService) GetProfile(userID uint) (*models.GamificationProfile, error) {
	return s.InitializeUserGamification(userID)
}

// AwardPoints adds points, resolves level-ups, logs the award, and runs one
// badge evaluation pass. The activity tag labels the award; it does not gate
// anything by itself.
func (s *GamificationService) AwardPoints(userID uint, activity ActivityType, reason string, points int) (*models.GamificationProfile, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := s.ensureProfileLocked(userID)
	if err != nil {
		return nil, err
	}
	if err := s.awardLocked(profile, activity, reason, points); err != nil {
		return nil, err
	}
	if _, err := s.evaluateBadgesLocked(userID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// awardLocked applies a point delta without evaluating badges. Badge bonus
// points go through here too, which is what keeps badge evaluation to a
// single pass per external event.
func (s *GamificationService) awardLocked(p *models.GamificationProfile, activity ActivityType, reason string, points int) error {
	leveled := applyPointsDelta(p, points)
	p.LastActive = time.Now()

	// The profile write must land before the log entries; the log is
	// advisory and never read back to rebuild state.
	if err := s.db.Save(p).Error; err != nil {
		return err
	}

	meta, _ := json.Marshal(map[string]string{"activity": string(activity)})
	entry := models.ActivityLogEntry{
		UserID:      p.UserID,
		Type:        models.LogPointsEarned,
		Description: reason,
		Points:      points,
		Metadata:    datatypes.JSON(meta),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return err
	}

	if leveled {
		up := models.ActivityLogEntry{
			UserID:      p.UserID,
			Type:        models.LogLevelUp,
			Description: fmt.Sprintf("Reached level %d", p.Level),
		}
		if err := s.db.Create(&up).Error; err != nil {
			return err
		}
		s.emit(p.UserID, GamificationEvent{Type: models.LogLevelUp, Level: p.Level})
	}
	return nil
}

// IncrementActivityCount bumps the explicit per-activity counter consumed by
// count-requirement badges and returns the new count. Domain services call
// this at the moment that counts (workout finished, meal logged, hydration
// goal met) — never the engine itself.
func (s *GamificationService) IncrementActivityCount(userID uint, activity ActivityType) (int, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	cnt := models.ActivityCounter{UserID: userID, Type: string(activity)}
	if err := s.db.
		Where("user_id = ? AND type = ?", userID, string(activity)).
		FirstOrCreate(&cnt).Error; err != nil {
		return 0, err
	}
	cnt.Count++
	if err := s.db.Save(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt.Count, nil
}

// UpdateStreak records one day's success or failure for one activity type.
//
// Same-day repeats are no-ops, a consecutive day increments, a gap restarts
// at 1, and success=false zeroes the streak immediately. Milestone bonuses
// fire on the exact 7/30/100 crossing, not on every day at or above it.
func (s *GamificationService) UpdateStreak(userID uint, typ ActivityType, date string, success bool) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := s.ensureProfileLocked(userID)
	if err != nil {
		return err
	}

	rec := models.StreakRecord{UserID: userID, Type: string(typ)}
	if err := s.db.
		Where("user_id = ? AND type = ?", userID, string(typ)).
		FirstOrCreate(&rec).Error; err != nil {
		return err
	}

	if !success {
		if rec.CurrentStreak != 0 {
			rec.CurrentStreak = 0
			if err := s.db.Save(&rec).Error; err != nil {
				return err
			}
		}
		return s.refreshOverallLocked(profile)
	}

	if rec.LastDate == date {
		return nil // one increment per calendar day
	}

	switch {
	case rec.LastDate == "":
		rec.CurrentStreak = 1
	case date == utils.NextDay(rec.LastDate):
		rec.CurrentStreak++
	case date > rec.LastDate:
		rec.CurrentStreak = 1 // gap: restart
	default:
		return nil // out-of-order report for an earlier day; ignore
	}
	rec.LastDate = date
	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}
	if err := s.db.Save(&rec).Error; err != nil {
		return err
	}

	if err := s.refreshOverallLocked(profile); err != nil {
		return err
	}

	var bonusReason string
	switch rec.CurrentStreak {
	case 7:
		bonusReason = ReasonStreakBonus7
	case 30:
		bonusReason = ReasonStreakBonus30
	case 100:
		bonusReason = ReasonStreakBonus100
	}
	if bonusReason != "" {
		if err := s.awardLocked(profile, typ, bonusReason, PointValues[bonusReason]); err != nil {
			return err
		}
		milestone := models.ActivityLogEntry{
			UserID:      userID,
			Type:        models.LogStreakMilestone,
			Description: fmt.Sprintf("%d-day %s streak", rec.CurrentStreak, typ),
			Points:      PointValues[bonusReason],
		}
		if err := s.db.Create(&milestone).Error; err != nil {
			return err
		}
		s.emit(userID, GamificationEvent{
			Type:     models.LogStreakMilestone,
			Streak:   rec.CurrentStreak,
			Activity: string(typ),
			Points:   PointValues[bonusReason],
		})
	}

	_, err = s.evaluateBadgesLocked(userID, profile)
	return err
}

// refreshOverallLocked recomputes the "all three active" streak as the min of
// the per-type streaks and persists it on the profile.
func (s *GamificationService) refreshOverallLocked(p *models.GamificationProfile) error {
	streaks, err := s.currentStreaksLocked(p.UserID)
	if err != nil {
		return err
	}
	overall := -1
	for _, t := range streakTypes {
		if overall < 0 || streaks[t] < overall {
			overall = streaks[t]
		}
	}
	if overall < 0 {
		overall = 0
	}
	if p.OverallStreak == overall {
		return nil
	}
	p.OverallStreak = overall
	return s.db.Save(p).Error
}

func (s *GamificationService) currentStreaksLocked(userID uint) (map[ActivityType]int, error) {
	var recs []models.StreakRecord
	if err := s.db.Where("user_id = ?", userID).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make(map[ActivityType]int, len(streakTypes))
	for _, t := range streakTypes {
		out[t] = 0
	}
	for _, r := range recs {
		out[ActivityType(r.Type)] = r.CurrentStreak
	}
	return out, nil
}

func (s *GamificationService) countersLocked(userID uint) (map[ActivityType]int, error) {
	var cnts []models.ActivityCounter
	if err := s.db.Where("user_id = ?", userID).Find(&cnts).Error; err != nil {
		return nil, err
	}
	out := make(map[ActivityType]int, len(cnts))
	for _, c := range cnts {
		out[ActivityType(c.Type)] = c.Count
	}
	return out, nil
}

// evaluateBadgesLocked runs one pass over the catalog and grants everything
// newly eligible. Bonus points from a grant do not re-enter evaluation
// within the same pass; the next external event picks them up.
func (s *GamificationService) evaluateBadgesLocked(userID uint, profile *models.GamificationProfile) ([]Badge, error) {
	earned, err := s.earnedIDsLocked(userID)
	if err != nil {
		return nil, err
	}
	counters, err := s.countersLocked(userID)
	if err != nil {
		return nil, err
	}
	streaks, err := s.currentStreaksLocked(userID)
	if err != nil {
		return nil, err
	}

	var awarded []Badge
	for _, badge := range BadgeCatalog {
		if earned[badge.ID] {
			continue
		}
		if badgeProgress(badge, profile, counters, streaks) < badge.Requirement.Value {
			continue
		}
		if err := s.grantBadgeLocked(profile, badge); err != nil {
			return awarded, err
		}
		awarded = append(awarded, badge)
	}
	return awarded, nil
}

// badgeProgress is the current value measured against badge.Requirement.Value.
func badgeProgress(badge Badge, profile *models.GamificationProfile, counters, streaks map[ActivityType]int) int {
	switch badge.Requirement.Type {
	case RequirePoints:
		return profile.TotalPoints
	case RequireCount:
		return counters[badge.Requirement.Activity]
	case RequireStreak:
		if badge.Requirement.Activity != "" {
			return streaks[badge.Requirement.Activity]
		}
		max := 0
		for _, v := range streaks {
			if v > max {
				max = v
			}
		}
		return max
	}
	return 0
}

func (s *GamificationService) earnedIDsLocked(userID uint) (map[string]bool, error) {
	var rows []models.UserBadge
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		set[r.BadgeID] = true
	}
	return set, nil
}

func (s *GamificationService) grantBadgeLocked(profile *models.GamificationProfile, badge Badge) error {
	row := models.UserBadge{
		UserID:   profile.UserID,
		BadgeID:  badge.ID,
		EarnedAt: time.Now(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return err
	}

	entry := models.ActivityLogEntry{
		UserID:      profile.UserID,
		Type:        models.LogBadgeEarned,
		Description: fmt.Sprintf("Earned badge: %s", badge.Name),
		Points:      badge.Points,
		BadgeID:     badge.ID,
		BadgeName:   badge.Name,
		BadgeIcon:   badge.Icon,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return err
	}

	// Bonus points, without nested badge evaluation.
	if err := s.awardLocked(profile, ActivityGeneral, "badge_"+badge.ID, badge.Points); err != nil {
		return err
	}

	s.emit(profile.UserID, GamificationEvent{
		Type:      models.LogBadgeEarned,
		BadgeID:   badge.ID,
		BadgeName: badge.Name,
		Points:    badge.Points,
	})
	if s.push != nil {
		s.push.PushToUser(profile.UserID, "Badge unlocked!",
			fmt.Sprintf("%s %s — %s", badge.Icon, badge.Name, badge.Description),
			map[string]string{"type": "badge_earned", "badgeId": badge.ID})
	}
	return nil
}

// AwardBadge grants a specific catalog badge directly. Idempotent per badge
// id: a second call returns the existing earn record.
func (s *GamificationService) AwardBadge(userID uint, badge Badge) (*models.UserBadge, error) {
	if _, ok := BadgeByID(badge.ID); !ok {
		return nil, errors.New("unknown badge id")
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := s.ensureProfileLocked(userID)
	if err != nil {
		return nil, err
	}

	var existing models.UserBadge
	err = s.db.Where("user_id = ? AND badge_id = ?", userID, badge.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.grantBadgeLocked(profile, badge); err != nil {
		return nil, err
	}
	var created models.UserBadge
	if err := s.db.Where("user_id = ? AND badge_id = ?", userID, badge.ID).First(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// EarnedBadge joins a user's earn record with its catalog entry.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earnedAt"`
	Seen     bool      `json:"seen"`
}

// GetUserBadges returns earned badges, newest first.
func (s *GamificationService) GetUserBadges(userID uint) ([]EarnedBadge, error) {
	return s.badgesQuery(userID, 0)
}

func (s *GamificationService) GetRecentBadges(userID uint, limit int) ([]EarnedBadge, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.badgesQuery(userID, limit)
}

func (s *GamificationService) badgesQuery(userID uint, limit int) ([]EarnedBadge, error) {
	var rows []models.UserBadge
	q := s.db.Where("user_id = ?", userID).Order("earned_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]EarnedBadge, 0, len(rows))
	for _, r := range rows {
		badge, ok := BadgeByID(r.BadgeID)
		if !ok {
			continue // stale id from an older catalog
		}
		out = append(out, EarnedBadge{Badge: badge, EarnedAt: r.EarnedAt, Seen: r.Seen})
	}
	return out, nil
}

// MarkBadgesAsSeen clears the unread flag. Unknown or already-seen ids are
// no-ops.
func (s *GamificationService) MarkBadgesAsSeen(userID uint, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	return s.db.Model(&models.UserBadge{}).
		Where("user_id = ? AND badge_id IN ?", userID, badgeIDs).
		Update("seen", true).Error
}

type StreakSummary struct {
	Workout   int `json:"workout"`
	Nutrition int `json:"nutrition"`
	Hydration int `json:"hydration"`
	Overall   int `json:"overall"`
}

func (s *GamificationService) GetStreaks(userID uint) (*StreakSummary, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if _, err := s.ensureProfileLocked(userID); err != nil {
		return nil, err
	}
	streaks, err := s.currentStreaksLocked(userID)
	if err != nil {
		return nil, err
	}
	sum := &StreakSummary{
		Workout:   streaks[ActivityWorkout],
		Nutrition: streaks[ActivityNutrition],
		Hydration: streaks[ActivityHydration],
	}
	sum.Overall = sum.Workout
	if sum.Nutrition < sum.Overall {
		sum.Overall = sum.Nutrition
	}
	if sum.Hydration < sum.Overall {
		sum.Overall = sum.Hydration
	}
	return sum, nil
}

// NextBadgeProgress describes the single unearned badge closest to
// completion by percentage.
type NextBadgeProgress struct {
	Badge    Badge `json:"badge"`
	Progress int   `json:"progress"`
	Total    int   `json:"total"`
}

func (s *GamificationService) GetNextBadgeProgress(userID uint) (*NextBadgeProgress, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	profile, err := s.ensureProfileLocked(userID)
	if err != nil {
		return nil, err
	}
	earned, err := s.earnedIDsLocked(userID)
	if err != nil {
		return nil, err
	}
	counters, err := s.countersLocked(userID)
	if err != nil {
		return nil, err
	}
	streaks, err := s.currentStreaksLocked(userID)
	if err != nil {
		return nil, err
	}

	var best *NextBadgeProgress
	bestPct := 0.0
	for _, badge := range BadgeCatalog {
		if earned[badge.ID] {
			continue
		}
		progress := badgeProgress(badge, profile, counters, streaks)
		pct := float64(progress) / float64(badge.Requirement.Value) * 100
		if pct >= 100 {
			pct = 100
		}
		if pct > bestPct && pct < 100 {
			bestPct = pct
			best = &NextBadgeProgress{Badge: badge, Progress: progress, Total: badge.Requirement.Value}
		}
	}
	return best, nil
}

func (s *GamificationService) GetActivityLogs(userID uint, limit int) ([]models.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var logs []models.ActivityLogEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// GetLeaderboard ranks profiles by total points.
func (s *GamificationService) GetLeaderboard(limit int) ([]models.GamificationProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var profiles []models.GamificationProfile
	err := s.db.
		Order("total_points DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
