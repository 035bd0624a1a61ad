package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GamificationProfile is the one-per-user aggregate the engine mutates.
// TotalPoints only ever grows; level fields are derived from it.
type GamificationProfile struct {
	gorm.Model
	UserID             uint `gorm:"uniqueIndex;not null"`
	TotalPoints        int  `gorm:"not null;default:0"`
	Level              int  `gorm:"not null;default:1"`
	CurrentLevelPoints int  `gorm:"not null;default:0"`
	PointsToNextLevel  int  `gorm:"not null;default:0"`
	OverallStreak      int  `gorm:"not null;default:0"` // min of the three activity streaks
	LastActive         time.Time
}

type StreakRecord struct {
	gorm.Model
	UserID        uint   `gorm:"index:idx_streak_user_type,unique;not null"`
	Type          string `gorm:"index:idx_streak_user_type,unique;size:16;not null"` // workout | nutrition | hydration
	CurrentStreak int    `gorm:"not null;default:0"`
	LongestStreak int    `gorm:"not null;default:0"`
	LastDate      string `gorm:"size:10"` // YYYY-MM-DD of the last successful day
}

// UserBadge records a badge earned by a user. Badges are never revoked;
// the only mutation after creation is flipping Seen.
type UserBadge struct {
	gorm.Model
	UserID   uint   `gorm:"index:idx_badge_user_id,unique;not null"`
	BadgeID  string `gorm:"index:idx_badge_user_id,unique;size:64;not null"`
	Seen     bool   `gorm:"not null;default:false"`
	EarnedAt time.Time
}

// ActivityCounter is a per-(user, activity) running total consumed by
// count-requirement badges. Incremented explicitly by domain services.
type ActivityCounter struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_counter_user_type,unique;not null"`
	Type   string `gorm:"index:idx_counter_user_type,unique;size:16;not null"`
	Count  int    `gorm:"not null;default:0"`
}

const (
	LogPointsEarned    = "points_earned"
	LogBadgeEarned     = "badge_earned"
	LogLevelUp         = "level_up"
	LogStreakMilestone = "streak_milestone"
)

// ActivityLogEntry is append-only and advisory: it is never read back to
// recompute profile state.
type ActivityLogEntry struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Type        string `gorm:"size:24;not null"`
	Description string `gorm:"type:text"`
	Points      int
	BadgeID     string `gorm:"size:64"`
	BadgeName   string
	BadgeIcon   string `gorm:"size:16"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time `gorm:"index"`
}
