package services

import (
	"testing"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
)

func freshProfile() *models.GamificationProfile {
	return &models.GamificationProfile{
		UserID:            1,
		Level:             1,
		PointsToNextLevel: LevelThresholds[1],
	}
}

func TestApplyPointsDelta_NoLevelUp(t *testing.T) {
	p := freshProfile()
	leveled := applyPointsDelta(p, 50)
	assert.False(t, leveled)
	assert.Equal(t, 50, p.TotalPoints)
	assert.Equal(t, 50, p.CurrentLevelPoints)
	assert.Equal(t, 1, p.Level)
}

func TestApplyPointsDelta_CarryAcrossBands(t *testing.T) {
	p := freshProfile()
	leveled := applyPointsDelta(p, 260)
	assert.True(t, leveled)
	// 260: -100 to level 2, -150 to level 3, 10 left over
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 10, p.CurrentLevelPoints)
	assert.Equal(t, 250, p.PointsToNextLevel)
}

func TestNextBand_TableAndExtrapolation(t *testing.T) {
	// within the table the band is the threshold difference
	assert.Equal(t, 100, nextBand(1, 0))
	assert.Equal(t, 150, nextBand(2, 100))
	assert.Equal(t, 25000, nextBand(14, 15000))

	// past the table: previous band times 1.5, rounded down
	assert.Equal(t, 37500, nextBand(15, 25000))
	assert.Equal(t, 37501, nextBand(15, 25001))
	assert.Equal(t, 56250, nextBand(16, 37500))
}

func TestApplyPointsDelta_BeyondTable(t *testing.T) {
	p := &models.GamificationProfile{
		UserID:             1,
		TotalPoints:        50000,
		Level:              14,
		CurrentLevelPoints: 0,
		PointsToNextLevel:  25000,
	}
	leveled := applyPointsDelta(p, 25000)
	assert.True(t, leveled)
	assert.Equal(t, 15, p.Level)
	assert.Equal(t, 0, p.CurrentLevelPoints)
	assert.Equal(t, 37500, p.PointsToNextLevel)
}
