package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeCatalogIntegrity(t *testing.T) {
	assert.Len(t, BadgeCatalog, 16)

	seen := map[string]bool{}
	for _, b := range BadgeCatalog {
		assert.False(t, seen[b.ID], "duplicate badge id %s", b.ID)
		seen[b.ID] = true

		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Icon)
		assert.Greater(t, b.Requirement.Value, 0)
		assert.Greater(t, b.Points, 0)

		switch b.Requirement.Type {
		case RequirePoints, RequireCount, RequireStreak:
		default:
			t.Errorf("badge %s has unknown requirement type %q", b.ID, b.Requirement.Type)
		}
	}
}

func TestBadgeByID(t *testing.T) {
	badge, ok := BadgeByID("first-workout")
	require.True(t, ok)
	assert.Equal(t, "First Steps", badge.Name)
	assert.Equal(t, RequireCount, badge.Requirement.Type)

	_, ok = BadgeByID("does-not-exist")
	assert.False(t, ok)
}
