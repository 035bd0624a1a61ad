package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyRoundTrip(t *testing.T) {
	day, err := ParseDay("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", DayKey(day))

	_, err = ParseDay("03/01/2025")
	assert.Error(t, err)
}

func TestNextDay(t *testing.T) {
	assert.Equal(t, "2025-03-01", NextDay("2025-02-28"))
	assert.Equal(t, "2024-02-29", NextDay("2024-02-28")) // leap year
	assert.Equal(t, "2026-01-01", NextDay("2025-12-31"))
	assert.Equal(t, "", NextDay("not-a-date"))
}

func TestDaysAgo(t *testing.T) {
	today := DayKey(time.Now())
	assert.Equal(t, today, DaysAgo(0))
	assert.Equal(t, today, NextDay(DaysAgo(1)))
}
