package utils

import "time"

const DayLayout = "2006-01-02"

// DayKey formats a time as the YYYY-MM-DD bucket used throughout the API.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// NextDay returns the day after the given YYYY-MM-DD key. Invalid input
// returns "" so callers can treat it as a gap.
func NextDay(day string) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(DayLayout)
}

// DaysAgo returns the YYYY-MM-DD key n days before now.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(DayLayout)
}
