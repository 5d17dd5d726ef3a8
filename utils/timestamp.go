package utils

import "time"

// Export timestamps are a mix of seconds and milliseconds with no format
// flag; anything above this decimal magnitude is taken as already-ms.
const millisThreshold = 9_999_999_999

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ResolveMillis normalizes a mixed-unit timestamp to milliseconds.
func ResolveMillis(ts int64) int64 {
	if ts > millisThreshold {
		return ts
	}
	return ts * 1000
}

// Year returns the local calendar year of a mixed-unit timestamp.
func Year(ts int64) int {
	return time.UnixMilli(ResolveMillis(ts)).Year()
}

// Hour returns the local hour of day (0-23).
func Hour(ts int64) int {
	return time.UnixMilli(ResolveMillis(ts)).Hour()
}

// DayKey returns the UTC calendar date string used for streak detection.
func DayKey(ts int64) string {
	return time.UnixMilli(ResolveMillis(ts)).UTC().Format("2006-01-02")
}

// MonthKeyInYear returns the three-letter month label if the timestamp falls
// in the given year, otherwise the empty string. Year filtering happens here,
// at the point of bucketing.
func MonthKeyInYear(ts int64, year int) string {
	t := time.UnixMilli(ResolveMillis(ts))
	if t.Year() != year {
		return ""
	}
	return monthLabels[t.Month()-1]
}

// MonthLabels returns the twelve fixed month labels in calendar order.
func MonthLabels() []string {
	return monthLabels[:]
}
