package common

import "time"

// DayKeyLayout is the canonical serialization format for calendar days.
// Day keys sort lexicographically in chronological order, which lets
// persisted day markers be compared without parsing.
const DayKeyLayout = "2006-01-02"

// StartOfDay returns local midnight of the day containing t.
//
// The location attached to t decides where "midnight" falls; day-scoped
// grants follow the device's calendar, not UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the first weekStart on or before t.
//
// Example:
//   - t = Wednesday 2025-10-15 14:23, weekStart = Monday
//   - result = Monday 2025-10-13 00:00
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}

// DayKey returns the canonical string key for the calendar day containing t.
func DayKey(t time.Time) string {
	return StartOfDay(t).Format(DayKeyLayout)
}

// ParseDayKey parses a day key produced by DayKey back into local midnight
// in the given location. Returns the zero time for an empty or malformed key,
// which callers treat as "never".
func ParseDayKey(key string, loc *time.Location) time.Time {
	if key == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(DayKeyLayout, key, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}
