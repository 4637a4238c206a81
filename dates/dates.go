package dates

import (
	"time"

	"github.com/itchyny/timefmt-go"
)

// ─────────────────────────────────────────────────────────────────────────────
// Unit boundaries
//
// All boundary helpers preserve the location of their input. End boundaries
// are the last representable instant of the unit (23:59:59.999999999).
// ─────────────────────────────────────────────────────────────────────────────

// StartOfDay returns t snapped to 00:00:00 of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns 00:00:00 of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -daysSinceMonday))
}

// EndOfWeek returns the last nanosecond of the Sunday of t's week.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns 00:00:00 of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	// Day zero of the next month normalises to the last day of this one.
	y, m, _ := t.Date()
	return EndOfDay(time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()))
}

// StartOfYear returns 00:00:00 of January 1 of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of December 31 of t's year.
func EndOfYear(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic & classification
// ─────────────────────────────────────────────────────────────────────────────

// AddBusinessDays advances t by days business days, skipping Saturdays and
// Sundays. Negative days walk backwards. The time of day is preserved; when
// t itself falls on a weekend the first step moves off it.
func AddBusinessDays(t time.Time, days int) time.Time {
	step := 1
	if days < 0 {
		step, days = -1, -days
	}
	for days > 0 {
		t = t.AddDate(0, 0, step)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days--
		}
	}
	return t
}

// Quarter returns the quarter of t's year, 1 through 4.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// WeekNumber returns the ISO 8601 week number of t, 1 through 53.
// Around New Year the week may belong to the adjacent year, per ISO rules.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Between reports whether t lies within [start, end], bounds included.
// Returns false when start is after end.
func Between(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pattern formatting
// ─────────────────────────────────────────────────────────────────────────────

// Format renders t using an strftime-style pattern (%Y, %m, %d, %H, %M, %S,
// %B for the month name, and so on).
//
//	Format(t, "%Y-%m-%d") // "2024-07-01"
func Format(t time.Time, pattern string) string {
	return timefmt.Format(t, pattern)
}

// Parse interprets value according to an strftime-style pattern, the
// counterpart to [Format]. Returns an error when value does not match the
// pattern.
func Parse(value, pattern string) (time.Time, error) {
	return timefmt.Parse(value, pattern)
}
