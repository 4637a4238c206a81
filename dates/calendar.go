package dates

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// Calendar answers now-relative questions against an injectable clock.
// The zero value is not usable; construct with [NewCalendar].
//
// All methods are safe for concurrent use as long as the underlying clock is;
// both the real clock and clockwork's fake clock are.
type Calendar struct {
	clock clockwork.Clock
}

// NewCalendar creates a Calendar that reads the current moment from clock.
// Pass clockwork.NewRealClock() for production use or
// clockwork.NewFakeClockAt(...) to pin "now" in tests.
func NewCalendar(clock clockwork.Clock) *Calendar {
	return &Calendar{clock: clock}
}

// defaultCalendar backs the package-level functions with the system clock.
var defaultCalendar = NewCalendar(clockwork.NewRealClock())

// Now returns the calendar's current moment.
func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

// ─────────────────────────────────────────────────────────────────────────────
// Same-day comparisons
//
// A time counts as today/yesterday/tomorrow when it falls on the respective
// calendar day, evaluated in the time's own location.
// ─────────────────────────────────────────────────────────────────────────────

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsToday reports whether t falls on the current calendar day.
func (c *Calendar) IsToday(t time.Time) bool {
	return sameDay(t, c.clock.Now().In(t.Location()))
}

// IsYesterday reports whether t falls on the calendar day before today.
func (c *Calendar) IsYesterday(t time.Time) bool {
	return sameDay(t, c.clock.Now().In(t.Location()).AddDate(0, 0, -1))
}

// IsTomorrow reports whether t falls on the calendar day after today.
func (c *Calendar) IsTomorrow(t time.Time) bool {
	return sameDay(t, c.clock.Now().In(t.Location()).AddDate(0, 0, 1))
}

// IsFuture reports whether t is strictly after the current moment.
func (c *Calendar) IsFuture(t time.Time) bool {
	return t.After(c.clock.Now())
}

// IsPast reports whether t is strictly before the current moment.
func (c *Calendar) IsPast(t time.Time) bool {
	return t.Before(c.clock.Now())
}

// ─────────────────────────────────────────────────────────────────────────────
// Age & relative time
// ─────────────────────────────────────────────────────────────────────────────

// Age returns the number of whole years since birthday, accounting for
// whether the birthday's month and day have been reached this year.
func (c *Calendar) Age(birthday time.Time) int {
	now := c.clock.Now().In(birthday.Location())
	years := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		years--
	}
	return years
}

// TimeAgo renders how long ago t was as a single coarse bucket:
// years, months, days, hours, or minutes, whichever is the largest non-zero
// unit, using floor division (months are 30 days, years 365).
// Times less than a minute ago, and future times, report "just now".
//
//	cal.TimeAgo(now.Add(-90 * time.Minute)) // "1 hour ago"
//	cal.TimeAgo(now.Add(-48 * time.Hour))   // "2 days ago"
func (c *Calendar) TimeAgo(t time.Time) string {
	minutes := int(c.clock.Now().Sub(t).Minutes())
	hours := minutes / 60
	days := hours / 24

	switch {
	case days >= 365:
		return agoLabel(days/365, "year")
	case days >= 30:
		return agoLabel(days/30, "month")
	case days >= 1:
		return agoLabel(days, "day")
	case hours >= 1:
		return agoLabel(hours, "hour")
	case minutes >= 1:
		return agoLabel(minutes, "minute")
	default:
		return "just now"
	}
}

func agoLabel(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// ─────────────────────────────────────────────────────────────────────────────
// Package-level convenience
//
// These delegate to a Calendar backed by the system clock. Code that needs a
// pinned "now" should construct its own Calendar instead.
// ─────────────────────────────────────────────────────────────────────────────

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool { return defaultCalendar.IsToday(t) }

// IsYesterday reports whether t falls on the calendar day before today.
func IsYesterday(t time.Time) bool { return defaultCalendar.IsYesterday(t) }

// IsTomorrow reports whether t falls on the calendar day after today.
func IsTomorrow(t time.Time) bool { return defaultCalendar.IsTomorrow(t) }

// IsFuture reports whether t is strictly after the current moment.
func IsFuture(t time.Time) bool { return defaultCalendar.IsFuture(t) }

// IsPast reports whether t is strictly before the current moment.
func IsPast(t time.Time) bool { return defaultCalendar.IsPast(t) }

// Age returns the number of whole years since birthday.
func Age(birthday time.Time) int { return defaultCalendar.Age(birthday) }

// TimeAgo renders how long ago t was; see [Calendar.TimeAgo].
func TimeAgo(t time.Time) string { return defaultCalendar.TimeAgo(t) }
