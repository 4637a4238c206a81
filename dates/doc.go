// Package dates provides calendar helpers for time.Time values: now-relative
// checks, unit boundaries, business-day arithmetic, and strftime-style
// formatting.
//
// # Now-relative checks and the Calendar type
//
// Operations that depend on the current moment (IsToday, Age, TimeAgo, ...)
// are methods on [Calendar], which reads its notion of "now" from an
// injected clock. Production code uses the package-level functions, which
// consult the system clock; tests construct a Calendar around a fake clock
// and pin the reference moment:
//
//	cal := dates.NewCalendar(clockwork.NewFakeClockAt(someInstant))
//	cal.IsToday(t)
//	cal.TimeAgo(t) // "3 days ago"
//
// # Unit boundaries
//
// Start/End helpers snap a time to the boundary of its day, week, month, or
// year in the time's own location. Weeks run Monday through Sunday:
//
//	dates.StartOfWeek(t) // Monday 00:00:00
//	dates.EndOfMonth(t)  // last day of the month, 23:59:59.999999999
//
// # Formatting
//
// Format and Parse use strftime-style patterns rather than Go's reference
// date:
//
//	dates.Format(t, "%Y-%m-%d %H:%M")        // "2024-07-01 15:04"
//	dates.Parse("2024-07-01", "%Y-%m-%d")
package dates
