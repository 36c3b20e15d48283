// Package calendar moves timestamps onto calendar days picked in the
// user's local timezone.
package calendar

import "time"

// ApplyDay is ApplyDayIn with time.Local.
func ApplyDay(existing *time.Time, day Day) time.Time {
	return ApplyDayIn(existing, day, time.Local)
}

// ApplyDayIn moves an instant onto day as seen in loc.
//
// With an existing instant the date is set through loc's calendar fields and
// the UTC time-of-day of existing is then written over it, so the UTC clock
// reading is preserved exactly. The local render can then fall on a day
// next to day, as it does in UTC+8 or UTC-12 for an afternoon UTC clock.
// Without one the result is midnight of day in
// loc, using the offset in effect on that date.
//
// Day and month values out of range roll over into adjacent months the way
// time.Date normalizes them. A nil loc means time.Local.
func ApplyDayIn(existing *time.Time, day Day, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	month := time.Month(day.Month)

	if existing == nil {
		return time.Date(day.Year, month, day.Day, 0, 0, 0, 0, loc)
	}

	// Noon keeps the scratch value clear of DST gaps and independent of
	// the wall clock.
	scratch := time.Date(day.Year, month, day.Day, 12, 0, 0, 0, loc).UTC()
	src := existing.UTC()

	// A single time.Date call so hour, minute, second and nanosecond land
	// together without rolling the date set above.
	y, m, d := scratch.Date()
	h, mi, s := src.Clock()
	return time.Date(y, m, d, h, mi, s, src.Nanosecond(), time.UTC).In(loc)
}
