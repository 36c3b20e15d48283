package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDay is returned by Validate for a month or day out of range.
var ErrInvalidDay = errors.New("invalid calendar day")

const dayFormat = "2006-01-02"

// Day is a calendar date with no time-of-day. Month is 1-based.
type Day struct {
	Year  int
	Month int
	Day   int
}

// Parse reads a day in YYYY-MM-DD form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return FromTime(t), nil
}

// FromTime returns the calendar date of t in t's own location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: int(m), Day: d}
}

// String renders the day as YYYY-MM-DD. Out-of-range fields are printed as is.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the day in loc. A nil loc means time.Local.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Validate reports whether the month and day-of-month are in range.
// ApplyDay does not call it: out-of-range values roll over instead.
func (d Day) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d outside 1..12", ErrInvalidDay, d.Month)
	}
	if n := DaysIn(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return fmt.Errorf("%w: day %d outside 1..%d for %04d-%02d", ErrInvalidDay, d.Day, n, d.Year, d.Month)
	}
	return nil
}

// DaysIn returns the number of days in month of year. Month must be 1..12.
func DaysIn(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// pickerPayload is the object a calendar widget hands back on selection.
type pickerPayload struct {
	DateString string `json:"dateString,omitempty"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Timestamp  int64  `json:"timestamp"`
}

// UnmarshalJSON decodes a date-picker payload. dateString takes precedence
// over the numeric fields; timestamp is ignored.
func (d *Day) UnmarshalJSON(data []byte) error {
	var p pickerPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding day: %w", err)
	}
	if p.DateString != "" {
		parsed, err := Parse(p.DateString)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	if p.Year == 0 && p.Month == 0 && p.Day == 0 {
		return fmt.Errorf("decoding day: %w: no dateString or year/month/day", ErrInvalidDay)
	}
	*d = Day{Year: p.Year, Month: p.Month, Day: p.Day}
	return nil
}

// MarshalJSON encodes the day in the payload shape UnmarshalJSON reads.
// dateString is left out for days Parse cannot read back, such as rollover
// days or years past 9999, so the numeric fields carry them.
func (d Day) MarshalJSON() ([]byte, error) {
	p := pickerPayload{
		Year:      d.Year,
		Month:     d.Month,
		Day:       d.Day,
		Timestamp: d.Time(time.UTC).UnixMilli(),
	}
	if d.Validate() == nil && d.Year >= 0 && d.Year <= 9999 {
		p.DateString = d.String()
	}
	return json.Marshal(p)
}
