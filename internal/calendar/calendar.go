package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/nsw-workday-calc/pkg/dateutil"
)

var (
	// ErrDateConstruction is returned when a (year, month, day) combination
	// does not name a real date in the proleptic Gregorian calendar.
	ErrDateConstruction = errors.New("date cannot be constructed")

	// ErrUnknownTimezone is returned when a timezone identifier cannot be loaded.
	ErrUnknownTimezone = errors.New("unknown timezone")
)

// Calendar is a Gregorian calendar bound to a single location.
// It is an immutable value: two goroutines using different timezones
// must use two Calendar values, never a shared mutable one.
type Calendar struct {
	loc *time.Location
}

// New creates a Calendar for the given location (nil means time.Local)
func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc}
}

// NewFromName creates a Calendar from an IANA timezone identifier.
// Empty string and "Local" select the system timezone.
func NewFromName(name string) (Calendar, error) {
	if name == "" || name == "Local" {
		return New(time.Local), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("%w %q: %v", ErrUnknownTimezone, name, err)
	}
	return New(loc), nil
}

// Location returns the calendar timezone
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Date constructs the start of the given day. Out-of-range components
// (Feb 30, month 13) are rejected instead of being normalised. A day whose
// midnight is skipped by DST starts at the first hour that exists.
func (c Calendar) Date(year int, month time.Month, day int) (time.Time, error) {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	if y != year || m != month || d != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrDateConstruction, year, int(month), day)
	}

	t, ok := dateutil.DayStart(year, month, day, c.Location())
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist in %s",
			ErrDateConstruction, year, int(month), day, c.Location())
	}
	return t, nil
}

// NthWeekday returns the n-th (1-based) occurrence of weekday in the month,
// e.g. NthWeekday(2024, time.June, time.Monday, 2) is the second Monday of June.
func (c Calendar) NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, error) {
	if n < 1 || n > 5 {
		return time.Time{}, fmt.Errorf("%w: occurrence %d of %s in %04d-%02d",
			ErrDateConstruction, n, weekday, year, int(month))
	}

	first, err := c.Date(year, month, 1)
	if err != nil {
		return time.Time{}, err
	}

	offset := (int(weekday) - int(c.Weekday(first)) + 7) % 7
	day := 1 + offset + (n-1)*7

	// A fifth occurrence may spill into the next month
	return c.Date(year, month, day)
}

// Normalize maps an instant onto the start of its calendar day in this location
func (c Calendar) Normalize(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	day, _ := dateutil.DayStart(y, m, d, c.Location())
	return day
}

// AddDays moves a date by n calendar days. The arithmetic is done on the
// civil date, so a day that starts late because of DST still advances.
func (c Calendar) AddDays(t time.Time, n int) time.Time {
	y, m, d := t.In(c.Location()).Date()
	day, _ := dateutil.DayStart(y, m, d+n, c.Location())
	return day
}

// DaysBetween returns the number of calendar days from `from` to `to`
// (negative when `to` is earlier). DST transitions do not affect the result.
func (c Calendar) DaysBetween(from, to time.Time) int {
	return int(c.dayNumber(to) - c.dayNumber(from))
}

// Year returns the calendar year of t in this location
func (c Calendar) Year(t time.Time) int {
	return t.In(c.Location()).Year()
}

// Weekday returns the weekday of the calendar day of t
func (c Calendar) Weekday(t time.Time) time.Weekday {
	return c.WeekdayAfter(t, 0)
}

// WeekdayAfter returns the weekday n calendar days after t
func (c Calendar) WeekdayAfter(t time.Time, n int) time.Weekday {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d+n, 12, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekend reports whether t falls on Saturday or Sunday in this location
func (c Calendar) IsWeekend(t time.Time) bool {
	y, m, d := t.In(c.Location()).Date()
	return dateutil.IsWeekend(time.Date(y, m, d, 12, 0, 0, 0, time.UTC))
}

// Compare returns -1, 0 or +1 comparing the calendar days of a and b
func (c Calendar) Compare(a, b time.Time) int {
	da, db := c.dayNumber(a), c.dayNumber(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// Within reports whether the calendar day of t lies in [start, end]
func (c Calendar) Within(t, start, end time.Time) bool {
	return c.Compare(start, t) <= 0 && c.Compare(t, end) <= 0
}

// dayNumber counts days since the Unix epoch for the civil date of t
func (c Calendar) dayNumber(t time.Time) int64 {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
