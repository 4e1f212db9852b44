package holiday

import (
	"fmt"
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
)

// ShiftPolicy decides the observed date of a holiday whose nominal date
// falls on a weekend.
type ShiftPolicy int

const (
	// Absolute holidays are not observed at all when they fall on a weekend.
	Absolute ShiftPolicy = iota + 1
	// Mutable holidays move to Monday: Saturday +2, Sunday +1.
	Mutable
	// BoxingDayShift moves a weekend date forward by two days, so both
	// Saturday and Sunday land on Monday and Tuesday respectively.
	BoxingDayShift
)

func (p ShiftPolicy) String() string {
	switch p {
	case Absolute:
		return "absolute"
	case Mutable:
		return "mutable"
	case BoxingDayShift:
		return "boxing-day"
	default:
		return fmt.Sprintf("ShiftPolicy(%d)", int(p))
	}
}

// Observe applies the policy to a nominal date. The second result is false
// when the holiday is not observed in that year.
func (p ShiftPolicy) Observe(cal calendar.Calendar, nominal time.Time) (time.Time, bool) {
	switch p {
	case Absolute:
		if cal.IsWeekend(nominal) {
			return time.Time{}, false
		}
		return nominal, true
	case Mutable:
		switch cal.Weekday(nominal) {
		case time.Saturday:
			return cal.AddDays(nominal, 2), true
		case time.Sunday:
			return cal.AddDays(nominal, 1), true
		}
		return nominal, true
	case BoxingDayShift:
		if cal.IsWeekend(nominal) {
			return cal.AddDays(nominal, 2), true
		}
		return nominal, true
	default:
		return time.Time{}, false
	}
}

// Locator resolves the nominal date of a holiday in a given year
type Locator interface {
	Resolve(cal calendar.Calendar, year int) (time.Time, error)
}

// FixedDate is a holiday on the same month and day every year
type FixedDate struct {
	Month time.Month
	Day   int
}

func (f FixedDate) Resolve(cal calendar.Calendar, year int) (time.Time, error) {
	return cal.Date(year, f.Month, f.Day)
}

// NthWeekday is the Occurrence-th Weekday of Month, e.g. 2nd Monday of June
type NthWeekday struct {
	Month      time.Month
	Weekday    time.Weekday
	Occurrence int
}

func (n NthWeekday) Resolve(cal calendar.Calendar, year int) (time.Time, error) {
	return cal.NthWeekday(year, n.Month, n.Weekday, n.Occurrence)
}

// EasterDerived is a fixed offset in days from Easter Sunday
type EasterDerived struct {
	OffsetDays int
}

func (e EasterDerived) Resolve(cal calendar.Calendar, year int) (time.Time, error) {
	return easterOffset(cal, year, e.OffsetDays)
}

// Rule is one entry of a holiday catalogue
type Rule struct {
	Name    string
	Locator Locator
	Shift   ShiftPolicy
}

// Observed resolves the observed date of the rule for one year.
// ok is false when the holiday is absent that year, either because an
// Absolute holiday fell on a weekend or because the date could not be built.
func (r Rule) Observed(cal calendar.Calendar, year int) (nominal, observed time.Time, ok bool, err error) {
	nominal, err = r.Locator.Resolve(cal, year)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	observed, ok = r.Shift.Observe(cal, nominal)
	return nominal, observed, ok, nil
}
