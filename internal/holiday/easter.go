package holiday

import (
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
)

// EasterSunday calculates the date of Easter Sunday for a given year
// using the Gregorian computus (Meeus/Jones/Butcher algorithm).
// The date is constructed at midnight in the calendar's timezone.
func EasterSunday(cal calendar.Calendar, year int) (time.Time, error) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return cal.Date(year, time.Month(month), day)
}

// GoodFriday is two days before Easter Sunday
func GoodFriday(cal calendar.Calendar, year int) (time.Time, error) {
	return easterOffset(cal, year, -2)
}

// EasterMonday is the day after Easter Sunday
func EasterMonday(cal calendar.Calendar, year int) (time.Time, error) {
	return easterOffset(cal, year, 1)
}

func easterOffset(cal calendar.Calendar, year, days int) (time.Time, error) {
	easter, err := EasterSunday(cal, year)
	if err != nil {
		return time.Time{}, err
	}
	return cal.AddDays(easter, days), nil
}
