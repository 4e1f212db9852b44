package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is the day/month/year pattern used when none is given
const DefaultPattern = "dd/MM/yyyy"

// ErrInvalidPattern is returned for date patterns that cannot be translated
var ErrInvalidPattern = errors.New("invalid date pattern")

// DayStart returns the first instant of the civil day year-month-day in loc.
// Out-of-range components are normalised (day 32 is the 1st of the next month).
// Where a DST change skips midnight the day starts at the first hour that
// exists. ok is false when the zone skipped the whole day; the result is
// then the first instant after it.
func DayStart(year int, month time.Month, day int, loc *time.Location) (t time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	year, month, day = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()

	for hour := 0; hour < 24; hour++ {
		t = time.Date(year, month, day, hour, 0, 0, 0, loc)
		if y, m, d := t.Date(); y == year && m == month && d == day {
			return t, true
		}
	}

	next := time.Date(year, month, day+1, 0, 0, 0, 0, time.UTC)
	t, _ = DayStart(next.Year(), next.Month(), next.Day(), loc)
	return t, false
}

// StartOfDay returns the start of the day for the given date in its own location
func StartOfDay(date time.Time) time.Time {
	t, _ := DayStart(date.Year(), date.Month(), date.Day(), date.Location())
	return t
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// Layout converts a date pattern into a Go time layout.
//
// Patterns containing the Go reference year "2006" are taken as Go layouts
// and returned unchanged. Otherwise the pattern is read as letter runs:
//
//	y, yyy, yyyy  four-digit year      yy    two-digit year
//	M, MM         month number         MMM   Jan    MMMM  January
//	d, dd         day of month         E..EEE Mon   EEEE  Monday
//
// Text in single quotes is literal ('' is a quote). Day and month numbers
// accept one or two digits, so "dd/MM/yyyy" parses "7/8/2014". Other
// letters, and literals Go would read as layout elements, are rejected.
func Layout(pattern string) (string, error) {
	if strings.Contains(pattern, "2006") {
		return pattern, nil
	}

	var layout strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			literal, next, err := quoted(runes, i)
			if err != nil {
				return "", fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
			}
			if err := checkLiteral(literal); err != nil {
				return "", fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
			}
			layout.WriteString(literal)
			i = next

		case isLetter(r):
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}
			element, err := layoutElement(r, n)
			if err != nil {
				return "", fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
			}
			layout.WriteString(element)
			i += n

		default:
			if err := checkLiteral(string(r)); err != nil {
				return "", fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
			}
			layout.WriteRune(r)
			i++
		}
	}

	return layout.String(), nil
}

func layoutElement(letter rune, n int) (string, error) {
	switch letter {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		if n <= 4 {
			return "2006", nil
		}
	case 'M':
		switch n {
		case 1, 2:
			return "1", nil
		case 3:
			return "Jan", nil
		case 4:
			return "January", nil
		}
	case 'd':
		if n <= 2 {
			return "2", nil
		}
	case 'E':
		if n <= 3 {
			return "Mon", nil
		}
		if n == 4 {
			return "Monday", nil
		}
	}
	return "", fmt.Errorf("unsupported field %q", strings.Repeat(string(letter), n))
}

// quoted reads the literal starting at the opening quote runes[start]
func quoted(runes []rune, start int) (string, int, error) {
	// '' outside a literal is a single quote
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}

	var literal strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			literal.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			literal.WriteRune('\'')
			i++
			continue
		}
		return literal.String(), i + 1, nil
	}
	return "", 0, errors.New("unterminated quote")
}

// Go has no escape for layout elements, so literals that contain one
// cannot be expressed
var layoutWords = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07"}

func checkLiteral(literal string) error {
	for _, r := range literal {
		if r >= '0' && r <= '9' {
			return fmt.Errorf("literal %q contains a digit", literal)
		}
	}
	for _, word := range layoutWords {
		if strings.Contains(literal, word) {
			return fmt.Errorf("literal %q contains layout element %q", literal, word)
		}
	}
	return nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ParseDate parses a date string with the given pattern and returns the
// start of that day in loc. A day that does not exist in loc is an error.
func ParseDate(value, pattern string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	layout, err := Layout(pattern)
	if err != nil {
		return time.Time{}, err
	}

	// Parse in UTC so a skipped local midnight cannot move the day
	t, err := time.ParseInLocation(layout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q with pattern %q: %w", value, pattern, err)
	}

	day, ok := DayStart(t.Year(), t.Month(), t.Day(), loc)
	if !ok {
		return time.Time{}, fmt.Errorf("parse %q: %s does not exist in %s", value, t.Format("2006-01-02"), loc)
	}
	return day, nil
}

// Today returns today's date (start of day) in loc
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return StartOfDay(time.Now().In(loc))
}
