package workday

import (
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
)

// CountWeekdays counts the days in [start, end] that are not Saturday or
// Sunday. Whole weeks are counted arithmetically, so the work done is
// bounded by two scans of at most a week regardless of range length.
//
// Days are indexed from start (start is 0, end is DaysBetween), so the count
// follows the civil calendar even where DST moves or removes a local midnight.
func CountWeekdays(cal calendar.Calendar, start, end time.Time) int {
	days := cal.DaysBetween(start, end)
	if days < 0 {
		return 0
	}

	first := cal.Weekday(start)
	offset, skipped := firstMonday(first)
	if offset > days {
		// Shorter than the distance to the next Monday
		return scanWeekdays(first, 0, days, days)
	}

	totalDays := days - offset
	if totalDays == 0 {
		totalDays = 1
	}
	fullWeeks, leftover := totalDays/7, totalDays%7

	tail := scanWeekdays(first, days-leftover, leftover, days)
	return fullWeeks*5 + tail + skipped
}

// CountWeekdaysByScan is the day-by-day reference for CountWeekdays
func CountWeekdaysByScan(cal calendar.Calendar, start, end time.Time) int {
	days := cal.DaysBetween(start, end)

	count := 0
	for i := 0; i <= days; i++ {
		if !isWeekend(cal.WeekdayAfter(start, i)) {
			count++
		}
	}
	return count
}

// firstMonday returns how many days after a day falling on wd the next
// Monday is (0 for a Monday), and the number of weekdays passed over.
func firstMonday(wd time.Weekday) (offset, skipped int) {
	switch wd {
	case time.Sunday:
		return 1, 0
	case time.Tuesday:
		return 6, 4
	case time.Wednesday:
		return 5, 3
	case time.Thursday:
		return 4, 2
	case time.Friday:
		return 3, 1
	case time.Saturday:
		return 2, 0
	}
	return 0, 0
}

// scanWeekdays counts weekdays among day indexes from, from+1, ..., from+n
// (at least from+1), never going past last. first is the weekday of index 0.
func scanWeekdays(first time.Weekday, from, n, last int) int {
	if n < 0 {
		return 0
	}
	if n == 0 {
		n = 1
	}

	count := 0
	for i := from; i <= from+n && i <= last; i++ {
		if !isWeekend(weekdayAt(first, i)) {
			count++
		}
	}
	return count
}

// weekdayAt returns the weekday of day index i; i may be negative
func weekdayAt(first time.Weekday, i int) time.Weekday {
	return time.Weekday(((int(first)+i)%7 + 7) % 7)
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}
