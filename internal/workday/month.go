package workday

import (
	"strings"
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
	"github.com/username/nsw-workday-calc/pkg/dateutil"
)

// IsWorkday checks if the given date is a working day
func (c *Calculator) IsWorkday(date time.Time) bool {
	return c.DayInfo(date).IsWorkday
}

// DayInfo returns detailed info for a specific day
func (c *Calculator) DayInfo(date time.Time) calendar.DayInfo {
	day := c.cal.Normalize(date)
	return c.classify(day, c.holidays.ObservedOn(day))
}

// MonthInfo returns calendar info for the entire month
func (c *Calculator) MonthInfo(year int, month time.Month) (*calendar.MonthInfo, error) {
	first, err := c.cal.Date(year, month, 1)
	if err != nil {
		return nil, err
	}
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	last := c.cal.AddDays(first, daysInMonth-1)

	// One pass over the holidays; the week before catches shifted dates
	observed := make(map[string][]string)
	for _, o := range c.holidays.Occurrences(c.cal.AddDays(first, -7), last) {
		key := dateutil.FormatDate(o.Observed)
		observed[key] = append(observed[key], o.Name)
	}

	monthInfo := &calendar.MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]calendar.DayInfo, 0, 31),
	}

	for day := first; c.cal.Compare(day, last) <= 0; day = c.cal.AddDays(day, 1) {
		info := c.classify(day, observed[dateutil.FormatDate(day)])

		switch info.Type {
		case calendar.DayTypeWorkday:
			monthInfo.WorkDays++
		case calendar.DayTypeWeekend:
			monthInfo.Weekends++
		case calendar.DayTypeHoliday:
			monthInfo.Holidays++
		}
		monthInfo.Days = append(monthInfo.Days, info)
	}

	return monthInfo, nil
}

func (c *Calculator) classify(day time.Time, holidays []string) calendar.DayInfo {
	info := calendar.DayInfo{
		Date: day,
		Type: calendar.DayTypeWorkday,
		Note: strings.Join(holidays, ", "),
	}

	switch {
	case c.cal.IsWeekend(day):
		info.Type = calendar.DayTypeWeekend
	case len(holidays) > 0:
		info.Type = calendar.DayTypeHoliday
	default:
		info.IsWorkday = true
	}
	return info
}
