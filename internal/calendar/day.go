package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string // observed holiday names, comma separated
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    time.Month
	WorkDays int
	Weekends int
	Holidays int
	Days     []DayInfo
}
