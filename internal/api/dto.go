package api

import (
	"github.com/username/nsw-workday-calc/internal/calendar"
	"github.com/username/nsw-workday-calc/internal/holiday"
	"github.com/username/nsw-workday-calc/internal/workday"
	"github.com/username/nsw-workday-calc/pkg/dateutil"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error" yaml:"error"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// HolidayDTO is one observed holiday
type HolidayDTO struct {
	Name     string `json:"name" yaml:"name" csv:"name"`
	Year     int    `json:"year" yaml:"year" csv:"year"`
	Nominal  string `json:"nominal" yaml:"nominal" csv:"nominal"`
	Observed string `json:"observed" yaml:"observed" csv:"observed"`
	Shift    string `json:"shift" yaml:"shift" csv:"shift"`
	Gazetted bool   `json:"gazetted,omitempty" yaml:"gazetted,omitempty" csv:"gazetted"`
}

// WorkDaysResponse is the result of GET /api/workdays
type WorkDaysResponse struct {
	Start         string       `json:"start" yaml:"start"`
	End           string       `json:"end" yaml:"end"`
	AdjustedStart string       `json:"adjusted_start" yaml:"adjusted_start"`
	AdjustedEnd   string       `json:"adjusted_end" yaml:"adjusted_end"`
	Weekdays      int          `json:"weekdays" yaml:"weekdays"`
	Holidays      int          `json:"holidays" yaml:"holidays"`
	WorkDays      int          `json:"work_days" yaml:"work_days"`
	Observed      []HolidayDTO `json:"observed" yaml:"observed"`
}

// WeekdaysResponse is the result of GET /api/weekdays
type WeekdaysResponse struct {
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Weekdays int    `json:"weekdays" yaml:"weekdays"`
}

// HolidaysResponse is the result of GET /api/holidays
type HolidaysResponse struct {
	Start    string       `json:"start" yaml:"start"`
	End      string       `json:"end" yaml:"end"`
	Count    int          `json:"count" yaml:"count"`
	Holidays []HolidayDTO `json:"holidays" yaml:"holidays"`
}

// DayDTO is one day of a month view
type DayDTO struct {
	Date      string `json:"date" yaml:"date" csv:"date"`
	Weekday   string `json:"weekday" yaml:"weekday" csv:"weekday"`
	Type      string `json:"type" yaml:"type" csv:"type"`
	IsWorkday bool   `json:"is_workday" yaml:"is_workday" csv:"is_workday"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty" csv:"note"`
}

// MonthResponse is the result of GET /api/calendar/{year}/{month}
type MonthResponse struct {
	Year     int      `json:"year" yaml:"year"`
	Month    int      `json:"month" yaml:"month"`
	WorkDays int      `json:"work_days" yaml:"work_days"`
	Weekends int      `json:"weekends" yaml:"weekends"`
	Holidays int      `json:"holidays" yaml:"holidays"`
	Days     []DayDTO `json:"days" yaml:"days"`
}

// ToHolidayDTOs converts holiday occurrences for output
func ToHolidayDTOs(occurrences []holiday.Occurrence) []HolidayDTO {
	dtos := make([]HolidayDTO, 0, len(occurrences))
	for _, o := range occurrences {
		dtos = append(dtos, HolidayDTO{
			Name:     o.Name,
			Year:     o.Year,
			Nominal:  dateutil.FormatDate(o.Nominal),
			Observed: dateutil.FormatDate(o.Observed),
			Shift:    o.Shift.String(),
			Gazetted: o.Gazetted,
		})
	}
	return dtos
}

func toWorkDaysResponse(result *workday.Result) WorkDaysResponse {
	return WorkDaysResponse{
		Start:         dateutil.FormatDate(result.Start),
		End:           dateutil.FormatDate(result.End),
		AdjustedStart: dateutil.FormatDate(result.AdjustedStart),
		AdjustedEnd:   dateutil.FormatDate(result.AdjustedEnd),
		Weekdays:      result.Weekdays,
		Holidays:      result.Holidays,
		WorkDays:      result.WorkDays,
		Observed:      ToHolidayDTOs(result.Occurrences),
	}
}

// ToMonthResponse converts a month view for output
func ToMonthResponse(info *calendar.MonthInfo) MonthResponse {
	days := make([]DayDTO, 0, len(info.Days))
	for _, d := range info.Days {
		days = append(days, DayDTO{
			Date:      dateutil.FormatDate(d.Date),
			Weekday:   d.Date.Weekday().String(),
			Type:      d.Type.String(),
			IsWorkday: d.IsWorkday,
			Note:      d.Note,
		})
	}

	return MonthResponse{
		Year:     info.Year,
		Month:    int(info.Month),
		WorkDays: info.WorkDays,
		Weekends: info.Weekends,
		Holidays: info.Holidays,
		Days:     days,
	}
}
