package workday

import (
	"fmt"
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
	"github.com/username/nsw-workday-calc/internal/holiday"
	"github.com/username/nsw-workday-calc/pkg/dateutil"
	"go.uber.org/zap"
)

// Result is the breakdown of one work-day calculation
type Result struct {
	Start         time.Time
	End           time.Time
	AdjustedStart time.Time
	AdjustedEnd   time.Time
	Weekdays      int
	Holidays      int
	WorkDays      int
	Occurrences   []holiday.Occurrence
}

// Calculator counts NSW business days between two dates.
// A Calculator is immutable once built and safe for concurrent use;
// calculations in another timezone need their own Calculator.
type Calculator struct {
	cal      calendar.Calendar
	holidays *holiday.Engine
	logger   *zap.Logger
}

// NewCalculator creates a Calculator with the NSW holiday catalogue
func NewCalculator(cal calendar.Calendar, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Calculator{
		cal:      cal,
		holidays: holiday.NewEngine(cal, holiday.NSW(), logger),
		logger:   logger,
	}
}

// WithGazetted returns a copy of the calculator that also subtracts
// one-off gazetted holidays
func (c *Calculator) WithGazetted(days []holiday.Gazetted) *Calculator {
	clone := *c
	clone.holidays = c.holidays.WithGazetted(days)
	return &clone
}

// Calendar returns the calendar adapter
func (c *Calculator) Calendar() calendar.Calendar {
	return c.cal
}

// Holidays returns the holiday engine
func (c *Calculator) Holidays() *holiday.Engine {
	return c.holidays
}

// CalculateWorkDays returns the number of work days strictly between
// start and end; both endpoints are excluded.
func (c *Calculator) CalculateWorkDays(start, end time.Time) (int, error) {
	result, err := c.Calculate(start, end)
	if err != nil {
		return 0, err
	}
	return result.WorkDays, nil
}

// CalculateWorkDaysFromStrings parses both dates with pattern and
// delegates to CalculateWorkDays
func (c *Calculator) CalculateWorkDaysFromStrings(start, end, pattern string) (int, error) {
	startDate, endDate, err := c.ParseRange(start, end, pattern)
	if err != nil {
		return 0, err
	}
	return c.CalculateWorkDays(startDate, endDate)
}

// ParseRange parses two date strings in the calculator's timezone
func (c *Calculator) ParseRange(start, end, pattern string) (time.Time, time.Time, error) {
	startDate, err := c.ParseDate(start, pattern)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := c.ParseDate(end, pattern)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return startDate, endDate, nil
}

// ParseDate parses one date string in the calculator's timezone. Bad values
// and unsupported patterns both surface as ErrInvalidDateFormat.
func (c *Calculator) ParseDate(value, pattern string) (time.Time, error) {
	date, err := dateutil.ParseDate(value, pattern, c.cal.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	return date, nil
}

// Calculate excludes both endpoints, counts weekdays in what remains and
// subtracts every observed holiday in it.
func (c *Calculator) Calculate(start, end time.Time) (*Result, error) {
	start, end = c.cal.Normalize(start), c.cal.Normalize(end)
	adjustedStart := c.cal.AddDays(start, 1)
	adjustedEnd := c.cal.AddDays(end, -1)

	if c.cal.Compare(adjustedStart, adjustedEnd) > 0 {
		return nil, fmt.Errorf("%w: no days between %s and %s",
			ErrInvalidRange, dateutil.FormatDate(start), dateutil.FormatDate(end))
	}

	weekdays := c.CountWeekdays(adjustedStart, adjustedEnd)
	holidays := c.holidays.Count(adjustedStart, adjustedEnd)

	result := &Result{
		Start:         start,
		End:           end,
		AdjustedStart: adjustedStart,
		AdjustedEnd:   adjustedEnd,
		Weekdays:      weekdays,
		Holidays:      holidays,
		WorkDays:      weekdays - holidays,
		Occurrences:   c.holidays.Occurrences(adjustedStart, adjustedEnd),
	}

	c.logger.Debug("Work days calculated",
		zap.String("start", dateutil.FormatDate(adjustedStart)),
		zap.String("end", dateutil.FormatDate(adjustedEnd)),
		zap.Int("weekdays", weekdays),
		zap.Int("holidays", holidays),
		zap.Int("work_days", result.WorkDays))

	return result, nil
}

// CountWeekdays counts non-weekend days in [start, end]
func (c *Calculator) CountWeekdays(start, end time.Time) int {
	return CountWeekdays(c.cal, start, end)
}
