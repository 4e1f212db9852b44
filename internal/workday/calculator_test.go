package workday

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/nsw-workday-calc/internal/calendar"
	"github.com/username/nsw-workday-calc/internal/holiday"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestCalculator() *Calculator {
	return NewCalculator(calendar.New(time.UTC), nil)
}

func TestCalculateWorkDaysFromStrings(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"Short range", "7/8/2014", "11/8/2014", 1},
		{"Long range", "1/3/2022", "20/4/2025", 790},
		{"Padded dates", "14/08/2014", "24/08/2014", 6},
	}

	calc := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := calc.CalculateWorkDaysFromStrings(tt.start, tt.end, "dd/MM/yyyy")
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestCalculateWorkDays(t *testing.T) {
	calc := newTestCalculator()

	t.Run("Short range", func(t *testing.T) {
		days, err := calc.CalculateWorkDays(date(2014, time.August, 14), date(2014, time.August, 24))
		require.NoError(t, err)
		assert.Equal(t, 6, days)
	})

	t.Run("Long range", func(t *testing.T) {
		days, err := calc.CalculateWorkDays(date(2019, time.March, 5), date(2023, time.December, 27))
		require.NoError(t, err)
		assert.Equal(t, 1214, days)
	})

	t.Run("Time of day is ignored", func(t *testing.T) {
		start := time.Date(2014, time.August, 7, 23, 59, 0, 0, time.UTC)
		end := time.Date(2014, time.August, 11, 0, 1, 0, 0, time.UTC)
		days, err := calc.CalculateWorkDays(start, end)
		require.NoError(t, err)
		assert.Equal(t, 1, days)
	})
}

func TestCalculateWorkDaysInSydney(t *testing.T) {
	cal, err := calendar.NewFromName("Australia/Sydney")
	require.NoError(t, err)

	calc := NewCalculator(cal, nil)
	days, err := calc.CalculateWorkDaysFromStrings("1/3/2022", "20/4/2025", "dd/MM/yyyy")
	require.NoError(t, err)
	assert.Equal(t, 790, days)
}

func TestCalculateAcrossMidnightDST(t *testing.T) {
	tests := []struct {
		zone  string
		start string
		end   string
		want  int
	}{
		{"America/Santiago", "6/9/2024", "10/9/2024", 1},
		{"America/Santiago", "1/9/2024", "30/9/2024", 20},
		{"America/Havana", "8/3/2024", "12/3/2024", 1},
	}

	for _, tt := range tests {
		t.Run(tt.zone+" "+tt.start, func(t *testing.T) {
			cal, err := calendar.NewFromName(tt.zone)
			require.NoError(t, err)

			calc := NewCalculator(cal, nil)
			days, err := calc.CalculateWorkDaysFromStrings(tt.start, tt.end, "dd/MM/yyyy")
			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestParseDateInSantiago(t *testing.T) {
	cal, err := calendar.NewFromName("America/Santiago")
	require.NoError(t, err)

	got, err := NewCalculator(cal, nil).ParseDate("8/9/2024", "dd/MM/yyyy")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-08", got.Format("2006-01-02"))
	assert.Equal(t, time.Sunday, cal.Weekday(got))
}

func TestCalculateRejectsUnsupportedPattern(t *testing.T) {
	calc := newTestCalculator()

	for _, pattern := range []string{"dd/MM/yyyy QQ", "dd 'Mon' MM yyyy", "dd/MM/yyyy HH"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := calc.CalculateWorkDaysFromStrings("7/8/2014", "11/8/2014", pattern)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDateFormat), "got %v", err)
		})
	}
}

func TestCalculateWithQuotedPattern(t *testing.T) {
	calc := newTestCalculator()

	days, err := calc.CalculateWorkDaysFromStrings("Thu 7 de August 2014", "Mon 11 de August 2014", "EEE d 'de' MMMM yyyy")
	require.NoError(t, err)
	assert.Equal(t, 1, days)
}

func TestCalculateErrors(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"Consecutive days", "7/8/2014", "8/8/2014", ErrInvalidRange},
		{"Same day", "7/8/2014", "7/8/2014", ErrInvalidRange},
		{"Inverted range", "11/8/2014", "7/8/2014", ErrInvalidRange},
		{"Bad start", "yesterday", "11/8/2014", ErrInvalidDateFormat},
		{"Bad end", "7/8/2014", "32/8/2014", ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.CalculateWorkDaysFromStrings(tt.start, tt.end, "dd/MM/yyyy")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestCalculateBreakdown(t *testing.T) {
	calc := newTestCalculator()

	start := date(2019, time.March, 5)
	end := date(2023, time.December, 27)
	result, err := calc.Calculate(start, end)
	require.NoError(t, err)

	assert.Equal(t, date(2019, time.March, 6), result.AdjustedStart)
	assert.Equal(t, date(2023, time.December, 26), result.AdjustedEnd)
	assert.Equal(t, 1255, result.Weekdays)
	assert.Equal(t, 41, result.Holidays)
	assert.Equal(t, 1214, result.WorkDays)
	assert.Len(t, result.Occurrences, result.Holidays)

	// The identity holds against the engine and the weekday counter directly
	engine := calc.Holidays()
	sum := engine.NewYearsDay(result.AdjustedStart, result.AdjustedEnd) +
		engine.AustraliaDay(result.AdjustedStart, result.AdjustedEnd) +
		engine.EasterHolidays(result.AdjustedStart, result.AdjustedEnd) +
		engine.AnzacDay(result.AdjustedStart, result.AdjustedEnd) +
		engine.KingsBirthday(result.AdjustedStart, result.AdjustedEnd) +
		engine.LabourDay(result.AdjustedStart, result.AdjustedEnd) +
		engine.ChristmasDay(result.AdjustedStart, result.AdjustedEnd) +
		engine.BoxingDay(result.AdjustedStart, result.AdjustedEnd)
	assert.Equal(t, CountWeekdays(calc.Calendar(), result.AdjustedStart, result.AdjustedEnd)-sum, result.WorkDays)
}

func TestCalculateIsIdempotent(t *testing.T) {
	calc := newTestCalculator()

	first, err := calc.CalculateWorkDaysFromStrings("1/3/2022", "20/4/2025", "dd/MM/yyyy")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := calc.CalculateWorkDaysFromStrings("1/3/2022", "20/4/2025", "dd/MM/yyyy")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCalculateWithGazetted(t *testing.T) {
	base := newTestCalculator()
	gazetted := base.WithGazetted([]holiday.Gazetted{
		{Date: date(2022, time.September, 22), Name: "National Day of Mourning"},
	})

	before, err := base.CalculateWorkDays(date(2022, time.September, 1), date(2022, time.September, 30))
	require.NoError(t, err)
	after, err := gazetted.CalculateWorkDays(date(2022, time.September, 1), date(2022, time.September, 30))
	require.NoError(t, err)

	assert.Equal(t, 20, before)
	assert.Equal(t, before-1, after)
}
