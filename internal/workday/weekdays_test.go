package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/username/nsw-workday-calc/internal/calendar"
	"github.com/username/nsw-workday-calc/pkg/random"
)

func TestCountWeekdays(t *testing.T) {
	cal := calendar.New(time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"Long range", date(2019, time.March, 6), date(2023, time.December, 26), 1255},
		{"Short range", date(2020, time.May, 6), date(2020, time.May, 13), 6},
		{"Single weekday", date(2024, time.January, 3), date(2024, time.January, 3), 1},
		{"Single Saturday", date(2024, time.January, 6), date(2024, time.January, 6), 0},
		{"Weekend only", date(2024, time.January, 6), date(2024, time.January, 7), 0},
		{"Full week from Monday", date(2024, time.January, 1), date(2024, time.January, 7), 5},
		{"Sunday to Sunday", date(2024, time.January, 7), date(2024, time.January, 14), 5},
		{"Friday to Monday", date(2024, time.January, 5), date(2024, time.January, 8), 2},
		{"Inverted", date(2024, time.January, 8), date(2024, time.January, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWeekdays(cal, tt.start, tt.end))
			assert.Equal(t, tt.want, CountWeekdaysByScan(cal, tt.start, tt.end))
		})
	}
}

func TestCountWeekdaysMatchesScan(t *testing.T) {
	// Santiago, Havana and Sao Paulo have changed clocks at midnight; Apia
	// skipped 2011-12-30 entirely
	zones := []string{
		"UTC",
		"Australia/Sydney",
		"America/Santiago",
		"America/Havana",
		"America/Sao_Paulo",
		"America/Asuncion",
		"Pacific/Apia",
	}

	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			cal, err := calendar.NewFromName(zone)
			if err != nil {
				t.Fatalf("NewFromName() error = %v", err)
			}

			gen := random.NewGenerator(42)
			from := time.Date(1990, time.January, 1, 12, 0, 0, 0, cal.Location())

			for _, r := range gen.Ranges(500, from, 365*40, 365*10) {
				fast := CountWeekdays(cal, r.Start, r.End)
				slow := CountWeekdaysByScan(cal, r.Start, r.End)
				if fast != slow {
					t.Fatalf("CountWeekdays(%s, %s) = %d, scan = %d",
						r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"), fast, slow)
				}
			}
		})
	}
}

func TestCountWeekdaysAcrossSkippedMidnight(t *testing.T) {
	cal, err := calendar.NewFromName("America/Santiago")
	if err != nil {
		t.Fatalf("NewFromName() error = %v", err)
	}

	saturday, err := cal.Date(2024, time.September, 7)
	if err != nil {
		t.Fatalf("Date() error = %v", err)
	}

	for length, want := range []int{0, 0, 1, 2, 3, 4, 5, 5, 5, 6} {
		end := cal.AddDays(saturday, length)
		assert.Equal(t, want, CountWeekdays(cal, saturday, end), "length %d", length)
		assert.Equal(t, want, CountWeekdaysByScan(cal, saturday, end), "length %d scan", length)
	}
}

func TestCountWeekdaysEveryStartDay(t *testing.T) {
	cal := calendar.New(time.UTC)
	monday := date(2024, time.January, 1)

	for offset := 0; offset < 7; offset++ {
		start := cal.AddDays(monday, offset)
		for length := 0; length < 30; length++ {
			end := cal.AddDays(start, length)
			assert.Equal(t, CountWeekdaysByScan(cal, start, end), CountWeekdays(cal, start, end),
				"start %s length %d", start.Weekday(), length)
		}
	}
}
