package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Wednesday is not weekend", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestDayStart(t *testing.T) {
	santiago := mustLoad(t, "America/Santiago")
	apia := mustLoad(t, "Pacific/Apia")

	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		loc    *time.Location
		want   string
		wantOK bool
	}{
		{"Ordinary day", 2024, time.September, 7, santiago, "2024-09-07 00:00 -04", true},
		{"Midnight skipped by DST", 2024, time.September, 8, santiago, "2024-09-08 01:00 -03", true},
		{"Day after the change", 2024, time.September, 9, santiago, "2024-09-09 00:00 -03", true},
		{"Day overflow normalises", 2024, time.August, 39, santiago, "2024-09-08 01:00 -03", true},
		{"Whole day skipped", 2011, time.December, 30, apia, "2011-12-31 00:00 +14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DayStart(tt.year, tt.month, tt.day, tt.loc)

			if ok != tt.wantOK {
				t.Errorf("DayStart() ok = %v, want %v", ok, tt.wantOK)
			}
			if f := got.Format("2006-01-02 15:04 MST"); f != tt.want {
				t.Errorf("DayStart() = %v, want %v", f, tt.want)
			}
		})
	}
}

func TestStartOfDayMidnightSkipped(t *testing.T) {
	santiago := mustLoad(t, "America/Santiago")

	noon := time.Date(2024, 9, 8, 12, 0, 0, 0, santiago)
	got := StartOfDay(noon)

	if got.Format("2006-01-02 15:04") != "2024-09-08 01:00" {
		t.Errorf("StartOfDay(%v) = %v, want 2024-09-08 01:00", noon, got)
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"dd/MM/yyyy", "2/1/2006"},
		{"d/M/yyyy", "2/1/2006"},
		{"yyyy-MM-dd", "2006-1-2"},
		{"dd MMM yy", "2 Jan 06"},
		{"d MMMM yyyy", "2 January 2006"},
		{"EEE dd/MM/yyyy", "Mon 2/1/2006"},
		{"EEEE, d MMMM yyyy", "Monday, 2 January 2006"},
		{"dd 'de' MMMM yyyy", "2 de January 2006"},
		{"dd 'o''clock' yyyy", "2 o'clock 2006"},
		{"d''MM''yyyy", "2'1'2006"},
		{"02.01.2006", "02.01.2006"},
		{"2006-01-02", "2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Layout(tt.pattern)
			if err != nil {
				t.Fatalf("Layout(%q) error = %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestLayoutRejects(t *testing.T) {
	patterns := []string{
		"dd/MM/yyyy QQ",
		"dd/MM/yyyy HH:mm",
		"ddd/MM/yyyy",
		"dd/MMMMM/yyyy",
		"dd 'unterminated",
		"dd 'Mon' yyyy",
		"dd/MM/yy 12",
		"02.01.06",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			if _, err := Layout(pattern); !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Layout(%q) error = %v, want ErrInvalidPattern", pattern, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}

	tests := []struct {
		name    string
		input   string
		pattern string
		want    time.Time
		wantErr bool
	}{
		{
			"Day/month/year without padding",
			"7/8/2014",
			"dd/MM/yyyy",
			time.Date(2014, 8, 7, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Day/month/year with padding",
			"01/03/2022",
			"dd/MM/yyyy",
			time.Date(2022, 3, 1, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Go layout",
			"2025-04-20",
			"2006-01-02",
			time.Date(2025, 4, 20, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Empty pattern uses default",
			"20/4/2025",
			"",
			time.Date(2025, 4, 20, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Weekday name",
			"Thu 7/8/2014",
			"EEE dd/MM/yyyy",
			time.Date(2014, 8, 7, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Quoted literal",
			"7 de August 2014",
			"dd 'de' MMMM yyyy",
			time.Date(2014, 8, 7, 0, 0, 0, 0, sydney),
			false,
		},
		{
			"Unknown pattern letter",
			"7/8/2014",
			"dd/MM/yyyy QQ",
			time.Time{},
			true,
		},
		{
			"Month out of range",
			"7/13/2014",
			"dd/MM/yyyy",
			time.Time{},
			true,
		},
		{
			"Garbage",
			"yesterday",
			"dd/MM/yyyy",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input, tt.pattern, sydney)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseDateMidnightSkipped(t *testing.T) {
	santiago := mustLoad(t, "America/Santiago")

	got, err := ParseDate("8/9/2024", DefaultPattern, santiago)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Format("2006-01-02 15:04") != "2024-09-08 01:00" {
		t.Errorf("ParseDate(8/9/2024) = %v, want 2024-09-08 01:00", got)
	}

	apia := mustLoad(t, "Pacific/Apia")
	if _, err := ParseDate("30/12/2011", DefaultPattern, apia); err == nil {
		t.Error("ParseDate() must reject a day the zone skipped")
	}
}

func TestToday(t *testing.T) {
	sydney := mustLoad(t, "Australia/Sydney")

	got := Today(sydney)
	if !IsSameDay(got, time.Now().In(sydney)) {
		t.Errorf("Today() = %v, not the current Sydney day", got)
	}
	if got.Location() != sydney {
		t.Errorf("Today() location = %v, want Australia/Sydney", got.Location())
	}
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q) error = %v", name, err)
	}
	return loc
}
