package holiday

import (
	"sort"
	"time"

	"github.com/username/nsw-workday-calc/internal/calendar"
	"go.uber.org/zap"
)

// Occurrence is one observed holiday inside a date range
type Occurrence struct {
	Name     string
	Year     int
	Nominal  time.Time
	Observed time.Time
	Shift    ShiftPolicy
	Gazetted bool
}

// Engine counts observed holidays of a catalogue inside date ranges.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cal      calendar.Calendar
	rules    []Rule
	gazetted []Gazetted
	logger   *zap.Logger
}

// NewEngine creates a new Engine for the given catalogue
func NewEngine(cal calendar.Calendar, rules []Rule, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		cal:    cal,
		rules:  append([]Rule(nil), rules...),
		logger: logger,
	}
}

// WithGazetted returns a copy of the engine that also counts one-off holidays
func (e *Engine) WithGazetted(days []Gazetted) *Engine {
	clone := *e
	clone.gazetted = make([]Gazetted, 0, len(days))
	for _, g := range days {
		clone.gazetted = append(clone.gazetted, Gazetted{Date: e.cal.Normalize(g.Date), Name: g.Name})
	}
	return &clone
}

// Rules returns the catalogue
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Rule looks up a catalogue entry by name
func (e *Engine) Rule(name string) (Rule, bool) {
	for _, r := range e.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// CountOccurrences counts the years in which the observed date of the rule
// lies inside [start, end]. One candidate date is resolved per calendar year.
func (e *Engine) CountOccurrences(rule Rule, start, end time.Time) int {
	count := 0
	e.eachObserved(rule, start, end, func(Occurrence) {
		count++
	})
	return count
}

// Count returns the total number of observed holidays in [start, end]
func (e *Engine) Count(start, end time.Time) int {
	total := 0
	for _, rule := range e.rules {
		total += e.CountOccurrences(rule, start, end)
	}
	return total + len(e.gazettedIn(start, end))
}

// Occurrences lists every observed holiday in [start, end], ordered by
// observed date and then by catalogue order.
func (e *Engine) Occurrences(start, end time.Time) []Occurrence {
	var out []Occurrence
	for _, rule := range e.rules {
		e.eachObserved(rule, start, end, func(o Occurrence) {
			out = append(out, o)
		})
	}
	out = append(out, e.gazettedIn(start, end)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Observed.Before(out[j].Observed)
	})
	return out
}

// ObservedOn returns the names of all holidays observed on the given day
func (e *Engine) ObservedOn(date time.Time) []string {
	day := e.cal.Normalize(date)
	// Shifting can carry a nominal date of the previous year forward
	from := e.cal.AddDays(day, -7)

	var names []string
	for _, o := range e.Occurrences(from, day) {
		if e.cal.Compare(o.Observed, day) == 0 {
			names = append(names, o.Name)
		}
	}
	return names
}

// EasterHolidays counts Good Friday and Easter Monday together
func (e *Engine) EasterHolidays(start, end time.Time) int {
	return e.GoodFriday(start, end) + e.EasterMonday(start, end)
}

// NewYearsDay counts observed New Year's Day holidays in [start, end]
func (e *Engine) NewYearsDay(start, end time.Time) int {
	return e.countNamed(NameNewYearsDay, start, end)
}

// AustraliaDay counts observed Australia Day holidays in [start, end]
func (e *Engine) AustraliaDay(start, end time.Time) int {
	return e.countNamed(NameAustraliaDay, start, end)
}

// GoodFriday counts Good Fridays in [start, end]
func (e *Engine) GoodFriday(start, end time.Time) int {
	return e.countNamed(NameGoodFriday, start, end)
}

// EasterMonday counts Easter Mondays in [start, end]
func (e *Engine) EasterMonday(start, end time.Time) int {
	return e.countNamed(NameEasterMonday, start, end)
}

// AnzacDay counts Anzac Days in [start, end]; they are never moved
func (e *Engine) AnzacDay(start, end time.Time) int {
	return e.countNamed(NameAnzacDay, start, end)
}

// KingsBirthday counts King's Birthday holidays in [start, end]
func (e *Engine) KingsBirthday(start, end time.Time) int {
	return e.countNamed(NameKingsBirthday, start, end)
}

// LabourDay counts Labour Day holidays in [start, end]
func (e *Engine) LabourDay(start, end time.Time) int {
	return e.countNamed(NameLabourDay, start, end)
}

// ChristmasDay counts observed Christmas Day holidays in [start, end]
func (e *Engine) ChristmasDay(start, end time.Time) int {
	return e.countNamed(NameChristmasDay, start, end)
}

// BoxingDay counts observed Boxing Day holidays in [start, end]
func (e *Engine) BoxingDay(start, end time.Time) int {
	return e.countNamed(NameBoxingDay, start, end)
}

func (e *Engine) countNamed(name string, start, end time.Time) int {
	rule, ok := e.Rule(name)
	if !ok {
		return 0
	}
	return e.CountOccurrences(rule, start, end)
}

func (e *Engine) eachObserved(rule Rule, start, end time.Time, fn func(Occurrence)) {
	start, end = e.cal.Normalize(start), e.cal.Normalize(end)
	if e.cal.Compare(start, end) > 0 {
		return
	}

	for year := e.cal.Year(start); year <= e.cal.Year(end); year++ {
		nominal, observed, ok, err := rule.Observed(e.cal, year)
		if err != nil {
			e.logger.Debug("Holiday date not constructible, skipping year",
				zap.String("holiday", rule.Name),
				zap.Int("year", year),
				zap.Error(err))
			continue
		}
		if !ok || !e.cal.Within(observed, start, end) {
			continue
		}

		fn(Occurrence{
			Name:     rule.Name,
			Year:     year,
			Nominal:  nominal,
			Observed: observed,
			Shift:    rule.Shift,
		})
	}
}

// gazettedIn returns one-off holidays in range that land on a weekday
// not already taken by an observed catalogue holiday.
func (e *Engine) gazettedIn(start, end time.Time) []Occurrence {
	if len(e.gazetted) == 0 {
		return nil
	}
	start, end = e.cal.Normalize(start), e.cal.Normalize(end)

	var out []Occurrence
	seen := make(map[string]bool)
	for _, g := range e.gazetted {
		key := g.Date.Format("2006-01-02")
		if seen[key] || e.cal.IsWeekend(g.Date) || !e.cal.Within(g.Date, start, end) {
			continue
		}
		if e.catalogueObservedOn(g.Date) {
			e.logger.Debug("Gazetted holiday coincides with catalogue holiday",
				zap.String("holiday", g.Name),
				zap.String("date", key))
			continue
		}
		seen[key] = true

		out = append(out, Occurrence{
			Name:     g.Name,
			Year:     e.cal.Year(g.Date),
			Nominal:  g.Date,
			Observed: g.Date,
			Shift:    Absolute,
			Gazetted: true,
		})
	}
	return out
}

func (e *Engine) catalogueObservedOn(day time.Time) bool {
	year := e.cal.Year(day)
	for _, rule := range e.rules {
		for y := year - 1; y <= year; y++ {
			_, observed, ok, err := rule.Observed(e.cal, y)
			if err == nil && ok && e.cal.Compare(observed, day) == 0 {
				return true
			}
		}
	}
	return false
}
