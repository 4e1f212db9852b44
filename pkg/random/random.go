package random

import (
	"math/rand"
	"time"
)

// Range is an inclusive pair of calendar dates
type Range struct {
	Start time.Time
	End   time.Time
}

// Generator produces reproducible random date ranges
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator; the same seed yields the same ranges
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Date picks a day in [from, from+spanDays]
func (g *Generator) Date(from time.Time, spanDays int) time.Time {
	if spanDays <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.rng.Intn(spanDays+1))
}

// Range picks a start in [from, from+spanDays] and a length of 0..maxDays days
func (g *Generator) Range(from time.Time, spanDays, maxDays int) Range {
	start := g.Date(from, spanDays)
	return Range{Start: start, End: g.Date(start, maxDays)}
}

// Ranges generates n ranges
func (g *Generator) Ranges(n int, from time.Time, spanDays, maxDays int) []Range {
	if n <= 0 {
		return []Range{}
	}

	ranges := make([]Range, n)
	for i := range ranges {
		ranges[i] = g.Range(from, spanDays, maxDays)
	}
	return ranges
}
