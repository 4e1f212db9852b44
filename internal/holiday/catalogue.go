package holiday

import "time"

// Holiday names of the NSW catalogue
const (
	NameNewYearsDay   = "New Year's Day"
	NameAustraliaDay  = "Australia Day"
	NameGoodFriday    = "Good Friday"
	NameEasterMonday  = "Easter Monday"
	NameAnzacDay      = "Anzac Day"
	NameKingsBirthday = "King's Birthday"
	NameLabourDay     = "Labour Day"
	NameChristmasDay  = "Christmas Day"
	NameBoxingDay     = "Boxing Day"
)

// NSW returns the New South Wales public holiday catalogue.
// Good Friday and Easter Monday are separate rules sharing the Easter date.
func NSW() []Rule {
	return []Rule{
		{Name: NameNewYearsDay, Locator: FixedDate{Month: time.January, Day: 1}, Shift: Mutable},
		{Name: NameAustraliaDay, Locator: FixedDate{Month: time.January, Day: 26}, Shift: Mutable},
		{Name: NameGoodFriday, Locator: EasterDerived{OffsetDays: -2}, Shift: Absolute},
		{Name: NameEasterMonday, Locator: EasterDerived{OffsetDays: 1}, Shift: Absolute},
		{Name: NameAnzacDay, Locator: FixedDate{Month: time.April, Day: 25}, Shift: Absolute},
		{Name: NameKingsBirthday, Locator: NthWeekday{Month: time.June, Weekday: time.Monday, Occurrence: 2}, Shift: Absolute},
		{Name: NameLabourDay, Locator: NthWeekday{Month: time.October, Weekday: time.Monday, Occurrence: 1}, Shift: Absolute},
		{Name: NameChristmasDay, Locator: FixedDate{Month: time.December, Day: 25}, Shift: Mutable},
		{Name: NameBoxingDay, Locator: FixedDate{Month: time.December, Day: 26}, Shift: BoxingDayShift},
	}
}
