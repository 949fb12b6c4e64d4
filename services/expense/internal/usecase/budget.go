package usecase

import (
	"strconv"
	"strings"
)

// ParseDailyBudget reads a free-text budget such as "$120/day". Every rune
// that is not a digit or a dot is dropped, so a range like "$100-150/day"
// collapses to 100150. The longest leading number of what remains is used:
// "12.50." reads as 12.5 and "1.2.3" as 1.2. Text without one yields 0.
func ParseDailyBudget(s string) float64 {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				return parsePrefix(b.String())
			}
			seenDot = true
			b.WriteRune(r)
		}
	}
	return parsePrefix(b.String())
}

func parsePrefix(num string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(num, "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// TripDays prefers the declared duration and falls back to the number of
// planned days.
func TripDays(durationDays, daysInContent int) int {
	if durationDays > 0 {
		return durationDays
	}
	return daysInContent
}

func RecommendedTotal(daily float64, tripDays int) float64 {
	return daily * float64(tripDays)
}
