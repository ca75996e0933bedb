package testutil

import "github.com/roach88/persiandt/internal/calendar"

// LegacyLeapYears is the enumerated leap-year table shipped by older
// Persian date pickers.
//
// It is kept as a fixture only. From 1407 on it is wrong: the real leap
// years are 1408, 1412, ... and every year outside the list reads as
// common.
var LegacyLeapYears = []int{1403, 1407, 1411, 1415, 1419, 1423, 1427, 1431, 1435, 1439}

// LegacyCalendar returns a calendar backed by LegacyLeapYears.
func LegacyCalendar() calendar.Calendar {
	return calendar.New(calendar.NewTableOracle(LegacyLeapYears...))
}
