// Package sequence generates the bounded option lists that wheel and grid
// pickers enumerate.
//
// Every generator is a pure function of its arguments and returns a fresh
// slice; callers decide whether to cache. Recompute day options whenever
// the selected month or year changes, since the month length does.
package sequence

import (
	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
)

// YearSpan is the number of consecutive years YearRange produces.
const YearSpan = 20

// YearRange returns YearSpan consecutive years starting at start.
func YearRange(start int) []int {
	return Range(start, YearSpan)
}

// DayRange returns 1..monthLength. A non-positive length yields an empty
// slice, so an invalid month (length 0) produces no day options.
func DayRange(monthLength int) []int {
	return Range(1, monthLength)
}

// DaysOf returns the day options for a Jalali month under the default calendar.
func DaysOf(year, month int) []int {
	return DayRange(calendar.MonthLength(month, year))
}

// HourRange returns 0..23 for Format24Hour and 1..12 for Format12Hour.
func HourRange(format datetime.HourFormat) []int {
	if format.Is24Hour() {
		return Range(0, 24)
	}
	return Range(1, 12)
}

// MinuteRange returns 0..59.
func MinuteRange() []int {
	return Range(0, 60)
}

// AmPmLabels returns the labels for AM and PM in that order.
func AmPmLabels(l calendar.Locale) (am, pm string) {
	if l.IsEnglish() {
		return "AM", "PM"
	}
	return "ق.ظ", "ب.ظ"
}

// PeriodLabel returns the label of a single period, or "" for NoPeriod.
func PeriodLabel(p datetime.ClockPeriod, l calendar.Locale) string {
	am, pm := AmPmLabels(l)
	switch p {
	case datetime.AM:
		return am
	case datetime.PM:
		return pm
	default:
		return ""
	}
}

// MonthOptions returns the twelve month names for a month wheel.
func MonthOptions(l calendar.Locale) []string {
	return calendar.MonthNames(l)
}

// WeekdayOptions returns the seven weekday column headers, Saturday first.
func WeekdayOptions(l calendar.Locale) []string {
	return calendar.WeekdayHeaders(l)
}

// Range returns n consecutive integers starting at start.
// n <= 0 yields an empty, non-nil slice.
func Range(start, n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// IndexOf returns the position of v in options, or -1. Pickers use it to
// translate a selected value into an initial wheel index.
func IndexOf(options []int, v int) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
