package calendar

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Calendar binds the month-length rules to a leap oracle.
type Calendar struct {
	Leap LeapOracle
}

// Default uses the 33-year arithmetic cycle.
var Default = Calendar{Leap: CycleOracle{}}

// New creates a Calendar backed by the given oracle.
// A nil oracle falls back to CycleOracle.
func New(leap LeapOracle) Calendar {
	if leap == nil {
		leap = CycleOracle{}
	}
	return Calendar{Leap: leap}
}

// IsLeap reports whether year is leap under c's oracle.
func (c Calendar) IsLeap(year int) bool {
	if c.Leap == nil {
		return CycleOracle{}.IsLeap(year)
	}
	return c.Leap.IsLeap(year)
}

// MonthLength returns the number of days in a Jalali month.
//
// Months 1-6 have 31 days, 7-11 have 30 and Esfand (12) has 30 in a leap
// year and 29 otherwise. Any other month yields 0.
func (c Calendar) MonthLength(month, year int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if c.IsLeap(year) {
			return 30
		}
		return 29
	default:
		return 0
	}
}

// MonthLength returns the length of a Jalali month under the default calendar.
func MonthLength(month, year int) int {
	return Default.MonthLength(month, year)
}

// Weekday returns the day of the week of a Jalali date, counted from
// Saturday: Saturday is 1 and Friday is 7.
//
// 0 is returned if the Gregorian weekday cannot be mapped. That cannot
// happen for dates produced by this package, but callers must still treat
// 0 as an error.
func Weekday(jy, jm, jd int) int {
	gy, gm, gd := JalaliToGregorian(jy, jm, jd)
	return jalaliWeekday(time.Date(gy, time.Month(gm), gd, 12, 0, 0, 0, time.UTC).Weekday())
}

func jalaliWeekday(d time.Weekday) int {
	switch d {
	case time.Saturday:
		return 1
	case time.Sunday:
		return 2
	case time.Monday:
		return 3
	case time.Tuesday:
		return 4
	case time.Wednesday:
		return 5
	case time.Thursday:
		return 6
	case time.Friday:
		return 7
	default:
		return 0
	}
}

var (
	farsiMonthNames = nfc(
		"فروردین",
		"اردیبهشت",
		"خرداد",
		"تیر",
		"مرداد",
		"شهریور",
		"مهر",
		"آبان",
		"آذر",
		"دی",
		"بهمن",
		"اسفند",
	)

	englishMonthNames = []string{
		"Farvardin",
		"Ordibehesht",
		"Khordad",
		"Tir",
		"Mordad",
		"Shahrivar",
		"Mehr",
		"Aban",
		"Azar",
		"Day",
		"Bahman",
		"Esfand",
	}

	farsiWeekdayNames = nfc(
		"شنبه",
		"یک\u200cشنبه",
		"دوشنبه",
		"سه\u200cشنبه",
		"چهارشنبه",
		"پنج\u200cشنبه",
		"جمعه",
	)

	englishWeekdayNames = []string{
		"Saturday",
		"Sunday",
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
	}
)

// nfc normalises literal tables so names compare equal to user input
// regardless of how the source file was encoded.
func nfc(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = norm.NFC.String(n)
	}
	return out
}

// MonthNames returns the twelve Jalali month names, Farvardin first.
// The returned slice is a copy and may be modified by the caller.
func MonthNames(l Locale) []string {
	if l.IsEnglish() {
		return clone(englishMonthNames)
	}
	return clone(farsiMonthNames)
}

// WeekdayNames returns the seven weekday names, Saturday first.
func WeekdayNames(l Locale) []string {
	if l.IsEnglish() {
		return clone(englishWeekdayNames)
	}
	return clone(farsiWeekdayNames)
}

// WeekdayHeaders returns the weekday names upper-cased for column headers.
// Persian script has no case, so Farsi headers equal WeekdayNames.
func WeekdayHeaders(l Locale) []string {
	caser := cases.Upper(l.Tag())
	names := WeekdayNames(l)
	for i, n := range names {
		names[i] = caser.String(n)
	}
	return names
}

// MonthName returns the name of month (1..12), or "" for any other value.
func MonthName(month int, l Locale) string {
	if month < 1 || month > 12 {
		return ""
	}
	if l.IsEnglish() {
		return englishMonthNames[month-1]
	}
	return farsiMonthNames[month-1]
}

// WeekdayName returns the name of a weekday as numbered by Weekday (1..7),
// or "" for any other value, including the 0 sentinel.
func WeekdayName(weekday int, l Locale) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	if l.IsEnglish() {
		return englishWeekdayNames[weekday-1]
	}
	return farsiWeekdayNames[weekday-1]
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
