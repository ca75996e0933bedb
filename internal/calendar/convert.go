package calendar

import "time"

// gregorianDaysBefore[m-1] is the number of days in a common Gregorian year
// before the first day of month m.
var gregorianDaysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Epoch offsets of the day-counting arithmetic.
const (
	gregorianToJalaliOffset = 355666
	jalaliToGregorianOffset = -355668
	jalaliYearOffset        = 1595
)

// Cycle lengths in days.
const (
	daysPer33Years  = 12053  // 33 Jalali years
	daysPer4Years   = 1461   // 4 years with one leap day
	daysPer400Years = 146097 // 400 Gregorian years
	daysPer100Years = 36524  // 100 Gregorian years without the 400-year leap day
	daysFirst6Month = 186    // Farvardin..Shahrivar, 6 * 31
)

// GregorianToJalali converts a Gregorian date to the Jalali calendar.
//
// The caller is responsible for passing a valid Gregorian date. Months
// outside 1..12 are folded into the year (month 13 is January of the next
// year, month 0 is December of the previous one); any other invalid input
// produces a deterministic but meaningless result.
func GregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	gy, gm = foldMonth(gy, gm)

	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := gregorianToJalaliOffset + 365*gy +
		(gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 +
		gd + gregorianDaysBefore[gm-1]

	jy = -jalaliYearOffset + 33*(days/daysPer33Years)
	days %= daysPer33Years
	jy += 4 * (days / daysPer4Years)
	days %= daysPer4Years
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < daysFirst6Month {
		return jy, 1 + days/31, 1 + days%31
	}
	return jy, 7 + (days-daysFirst6Month)/30, 1 + (days-daysFirst6Month)%30
}

// JalaliToGregorian converts a Jalali date to the Gregorian calendar.
//
// For every valid Gregorian date g in the supported range,
// JalaliToGregorian(GregorianToJalali(g)) == g.
func JalaliToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	jy1 := jy + jalaliYearOffset
	days := jalaliToGregorianOffset + 365*jy1 + (jy1/33)*8 + (jy1%33+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + daysFirst6Month
	}

	gy = 400 * (days / daysPer400Years)
	days %= daysPer400Years
	if days > daysPer100Years {
		days--
		gy += 100 * (days / daysPer100Years)
		days %= daysPer100Years
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / daysPer4Years)
	days %= daysPer4Years
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd = days + 1
	monthDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsGregorianLeap(gy) {
		monthDays[2] = 29
	}
	for gm < 13 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, gm, gd
}

// CurrentJalaliDate converts the civil date of now to the Jalali calendar.
// The date is read in now's location; callers pick the location.
func CurrentJalaliDate(now time.Time) (jy, jm, jd int) {
	return GregorianToJalali(now.Year(), int(now.Month()), now.Day())
}

// IsGregorianLeap applies the 4/100/400 rule.
func IsGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// foldMonth moves an out-of-range month into 1..12 by carrying whole years.
func foldMonth(year, month int) (int, int) {
	if month >= 1 && month <= 12 {
		return year, month
	}
	m := month - 1
	carry := m / 12
	if m%12 < 0 {
		carry--
	}
	return year + carry, floorMod(m, 12) + 1
}
