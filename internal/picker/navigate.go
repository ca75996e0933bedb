package picker

import (
	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
)

// NextMonth moves d to the following month, wrapping Esfand to Farvardin
// of the next year. The day is clamped to the new month's length.
func NextMonth(d datetime.JalaliDate) datetime.JalaliDate {
	if d.Month >= 12 {
		d = d.WithYear(d.Year + 1).WithMonth(1)
	} else {
		d = d.WithMonth(d.Month + 1)
	}
	return clampDay(calendar.Default, d)
}

// PrevMonth moves d to the preceding month, wrapping Farvardin to Esfand of
// the previous year.
//
// The move is refused when d is already at or before floor's month; the
// picker never scrolls back past the month it was opened on. ok reports
// whether d moved.
func PrevMonth(d, floor datetime.JalaliDate) (prev datetime.JalaliDate, ok bool) {
	if monthIndex(d) <= monthIndex(floor) {
		return d, false
	}
	if d.Month <= 1 {
		d = d.WithYear(d.Year - 1).WithMonth(12)
	} else {
		d = d.WithMonth(d.Month - 1)
	}
	return clampDay(calendar.Default, d), true
}

func monthIndex(d datetime.JalaliDate) int {
	return d.Year*12 + d.Month - 1
}
