package cli

import (
	"fmt"

	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
	"github.com/roach88/persiandt/internal/sequence"
)

// DateView renders one Jalali date and time with its Gregorian counterpart.
type DateView struct {
	Jalali       string `json:"jalali"`
	Gregorian    string `json:"gregorian"`
	Time         string `json:"time"`
	Weekday      int    `json:"weekday"` // 1 = Saturday .. 7 = Friday
	WeekdayName  string `json:"weekday_name"`
	MonthName    string `json:"month_name"`
	EpochSeconds int64  `json:"epoch_seconds"`
}

func newDateView(d datetime.JalaliDate, l calendar.Locale) DateView {
	weekday := d.Weekday()
	return DateView{
		Jalali:       d.DateString(),
		Gregorian:    d.ToGregorian().DateString(),
		Time:         localizedTime(d.Time, l),
		Weekday:      weekday,
		WeekdayName:  calendar.WeekdayName(weekday, l),
		MonthName:    calendar.MonthName(d.Month, l),
		EpochSeconds: d.EpochSeconds(),
	}
}

// String formats v as "1403-01-01 13:05 Wednesday".
func (v DateView) String() string {
	return fmt.Sprintf("%s %s %s", v.Jalali, v.Time, v.WeekdayName)
}

// localizedTime is Time.String with the period label in locale l.
func localizedTime(t datetime.Time, l calendar.Locale) string {
	if t.Is24Hour() {
		return t.String()
	}
	return fmt.Sprintf("%02d:%02d %s", t.Hour, t.Minute, sequence.PeriodLabel(t.Period, l))
}
