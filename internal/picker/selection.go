package picker

import (
	"github.com/roach88/persiandt/internal/calendar"
	"github.com/roach88/persiandt/internal/datetime"
)

// Change overrides one field of a date being edited.
type Change func(d *datetime.JalaliDate)

// Year selects a new year.
func Year(year int) Change {
	return func(d *datetime.JalaliDate) { d.Year = year }
}

// Month selects a new month.
func Month(month int) Change {
	return func(d *datetime.JalaliDate) { d.Month = month }
}

// Day selects a new day.
func Day(day int) Change {
	return func(d *datetime.JalaliDate) { d.Day = day }
}

// Hour selects a new hour, interpreted in the date's current clock form.
func Hour(hour int) Change {
	return func(d *datetime.JalaliDate) { d.Time.Hour = hour }
}

// Minute selects a new minute.
func Minute(minute int) Change {
	return func(d *datetime.JalaliDate) { d.Time.Minute = minute }
}

// Period selects AM or PM.
func Period(p datetime.ClockPeriod) Change {
	return func(d *datetime.JalaliDate) { d.Time.Period = p }
}

// Apply returns d with the changes applied, re-validated against the
// default calendar.
//
// A day that no longer fits the selected month is clamped to the month's
// last day (31 Shahrivar becomes 30 Mehr). If the result is still invalid,
// d is returned unchanged together with a *datetime.ValidationError.
func Apply(d datetime.JalaliDate, changes ...Change) (datetime.JalaliDate, error) {
	return ApplyWith(calendar.Default, d, changes...)
}

// ApplyWith is Apply against the month lengths of c.
func ApplyWith(c calendar.Calendar, d datetime.JalaliDate, changes ...Change) (datetime.JalaliDate, error) {
	next := d
	for _, change := range changes {
		change(&next)
	}

	next = clampDay(c, next)
	if err := next.ValidateWith(c); err != nil {
		return d, err
	}
	return next, nil
}

// clampDay caps Day at the month length. Invalid months are left alone so
// validation reports them.
func clampDay(c calendar.Calendar, d datetime.JalaliDate) datetime.JalaliDate {
	if n := c.MonthLength(d.Month, d.Year); n > 0 && d.Day > n {
		return d.WithDay(n)
	}
	return d
}
