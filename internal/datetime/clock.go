package datetime

import (
	"time"

	"github.com/roach88/persiandt/internal/calendar"
)

// Clock supplies the current civil time.
//
// The location of the returned time decides which civil date is "today".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct {
	// Location of the civil time. Nil means time.Local.
	Location *time.Location
}

// Now returns the current wall-clock time in c.Location.
func (c SystemClock) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Now returns the current Jalali date and time of day read from a single
// clock sample. In Format12Hour the hour is 1..12 with AM or PM.
func Now(c Clock, format HourFormat) JalaliDate {
	return FromTime(c.Now(), format)
}

// TimeNow returns only the current time of day.
func TimeNow(c Clock, format HourFormat) Time {
	now := c.Now()
	return NewTime(now.Hour(), now.Minute(), format)
}

// FromTime converts the civil date and time of t (in t's own location) to a
// JalaliDate.
func FromTime(t time.Time, format HourFormat) JalaliDate {
	jy, jm, jd := calendar.GregorianToJalali(t.Year(), int(t.Month()), t.Day())
	return JalaliDate{
		Year:  jy,
		Month: jm,
		Day:   jd,
		Time:  NewTime(t.Hour(), t.Minute(), format),
	}
}

// FromEpochMillis converts an epoch-millisecond timestamp to a JalaliDate
// using the civil time in loc (nil means time.Local).
//
// Both the date and the time of day are derived from the timestamp; the
// current time is never consulted.
func FromEpochMillis(ms int64, loc *time.Location, format HourFormat) JalaliDate {
	if loc == nil {
		loc = time.Local
	}
	return FromTime(time.UnixMilli(ms).In(loc), format)
}
