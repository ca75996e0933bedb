package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ClockPeriod qualifies an hour given on a 12-hour clock.
// The zero value, NoPeriod, marks a time in 24-hour form.
type ClockPeriod int

const (
	// NoPeriod marks a 24-hour time; Hour is 0..23.
	NoPeriod ClockPeriod = iota
	// AM is the period from midnight to noon.
	AM
	// PM is the period from noon to midnight.
	PM
)

// String returns "AM", "PM" or "" for NoPeriod.
func (p ClockPeriod) String() string {
	switch p {
	case AM:
		return "AM"
	case PM:
		return "PM"
	case NoPeriod:
		return ""
	default:
		return fmt.Sprintf("ClockPeriod(%d)", int(p))
	}
}

// HourFormat is the caller's preferred clock display.
type HourFormat int

const (
	// Format24Hour displays hours 0..23 without a period.
	Format24Hour HourFormat = iota
	// Format12Hour displays hours 1..12 with AM/PM.
	Format12Hour
)

// Is24Hour reports whether f is Format24Hour.
func (f HourFormat) Is24Hour() bool {
	return f == Format24Hour
}

// String returns "24" or "12".
func (f HourFormat) String() string {
	if f == Format12Hour {
		return "12"
	}
	return "24"
}

// ParseHourFormat accepts "24", "24h", "12" and "12h".
func ParseHourFormat(s string) (HourFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "24", "24h":
		return Format24Hour, nil
	case "12", "12h":
		return Format12Hour, nil
	default:
		return Format24Hour, fmt.Errorf("invalid hour format %q: must be 12 or 24", s)
	}
}

// Time is a time of day with minute precision.
//
// When Period is NoPeriod, Hour is in 0..23. When Period is AM or PM, Hour
// is in 1..12 and 12 AM is midnight.
type Time struct {
	Hour   int
	Minute int
	Period ClockPeriod
}

// NewTime builds a Time from a 24-hour reading (hour 0..23), expressed in
// the requested format.
func NewTime(hour24, minute int, format HourFormat) Time {
	t := Time{Hour: hour24, Minute: minute}
	if format.Is24Hour() {
		return t
	}
	return t.To12Hour()
}

// Is24Hour reports whether t carries no clock period.
func (t Time) Is24Hour() bool {
	return t.Period == NoPeriod
}

// Hour24 returns the hour on a 24-hour clock.
// 12 AM maps to 0 and 12 PM stays 12.
func (t Time) Hour24() int {
	switch t.Period {
	case AM:
		if t.Hour == 12 {
			return 0
		}
		return t.Hour
	case PM:
		if t.Hour == 12 {
			return 12
		}
		return t.Hour + 12
	default:
		return t.Hour
	}
}

// SecondsOfDay returns the seconds elapsed since midnight.
func (t Time) SecondsOfDay() int64 {
	return int64(t.Hour24())*3600 + int64(t.Minute)*60
}

// To24Hour returns the same instant of the day in 24-hour form.
func (t Time) To24Hour() Time {
	return Time{Hour: t.Hour24(), Minute: t.Minute}
}

// To12Hour returns the same instant of the day in 12-hour form.
func (t Time) To12Hour() Time {
	if !t.Is24Hour() {
		return t
	}
	period := AM
	if t.Hour >= 12 {
		period = PM
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return Time{Hour: hour, Minute: t.Minute, Period: period}
}

// In returns t expressed in the given format.
func (t Time) In(format HourFormat) Time {
	if format.Is24Hour() {
		return t.To24Hour()
	}
	return t.To12Hour()
}

// WithHour returns a copy of t with Hour replaced.
func (t Time) WithHour(hour int) Time {
	t.Hour = hour
	return t
}

// WithMinute returns a copy of t with Minute replaced.
func (t Time) WithMinute(minute int) Time {
	t.Minute = minute
	return t
}

// WithPeriod returns a copy of t with Period replaced.
// The hour is not adjusted.
func (t Time) WithPeriod(p ClockPeriod) Time {
	t.Period = p
	return t
}

// Validate checks the hour, minute and period invariants.
func (t Time) Validate() error {
	switch t.Period {
	case NoPeriod:
		if t.Hour < 0 || t.Hour > 23 {
			return newValidationError(ErrCodeInvalidHour, "hour", t.Hour, "hour must be 0..23 in 24-hour form")
		}
	case AM, PM:
		if t.Hour < 1 || t.Hour > 12 {
			return newValidationError(ErrCodeInvalidHour, "hour", t.Hour, "hour must be 1..12 with %s", t.Period)
		}
	default:
		return newValidationError(ErrCodeInvalidPeriod, "period", int(t.Period), "unknown clock period")
	}
	if t.Minute < 0 || t.Minute > 59 {
		return newValidationError(ErrCodeInvalidMinute, "minute", t.Minute, "minute must be 0..59")
	}
	return nil
}

// String formats t as "13:05" or, with a period, "01:05 PM".
func (t Time) String() string {
	if t.Is24Hour() {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d %s", t.Hour, t.Minute, t.Period)
}

// timePattern is the accepted time grammar: H:MM or HH:MM, optionally
// followed by AM or PM (any case) with at most one space between.
// The scenario schema uses the same pattern.
var timePattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})(?: ?([AaPp][Mm]))?$`)

// ParseTime parses "HH:MM" (24-hour) or "HH:MM AM" / "HH:MM PM"; the space
// before the period is optional. Surrounding blanks are ignored and any
// other text is an error. The result is validated.
func ParseTime(s string) (Time, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Time{}, fmt.Errorf("invalid time %q: want HH:MM [AM|PM]", s)
	}

	// Both groups are at most two digits, so Atoi cannot fail.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	t := Time{Hour: hour, Minute: minute}

	switch strings.ToUpper(m[3]) {
	case "AM":
		t.Period = AM
	case "PM":
		t.Period = PM
	}

	if err := t.Validate(); err != nil {
		return Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}
