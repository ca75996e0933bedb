package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/persiandt/internal/calendar"
)

// JalaliDate is a date in the Jalali calendar with a time of day.
type JalaliDate struct {
	Year  int
	Month int // 1..12, Farvardin is 1
	Day   int // 1..31
	Time  Time
}

// GregorianDate is a date in the Gregorian calendar with a time of day.
type GregorianDate struct {
	Year  int
	Month int // 1..12, January is 1
	Day   int // 1..31
	Time  Time
}

// NewJalali creates a Jalali date at midnight (24-hour form).
func NewJalali(year, month, day int) JalaliDate {
	return JalaliDate{Year: year, Month: month, Day: day}
}

// NewGregorian creates a Gregorian date at midnight (24-hour form).
func NewGregorian(year, month, day int) GregorianDate {
	return GregorianDate{Year: year, Month: month, Day: day}
}

// ToGregorian converts d to the Gregorian calendar. Time is carried over
// unchanged.
func (d JalaliDate) ToGregorian() GregorianDate {
	gy, gm, gd := calendar.JalaliToGregorian(d.Year, d.Month, d.Day)
	return GregorianDate{Year: gy, Month: gm, Day: gd, Time: d.Time}
}

// ToJalali converts d to the Jalali calendar. Time is carried over unchanged.
func (d GregorianDate) ToJalali() JalaliDate {
	jy, jm, jd := calendar.GregorianToJalali(d.Year, d.Month, d.Day)
	return JalaliDate{Year: jy, Month: jm, Day: jd, Time: d.Time}
}

// EpochSeconds returns the seconds since 1970-01-01T00:00:00 reading the date
// and time as civil time with no zone offset.
//
// The result is epochDay*86400 + seconds of day. Out-of-range days are
// normalised the way time.Date normalises them.
func (d GregorianDate) EpochSeconds() int64 {
	midnight := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return midnight.Unix() + d.Time.SecondsOfDay()
}

// EpochSeconds converts d to the Gregorian calendar first.
func (d JalaliDate) EpochSeconds() int64 {
	return d.ToGregorian().EpochSeconds()
}

// AsTime returns d as a time.Time in loc. A nil loc means time.Local.
func (d GregorianDate) AsTime(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Time.Hour24(), d.Time.Minute, 0, 0, loc)
}

// Weekday returns the day of the week counted from Saturday (1) to Friday (7),
// or 0 if it cannot be determined.
func (d JalaliDate) Weekday() int {
	return calendar.Weekday(d.Year, d.Month, d.Day)
}

// MonthLength returns the length of d's month, or 0 for an invalid month.
func (d JalaliDate) MonthLength() int {
	return calendar.MonthLength(d.Month, d.Year)
}

// Date returns the (year, month, day) triple.
func (d JalaliDate) Date() (year, month, day int) {
	return d.Year, d.Month, d.Day
}

// Date returns the (year, month, day) triple.
func (d GregorianDate) Date() (year, month, day int) {
	return d.Year, d.Month, d.Day
}

// WithYear returns a copy of d with Year replaced.
func (d JalaliDate) WithYear(year int) JalaliDate {
	d.Year = year
	return d
}

// WithMonth returns a copy of d with Month replaced.
func (d JalaliDate) WithMonth(month int) JalaliDate {
	d.Month = month
	return d
}

// WithDay returns a copy of d with Day replaced.
func (d JalaliDate) WithDay(day int) JalaliDate {
	d.Day = day
	return d
}

// WithTime returns a copy of d with Time replaced.
func (d JalaliDate) WithTime(t Time) JalaliDate {
	d.Time = t
	return d
}

// WithTime returns a copy of d with Time replaced.
func (d GregorianDate) WithTime(t Time) GregorianDate {
	d.Time = t
	return d
}

// Validate checks d against the Jalali month lengths of the default calendar
// and then validates the time.
func (d JalaliDate) Validate() error {
	return d.ValidateWith(calendar.Default)
}

// ValidateWith checks d against the month lengths of c.
func (d JalaliDate) ValidateWith(c calendar.Calendar) error {
	n := c.MonthLength(d.Month, d.Year)
	if n == 0 {
		return newValidationError(ErrCodeInvalidMonth, "month", d.Month, "month must be 1..12")
	}
	if d.Day < 1 || d.Day > n {
		return newValidationError(ErrCodeInvalidDay, "day", d.Day, "day must be 1..%d in %d-%02d", n, d.Year, d.Month)
	}
	return d.Time.Validate()
}

// Validate checks d against the Gregorian month lengths and then validates
// the time.
func (d GregorianDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return newValidationError(ErrCodeInvalidMonth, "month", d.Month, "month must be 1..12")
	}
	n := gregorianMonthLength(d.Month, d.Year)
	if d.Day < 1 || d.Day > n {
		return newValidationError(ErrCodeInvalidDay, "day", d.Day, "day must be 1..%d in %d-%02d", n, d.Year, d.Month)
	}
	return d.Time.Validate()
}

// String formats d as "1403-01-01 13:05" or "1403-01-01 01:05 PM".
func (d JalaliDate) String() string {
	return formatDate(d.Year, d.Month, d.Day, d.Time)
}

// String formats d as "2024-03-20 13:05" or "2024-03-20 01:05 PM".
func (d GregorianDate) String() string {
	return formatDate(d.Year, d.Month, d.Day, d.Time)
}

// DateString formats only the date part, "1403-01-01".
func (d JalaliDate) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateString formats only the date part, "2024-03-20".
func (d GregorianDate) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatDate(year, month, day int, t Time) string {
	return fmt.Sprintf("%04d-%02d-%02d %s", year, month, day, t)
}

// ParseJalali parses "YYYY-MM-DD" or "YYYY/MM/DD" as a Jalali date at
// midnight and validates it.
func ParseJalali(s string) (JalaliDate, error) {
	y, m, d, err := parseTriple(s)
	if err != nil {
		return JalaliDate{}, err
	}
	date := NewJalali(y, m, d)
	if err := date.Validate(); err != nil {
		return JalaliDate{}, fmt.Errorf("invalid jalali date %q: %w", s, err)
	}
	return date, nil
}

// ParseGregorian parses "YYYY-MM-DD" or "YYYY/MM/DD" as a Gregorian date at
// midnight and validates it.
func ParseGregorian(s string) (GregorianDate, error) {
	y, m, d, err := parseTriple(s)
	if err != nil {
		return GregorianDate{}, err
	}
	date := NewGregorian(y, m, d)
	if err := date.Validate(); err != nil {
		return GregorianDate{}, fmt.Errorf("invalid gregorian date %q: %w", s, err)
	}
	return date, nil
}

func parseTriple(s string) (y, m, d int, err error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	var rest string
	n, _ := fmt.Sscanf(normalized, "%d-%d-%d%s", &y, &m, &d, &rest)
	if n != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return y, m, d, nil
}

func gregorianMonthLength(month, year int) int {
	switch month {
	case 2:
		if calendar.IsGregorianLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
