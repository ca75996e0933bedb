// Package datetime provides the immutable date/time values handed between
// the calendar engine and date pickers.
//
// Two tagged types share one field layout:
//
//   - JalaliDate is a date in the Persian solar Hijri calendar.
//   - GregorianDate is a date in the Gregorian calendar.
//
// They never convert implicitly. JalaliDate.ToGregorian and
// GregorianDate.ToJalali are the only ways across, and epoch arithmetic is
// defined on GregorianDate.
//
// Values are plain structs passed by value. "Changing" a field always goes
// through a With* method that returns a new value; the receiver is never
// modified, so values can be shared between goroutines freely.
//
// Construction performs no validation, mirroring the calendar package's
// sentinel-based error model. Call Validate before trusting a value that
// came from user input.
//
// Wall-clock reads are isolated behind the Clock interface so that Now is a
// pure function of the clock passed in.
package datetime
