// Package calendar implements the Jalali (Persian solar Hijri) calendar arithmetic.
//
// The package is the foundational layer of persiandt: it converts between the
// Gregorian and Jalali calendars, decides Jalali leap years, and exposes the
// fixed metadata tables (month lengths, month names, weekday names) that
// pickers render.
//
// Everything here operates on plain (year, month, day) integer triples. The
// tagged date types live in package datetime, which imports calendar;
// calendar imports nothing internal.
//
// Error model:
//   - Nothing in this package returns an error or panics on bad input.
//   - Invalid months yield a month length of 0.
//   - A weekday that cannot be mapped yields 0.
//   - Out-of-range conversion input yields a deterministic, meaningless triple.
//
// Callers must check the sentinels (MonthLength(...) > 0, Weekday(...) != 0)
// before trusting a result.
//
// Concurrency: all functions are pure and all tables are read-only after
// package initialisation, so every function is safe for concurrent use.
package calendar
