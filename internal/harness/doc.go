// Package harness runs calendar conformance scenarios.
//
// A scenario is a YAML file listing calendar operations and their expected
// outputs:
//
//	name: nowruz-1403
//	description: Gregorian 2024-03-20 is 1 Farvardin 1403
//	steps:
//	  - op: to_jalali
//	    date: "2024-03-20"
//	    expect: "1403-01-01"
//
// Loading is two-phase. The YAML is decoded strictly (unknown keys are
// rejected) and the decoded value is then unified with the embedded CUE
// schema (schema.cue), which checks the op names, the fields each op needs
// and the value ranges.
//
// Run executes every step against the calendar, datetime and picker
// packages and records one TraceEvent per step. A step with an expect
// value fails when the produced output differs; steps without one are
// recorded only, which is how golden files are bootstrapped.
//
// Golden traces (AssertGolden, Snapshot) are plain indented JSON with a
// trailing newline, stored in testdata/golden/<scenario>.golden.
//
// Supported ops:
//   - to_jalali: date (Gregorian) -> Jalali date
//   - to_gregorian: date (Jalali) -> Gregorian date
//   - weekday: date (Jalali) -> 1..7 counted from Saturday
//   - month_length: year, month -> days, 0 for an invalid month
//   - is_leap: year -> true|false
//   - epoch_seconds: date (Jalali), optional time -> seconds since the epoch
//   - from_epoch: millis, optional clock -> Jalali date and time in the
//     harness location (UTC unless WithLocation says otherwise)
//   - month_name: month, optional locale (fa unless "en") -> name
//   - month_grid: year, month -> leading/length/trailing cell counts
package harness
