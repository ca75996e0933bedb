// Package picker holds the date-picker state transitions that sit between
// the calendar engine and a presentation layer.
//
// Nothing here renders. The package answers the questions a picker asks:
// what does the date become when the user picks a new field (Apply), how
// is a month laid out on a Saturday-first week grid (MonthGrid), and which
// month comes before or after the one shown (NextMonth, PrevMonth).
//
// Every transition returns a new datetime.JalaliDate; inputs are never
// modified.
package picker
