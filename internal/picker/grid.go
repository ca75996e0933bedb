package picker

import "github.com/roach88/persiandt/internal/calendar"

// DaysPerWeek is the number of columns in a month grid.
const DaysPerWeek = 7

// MonthGrid is the layout of one Jalali month on a Saturday-first grid.
//
// Leading blank cells precede day 1 and trailing blank cells follow the
// last day so that Leading+Length+Trailing is a whole number of weeks.
type MonthGrid struct {
	Year     int
	Month    int
	Leading  int
	Length   int
	Trailing int
}

// NewMonthGrid lays out the given month under the default calendar.
// An invalid month yields a grid with Length 0.
func NewMonthGrid(year, month int) MonthGrid {
	return NewMonthGridWith(calendar.Default, year, month)
}

// NewMonthGridWith lays out the given month with the month lengths of c.
func NewMonthGridWith(c calendar.Calendar, year, month int) MonthGrid {
	g := MonthGrid{Year: year, Month: month}

	n := c.MonthLength(month, year)
	first := calendar.Weekday(year, month, 1)
	if n == 0 || first == 0 {
		return g
	}
	last := calendar.Weekday(year, month, n)
	if last == 0 {
		return g
	}

	g.Leading = first - 1
	g.Length = n
	g.Trailing = DaysPerWeek - last
	return g
}

// Valid reports whether the grid holds any days.
func (g MonthGrid) Valid() bool {
	return g.Length > 0
}

// Cells returns the flat cell list, row by row. Blank cells are 0.
func (g MonthGrid) Cells() []int {
	if !g.Valid() {
		return []int{}
	}
	cells := make([]int, 0, g.Leading+g.Length+g.Trailing)
	for i := 0; i < g.Leading; i++ {
		cells = append(cells, 0)
	}
	for day := 1; day <= g.Length; day++ {
		cells = append(cells, day)
	}
	for i := 0; i < g.Trailing; i++ {
		cells = append(cells, 0)
	}
	return cells
}

// Weeks returns Cells split into rows of DaysPerWeek.
func (g MonthGrid) Weeks() [][]int {
	cells := g.Cells()
	weeks := make([][]int, 0, len(cells)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(cells); i += DaysPerWeek {
		weeks = append(weeks, cells[i:i+DaysPerWeek])
	}
	return weeks
}

// Position returns the zero-based row and column of day in the grid.
// ok is false when day is not part of the month.
func (g MonthGrid) Position(day int) (row, col int, ok bool) {
	if day < 1 || day > g.Length {
		return 0, 0, false
	}
	idx := g.Leading + day - 1
	return idx / DaysPerWeek, idx % DaysPerWeek, true
}
