package calendar

// LeapOracle decides whether a Jalali year is a leap year (Esfand has 30 days).
type LeapOracle interface {
	IsLeap(year int) bool
}

// CycleOracle implements the 33-year arithmetic leap cycle.
//
// Within every 33-year cycle eight years are leap, spaced four years apart
// with one five-year gap. This is the same cycle the conversion arithmetic in
// JalaliToGregorian encodes, so month lengths and conversions always agree.
//
// The arithmetic rule diverges from the astronomical calendar for a handful
// of years far outside the 1200..1600 range.
type CycleOracle struct{}

// IsLeap reports whether year is leap under the 33-year cycle.
func (CycleOracle) IsLeap(year int) bool {
	return floorMod(8*year+29, 33) < 8
}

// TableOracle declares a year leap if and only if it is a member of an
// enumerated list.
//
// Years outside the list are never leap, even when they are leap in the
// real calendar. Use it to reproduce a fixed, externally supplied table.
type TableOracle struct {
	years map[int]struct{}
}

// NewTableOracle creates an oracle from an explicit list of leap years.
func NewTableOracle(years ...int) TableOracle {
	set := make(map[int]struct{}, len(years))
	for _, y := range years {
		set[y] = struct{}{}
	}
	return TableOracle{years: set}
}

// IsLeap reports whether year is a member of the table.
func (o TableOracle) IsLeap(year int) bool {
	_, ok := o.years[year]
	return ok
}

// IsLeap reports whether the Jalali year is leap using the default oracle.
func IsLeap(year int) bool {
	return Default.IsLeap(year)
}

// floorMod returns a mod m in [0, m) for positive m, including negative a.
func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
