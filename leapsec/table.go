package leapsec

import (
	"sort"

	"gomjd/datetime"
	"gomjd/fault"
)

/***** CONSTANT ********************************/

const (
	// first year with a defined TAI-UTC
	FIRST_YEAR int = 1960
	// years later than this are flagged as dubious by the built-in table
	DEFAULT_HORIZON int = 2028
)

/***** STRUCT **********************************/

/*
A change of TAI-UTC taking effect at 0h UTC on the first day of Year/Month.
Before 1972 UTC ran at a different rate than TAI and the offset drifts:
	TAI-UTC = Delta + (MJD - RefMjd) * Rate
From 1972 on Rate is zero and Delta is a whole number of seconds.
*/
type Entry struct {
	Year   int
	Month  int
	Delta  float64
	RefMjd float64
	Rate   float64 // s/day
}

// Leap second table, read-only once built and safe for concurrent use.
type Table struct {
	entries []Entry
	horizon int
}

/***** CONSTANT ********************************/

var _BUILTIN []Entry = []Entry{
	{1960, 1, 1.4178180, 37300, 0.0012960},
	{1961, 1, 1.4228180, 37300, 0.0012960},
	{1961, 8, 1.3728180, 37300, 0.0012960},
	{1962, 1, 1.8458580, 37665, 0.0011232},
	{1963, 11, 1.9458580, 37665, 0.0011232},
	{1964, 1, 3.2401300, 38761, 0.0012960},
	{1964, 4, 3.3401300, 38761, 0.0012960},
	{1964, 9, 3.4401300, 38761, 0.0012960},
	{1965, 1, 3.5401300, 38761, 0.0012960},
	{1965, 3, 3.6401300, 38761, 0.0012960},
	{1965, 7, 3.7401300, 38761, 0.0012960},
	{1965, 9, 3.8401300, 38761, 0.0012960},
	{1966, 1, 4.3131700, 39126, 0.0025920},
	{1968, 2, 4.2131700, 39126, 0.0025920},
	{1972, 1, 10, 0, 0},
	{1972, 7, 11, 0, 0},
	{1973, 1, 12, 0, 0},
	{1974, 1, 13, 0, 0},
	{1975, 1, 14, 0, 0},
	{1976, 1, 15, 0, 0},
	{1977, 1, 16, 0, 0},
	{1978, 1, 17, 0, 0},
	{1979, 1, 18, 0, 0},
	{1980, 1, 19, 0, 0},
	{1981, 7, 20, 0, 0},
	{1982, 7, 21, 0, 0},
	{1983, 7, 22, 0, 0},
	{1985, 7, 23, 0, 0},
	{1988, 1, 24, 0, 0},
	{1990, 1, 25, 0, 0},
	{1991, 1, 26, 0, 0},
	{1992, 7, 27, 0, 0},
	{1993, 7, 28, 0, 0},
	{1994, 7, 29, 0, 0},
	{1996, 1, 30, 0, 0},
	{1997, 7, 31, 0, 0},
	{1999, 1, 32, 0, 0},
	{2006, 1, 33, 0, 0},
	{2009, 1, 34, 0, 0},
	{2012, 7, 35, 0, 0},
	{2015, 7, 36, 0, 0},
	{2017, 1, 37, 0, 0},
}

/***** FUNCTION ********************************/

// The built-in table, current up to the 2017-01-01 leap second.
func Default() *Table {
	return NewTable(_BUILTIN, DEFAULT_HORIZON)
}

/***********************************************/

// Table from entries in any order. Dates in years after horizon are
// reported as dubious.
func NewTable(entries []Entry, horizon int) *Table {
	t := &Table{make([]Entry, len(entries)), horizon}
	copy(t.entries, entries)

	sort.SliceStable(t.entries, func(i, j int) bool {
		return monthKey(t.entries[i].Year, t.entries[i].Month) < monthKey(t.entries[j].Year, t.entries[j].Month)
	})

	return t
}

/***********************************************/

func monthKey(year, month int) int {
	return 12*year + month
}

/***********************************************/

// Check that the table covers every date from FIRST_YEAR on.
func (t *Table) Validate() error {
	if len(t.entries) == 0 {
		return fault.ErrEmptyLeapTable
	}

	if _, st := t.TaiMinusUtc(FIRST_YEAR, 1, 1, 0.0); st.IsError() {
		return st.LeapErr()
	}

	return nil
}

/***********************************************/

func (t *Table) Horizon() int {
	return t.horizon
}

/***********************************************/

func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

/***********************************************/

/*
TAI-UTC in seconds at fraction fd of the given UTC day.

Status:
	+1	year before 1960 (0 returned) or after the table horizon
	-1..-3	bad year, month or day
	-4	fd outside [0, 1]
	-5	no entry covers the date
*/
func (t *Table) TaiMinusUtc(year, month, day int, fd float64) (dat float64, st datetime.Status) {
	if fd < 0 || fd > 1 {
		return 0, datetime.STATUS_BAD_FRACTION
	}

	mjd, st := datetime.Ymd2Mjd(year, month, day)

	if st < 0 {
		return 0, st
	}

	if year < FIRST_YEAR {
		return 0, datetime.STATUS_DUBIOUS_YEAR
	}

	st = datetime.STATUS_OK

	if year > t.horizon {
		st = datetime.STATUS_DUBIOUS_YEAR
	}

	key := monthKey(year, month)

	// first entry later than the date, the one before it applies
	idx := sort.Search(len(t.entries), func(i int) bool {
		return monthKey(t.entries[i].Year, t.entries[i].Month) > key
	})

	if idx == 0 {
		return 0, datetime.STATUS_INTERNAL
	}

	e := t.entries[idx-1]
	dat = e.Delta

	if e.Rate != 0 {
		dat += (mjd + fd - e.RefMjd) * e.Rate
	}

	return
}

/***********************************************/
