package datetime_test

import (
	"gomjd/datetime"
)

// TAI-UTC steps for the fake table, starting at 0h of mjd
type leapStep struct {
	mjd float64
	dat float64
}

// Deterministic leap second table: TAI-UTC is 35 s from 2012-07-01 with
// positive leap seconds ending 2015-06-30 and 2016-12-31 and, to exercise
// short days, a negative one ending 2019-12-31.
type fakeTable struct {
	steps []leapStep
}

var testTable = fakeTable{
	steps: []leapStep{
		{56109, 35}, // 2012-07-01
		{57204, 36}, // 2015-07-01
		{57754, 37}, // 2017-01-01
		{58849, 36}, // 2020-01-01
	},
}

func (t fakeTable) TaiMinusUtc(year, month, day int, fd float64) (float64, datetime.Status) {
	mjd, st := datetime.Ymd2Mjd(year, month, day)

	if st < 0 {
		return 0, st
	}

	dat := 34.0

	for _, step := range t.steps {
		if mjd+fd >= step.mjd {
			dat = step.dat
		}
	}

	return dat, datetime.STATUS_OK
}

func newEngine(p datetime.Precision) *datetime.Engine {
	return datetime.NewEngine(p, testTable)
}
