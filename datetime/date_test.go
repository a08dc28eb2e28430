package datetime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomjd/datetime"
)

func TestNewDateDefault(t *testing.T) {
	d := datetime.NewDate()
	assert.Equal(t, 51544.0, d.Big())
	assert.Equal(t, 0.5, d.Small())
	assert.Equal(t, datetime.TIME_SYS_UNKNOWN, d.Sys())
	assert.Equal(t, datetime.JD_J2000, d.Jd())
	assert.Equal(t, "Unknown 51544 0.500000000000000", d.String())
}

func TestMjd2Date(t *testing.T) {
	d := datetime.Mjd2Date(datetime.TIME_SYS_TAI, 56943.75, 0.5)
	assert.Equal(t, 56944.0, d.Big())
	assert.InDelta(t, 0.25, d.Small(), 1e-12)
	assert.Equal(t, datetime.TIME_SYS_TAI, d.Sys())

	d = datetime.Mjd2Date(datetime.TIME_SYS_TAI, 10, -0.25)
	assert.Equal(t, 9.0, d.Big())
	assert.Equal(t, 0.75, d.Small())

	d = datetime.Jd2Date(datetime.TIME_SYS_UTC, 2456944.0, 0.25)
	assert.Equal(t, 56943.0, d.Big())
	assert.Equal(t, 0.75, d.Small())

	d = datetime.Jd2Date(datetime.TIME_SYS_UTC, 0.25, 2456944.0)
	assert.Equal(t, 56943.0, d.Big())
	assert.Equal(t, 0.75, d.Small())
}

func TestRearrangeIdempotent(t *testing.T) {
	d := datetime.Mjd2Date(datetime.TIME_SYS_UTC, 56943.3, 1.9)
	big, small := d.Big(), d.Small()

	d.Rearrange()
	assert.Equal(t, big, d.Big())
	assert.Equal(t, small, d.Small())
	assert.Equal(t, 56945.0, big)
	assert.InDelta(t, 0.2, small, 1e-9)
}

func TestParse(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, st := e.Parse("2014 10 13 23 59 59.0", datetime.TIME_SYS_UTC)
	require.Equal(t, datetime.STATUS_OK, st)
	assert.Equal(t, 56943.0, d.Big())
	assert.InDelta(t, 0.9999884259, d.Small(), 1e-10)
	assert.Equal(t, datetime.TIME_SYS_UTC, d.Sys())

	d, st = e.Parse("10 12 13 22 30 0.1", datetime.TIME_SYS_UTC)
	require.Equal(t, datetime.STATUS_OK, st)
	s, _ := e.Format(d, 1)
	assert.Equal(t, "2010/12/13 22:30:00.1", s, "two digit year below 80")

	d, st = e.Parse("85 01 01 00 00 0", datetime.TIME_SYS_UTC)
	require.Equal(t, datetime.STATUS_OK, st)
	s, _ = e.Format(d, 0)
	assert.Equal(t, "1985/01/01 00:00:00", s, "two digit year from 80")

	d, st = e.Parse("  2014\t10 13  1  2   3.5 ", datetime.TIME_SYS_GPST)
	require.Equal(t, datetime.STATUS_OK, st)
	s, _ = e.Format(d, 2)
	assert.Equal(t, "2014/10/13 01:02:03.50", s, "white space runs")
}

func TestParseFail(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	for _, str := range []string{
		"",
		"2014 10 13 23 59",
		"2014 10 13 23 59 59 1",
		"2014 Oct 13 23 59 59",
		"2014 10 13 23 59 x",
		"2014 10 13.5 23 59 59",
		"2014 10 13 23 59 NaN",
		"2014 10 13 23 59 Inf",
		"2014 10 13 23 59 -inf",
	} {
		d, st := e.Parse(str, datetime.TIME_SYS_UTC)
		assert.Equal(t, datetime.STATUS_BAD_STRING, st, "%q", str)
		assert.Equal(t, datetime.TIME_SYS_UNKNOWN, d.Sys(), "%q: no time scale", str)
		assert.Equal(t, datetime.NewDate(), d, "%q: default date", str)
	}

	// numeric but invalid fields keep the time scale
	d, st := e.Parse("2014 13 01 00 00 0", datetime.TIME_SYS_UTC)
	assert.Equal(t, datetime.STATUS_BAD_MONTH, st)
	assert.Equal(t, datetime.TIME_SYS_UTC, d.Sys())
}

func TestParseSignedYear(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)
	utc := datetime.TIME_SYS_UTC

	for _, item := range []struct {
		str  string
		year int
	}{
		{"-5 01 01 00 00 0", -5},
		{"+5 01 01 00 00 0", 5},
		{"05 01 01 00 00 0", 2005},
		{"-45 01 01 00 00 0", -45},
	} {
		d, st := e.Parse(item.str, utc)
		assert.Equal(t, datetime.STATUS_OK, st, "%q", item.str)

		want, _ := e.NewDate(utc, item.year, 1, 1, 0, 0, 0)
		assert.Equal(t, want, d, "%q", item.str)
	}
}

func TestAddSecRollsOver(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, st := e.Parse("2014 10 13 23 59 59.0", datetime.TIME_SYS_UTC)
	require.Equal(t, datetime.STATUS_OK, st)

	d.AddSec(1.0)
	s, st := e.Format(d, 3)
	assert.Equal(t, datetime.STATUS_OK, st)
	assert.Equal(t, "2014/10/14 00:00:00.000", s)

	d.AddSec(-0.5)
	s, _ = e.Format(d, 1)
	assert.Equal(t, "2014/10/13 23:59:59.5", s)
	assert.Equal(t, 56943.0, d.Big())
	assert.True(t, d.Small() >= 0 && d.Small() < 1)
}

func TestAddSecDay(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, _ := e.Parse("2014 10 13 08 15 42.123", datetime.TIME_SYS_UTC)
	next, _ := e.Parse("2014 10 14 08 15 42.123", datetime.TIME_SYS_UTC)

	d.AddSec(86400)
	assert.True(t, e.Eq(d, next), "one day later")
	assert.InDelta(t, 0.0, e.DeltaSec(d, next), 1e-9)

	d.AddSec(-3 * 86400)
	prev, _ := e.Parse("2014 10 11 08 15 42.123", datetime.TIME_SYS_UTC)
	assert.True(t, e.Eq(d, prev), "two days earlier")
}

func TestAddSecAccumulated(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, _ := e.Parse("2014 10 13 00 00 00", datetime.TIME_SYS_UTC)
	end, _ := e.Parse("2014 10 14 00 00 00", datetime.TIME_SYS_UTC)

	for i := 0; i < 2880; i++ {
		d.AddSec(30)
	}

	assert.InDelta(t, 0.0, e.DeltaSec(d, end), 1e-6, "accumulated error")

	s, _ := e.Format(d, 3)
	assert.Equal(t, "2014/10/14 00:00:00.000", s)
}

func TestCompareNano(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)
	utc := datetime.TIME_SYS_UTC

	a, _ := e.Parse("2010 12 13 22 30 0.1", utc)
	b, _ := e.Parse("2010 12 13 22 30 0.100000001", utc)
	c, _ := e.Parse("2010 12 13 22 30 0.1000000001", utc)

	assert.True(t, e.Ne(a, b), "1e-9 s apart")
	assert.True(t, e.Lt(a, b))
	assert.True(t, e.Le(a, b))
	assert.True(t, e.Gt(b, a))
	assert.True(t, e.Ge(b, a))
	assert.False(t, e.Eq(a, b))

	assert.True(t, e.Eq(a, c), "1e-10 s apart")
	assert.True(t, e.Le(a, c))
	assert.True(t, e.Ge(a, c))
	assert.False(t, e.Lt(a, c))
	assert.False(t, e.Gt(c, a))

	// a coarser profile in the same process
	assert.True(t, datetime.PRECISION_MICRO.Eq(a, b), "micro tolerance")
	assert.True(t, datetime.PRECISION_PICO.Ne(a, c), "pico tolerance")
}

func TestCompareAcrossDays(t *testing.T) {
	p := datetime.PRECISION_NANO
	a := datetime.Mjd2Date(datetime.TIME_SYS_UTC, 56944, 0.0)
	b := datetime.Mjd2Date(datetime.TIME_SYS_UTC, 56943, 0.999999999999995)

	assert.True(t, p.Eq(a, b), "within 1e-14 days")
	assert.True(t, p.Gt(a, datetime.Mjd2Date(datetime.TIME_SYS_UTC, 56943, 0.9999)))
}

func TestDeltaSec(t *testing.T) {
	p := datetime.PRECISION_NANO
	a := datetime.Mjd2Date(datetime.TIME_SYS_TAI, 56944, 0.25)
	b := datetime.Mjd2Date(datetime.TIME_SYS_TAI, 56943, 0.75)

	assert.InDelta(t, 43200.0, p.DeltaSec(a, b), 1e-9)
	assert.InDelta(t, -43200.0, p.DeltaSec(b, a), 1e-9)

	c := datetime.Mjd2Date(datetime.TIME_SYS_TAI, 56944, 0.5)
	assert.InDelta(t, 21600.0, p.DeltaSec(c, a), 1e-9)

	d := datetime.Mjd2Date(datetime.TIME_SYS_TAI, 46944, 0.25)
	assert.Equal(t, 10000*86400.0, p.DeltaSec(a, d))
}

func TestFormat(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, _ := e.Parse("2014 10 13 23 59 59.0", datetime.TIME_SYS_UTC)

	for ndp, want := range map[int]string{
		-1: "2014/10/14 00:00:00",
		0:  "2014/10/13 23:59:59",
		1:  "2014/10/13 23:59:59.0",
		3:  "2014/10/13 23:59:59.000",
		9:  "2014/10/13 23:59:59.000000000",
	} {
		s, st := e.Format(d, ndp)
		assert.Equal(t, datetime.STATUS_OK, st, "ndp %d", ndp)
		assert.Equal(t, want, s, "ndp %d", ndp)
	}

	leap, st := e.Parse("2016 12 31 23 59 60.25", datetime.TIME_SYS_UTC)
	require.Equal(t, datetime.STATUS_OK, st)
	s, _ := e.Format(leap, 2)
	assert.Equal(t, "2016/12/31 23:59:60.25", s, "leap second display")

	s, st = e.Format(datetime.Mjd2Date(datetime.TIME_SYS_UTC, 2e9, 0), 3)
	assert.Equal(t, datetime.STATUS_OUT_OF_RANGE, st)
	assert.Equal(t, "", s)
}

func TestWeekSow(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, _ := e.Parse("2014 10 13 00 00 00", datetime.TIME_SYS_GPST)
	week, sow, ok := e.WeekSow(d)
	assert.True(t, ok)
	assert.Equal(t, 1814, week)
	assert.Equal(t, 86400.0, sow)

	d, _ = e.Parse("2006 01 01 00 00 00", datetime.TIME_SYS_BDT)
	week, sow, ok = e.WeekSow(d)
	assert.True(t, ok)
	assert.Equal(t, 0, week)
	assert.Equal(t, 0.0, sow)

	d, _ = e.Parse("1999 08 28 12 00 00", datetime.TIME_SYS_GST)
	week, sow, ok = e.WeekSow(d)
	assert.True(t, ok)
	assert.Equal(t, 0, week)
	assert.Equal(t, 6.5*86400, sow)

	// snapped onto the next week
	d = datetime.Mjd2Date(datetime.TIME_SYS_QZSST, float64(datetime.MJD_GPST0+6), 1-1e-16)
	week, sow, ok = e.WeekSow(d)
	assert.True(t, ok)
	assert.Equal(t, 1, week)
	assert.Equal(t, 0.0, sow)

	// before the epoch
	d = datetime.Mjd2Date(datetime.TIME_SYS_GPST, float64(datetime.MJD_GPST0-1), 0.5)
	week, sow, _ = e.WeekSow(d)
	assert.Equal(t, -1, week)
	assert.Equal(t, 6.5*86400, sow)

	_, _, ok = e.WeekSow(datetime.Mjd2Date(datetime.TIME_SYS_UTC, 56943, 0))
	assert.False(t, ok, "no weeks for UTC")
}

func TestDayOfYearSecOfDay(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, _ := e.Parse("2016 12 31 06 00 00", datetime.TIME_SYS_TAI)
	assert.Equal(t, 366, d.DayOfYear())
	assert.Equal(t, 21600.0, d.SecOfDay())
	assert.Equal(t, 57753.25, d.Mjd())
}

func TestNow(t *testing.T) {
	e := newEngine(datetime.PRECISION_NANO)

	d, st := e.Now()
	assert.False(t, st.IsError())
	assert.Equal(t, datetime.TIME_SYS_UTC, d.Sys())
	assert.True(t, d.Big() > 60000, "after 2023")
}

func TestParseTimeSys(t *testing.T) {
	for name, want := range map[string]datetime.TimeSys{
		"utc":      datetime.TIME_SYS_UTC,
		"Gps":      datetime.TIME_SYS_GPST,
		"GPST":     datetime.TIME_SYS_GPST,
		"glonasst": datetime.TIME_SYS_GLONASST,
		"gal":      datetime.TIME_SYS_GST,
		"qzs":      datetime.TIME_SYS_QZSST,
		"Unknown":  datetime.TIME_SYS_UNKNOWN,
	} {
		sys, ok := datetime.ParseTimeSys(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, sys, name)
	}

	_, ok := datetime.ParseTimeSys("LOCAL")
	assert.False(t, ok)

	assert.Equal(t, "GAL", datetime.TIME_SYS_GST.String())
	assert.True(t, datetime.TIME_SYS_GLONASST.FollowsUtc())
	assert.False(t, datetime.TIME_SYS_GPST.FollowsUtc())
}

func TestParsePrecision(t *testing.T) {
	p, ok := datetime.ParsePrecision(" Nano")
	assert.True(t, ok)
	assert.Equal(t, datetime.PRECISION_NANO, p)

	_, ok = datetime.ParsePrecision("femto")
	assert.False(t, ok)
}
