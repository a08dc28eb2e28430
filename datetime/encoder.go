package datetime

import (
	"math"
)

/***** CONSTANT ********************************/

// inverse of the resolution of a leap length, 0.1 us
const _DLEAP_GRID = 1e7

/***** STRUCT **********************************/

// Source of TAI-UTC. fd is the fraction of the given day and matters only
// before 1972, when UTC drifted against TAI. Negative status values are
// errors, positive ones warnings.
type LeapSecondTable interface {
	TaiMinusUtc(year, month, day int, fd float64) (float64, Status)
}

/*
Engine converts between calendar fields and two-part MJD, taking UTC leap
seconds from its table. It holds no mutable state and may be shared between
goroutines.
*/
type Engine struct {
	Precision
	leap LeapSecondTable
}

/***** FUNCTION ********************************/

func NewEngine(p Precision, leap LeapSecondTable) *Engine {
	if leap == nil {
		panic("leap second table cannot be nil")
	}

	return &Engine{p, leap}
}

/***********************************************/

// Length excess (s) of the UTC day starting at MJD dj, i.e. +1 on a day
// ending with a positive leap second. Drift of the pre-1972 rubber
// seconds is removed by the noon probe. The result is rounded to the
// 0.1 us grid of the table values so drift noise does not count as a jump.
func (e *Engine) leapDelta(year, month, day int, dj float64) (dleap float64, st Status) {
	dat0, js := e.leap.TaiMinusUtc(year, month, day, 0.0)

	if js < 0 {
		return 0, js
	}

	st |= js
	dat12, js := e.leap.TaiMinusUtc(year, month, day, 0.5)

	if js < 0 {
		return 0, js
	}

	st |= js
	year2, month2, day2, _, js := Jd2Ymd(dj+JD_MJD0, 1.5)

	if js < 0 {
		return 0, js
	}

	dat24, js := e.leap.TaiMinusUtc(year2, month2, day2, 0.0)

	if js < 0 {
		return 0, js
	}

	st |= js
	dleap = math.Round((dat24-(2.0*dat12-dat0))*_DLEAP_GRID) / _DLEAP_GRID
	return
}

/***********************************************/

/*
Encode calendar and clock fields into a two-part MJD (day number, fraction).

For scales following UTC the day length is 86400 s plus the leap second of
that day, and the last minute of the day is lengthened accordingly so that
23:59:60.x is accepted on a leap second day. Errors (negative status) stop
the computation at once: bad calendar date, bad hour, bad minute, negative
or non-finite seconds or a failure of the leap second table. Warnings are combined:
STATUS_DUBIOUS_YEAR from the table and STATUS_PAST_DAY_END when the seconds
reach beyond the end of the minute.
*/
func (e *Engine) Dtf2d(sys TimeSys, year, month, day, hour, minute int, second float64) (big, small float64, st Status) {
	dj, js := Ymd2Mjd(year, month, day)

	if js != STATUS_OK {
		return 0, 0, js
	}

	dayLen := DAYSEC
	secLim := 60.0

	if sys.FollowsUtc() {
		dleap, js := e.leapDelta(year, month, day, dj)

		if js < 0 {
			return dj, 0, js
		}

		st |= js
		dayLen += dleap

		if hour == 23 && minute == 59 {
			secLim += dleap
		}
	}

	if hour < 0 || hour > 23 {
		return dj, 0, STATUS_BAD_HOUR
	}

	if minute < 0 || minute > 59 {
		return dj, 0, STATUS_BAD_MINUTE
	}

	if second < 0 || math.IsNaN(second) || math.IsInf(second, 0) {
		return dj, 0, STATUS_BAD_SECOND
	}

	if second >= secLim {
		st |= STATUS_PAST_DAY_END
	}

	big = dj
	small = (60.0*float64(60*hour+minute) + second) / dayLen
	return
}

/***********************************************/

/*
Decode a two-part MJD into calendar fields and a clock reading rounded to
ndp (see D2tf).

On a day whose UTC length differs from 86400 s, including the fractional
jumps before 1972, the fraction is stretched to the true day length. On a
day ending with a positive leap a reading that rounds up to 24h is shown as
23:59:60 rather than carried into the next day. On other days such a
reading becomes 00:00:00 of the next day.
*/
func (e *Engine) D2dtf(sys TimeSys, ndp int, big, small float64) (year, month, day int, hms ClockFields, st Status) {
	dj, f := splitDayFrac(big, small)
	year, month, day, fd, js := Jd2Ymd(dj+JD_MJD0, f)

	if js != STATUS_OK {
		st = js
		return
	}

	leap := false

	if sys.FollowsUtc() {
		dleap, js := e.leapDelta(year, month, day, dj)

		if js < 0 {
			st = js
			return
		}

		st |= js

		if dleap != 0 {
			leap = dleap > 0
			fd += fd * dleap / DAYSEC
		}
	}

	hms = D2tf(ndp, fd)

	if hms.Hour <= 23 {
		return
	}

	year2, month2, day2, _, js := Jd2Ymd(dj+JD_MJD0, 1.5)

	if js != STATUS_OK {
		st = js
		return
	}

	nextDay := !leap || hms.Second > 0

	if !nextDay {
		hms.Hour, hms.Minute, hms.Second = 23, 59, 60

		// at 10 s resolution or coarser the leap second itself rounds up
		if ndp < 0 {
			nextDay = true
		}
	}

	if nextDay {
		year, month, day = year2, month2, day2
		hms.Hour, hms.Minute, hms.Second = 0, 0, 0
	}

	return
}

/***********************************************/
