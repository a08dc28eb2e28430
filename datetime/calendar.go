package datetime

import (
	"math"

	"github.com/carlosjhr64/jd"
)

/***** FUNCTION ********************************/

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/***********************************************/

// Number of days in month (1..12) of year, 0 for a bad month.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}

	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return _DAYS_IN_MONTH[month-1]
}

/***********************************************/

// Day of year (1..366) of a valid calendar date.
func DayOfYear(year, month, day int) (doy int) {
	doy = _DAYS_BEFORE_MONTH[month-1] + day

	if month > 2 && IsLeapYear(year) {
		doy++
	}

	return
}

/***********************************************/

/*
Gregorian calendar date to MJD day number (0h of that day).

The day number is computed for year >= YEAR_MIN and a valid month even when
the day is out of its month, status is then STATUS_BAD_DAY. A year too early
gives STATUS_BAD_YEAR and a bad month STATUS_BAD_MONTH, both with mjd = 0.
*/
func Ymd2Mjd(year, month, day int) (mjd float64, st Status) {
	if year < YEAR_MIN {
		return 0, STATUS_BAD_YEAR
	}

	if month < 1 || month > 12 {
		return 0, STATUS_BAD_MONTH
	}

	if day < 1 || day > DaysInMonth(year, month) {
		st = STATUS_BAD_DAY
	}

	mjd = float64(jd.YMD2J(year, month, day) - _JDN_MJD0)
	return
}

/***********************************************/

/*
Two-part Julian Date to Gregorian calendar date and fraction of day.

Either part may carry the fraction; the larger is used as the day part so
no precision is lost to a large sum. Status is STATUS_OUT_OF_RANGE when
dj1+dj2 is outside [JD_MIN, JD_MAX].
*/
func Jd2Ymd(dj1, dj2 float64) (year, month, day int, fd float64, st Status) {
	dj := dj1 + dj2

	if dj < JD_MIN || dj > JD_MAX {
		st = STATUS_OUT_OF_RANGE
		return
	}

	// JD days start at noon, calendar days at midnight
	dayNum, fd := midnightSplit(dj1, dj2)
	year, month, day = jd.J2YMD(int(dayNum) + 1)
	return
}

/***********************************************/

/*
Same as Jd2Ymd with the fraction of day rounded to ndp (0..9) decimal
places and returned as an integer count of 10^-ndp days. A carry from the
rounding moves the date to the next day. An ndp outside 0..9 is treated as
0 and flagged with STATUS_DUBIOUS_YEAR.
*/
func Jd2YmdRounded(ndp int, dj1, dj2 float64) (year, month, day, fraction int, st Status) {
	if ndp < 0 || ndp > 9 {
		ndp = 0
		st = STATUS_DUBIOUS_YEAR
	}

	if dj := dj1 + dj2; dj < JD_MIN || dj > JD_MAX {
		st = STATUS_OUT_OF_RANGE
		return
	}

	denom := math.Pow10(ndp)
	dayNum, f := midnightSplit(dj1, dj2)
	rf := math.Round(f*denom) / denom

	var fd float64
	var js Status
	year, month, day, fd, js = Jd2Ymd(dayNum+0.5, rf)

	if js != STATUS_OK {
		st = js
		return
	}

	fraction = int(math.Round(fd * denom))
	return
}

/***********************************************/

// Split a two-part JD into the integral JD of the preceding midnight and
// the fraction of day in [0, 1).
func midnightSplit(dj1, dj2 float64) (dayNum, frac float64) {
	d1, d2 := dj1, dj2

	if math.Abs(d1) < math.Abs(d2) {
		d1, d2 = d2, d1
	}

	return splitDayFrac(d1, d2-0.5)
}

/***********************************************/

// Normalise a+b into an integral day count and a fraction in [0, 1),
// taking the fractional parts of both operands into account.
func splitDayFrac(a, b float64) (dayNum, frac float64) {
	fa := math.Mod(a, 1.0)
	fb := math.Mod(b, 1.0)
	sum := fa + fb
	frac = math.Mod(sum, 1.0)

	if frac < 0 {
		frac += 1.0
	}

	dayNum = (a - fa) + (b - fb) + math.Round(sum-frac)

	if frac >= 1.0 {
		frac -= 1.0
		dayNum += 1.0
	}

	return
}

/***********************************************/
