package datetime

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"gomjd/strutil"
)

/*
Date representation.
A date is a Modified Julian Date kept in two parts, an integer day number
and the fraction of that day in [0, 1), together with the time scale it is
expressed in. One fraction unit is the length of the day, so on a UTC leap
second day a unit is 86401 s. Dates are values; copying is safe.
*/
type Date struct {
	big   float64 // integer day number
	small float64 // fraction of day
	sys   TimeSys // time system
}

/***** FUNCTION ********************************/

// The default constructor, J2000.0 with no time scale.
func NewDate() Date {
	return Date{math.Floor(MJD_J2000), MJD_J2000 - math.Floor(MJD_J2000), TIME_SYS_UNKNOWN}
}

/***********************************************/

// Date from a two-part MJD. The parts may be split in any way.
func Mjd2Date(sys TimeSys, d1, d2 float64) Date {
	d := Date{d1, d2, sys}
	d.Rearrange()
	return d
}

/***********************************************/

// Date from a two-part Julian Date.
func Jd2Date(sys TimeSys, d1, d2 float64) Date {
	if math.Abs(d1) >= math.Abs(d2) {
		d1 -= JD_MJD0
	} else {
		d2 -= JD_MJD0
	}

	return Mjd2Date(sys, d1, d2)
}

/***********************************************/

// Date from calendar and clock fields. The date is computed even when the
// status reports an error, see Dtf2d.
func (e *Engine) NewDate(sys TimeSys, year, month, day, hour, minute int, second float64) (Date, Status) {
	big, small, st := e.Dtf2d(sys, year, month, day, hour, minute, second)
	return Mjd2Date(sys, big, small), st
}

/***********************************************/

/*
Date from a string of six tokens separated by white space:
	YYYY MM DD HH MM SS.sss
A two digit year is taken as 20YY below 80 and 19YY otherwise. A string
that cannot be parsed gives STATUS_BAD_STRING and the default date with no
time scale.
*/
func (e *Engine) Parse(str string, sys TimeSys) (Date, Status) {
	subs := strutil.Split(str, ' ')

	if len(subs) != 6 {
		return NewDate(), STATUS_BAD_STRING
	}

	var fields [5]int

	for i := 0; i < 5; i++ {
		value, err := strconv.Atoi(subs[i])

		if err != nil {
			return NewDate(), STATUS_BAD_STRING
		}

		fields[i] = value
	}

	second, err := strconv.ParseFloat(subs[5], 64)

	if err != nil || math.IsNaN(second) || math.IsInf(second, 0) {
		return NewDate(), STATUS_BAD_STRING
	}

	if isTwoDigits(subs[0]) {
		fields[0] = expandYear(fields[0])
	}

	return e.NewDate(sys, fields[0], fields[1], fields[2], fields[3], fields[4], second)
}

/***********************************************/

// The current time from the system clock, in UTC.
func (e *Engine) Now() (Date, Status) {
	tNow := time.Now().UTC()
	second := float64(tNow.Second()) + float64(tNow.Nanosecond())*1.0e-9
	return e.NewDate(TIME_SYS_UTC, tNow.Year(), int(tNow.Month()), tNow.Day(), tNow.Hour(), tNow.Minute(), second)
}

/***********************************************/

// Date as "YYYY/MM/DD HH:MM:SS.fff" with ndp digits of fraction of second.
// No fraction is written for ndp <= 0.
func (e *Engine) Format(d Date, ndp int) (string, Status) {
	year, month, day, hms, st := e.D2dtf(d.sys, ndp, d.big, d.small)

	if st < 0 {
		return "", st
	}

	return fmt.Sprintf("%04d/%02d/%02d %s", year, month, day, hms.Format(ndp)), st
}

/***********************************************/

func isTwoDigits(str string) bool {
	return len(str) == 2 && str[0] >= '0' && str[0] <= '9' && str[1] >= '0' && str[1] <= '9'
}

/***********************************************/

func expandYear(year int) int {
	if year < 80 {
		return 2000 + year
	}

	return 1900 + year
}

/***********************************************/

// Restore the representation to an integer day number and a fraction in
// [0, 1). Applying it again changes nothing.
func (d *Date) Rearrange() {
	d.big, d.small = splitDayFrac(d.big, d.small)
}

/***********************************************/

// Add sec seconds (may be negative) in units of 86400 s per day.
func (d *Date) AddSec(sec float64) {
	d.small += sec * SECOND2DAY
	n := math.Floor(d.small)
	d.small -= n
	d.big += n

	if d.small >= 1.0 {
		d.small -= 1.0
		d.big += 1.0
	}
}

/***********************************************/

func (d Date) Big() float64 {
	return d.big
}

/***********************************************/

func (d Date) Small() float64 {
	return d.small
}

/***********************************************/

func (d Date) Sys() TimeSys {
	return d.sys
}

/***********************************************/

// MJD as one number, with the precision loss that implies.
func (d Date) Mjd() float64 {
	return d.big + d.small
}

/***********************************************/

func (d Date) Jd() float64 {
	return d.big + JD_MJD0 + d.small
}

/***********************************************/

// Seconds since 0h, assuming an 86400 s day.
func (d Date) SecOfDay() float64 {
	return d.small * DAYSEC
}

/***********************************************/

func (d Date) DayOfYear() (doy int) {
	year, month, day, _, st := Jd2Ymd(d.big+JD_MJD0, d.small)

	if st != STATUS_OK {
		return 0
	}

	return DayOfYear(year, month, day)
}

/***********************************************/

func (d Date) String() string {
	return fmt.Sprintf("%s %.0f %.15f", d.sys, d.big, d.small)
}

/***********************************************/
