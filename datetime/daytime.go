package datetime

import (
	"fmt"
	"math"
)

/***** CONSTANT ********************************/

// Finest decimal places of seconds that are exact: a day counted in
// 10^-MAX_NDP s stays below 2^53.
const MAX_NDP int = 11

/***** STRUCT **********************************/

// Clock reading of a fraction of day. Fraction counts units of 10^-ndp
// seconds for the ndp the fields were produced with.
type ClockFields struct {
	Sign     byte // '+' or '-'
	Hour     int
	Minute   int
	Second   int
	Fraction int
}

/***** FUNCTION ********************************/

/*
Decompose a signed fraction of day into hours, minutes, seconds and a
fraction of a second.

ndp > 0 gives ndp decimal places of seconds, 0 whole seconds and ndp < 0
coarser resolution:
	-1	10 s
	-2	1 min
	-3	10 min
	-4	1 h
	-5	10 h
The value is rounded to the resolution before the fields are peeled off, so
a result of 24 hours is possible when days is close to 1. Digits beyond
MAX_NDP are rounding noise. No leap second handling is done here.
*/
func D2tf(ndp int, days float64) (hms ClockFields) {
	hms.Sign = '+'

	if days < 0 {
		hms.Sign = '-'
	}

	a := DAYSEC * math.Abs(days)

	// coarser than one second: round to the resolution first
	if ndp < 0 {
		nrs := 1

		for n := 1; n <= -ndp; n++ {
			if n == 2 || n == 4 {
				nrs *= 6
			} else {
				nrs *= 10
			}
		}

		rs := float64(nrs)
		a = rs * math.Round(a/rs)
	}

	rs := 1.0

	for n := 1; n <= ndp; n++ {
		rs *= 10
	}

	rm := rs * 60.0
	rh := rm * 60.0

	a = math.Round(rs * a)
	ah := math.Trunc(a / rh)
	a -= ah * rh
	am := math.Trunc(a / rm)
	a -= am * rm
	as := math.Trunc(a / rs)
	af := a - as*rs

	hms.Hour = int(ah)
	hms.Minute = int(am)
	hms.Second = int(as)
	hms.Fraction = int(af)
	return
}

/***********************************************/

/*
Compose hours, minutes and seconds into a signed fraction of day.

The value is always computed from the absolute field values. The first bad
field in the order hour (0..23), minute (0..59), second [0, 60) sets the
status: STATUS_BAD_HOUR, STATUS_BAD_MINUTE or STATUS_BAD_SECOND.
*/
func Tf2d(sign byte, hour, minute int, second float64) (days float64, st Status) {
	s := 1.0

	if sign == '-' {
		s = -1.0
	}

	days = s * (60.0*(60.0*math.Abs(float64(hour))+math.Abs(float64(minute))) + math.Abs(second)) / DAYSEC

	switch {
	case hour < 0 || hour > 23:
		st = STATUS_BAD_HOUR
	case minute < 0 || minute > 59:
		st = STATUS_BAD_MINUTE
	case second < 0 || second >= 60.0:
		st = STATUS_BAD_SECOND
	}

	return
}

/***********************************************/

// Seconds part of the clock reading for ndp decimal places.
func (hms ClockFields) Seconds(ndp int) float64 {
	sec := float64(hms.Second)

	if ndp > 0 {
		sec += float64(hms.Fraction) / math.Pow10(ndp)
	}

	return sec
}

/***********************************************/

// Clock reading as "HH:MM:SS[.fff]" with ndp digits of fraction.
func (hms ClockFields) Format(ndp int) string {
	str := fmt.Sprintf("%02d:%02d:%02d", hms.Hour, hms.Minute, hms.Second)

	if ndp > 0 {
		str += fmt.Sprintf(".%0*d", ndp, hms.Fraction)
	}

	if hms.Sign == '-' {
		str = "-" + str
	}

	return str
}

/***********************************************/
