package datetime

import (
	"math"
	"strings"
)

/***** STRUCT **********************************/

// Tolerances used to compare dates. Seconds and Days describe the same
// resolution in the two units.
type Precision struct {
	Seconds float64
	Days    float64
}

/***** CONSTANT ********************************/

var (
	PRECISION_MILLI Precision = Precision{1e-3, 1e-8}
	PRECISION_MICRO Precision = Precision{1e-6, 1e-11}
	PRECISION_NANO  Precision = Precision{1e-9, 1e-14}
	PRECISION_PICO  Precision = Precision{1e-12, 1e-17}
)

var Name2Precision map[string]Precision = map[string]Precision{
	"milli": PRECISION_MILLI,
	"micro": PRECISION_MICRO,
	"nano":  PRECISION_NANO,
	"pico":  PRECISION_PICO,
}

/***** FUNCTION ********************************/

func ParsePrecision(name string) (p Precision, ok bool) {
	p, ok = Name2Precision[strings.ToLower(strings.TrimSpace(name))]
	return
}

/***********************************************/

// Difference a-b in seconds. When both dates share the integer day only the
// fractions are differenced, otherwise the truncated day difference is
// added. Leap seconds between the two dates are not accounted for.
func (p Precision) DeltaSec(a, b Date) float64 {
	if math.Abs(a.big-b.big) <= p.Days {
		return (a.small - b.small) * DAYSEC
	}

	return (a.small-b.small)*DAYSEC + math.Trunc(a.big-b.big)*DAYSEC
}

/***********************************************/

func (p Precision) Gt(a, b Date) bool {
	return (a.big-b.big)+(a.small-b.small) > p.Days
}

/***********************************************/

func (p Precision) Lt(a, b Date) bool {
	return (a.big-b.big)+(a.small-b.small) < -p.Days
}

/***********************************************/

func (p Precision) Eq(a, b Date) bool {
	return !p.Gt(a, b) && !p.Lt(a, b)
}

/***********************************************/

func (p Precision) Ne(a, b Date) bool {
	return !p.Eq(a, b)
}

/***********************************************/

func (p Precision) Ge(a, b Date) bool {
	return !p.Lt(a, b)
}

/***********************************************/

func (p Precision) Le(a, b Date) bool {
	return !p.Gt(a, b)
}

/***********************************************/

// GNSS week and seconds of week of d, counted from the week epoch of its
// time scale. ok is false for scales without a week count. A seconds of
// week within the tolerance of a week boundary is snapped onto it.
func (p Precision) WeekSow(d Date) (week int, sow float64, ok bool) {
	var epoch int

	switch d.sys {
	case TIME_SYS_GPST, TIME_SYS_QZSST:
		epoch = MJD_GPST0
	case TIME_SYS_GST:
		epoch = MJD_GST0
	case TIME_SYS_BDT:
		epoch = MJD_BDT0
	default:
		return
	}

	ok = true
	days := int(d.big) - epoch
	week = days / WEEK2DAY

	if days%WEEK2DAY < 0 {
		week--
	}

	sow = (float64(days-week*WEEK2DAY) + d.small) * DAYSEC

	if math.Abs(sow) < p.Seconds {
		sow = 0.0
	} else if float64(WEEK2SECOND)-sow < p.Seconds {
		week++
		sow = 0.0
	}

	return
}

/***********************************************/
