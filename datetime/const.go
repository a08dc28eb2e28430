package datetime

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

/***** CONSTANT ********************************/

const (
	DAY2HOUR      int     = 24
	HOUR2MINUTE   int     = 60
	MINUTE2SECOND int     = 60
	HOUR2SECOND   int     = HOUR2MINUTE * MINUTE2SECOND
	DAY2SECOND    int     = DAY2HOUR * HOUR2SECOND
	SECOND2DAY    float64 = 1.0 / float64(DAY2SECOND)
	WEEK2DAY      int     = 7
	WEEK2SECOND   int     = WEEK2DAY * DAY2SECOND
	DAYSEC        float64 = 86400.0
)

/***********************************************/

const (
	JD_MJD0   float64 = 2400000.5 // JD of MJD zero
	MJD_J2000 float64 = 51544.5   // MJD of J2000.0
	JD_J2000  float64 = JD_MJD0 + MJD_J2000

	// earliest year accepted by Ymd2Mjd
	YEAR_MIN int = -4799
	// two-part JD range accepted by Jd2Ymd
	JD_MIN float64 = -68569.5
	JD_MAX float64 = 1e9

	// offset from a Julian Day Number to an MJD day number
	_JDN_MJD0 int = 2400001
)

/***********************************************/

// GNSS week epochs (MJD), week counts start at 0h of these days.
const (
	MJD_GPST0 int = 44244 // 1980-01-06
	MJD_GST0  int = 51412 // 1999-08-22
	MJD_BDT0  int = 53736 // 2006-01-01
)

/***********************************************/

type TimeSys uint8

const (
	TIME_SYS_UNKNOWN  TimeSys = iota // no time scale attached
	TIME_SYS_UTC                     // coordinated universal time
	TIME_SYS_UT1                     // universal time
	TIME_SYS_TAI                     // international atomic time
	TIME_SYS_TT                      // terrestrial time
	TIME_SYS_GPST                    // GPS time
	TIME_SYS_GLONASST                // GLONASS time
	TIME_SYS_GST                     // Galileo time
	TIME_SYS_BDT                     // BDS time
	TIME_SYS_QZSST                   // QZSS time
)

var TimeSys2Name map[TimeSys]string = map[TimeSys]string{
	TIME_SYS_UNKNOWN:  "Unknown",
	TIME_SYS_UTC:      "UTC",
	TIME_SYS_UT1:      "UT1",
	TIME_SYS_TAI:      "TAI",
	TIME_SYS_TT:       "TT",
	TIME_SYS_GPST:     "GPS",
	TIME_SYS_GLONASST: "GLO",
	TIME_SYS_GST:      "GAL",
	TIME_SYS_BDT:      "BDT",
	TIME_SYS_QZSST:    "QZS",
}

// keys are upper case, see ParseTimeSys
var Name2TimeSys map[string]TimeSys = map[string]TimeSys{
	"UNKNOWN":  TIME_SYS_UNKNOWN,
	"NONE":     TIME_SYS_UNKNOWN,
	"UTC":      TIME_SYS_UTC,
	"UT1":      TIME_SYS_UT1,
	"TAI":      TIME_SYS_TAI,
	"TT":       TIME_SYS_TT,
	"GPS":      TIME_SYS_GPST,
	"GPST":     TIME_SYS_GPST,
	"GLO":      TIME_SYS_GLONASST,
	"GLONASST": TIME_SYS_GLONASST,
	"GAL":      TIME_SYS_GST,
	"GST":      TIME_SYS_GST,
	"BDT":      TIME_SYS_BDT,
	"QZS":      TIME_SYS_QZSST,
	"QZSST":    TIME_SYS_QZSST,
}

/***********************************************/

var (
	_DAYS_IN_MONTH     [12]int = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	_DAYS_BEFORE_MONTH [12]int = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

/***** FUNCTION ********************************/

func (sys TimeSys) String() string {
	if name, ok := TimeSys2Name[sys]; ok {
		return name
	}

	return TimeSys2Name[TIME_SYS_UNKNOWN]
}

/***********************************************/

// Whether the scale carries UTC leap seconds. GLONASS time is steered to UTC
// and is handled the same way.
func (sys TimeSys) FollowsUtc() bool {
	return sys == TIME_SYS_UTC || sys == TIME_SYS_GLONASST
}

/***********************************************/

// Case-insensitive lookup of a time scale name, ok is false for names
// that are not known.
func ParseTimeSys(strSys string) (sys TimeSys, ok bool) {
	sys, ok = Name2TimeSys[cases.Upper(language.Und).String(strSys)]
	return
}

/***********************************************/
