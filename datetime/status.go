package datetime

import (
	"fmt"
	"strings"

	"gomjd/fault"
)

/***** CONSTANT ********************************/

// Status is the outcome code of a conversion. Zero is success, positive
// values are bit-additive warnings (the result is usable), negative values
// are errors (the result is unreliable).
type Status int

const (
	STATUS_OK           Status = 0
	STATUS_DUBIOUS_YEAR Status = 1 // before leap-second history or past the table horizon
	STATUS_PAST_DAY_END Status = 2 // seconds beyond the length of the minute/day

	STATUS_BAD_YEAR   Status = -1
	STATUS_BAD_MONTH  Status = -2
	STATUS_BAD_DAY    Status = -3
	STATUS_BAD_HOUR   Status = -4
	STATUS_BAD_MINUTE Status = -5
	STATUS_BAD_SECOND Status = -6
	STATUS_BAD_STRING Status = -7

	// aliases used by Jd2Ymd and the leap second table
	STATUS_OUT_OF_RANGE Status = STATUS_BAD_YEAR
	STATUS_BAD_FRACTION Status = STATUS_BAD_HOUR
	STATUS_INTERNAL     Status = STATUS_BAD_MINUTE
)

var _STATUS_ERRORS map[Status]error = map[Status]error{
	STATUS_BAD_YEAR:   fault.ErrInvalidYear,
	STATUS_BAD_MONTH:  fault.ErrInvalidMonth,
	STATUS_BAD_DAY:    fault.ErrInvalidDay,
	STATUS_BAD_HOUR:   fault.ErrInvalidHour,
	STATUS_BAD_MINUTE: fault.ErrInvalidMinute,
	STATUS_BAD_SECOND: fault.ErrInvalidSecond,
	STATUS_BAD_STRING: fault.ErrParseDateFail,
}

// meaning of the shared codes when returned by a LeapSecondTable
var _LEAP_ERRORS map[Status]error = map[Status]error{
	STATUS_BAD_FRACTION: fault.ErrInvalidFraction,
	STATUS_INTERNAL:     fault.ErrLeapTableGap,
}

/***** FUNCTION ********************************/

func (s Status) IsOK() bool {
	return s == STATUS_OK
}

/***********************************************/

func (s Status) IsWarning() bool {
	return s > 0
}

/***********************************************/

func (s Status) IsError() bool {
	return s < 0
}

/***********************************************/

// Test a warning bit.
func (s Status) Has(flag Status) bool {
	return s > 0 && flag > 0 && s&flag == flag
}

/***********************************************/

// The error value of a hard error, nil for success and warnings.
func (s Status) Err() error {
	if s >= 0 {
		return nil
	}

	if err, ok := _STATUS_ERRORS[s]; ok {
		return err
	}

	return fault.ErrUnknownStatus
}

/***********************************************/

// Err for a status returned by a LeapSecondTable, where -4 is a bad
// fraction of day and -5 a date not covered by the table.
func (s Status) LeapErr() error {
	if err, ok := _LEAP_ERRORS[s]; ok {
		return err
	}

	return s.Err()
}

/***********************************************/

func (s Status) String() string {
	switch {
	case s == STATUS_OK:
		return "ok"
	case s < 0:
		if err, ok := _STATUS_ERRORS[s]; ok {
			return err.Error()
		}

		return fmt.Sprintf("error %d", int(s))
	}

	var warns []string

	if s.Has(STATUS_DUBIOUS_YEAR) {
		warns = append(warns, "dubious year")
	}

	if s.Has(STATUS_PAST_DAY_END) {
		warns = append(warns, "time past end of day")
	}

	if rest := s &^ (STATUS_DUBIOUS_YEAR | STATUS_PAST_DAY_END); rest != 0 {
		warns = append(warns, fmt.Sprintf("warning %d", int(rest)))
	}

	return strings.Join(warns, ", ")
}

/***********************************************/
