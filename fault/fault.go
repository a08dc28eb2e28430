// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrDateOutOfRange       = InvalidError("date is out of range")
	ErrEmptyLeapTable       = ProcessError("leap second table is empty")
	ErrInvalidArguments     = InvalidError("wrong number of arguments")
	ErrInvalidDay           = InvalidError("day is invalid")
	ErrInvalidDecimalPlaces = InvalidError("decimal places must be in 0..11")
	ErrInvalidFraction      = InvalidError("fraction of day is invalid")
	ErrInvalidGoroutineNum  = InvalidError("goroutine num must be positive")
	ErrInvalidHour          = InvalidError("hour is invalid")
	ErrInvalidInterval      = InvalidError("interval must be positive")
	ErrInvalidMinute        = InvalidError("minute is invalid")
	ErrInvalidMonth         = InvalidError("month is invalid")
	ErrInvalidNumber        = InvalidError("number is invalid")
	ErrInvalidPrecision     = InvalidError("precision is invalid")
	ErrInvalidSecond        = InvalidError("second is invalid")
	ErrInvalidTimeSys       = InvalidError("time system is invalid")
	ErrInvalidYear          = InvalidError("year is invalid")
	ErrLeapTableGap         = ProcessError("leap second table does not cover the date")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundLeapFile     = NotFoundError("leap second file is not found")
	ErrParseDateFail        = ProcessError("parse date string failed")
	ErrParseJsonFail        = ProcessError("parse json failed")
	ErrTooManyEpochs        = ProcessError("too many epochs")
	ErrUnknownStatus        = ProcessError("unknown status")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
