package leapsec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"gomjd/datetime"
	"gomjd/fault"
	"gomjd/strutil"
)

/***** CONSTANT ********************************/

const (
	// MJD of 1900-01-01, the NTP epoch
	MJD_NTP0 float64 = 15020
	// first year of whole-second TAI-UTC
	_FIRST_LEAP_YEAR int = 1972
)

/***** FUNCTION ********************************/

// Load a leap-seconds.list file, see Load.
func LoadFile(path string, log *logger.L) (*Table, error) {
	fp, err := os.Open(path)

	if err != nil {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundLeapFile
		}

		return nil, err
	}

	defer fp.Close()
	log.Infof("loading leap seconds from %s", path)
	return Load(fp, log)
}

/***********************************************/

/*
Load a table in the IERS/IETF leap-seconds.list format:
	#@	3960057600
	2272060800	10	# 1 Jan 1972
Data lines hold NTP seconds (since 1900-01-01) and TAI-UTC. The "#@" line
gives the expiry of the file; its year becomes the horizon of the table.
Other "#" lines are comments. The drifting pre-1972 part of the built-in
table is kept since the file starts in 1972. Malformed lines are skipped.
*/
func Load(r io.Reader, log *logger.L) (*Table, error) {
	var entries []Entry
	horizon := DEFAULT_HORIZON
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#@") {
			subs := strutil.Split(line[2:], ' ')

			if len(subs) == 0 {
				log.Warnf("line %d: empty expiry", lineNum)
				continue
			}

			year, _, _, err := ntp2Date(subs[0])

			if err != nil {
				log.Warnf("line %d: bad expiry: %s", lineNum, err)
				continue
			}

			horizon = year
			continue
		}

		if line[0] == '#' {
			continue
		}

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		subs := strutil.Split(line, ' ')

		if len(subs) < 2 {
			log.Warnf("line %d: expected 2 fields, got %d", lineNum, len(subs))
			continue
		}

		year, month, day, err := ntp2Date(subs[0])

		if err != nil {
			log.Warnf("line %d: bad time stamp: %s", lineNum, err)
			continue
		}

		if day != 1 || year < _FIRST_LEAP_YEAR {
			log.Warnf("line %d: %04d-%02d-%02d is not the start of a leap second era", lineNum, year, month, day)
			continue
		}

		delta, err := strconv.ParseFloat(subs[1], 64)

		if err != nil {
			log.Warnf("line %d: bad TAI-UTC: %s", lineNum, err)
			continue
		}

		entries = append(entries, Entry{Year: year, Month: month, Delta: delta})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fault.ErrEmptyLeapTable
	}

	for _, e := range _BUILTIN {
		if e.Year < _FIRST_LEAP_YEAR {
			entries = append(entries, e)
		}
	}

	table := NewTable(entries, horizon)

	if err := table.Validate(); err != nil {
		return nil, err
	}

	log.Infof("%d leap second entries, horizon %d", len(entries), horizon)
	return table, nil
}

/***********************************************/

// UTC calendar date of an NTP time stamp.
func ntp2Date(str string) (year, month, day int, err error) {
	ntp, err := strconv.ParseInt(str, 10, 64)

	if err != nil {
		return
	}

	if ntp < 0 {
		err = fmt.Errorf("negative time stamp %d", ntp)
		return
	}

	mjd := MJD_NTP0 + float64(ntp/int64(datetime.DAY2SECOND))
	year, month, day, _, st := datetime.Jd2Ymd(datetime.JD_MJD0, mjd)

	if st != datetime.STATUS_OK {
		err = st.Err()
	}

	return
}

/***********************************************/
