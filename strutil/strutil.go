package strutil

import (
	"strings"
)

/***** FUNCTION ********************************/

// Split str into tokens separated by delim. A space delimiter splits on any
// run of white space; any other delimiter splits exactly and the tokens are
// trimmed of surrounding spaces.
func Split(str string, delim byte) []string {
	if delim == ' ' {
		return strings.Fields(str)
	}

	subs := strings.Split(str, string(delim))

	for i := range subs {
		subs[i] = strings.TrimSpace(subs[i])
	}

	return subs
}

/***********************************************/

// Strip leading and trailing occurrences of ch.
func Trim(str string, ch byte) string {
	return strings.Trim(str, string(ch))
}

/***********************************************/
