package manifest

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout accepts a timestamp with a fractional-second field of any
// length; ParseDate guarantees one is present before parsing.
const dateLayout = "2006-01-02T15:04:05"

// ParseDate reduces a manifest timestamp such as
// 2024-04-24T14:35:02.174Z or 2024-04-24T14:35:02+02:00 to YYYY-MM-DD.
//
// The offset handling is deliberately positional: the offset delimiter is
// `+` when one appears anywhere in the string, otherwise `-`, and it is
// only honored when its last occurrence sits at index 19 or later (past
// the date-and-time portion). A negative offset whose delimiter lands
// before index 19 is therefore left in place and fails the parse; the
// catalogs this tool reads never produce one, and the cutoff is pinned by
// tests rather than widened.
func ParseDate(value string) (string, error) {
	s := strings.TrimSuffix(value, "Z")

	delim := byte('-')
	if strings.ContainsRune(s, '+') {
		delim = '+'
	}
	if idx := strings.LastIndexByte(s, delim); idx >= 19 {
		s = s[:idx]
	}

	if !strings.Contains(s, ".") {
		s += ".0"
	}

	ts, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", value, err)
	}
	return ts.Format(time.DateOnly), nil
}
