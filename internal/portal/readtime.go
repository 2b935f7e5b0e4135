package portal

import (
	"math"
	"strconv"
	"strings"
)

const (
	ReadTimeUnit    = "dk"
	DefaultReadTime = "5 " + ReadTimeUnit
)

// FormatReadTime canonicalizes a read time to "<n> dk". Numbers are minutes,
// strings already carrying the unit or free-form text pass through trimmed.
// Applying it twice gives the same result.
func FormatReadTime(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t) + " " + ReadTimeUnit
	case int64:
		return strconv.FormatInt(t, 10) + " " + ReadTimeUnit
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return DefaultReadTime
		}
		return strconv.FormatFloat(t, 'f', -1, 64) + " " + ReadTimeUnit
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return DefaultReadTime
		}
		if strings.HasSuffix(s, ReadTimeUnit) {
			return s
		}
		if isDecimal(s) {
			return s + " " + ReadTimeUnit
		}
		return s
	default:
		return DefaultReadTime
	}
}

// isDecimal reports whether s is digits with at most one dot, e.g. "5" or "2.5".
func isDecimal(s string) bool {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}
