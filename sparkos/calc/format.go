package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the display shows it: the shortest
// decimal that round-trips, switching to exponent form below 1e-6 and at
// 1e21 and above.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// parseFloatPrefix parses the longest numeric prefix of s.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 64 {
		s = s[:64]
	}
	for n := len(s); n > 0; n-- {
		v, err := strconv.ParseFloat(s[:n], 64)
		if err == nil {
			return v, true
		}
	}
	return 0, false
}
