package style

import (
	"math"
	"strconv"
)

// largeDisplay is the magnitude above which numbers switch to 4 significant
// digits in exponent form.
const largeDisplay = 1e6

// formatFixed renders v with prec decimals. ok is false for NaN and ±Inf,
// which callers must replace with a neutral phrase.
func formatFixed(v float64, prec int) (s string, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	if math.Abs(v) >= largeDisplay {
		return strconv.FormatFloat(v, 'g', 4, 64), true
	}
	s = strconv.FormatFloat(v, 'f', prec, 64)
	if s == "-"+strconv.FormatFloat(0, 'f', prec, 64) {
		s = s[1:]
	}
	return s, true
}

// formatPercent renders a [0,1] share as a percentage with one decimal.
func formatPercent(share float64) (string, bool) {
	s, ok := formatFixed(share*100, 1)
	if !ok {
		return "", false
	}
	return s + "%", true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
