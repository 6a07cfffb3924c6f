package format

import (
	"math"
	"strconv"
	"strings"
)

// Number renders a value with the single display rule used everywhere:
// derivation steps and final results must agree textually for the same
// value. Large (|v| ≥ 1e6) and small non-zero (|v| < 0.001) magnitudes
// use scientific notation with 4 fractional digits; everything else is
// fixed to 6 decimals with trailing zeros stripped.
func Number(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e6 || (abs < 0.001 && v != 0) {
		return strconv.FormatFloat(v, 'e', 4, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// Percent renders a [0,1] ratio as a percentage with one decimal.
func Percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}
