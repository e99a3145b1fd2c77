// Package format contains number formatting shared by text and XML writers.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Float formats n with the shortest representation that round-trips,
// always keeping a decimal point for integral values (34 -> "34.0").
// Very large and very small magnitudes use exponent notation.
func Float(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}

	abs := math.Abs(n)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(n, 'e', -1, 64)
	}

	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Number formats n without forcing a decimal point (4 -> "4", 3.8 -> "3.8").
func Number(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Value formats n with Float when it was written as a float, with Number
// otherwise ("1.0" and "1" stay distinct).
func Value(n float64, isFloat bool) string {
	if isFloat {
		return Float(n)
	}
	return Number(n)
}

// Round rounds n to the given number of decimals, ties to even.
func Round(n float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.RoundToEven(n*pow) / pow
}

// Join formats every value with Float and joins them with single spaces.
func Join(values []float64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, Float(v))
	}
	return strings.Join(parts, " ")
}
