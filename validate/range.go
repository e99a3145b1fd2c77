// Package validate contains numeric checks used while validating builds and models.
package validate

import "math"

const floatingPointTolerance = 0.000001

// Fraction reports whether value is a usable volume fraction, 0 < value <= 1.
func Fraction(value float64) bool {
	return value > 0 && value <= 1+floatingPointTolerance
}

// Positive reports whether value is finite and greater than zero.
func Positive(value float64) bool {
	return Finite(value) && value > 0
}

// NonNegative reports whether value is finite and not below zero.
func NonNegative(value float64) bool {
	return Finite(value) && value >= 0
}

// Finite reports whether value is neither NaN nor infinite.
func Finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// SumsToOne reports whether fractions add up to one within tolerance.
func SumsToOne(fractions []float64) bool {
	sum := 0.0
	for _, f := range fractions {
		sum += f
	}
	return math.Abs(sum-1) <= floatingPointTolerance
}
