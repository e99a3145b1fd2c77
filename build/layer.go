// Package build implements the radial build: an ordered list of layers
// going outwards from the plasma, each with optional thickness,
// material composition and description.
package build

import (
	"math"

	"github.com/svalinn/radialbuild/format"
)

// Constituent is a single material of a layer composition.
type Constituent struct {
	Material string
	// Fraction is a volume fraction.
	Fraction float64
	// FloatFraction marks an integral fraction written as a float (1.0).
	FloatFraction bool
}

// FractionString renders fraction the way the document wrote it.
func (c Constituent) FractionString() string {
	return format.Value(c.Fraction, c.FloatFraction)
}

// PercentString renders fraction as percent rounded to 3 decimals. Integer
// fractions give integer percents, float fractions keep the decimal point.
func (c Constituent) PercentString() string {
	if !c.FloatFraction && c.Fraction == math.Trunc(c.Fraction) {
		return format.Number(c.Fraction * 100)
	}
	return format.Float(format.Round(c.Fraction*100, 3))
}

// Composition is an ordered list of constituents.
type Composition []Constituent

// Materials returns constituent material names in order.
func (c Composition) Materials() []string {
	names := make([]string, 0, len(c))
	for _, constituent := range c {
		names = append(names, constituent.Material)
	}
	return names
}

// FractionStrings returns constituent fractions as the document wrote them.
func (c Composition) FractionStrings() []string {
	labels := make([]string, 0, len(c))
	for _, constituent := range c {
		labels = append(labels, constituent.FractionString())
	}
	return labels
}

// Fractions returns constituent volume fractions in order.
func (c Composition) Fractions() []float64 {
	fractions := make([]float64, 0, len(c))
	for _, constituent := range c {
		fractions = append(fractions, constituent.Fraction)
	}
	return fractions
}

// Layer is a single shell of the radial build. Nil fields were not given.
type Layer struct {
	Name        string
	Thickness   *float64
	Composition Composition
	Description *string
	// FloatThickness marks an integral thickness written as a float (5.0).
	FloatThickness bool
}

// ThicknessString renders thickness the way the document wrote it, empty
// when not given.
func (l Layer) ThicknessString() string {
	if l.Thickness == nil {
		return ""
	}
	return format.Value(*l.Thickness, l.FloatThickness)
}

// HasThickness ...
func (l Layer) HasThickness() bool {
	return l.Thickness != nil
}

// HasComposition ...
func (l Layer) HasComposition() bool {
	return l.Composition != nil
}

// HasDescription ...
func (l Layer) HasDescription() bool {
	return l.Description != nil
}

// ThicknessOr returns layer thickness, or fallback when it was not given.
func (l Layer) ThicknessOr(fallback float64) float64 {
	if l.Thickness == nil {
		return fallback
	}
	return *l.Thickness
}

// IsZeroThickness reports whether thickness was given and is exactly zero.
// Such layers are kept in the build, but skipped by the plot and the geometry.
func (l Layer) IsZeroThickness() bool {
	return l.Thickness != nil && *l.Thickness == 0
}

// Float returns pointer to v, handy for building layers in code.
func Float(v float64) *float64 {
	return &v
}

// String returns pointer to s, handy for building layers in code.
func String(s string) *string {
	return &s
}
