// Package material reads and writes transport engine material libraries
// and mixes materials into homogenized layer compositions.
package material

import (
	"encoding/xml"
	"fmt"
)

// PercentType tells how a nuclide percent is expressed.
type PercentType string

const (
	// AtomPercent ...
	AtomPercent PercentType = "ao"
	// WeightPercent ...
	WeightPercent PercentType = "wo"
)

// Density units understood by the transport engine.
const (
	UnitsGramPerCC     = "g/cm3"
	UnitsGramPerCCAlt  = "g/cc"
	UnitsKilogramPerM3 = "kg/m3"
	UnitsAtomPerBarnCm = "atom/b-cm"
	UnitsAtomPerCC     = "atom/cm3"
	UnitsSum           = "sum"
	UnitsMacroscopic   = "macro"
)

// Density of a material.
type Density struct {
	Units string  `xml:"units,attr" yaml:"units"`
	Value float64 `xml:"value,attr,omitempty" yaml:"value,omitempty"`
}

// Nuclide is a single nuclide of a material with exactly one of Ao and Wo set.
// Natural elements use the same form, the name is the element symbol.
type Nuclide struct {
	Name string   `xml:"name,attr" yaml:"name"`
	Ao   *float64 `xml:"ao,attr,omitempty" yaml:"ao,omitempty"`
	Wo   *float64 `xml:"wo,attr,omitempty" yaml:"wo,omitempty"`
}

// Percent returns nuclide percent and its type.
func (n Nuclide) Percent() (float64, PercentType) {
	if n.Wo != nil {
		return *n.Wo, WeightPercent
	}
	if n.Ao != nil {
		return *n.Ao, AtomPercent
	}
	return 0, ""
}

// NewNuclide ...
func NewNuclide(name string, percent float64, percentType PercentType) Nuclide {
	nuclide := Nuclide{Name: name}
	if percentType == WeightPercent {
		nuclide.Wo = &percent
	} else {
		nuclide.Ao = &percent
	}
	return nuclide
}

// SAB is a thermal scattering table assigned to a material.
type SAB struct {
	Name     string   `xml:"name,attr" yaml:"name"`
	Fraction *float64 `xml:"fraction,attr,omitempty" yaml:"fraction,omitempty"`
}

// Material of the transport engine library.
type Material struct {
	XMLName     xml.Name  `xml:"material" yaml:"-"`
	ID          int       `xml:"id,attr" yaml:"id"`
	Name        string    `xml:"name,attr,omitempty" yaml:"name"`
	Depletable  bool      `xml:"depletable,attr,omitempty" yaml:"depletable,omitempty"`
	Temperature *float64  `xml:"temperature,attr,omitempty" yaml:"temperature,omitempty"`
	Volume      *float64  `xml:"volume,attr,omitempty" yaml:"volume,omitempty"`
	Density     Density   `xml:"density" yaml:"density"`
	Nuclides    []Nuclide `xml:"nuclide" yaml:"nuclides"`
	Elements    []Nuclide `xml:"element,omitempty" yaml:"elements,omitempty"`
	SAB         []SAB     `xml:"sab,omitempty" yaml:"sab,omitempty"`
}

// String ...
func (m Material) String() string {
	return fmt.Sprintf("Material{ID: %d, Name: %s}", m.ID, m.Name)
}

// NuclideNames returns nuclide names in order.
func (m Material) NuclideNames() []string {
	names := make([]string, 0, len(m.Nuclides))
	for _, n := range m.Nuclides {
		names = append(names, n.Name)
	}
	return names
}

// constituent is a nuclide or a natural element of a material.
type constituent struct {
	Nuclide
	element bool
}

// constituents returns nuclides followed by elements.
func (m Material) constituents() []constituent {
	result := make([]constituent, 0, len(m.Nuclides)+len(m.Elements))
	for _, n := range m.Nuclides {
		result = append(result, constituent{Nuclide: n})
	}
	for _, e := range m.Elements {
		result = append(result, constituent{Nuclide: e, element: true})
	}
	return result
}

func (c constituent) kind() string {
	if c.element {
		return "element"
	}
	return "nuclide"
}

func newMaterialError(name string, message string, formatedValues ...interface{}) error {
	header := fmt.Sprintf("[material] Material{Name: %s}: ", name)
	return fmt.Errorf(header+message, formatedValues...)
}
