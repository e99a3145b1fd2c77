package material

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/format"
	"github.com/svalinn/radialbuild/validate"
)

var log = config.NamedLogger("material")

// MassComposition returns material mass density in g/cm3 and weight fraction
// of every nuclide followed by every element, in document order.
func MassComposition(m Material) (float64, []float64, error) {
	constituents := m.constituents()
	if len(constituents) == 0 {
		return 0, nil, newMaterialError(m.Name, "no nuclides or elements")
	}

	percents := make([]float64, 0, len(constituents))
	percentType := PercentType("")
	for _, c := range constituents {
		percent, t := c.Percent()
		if t == "" {
			return 0, nil, newMaterialError(m.Name, "%s %s has neither ao nor wo", c.kind(), c.Name)
		}
		if percentType != "" && t != percentType {
			return 0, nil, newMaterialError(m.Name, "constituents mix ao and wo percents")
		}
		percentType = t
		percents = append(percents, percent)
	}

	total := floats.Sum(percents)
	if total <= 0 {
		return 0, nil, newMaterialError(m.Name, "nuclide percents sum to %v", total)
	}
	fractions := make([]float64, len(percents))
	floats.ScaleTo(fractions, 1/total, percents)

	needMasses := percentType == AtomPercent ||
		m.Density.Units == UnitsAtomPerBarnCm ||
		m.Density.Units == UnitsAtomPerCC ||
		m.Density.Units == UnitsSum
	var masses []float64
	if needMasses {
		var err error
		masses, err = atomicMasses(constituents)
		if err != nil {
			return 0, nil, newMaterialError(m.Name, "%s", err.Error())
		}
	}

	weights := fractions
	var meanMass float64
	if percentType == AtomPercent && needMasses {
		meanMass = floats.Dot(fractions, masses)
		weights = make([]float64, len(fractions))
		floats.MulTo(weights, fractions, masses)
		floats.Scale(1/meanMass, weights)
	} else if needMasses {
		inverse := 0.0
		for i, w := range fractions {
			inverse += w / masses[i]
		}
		meanMass = 1 / inverse
	}

	var density float64
	switch m.Density.Units {
	case UnitsGramPerCC, UnitsGramPerCCAlt:
		density = m.Density.Value
	case UnitsKilogramPerM3:
		density = m.Density.Value * 1e-3
	case UnitsAtomPerBarnCm:
		density = m.Density.Value * barnCm * meanMass / avogadro
	case UnitsAtomPerCC:
		density = m.Density.Value * meanMass / avogadro
	case UnitsSum:
		if percentType == WeightPercent {
			density = total
		} else {
			density = total * barnCm * meanMass / avogadro
		}
	case "":
		return 0, nil, newMaterialError(m.Name, "density is not set")
	default:
		return 0, nil, newMaterialError(m.Name, "density units %q cannot be mixed", m.Density.Units)
	}

	if !validate.Positive(density) {
		return 0, nil, newMaterialError(m.Name, "density must be positive, got %v", density)
	}
	return density, weights, nil
}

// MixByVolume homogenizes materials using volume fractions. The mix has
// density sum(f_i * rho_i) in g/cm3 and its nuclides are given in weight
// percent. The mix is named by concatenating every material name with its
// fraction ("RAFM0.1PbLi0.9") and has no id.
func MixByVolume(materials []Material, fractions []float64) (Material, error) {
	name := MixName(materials, numberLabels(fractions))
	if len(materials) == 0 {
		return Material{}, newMaterialError(name, "nothing to mix")
	}
	if len(materials) != len(fractions) {
		return Material{}, newMaterialError(name, "%d materials but %d volume fractions",
			len(materials), len(fractions))
	}
	if !validate.SumsToOne(fractions) {
		log.Warnf("volume fractions of %s sum to %v, not 1", name, floats.Sum(fractions))
	}

	order := []constituent{}
	partialMass := map[constituent]float64{}
	sabs := []SAB{}
	seenSAB := map[string]bool{}
	depletable := false
	mixDensity := 0.0

	for i, mat := range materials {
		density, weights, err := MassComposition(mat)
		if err != nil {
			return Material{}, errors.Wrapf(err, "mix %s", name)
		}
		partialDensity := fractions[i] * density
		mixDensity += partialDensity

		for j, c := range mat.constituents() {
			key := constituent{Nuclide: Nuclide{Name: c.Name}, element: c.element}
			if _, seen := partialMass[key]; !seen {
				order = append(order, key)
			}
			partialMass[key] += partialDensity * weights[j]
		}

		for _, sab := range mat.SAB {
			if !seenSAB[sab.Name] {
				seenSAB[sab.Name] = true
				sabs = append(sabs, sab)
			}
		}
		depletable = depletable || mat.Depletable
	}

	if !validate.Positive(mixDensity) {
		return Material{}, newMaterialError(name, "mixed density must be positive, got %v", mixDensity)
	}

	nuclides := make([]Nuclide, 0, len(order))
	var elements []Nuclide
	for _, key := range order {
		n := NewNuclide(key.Name, partialMass[key]/mixDensity, WeightPercent)
		if key.element {
			elements = append(elements, n)
		} else {
			nuclides = append(nuclides, n)
		}
	}

	mix := Material{
		Name:       name,
		Depletable: depletable,
		Density:    Density{Units: UnitsGramPerCC, Value: mixDensity},
		Nuclides:   nuclides,
		Elements:   elements,
	}
	if len(sabs) > 0 {
		mix.SAB = sabs
	}
	return mix, nil
}

// MixName returns name given to a mix of materials, every material name
// followed by its fraction label.
func MixName(materials []Material, fractionLabels []string) string {
	name := ""
	for i, mat := range materials {
		name += mat.Name
		if i < len(fractionLabels) {
			name += fractionLabels[i]
		}
	}
	return name
}

func numberLabels(values []float64) []string {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, format.Number(v))
	}
	return labels
}
