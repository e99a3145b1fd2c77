package material

import (
	"fmt"
	"regexp"
	"strconv"
)

// avogadro number, 1/mol.
const avogadro = 6.02214076e23

// barnCm converts atom/b-cm to atom/cm3.
const barnCm = 1e24

var nuclideNameRegexp = regexp.MustCompile(`^([A-Z][a-z]?)(\d*)(_m\d+)?$`)

// AtomicMass returns atomic mass of a nuclide in g/mol. Nuclides are
// approximated by their mass number; natural elements ("Fe", "C0") use the
// standard atomic weight.
func AtomicMass(nuclide string) (float64, error) {
	match := nuclideNameRegexp.FindStringSubmatch(nuclide)
	if match == nil {
		return 0, fmt.Errorf("%q is not a nuclide name", nuclide)
	}
	element, massNumber := match[1], match[2]

	if massNumber != "" {
		a, err := strconv.Atoi(massNumber)
		if err != nil {
			return 0, err
		}
		if a > 0 {
			return float64(a), nil
		}
	}

	weight, found := naturalAtomicWeights[element]
	if !found {
		return 0, fmt.Errorf("unknown element %q in %q", element, nuclide)
	}
	return weight, nil
}

// ElementMass returns standard atomic weight of a natural element in g/mol.
func ElementMass(element string) (float64, error) {
	weight, found := naturalAtomicWeights[element]
	if !found {
		return 0, fmt.Errorf("unknown element %q", element)
	}
	return weight, nil
}

func atomicMasses(constituents []constituent) ([]float64, error) {
	masses := make([]float64, 0, len(constituents))
	for _, c := range constituents {
		mass, err := AtomicMass(c.Name)
		if c.element {
			mass, err = ElementMass(c.Name)
		}
		if err != nil {
			return nil, err
		}
		masses = append(masses, mass)
	}
	return masses, nil
}
