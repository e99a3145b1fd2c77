// Package toroidal builds nested toroidal transport geometry from a radial
// build. Every layer becomes a shell between two z-tori around the plasma,
// the whole model is closed by a vacuum sphere.
package toroidal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/geometry"
	"github.com/svalinn/radialbuild/material"
	"github.com/svalinn/radialbuild/validate"
)

var log = config.NamedLogger("toroidal")

// Names given to the parts of the model which do not come from build layers.
const (
	PlasmaSurfaceName = "plasma_surface"
	PlasmaRegionName  = "plasma"
	PlasmaCellName    = "plasma_cell"
	VacuumSurfaceName = "vac_surface"
	VacuumCellName    = "vac_cell"
)

// Model of a torus with layers of the radial build around the plasma.
type Model struct {
	Build build.Build
	// MajorRadius of the torus.
	MajorRadius float64
	// MinorRadiusZ is the plasma minor radius parallel to the z axis.
	MinorRadiusZ float64
	// MinorRadiusXY is the plasma minor radius perpendicular to the z axis.
	MinorRadiusXY float64
	// Library the layer compositions refer to by material name.
	Library material.Library
	// LibraryPath is the materials.xml the library was read from.
	LibraryPath string

	layerMaterials map[string]*material.Material

	surfaceNames []string
	surfaces     map[string]*geometry.Surface

	regions map[string]geometry.Region

	cells       []*geometry.Cell
	cellsByName map[string]*geometry.Cell
	materials   material.Library

	geometry geometry.Geometry
}

// Built is the complete model ready to be serialized.
type Built struct {
	Geometry  geometry.Geometry
	Materials material.Library
	// Cells maps layer names, plasma_cell and vac_cell to cells.
	Cells map[string]*geometry.Cell
}

// NewModel validates the build and radii and assigns materials to layers.
func NewModel(
	b build.Build,
	majorRadius, minorRadiusZ, minorRadiusXY float64,
	library material.Library,
) (*Model, error) {
	var result *multierror.Error
	if err := b.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := b.RequireThickness(); err != nil {
		result = multierror.Append(result, err)
	}
	for name, radius := range map[string]float64{
		"major_rad":    majorRadius,
		"minor_rad_z":  minorRadiusZ,
		"minor_rad_xy": minorRadiusXY,
	} {
		if !validate.Positive(radius) {
			result = multierror.Append(result, fmt.Errorf("[toroidal] %s must be > 0, got %v", name, radius))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	m := &Model{
		Build:         b,
		MajorRadius:   majorRadius,
		MinorRadiusZ:  minorRadiusZ,
		MinorRadiusXY: minorRadiusXY,
		Library:       library,
	}
	if err := m.AssignMaterials(); err != nil {
		return nil, err
	}
	return m, nil
}

// LayerMaterial returns material assigned to a layer, nil for void layers.
func (m *Model) LayerMaterial(layerName string) *material.Material {
	return m.layerMaterials[layerName]
}

// Surfaces returns surfaces built so far, plasma surface first.
func (m *Model) Surfaces() []*geometry.Surface {
	surfaces := make([]*geometry.Surface, 0, len(m.surfaceNames))
	for _, name := range m.surfaceNames {
		surfaces = append(surfaces, m.surfaces[name])
	}
	return surfaces
}

// Region returns region built for a layer, or the plasma region.
func (m *Model) Region(name string) (geometry.Region, bool) {
	region, found := m.regions[name]
	return region, found
}

// OpenMCModel runs every build step and returns the bounded model. Calling
// it again rebuilds the geometry from scratch.
func (m *Model) OpenMCModel() (Built, error) {
	steps := []struct {
		name string
		run  func() error
	}{
		{"surfaces", m.BuildSurfaces},
		{"regions", m.BuildRegions},
		{"cells", m.BuildCells},
		{"bounding", m.BoundGeometry},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return Built{}, fmt.Errorf("[toroidal] build %s: %s", step.name, err.Error())
		}
		log.Debugf("built %s", step.name)
	}

	cells := make(map[string]*geometry.Cell, len(m.cellsByName))
	for name, cell := range m.cellsByName {
		cells[name] = cell
	}
	return Built{
		Geometry:  m.geometry,
		Materials: m.materials,
		Cells:     cells,
	}, nil
}
