package toroidal

import (
	"fmt"

	"github.com/svalinn/radialbuild/geometry"
	"github.com/svalinn/radialbuild/material"
)

// AssignMaterials mixes material of every layer with composition. Layers
// without composition are void. Layers with the same mix share one material.
func (m *Model) AssignMaterials() error {
	m.layerMaterials = map[string]*material.Material{}
	mixes := map[string]*material.Material{}
	nextID := m.Library.MaxID() + 1

	for _, layer := range m.Build {
		if !layer.HasComposition() {
			m.layerMaterials[layer.Name] = nil
			continue
		}

		components := make([]material.Material, 0, len(layer.Composition))
		for _, materialName := range layer.Composition.Materials() {
			mat, err := m.Library.ByName(materialName)
			if err != nil {
				return newLayerError(layer.Name, "%s", err.Error())
			}
			components = append(components, mat)
		}

		fractions := layer.Composition.Fractions()
		name := material.MixName(components, layer.Composition.FractionStrings())
		if mix, found := mixes[name]; found {
			m.layerMaterials[layer.Name] = mix
			continue
		}

		mix, err := material.MixByVolume(components, fractions)
		if err != nil {
			return newLayerError(layer.Name, "%s", err.Error())
		}
		mix.Name = name
		mix.ID = nextID
		nextID++
		mixes[name] = &mix
		m.layerMaterials[layer.Name] = &mix
		log.Debugf("layer %s filled with %s", layer.Name, mix)
	}
	return nil
}

// BuildSurfaces creates the plasma torus and one torus per active layer,
// growing both minor radii by the layer thickness.
func (m *Model) BuildSurfaces() error {
	m.surfaceNames = []string{}
	m.surfaces = map[string]*geometry.Surface{}
	nextID := geometry.SurfaceID(1)

	add := func(name string, minorZ, minorXY float64) error {
		surface, err := geometry.NewZTorus(name, 0, 0, 0, m.MajorRadius, minorZ, minorXY)
		if err != nil {
			return err
		}
		surface.ID = nextID
		nextID++
		m.surfaceNames = append(m.surfaceNames, name)
		m.surfaces[name] = surface
		return nil
	}

	minorZ, minorXY := m.MinorRadiusZ, m.MinorRadiusXY
	if err := add(PlasmaSurfaceName, minorZ, minorXY); err != nil {
		return err
	}

	for _, layer := range m.Build.Active() {
		if reservedNames[layer.Name] {
			return newLayerError(layer.Name, "name is reserved for the model")
		}
		minorZ += *layer.Thickness
		minorXY += *layer.Thickness
		if err := add(layer.Name, minorZ, minorXY); err != nil {
			return newLayerError(layer.Name, "%s", err.Error())
		}
	}
	return nil
}

// BuildRegions creates the plasma region inside the plasma surface and,
// for every other surface, the shell between it and the previous one.
func (m *Model) BuildRegions() error {
	if len(m.surfaceNames) == 0 {
		return fmt.Errorf("surfaces are not built")
	}

	m.regions = map[string]geometry.Region{
		PlasmaRegionName: {m.surfaces[PlasmaSurfaceName].Negative()},
	}
	for i := 1; i < len(m.surfaceNames); i++ {
		inner := m.surfaces[m.surfaceNames[i-1]]
		outer := m.surfaces[m.surfaceNames[i]]
		m.regions[outer.Name] = geometry.Region{outer.Negative()}.Intersect(inner.Positive())
	}
	return nil
}

// BuildCells creates void plasma cell and a cell per active layer, filled
// with the layer material.
func (m *Model) BuildCells() error {
	if m.regions == nil {
		return fmt.Errorf("regions are not built")
	}

	m.cells = []*geometry.Cell{}
	m.cellsByName = map[string]*geometry.Cell{}
	m.materials = material.Library{}
	seenMaterials := map[int]bool{}

	add := func(name string, region geometry.Region, fill *material.Material) {
		cell := &geometry.Cell{
			ID:     geometry.CellID(len(m.cells) + 1),
			Name:   name,
			Fill:   fill,
			Region: region,
		}
		m.cells = append(m.cells, cell)
		m.cellsByName[name] = cell
		if fill != nil && !seenMaterials[fill.ID] {
			seenMaterials[fill.ID] = true
			m.materials = append(m.materials, *fill)
		}
	}

	add(PlasmaCellName, m.regions[PlasmaRegionName], nil)
	for _, layer := range m.Build.Active() {
		region, found := m.regions[layer.Name]
		if !found {
			return newLayerError(layer.Name, "region is not built")
		}
		add(layer.Name, region, m.layerMaterials[layer.Name])
	}
	return nil
}

// BoundGeometry closes the model with a vacuum boundary sphere centered at
// the origin. Its radius is the diagonal of the bounding box of all cells,
// vac_cell fills the space between the outermost torus and the sphere.
func (m *Model) BoundGeometry() error {
	if len(m.cells) == 0 {
		return fmt.Errorf("cells are not built")
	}

	unbounded := geometry.NewGeometry(m.cells)
	box := unbounded.BoundingBox()
	if !box.IsFinite() {
		return fmt.Errorf("geometry is not bounded: %+v", box)
	}

	vacSurface, err := geometry.NewSphere(VacuumSurfaceName, 0, 0, 0, box.Diagonal())
	if err != nil {
		return err
	}
	vacSurface.Boundary = geometry.Vacuum
	vacSurface.ID = m.surfaces[m.surfaceNames[len(m.surfaceNames)-1]].ID + 1

	outermost := m.surfaces[m.surfaceNames[len(m.surfaceNames)-1]]
	vacCell := &geometry.Cell{
		ID:     geometry.CellID(len(m.cells) + 1),
		Name:   VacuumCellName,
		Region: geometry.Region{vacSurface.Negative()}.Intersect(outermost.Positive()),
	}

	cells := make([]*geometry.Cell, 0, len(m.cells)+1)
	cells = append(cells, m.cells...)
	cells = append(cells, vacCell)
	m.cellsByName[VacuumCellName] = vacCell
	m.geometry = geometry.NewGeometry(cells)
	return nil
}

var reservedNames = map[string]bool{
	PlasmaSurfaceName: true,
	PlasmaRegionName:  true,
	PlasmaCellName:    true,
	VacuumSurfaceName: true,
	VacuumCellName:    true,
}

func newLayerError(name string, message string, formatedValues ...interface{}) error {
	header := fmt.Sprintf("[toroidal] Layer{Name: %s}: ", name)
	return fmt.Errorf(header+message, formatedValues...)
}
