package toroidal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/geometry"
	"github.com/svalinn/radialbuild/material"
)

func testLibrary() material.Library {
	return material.Library{
		{
			ID:       1,
			Name:     "RAFM",
			Density:  material.Density{Units: material.UnitsGramPerCC, Value: 7.8},
			Nuclides: []material.Nuclide{material.NewNuclide("Fe56", 1, material.WeightPercent)},
		},
		{
			ID:      2,
			Name:    "PbLi",
			Density: material.Density{Units: material.UnitsGramPerCC, Value: 9.4},
			Nuclides: []material.Nuclide{
				material.NewNuclide("Pb208", 0.99, material.WeightPercent),
				material.NewNuclide("Li6", 0.01, material.WeightPercent),
			},
		},
	}
}

func testBuild() build.Build {
	blanket := build.Composition{{Material: "RAFM", Fraction: 0.1}, {Material: "PbLi", Fraction: 0.9}}
	return build.Build{
		{Name: "sol", Thickness: build.Float(5)},
		{Name: "fw", Thickness: build.Float(4), Composition: build.Composition{{Material: "RAFM", Fraction: 1}}},
		{Name: "breeder", Thickness: build.Float(20), Composition: blanket},
		{Name: "gap", Thickness: build.Float(0)},
		{Name: "bw", Thickness: build.Float(20), Composition: blanket},
	}
}

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(testBuild(), 1000, 100, 100, testLibrary())
	require.NoError(t, err)
	return m
}

func TestAssignMaterials(t *testing.T) {
	m := testModel(t)

	assert.Nil(t, m.LayerMaterial("sol"))
	assert.Nil(t, m.LayerMaterial("gap"))

	fw := m.LayerMaterial("fw")
	require.NotNil(t, fw)
	assert.Equal(t, 3, fw.ID)
	assert.Equal(t, "RAFM1", fw.Name)

	breeder := m.LayerMaterial("breeder")
	require.NotNil(t, breeder)
	assert.Equal(t, 4, breeder.ID)
	assert.Equal(t, "RAFM0.1PbLi0.9", breeder.Name)
	assert.InDelta(t, 0.1*7.8+0.9*9.4, breeder.Density.Value, 1e-9)
	assert.Same(t, breeder, m.LayerMaterial("bw"), "identical mixes are shared")
}

func TestNewModelErrors(t *testing.T) {
	type testCase struct {
		name     string
		build    build.Build
		radii    [3]float64
		contains []string
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		_, err := NewModel(tc.build, tc.radii[0], tc.radii[1], tc.radii[2], testLibrary())
		require.Error(t, err)
		for _, s := range tc.contains {
			assert.Contains(t, err.Error(), s)
		}
	}

	for _, tc := range []testCase{
		{
			name:     "MissingThickness",
			build:    build.Build{{Name: "fw"}, {Name: "vv"}},
			radii:    [3]float64{1000, 100, 100},
			contains: []string{"missing in layers: fw, vv"},
		},
		{
			name:     "UnknownMaterial",
			build:    build.Build{{Name: "fw", Thickness: build.Float(1), Composition: build.Composition{{Material: "W", Fraction: 1}}}},
			radii:    [3]float64{1000, 100, 100},
			contains: []string{"[toroidal] Layer{Name: fw}: no material name W was found in the library"},
		},
		{
			name:     "NonPositiveRadii",
			build:    build.Build{{Name: "fw", Thickness: build.Float(1)}},
			radii:    [3]float64{0, -1, 100},
			contains: []string{"major_rad must be > 0", "minor_rad_z must be > 0"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) { check(t, tc) })
	}
}

func TestReservedLayerName(t *testing.T) {
	m, err := NewModel(build.Build{{Name: VacuumCellName, Thickness: build.Float(1)}}, 10, 1, 1, testLibrary())
	require.NoError(t, err)
	_, err = m.OpenMCModel()
	assert.Error(t, err)
}

func TestBuildSurfaces(t *testing.T) {
	m := testModel(t)
	require.NoError(t, m.BuildSurfaces())

	surfaces := m.Surfaces()
	names := []string{}
	for _, s := range surfaces {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{PlasmaSurfaceName, "sol", "fw", "breeder", "bw"}, names)
	assert.Equal(t, geometry.SurfaceID(1), surfaces[0].ID)
	assert.Equal(t, []float64{0, 0, 0, 1000, 100, 100}, surfaces[0].Arguments)
	assert.Equal(t, []float64{0, 0, 0, 1000, 109, 109}, surfaces[2].Arguments)
	assert.Equal(t, []float64{0, 0, 0, 1000, 149, 149}, surfaces[4].Arguments)
}

func TestBuildSurfacesUnequalRadii(t *testing.T) {
	m, err := NewModel(build.Build{{Name: "fw", Thickness: build.Float(10)}}, 500, 200, 100, testLibrary())
	require.NoError(t, err)
	require.NoError(t, m.BuildSurfaces())
	assert.Equal(t, []float64{0, 0, 0, 500, 210, 110}, m.Surfaces()[1].Arguments)
}

func TestStepsOutOfOrder(t *testing.T) {
	m := testModel(t)
	assert.Error(t, m.BuildRegions())
	assert.Error(t, m.BuildCells())
	assert.Error(t, m.BoundGeometry())
}

func TestOpenMCModel(t *testing.T) {
	m := testModel(t)
	built, err := m.OpenMCModel()
	require.NoError(t, err)

	cells := built.Geometry.Cells
	require.Len(t, cells, 6)
	expected := []struct {
		name   string
		region string
		fill   string
	}{
		{PlasmaCellName, "-1", ""},
		{"sol", "-2 1", ""},
		{"fw", "-3 2", "RAFM1"},
		{"breeder", "-4 3", "RAFM0.1PbLi0.9"},
		{"bw", "-5 4", "RAFM0.1PbLi0.9"},
		{VacuumCellName, "-6 5", ""},
	}
	for i, e := range expected {
		assert.Equal(t, geometry.CellID(i+1), cells[i].ID)
		assert.Equal(t, e.name, cells[i].Name)
		assert.Equal(t, e.region, cells[i].Region.String())
		if e.fill == "" {
			assert.True(t, cells[i].IsVoid(), e.name)
		} else {
			assert.Equal(t, e.fill, cells[i].Fill.Name)
		}
		assert.Same(t, cells[i], built.Cells[e.name])
	}
	_, found := built.Cells["gap"]
	assert.False(t, found, "zero thickness layers get no cell")

	assert.Equal(t, []int{3, 4}, []int{built.Materials[0].ID, built.Materials[1].ID})

	sphere := cells[5].Region[0].Surface
	assert.Equal(t, VacuumSurfaceName, sphere.Name)
	assert.Equal(t, geometry.Vacuum, sphere.Boundary)
	expectedRadius := math.Sqrt(2*2298*2298 + 298*298)
	assert.InDelta(t, expectedRadius, sphere.Arguments[3], 1e-9)

	box := built.Geometry.BoundingBox()
	assert.InDelta(t, -expectedRadius, box.Lower[0], 1e-9)
}

func TestOpenMCModelTwice(t *testing.T) {
	m := testModel(t)
	first, err := m.OpenMCModel()
	require.NoError(t, err)
	second, err := m.OpenMCModel()
	require.NoError(t, err)
	assert.Len(t, second.Geometry.Cells, len(first.Geometry.Cells))
}
