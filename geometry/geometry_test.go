package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svalinn/radialbuild/material"
)

func mustZTorus(t *testing.T, id SurfaceID, a, b, c float64) *Surface {
	t.Helper()
	s, err := NewZTorus("torus", 0, 0, 0, a, b, c)
	require.NoError(t, err)
	s.ID = id
	return s
}

func TestNewSurfaceErrors(t *testing.T) {
	_, err := NewZTorus("bad", 0, 0, 0, 1000, 0, 100)
	assert.Error(t, err)

	_, err = NewSphere("bad", 0, 0, 0, -1)
	assert.Error(t, err)
}

func TestRegionString(t *testing.T) {
	inner := mustZTorus(t, 1, 1000, 100, 100)
	outer := mustZTorus(t, 2, 1000, 105, 105)

	assert.Equal(t, "-1", Region{inner.Negative()}.String())
	assert.Equal(t, "-2 1", Region{outer.Negative()}.Intersect(inner.Positive()).String())
}

func TestRegionBoundingBox(t *testing.T) {
	type testCase struct {
		Input    Region
		Expected Box
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		assert.Equal(t, tc.Expected, tc.Input.BoundingBox())
	}

	inner := mustZTorus(t, 1, 1000, 100, 150)
	outer := mustZTorus(t, 2, 1000, 105, 155)
	sphere, err := NewSphere("sphere", 1, 2, 3, 10)
	require.NoError(t, err)

	t.Run("InsideTorus", func(t *testing.T) {
		check(t, testCase{
			Input: Region{inner.Negative()},
			Expected: Box{
				Lower: [3]float64{-1150, -1150, -100},
				Upper: [3]float64{1150, 1150, 100},
			},
		})
	})

	t.Run("Shell", func(t *testing.T) {
		check(t, testCase{
			Input: Region{outer.Negative(), inner.Positive()},
			Expected: Box{
				Lower: [3]float64{-1155, -1155, -105},
				Upper: [3]float64{1155, 1155, 105},
			},
		})
	})

	t.Run("InsideSphere", func(t *testing.T) {
		check(t, testCase{
			Input: Region{sphere.Negative()},
			Expected: Box{
				Lower: [3]float64{-9, -8, -7},
				Upper: [3]float64{11, 12, 13},
			},
		})
	})

	t.Run("Outside", func(t *testing.T) {
		assert.False(t, Region{inner.Positive()}.BoundingBox().IsFinite())
	})
}

func TestBoxDiagonal(t *testing.T) {
	box := Box{Lower: [3]float64{-1, -2, -2}, Upper: [3]float64{1, 2, 2}}
	assert.InDelta(t, 6.0, box.Diagonal(), 1e-12)
	assert.True(t, math.IsInf(InfiniteBox().Diagonal(), 1))
}

func TestGeometry(t *testing.T) {
	inner := mustZTorus(t, 1, 1000, 100, 100)
	outer := mustZTorus(t, 2, 1000, 104, 104)
	fw := material.Material{ID: 4, Name: "RAFM1"}

	g := NewGeometry([]*Cell{
		{ID: 1, Name: "plasma_cell", Region: Region{inner.Negative()}},
		{ID: 2, Name: "FW", Region: Region{outer.Negative(), inner.Positive()}, Fill: &fw},
		{ID: 3, Name: "FW copy", Region: Region{outer.Negative(), inner.Positive()}, Fill: &fw},
	})

	assert.Equal(t, Box{
		Lower: [3]float64{-1104, -1104, -104},
		Upper: [3]float64{1104, 1104, 104},
	}, g.BoundingBox())
	assert.Equal(t, []*Surface{inner, outer}, g.Surfaces())
	assert.Equal(t, material.Library{fw}, g.Materials())

	cell, found := g.CellByName("FW")
	require.True(t, found)
	assert.Equal(t, CellID(2), cell.ID)
	assert.False(t, cell.IsVoid())

	_, found = g.CellByName("vac_cell")
	assert.False(t, found)
}
