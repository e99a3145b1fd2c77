package geometry

import (
	"fmt"
	"sort"

	"github.com/svalinn/radialbuild/material"
)

// CellID ...
type CellID int64

// Cell is a region filled with material. Nil Fill means void.
type Cell struct {
	ID     CellID
	Name   string
	Fill   *material.Material
	Region Region
}

// String ...
func (c *Cell) String() string {
	return fmt.Sprintf("Cell{ID: %d, Name: %s, Region: %s}", c.ID, c.Name, c.Region)
}

// IsVoid ...
func (c *Cell) IsVoid() bool {
	return c.Fill == nil
}

// Geometry is a flat list of cells of a single universe.
type Geometry struct {
	Cells []*Cell
}

// NewGeometry ...
func NewGeometry(cells []*Cell) Geometry {
	return Geometry{Cells: cells}
}

// BoundingBox is union of bounding boxes of every cell.
func (g Geometry) BoundingBox() Box {
	if len(g.Cells) == 0 {
		return InfiniteBox()
	}
	box := emptyBox()
	for _, cell := range g.Cells {
		box = box.Union(cell.Region.BoundingBox())
	}
	return box
}

// Surfaces returns every surface used by the cells, ordered by id.
func (g Geometry) Surfaces() []*Surface {
	seen := map[SurfaceID]bool{}
	surfaces := []*Surface{}
	for _, cell := range g.Cells {
		for _, h := range cell.Region {
			if !seen[h.Surface.ID] {
				seen[h.Surface.ID] = true
				surfaces = append(surfaces, h.Surface)
			}
		}
	}
	sort.SliceStable(surfaces, func(i, j int) bool { return surfaces[i].ID < surfaces[j].ID })
	return surfaces
}

// Materials returns materials filling the cells, ordered by id, void discarded.
func (g Geometry) Materials() material.Library {
	seen := map[int]bool{}
	materials := material.Library{}
	for _, cell := range g.Cells {
		if cell.IsVoid() || seen[cell.Fill.ID] {
			continue
		}
		seen[cell.Fill.ID] = true
		materials = append(materials, *cell.Fill)
	}
	sort.SliceStable(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })
	return materials
}

// CellByName returns the first cell named name.
func (g Geometry) CellByName(name string) (*Cell, bool) {
	for _, cell := range g.Cells {
		if cell.Name == name {
			return cell, true
		}
	}
	return nil, false
}
