package geometry

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Region is an intersection of halfspaces.
type Region []Halfspace

// Intersect returns region bounded by both r and other.
func (r Region) Intersect(other ...Halfspace) Region {
	result := make(Region, 0, len(r)+len(other))
	result = append(result, r...)
	return append(result, other...)
}

// String renders region in engine region syntax, halfspaces separated by spaces.
func (r Region) String() string {
	parts := make([]string, 0, len(r))
	for _, h := range r {
		parts = append(parts, h.String())
	}
	return strings.Join(parts, " ")
}

// BoundingBox of region, infinite along unbounded directions.
func (r Region) BoundingBox() Box {
	box := InfiniteBox()
	for _, h := range r {
		box = box.Intersection(h.box())
	}
	return box
}

// Box is axis aligned bounding box.
type Box struct {
	Lower [3]float64
	Upper [3]float64
}

// Intersection ...
func (b Box) Intersection(other Box) Box {
	result := Box{}
	for i := 0; i < 3; i++ {
		result.Lower[i] = math.Max(b.Lower[i], other.Lower[i])
		result.Upper[i] = math.Min(b.Upper[i], other.Upper[i])
	}
	return result
}

// Union ...
func (b Box) Union(other Box) Box {
	result := Box{}
	for i := 0; i < 3; i++ {
		result.Lower[i] = math.Min(b.Lower[i], other.Lower[i])
		result.Upper[i] = math.Max(b.Upper[i], other.Upper[i])
	}
	return result
}

// IsFinite reports whether the box is bounded in every direction.
func (b Box) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if math.IsInf(b.Lower[i], 0) || math.IsInf(b.Upper[i], 0) {
			return false
		}
	}
	return true
}

// Diagonal returns length of the box diagonal, |upper - lower|.
func (b Box) Diagonal() float64 {
	return floats.Distance(b.Upper[:], b.Lower[:], 2)
}

func emptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Lower: [3]float64{inf, inf, inf},
		Upper: [3]float64{-inf, -inf, -inf},
	}
}
