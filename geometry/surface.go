// Package geometry implements the constructive solid geometry used by
// toroidal models: quadric surfaces, halfspaces, cells and their bounds.
package geometry

import (
	"fmt"
	"math"
)

// SurfaceID ...
type SurfaceID int64

// BoundaryType of a surface, as understood by the transport engine.
type BoundaryType string

const (
	// Transmission lets particles cross the surface.
	Transmission BoundaryType = "transmission"
	// Vacuum kills particles crossing the surface.
	Vacuum BoundaryType = "vacuum"
	// Reflective reflects particles back.
	Reflective BoundaryType = "reflective"
)

// Surface identifiers.
const (
	ZTorusIdentifier = "z-torus"
	SphereIdentifier = "sphere"
)

// Surface is a quadric surface with engine identifier and coefficients.
type Surface struct {
	ID         SurfaceID
	Name       string
	Identifier string
	Arguments  []float64
	Boundary   BoundaryType
}

// NewZTorus creates torus with axis parallel to z, centered at (x0, y0, z0).
// a is the major radius, b the minor radius parallel to z and c the
// minor radius perpendicular to z.
func NewZTorus(name string, x0, y0, z0, a, b, c float64) (*Surface, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("z-torus %s radii must be > 0, got a=%v b=%v c=%v", name, a, b, c)
	}
	return &Surface{
		Name:       name,
		Identifier: ZTorusIdentifier,
		Arguments:  []float64{x0, y0, z0, a, b, c},
		Boundary:   Transmission,
	}, nil
}

// NewSphere creates sphere of radius r centered at (x0, y0, z0).
func NewSphere(name string, x0, y0, z0, r float64) (*Surface, error) {
	if r <= 0 {
		return nil, fmt.Errorf("sphere %s radius cannot be <= 0.0", name)
	}
	return &Surface{
		Name:       name,
		Identifier: SphereIdentifier,
		Arguments:  []float64{x0, y0, z0, r},
		Boundary:   Transmission,
	}, nil
}

// Negative returns the halfspace inside the surface.
func (s *Surface) Negative() Halfspace {
	return Halfspace{Surface: s, Sign: Minus}
}

// Positive returns the halfspace outside the surface.
func (s *Surface) Positive() Halfspace {
	return Halfspace{Surface: s, Sign: Plus}
}

// insideBox bounds the negative halfspace of the surface.
func (s *Surface) insideBox() Box {
	switch s.Identifier {
	case ZTorusIdentifier:
		x0, y0, z0, a, b, c := s.Arguments[0], s.Arguments[1], s.Arguments[2],
			s.Arguments[3], s.Arguments[4], s.Arguments[5]
		return Box{
			Lower: [3]float64{x0 - a - c, y0 - a - c, z0 - b},
			Upper: [3]float64{x0 + a + c, y0 + a + c, z0 + b},
		}
	case SphereIdentifier:
		x0, y0, z0, r := s.Arguments[0], s.Arguments[1], s.Arguments[2], s.Arguments[3]
		return Box{
			Lower: [3]float64{x0 - r, y0 - r, z0 - r},
			Upper: [3]float64{x0 + r, y0 + r, z0 + r},
		}
	default:
		return InfiniteBox()
	}
}

// Sign of a halfspace.
type Sign string

const (
	// Plus is the outside of a surface.
	Plus Sign = "+"
	// Minus is the inside of a surface.
	Minus Sign = "-"
)

// Halfspace is one side of a surface.
type Halfspace struct {
	Surface *Surface
	Sign    Sign
}

// String renders halfspace in engine region syntax, "-3" or "3".
func (h Halfspace) String() string {
	if h.Sign == Minus {
		return fmt.Sprintf("-%d", h.Surface.ID)
	}
	return fmt.Sprintf("%d", h.Surface.ID)
}

func (h Halfspace) box() Box {
	if h.Sign == Minus {
		return h.Surface.insideBox()
	}
	return InfiniteBox()
}

// InfiniteBox is a box bounding the whole space.
func InfiniteBox() Box {
	inf := math.Inf(1)
	return Box{
		Lower: [3]float64{-inf, -inf, -inf},
		Upper: [3]float64{inf, inf, inf},
	}
}
