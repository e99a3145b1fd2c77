// Package parastell reads stellarator radial builds, where thickness of
// every component varies with the toroidal and poloidal angle, and slices
// them into plain radial builds at a single angle pair.
package parastell

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("parastell")

// Angles in degrees. YAML form is either a list or {start, stop, num}
// for num evenly spaced values from start to stop inclusive.
type Angles []float64

type angleSpan struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Num   int     `yaml:"num"`
}

// UnmarshalYAML ...
func (a *Angles) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		values := []float64{}
		if err := value.Decode(&values); err != nil {
			return err
		}
		*a = values
		return nil
	case yaml.MappingNode:
		span := angleSpan{}
		if err := value.Decode(&span); err != nil {
			return err
		}
		if span.Num < 2 {
			return fmt.Errorf("line %d: num must be >= 2, got %d", value.Line, span.Num)
		}
		*a = floats.Span(make([]float64, span.Num), span.Start, span.Stop)
		return nil
	}
	return fmt.Errorf("line %d: angles must be a list or {start, stop, num}", value.Line)
}

// Index returns position of angle in the list, exact match only.
func (a Angles) Index(angle float64) (int, bool) {
	for i, v := range a {
		if v == angle {
			return i, true
		}
	}
	return -1, false
}

// Component of the stellarator build.
type Component struct {
	Name string
	// Thickness at (phi index, theta index). Nil when the component has a
	// uniform thickness.
	Thickness *mat.Dense
	// Uniform thickness, used when Thickness is nil.
	Uniform float64
	// Tag is the material tag of the component in the neutronics model.
	Tag string
}

type componentFields struct {
	ThicknessMatrix [][]float64 `yaml:"thickness_matrix"`
	Thickness       *float64    `yaml:"thickness"`
	Tag             string      `yaml:"h5m_tag"`
	MatTag          string      `yaml:"mat_tag"`
}

// ThicknessAt ...
func (c Component) ThicknessAt(phiIndex, thetaIndex int) float64 {
	if c.Thickness == nil {
		return c.Uniform
	}
	return c.Thickness.At(phiIndex, thetaIndex)
}

// Components keeps components in document order.
type Components []Component

// UnmarshalYAML decodes mapping "component name" -> component fields.
func (c *Components) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: radial_build must be a mapping of component names", value.Line)
	}
	components := make(Components, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		name := value.Content[i].Value
		fields := componentFields{}
		if err := value.Content[i+1].Decode(&fields); err != nil {
			return errors.Wrapf(err, "component %q", name)
		}

		component := Component{Name: name, Tag: fields.Tag}
		if component.Tag == "" {
			component.Tag = fields.MatTag
		}
		switch {
		case fields.ThicknessMatrix != nil && fields.Thickness != nil:
			return fmt.Errorf("component %q: give either thickness_matrix or thickness", name)
		case fields.ThicknessMatrix != nil:
			matrix, err := denseFrom(fields.ThicknessMatrix)
			if err != nil {
				return errors.Wrapf(err, "component %q", name)
			}
			component.Thickness = matrix
		case fields.Thickness != nil:
			component.Uniform = *fields.Thickness
		default:
			return fmt.Errorf("component %q: no thickness_matrix or thickness", name)
		}
		components = append(components, component)
	}
	*c = components
	return nil
}

func denseFrom(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("thickness_matrix is empty")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("thickness_matrix row %d has %d values, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Build is a stellarator radial build.
type Build struct {
	PhiList    Angles     `yaml:"phi_list"`
	ThetaList  Angles     `yaml:"theta_list"`
	WallS      float64    `yaml:"wall_s"`
	Components Components `yaml:"radial_build"`
}

// Validate checks every thickness matrix is phi by theta and thicknesses
// are not negative.
func (b Build) Validate() error {
	if len(b.PhiList) == 0 || len(b.ThetaList) == 0 {
		return fmt.Errorf("[parastell] phi_list and theta_list must not be empty")
	}
	if len(b.Components) == 0 {
		return fmt.Errorf("[parastell] radial_build has no components")
	}
	for _, c := range b.Components {
		if c.Thickness == nil {
			if c.Uniform < 0 {
				return fmt.Errorf("[parastell] component %s: negative thickness %v", c.Name, c.Uniform)
			}
			continue
		}
		rows, cols := c.Thickness.Dims()
		if rows != len(b.PhiList) || cols != len(b.ThetaList) {
			return fmt.Errorf("[parastell] component %s: thickness_matrix is %dx%d, expected %dx%d",
				c.Name, rows, cols, len(b.PhiList), len(b.ThetaList))
		}
		if mat.Min(c.Thickness) < 0 {
			return fmt.Errorf("[parastell] component %s: negative thickness in thickness_matrix", c.Name)
		}
	}
	return nil
}

// Slice returns radial build at toroidal angle phi and poloidal angle
// theta. Both angles must be in their lists. Layers carry the thickness
// and the material tag as description.
func (b Build) Slice(phi, theta float64) (build.Build, error) {
	phiIndex, found := b.PhiList.Index(phi)
	if !found {
		return nil, fmt.Errorf("[parastell] phi %v is not in phi_list %v", phi, []float64(b.PhiList))
	}
	thetaIndex, found := b.ThetaList.Index(theta)
	if !found {
		return nil, fmt.Errorf("[parastell] theta %v is not in theta_list %v", theta, []float64(b.ThetaList))
	}

	result := make(build.Build, 0, len(b.Components))
	for _, c := range b.Components {
		thickness := c.ThicknessAt(phiIndex, thetaIndex)
		layer := build.Layer{
			Name:           c.Name,
			Thickness:      build.Float(thickness),
			FloatThickness: thickness == math.Trunc(thickness),
		}
		if c.Tag != "" {
			layer.Description = build.String(c.Tag)
		}
		result = append(result, layer)
	}
	log.Debugf("sliced %d components at phi=%v theta=%v", len(result), phi, theta)
	return result, nil
}

// Decode reads stellarator build document.
func Decode(r io.Reader) (Build, error) {
	b := Build{}
	if err := yaml.NewDecoder(r).Decode(&b); err != nil {
		if err == io.EOF {
			return Build{}, fmt.Errorf("[parastell] empty document")
		}
		return Build{}, err
	}
	if err := b.Validate(); err != nil {
		return Build{}, err
	}
	return b, nil
}

// Load reads stellarator build from path.
func Load(path string) (Build, error) {
	file, err := os.Open(path)
	if err != nil {
		return Build{}, err
	}
	defer file.Close()

	b, err := Decode(file)
	if err != nil {
		return Build{}, errors.Wrapf(err, "load %s", path)
	}
	return b, nil
}
