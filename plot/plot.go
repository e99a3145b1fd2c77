// Package plot draws a radial build as a strip of labeled rectangles, one
// per layer, left to right from the plasma outwards.
package plot

import (
	"fmt"
	"image/color"

	"github.com/hashicorp/go-multierror"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/config"
)

var log = config.NamedLogger("plot")

// Defaults of a plot.
const (
	DefaultTitle         = "radial_build"
	DefaultMaxCharacters = 35
	DefaultMaxThickness  = 1e6
	DefaultUnit          = "cm"
)

// DefaultSize of the figure in inches, width and height.
var DefaultSize = [2]float64{8, 4}

// Plot of a radial build.
type Plot struct {
	Build build.Build
	// Title is drawn above the layers and names the output files.
	Title string
	// Colors of the layers, in build order. Nil means palette colors.
	Colors []string
	// MaxCharacters is the length of a line before the label text wraps.
	MaxCharacters int
	// MaxThickness clamps the drawn width of thick layers.
	MaxThickness float64
	// Size of the figure in inches.
	Size [2]float64
	// Unit of thickness values.
	Unit string
}

// New returns plot of b with default settings.
func New(b build.Build) *Plot {
	return &Plot{
		Build:         b,
		Title:         DefaultTitle,
		MaxCharacters: DefaultMaxCharacters,
		MaxThickness:  DefaultMaxThickness,
		Size:          DefaultSize,
		Unit:          DefaultUnit,
	}
}

// Validate ...
func (p *Plot) Validate() error {
	var result *multierror.Error
	if err := p.Build.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if p.MaxCharacters <= 0 {
		result = multierror.Append(result, fmt.Errorf("[plot] max_characters must be > 0, got %d", p.MaxCharacters))
	}
	if p.MaxThickness <= 0 {
		result = multierror.Append(result, fmt.Errorf("[plot] max_thickness must be > 0, got %v", p.MaxThickness))
	}
	if p.Size[0] <= 0 || p.Size[1] <= 0 {
		result = multierror.Append(result, fmt.Errorf("[plot] size must be > 0, got %v", p.Size))
	}
	if _, err := p.layerColors(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// ResolvedColors returns the color of every layer as "#rrggbb".
func (p *Plot) ResolvedColors() ([]string, error) {
	colors, err := p.layerColors()
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(colors))
	for _, c := range colors {
		result = append(result, hexString(c))
	}
	return result, nil
}

// layerColors returns a color for every layer. User colors are repeated
// when there are fewer of them than layers.
func (p *Plot) layerColors() ([]color.RGBA, error) {
	names := p.Colors
	if len(names) == 0 {
		names = DefaultColors(len(p.Build))
	}
	colors := make([]color.RGBA, 0, len(p.Build))
	for i := range p.Build {
		c, err := ParseColor(names[i%len(names)])
		if err != nil {
			return nil, fmt.Errorf("[plot] Layer{Name: %s}: %s", p.Build[i].Name, err.Error())
		}
		colors = append(colors, c)
	}
	return colors, nil
}
