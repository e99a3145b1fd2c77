package plot

import (
	"image/color"
	"strings"
)

const charToHeight = 1.15

// Rectangle of a single layer in data coordinates, (X, Y) is its lower
// left corner.
type Rectangle struct {
	Layer  string
	X, Y   float64
	Width  float64
	Height float64
	Fill   color.RGBA
}

// Label is a vertical text centered at (X, Y).
type Label struct {
	X, Y  float64
	Lines []string
}

// Layout is the plot content in data coordinates, independent of the output format.
type Layout struct {
	Title      string
	Rectangles []Rectangle
	Labels     []Label
	XLim       [2]float64
	YLim       [2]float64
}

// Layout places layers left to right starting at x = 0. Layers with zero
// thickness are skipped, but they still take their color from the list.
func (p *Plot) Layout() (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	colors, err := p.layerColors()
	if err != nil {
		return Layout{}, err
	}

	height := charToHeight * float64(p.MaxCharacters)
	layout := Layout{
		Title: p.Title,
		YLim:  [2]float64{0, height + 1},
	}

	x := 0.0
	for i, layer := range p.Build {
		if layer.IsZeroThickness() {
			log.Debugf("skipping zero thickness layer %s", layer.Name)
			continue
		}
		text, width := p.LayerText(layer)
		layout.Rectangles = append(layout.Rectangles, Rectangle{
			Layer:  layer.Name,
			X:      x,
			Width:  width,
			Height: height,
			Fill:   colors[i],
		})
		layout.Labels = append(layout.Labels, Label{
			X:     x + width/2 + 1,
			Y:     height / 2,
			Lines: strings.Split(text, "\n"),
		})
		x += width
	}
	layout.XLim = [2]float64{-1, x + 1}
	return layout, nil
}

// figure maps data coordinates onto an image of the figure size at dpi
// pixels per inch, keeping the default margins around the axes.
type figure struct {
	width, height float64
	dpi           float64
	left, right   float64
	bottom, top   float64
	xlim, ylim    [2]float64
}

func newFigure(layout Layout, size [2]float64, dpi float64) figure {
	w, h := size[0]*dpi, size[1]*dpi
	return figure{
		width:  w,
		height: h,
		dpi:    dpi,
		left:   0.125 * w,
		right:  0.9 * w,
		bottom: 0.11 * h,
		top:    0.88 * h,
		xlim:   layout.XLim,
		ylim:   layout.YLim,
	}
}

// point converts data coordinates to image coordinates, y grows downwards.
func (f figure) point(x, y float64) (float64, float64) {
	px := f.left + (x-f.xlim[0])/(f.xlim[1]-f.xlim[0])*(f.right-f.left)
	py := f.bottom + (y-f.ylim[0])/(f.ylim[1]-f.ylim[0])*(f.top-f.bottom)
	return px, f.height - py
}

// fontSize converts points to pixels.
func (f figure) fontSize(points float64) float64 {
	return points * f.dpi / 72
}

// titlePosition is the baseline center of the title.
func (f figure) titlePosition() (float64, float64) {
	return (f.left + f.right) / 2, f.height - f.top - f.fontSize(6)
}
