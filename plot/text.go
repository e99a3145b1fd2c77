package plot

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/svalinn/radialbuild/build"
)

const minLineHeight = 9

// CompositionString lists constituents as "material: percent%", wrapped at
// MaxCharacters and terminated by a newline.
func (p *Plot) CompositionString(composition build.Composition) string {
	entries := make([]string, 0, len(composition))
	for _, constituent := range composition {
		entries = append(entries, fmt.Sprintf("%s: %s%%", constituent.Material, constituent.PercentString()))
	}
	w := wrapper{width: p.MaxCharacters, dropWhitespace: true}
	return w.fill(strings.Join(entries, ", ")) + "\n"
}

// LayerText returns the label of a layer and the width of its rectangle.
// The width is the layer thickness, widened to fit every text line and
// clamped to MaxThickness.
func (p *Plot) LayerText(layer build.Layer) (string, float64) {
	visualThickness := layer.ThicknessOr(minLineHeight)

	thickness := ""
	if layer.HasThickness() {
		thickness = fmt.Sprintf(": %s %s", layer.ThicknessString(), p.Unit)
	}

	composition := ""
	if layer.HasComposition() {
		composition = p.CompositionString(layer.Composition)
	}

	description := ""
	if layer.HasDescription() {
		w := wrapper{width: p.MaxCharacters, dropWhitespace: false}
		description = w.fill(*layer.Description)
	}

	text := strings.TrimRightFunc(layer.Name+thickness+"\n"+composition+description, unicode.IsSpace)
	lines := strings.Count(text, "\n") + 1
	minThickness := float64(lines * minLineHeight)
	return text, math.Min(math.Max(visualThickness, minThickness), p.MaxThickness)
}
