package plot

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/svalinn/radialbuild/build"
)

func exampleBuild() build.Build {
	return build.Build{
		{Name: "FW", Thickness: build.Float(4), Composition: build.Composition{
			{Material: "MF82H", Fraction: 0.34},
			{Material: "He", Fraction: 0.66},
		}},
		{Name: "gap", Thickness: build.Float(0)},
		{Name: "VV", Thickness: build.Float(30), Description: build.String("vacuum vessel")},
		{Name: "coils"},
	}
}

func TestCompositionString(t *testing.T) {
	p := New(nil)
	assert.Equal(t, "MF82H: 34.0%, He: 66.0%\n", p.CompositionString(exampleBuild()[0].Composition))

	p.MaxCharacters = 15
	assert.Equal(t, "MF82H: 34.0%,\nHe: 66.0%\n", p.CompositionString(exampleBuild()[0].Composition))
}

func TestLayerText(t *testing.T) {
	type testCase struct {
		name         string
		layer        build.Layer
		maxThickness float64
		text         string
		thickness    float64
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()
		p := New(nil)
		if tc.maxThickness != 0 {
			p.MaxThickness = tc.maxThickness
		}
		text, thickness := p.LayerText(tc.layer)
		assert.Equal(t, tc.text, text)
		assert.Equal(t, tc.thickness, thickness)
	}

	for _, tc := range []testCase{
		{
			name:      "WidenedToFitLines",
			layer:     exampleBuild()[0],
			text:      "FW: 4 cm\nMF82H: 34.0%, He: 66.0%",
			thickness: 18,
		},
		{
			name:      "NameOnly",
			layer:     exampleBuild()[3],
			text:      "coils",
			thickness: 9,
		},
		{
			name:      "Description",
			layer:     exampleBuild()[2],
			text:      "VV: 30 cm\nvacuum vessel",
			thickness: 30,
		},
		{
			name: "FloatLiterals",
			layer: build.Layer{
				Name:           "fw",
				Thickness:      build.Float(5),
				FloatThickness: true,
				Composition:    build.Composition{{Material: "RAFM", Fraction: 1, FloatFraction: true}},
			},
			text:      "fw: 5.0 cm\nRAFM: 100.0%",
			thickness: 18,
		},
		{
			name: "IntegerLiterals",
			layer: build.Layer{
				Name:        "fw",
				Thickness:   build.Float(5),
				Composition: build.Composition{{Material: "RAFM", Fraction: 1}},
			},
			text:      "fw: 5 cm\nRAFM: 100%",
			thickness: 18,
		},
		{
			name:         "Clamped",
			layer:        build.Layer{Name: "breeder", Thickness: build.Float(1000)},
			maxThickness: 50,
			text:         "breeder: 1000 cm",
			thickness:    50,
		},
		{
			name:         "ClampWinsOverLines",
			layer:        exampleBuild()[0],
			maxThickness: 10,
			text:         "FW: 4 cm\nMF82H: 34.0%, He: 66.0%",
			thickness:    10,
		},
	} {
		t.Run(tc.name, func(t *testing.T) { check(t, tc) })
	}
}

func TestLayout(t *testing.T) {
	p := New(exampleBuild())
	layout, err := p.Layout()
	require.NoError(t, err)

	colors := DefaultColors(4)
	fill := func(i int) string { return colors[i] }
	height := 1.15 * 35

	type rect struct {
		Layer string
		X     float64
		Width float64
		Fill  string
	}
	actual := []rect{}
	for _, r := range layout.Rectangles {
		assert.InDelta(t, height, r.Height, 1e-9)
		actual = append(actual, rect{r.Layer, r.X, r.Width, hexString(r.Fill)})
	}
	expected := []rect{
		{"FW", 0, 18, fill(0)},
		{"VV", 18, 30, fill(2)},
		{"coils", 48, 9, fill(3)},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("rectangles mismatch (-expected +actual):\n%s", diff)
	}

	require.Len(t, layout.Labels, 3)
	assert.InDelta(t, 10, layout.Labels[0].X, 1e-9)
	assert.InDelta(t, height/2, layout.Labels[0].Y, 1e-9)
	assert.Equal(t, []string{"VV: 30 cm", "vacuum vessel"}, layout.Labels[1].Lines)
	assert.Equal(t, [2]float64{-1, 58}, layout.XLim)
	assert.InDelta(t, height+1, layout.YLim[1], 1e-9)
}

func TestLayoutInvalid(t *testing.T) {
	p := New(exampleBuild())
	p.Colors = []string{"not a color"}
	_, err := p.Layout()
	assert.Error(t, err)

	p = New(exampleBuild())
	p.MaxCharacters = 0
	_, err = p.Layout()
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ACC2D9")
	require.NoError(t, err)
	assert.Equal(t, "#acc2d9", hexString(c))

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", hexString(c))

	c, err = ParseColor("xkcd:windows blue")
	require.NoError(t, err)
	assert.Equal(t, "#3778bf", hexString(c))

	c, err = ParseColor("Dark Orange")
	require.NoError(t, err)
	assert.Equal(t, colornames.Darkorange, c)

	for _, value := range []string{"xkcd:unknown", "nope", "#12345", "#gggggg"} {
		_, err := ParseColor(value)
		assert.Error(t, err, value)
	}
}

func TestDefaultColorsCycle(t *testing.T) {
	colors := DefaultColors(len(palette) + 2)
	assert.Equal(t, palette[0].hex, colors[len(palette)])
	assert.Equal(t, palette[1].hex, colors[len(palette)+1])
}

func TestUserColorsCycle(t *testing.T) {
	p := New(exampleBuild())
	p.Colors = []string{"red", "#00ff00"}
	colors, err := p.ResolvedColors()
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#ff0000", "#00ff00"}, colors)
}

func TestWriteSVG(t *testing.T) {
	p := New(exampleBuild())
	p.Title = "Example Build"
	buf := &bytes.Buffer{}
	require.NoError(t, p.WriteSVG(buf))

	doc := svgDocument{}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Example Build", doc.Title)
	assert.Equal(t, "576.00pt", doc.Width)
	assert.Equal(t, "288.00pt", doc.Height)
	// background and three layers
	require.Len(t, doc.Rects, 4)
	assert.Equal(t, "#acc2d9", doc.Rects[1].Fill)
	// three labels and the title
	require.Len(t, doc.Texts, 4)
	assert.Len(t, doc.Texts[0].Spans, 2)
	assert.True(t, strings.HasPrefix(doc.Texts[0].Transform, "rotate(-90 "))
	assert.Equal(t, "Example Build", doc.Texts[3].Value)
}

func TestWritePNG(t *testing.T) {
	p := New(exampleBuild())
	buf := &bytes.Buffer{}
	require.NoError(t, p.WritePNG(buf))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b}, "background is white")
}

func TestRotateCounterClockwise(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	marked := color.RGBA{R: 0xff, A: 0xff}
	src.SetRGBA(0, 0, marked)

	dst := rotateCounterClockwise(src)
	assert.Equal(t, image.Rect(0, 0, 2, 3), dst.Bounds())
	assert.Equal(t, marked, dst.RGBAAt(0, 2), "top left corner goes to bottom left")
}

func TestRenderLines(t *testing.T) {
	img := renderLines([]string{"abc", "a"}, basicfont.Face7x13)
	assert.Equal(t, image.Rect(0, 0, 21, 26), img.Bounds())
}
