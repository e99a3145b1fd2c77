package plot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// PNGDPI is the resolution of PNG output.
const PNGDPI = 200

// WritePNG renders the plot as PNG at PNGDPI.
func (p *Plot) WritePNG(w io.Writer) error {
	img, err := p.Image(PNGDPI)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image renders the plot into an image with dpi pixels per inch.
func (p *Plot) Image(dpi float64) (*image.RGBA, error) {
	layout, err := p.Layout()
	if err != nil {
		return nil, err
	}
	f := newFigure(layout, p.Size, dpi)

	img := image.NewRGBA(image.Rect(0, 0, int(math.Round(f.width)), int(math.Round(f.height))))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	edge := int(math.Max(1, math.Round(dpi/svgDPI)))
	for _, r := range layout.Rectangles {
		x0, y0 := f.point(r.X, r.Y+r.Height)
		x1, y1 := f.point(r.X+r.Width, r.Y)
		rect := image.Rect(round(x0), round(y0), round(x1), round(y1))
		draw.Draw(img, rect, image.Black, image.Point{}, draw.Src)
		draw.Draw(img, rect.Inset(edge), image.NewUniform(r.Fill), image.Point{}, draw.Src)
	}

	face := basicfont.Face7x13
	scale := f.fontSize(labelFontSize) / float64(face.Height)
	for _, label := range layout.Labels {
		cx, cy := f.point(label.X, label.Y)
		text := rotateCounterClockwise(renderLines(label.Lines, face))
		drawCentered(img, text, cx, cy, scale)
	}

	tx, ty := f.titlePosition()
	title := renderLines([]string{layout.Title}, face)
	titleScale := f.fontSize(titleFontSize) / float64(face.Height)
	drawCentered(img, title, tx, ty-float64(title.Bounds().Dy())*titleScale/2, titleScale)
	return img, nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// renderLines draws lines centered horizontally on a transparent image.
func renderLines(lines []string, face font.Face) *image.RGBA {
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	widths := make([]fixed.Int26_6, len(lines))
	maxWidth := fixed.I(1)
	for i, line := range lines {
		widths[i] = font.MeasureString(face, line)
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, maxWidth.Ceil(), lineHeight*len(lines)))
	drawer := font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	for i, line := range lines {
		drawer.Dot = fixed.Point26_6{
			X: (maxWidth - widths[i]) / 2,
			Y: fixed.I(i*lineHeight) + metrics.Ascent,
		}
		drawer.DrawString(line)
	}
	return img
}

func rotateCounterClockwise(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(y, b.Dx()-1-x, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// drawCentered scales src and draws it over dst centered at (cx, cy).
func drawCentered(dst draw.Image, src image.Image, cx, cy, scale float64) {
	w := float64(src.Bounds().Dx()) * scale
	h := float64(src.Bounds().Dy()) * scale
	rect := image.Rect(round(cx-w/2), round(cy-h/2), round(cx+w/2), round(cy+h/2))
	draw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
}
