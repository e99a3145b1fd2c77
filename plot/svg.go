package plot

import (
	"encoding/xml"
	"fmt"
	"io"
)

const (
	svgDPI        = 72
	labelFontSize = 10
	titleFontSize = 12
	lineSpacing   = 1.2
)

type svgDocument struct {
	XMLName xml.Name  `xml:"svg"`
	Xmlns   string    `xml:"xmlns,attr"`
	Width   string    `xml:"width,attr"`
	Height  string    `xml:"height,attr"`
	ViewBox string    `xml:"viewBox,attr"`
	Title   string    `xml:"title"`
	Rects   []svgRect `xml:"rect"`
	Texts   []svgText `xml:"text"`
}

type svgRect struct {
	X           string `xml:"x,attr"`
	Y           string `xml:"y,attr"`
	Width       string `xml:"width,attr"`
	Height      string `xml:"height,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr,omitempty"`
	StrokeWidth string `xml:"stroke-width,attr,omitempty"`
}

type svgText struct {
	X          string     `xml:"x,attr"`
	Y          string     `xml:"y,attr"`
	FontSize   string     `xml:"font-size,attr"`
	FontFamily string     `xml:"font-family,attr"`
	Anchor     string     `xml:"text-anchor,attr"`
	Baseline   string     `xml:"dominant-baseline,attr,omitempty"`
	Transform  string     `xml:"transform,attr,omitempty"`
	Value      string     `xml:",chardata"`
	Spans      []svgTSpan `xml:"tspan"`
}

type svgTSpan struct {
	X     string `xml:"x,attr"`
	Dy    string `xml:"dy,attr"`
	Value string `xml:",chardata"`
}

func svgNumber(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WriteSVG renders the plot as SVG, one unit per point.
func (p *Plot) WriteSVG(w io.Writer) error {
	layout, err := p.Layout()
	if err != nil {
		return err
	}
	f := newFigure(layout, p.Size, svgDPI)

	doc := svgDocument{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   svgNumber(f.width) + "pt",
		Height:  svgNumber(f.height) + "pt",
		ViewBox: fmt.Sprintf("0 0 %s %s", svgNumber(f.width), svgNumber(f.height)),
		Title:   layout.Title,
		Rects: []svgRect{{
			X: "0", Y: "0", Width: svgNumber(f.width), Height: svgNumber(f.height), Fill: "#ffffff",
		}},
	}

	for _, r := range layout.Rectangles {
		x0, y0 := f.point(r.X, r.Y+r.Height)
		x1, y1 := f.point(r.X+r.Width, r.Y)
		doc.Rects = append(doc.Rects, svgRect{
			X:           svgNumber(x0),
			Y:           svgNumber(y0),
			Width:       svgNumber(x1 - x0),
			Height:      svgNumber(y1 - y0),
			Fill:        hexString(r.Fill),
			Stroke:      "#000000",
			StrokeWidth: "1",
		})
	}

	fontSize := f.fontSize(labelFontSize)
	for _, label := range layout.Labels {
		cx, cy := f.point(label.X, label.Y)
		text := svgText{
			X:          svgNumber(cx),
			Y:          svgNumber(cy),
			FontSize:   svgNumber(fontSize),
			FontFamily: "sans-serif",
			Anchor:     "middle",
			Baseline:   "central",
			Transform:  fmt.Sprintf("rotate(-90 %s %s)", svgNumber(cx), svgNumber(cy)),
		}
		firstOffset := -float64(len(label.Lines)-1) / 2 * lineSpacing * fontSize
		for i, line := range label.Lines {
			dy := lineSpacing * fontSize
			if i == 0 {
				dy = firstOffset
			}
			text.Spans = append(text.Spans, svgTSpan{X: svgNumber(cx), Dy: svgNumber(dy), Value: line})
		}
		doc.Texts = append(doc.Texts, text)
	}

	tx, ty := f.titlePosition()
	doc.Texts = append(doc.Texts, svgText{
		X:          svgNumber(tx),
		Y:          svgNumber(ty),
		FontSize:   svgNumber(f.fontSize(titleFontSize)),
		FontFamily: "sans-serif",
		Anchor:     "middle",
		Value:      layout.Title,
	})

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
