package plot

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/build"
)

// Format of rendered plot.
type Format string

// Supported formats.
const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat ...
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(value)); f {
	case SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported plot format %q, use svg or png", value)
}

// CLITitle is the title used when a plot document does not give one.
const CLITitle = "Radial Build"

// Document is the YAML form of a plot.
type Document struct {
	Build         build.Build `yaml:"build"`
	Title         string      `yaml:"title"`
	Colors        []string    `yaml:"colors"`
	MaxCharacters int         `yaml:"max_characters"`
	MaxThickness  float64     `yaml:"max_thickness"`
	Size          [2]float64  `yaml:"size,flow"`
	Unit          string      `yaml:"unit"`
}

// Document returns YAML form of the plot with colors resolved.
func (p *Plot) Document() (Document, error) {
	colors, err := p.ResolvedColors()
	if err != nil {
		return Document{}, err
	}
	return Document{
		Build:         p.Build,
		Title:         p.Title,
		Colors:        colors,
		MaxCharacters: p.MaxCharacters,
		MaxThickness:  p.MaxThickness,
		Size:          p.Size,
		Unit:          p.Unit,
	}, nil
}

// Plot ...
func (d Document) Plot() *Plot {
	return &Plot{
		Build:         d.Build,
		Title:         d.Title,
		Colors:        d.Colors,
		MaxCharacters: d.MaxCharacters,
		MaxThickness:  d.MaxThickness,
		Size:          d.Size,
		Unit:          d.Unit,
	}
}

// SetDefaults fills every field but the build with its default, title
// with CLITitle.
func (d *Document) SetDefaults() {
	d.Title = CLITitle
	d.Colors = nil
	d.MaxCharacters = DefaultMaxCharacters
	d.MaxThickness = DefaultMaxThickness
	d.Size = DefaultSize
	d.Unit = DefaultUnit
}

// Decode reads plot document, fields it does not give keep their defaults.
// Title defaults to CLITitle.
func Decode(r io.Reader) (*Plot, error) {
	doc := Document{}
	doc.SetDefaults()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}
	if doc.Build == nil {
		return nil, fmt.Errorf("[plot] document has no build")
	}
	p := doc.Plot()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads plot document from path.
func Load(path string) (*Plot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

// FileName is the title without spaces.
func (p *Plot) FileName() string {
	return strings.ReplaceAll(p.Title, " ", "")
}

// Encode writes YAML document of the plot.
func (p *Plot) Encode(w io.Writer) error {
	doc, err := p.Document()
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}

// SaveYAML writes the plot document to <title without spaces>.yml in dir.
func (p *Plot) SaveYAML(dir string) (string, error) {
	buf := &bytes.Buffer{}
	if err := p.Encode(buf); err != nil {
		return "", err
	}
	return writeFile(dir, p.FileName()+".yml", buf.Bytes())
}

// Render writes plot in the given format.
func (p *Plot) Render(w io.Writer, f Format) error {
	switch f {
	case SVG:
		return p.WriteSVG(w)
	case PNG:
		return p.WritePNG(w)
	}
	return fmt.Errorf("unsupported plot format %q", f)
}

// Save renders the plot into dir. Empty name defaults to the title without spaces.
func (p *Plot) Save(dir, name string, f Format) (string, error) {
	if name == "" {
		name = p.FileName()
	}
	buf := &bytes.Buffer{}
	if err := p.Render(buf, f); err != nil {
		return "", err
	}
	return writeFile(dir, name+"."+string(f), buf.Bytes())
}

func writeFile(dir, name string, content []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	log.Infof("written %s", path)
	return path, nil
}
