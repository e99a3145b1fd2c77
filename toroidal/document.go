package toroidal

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/build"
	"github.com/svalinn/radialbuild/material"
	"github.com/svalinn/radialbuild/openmc"
)

// DefaultFileName of a saved model document.
const DefaultFileName = "toroidal_model.yml"

// InputMaterialsFileName is written next to the document when the library
// was not read from a file.
const InputMaterialsFileName = "input_materials.xml"

// Document is the YAML form of a model. Materials are referenced by path,
// inline materials are accepted on decode only.
type Document struct {
	Build         build.Build      `yaml:"build"`
	MajorRadius   float64          `yaml:"major_rad"`
	MinorRadiusZ  float64          `yaml:"minor_rad_z"`
	MinorRadiusXY float64          `yaml:"minor_rad_xy"`
	MaterialsPath string           `yaml:"materials_path,omitempty"`
	Materials     material.Library `yaml:"materials,omitempty"`
	Settings      *openmc.Settings `yaml:"settings,omitempty"`
}

// Document returns YAML form of the model.
func (m *Model) Document() Document {
	return Document{
		Build:         m.Build,
		MajorRadius:   m.MajorRadius,
		MinorRadiusZ:  m.MinorRadiusZ,
		MinorRadiusXY: m.MinorRadiusXY,
		MaterialsPath: m.LibraryPath,
	}
}

// Save writes the model document to path, DefaultFileName when path is
// empty. A library without path is written to input_materials.xml next to
// the document first.
func (m *Model) Save(path string) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	if m.LibraryPath == "" {
		libraryPath := filepath.Join(filepath.Dir(path), InputMaterialsFileName)
		if err := writeLibrary(libraryPath, m.Library); err != nil {
			return "", err
		}
		m.LibraryPath = InputMaterialsFileName
	}

	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.Document()); err != nil {
		return "", errors.Wrap(err, "encode model")
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	log.Infof("written %s", path)
	return path, nil
}

func writeLibrary(path string, library material.Library) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	defer file.Close()
	if err := library.WriteXML(file); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	log.Infof("written %s", path)
	return nil
}

// DecodeDocument reads model document.
func DecodeDocument(r io.Reader) (Document, error) {
	doc := Document{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return Document{}, errors.New("[toroidal] empty model document")
		}
		return Document{}, err
	}
	return doc, nil
}

// Model builds the model of the document. Relative materials_path is
// resolved against baseDir. Inline materials take precedence over the path.
func (d Document) Model(baseDir string) (*Model, error) {
	library := d.Materials
	libraryPath := ""
	if len(library) == 0 {
		if d.MaterialsPath == "" {
			return nil, errors.New("[toroidal] document gives neither materials nor materials_path")
		}
		libraryPath = d.MaterialsPath
		fullPath := libraryPath
		if !filepath.IsAbs(fullPath) {
			fullPath = filepath.Join(baseDir, fullPath)
		}
		var err error
		library, err = material.ReadXML(fullPath)
		if err != nil {
			return nil, err
		}
	} else if err := library.Validate(); err != nil {
		return nil, err
	}

	m, err := NewModel(d.Build, d.MajorRadius, d.MinorRadiusZ, d.MinorRadiusXY, library)
	if err != nil {
		return nil, err
	}
	m.LibraryPath = libraryPath
	return m, nil
}

// TransportSettings returns document settings, defaults when absent.
func (d Document) TransportSettings() openmc.Settings {
	if d.Settings == nil {
		return openmc.DefaultSettings()
	}
	return *d.Settings
}

// Load reads model document from path.
func Load(path string) (*Model, Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Document{}, err
	}
	defer file.Close()

	doc, err := DecodeDocument(file)
	if err != nil {
		return nil, Document{}, errors.Wrapf(err, "load %s", path)
	}
	m, err := doc.Model(filepath.Dir(path))
	if err != nil {
		return nil, Document{}, errors.Wrapf(err, "load %s", path)
	}
	return m, doc, nil
}
