// Package openmc serializes geometry, materials and settings into the XML
// input files of the OpenMC transport engine.
package openmc

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/svalinn/radialbuild/config"
	"github.com/svalinn/radialbuild/geometry"
	"github.com/svalinn/radialbuild/material"
)

var log = config.NamedLogger("openmc")

const (
	materialsXMLFile = "materials.xml"
	geometryXMLFile  = "geometry.xml"
	settingsXMLFile  = "settings.xml"
	modelXMLFile     = "model.xml"
)

// Input is everything needed to write transport engine input.
type Input struct {
	Geometry  geometry.Geometry
	Materials material.Library
	Settings  Settings
}

type modelXML struct {
	XMLName   xml.Name         `xml:"model"`
	Materials material.Library `xml:"materials"`
	Geometry  geometryXML      `xml:"geometry"`
	Settings  settingsXML      `xml:"settings"`
}

// Files returns materials.xml, geometry.xml and settings.xml content by file name.
func (in Input) Files() (map[string]string, error) {
	geometryData, err := in.convert()
	if err != nil {
		return nil, err
	}

	files := map[string]string{}
	for fileName, value := range map[string]interface{}{
		materialsXMLFile: in.Materials,
		geometryXMLFile:  geometryData,
		settingsXMLFile:  convertSettings(in.Settings),
	} {
		content, err := marshal(value)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize %s", fileName)
		}
		files[fileName] = content
	}

	for _, fileName := range sortedKeys(files) {
		log.Debugf("%s:\n%s", fileName, files[fileName])
	}
	return files, nil
}

// ModelFile returns single model.xml holding materials, geometry and settings.
func (in Input) ModelFile() (map[string]string, error) {
	geometryData, err := in.convert()
	if err != nil {
		return nil, err
	}
	content, err := marshal(modelXML{
		Materials: in.Materials,
		Geometry:  geometryData,
		Settings:  convertSettings(in.Settings),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "serialize %s", modelXMLFile)
	}
	log.Debugf("%s:\n%s", modelXMLFile, content)
	return map[string]string{modelXMLFile: content}, nil
}

func (in Input) convert() (geometryXML, error) {
	if err := in.Settings.Validate(); err != nil {
		return geometryXML{}, err
	}
	if err := checkMaterials(in.Geometry, in.Materials); err != nil {
		return geometryXML{}, err
	}
	return convertGeometry(in.Geometry)
}

func checkMaterials(g geometry.Geometry, materials material.Library) error {
	ids := map[int]bool{}
	for _, mat := range materials {
		if mat.ID <= 0 || ids[mat.ID] {
			return MaterialIDError(mat.ID, "material id must be positive and unique")
		}
		ids[mat.ID] = true
	}
	for _, cell := range g.Cells {
		if !cell.IsVoid() && !ids[cell.Fill.ID] {
			return MaterialIDError(cell.Fill.ID, "fill of cell %s is missing in materials", cell.Name)
		}
	}
	return nil
}

func marshal(value interface{}) (string, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return "", err
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

// WriteFiles writes files into dir, creating it when needed.
func WriteFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, fileName := range sortedKeys(files) {
		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, []byte(files[fileName]), 0644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		log.Infof("written %s", path)
	}
	return nil
}

// WriteTo writes a single file content to w.
func WriteTo(w io.Writer, files map[string]string, fileName string) error {
	content, found := files[fileName]
	if !found {
		return errors.Errorf("no %s among serialized files", fileName)
	}
	_, err := io.WriteString(w, content)
	return err
}

func sortedKeys(files map[string]string) []string {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
