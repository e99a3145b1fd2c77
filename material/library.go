package material

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Library is an ordered collection of materials. Names are neither required
// nor unique, lookups by name return the first match.
type Library []Material

type materialsXML struct {
	XMLName       xml.Name   `xml:"materials"`
	CrossSections string     `xml:"cross_sections,omitempty"`
	Materials     []Material `xml:"material"`
}

// ReadXML reads library from materials.xml file.
func ReadXML(path string) (Library, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read materials library")
	}
	defer file.Close()

	library, err := ParseXML(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return library, nil
}

// ParseXML parses materials.xml content.
func ParseXML(r io.Reader) (Library, error) {
	doc := materialsXML{}
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	library := Library(doc.Materials)
	if err := library.Validate(); err != nil {
		return nil, err
	}
	return library, nil
}

// MarshalXML writes library as <materials> element.
func (l Library) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "materials"}
	return e.EncodeElement(struct {
		Materials []Material `xml:"material"`
	}{Materials: []Material(l)}, start)
}

// WriteXML writes library in materials.xml format.
func (l Library) WriteXML(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(l); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ByName returns the first material named name.
func (l Library) ByName(name string) (Material, error) {
	for _, mat := range l {
		if mat.Name == name {
			return mat, nil
		}
	}
	return Material{}, fmt.Errorf("no material name %s was found in the library", name)
}

// MaxID returns the highest material id in the library, 0 for empty library.
func (l Library) MaxID() int {
	maxID := 0
	for _, mat := range l {
		if mat.ID > maxID {
			maxID = mat.ID
		}
	}
	return maxID
}

// Validate checks ids are unique and every material has usable composition.
func (l Library) Validate() error {
	seenIDs := map[int]bool{}
	for _, mat := range l {
		if mat.ID <= 0 {
			return newMaterialError(mat.Name, "id must be positive, got %d", mat.ID)
		}
		if seenIDs[mat.ID] {
			return newMaterialError(mat.Name, "duplicated id %d", mat.ID)
		}
		seenIDs[mat.ID] = true

		constituents := mat.constituents()
		if len(constituents) == 0 {
			return newMaterialError(mat.Name, "no nuclides or elements")
		}
		for _, c := range constituents {
			if c.Ao != nil && c.Wo != nil {
				return newMaterialError(mat.Name, "%s %s has both ao and wo", c.kind(), c.Name)
			}
			if c.Ao == nil && c.Wo == nil {
				return newMaterialError(mat.Name, "%s %s has neither ao nor wo", c.kind(), c.Name)
			}
			if c.element {
				if _, err := ElementMass(c.Name); err != nil {
					return newMaterialError(mat.Name, "%s", err.Error())
				}
			}
		}
	}
	return nil
}
