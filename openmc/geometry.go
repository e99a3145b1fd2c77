package openmc

import (
	"encoding/xml"
	"strconv"

	"github.com/svalinn/radialbuild/format"
	"github.com/svalinn/radialbuild/geometry"
)

const rootUniverse = 1

type geometryXML struct {
	XMLName  xml.Name     `xml:"geometry"`
	Cells    []cellXML    `xml:"cell"`
	Surfaces []surfaceXML `xml:"surface"`
}

type cellXML struct {
	ID       geometry.CellID `xml:"id,attr"`
	Name     string          `xml:"name,attr,omitempty"`
	Material string          `xml:"material,attr"`
	Region   string          `xml:"region,attr"`
	Universe int             `xml:"universe,attr"`
}

type surfaceXML struct {
	ID       geometry.SurfaceID `xml:"id,attr"`
	Name     string             `xml:"name,attr,omitempty"`
	Type     string             `xml:"type,attr"`
	Coeffs   string             `xml:"coeffs,attr"`
	Boundary string             `xml:"boundary,attr,omitempty"`
}

func convertGeometry(g geometry.Geometry) (geometryXML, error) {
	result := geometryXML{}

	seenCells := map[geometry.CellID]bool{}
	for _, cell := range g.Cells {
		if cell.ID <= 0 || seenCells[cell.ID] {
			return geometryXML{}, CellIDError(cell.ID, "cell id must be positive and unique")
		}
		seenCells[cell.ID] = true
		if len(cell.Region) == 0 {
			return geometryXML{}, CellIDError(cell.ID, "cell %s has no region", cell.Name)
		}

		materialAttr := "void"
		if !cell.IsVoid() {
			if cell.Fill.ID <= 0 {
				return geometryXML{}, CellIDError(cell.ID, "fill %s has no id", cell.Fill.Name)
			}
			materialAttr = strconv.Itoa(cell.Fill.ID)
		}
		result.Cells = append(result.Cells, cellXML{
			ID:       cell.ID,
			Name:     cell.Name,
			Material: materialAttr,
			Region:   cell.Region.String(),
			Universe: rootUniverse,
		})
	}

	for _, surface := range g.Surfaces() {
		if surface.ID <= 0 {
			return geometryXML{}, SurfaceIDError(surface.ID, "surface %s has no id", surface.Name)
		}
		boundary := ""
		if surface.Boundary != geometry.Transmission {
			boundary = string(surface.Boundary)
		}
		result.Surfaces = append(result.Surfaces, surfaceXML{
			ID:       surface.ID,
			Name:     surface.Name,
			Type:     surface.Identifier,
			Coeffs:   format.Join(surface.Arguments),
			Boundary: boundary,
		})
	}
	return result, nil
}
