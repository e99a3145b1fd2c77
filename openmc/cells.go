package openmc

import (
	"encoding/json"
	"sort"

	"github.com/svalinn/radialbuild/geometry"
)

const cellsJSONFile = "cells.json"

// CellInfo describes where a layer ended up in the serialized model.
type CellInfo struct {
	CellID     geometry.CellID `json:"cell_id"`
	MaterialID *int            `json:"material_id"`
	Material   string          `json:"material"`
}

// CellMap maps layer names, plasma_cell and vac_cell to their cells.
type CellMap map[string]CellInfo

// NewCellMap ...
func NewCellMap(cells map[string]*geometry.Cell) CellMap {
	result := CellMap{}
	for name, cell := range cells {
		info := CellInfo{CellID: cell.ID, Material: "void"}
		if !cell.IsVoid() {
			id := cell.Fill.ID
			info.MaterialID = &id
			info.Material = cell.Fill.Name
		}
		result[name] = info
	}
	return result
}

// Names returns layer names ordered by cell id.
func (c CellMap) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool { return c[names[i]].CellID < c[names[j]].CellID })
	return names
}

// File returns cells.json content keyed by its file name.
func (c CellMap) File() (map[string]string, error) {
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return map[string]string{cellsJSONFile: string(content) + "\n"}, nil
}
