package web

import (
	"context"

	"github.com/svalinn/radialbuild/errors"
	"github.com/svalinn/radialbuild/openmc"
	"github.com/svalinn/radialbuild/toroidal"
)

type modelResponse struct {
	Files map[string]string `json:"files"`
	Cells openmc.CellMap    `json:"cells"`
}

func (h *handler) modelHandler(ctx context.Context, doc *toroidal.Document) (*modelResponse, error) {
	if len(doc.Materials) == 0 {
		return nil, errors.FormError{
			"reason":    errors.ErrInvalidForm.Error(),
			"materials": "inline materials are required",
		}
	}

	m, err := doc.Model("")
	if err != nil {
		return nil, errors.NewFormErrorFrom(err)
	}
	files, cells, err := m.Export(doc.TransportSettings(), extractQueryBool(ctx, "single_file"))
	if err != nil {
		return nil, errors.NewFormErrorFrom(err)
	}
	return &modelResponse{Files: files, Cells: cells}, nil
}
