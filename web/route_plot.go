package web

import (
	"bytes"
	"context"

	"github.com/svalinn/radialbuild/errors"
	"github.com/svalinn/radialbuild/parastell"
	"github.com/svalinn/radialbuild/plot"
)

var contentTypes = map[plot.Format]string{
	plot.SVG: "image/svg+xml",
	plot.PNG: "image/png",
}

func (h *handler) healthHandler(ctx context.Context) (map[string]string, error) {
	return map[string]string{"status": "ok"}, nil
}

func (h *handler) plotHandler(ctx context.Context, doc *plot.Document) (*fileResponse, error) {
	if doc.Build == nil {
		return nil, errors.FormError{"reason": errors.ErrInvalidForm.Error(), "build": "build is required"}
	}
	return renderPlot(ctx, doc.Plot())
}

func (h *handler) parastellHandler(ctx context.Context, b *parastell.Build) (*fileResponse, error) {
	if err := b.Validate(); err != nil {
		return nil, errors.NewFormErrorFrom(err)
	}
	phi, err := extractQueryFloat(ctx, "phi")
	if err != nil {
		return nil, err
	}
	theta, err := extractQueryFloat(ctx, "theta")
	if err != nil {
		return nil, err
	}
	slice, err := b.Slice(phi, theta)
	if err != nil {
		return nil, errors.NewFormErrorFrom(err)
	}

	p := plot.New(slice)
	p.Title = extractQueryString(ctx, "title", plot.CLITitle)
	return renderPlot(ctx, p)
}

func renderPlot(ctx context.Context, p *plot.Plot) (*fileResponse, error) {
	format, err := plot.ParseFormat(extractQueryString(ctx, "format", string(plot.SVG)))
	if err != nil {
		return nil, errors.FormError{"reason": errors.ErrInvalidForm.Error(), "format": err.Error()}
	}
	if err := p.Validate(); err != nil {
		return nil, errors.NewFormErrorFrom(err)
	}

	buf := &bytes.Buffer{}
	if err := p.Render(buf, format); err != nil {
		return nil, err
	}
	return &fileResponse{contentType: contentTypes[format], body: buf.Bytes()}, nil
}
