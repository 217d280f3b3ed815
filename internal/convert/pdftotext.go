// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"

	"github.com/pdiddy/rider-engine/internal/shell"
)

const binPdftotext = "pdftotext"

// PdftotextConverter runs poppler's pdftotext in layout mode, which keeps
// patch-list columns on one line.
type PdftotextConverter struct {
	exec shell.Executor
}

// NewPdftotextConverter checks that pdftotext is on PATH.
func NewPdftotextConverter(exec shell.Executor) (*PdftotextConverter, error) {
	if _, err := exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextConverter{exec: exec}, nil
}

// Convert returns the UTF-8 text layer of the PDF.
func (p *PdftotextConverter) Convert(ctx context.Context, pdfPath string) (string, error) {
	out, err := p.exec.Output(ctx, binPdftotext, "-layout", "-enc", "UTF-8", pdfPath, "-")
	if err != nil {
		return "", fmt.Errorf("converting %s with pdftotext: %w", pdfPath, err)
	}
	return string(out), nil
}
