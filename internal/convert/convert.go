// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts text from rider PDFs with pluggable backends
// and loads score inputs from disk.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/rider-engine/internal/container"
	"github.com/pdiddy/rider-engine/internal/shell"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// Backend names accepted by New.
const (
	BackendPdftotext  = "pdftotext"
	BackendMarkitdown = "markitdown"
)

// Converter transforms a PDF file into plain text. Different backends
// (pdftotext, markitdown) implement this interface.
type Converter interface {
	// Convert reads a PDF at pdfPath and returns its text.
	Convert(ctx context.Context, pdfPath string) (string, error)
}

// New returns the converter for a backend name.
func New(ctx context.Context, backend string) (Converter, error) {
	switch backend {
	case "", BackendPdftotext:
		c, err := NewPdftotextConverter(shell.Default)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMarkitdown:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return nil, err
		}
		c, err := NewMarkitdownConverter(ctx, rt)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown converter %q (want %s or %s)", backend, BackendPdftotext, BackendMarkitdown)
	}
}

// IsInput reports whether path has an extension Load accepts.
func IsInput(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".pdf":
		return true
	}
	return false
}

// Load builds the engine input for one file. Text files are read as-is and
// carry no PDF path; PDFs are converted and keep their path so size and
// colours can be inspected.
func Load(ctx context.Context, c Converter, path string) (types.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return types.Document{}, fmt.Errorf("reading %s: %w", path, err)
		}
		return types.Document{Text: string(data)}, nil
	case ".pdf":
		if c == nil {
			return types.Document{}, fmt.Errorf("no converter configured for %s", path)
		}
		text, err := c.Convert(ctx, path)
		if err != nil {
			return types.Document{}, err
		}
		return types.Document{Text: text, Path: path}, nil
	default:
		return types.Document{}, fmt.Errorf("unsupported input %s: want .txt or .pdf", path)
	}
}
