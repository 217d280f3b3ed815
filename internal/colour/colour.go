// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package colour decides whether a PDF prints well in black and white by
// listing its embedded images with poppler's pdfimages.
package colour

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/rider-engine/internal/shell"
	"github.com/pdiddy/rider-engine/pkg/types"
)

const (
	binPdfimages = "pdfimages"

	// DefaultTimeout bounds one pdfimages run.
	DefaultTimeout = 5 * time.Second
)

// monoNameRe matches file names that declare a black-and-white rendition.
var monoNameRe = regexp.MustCompile(`(?i)(?:^|[\s_.\-])(?:b&?w|bn|byn|mono|monochrome|gr[ae]yscale|blanc[\s_\-]?i[\s_\-]?negre|blanco[\s_\-]?y[\s_\-]?negro|black[\s_\-]?(?:and|&)?[\s_\-]?white)(?:$|[\s_.\-])`)

// Result is the outcome of one probe.
type Result struct {
	// Value is true when the document is printable in black and white,
	// false when a colour image was found and null when the probe could
	// not run.
	Value types.Tri
	// Images and Coloured count the embedded images inspected.
	Images   int
	Coloured int
	// Reason explains a null or filename-derived result.
	Reason string
}

// Partial grades the result: 100 printable, 40 colour, 60 unknown.
func (r Result) Partial() int {
	switch r.Value {
	case types.TriTrue:
		return 100
	case types.TriFalse:
		return 40
	default:
		return 60
	}
}

// Probe runs pdfimages through an executor.
type Probe struct {
	exec    shell.Executor
	timeout time.Duration
}

// Option configures a Probe.
type Option func(*Probe)

// WithExecutor replaces the command executor.
func WithExecutor(e shell.Executor) Option {
	return func(p *Probe) { p.exec = e }
}

// WithTimeout sets the per-run timeout. Non-positive values keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(p *Probe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewProbe returns a probe backed by the OS executor.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{exec: shell.Default, timeout: DefaultTimeout}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Check inspects the PDF at path. It never fails: an empty path, a missing
// tool, a timeout or unreadable output all yield a null result.
func (p *Probe) Check(ctx context.Context, path string) Result {
	if path == "" {
		return Result{Reason: "no file path"}
	}
	if monoNameRe.MatchString(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))) {
		return Result{Value: types.TriTrue, Reason: "file name declares black and white"}
	}
	if _, err := p.exec.LookPath(binPdfimages); err != nil {
		return Result{Reason: fmt.Sprintf("%s not available: %v", binPdfimages, err)}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.exec.Output(ctx, binPdfimages, "-list", path)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Reason: fmt.Sprintf("%s timed out after %s", binPdfimages, p.timeout)}
		}
		return Result{Reason: fmt.Sprintf("running %s: %v", binPdfimages, err)}
	}

	images, coloured, err := parseList(out)
	if err != nil {
		return Result{Reason: err.Error()}
	}
	return Result{
		Value:    types.TriOf(coloured == 0),
		Images:   images,
		Coloured: coloured,
	}
}

// parseList reads the table printed by pdfimages -list. Only rows of type
// image count; masks are always grey.
func parseList(out []byte) (images, coloured int, err error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	header := false
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "---") {
			continue
		}
		if fields[0] == "page" {
			header = true
			continue
		}
		if len(fields) < 7 {
			continue
		}
		if fields[2] != "image" {
			continue
		}
		images++
		if !grey(fields[5], fields[6]) {
			coloured++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, fmt.Errorf("reading %s output: %w", binPdfimages, err)
	}
	if !header {
		return 0, 0, fmt.Errorf("unexpected %s output", binPdfimages)
	}
	return images, coloured, nil
}

// grey reports whether a pdfimages colour space is single-channel grey.
func grey(space, comp string) bool {
	switch space {
	case "gray":
		return true
	case "icc", "sep":
		return comp == "1"
	default:
		return false
	}
}
