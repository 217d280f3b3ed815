// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch scores a directory of riders and writes one YAML report
// per input.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/rider-engine/internal/convert"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// reportSuffix is appended to the input's base name to form its report.
const reportSuffix = "-score.yaml"

// DefaultLimit bounds concurrent scoring when Runner.Limit is unset.
const DefaultLimit = 4

// Status is the outcome of one input.
type Status int

const (
	StatusScored Status = iota
	StatusSkipped
	StatusFailed
)

// Result holds the outcome of a batch run.
type Result struct {
	Scored  int
	Skipped int
	Failed  int
}

// Total returns the number of inputs processed.
func (r Result) Total() int {
	return r.Scored + r.Skipped + r.Failed
}

// HasFailures reports whether any input failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Scorer scores one document.
type Scorer interface {
	Score(ctx context.Context, doc types.Document, opts types.Options) types.ScoreResult
}

// Report is the YAML file written for each scored input.
type Report struct {
	Input   string `yaml:"input"`
	Profile string `yaml:"profile"`

	types.ScoreResult `yaml:",inline"`
}

// Runner scores files and writes their reports to OutDir.
type Runner struct {
	Scorer    Scorer
	Converter convert.Converter
	Options   types.Options
	// Profile labels each report with the profile version used.
	Profile string
	OutDir  string
	// Limit bounds concurrent inputs. Zero means DefaultLimit.
	Limit  int
	Out    io.Writer
	Logger *zap.Logger

	mu sync.Mutex
}

// ReportPath returns where the report for input is written.
func ReportPath(outDir, input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+reportSuffix)
}

// Collect lists the .txt and .pdf files directly inside dir, sorted.
func Collect(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !convert.IsInput(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run scores every path, printing per-file status and a summary to Out.
func (r *Runner) Run(ctx context.Context, paths []string) Result {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var result Result
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, p := range paths {
		g.Go(func() error {
			status := r.ScoreFile(ctx, p)
			r.mu.Lock()
			defer r.mu.Unlock()
			switch status {
			case StatusScored:
				result.Scored++
			case StatusSkipped:
				result.Skipped++
			case StatusFailed:
				result.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	r.printf("\nBatch summary: %d scored, %d skipped, %d failed (total: %d)\n",
		result.Scored, result.Skipped, result.Failed, result.Total())
	return result
}

// ScoreFile scores one input unless its report is already newer than it.
func (r *Runner) ScoreFile(ctx context.Context, path string) Status {
	name := filepath.Base(path)
	reportPath := ReportPath(r.OutDir, path)

	if upToDate(path, reportPath) {
		r.printf("skipped: %s (report up to date)\n", name)
		return StatusSkipped
	}

	doc, err := convert.Load(ctx, r.Converter, path)
	if err != nil {
		return r.fail(name, err)
	}

	res := r.Scorer.Score(ctx, doc, r.Options)
	data, err := yaml.Marshal(Report{Input: path, Profile: r.Profile, ScoreResult: res})
	if err != nil {
		return r.fail(name, err)
	}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return r.fail(name, err)
	}
	if err := os.WriteFile(reportPath, data, 0o644); err != nil {
		return r.fail(name, err)
	}

	r.logger().Debug("scored", zap.String("input", path), zap.Int("score", res.Score),
		zap.String("doc_type", string(res.Meta.DocType)))
	r.printf("scored:  %s (score %d, %s)\n", name, res.Score, res.Meta.DocType)
	return StatusScored
}

func (r *Runner) fail(name string, err error) Status {
	r.logger().Warn("scoring failed", zap.String("input", name), zap.Error(err))
	r.printf("failed:  %s (%v)\n", name, err)
	return StatusFailed
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// upToDate reports whether report exists and is not older than input.
func upToDate(input, report string) bool {
	ri, err := os.Stat(report)
	if err != nil {
		return false
	}
	ii, err := os.Stat(input)
	if err != nil {
		return false
	}
	return !ri.ModTime().Before(ii.ModTime())
}
