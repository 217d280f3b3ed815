// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// fakeScorer scores every document by its text length.
type fakeScorer struct {
	calls atomic.Int32
}

func (f *fakeScorer) Score(_ context.Context, doc types.Document, _ types.Options) types.ScoreResult {
	f.calls.Add(1)
	return types.ScoreResult{
		Score: min(len(doc.Text), 100),
		Rules: types.RuleSet{types.RuleContact: types.TriTrue, types.RulePrintableColours: types.TriNull},
		Meta:  types.Meta{DocType: types.DocRider},
	}
}

func setup(t *testing.T) (inDir, outDir string) {
	t.Helper()
	inDir = t.TempDir()
	outDir = filepath.Join(t.TempDir(), "reports")
	files := map[string]string{
		"amics.txt":     "technical rider",
		"soroll.txt":    "patch list",
		"scan.pdf":      "%PDF-1.4",
		"notes.md":      "ignored",
		"old-rider.TXT": "stage plot",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(inDir, name), []byte(body), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(inDir, "nested.txt"), 0o755))
	return inDir, outDir
}

func TestCollect(t *testing.T) {
	inDir, _ := setup(t)
	paths, err := Collect(inDir)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"amics.txt", "old-rider.TXT", "scan.pdf", "soroll.txt"}, names)
}

func TestCollect_MissingDir(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorContains(t, err, "reading input directory")
}

func TestRun(t *testing.T) {
	inDir, outDir := setup(t)
	paths, err := Collect(inDir)
	require.NoError(t, err)

	scorer := &fakeScorer{}
	var out bytes.Buffer
	r := &Runner{Scorer: scorer, OutDir: outDir, Profile: types.ProfileVersion, Limit: 2, Out: &out}

	res := r.Run(context.Background(), paths)
	assert.Equal(t, Result{Scored: 3, Failed: 1}, res)
	assert.True(t, res.HasFailures())
	assert.Equal(t, 4, res.Total())
	assert.Contains(t, out.String(), "failed:  scan.pdf (no converter configured")
	assert.Contains(t, out.String(), "scored:  amics.txt (score 15, rider)")
	assert.Contains(t, out.String(), "Batch summary: 3 scored, 0 skipped, 1 failed (total: 4)")

	data, err := os.ReadFile(ReportPath(outDir, filepath.Join(inDir, "amics.txt")))
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, types.ProfileVersion, report["profile"])
	assert.Equal(t, 15, report["score"])
	assert.True(t, strings.Contains(string(data), "printable_colours: null"))

	out.Reset()
	res = r.Run(context.Background(), paths)
	assert.Equal(t, Result{Skipped: 3, Failed: 1}, res)
	assert.Equal(t, int32(3), scorer.calls.Load())
}

func TestReportPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "amics-score.yaml"), ReportPath("out", "/in/amics.pdf"))
}
