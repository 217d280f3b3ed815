// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rider-engine/pkg/types"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProfile_Overrides(t *testing.T) {
	path := writeProfile(t, `version: "venue-tuned"
weights:
  contact: 20
thresholds:
  compression_factor: 0.5
  recent_days: 365
`)
	p, err := LoadProfile(path)
	require.NoError(t, err)

	def := types.DefaultProfile()
	assert.Equal(t, "venue-tuned", p.Version)
	assert.Equal(t, 20, p.Weights[types.RuleContact])
	assert.Equal(t, def.Weights[types.RulePatchList], p.Weights[types.RulePatchList])
	assert.InDelta(t, 0.5, p.Thresholds.CompressionFactor, 1e-9)
	assert.Equal(t, 365, p.Thresholds.RecentDays)
	assert.Equal(t, def.Thresholds.NotRiderCap, p.Thresholds.NotRiderCap)
}

func TestLoadProfile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown rule", "weights:\n  stage_lights: 3\n", `unknown rule "stage_lights"`},
		{"negative weight", "weights:\n  contact: -1\n", "negative weight"},
		{"bad factor", "thresholds:\n  compression_factor: 1.5\n", "compression_factor"},
		{"inverted confidence", "thresholds:\n  maybe_rider_confidence: 70\n", "maybe_rider_confidence"},
		{"malformed", "weights: [", "failed to parse profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfile(writeProfile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile")
}

func TestValidateProfile_Default(t *testing.T) {
	assert.NoError(t, ValidateProfile(types.DefaultProfile()))
}
