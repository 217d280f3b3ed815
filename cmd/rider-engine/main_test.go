// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rider-engine/pkg/types"
)

func TestParseNow(t *testing.T) {
	today := time.Date(2026, 10, 19, 17, 45, 0, 0, time.Local)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		{in: "none", want: time.Time{}},
		{in: "2025-03-01", want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{in: "01/03/2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNow(tt.in, today)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestPrintResult(t *testing.T) {
	compact := "Version: v1.0 (2026-10-19)"
	res := types.ScoreResult{
		Score:    82,
		Rules:    types.RuleSet{types.RuleContact: types.TriTrue, types.RulePrintableColours: types.TriNull},
		Partials: types.PartialSet{types.RuleContact: 100, types.RulePrintableColours: 60},
		Comments: []string{"Add a version number or the date of the last update."},
		Meta: types.Meta{
			DocType:         types.DocRider,
			RiderConfidence: 100,
			Adjustments:     []string{"fre80_compression"},
		},
		SuggestionBlockCompact: &compact,
	}

	var buf bytes.Buffer
	printResult(&buf, "amics.txt", res)
	out := buf.String()

	assert.Contains(t, out, "amics.txt: score 82 (rider, confidence 100)")
	assert.Contains(t, out, "contact                  true  100")
	assert.Contains(t, out, "printable_colours        null   60")
	assert.NotContains(t, out, "repository_link")
	assert.Contains(t, out, "Adjustments: [fre80_compression]")
	assert.Contains(t, out, "  - Add a version number")
	assert.Contains(t, out, "Template:\nVersion: v1.0 (2026-10-19)")
	assert.NotContains(t, out, "Suggestions:")
}
