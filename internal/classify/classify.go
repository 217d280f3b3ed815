// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides how much a document reads like a rider.
package classify

import (
	"unicode"

	"github.com/pdiddy/rider-engine/internal/signals"
	"github.com/pdiddy/rider-engine/pkg/types"
)

const (
	// MinOCRChars and MinOCRAlnum flag text too thin to have come from a
	// text-layer PDF.
	MinOCRChars = 60
	MinOCRAlnum = 30
)

// Result is the classifier verdict.
type Result struct {
	// Confidence is the rider confidence, 0 to 100.
	Confidence int
	DocType    types.DocType
	// OCRRecommended is set when the text looks like a scan.
	OCRRecommended bool
	// GearListOnly is set when the document is a bare equipment list.
	GearListOnly bool
	// ManualGated is set when the manual-like gate capped the confidence.
	ManualGated bool
}

// Classify scores rider confidence from the lexicon signals of a and maps
// it to a document type.
func Classify(normalized string, a *signals.Analysis, th types.Thresholds) Result {
	lex := a.Lexicon
	score := 0
	if lex.Rider {
		score += 35
	}
	if lex.StagePlot {
		score += 25
	}
	if lex.Patch {
		score += 20
	}
	if lex.Audio {
		score += 15
	}
	if lex.Backline {
		score += 10
	}

	gearListOnly := (lex.Audio || lex.Backline) && !lex.Patch && !lex.StagePlot && !lex.Contact && !lex.Needs
	if gearListOnly {
		score -= 10
		manyInstruments := lex.Instruments >= 6
		someModels := lex.MicModels >= 2
		switch {
		case manyInstruments && someModels:
			score = clamp(score+25, 68, 75)
		case manyInstruments || someModels:
			score = min(score+15, 68)
		default:
			score = min(score, 55)
		}
	}

	if lex.Audio {
		switch {
		case lex.ChannelLines >= 2:
			score = max(score, 62)
		case lex.ChannelLines == 1:
			score += 10
		}
	}
	if lex.ChannelLines >= 4 && (lex.DI || lex.XLR) {
		score = max(score, 62) + 6
	}
	if lex.Admin {
		score -= 20
	}
	score = clamp(score, 0, 100)

	gated := false
	if a.Manual.Like && !lex.StagePlot && lex.ChannelLines < 2 {
		gated = true
		if (lex.Instruments >= 4 && lex.MicMentions() >= 1) || lex.Audio {
			score = min(score, 68)
		} else {
			score = min(score, 30)
		}
	}

	return Result{
		Confidence:     score,
		DocType:        DocTypeFor(score, th),
		OCRRecommended: NeedsOCR(normalized),
		GearListOnly:   gearListOnly,
		ManualGated:    gated,
	}
}

// DocTypeFor maps a confidence to a document type.
func DocTypeFor(confidence int, th types.Thresholds) types.DocType {
	switch {
	case confidence >= th.RiderConfidence:
		return types.DocRider
	case confidence >= th.MaybeRiderConfidence:
		return types.DocMaybeRider
	default:
		return types.DocNotRider
	}
}

// NeedsOCR reports whether normalized text is too short or has too few
// letters and digits to be a real text layer.
func NeedsOCR(normalized string) bool {
	if len([]rune(normalized)) < MinOCRChars {
		return true
	}
	alnum := 0
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return alnum < MinOCRAlnum
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
