// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import "regexp"

var (
	altSourceExpr = `(?:` + micModelRe.String() + `|\bdi\b|\bdi[\s\-]?box(?:es)?\b|\bbss\b|\bradial\b|\bklark\b)`

	// altPairRe matches "sm57 or e906", "beta 52 / d6", "kms105 o sm58".
	altPairRe = regexp.MustCompile(altSourceExpr + `\s*(?:/|\bor\b|\bo\b|\bu\b|ó)\s*` + altSourceExpr)
)

// MicAltSignal records alternative microphone evidence.
type MicAltSignal struct {
	// Pairs counts explicit alternative pairs.
	Pairs int
	// Equivalent is set for "equivalent / similar / alternative" phrasing.
	Equivalent bool
	// StandardKit is set for "standard microphone kit" phrasing.
	StandardKit bool
	KnownModels int
	MicWord     bool
}

// Satisfied is the microphone_alternatives rule. A known model needs no
// alternative.
func (m MicAltSignal) Satisfied() bool {
	return m.KnownModels > 0 || (m.MicWord && (m.Pairs > 0 || m.Equivalent))
}

// Partial grades the alternatives by pairs, then by model density.
func (m MicAltSignal) Partial() int {
	p := 0
	switch {
	case m.Pairs >= 3:
		p = 100
	case m.Pairs >= 2:
		p = 80
	case m.Pairs >= 1:
		p = 60
	case m.KnownModels >= 4:
		p = 60
	case m.KnownModels >= 2:
		p = 52
	case m.KnownModels >= 1:
		p = 45
	}
	if m.Equivalent {
		p = max(p, 60)
	}
	if m.StandardKit {
		p = max(p, 48)
	}
	return p
}

// DetectMicAlternatives counts alternative pairs and equivalence phrasing.
func DetectMicAlternatives(in Input) MicAltSignal {
	t := in.Normalized
	return MicAltSignal{
		Pairs:       len(altPairRe.FindAllStringIndex(t, -1)),
		Equivalent:  equivalentRe.MatchString(t),
		StandardKit: standardKitRe.MatchString(t),
		KnownModels: len(micModelRe.FindAllStringIndex(t, -1)),
		MicWord:     micWordRe.MatchString(t) || micModelRe.MatchString(t),
	}
}
