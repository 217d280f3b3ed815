// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"github.com/pdiddy/rider-engine/internal/signals"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// naivePartial is the partial of a rule with no tiering of its own.
func naivePartial(v types.Tri) int {
	switch v {
	case types.TriTrue:
		return 100
	case types.TriFalse:
		return 0
	default:
		return 50
	}
}

// keySectionsPartial grades the key sections found. A good patch list with
// monitor or needs vocabulary lifts a thin result to 75.
func keySectionsPartial(s signals.SectionSignal, patch int) int {
	var p int
	switch hits := s.Hits(); {
	case hits >= 3:
		p = 100
	case hits == 2 && s.Patch:
		p = 82
	case hits == 2:
		p = 75
	case hits == 1:
		p = 50
	}
	if p < 75 && patch >= 60 && (s.Monitors || s.Needs) {
		p = 75
	}
	return p
}

// computePartials grades every rule in rules. Rules absent from rules get
// no partial.
func computePartials(ev *evidence, rules types.RuleSet) types.PartialSet {
	a := ev.analysis
	th := ev.profile.Thresholds
	caps := signals.PatchCaps{Prudence: th.PatchPrudenceCap, Soft: th.PatchSoftCap}

	contact := a.Contact.Partial()
	patch := a.Patch.Partial(naivePartial(rules[types.RulePatchList]), a.MicAlt, caps)

	all := types.PartialSet{
		types.RuleContact:                contact,
		types.RuleDateOrVersion:          a.Dates.Partial(),
		types.RuleRepositoryLink:         a.Repository.Partial(),
		types.RulePrintableColours:       ev.colour.Partial(),
		types.RuleTechnicalDocShape:      naivePartial(rules[types.RuleTechnicalDocShape]),
		types.RuleKeySections:            keySectionsPartial(a.Sections, patch),
		types.RuleSoundTechnician:        a.SoundTech.Partial(contact),
		types.RulePatchList:              patch,
		types.RuleEquipmentDivision:      a.Division.Partial(),
		types.RuleMicrophoneAlternatives: a.MicAlt.Partial(),
		types.RuleFileSize:               ev.size.Partial(th),
	}

	out := make(types.PartialSet, len(rules))
	for name := range rules {
		out[name] = clampPercent(all[name])
	}
	return out
}
