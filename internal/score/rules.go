// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"github.com/pdiddy/rider-engine/pkg/types"
)

// evaluateRules computes the raw rule outcomes. equipment_division depends
// on its partial and is settled by settleDivision once partials exist. The
// repository rule is left out entirely when disabled.
func evaluateRules(ev *evidence) types.RuleSet {
	a := ev.analysis
	rules := types.RuleSet{
		types.RuleContact:                types.TriOf(a.Contact.Satisfied),
		types.RuleDateOrVersion:          types.TriOf(a.Dates.Satisfied()),
		types.RulePrintableColours:       ev.colour.Value,
		types.RuleTechnicalDocShape:      types.TriOf(a.Shape.Technical && !a.Manual.Like && !a.Shape.CoverPage),
		types.RuleKeySections:            types.TriOf(a.Sections.Satisfied()),
		types.RuleSoundTechnician:        types.TriOf(a.SoundTech.Satisfied()),
		types.RulePatchList:              types.TriOf(a.Patch.Satisfied()),
		types.RuleEquipmentDivision:      types.TriFalse,
		types.RuleMicrophoneAlternatives: types.TriOf(a.MicAlt.Satisfied()),
		types.RuleFileSize:               ev.size.Rule(ev.profile.Thresholds),
	}
	if ev.repositoryEnabled {
		rules[types.RuleRepositoryLink] = types.TriOf(a.Repository.Link)
	}
	return rules
}

// settleDivision sets equipment_division from its partial.
func settleDivision(rules types.RuleSet, partials types.PartialSet, th types.Thresholds) {
	rules[types.RuleEquipmentDivision] = types.TriOf(partials[types.RuleEquipmentDivision] >= th.DivisionPass)
}
