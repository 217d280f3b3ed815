// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"math"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// State is the value threaded through the adjustment pipeline. Steps never
// mutate the maps of the state they receive; they copy before writing.
type State struct {
	Score    int
	Rules    types.RuleSet
	Partials types.PartialSet

	// Strong is set once the evidence makes the document unambiguously a
	// rider.
	Strong bool
	// Healthy is set when contact, patch, key sections and colours are all
	// comfortably good.
	Healthy bool
	// RepositoryBonus is set when the repository bonus was applied.
	RepositoryBonus bool
}

func (s State) withPartial(name types.RuleName, v int) State {
	p := s.Partials.Clone()
	p[name] = v
	s.Partials = p
	return s
}

func (s State) withRule(name types.RuleName, v types.Tri) State {
	r := s.Rules.Clone()
	r[name] = v
	s.Rules = r
	return s
}

func (s State) met(name types.RuleName) bool {
	return s.Rules[name].IsTrue()
}

func (s State) partial(name types.RuleName) int {
	return s.Partials[name]
}

// Step is one named adjustment.
type Step struct {
	Name  string
	Apply func(ev *evidence, s State) State
}

// Steps is the adjustment pipeline, applied in order. Several steps read
// the score left by the previous one.
var Steps = []Step{
	{Name: "repository_bonus", Apply: repositoryBonus},
	{Name: "rule_sync", Apply: syncRules},
	{Name: "strong_evidence", Apply: strongEvidence},
	{Name: "doc_type_cap", Apply: docTypeCap},
	{Name: "manual_cap", Apply: manualCap},
	{Name: "healthy", Apply: healthy},
	{Name: "patch_boost", Apply: patchBoost},
	{Name: "strong_rider_floor", Apply: strongRiderFloor},
	{Name: "healthy_top_up", Apply: healthyTopUp},
	{Name: "printability_gate", Apply: printabilityGate},
	{Name: "fre80_compression", Apply: fre80},
	{Name: "minimalist_boost", Apply: minimalistBoost},
	{Name: "doc_shape_leniency", Apply: docShapeLeniency},
	{Name: "clamp", Apply: clampScore},
}

func isHealthy(s State) bool {
	return s.partial(types.RuleContact) >= 80 &&
		s.partial(types.RulePatchList) >= 70 &&
		s.partial(types.RuleKeySections) >= 75 &&
		s.partial(types.RulePrintableColours) >= 60
}

// concretePatch reports numbered or model evidence behind the patch list.
func concretePatch(ev *evidence) bool {
	return ev.analysis.Patch.Numbered >= 2 || ev.analysis.Patch.KnownModels >= 1
}

func repositoryBonus(ev *evidence, s State) State {
	if !ev.repositoryEnabled || s.partial(types.RuleRepositoryLink) < 60 {
		return s
	}
	if isHealthy(s) {
		s.Score += 4
	} else {
		s.Score += 2
	}
	s.RepositoryBonus = true
	return s
}

// syncRules promotes graded rules whose partial clears the pass mark and
// demotes those whose partial is zero.
func syncRules(ev *evidence, s State) State {
	th := ev.profile.Thresholds
	for _, r := range []struct {
		name types.RuleName
		pass int
	}{
		{types.RulePatchList, th.PatchPass},
		{types.RuleEquipmentDivision, th.DivisionPass},
		{types.RuleMicrophoneAlternatives, th.MicAltPass},
	} {
		p := s.partial(r.name)
		switch {
		case p >= r.pass && !s.met(r.name):
			s = s.withRule(r.name, types.TriTrue)
		case p == 0 && s.Rules[r.name] != types.TriFalse:
			s = s.withRule(r.name, types.TriFalse)
		}
	}
	return s
}

func strongEvidence(ev *evidence, s State) State {
	s.Strong = (s.partial(types.RulePatchList) >= 75 && concretePatch(ev)) ||
		(s.partial(types.RuleKeySections) >= 88 && ev.analysis.Lexicon.AudioSmell())
	return s
}

func docTypeCap(ev *evidence, s State) State {
	if s.Strong {
		return s
	}
	th := ev.profile.Thresholds
	switch ev.class.DocType {
	case types.DocNotRider:
		s.Score = min(s.Score, th.NotRiderCap)
	case types.DocMaybeRider:
		if ev.analysis.Lexicon.AudioSmell() {
			s.Score = min(s.Score, th.MaybeRiderAudioCap)
		} else {
			s.Score = min(s.Score, th.MaybeRiderCap)
		}
	}
	return s
}

func manualCap(ev *evidence, s State) State {
	lex := ev.analysis.Lexicon
	if s.Strong || !ev.analysis.Manual.Like || lex.Audio || lex.MicModels > 0 {
		return s
	}
	th := ev.profile.Thresholds
	switch ev.class.DocType {
	case types.DocMaybeRider:
		s.Score = min(s.Score, th.ManualMaybeCap)
	case types.DocRider:
		s.Score = min(s.Score, th.ManualRiderCap)
	}
	return s
}

func healthy(_ *evidence, s State) State {
	s.Healthy = isHealthy(s)
	return s
}

// patchBoost rewards an excellent patch list backed by numbered channels
// or named models; it also vouches for the key sections.
func patchBoost(ev *evidence, s State) State {
	if s.partial(types.RulePatchList) < 88 || !concretePatch(ev) {
		return s
	}
	if k := s.partial(types.RuleKeySections); k < 88 {
		s = s.withPartial(types.RuleKeySections, 88)
	}
	s.Strong = true
	s.Score += 3
	if s.Healthy {
		s.Score += 2
	}
	return s
}

func strongRiderFloor(ev *evidence, s State) State {
	if s.partial(types.RulePatchList) < 90 ||
		len(ev.analysis.Patch.Valid()) < 4 ||
		s.partial(types.RuleKeySections) < 88 ||
		s.partial(types.RuleContact) < 80 ||
		s.partial(types.RuleSoundTechnician) < 80 {
		return s
	}
	floor := 84
	if s.partial(types.RuleMicrophoneAlternatives) >= 90 && s.partial(types.RulePrintableColours) >= 80 {
		floor = 87
	}
	s.Score = max(s.Score, floor)
	return s
}

// healthyTopUp lifts healthy riders whose only gap is the date, or whose
// only gap is the repository link.
func healthyTopUp(ev *evidence, s State) State {
	if !s.Healthy {
		return s
	}
	if !s.met(types.RuleDateOrVersion) {
		s.Score += 3
		return s
	}
	divisionOK := s.met(types.RuleEquipmentDivision) || ev.analysis.Division.SoftPA
	micAltOK := s.met(types.RuleMicrophoneAlternatives) || ev.analysis.Lexicon.MicModels > 0
	repositoryMissing := !ev.repositoryEnabled || !s.met(types.RuleRepositoryLink)
	if divisionOK && micAltOK && repositoryMissing && s.Score < 95 {
		s.Score += min(4, 95-s.Score)
	}
	return s
}

func printabilityGate(ev *evidence, s State) State {
	if s.partial(types.RulePrintableColours) < 60 && !s.met(types.RuleDateOrVersion) && !s.Strong {
		s.Score = min(s.Score, ev.profile.Thresholds.PrintabilityCap)
	}
	return s
}

// fre80 compresses scores above the floor when secondary completeness
// rules are missing. Two or more gaps compress hard; one gap caps softly.
func fre80(ev *evidence, s State) State {
	th := ev.profile.Thresholds
	// Decent contact means a named technician and offered mic substitutes.
	strongWithContact := s.Strong &&
		s.partial(types.RuleContact) >= 80 &&
		ev.analysis.SoundTech.Meta.Explicit &&
		s.partial(types.RuleMicrophoneAlternatives) >= 80
	if (s.Score >= 90 && s.Healthy) || strongWithContact || s.Score <= th.CompressionFloor {
		return s
	}

	missing := 0
	if !s.met(types.RuleDateOrVersion) {
		missing++
	}
	if !s.met(types.RuleEquipmentDivision) && !ev.analysis.Division.SoftPA {
		missing++
	}
	if !s.met(types.RuleMicrophoneAlternatives) && ev.analysis.Lexicon.MicModels == 0 && s.partial(types.RulePatchList) < 70 {
		missing++
	}
	if ev.repositoryEnabled && s.partial(types.RuleRepositoryLink) >= 60 && s.partial(types.RulePatchList) >= 70 {
		return s
	}

	switch {
	case missing >= 2:
		over := float64(s.Score - th.CompressionFloor)
		s.Score = th.CompressionFloor + int(math.Floor(over*th.CompressionFactor))
	case missing == 1:
		limit := 86
		if s.partial(types.RulePatchList) >= 90 {
			limit = 90
		}
		if s.Healthy {
			limit += 3
		}
		if s.RepositoryBonus {
			limit += 2
		}
		s.Score = min(s.Score, limit, 95)
	}
	return s
}

func minimalistBoost(_ *evidence, s State) State {
	if s.Score < 75 &&
		s.partial(types.RulePatchList) >= 60 &&
		s.partial(types.RuleSoundTechnician) >= 80 &&
		s.partial(types.RulePrintableColours) >= 60 {
		s.Score = min(75, s.Score+4)
	}
	return s
}

func docShapeLeniency(_ *evidence, s State) State {
	if s.partial(types.RuleTechnicalDocShape) < 60 && s.partial(types.RulePatchList) >= 90 {
		s = s.withPartial(types.RuleTechnicalDocShape, 60)
	}
	return s
}

func clampScore(_ *evidence, s State) State {
	s.Score = clampPercent(s.Score)
	return s
}
