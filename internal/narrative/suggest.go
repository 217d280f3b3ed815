// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package narrative

import (
	"fmt"
	"strings"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// suggestion is one paragraph of the suggestion block, rendered in
// Catalan, Spanish and English.
type suggestion struct {
	rule  types.RuleName
	title string
	ca    string
	es    string
	en    string
}

func suggestions(opts types.Options) []suggestion {
	label := versionLabel(opts)
	date := stamp(opts, "02/01/2006")
	link := Link(opts)
	return []suggestion{
		{
			rule:  types.RuleDateOrVersion,
			title: "Version and date",
			ca:    fmt.Sprintf("Rider tècnic %s, actualitzat el %s.", label, date),
			es:    fmt.Sprintf("Rider técnico %s, actualizado el %s.", label, date),
			en:    fmt.Sprintf("Technical rider %s, updated %s.", label, date),
		},
		{
			rule:  types.RuleRepositoryLink,
			title: "Online version",
			ca:    "Versió sempre actualitzada: " + link,
			es:    "Versión siempre actualizada: " + link,
			en:    "Always up-to-date version: " + link,
		},
		{
			rule:  types.RuleSoundTechnician,
			title: "Sound technician",
			ca:    "El grup viatja amb tècnic de so propi per a FOH (nom i telèfon). Els monitors els porta el tècnic de la sala.",
			es:    "El grupo viaja con técnico de sonido propio para FOH (nombre y teléfono). Los monitores los lleva el técnico de la sala.",
			en:    "The band travels with its own FOH sound engineer (name and phone). Monitors are run by the house engineer.",
		},
		{
			rule:  types.RuleEquipmentDivision,
			title: "Who provides what",
			ca:    "Aporta l'organització: PA, taula de FOH, monitors i microfonia. Aporta el grup: backline i instruments.",
			es:    "Aporta la organización: PA, mesa de FOH, monitores y microfonía. Aporta el grupo: backline e instrumentos.",
			en:    "The promoter provides: PA, FOH desk, monitors and microphones. The band brings: backline and instruments.",
		},
		{
			rule:  types.RuleMicrophoneAlternatives,
			title: "Microphone alternatives",
			ca:    "Bombo: Beta 52 o D112. Caixa: SM57 o e904. Veus: SM58 o equivalent.",
			es:    "Bombo: Beta 52 o D112. Caja: SM57 o e904. Voces: SM58 o equivalente.",
			en:    "Kick: Beta 52 or D112. Snare: SM57 or e904. Vocals: SM58 or equivalent.",
		},
	}
}

// Suggestions renders one paragraph of example phrasing per missing rule
// among date, repository link, sound technician, equipment division and
// microphone alternatives. It is empty when none is missing.
func Suggestions(rules types.RuleSet, opts types.Options) string {
	var paras []string
	for _, s := range suggestions(opts) {
		if !missing(rules, s.rule) {
			continue
		}
		paras = append(paras, strings.Join([]string{
			s.title + ":",
			"CA: " + s.ca,
			"ES: " + s.es,
			"EN: " + s.en,
		}, "\n"))
	}
	return strings.Join(paras, "\n\n")
}

// Compact renders a fill-in template to paste into the rider. It returns
// nil when none of the rules it covers is missing.
func Compact(rules types.RuleSet, opts types.Options) *string {
	soundTech := missing(rules, types.RuleSoundTechnician)
	division := missing(rules, types.RuleEquipmentDivision)
	micAlt := missing(rules, types.RuleMicrophoneAlternatives)
	date := missing(rules, types.RuleDateOrVersion)
	repository := missing(rules, types.RuleRepositoryLink)
	if !soundTech && !division && !micAlt && !date && !repository {
		return nil
	}

	lines := []string{fmt.Sprintf("Version: %s (%s)", versionLabel(opts), stamp(opts, "2006-01-02"))}
	if _, ok := rules[types.RuleRepositoryLink]; ok {
		lines = append(lines, "Link: "+Link(opts))
	}
	if soundTech {
		lines = append(lines, "Sound technician: FOH ____ / MON ____ (band or venue)")
	}
	if division {
		lines = append(lines, "Promoter provides: ____ / Band brings: ____")
	}
	if micAlt {
		lines = append(lines, "Microphone alternatives: ____ or ____ (or equivalent)")
	}
	out := strings.Join(lines, "\n")
	return &out
}
