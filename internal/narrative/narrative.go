// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package narrative turns rule outcomes and metadata into reviewer
// comments and paste-ready suggestion text.
package narrative

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// EmptyTextComment is the only comment of a document with no readable text.
const EmptyTextComment = "No readable text could be extracted from the document. It may be a scanned image: run OCR and upload it again."

// PendingSuffix marks comments for rules that could not be evaluated.
const PendingSuffix = " (pending automatic verification)"

// DefaultVersionLabel is proposed when the caller gives no version label.
const DefaultVersionLabel = "v1.0"

var ruleComments = map[types.RuleName]string{
	types.RuleContact:                "Add a technical contact with name, email and phone number.",
	types.RuleDateOrVersion:          "Add a version number or the date of the last update.",
	types.RuleRepositoryLink:         "Add the link to the always-current online version of the rider.",
	types.RulePrintableColours:       "Make sure the document prints correctly in black and white.",
	types.RuleTechnicalDocShape:      "Open with a technical section; the document reads like a cover page or a brochure.",
	types.RuleKeySections:            "Include the key sections: technical needs, stage plot, patch list and monitors.",
	types.RuleSoundTechnician:        "State whether the band travels with its own sound technician for FOH and monitors.",
	types.RulePatchList:              "Add a patch list with one line per channel: source, microphone or DI, and stand.",
	types.RuleEquipmentDivision:      "Say which equipment the promoter provides and which the band brings.",
	types.RuleMicrophoneAlternatives: "Give accepted alternatives for the requested microphones.",
	types.RuleFileSize:               "Reduce the file size so the rider is easy to send by email.",
}

// Comments lists one comment per rule that is not met, in rule order,
// followed by the metadata notes.
func Comments(rules types.RuleSet, meta types.Meta) []string {
	var out []string
	for _, name := range types.RuleOrder {
		v, ok := rules[name]
		if !ok || v.IsTrue() {
			continue
		}
		c := ruleComments[name]
		if v == types.TriNull {
			c += PendingSuffix
		}
		out = append(out, c)
	}

	d := meta.Dates
	if d.LatestYear != nil && d.AgeYears != nil && !d.IsRecent {
		out = append(out, fmt.Sprintf(
			"The most recent date in the document is from %d, about %s ago. Check that the rider is still current.",
			*d.LatestYear, years(*d.AgeYears)))
	}
	if meta.SoundTech.ExplicitNeg {
		out = append(out, "The rider says the band does not travel with a sound technician: the venue must provide one.")
	}

	promoter := meta.Division.Promoter.NormalizedItems
	band := meta.Division.Band.NormalizedItems
	if len(promoter) > 0 && len(band) > 0 {
		c := "Both the promoter and the band list equipment; check that the two lists are coherent."
		if shared := overlap(promoter, band); len(shared) > 0 {
			c += " Listed on both sides: " + strings.Join(shared, ", ") + "."
		}
		out = append(out, c)
	}
	return out
}

func years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func overlap(a, b []string) []string {
	var out []string
	for _, x := range a {
		if slices.Contains(b, x) && !slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}

// missing reports whether name takes part in scoring and is not met.
func missing(rules types.RuleSet, name types.RuleName) bool {
	v, ok := rules[name]
	return ok && !v.IsTrue()
}

// Link is the canonical online address of a rider.
func Link(opts types.Options) string {
	host := opts.Host
	if host == "" {
		host = "<host>"
	}
	ref := opts.Ref
	if ref == "" {
		ref = "<ref>"
	}
	return fmt.Sprintf("https://%s/riders/%s", host, ref)
}

func versionLabel(opts types.Options) string {
	if opts.VersionLabel != "" {
		return opts.VersionLabel
	}
	return DefaultVersionLabel
}

// stamp formats the reference date, or a fill-in blank without one.
func stamp(opts types.Options, layout string) string {
	if opts.Now.IsZero() {
		return "__/__/____"
	}
	return opts.Now.Format(layout)
}
