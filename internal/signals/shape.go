// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import "regexp"

// LexiconSignal records which vocabularies appear and how dense the
// instrument and microphone vocabulary is.
type LexiconSignal struct {
	Rider     bool
	StagePlot bool
	Patch     bool
	Audio     bool
	Backline  bool
	Needs     bool
	Admin     bool
	Monitors  bool
	Contact   bool
	DI        bool
	XLR       bool

	Instruments int
	MicModels   int
	MicWords    int

	// ChannelLines counts lines shaped like a channel entry.
	ChannelLines int
}

// MicMentions is the number of microphone mentions, models and words.
func (l LexiconSignal) MicMentions() int { return l.MicModels + l.MicWords }

// AudioSmell reports general audio vocabulary, or enough instruments next
// to at least one microphone.
func (l LexiconSignal) AudioSmell() bool {
	return l.Audio || (l.Instruments >= 4 && l.MicMentions() >= 1)
}

// DetectLexicon scans the normalized text for every vocabulary.
func DetectLexicon(in Input) LexiconSignal {
	t := in.Normalized
	return LexiconSignal{
		Rider:        riderLexRe.MatchString(t),
		StagePlot:    stagePlotRe.MatchString(t),
		Patch:        patchLexRe.MatchString(t),
		Audio:        audioLexRe.MatchString(t),
		Backline:     backlineRe.MatchString(t),
		Needs:        needsRe.MatchString(t),
		Admin:        adminRe.MatchString(t),
		Monitors:     monitorsRe.MatchString(t),
		Contact:      contactWordRe.MatchString(t),
		DI:           diRe.MatchString(t),
		XLR:          xlrRe.MatchString(t),
		Instruments:  len(instrumentRe.FindAllStringIndex(t, -1)),
		MicModels:    len(micModelRe.FindAllStringIndex(t, -1)),
		MicWords:     len(micWordRe.FindAllStringIndex(t, -1)),
		ChannelLines: len(channelLineRe.FindAllStringIndex(t, -1)),
	}
}

var (
	manualGuideRe    = regexp.MustCompile(`\bmanuals?\b|\buser['’]?s?\s+guide\b|\bguia\s+d['’]usuari|\bgu[ií]a\s+de(?:l)?\s+usuario\b|\bfirmware\b|\bsafety\b|\bseguretat\b|\bseguridad\b|\bwarranty\b|\bgarant[ií]a\b|\binstructions\b|\binstruccions\b|\binstrucciones\b`)
	manualTOCRe      = regexp.MustCompile(`\btable\s+of\s+contents\b|\bcontents\b|\b[ií]ndex\b|\b[ií]ndice\b|\bchapter\b|\bcap[ií]tol\b|\bcap[ií]tulo\b|\bappendix\b|\bap[eè]ndix\b|\bap[eé]ndice\b`)
	manualTroubleRe  = regexp.MustCompile(`\btroubleshooting\b|\bsoluci[oó]\s+de\s+problemes\b|\bsoluci[oó]n\s+de\s+problemas\b|\bchangelog\b|\brelease\s+notes\b|\bwhat['’]s\s+new\b|\bnovetats\b`)
	manualUIRe       = regexp.MustCompile(`\bmenu\b|\bmen[uú]\b|\bbuttons?\b|\bbot[oó]n\b|\bbotó|\bclick\s+on\b|\bpress\s+the\b|\bsettings\b|\bconfiguraci[oó]|\bscreen\b|\bpantalla\b|\btap\s+the\b`)
	manualVerbatimRe = regexp.MustCompile(`\bmanual\b|\buser\s+guide\b|\bsoftware\b`)
)

// ManualSignal records how much a document reads like a product manual.
type ManualSignal struct {
	// Categories counts hits among guide, table-of-contents, troubleshooting
	// and user-interface vocabularies.
	Categories int
	// Verbatim is set when "manual", "user guide" or "software" appears.
	Verbatim bool
	// Like is the detector's verdict.
	Like bool
}

// DetectManual reports whether the document is manual-like: three or more
// vocabulary categories, or one of the verbatim giveaways.
func DetectManual(in Input) ManualSignal {
	t := in.Normalized
	s := ManualSignal{Verbatim: manualVerbatimRe.MatchString(t)}
	for _, re := range []*regexp.Regexp{manualGuideRe, manualTOCRe, manualTroubleRe, manualUIRe} {
		if re.MatchString(t) {
			s.Categories++
		}
	}
	s.Like = s.Categories >= 3 || s.Verbatim
	return s
}

const (
	// coverWindow is how much of the document head is checked for header
	// keywords.
	coverWindow = 1200
	// coverMinLength is the length a document needs before an unlabelled
	// head reads as a cover page.
	coverMinLength = 1000
)

var headerKeywordRe = regexp.MustCompile(`\briders?\b|\btechnical\b|\btech\b|\bt[eè]cnic\w*|\bt[eé]cnico\b|\bpatch\b|\binputs?\b|\bstage\b|\bescenari|\bescenario\b|\bcontact\w*|\bneeds?\b|\bnecessitats\b|\bnecesidades\b|\bsound\b|\bsonido\b|\baudio\b|\bàudio\b`)

// ShapeSignal records whether the document looks like a technical document.
type ShapeSignal struct {
	// Technical is set when any rider, stage, patch or audio vocabulary
	// appears.
	Technical bool
	// CoverPage is set when the head of a long document carries neither
	// header keywords nor technical vocabulary.
	CoverPage bool
}

// DetectShape evaluates technical vocabulary and the cover-page heuristic.
func DetectShape(in Input) ShapeSignal {
	t := in.Normalized
	technical := isTechnical(t)

	head := t
	if len(head) > coverWindow {
		head = head[:coverWindow]
		// Keep the cut on a rune boundary.
		for len(head) > 0 && !utf8Start(head[len(head)-1]) {
			head = head[:len(head)-1]
		}
	}
	cover := len(t) > coverMinLength && !headerKeywordRe.MatchString(head) && !isTechnical(head)

	return ShapeSignal{Technical: technical, CoverPage: cover}
}

func isTechnical(t string) bool {
	return riderLexRe.MatchString(t) || stagePlotRe.MatchString(t) || patchLexRe.MatchString(t) || audioLexRe.MatchString(t)
}

// utf8Start reports whether b can start a UTF-8 sequence; a cut right
// before such a byte never splits a rune.
func utf8Start(b byte) bool { return b&0xC0 != 0x80 }

// SectionSignal records which of the four key rider sections appear.
type SectionSignal struct {
	Needs     bool
	StagePlot bool
	Patch     bool
	Monitors  bool
}

// Hits counts the sections present.
func (s SectionSignal) Hits() int {
	n := 0
	for _, b := range []bool{s.Needs, s.StagePlot, s.Patch, s.Monitors} {
		if b {
			n++
		}
	}
	return n
}

// Satisfied is the key_sections rule: the patch list alone, or any two
// sections.
func (s SectionSignal) Satisfied() bool {
	return s.Patch || s.Hits() >= 2
}

// DetectSections looks for the needs, stage plot, patch and monitors
// sections. Three or more channel-shaped lines count as a patch section
// even without a heading.
func DetectSections(in Input) SectionSignal {
	t := in.Normalized
	return SectionSignal{
		Needs:     needsRe.MatchString(t),
		StagePlot: stagePlotRe.MatchString(t) || splitStagePlotRe.MatchString(in.Flattened),
		Patch:     patchLexRe.MatchString(t) || len(channelLineRe.FindAllStringIndex(t, -1)) >= 3,
		Monitors:  monitorsRe.MatchString(t),
	}
}
