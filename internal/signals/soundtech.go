// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/rider-engine/pkg/types"
)

var (
	soundTechPositiveRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:we|band|artist)\s+(?:bring|brings|travel\s+with|travels\s+with|tour\s+with|tours\s+with|have|has)\s+(?:our|their|its|an?)?\s*(?:own\s+)?(?:sound\s+(?:technician|engineer|tech)|foh\s+engineer|engineer|technician)\b`),
		regexp.MustCompile(`\bour\s+(?:own\s+)?(?:sound\s+|foh\s+)?(?:technician|engineer)\b`),
		regexp.MustCompile(`\bsound\s+(?:technician|engineer)\s+(?:provided\s+by|from)\s+the\s+(?:band|artist)\b`),
		regexp.MustCompile(`\b(?:portem|porta|portarem|venim\s+amb|ve\s+amb)\s+(?:el\s+nostre\s+|un\s+|el\s+seu\s+)?(?:propi\s+)?t[eè]cnic\s+de\s+so`),
		regexp.MustCompile(`\bt[eè]cnic\s+de\s+so\s+propi`),
		regexp.MustCompile(`\b(?:llevamos|lleva|viajamos\s+con|viaja\s+con|traemos)\s+(?:nuestro\s+|un\s+|su\s+)?(?:propio\s+)?t[eé]cnico\s+de\s+sonido`),
		regexp.MustCompile(`\bt[eé]cnico\s+de\s+sonido\s+propio`),
	}

	soundTechNegativeRes = []*regexp.Regexp{
		regexp.MustCompile(`\bno\s+(?:own\s+)?(?:sound\s+|foh\s+)?(?:technician|engineer)\b`),
		regexp.MustCompile(`\b(?:we|band|artist)\s+(?:do\s+not|don['’]t|does\s+not|doesn['’]t)\s+(?:bring|have|travel\s+with|tour\s+with)\s+(?:an?\s+|our\s+own\s+|their\s+own\s+)?(?:sound\s+|foh\s+)?(?:technician|engineer)`),
		regexp.MustCompile(`\bwithout\s+(?:an?\s+|our\s+own\s+)?(?:sound\s+|foh\s+)?(?:technician|engineer)`),
		regexp.MustCompile(`\bno\s+(?:portem|porta|tenim|t[eé])\s+(?:t[eè]cnic|enginyer)`),
		regexp.MustCompile(`\bsense\s+t[eè]cnic\s+de\s+so`),
		regexp.MustCompile(`\bno\s+(?:llevamos|lleva|tenemos|tiene|traemos)\s+t[eé]cnico`),
		regexp.MustCompile(`\bsin\s+t[eé]cnico\s+de\s+sonido`),
	}

	fohOwnerRe    = regexp.MustCompile(`\bfoh\s*(?:engineer|tech\w*)?\s*[:=]\s*([^\n/,;|]+)`)
	monOwnerRe    = regexp.MustCompile(`\b(?:mon|monitor\s+(?:engineer|tech\w*))\s*[:=]\s*([^\n/,;|]+)`)
	dashOwnerRe   = regexp.MustCompile(`(?m)^(foh|mon)\s+[-–—]\s+([^\n/,;|]+)`)
	pairedOwnerRe = regexp.MustCompile(`\bfoh\s*/\s*mon(?:itors?)?\b(?:\s*[:=\-–—]\s*([^\n/,;|]+))?`)
	contactFOHRe  = regexp.MustCompile(`(?m)^contact\w*\s*:.*\bfoh\b`)

	soundTechLexRe   = regexp.MustCompile(`\bfoh\b|\bmon\b|\bfront\s+of\s+house\b|\bsound\s+(?:engineer|technician|tech)\b|\bmonitor\s+engineer\b|\bt[eè]cnic\s+de\s+so|\bt[eé]cnico\s+de\s+sonido|\benginyer\s+de\s+so|\bingeniero\s+de\s+sonido\b`)
	soundTechFallRes = []*regexp.Regexp{
		regexp.MustCompile(`\bfoh\s*/\s*sound\s+engineer\b`),
		regexp.MustCompile(`\bcontact\w*.{0,60}\bfoh\b`),
	}

	bandOwnerRe  = regexp.MustCompile(`^(?:the\s+)?(?:band|banda|grup|grupo|artist\w*|our\s+own|own|propi|propio|nostre|nuestro)\b`)
	venueOwnerRe = regexp.MustCompile(`^(?:the\s+)?(?:venue|sala|house|local|promoter|promotor\w*|organit\w*|organiz\w*|festival|teatre|teatro)\b`)
	ownerWordRe  = regexp.MustCompile(`\p{L}+`)
)

// SoundTechSignal carries the sound technician metadata and whether only
// a lexical fallback matched.
type SoundTechSignal struct {
	Meta     types.SoundTechMeta
	Fallback bool
}

// Satisfied is the sound_technician rule.
func (s SoundTechSignal) Satisfied() bool {
	return s.Meta.Explicit || s.Meta.Tabular || s.Meta.Has || s.Fallback
}

// Partial grades the tier, flooring at 60 when the contact is already well
// identified.
func (s SoundTechSignal) Partial(contactPartial int) int {
	p := 0
	switch {
	case s.Meta.Explicit:
		p = 100
	case s.Meta.Tabular:
		p = 80
	case s.Meta.Has || s.Fallback:
		p = 60
	}
	if contactPartial >= 80 {
		p = max(p, 60)
	}
	return p
}

// DetectSoundTech extracts the explicit, tabular and bare mention tiers.
func DetectSoundTech(in Input) SoundTechSignal {
	t := in.Normalized
	var m types.SoundTechMeta

	m.ExplicitNeg = anyMatch(soundTechNegativeRes, t)
	// "no portem tècnic de so" also matches the positive phrasing.
	m.ExplicitPos = !m.ExplicitNeg && anyMatch(soundTechPositiveRes, t)
	m.Explicit = m.ExplicitPos || m.ExplicitNeg

	if g := fohOwnerRe.FindStringSubmatch(t); g != nil {
		m.Tabular = true
		m.FOHOwner = normalizeOwner(g[1])
	}
	if g := monOwnerRe.FindStringSubmatch(t); g != nil {
		m.Tabular = true
		m.MONOwner = normalizeOwner(g[1])
	}
	for _, g := range dashOwnerRe.FindAllStringSubmatch(t, -1) {
		m.Tabular = true
		owner := normalizeOwner(g[2])
		if g[1] == "foh" && m.FOHOwner == "" {
			m.FOHOwner = owner
		} else if g[1] == "mon" && m.MONOwner == "" {
			m.MONOwner = owner
		}
	}
	if g := pairedOwnerRe.FindStringSubmatch(t); g != nil {
		m.Tabular = true
		if owner := normalizeOwner(g[1]); owner != "" {
			if m.FOHOwner == "" {
				m.FOHOwner = owner
			}
			if m.MONOwner == "" {
				m.MONOwner = owner
			}
		}
	}
	if contactFOHRe.MatchString(t) {
		m.Tabular = true
	}

	m.Has = soundTechLexRe.MatchString(t)

	return SoundTechSignal{
		Meta:     m,
		Fallback: anyMatch(soundTechFallRes, t),
	}
}

// normalizeOwner maps an owner cell to Band or Venue, or title-cases its
// first two words.
func normalizeOwner(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ""
	case bandOwnerRe.MatchString(s):
		return "Band"
	case venueOwnerRe.MatchString(s):
		return "Venue"
	}
	words := ownerWordRe.FindAllString(s, 2)
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

func anyMatch(res []*regexp.Regexp, t string) bool {
	for _, re := range res {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}
