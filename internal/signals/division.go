// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pdiddy/rider-engine/pkg/types"
)

const (
	maxHeaderChars = 60
	// fallbackProximity is how close a role keyword and a responsibility
	// verb must be when the document has no role headers.
	fallbackProximity = 60
	fallbackBefore    = 400
	fallbackAfter     = 500
	minFragmentChars  = 8
	maxFragments      = 6
)

type role int

const (
	roleNone role = iota
	rolePromoter
	roleBand
	roleStop
)

var (
	promoterRe = regexp.MustCompile(`\bpromot\w*|\borgani[tz]\w*|\bvenue\b|\bsala\b|\bproduction\b|\bproducci[oó]n?\b|\bfestival\b|\bthe\s+house\b|\bcontractant\b|\bcontratante\b|\bentitat\b|\bayuntamiento\b|\bajuntament\b`)
	bandRe     = regexp.MustCompile(`\bband\b|\bbanda\b|\bartists?\b|\bartista\b|\bgrup\b|\bgrupo\b|\bbackline\b|\bmusicians?\b|\bm[uú]sics\b|\bm[uú]sicos\b|\bcompanyia\b|\bcompañ[ií]a\b`)
	frontOfRe  = regexp.MustCompile(`\bfront\s+of\s+house\b`)
	stopRe     = regexp.MustCompile(`\bpatch\w*|\binput\s+list\b|\bmonitor\w*|\bpower\b|\bcorrent\b|\bcorriente\b|\bhospitality\b|\bcatering\b|\bcontact\w*|\blights?\b|\blighting\b|\bllums\b|\bluces\b|\bil·luminaci[oó]|\biluminaci[oó]n\b|\bstage\s*plot\b|\bschedule\b|\bhorari\w*|\btimetable\b|\bdressing\b|\bcamerino\w*|\bparking\b|\btransport\b`)

	providedByRe = regexp.MustCompile(`\bprovided\s+by\b|\bsupplied\s+by\b|\bto\s+be\s+provided\b|\ba\s+c[aà]rrec\s+d|\ba\s+cargo\s+d|\baportat\s+per\b|\baportad[oa]s?\s+por\b|\bresponsibility\s+of\b`)

	bulletRe = regexp.MustCompile(`^(?:[-•*·–—▪►>]|\d{1,2}[.)])\s*(.+)$`)

	responsibilityVerbRe = regexp.MustCompile(`\bprovides?\b|\bprovided\b|\bsuppl(?:y|ies|ied)\b|\bbrings?\b|\ba\s+c[aà]rrec\b|\ba\s+cargo\b|\baporta\w*|\bportar[àa]\b|\bportem\b|\bfacilita\w*|\bproporciona\w*|\bresponsib\w*|\bresponsable\w*|\bwill\s+(?:provide|bring|supply)\b|\bmust\s+provide\b`)
	exclusionRe          = regexp.MustCompile(`\bnot\s+(?:included|provided|needed|required)\b|\bexcept\b|\bexcluding\b|\bno\s+inclou\w*|\bno\s+incluye\w*|\bexcepte\b|\bexcepto\b|\bwithout\b|\bsense\b|\bsin\b|\bdoes\s+not\s+(?:provide|include)\b`)

	implicitPromoterRe = regexp.MustCompile(`\bprofessional\s+(?:pa|sound\s+system)\b|\bpowerful\s+enough\b|\bmonitor\s+needs\b|\bwedges?\b|\bfalques\b|\bcuñas\b|\bpa\s+(?:system\s+)?(?:adequate|suitable|appropriate)\b`)
	softPARe           = regexp.MustCompile(`\b(?:house|venue|in[\s\-]?house|local)\s+(?:pa|sound\s+system|system)\b|\bpa\s+(?:de\s+la\s+sala|del\s+local|de\s+la\s+casa)\b|\bequip\s+de\s+so\s+de\s+la\s+sala\b|\bequipo\s+de\s+sonido\s+de\s+la\s+sala\b|\bprofessional\s+pa\b`)
)

// itemCategories is the closed equipment vocabulary, in match priority.
var itemCategories = []struct {
	name string
	re   *regexp.Regexp
}{
	{"in_ears", regexp.MustCompile(`\bin[\s\-]?ears?\b|\biems?\b`)},
	{"wedges", regexp.MustCompile(`\bwedges?\b|\bfalques?\b|\bcuñas?`)},
	{"monitors", regexp.MustCompile(`\bmonitor\w*`)},
	{"rf", regexp.MustCompile(`\brf\b|\bwireless\b|\binal[aà]mbric\w*|\bradio\b`)},
	{"microphones", regexp.MustCompile(`\bmics?\b|\bmicro\w*`)},
	{"di", regexp.MustCompile(`\bdi\b|\bdi[\s\-]?box(?:es)?\b|\bdirect\s+box\b`)},
	{"cables", regexp.MustCompile(`\bcabl\w*|\bxlr\b|\bjack\b`)},
	{"stands", regexp.MustCompile(`\bstands?\b|\bpeus?\b|\bpies\b`)},
	{"drums", regexp.MustCompile(`\bdrums?\b|\bdrum\s*kit\b|\bbateria\b|\bbatería\b|\bcymbals?\b|\bplats\b|\bplatos\b`)},
	{"guitar_amp", regexp.MustCompile(`\bguitar\s+amp\w*|\bampli\w*\s+de\s+guitarra\b|\bguitar\s+cab\w*`)},
	{"bass_amp", regexp.MustCompile(`\bbass\s+amp\w*|\bampli\w*\s+de\s+(?:baix|bajo)\b|\bbass\s+cab\w*`)},
	{"keys", regexp.MustCompile(`\bkeys\b|\bkeyboards?\b|\bteclats?\b|\bteclados?\b|\bsynths?\b`)},
	{"piano", regexp.MustCompile(`\bpiano\b`)},
	{"backline", regexp.MustCompile(`\bbackline\b|\bamps?\b|\bamplifiers?\b`)},
	{"foh_desk", regexp.MustCompile(`\bmixing\s+desk\b|\bmixer\b|\bconsol[ea]\b|\bmesa\b|\btaula\b|\bfoh\b`)},
	{"pa", regexp.MustCompile(`\bpa\b|\bp\.a\.|\bsound\s+system\b|\bspeakers?\b|\bequip\s+de\s+so\b|\bequipo\s+de\s+sonido\b|\bline\s+array\b|\bsubs?\b|\bsubwoofers?\b`)},
	{"power", regexp.MustCompile(`\bpower\b|\bcorrent\b|\bcorriente\b|\belectric\w*|\bsockets?\b|\bschuko\b`)},
	{"risers", regexp.MustCompile(`\brisers?\b|\btarimas?\b|\bpracticables?\b`)},
	{"lights", regexp.MustCompile(`\blights?\b|\blighting\b|\bllums\b|\bluces\b|\bil·lumin\w*|\biluminaci[oó]n\b`)},
	{"hospitality", regexp.MustCompile(`\bhospitality\b|\bcatering\b|\bdrinks\b|\bwater\b|\baigua\b|\bagua\b|\bdressing\b|\bcamerinos?\b`)},
	{"transport", regexp.MustCompile(`\btransport\w*|\bparking\b|\bvan\b|\bfurgo\w*`)},
}

// DivisionSignal is the parsed equipment division.
type DivisionSignal struct {
	Meta types.DivisionMeta
	// ImplicitPromoter is set for phrasing that implies the venue supplies
	// the system, such as "professional pa" or monitor needs.
	ImplicitPromoter bool
	// SoftPA is set for "house pa" / "pa de la sala" phrasing.
	SoftPA bool
}

func roleCredit(r types.RoleDivision) int {
	if !r.Present {
		return 0
	}
	s := 30
	if r.HasVerb {
		s += 10
	}
	switch {
	case r.Items >= 2:
		s += 10
	case r.Items == 1:
		s += 5
	}
	if r.Exclusions {
		s += 5
	}
	if r.Contact {
		s += 5
	}
	return min(s, 50)
}

// Partial grades the division between promoter and band.
func (d DivisionSignal) Partial() int {
	p, b := d.Meta.Promoter, d.Meta.Band
	s := roleCredit(p) + roleCredit(b)

	if p.Present != b.Present {
		items := p.Items + b.Items
		if d.ImplicitPromoter || items >= 2 {
			s = min(s, 65)
		} else {
			s = min(s, 50)
		}
	}
	if d.SoftPA {
		if p.Present {
			s = max(s, 60)
		} else {
			s = max(s, 55)
		}
	}
	if len(p.NormalizedItems) > 0 && len(b.NormalizedItems) > 0 {
		s += 5
	}
	return min(max(s, 0), 100)
}

// ParseDivision splits the document into promoter and band sections by
// their headers and reads each section's items. Without headers it falls
// back to a window around a role keyword that sits next to a
// responsibility verb.
func ParseDivision(in Input) DivisionSignal {
	sections := map[role][]string{}
	current := roleNone
	for _, line := range in.Lines {
		if r := headerRole(line); r != roleNone {
			current = r
			if r != roleStop {
				sections[r] = append(sections[r], line)
			}
			continue
		}
		if current == rolePromoter || current == roleBand {
			sections[current] = append(sections[current], line)
		}
	}

	d := DivisionSignal{
		ImplicitPromoter: implicitPromoterRe.MatchString(in.Normalized),
		SoftPA:           softPARe.MatchString(in.Normalized),
	}
	d.Meta.Promoter = readRole(sections[rolePromoter])
	d.Meta.Band = readRole(sections[roleBand])

	if !d.Meta.Promoter.Present {
		if lines := fallbackSection(in.Normalized, promoterRe); lines != nil {
			d.Meta.Promoter = readRole(lines)
		}
	}
	if !d.Meta.Band.Present {
		if lines := fallbackSection(in.Normalized, bandRe); lines != nil {
			d.Meta.Band = readRole(lines)
		}
	}
	return d
}

// headerRole classifies a line as a promoter, band or unrelated section
// header. Bulleted and long lines are never headers.
func headerRole(line string) role {
	if len(line) > maxHeaderChars || bulletRe.MatchString(line) {
		return roleNone
	}
	trimmed := strings.TrimRight(line, " :.-–—")
	colon := strings.HasSuffix(line, ":")
	scan := frontOfRe.ReplaceAllString(line, " ")

	pLoc := lastMatch(promoterRe, scan)
	bLoc := lastMatch(bandRe, scan)
	if pLoc >= 0 || bLoc >= 0 {
		keywordAlone := promoterRe.ReplaceAllString(bandRe.ReplaceAllString(trimmed, ""), "")
		if colon || providedByRe.MatchString(line) || strings.Trim(keywordAlone, " /&") == "" {
			if pLoc > bLoc {
				return rolePromoter
			}
			return roleBand
		}
	}
	if stopRe.MatchString(line) && (colon || len(strings.Fields(trimmed)) <= 3) {
		return roleStop
	}
	return roleNone
}

func lastMatch(re *regexp.Regexp, s string) int {
	locs := re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return -1
	}
	return locs[len(locs)-1][0]
}

// fallbackSection finds a role keyword within fallbackProximity of a
// responsibility verb and returns the lines of the window around it.
func fallbackSection(t string, keyword *regexp.Regexp) []string {
	t = frontOfRe.ReplaceAllStringFunc(t, func(s string) string { return strings.Repeat(" ", len(s)) })
	verbs := responsibilityVerbRe.FindAllStringIndex(t, -1)
	if len(verbs) == 0 {
		return nil
	}
	for _, k := range keyword.FindAllStringIndex(t, -1) {
		for _, v := range verbs {
			if v[0]-k[1] > fallbackProximity || k[0]-v[1] > fallbackProximity {
				continue
			}
			lo := max(0, k[0]-fallbackBefore)
			hi := min(len(t), k[1]+fallbackAfter)
			return strings.Split(strings.TrimSpace(t[lo:hi]), "\n")
		}
	}
	return nil
}

// readRole reads one role's merged section lines.
func readRole(lines []string) types.RoleDivision {
	if len(lines) == 0 {
		return types.RoleDivision{}
	}
	text := strings.Join(lines, "\n")
	r := types.RoleDivision{
		Present:    true,
		HasVerb:    responsibilityVerbRe.MatchString(text),
		Exclusions: exclusionRe.MatchString(text),
		Contact:    emailRe.MatchString(text) || hasPhone(text),
	}

	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			r.RawItems = append(r.RawItems, strings.TrimSpace(m[1]))
		}
	}
	if len(r.RawItems) == 0 && len(lines) > 1 {
		body := strings.Join(lines[1:], " ")
		for _, frag := range strings.FieldsFunc(body, func(c rune) bool { return c == ',' || c == ';' }) {
			if frag = strings.TrimSpace(frag); len(frag) >= minFragmentChars {
				r.RawItems = append(r.RawItems, frag)
			}
			if len(r.RawItems) == maxFragments {
				break
			}
		}
	}
	r.Items = len(r.RawItems)
	r.NormalizedItems = normalizeItems(r.RawItems)
	return r
}

// normalizeItems maps raw items to their first matching category, once
// each, in first-seen order.
func normalizeItems(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, c := range itemCategories {
			if c.re.MatchString(item) {
				if !slices.Contains(out, c.name) {
					out = append(out, c.name)
				}
				break
			}
		}
	}
	return out
}
