// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/pdiddy/rider-engine/pkg/types"
)

const (
	minYear = 2000
	maxYear = 2099
)

var (
	versionRe = regexp.MustCompile(`\bv\d+(?:\.\d+)+\b|\bv\.\s?\d+\b|\bversi(?:on|ó|ón)\s*:?\s*\d+(?:\.\d+)*|\brev(?:isi(?:on|ó|ón))?\.?\s*:?\s*\d+\b|\bedici(?:ó|ón)\s*:?\s*\d+|\bedition\s*:?\s*\d+|\b\d+(?:st|nd|rd|th)\s+edition\b`)

	dmyRe = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](20\d{2}|\d{2})\b`)

	monthNames = `gener|febrer|març|abril|maig|juny|juliol|agost|setembre|octubre|novembre|desembre|enero|febrero|marzo|mayo|junio|julio|agosto|septiembre|setiembre|noviembre|diciembre|january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec`

	// dayMonthYearRe matches "12 de març de 2025", "3 d'octubre 2024" and
	// "12 march 2025".
	dayMonthYearRe = regexp.MustCompile(`\b(\d{1,2})\s+(?:de\s+|d['’]\s*)?(` + monthNames + `)\.?\s*,?\s+(?:de\s+|del\s+)?(20\d{2})\b`)

	// monthDayYearRe matches "march 12, 2025".
	monthDayYearRe = regexp.MustCompile(`\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(20\d{2})\b`)

	// monthYearRe matches "març 2025", "octubre de 2024" and "june, 2023".
	monthYearRe = regexp.MustCompile(`\b(` + monthNames + `)\.?,?\s+(?:de\s+|del\s+)?(20\d{2})\b`)

	yearRe = regexp.MustCompile(`\b(20\d{2})\b`)
)

var monthNumbers = map[string]time.Month{
	"gener": time.January, "enero": time.January, "january": time.January, "jan": time.January,
	"febrer": time.February, "febrero": time.February, "february": time.February, "feb": time.February,
	"març": time.March, "marzo": time.March, "march": time.March, "mar": time.March,
	"abril": time.April, "april": time.April, "apr": time.April,
	"maig": time.May, "mayo": time.May, "may": time.May,
	"juny": time.June, "junio": time.June, "june": time.June, "jun": time.June,
	"juliol": time.July, "julio": time.July, "july": time.July, "jul": time.July,
	"agost": time.August, "agosto": time.August, "august": time.August, "aug": time.August,
	"setembre": time.September, "septiembre": time.September, "setiembre": time.September, "september": time.September, "sep": time.September, "sept": time.September,
	"octubre": time.October, "october": time.October, "oct": time.October,
	"novembre": time.November, "noviembre": time.November, "november": time.November, "nov": time.November,
	"desembre": time.December, "diciembre": time.December, "december": time.December, "dec": time.December,
}

// DateSignal records version markers and the dates found in the text.
type DateSignal struct {
	Meta types.DateMeta
	// Pattern is set when a day-month-year or month-year date was found.
	Pattern bool
	// now is the reference date the metadata was computed against.
	now time.Time
}

// Satisfied is the date_or_version rule.
func (d DateSignal) Satisfied() bool {
	return d.Meta.HasVersion || d.Pattern || d.Meta.IsRecent || len(d.Meta.Years) > 0
}

// Partial grades the date evidence.
func (d DateSignal) Partial() int {
	switch {
	case d.Meta.HasVersion:
		return 100
	case !d.now.IsZero() && len(d.Meta.Years) > 0 && slices.Max(d.Meta.Years) >= d.now.Year()-2:
		return 90
	case d.Meta.AgeYears != nil && *d.Meta.AgeYears >= 3 && *d.Meta.AgeYears <= 4:
		return 40
	}
	if d.Satisfied() {
		return 100
	}
	return 0
}

// DetectDates extracts version markers, dated patterns and plausible years.
// Year-only mentions date to the 31st of December of that year. Every year in
// the 2000s counts towards the rule; only years up to next year feed the
// latest date and recency.
func DetectDates(in Input) DateSignal {
	t := in.Normalized
	valid := func(y int) bool { return y >= minYear && y <= maxYear }
	datable := func(y int) bool { return valid(y) && (in.Now.IsZero() || y <= in.Now.Year()+1) }

	d := DateSignal{now: in.Now}
	d.Meta.HasVersion = versionRe.MatchString(t)

	years := map[int]bool{}
	var dates []time.Time
	add := func(y int, m time.Month, day int) {
		if !valid(y) {
			return
		}
		d.Pattern = true
		years[y] = true
		if !datable(y) || m < time.January || m > time.December || day < 1 || day > 31 {
			return
		}
		dates = append(dates, time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
	}

	for _, m := range dmyRe.FindAllStringSubmatch(t, -1) {
		day, _ := strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		add(y, time.Month(mon), day)
	}
	for _, m := range dayMonthYearRe.FindAllStringSubmatch(t, -1) {
		day, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[3])
		add(y, monthNumbers[m[2]], day)
	}
	for _, m := range monthDayYearRe.FindAllStringSubmatch(t, -1) {
		day, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		add(y, monthNumbers[m[1]], day)
	}
	for _, m := range monthYearRe.FindAllStringSubmatch(t, -1) {
		y, _ := strconv.Atoi(m[2])
		if !valid(y) {
			continue
		}
		d.Pattern = true
		years[y] = true
		// Last day of the month.
		if datable(y) {
			dates = append(dates, time.Date(y, monthNumbers[m[1]]+1, 0, 0, 0, 0, 0, time.UTC))
		}
	}

	for _, m := range yearRe.FindAllStringSubmatch(t, -1) {
		y, _ := strconv.Atoi(m[1])
		if !valid(y) {
			continue
		}
		years[y] = true
		if datable(y) {
			dates = append(dates, time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC))
		}
	}
	for y := range years {
		d.Meta.Years = append(d.Meta.Years, y)
	}
	slices.Sort(d.Meta.Years)

	if len(dates) == 0 {
		return d
	}
	latest := slices.MaxFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	ly := latest.Year()
	d.Meta.LatestYear = &ly
	d.Meta.LatestDate = &latest

	if in.Now.IsZero() {
		return d
	}
	age := max(0, in.Now.Year()-ly)
	d.Meta.AgeYears = &age
	days := int(in.Now.Sub(latest).Hours() / 24)
	d.Meta.IsRecent = days <= in.RecentDays
	return d
}
