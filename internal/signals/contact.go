// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"math"
	"regexp"
	"strings"
)

const (
	// contactTailLines is how many trailing lines make up the contact block.
	contactTailLines = 18
	// contactProximity is the widest gap between an email and a phone that
	// still reads as one contact.
	contactProximity = 140
)

var (
	emailRe = regexp.MustCompile(`[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+|00)?\d[\d\s().\-]{7,}\d`)

	roleRe = regexp.MustCompile(`\bfoh\b|\bmonitors?\b|\btechnician\b|\btech\b|\bt[eè]cnic\w*|\bt[eé]cnico\b|\bengineer\b|\benginyer\b|\bingeniero\b|\bmanager\b|\bmanagement\b|\bproduction\b|\bproducci[oó]n?\b|\bregidor\w*|\btour\s+manager\b|\bbooking\b`)

	labelledNameRe = regexp.MustCompile(`(?m)^(?:name|nom|nombre|contact[eo]?|foh|mon|monitors?|sound|so|sonido|t[eè]cnic\w*|manager)\s*:\s*[\p{L}'’\-]{2,}\s+[\p{L}'’\-]{2,}`)

	nameLineRe = regexp.MustCompile(`(?m)^[\p{L}'’\-]{2,}\s+[\p{L}'’\-]{2,}(?:\s+[\p{L}'’\-]{2,})?\s*(?:$|[(,|–\-:])`)
)

// ContactSignal records the technical contact evidence.
type ContactSignal struct {
	Email bool
	Phone bool
	Name  bool
	// Satisfied is the contact rule.
	Satisfied bool
}

// Hits counts email, phone and name evidence.
func (c ContactSignal) Hits() int {
	n := 0
	for _, b := range []bool{c.Email, c.Phone, c.Name} {
		if b {
			n++
		}
	}
	return n
}

// Partial is the contact completeness, one third per hit.
func (c ContactSignal) Partial() int {
	return int(math.Round(100 * float64(c.Hits()) / 3))
}

// DetectContact looks for an email plus a phone in the trailing contact
// block, or close to each other anywhere, with a name or role nearby.
func DetectContact(in Input) ContactSignal {
	t := in.Normalized
	tail := strings.Join(tailLines(in.Lines, contactTailLines), "\n")

	tailEmail := emailRe.MatchString(tail)
	tailPhone := hasPhone(tail)
	tailName := nameLineRe.MatchString(tail)
	tailRole := roleRe.MatchString(tail)

	s := ContactSignal{
		Email: emailRe.MatchString(t),
		Phone: hasPhone(t),
	}

	nearby, nearName := emailPhoneWindow(t)

	s.Satisfied = (tailEmail && tailPhone && (tailRole || tailName)) ||
		nearby ||
		(tailEmail && tailPhone)

	s.Name = (tailName && (tailEmail || tailPhone)) || nearName || labelledNameRe.MatchString(t)
	return s
}

// hasPhone reports whether t holds a phone-shaped run with 9 to 15 digits.
func hasPhone(t string) bool {
	for _, m := range phoneRe.FindAllString(t, -1) {
		if n := countDigits(m); n >= 9 && n <= 15 {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// emailPhoneWindow reports whether some email has a valid phone within
// contactProximity characters, and whether a name or role sits in the span
// around them.
func emailPhoneWindow(t string) (nearby, named bool) {
	emails := emailRe.FindAllStringIndex(t, -1)
	if len(emails) == 0 {
		return false, false
	}
	var phones [][]int
	for _, m := range phoneRe.FindAllStringIndex(t, -1) {
		if n := countDigits(t[m[0]:m[1]]); n >= 9 && n <= 15 {
			phones = append(phones, m)
		}
	}
	for _, e := range emails {
		lo := max(0, e[0]-contactProximity)
		hi := min(len(t), e[1]+contactProximity)
		window := t[lo:hi]
		if nameLineRe.MatchString(window) || labelledNameRe.MatchString(window) {
			named = true
		}
		for _, p := range phones {
			if p[1] < lo || p[0] > hi {
				continue
			}
			if roleRe.MatchString(window) || nameLineRe.MatchString(window) {
				nearby = true
			}
		}
	}
	return nearby, named
}

func tailLines(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
