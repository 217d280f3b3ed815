// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize produces the canonical lower-cased views of extracted
// rider text that every detector reads.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// horizontalRe matches runs of non-newline whitespace, including the
	// no-break and thin spaces PDF extractors like to emit.
	horizontalRe = regexp.MustCompile(`[\t\f\v \x{00A0}\x{2000}-\x{200B}\x{202F}\x{205F}\x{3000}]+`)

	// breakRe matches a run of line breaks with any padding between them.
	breakRe = regexp.MustCompile(`(?: ?[\n\x{2028}\x{2029}\x{0085}] ?)+`)

	// anySpaceRe matches any whitespace run.
	anySpaceRe = regexp.MustCompile(`\s+`)
)

// Text holds both views of one document. Neither is cached across calls.
type Text struct {
	// Normalized is lower-cased with whitespace collapsed and one newline
	// between lines.
	Normalized string

	// Flattened is Normalized on a single line, for detectors that must
	// survive an extractor breaking words across lines.
	Flattened string
}

// Normalize builds both views of raw.
func Normalize(raw string) Text {
	n := Canonical(raw)
	return Text{
		Normalized: n,
		Flattened:  Flatten(n),
	}
}

// Canonical lower-cases raw (Unicode-aware), collapses horizontal
// whitespace to one space, collapses line-break runs to one newline and
// trims the result.
func Canonical(raw string) string {
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalRe.ReplaceAllString(s, " ")
	s = breakRe.ReplaceAllString(s, "\n")
	s = cases.Lower(language.Und).String(s)
	return strings.TrimSpace(s)
}

// Flatten collapses every whitespace run, newlines included, to one space.
func Flatten(s string) string {
	return strings.TrimSpace(anySpaceRe.ReplaceAllString(s, " "))
}

// Lines splits normalized text into its non-empty lines.
func Lines(normalized string) []string {
	if normalized == "" {
		return nil
	}
	parts := strings.Split(normalized, "\n")
	lines := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
