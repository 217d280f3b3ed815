// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/rider-engine/pkg/types"
)

const (
	// maxBareChannel bounds channel numbers accepted without a separator.
	maxBareChannel = 64
	// validEntryScore is the minimum entry score of a valid patch entry.
	validEntryScore = 60
)

var (
	// labelledChannelRe matches "ch1:", "canal 2 -", "input 3)".
	labelledChannelRe = regexp.MustCompile(`^(?:ch|chan|channel|canal|input|in|entrada)\s*\.?\s*(\d{1,3})\s*[:.)\-–—|]?\s*(.+)$`)
	// numberedChannelRe matches "3. vocal" and "12 - bass".
	numberedChannelRe = regexp.MustCompile(`^(\d{1,3})\s*[:.)\-–—|]\s*(.+)$`)
	// bareChannelRe matches "7 keys l".
	bareChannelRe = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}.*)$`)

	letterRe = regexp.MustCompile(`\p{L}`)
)

// PatchSignal is the parsed patch list.
type PatchSignal struct {
	Entries []types.PatchEntry

	// Prefixed counts entries that carried a channel prefix.
	Prefixed int
	// Numbered counts valid entries that carried a channel prefix.
	Numbered int
	// ChannelLines counts channel-shaped lines in the whole text.
	ChannelLines int

	// Instruments and MicKeywords are the densities in the flattened text.
	Instruments int
	MicKeywords int
	// KnownModels counts known microphone model mentions.
	KnownModels int
}

// EntryScore grades one entry: description 40, microphone or DI 60, stand
// with a microphone 10 and notes 5, capped at 100.
func EntryScore(e types.PatchEntry) int {
	s := 0
	if e.DescriptionOK {
		s += 40
	}
	if e.MicrophoneOK || e.DirectInputOK {
		s += 60
	}
	if e.MicrophoneOK && e.StandOK {
		s += 10
	}
	if e.NotesOK {
		s += 5
	}
	return min(s, 100)
}

// Valid returns the scores of the valid entries.
func (p PatchSignal) Valid() []int {
	var out []int
	for _, e := range p.Entries {
		if s := EntryScore(e); s >= validEntryScore {
			out = append(out, s)
		}
	}
	return out
}

// Strong counts entries with a description and a microphone or DI.
func (p PatchSignal) Strong() int {
	n := 0
	for _, e := range p.Entries {
		if e.DescriptionOK && (e.MicrophoneOK || e.DirectInputOK) {
			n++
		}
	}
	return n
}

// Dense reports whether the loose density heuristic holds.
func (p PatchSignal) Dense() bool {
	return p.Instruments >= 4 && p.MicKeywords >= 2
}

// Satisfied is the patch_list rule.
func (p PatchSignal) Satisfied() bool {
	strong := p.Strong()
	return strong >= 2 || (strong == 1 && p.ChannelLines >= 3) || p.Dense()
}

// MicroBoost reports whether at least three valid entries were found and no
// line carried a channel prefix.
func (p PatchSignal) MicroBoost() bool {
	return p.Prefixed == 0 && len(p.Valid()) >= 3
}

// PatchCaps are the caps the patch partial is held under.
type PatchCaps struct {
	Prudence int
	Soft     int
}

// Partial grades patch completeness. The naive value is used when nothing
// better is known; alternative microphones earn a bonus.
func (p PatchSignal) Partial(naive int, alt MicAltSignal, caps PatchCaps) int {
	valid := p.Valid()
	var partial int
	switch {
	case len(valid) >= 2:
		sum := 0
		for _, v := range valid {
			sum += v
		}
		partial = int(math.Round(float64(sum) / float64(len(valid))))
	case len(valid) == 1:
		partial = 60
	case p.Instruments >= 6 && p.MicKeywords >= 4:
		partial = 72
	case p.Dense():
		partial = 65
	case p.Instruments >= 3 && p.MicKeywords >= 1:
		partial = 55
	default:
		partial = naive
	}

	if partial > 0 {
		if p.MicroBoost() {
			partial += 5
		}
		if alt.Pairs >= 1 || alt.Equivalent {
			partial += 10
		}
	}
	if p.KnownModels == 0 && p.Numbered < 2 {
		partial = min(partial, caps.Prudence)
	}
	return min(partial, caps.Soft, 100)
}

// ParsePatch parses channel lines. When fewer than two lines carry a
// channel prefix, unprefixed lines that pair an instrument with a
// microphone or DI are accepted too.
func ParsePatch(in Input) PatchSignal {
	p := PatchSignal{
		ChannelLines: len(channelLineRe.FindAllStringIndex(in.Normalized, -1)),
		Instruments:  len(instrumentRe.FindAllStringIndex(in.Flattened, -1)),
		MicKeywords:  len(micModelRe.FindAllStringIndex(in.Flattened, -1)) + len(micWordRe.FindAllStringIndex(in.Flattened, -1)),
		KnownModels:  len(micModelRe.FindAllStringIndex(in.Normalized, -1)),
	}

	var unprefixed []string
	for _, line := range in.Lines {
		ch, rest, ok := channelPrefix(line)
		if !ok {
			unprefixed = append(unprefixed, line)
			continue
		}
		e := parseEntry(rest)
		e.Channel = &ch
		p.Entries = append(p.Entries, e)
		p.Prefixed++
		if EntryScore(e) >= validEntryScore {
			p.Numbered++
		}
	}

	if p.Prefixed < 2 {
		for _, line := range unprefixed {
			if !instrumentRe.MatchString(line) {
				continue
			}
			e := parseEntry(line)
			if e.MicrophoneOK || e.DirectInputOK {
				p.Entries = append(p.Entries, e)
			}
		}
	}
	return p
}

func channelPrefix(line string) (int, string, bool) {
	if m := labelledChannelRe.FindStringSubmatch(line); m != nil {
		return atoiRest(m[1], m[2])
	}
	if m := numberedChannelRe.FindStringSubmatch(line); m != nil {
		return atoiRest(m[1], m[2])
	}
	if m := bareChannelRe.FindStringSubmatch(line); m != nil {
		if ch, rest, ok := atoiRest(m[1], m[2]); ok && ch <= maxBareChannel {
			return ch, rest, true
		}
	}
	return 0, "", false
}

func atoiRest(num, rest string) (int, string, bool) {
	ch, err := strconv.Atoi(num)
	rest = strings.TrimSpace(rest)
	if err != nil || rest == "" {
		return 0, "", false
	}
	return ch, rest, true
}

func parseEntry(text string) types.PatchEntry {
	return types.PatchEntry{
		DescriptionOK: instrumentRe.MatchString(text) || letterRe.MatchString(text),
		MicrophoneOK:  micModelRe.MatchString(text) || micWordRe.MatchString(text),
		DirectInputOK: diRe.MatchString(text) || implicitDIRe.MatchString(text),
		StandOK:       standRe.MatchString(text),
		NotesOK:       notesRe.MatchString(text),
	}
}
