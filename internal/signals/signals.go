// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package signals implements the low-level rider detectors. Each detector
// is a pure function of the normalized text views that fills its own slot
// of an Analysis, so detectors can run in any order or concurrently.
package signals

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/rider-engine/internal/normalize"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// Input is what every detector reads.
type Input struct {
	// Normalized is the newline-preserving canonical text.
	Normalized string
	// Flattened is Normalized collapsed to a single line.
	Flattened string
	// Lines are the non-empty lines of Normalized.
	Lines []string

	// Now is the reference date for recency; zero disables recency.
	Now time.Time
	// RecentDays is the maximum age of a recent date.
	RecentDays int
	// Host is the portal hostname; links to it count as repository links.
	Host string
}

// NewInput builds detector input from normalized text.
func NewInput(t normalize.Text, now time.Time, recentDays int, host string) Input {
	return Input{
		Normalized: t.Normalized,
		Flattened:  t.Flattened,
		Lines:      normalize.Lines(t.Normalized),
		Now:        now,
		RecentDays: recentDays,
		Host:       host,
	}
}

// Analysis collects every detector's result for one document.
type Analysis struct {
	Lexicon    LexiconSignal
	Manual     ManualSignal
	Contact    ContactSignal
	Dates      DateSignal
	Repository RepositorySignal
	Shape      ShapeSignal
	Sections   SectionSignal
	SoundTech  SoundTechSignal
	Patch      PatchSignal
	Division   DivisionSignal
	MicAlt     MicAltSignal
}

// Detector is one named entry of the detector table.
type Detector struct {
	Name string
	Run  func(in Input, a *Analysis)
}

// Detectors is the ordered detector table. Each entry writes only its own
// field of Analysis.
var Detectors = []Detector{
	{Name: "lexicon", Run: func(in Input, a *Analysis) { a.Lexicon = DetectLexicon(in) }},
	{Name: "manual", Run: func(in Input, a *Analysis) { a.Manual = DetectManual(in) }},
	{Name: "contact", Run: func(in Input, a *Analysis) { a.Contact = DetectContact(in) }},
	{Name: "dates", Run: func(in Input, a *Analysis) { a.Dates = DetectDates(in) }},
	{Name: "repository", Run: func(in Input, a *Analysis) { a.Repository = DetectRepository(in) }},
	{Name: "shape", Run: func(in Input, a *Analysis) { a.Shape = DetectShape(in) }},
	{Name: "sections", Run: func(in Input, a *Analysis) { a.Sections = DetectSections(in) }},
	{Name: "sound_tech", Run: func(in Input, a *Analysis) { a.SoundTech = DetectSoundTech(in) }},
	{Name: "patch", Run: func(in Input, a *Analysis) { a.Patch = ParsePatch(in) }},
	{Name: "division", Run: func(in Input, a *Analysis) { a.Division = ParseDivision(in) }},
	{Name: "mic_alt", Run: func(in Input, a *Analysis) { a.MicAlt = DetectMicAlternatives(in) }},
}

// Analyze runs every detector sequentially.
func Analyze(in Input) *Analysis {
	a := &Analysis{}
	for _, d := range Detectors {
		d.Run(in, a)
	}
	return a
}

// AnalyzeParallel runs every detector concurrently. The result is
// identical to Analyze.
func AnalyzeParallel(ctx context.Context, in Input) (*Analysis, error) {
	a := &Analysis{}
	g, _ := errgroup.WithContext(ctx)
	for _, d := range Detectors {
		g.Go(func() error {
			d.Run(in, a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return a, ctx.Err()
}

// SignalKind tells how to read a Signal.
type SignalKind string

const (
	KindBoolean  SignalKind = "boolean"
	KindNullable SignalKind = "nullable"
	KindCount    SignalKind = "count"
)

// Signal is one named detector value, flattened for tracing.
type Signal struct {
	Name  string
	Kind  SignalKind
	Value types.Tri
	Count int
}

// String renders the signal value.
func (s Signal) String() string {
	if s.Kind == KindCount {
		return strconv.Itoa(s.Count)
	}
	return s.Value.String()
}

func boolSignal(name string, v bool) Signal {
	return Signal{Name: name, Kind: KindBoolean, Value: types.TriOf(v)}
}

func countSignal(name string, n int) Signal {
	return Signal{Name: name, Kind: KindCount, Count: n}
}

// Signals enumerates the analysis as named signals, in a stable order.
func (a *Analysis) Signals() []Signal {
	return []Signal{
		boolSignal("lexicon.rider", a.Lexicon.Rider),
		boolSignal("lexicon.stage_plot", a.Lexicon.StagePlot),
		boolSignal("lexicon.patch", a.Lexicon.Patch),
		boolSignal("lexicon.audio", a.Lexicon.Audio),
		boolSignal("lexicon.backline", a.Lexicon.Backline),
		boolSignal("lexicon.admin", a.Lexicon.Admin),
		countSignal("lexicon.instruments", a.Lexicon.Instruments),
		countSignal("lexicon.mic_models", a.Lexicon.MicModels),
		countSignal("lexicon.channel_lines", a.Lexicon.ChannelLines),
		countSignal("manual.categories", a.Manual.Categories),
		boolSignal("manual.like", a.Manual.Like),
		boolSignal("contact.satisfied", a.Contact.Satisfied),
		countSignal("contact.hits", a.Contact.Hits()),
		boolSignal("dates.satisfied", a.Dates.Satisfied()),
		boolSignal("dates.recent", a.Dates.Meta.IsRecent),
		boolSignal("repository.link", a.Repository.Link),
		boolSignal("shape.technical", a.Shape.Technical),
		boolSignal("shape.cover_page", a.Shape.CoverPage),
		countSignal("sections.hits", a.Sections.Hits()),
		boolSignal("sound_tech.explicit", a.SoundTech.Meta.Explicit),
		boolSignal("sound_tech.tabular", a.SoundTech.Meta.Tabular),
		boolSignal("sound_tech.has", a.SoundTech.Meta.Has),
		countSignal("patch.entries", len(a.Patch.Entries)),
		countSignal("patch.strong", a.Patch.Strong()),
		countSignal("patch.numbered", a.Patch.Numbered),
		boolSignal("division.promoter", a.Division.Meta.Promoter.Present),
		boolSignal("division.band", a.Division.Meta.Band.Present),
		boolSignal("division.soft_pa", a.Division.SoftPA),
		countSignal("mic_alt.pairs", a.MicAlt.Pairs),
		boolSignal("mic_alt.equivalent", a.MicAlt.Equivalent),
	}
}
