// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score turns the extracted text of a rider PDF into a 0-100
// quality score with per-rule outcomes, graded partials, metadata and
// human-readable guidance.
//
// Scoring is a pure function of the document, the options and the
// profile: the only side channel is the optional colour probe, which
// degrades to a null rule on any failure.
package score

import (
	"context"
	"maps"
	"strconv"

	"github.com/pdiddy/rider-engine/internal/classify"
	"github.com/pdiddy/rider-engine/internal/colour"
	"github.com/pdiddy/rider-engine/internal/narrative"
	"github.com/pdiddy/rider-engine/internal/normalize"
	"github.com/pdiddy/rider-engine/internal/signals"
	"github.com/pdiddy/rider-engine/pkg/types"
)

// ColourChecker inspects a PDF for colour content.
type ColourChecker interface {
	Check(ctx context.Context, path string) colour.Result
}

// Engine scores documents. An Engine is safe for concurrent use.
type Engine struct {
	profile  types.Profile
	colour   ColourChecker
	observer Observer
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithProfile replaces the default scoring profile.
func WithProfile(p types.Profile) Option {
	return func(e *Engine) { e.profile = p }
}

// WithObserver attaches a trace observer. A nil observer disables tracing.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o == nil {
			o = nopObserver{}
		}
		e.observer = o
	}
}

// WithColourChecker replaces the pdfimages-backed colour probe.
func WithColourChecker(c ColourChecker) Option {
	return func(e *Engine) { e.colour = c }
}

// WithParallelDetectors runs the text detectors concurrently.
func WithParallelDetectors(on bool) Option {
	return func(e *Engine) { e.parallel = on }
}

// NewEngine returns an engine with the default profile and colour probe.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		profile:  types.DefaultProfile(),
		colour:   colour.NewProbe(),
		observer: nopObserver{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Profile returns the profile the engine scores with.
func (e *Engine) Profile() types.Profile { return e.profile }

// evidence is the read-only input of the adjustment pipeline.
type evidence struct {
	analysis          *signals.Analysis
	class             classify.Result
	colour            colour.Result
	size              signals.SizeSignal
	profile           types.Profile
	repositoryEnabled bool
}

// Score evaluates one document. It never fails: unusable input yields a
// not_rider result with a score of zero.
func (e *Engine) Score(ctx context.Context, doc types.Document, opts types.Options) types.ScoreResult {
	th := e.profile.Thresholds
	text := normalize.Normalize(doc.Text)
	if text.Normalized == "" {
		return e.emptyResult(opts)
	}

	in := signals.NewInput(text, opts.Now, th.RecentDays, opts.Host)
	a := e.analyze(ctx, in)
	for _, s := range a.Signals() {
		e.trace(StageSignal, s.Name, s.String(), noScore)
	}

	class := classify.Classify(text.Normalized, a, th)
	e.trace(StageClassify, "rider_confidence", strconv.Itoa(class.Confidence), noScore)
	e.trace(StageClassify, "doc_type", string(class.DocType), noScore)

	col := e.colour.Check(ctx, doc.Path)
	e.trace(StageColour, "printable_colours", col.Value.String(), noScore)
	if col.Reason != "" {
		e.trace(StageColour, "reason", col.Reason, noScore)
	}

	ev := &evidence{
		analysis:          a,
		class:             class,
		colour:            col,
		size:              signals.DetectFileSize(doc.Path),
		profile:           e.profile,
		repositoryEnabled: opts.RepositoryLinkEnabled(),
	}

	rules := evaluateRules(ev)
	partials := computePartials(ev, rules)
	settleDivision(rules, partials, th)
	for _, name := range types.RuleOrder {
		if v, ok := rules[name]; ok {
			e.trace(StageRule, string(name), v.String(), noScore)
			e.trace(StagePartial, string(name), strconv.Itoa(partials[name]), noScore)
		}
	}

	state := State{
		Score:    Aggregate(rules, partials, e.profile.Weights),
		Rules:    rules,
		Partials: partials,
	}
	e.trace(StageAggregate, "weighted_average", strconv.Itoa(state.Score), state.Score)

	var adjustments []string
	for _, step := range Steps {
		next := step.Apply(ev, state)
		if changed(state, next) {
			adjustments = append(adjustments, step.Name)
			e.trace(StageAdjust, step.Name, "applied", next.Score)
		}
		state = next
	}
	e.trace(StageFinal, "score", strconv.Itoa(state.Score), state.Score)

	meta := types.Meta{
		Dates:           a.Dates.Meta,
		SoundTech:       a.SoundTech.Meta,
		Division:        a.Division.Meta,
		DocType:         class.DocType,
		RiderConfidence: class.Confidence,
		OCRRecommended:  class.OCRRecommended,
		TextChars:       len([]rune(text.Normalized)),
		Adjustments:     adjustments,
	}

	return types.ScoreResult{
		Rules:                  state.Rules,
		Partials:               state.Partials,
		Score:                  state.Score,
		Comments:               narrative.Comments(state.Rules, meta),
		Meta:                   meta,
		SuggestionBlock:        narrative.Suggestions(state.Rules, opts),
		SuggestionBlockCompact: narrative.Compact(state.Rules, opts),
	}
}

func (e *Engine) analyze(ctx context.Context, in signals.Input) *signals.Analysis {
	if !e.parallel {
		return signals.Analyze(in)
	}
	a, err := signals.AnalyzeParallel(ctx, in)
	if err != nil {
		return signals.Analyze(in)
	}
	return a
}

// emptyResult is the answer for a document with no readable text.
func (e *Engine) emptyResult(opts types.Options) types.ScoreResult {
	rules := types.RuleSet{}
	partials := types.PartialSet{}
	for _, name := range types.RuleOrder {
		if name == types.RuleRepositoryLink && !opts.RepositoryLinkEnabled() {
			continue
		}
		rules[name] = types.TriFalse
		partials[name] = 0
	}
	e.trace(StageFinal, "score", "0", 0)
	return types.ScoreResult{
		Rules:    rules,
		Partials: partials,
		Comments: []string{narrative.EmptyTextComment},
		Meta: types.Meta{
			DocType:        types.DocNotRider,
			OCRRecommended: true,
		},
	}
}

func (e *Engine) trace(stage, name, value string, score int) {
	e.observer.Observe(types.TraceEvent{Stage: stage, Name: name, Value: value, Score: score})
}

// changed reports whether a step altered the score, a rule or a partial.
func changed(before, after State) bool {
	return before.Score != after.Score ||
		!maps.Equal(before.Rules, after.Rules) ||
		!maps.Equal(before.Partials, after.Partials)
}
