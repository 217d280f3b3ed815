// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import "github.com/pdiddy/rider-engine/pkg/types"

// Trace stages.
const (
	StageSignal    = "signal"
	StageClassify  = "classify"
	StageColour    = "colour"
	StageRule      = "rule"
	StagePartial   = "partial"
	StageAggregate = "aggregate"
	StageAdjust    = "adjust"
	StageFinal     = "final"
)

// noScore marks trace events outside the adjustment pipeline.
const noScore = -1

// Observer receives trace events while a document is scored. It must not
// retain the engine or block for long.
type Observer interface {
	Observe(ev types.TraceEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev types.TraceEvent)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev types.TraceEvent) { f(ev) }

type nopObserver struct{}

func (nopObserver) Observe(types.TraceEvent) {}
