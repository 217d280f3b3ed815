// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trace reports scoring trace events through zap.
package trace

import (
	"go.uber.org/zap"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// ZapObserver logs every trace event at debug level.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver returns an observer writing to logger. The document
// fields are attached to every event; pass none for a bare logger.
func NewZapObserver(logger *zap.Logger, fields ...zap.Field) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.With(fields...)}
}

// Observe implements score.Observer.
func (o *ZapObserver) Observe(ev types.TraceEvent) {
	if ce := o.logger.Check(zap.DebugLevel, "score trace"); ce != nil {
		fields := []zap.Field{
			zap.String("stage", ev.Stage),
			zap.String("name", ev.Name),
			zap.String("value", ev.Value),
		}
		if ev.Score >= 0 {
			fields = append(fields, zap.Int("score", ev.Score))
		}
		ce.Write(fields...)
	}
}
