// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"os"

	"github.com/pdiddy/rider-engine/pkg/types"
)

// SizeSignal is the on-disk size of the source file.
type SizeSignal struct {
	Bytes int64
	Known bool
}

// DetectFileSize stats path. An empty path or a stat failure leaves the
// size unknown.
func DetectFileSize(path string) SizeSignal {
	if path == "" {
		return SizeSignal{}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return SizeSignal{}
	}
	return SizeSignal{Bytes: info.Size(), Known: true}
}

// Rule is the file_size rule: null when the size is unknown.
func (s SizeSignal) Rule(th types.Thresholds) types.Tri {
	if !s.Known {
		return types.TriNull
	}
	return types.TriOf(s.Bytes <= th.MaxFileBytes)
}

// Partial grades the size: 100 up to the limit, 60 up to the large-file
// limit, 30 beyond it, 60 when unknown.
func (s SizeSignal) Partial(th types.Thresholds) int {
	switch {
	case !s.Known:
		return 60
	case s.Bytes <= th.MaxFileBytes:
		return 100
	case s.Bytes <= th.LargeFileBytes:
		return 60
	default:
		return 30
	}
}
