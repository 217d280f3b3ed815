// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"time"
)

// Document is the input handed to the scoring engine: the plain-text
// extraction of one uploaded PDF plus, optionally, the PDF's path on disk.
type Document struct {
	// Text is the extractor's plain-text output. It may be empty or noisy.
	Text string `json:"text" yaml:"text"`

	// Path is the PDF file path used for size and colour inspection.
	// Empty means neither can be evaluated.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Options carries per-call rendering and policy settings.
type Options struct {
	// Ref identifies the rider when rendering suggestion links.
	Ref string `json:"ref" yaml:"ref"`

	// Host is the portal hostname used when rendering suggestion links.
	Host string `json:"host" yaml:"host"`

	// VersionLabel is the version string proposed in the compact suggestion
	// template. Empty falls back to "v1.0".
	VersionLabel string `json:"version_label,omitempty" yaml:"version_label,omitempty"`

	// DisableRepositoryLink removes the repository-link rule from scoring,
	// comments and suggestions. The zero value keeps the rule enabled.
	DisableRepositoryLink bool `json:"disable_repository_link,omitempty" yaml:"disable_repository_link,omitempty"`

	// Now is the reference date for recency checks and suggestion date
	// stamps. A zero Now disables recency evaluation.
	Now time.Time `json:"now" yaml:"now"`
}

// RepositoryLinkEnabled reports whether the repository-link rule takes part
// in scoring.
func (o Options) RepositoryLinkEnabled() bool {
	return !o.DisableRepositoryLink
}

// DocType classifies a document by how much it reads like a rider.
type DocType string

const (
	DocRider      DocType = "rider"
	DocMaybeRider DocType = "maybe_rider"
	DocNotRider   DocType = "not_rider"
)

// Tri is a nullable boolean: a rule is satisfied, not satisfied, or could
// not be evaluated.
type Tri int8

const (
	TriNull Tri = iota
	TriFalse
	TriTrue
)

// TriOf converts a plain boolean.
func TriOf(b bool) Tri {
	if b {
		return TriTrue
	}
	return TriFalse
}

// Known reports whether the value was evaluated.
func (t Tri) Known() bool { return t != TriNull }

// IsTrue reports whether the value is known and true.
func (t Tri) IsTrue() bool { return t == TriTrue }

func (t Tri) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "null"
	}
}

// MarshalJSON renders true, false or null.
func (t Tri) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalJSON accepts true, false or null.
func (t *Tri) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	switch {
	case b == nil:
		*t = TriNull
	case *b:
		*t = TriTrue
	default:
		*t = TriFalse
	}
	return nil
}

// MarshalYAML renders true, false or null.
func (t Tri) MarshalYAML() (any, error) {
	switch t {
	case TriTrue:
		return true, nil
	case TriFalse:
		return false, nil
	default:
		return nil, nil
	}
}
