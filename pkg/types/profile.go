// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfileVersion identifies the calibrated defaults returned by
// DefaultProfile. Bump it whenever a weight or threshold changes.
const ProfileVersion = "2026.10"

// Profile is the versioned scoring configuration: rule weights plus the
// thresholds the adjustment pipeline reads. The defaults were tuned against
// a fixture corpus; changing them changes publication outcomes.
type Profile struct {
	// Version labels the profile so scores can be traced to their tuning.
	Version string `json:"version" yaml:"version"`

	// Weights maps each rule to its aggregation weight. Weights are
	// renormalised over the rules actually evaluated.
	Weights map[RuleName]int `json:"weights" yaml:"weights"`

	// Thresholds holds the numeric gates used by rules and adjustments.
	Thresholds Thresholds `json:"thresholds" yaml:"thresholds"`
}

// Thresholds groups the numeric limits of the scoring pipeline.
type Thresholds struct {
	// RiderConfidence is the minimum confidence for doc_type=rider (60).
	RiderConfidence int `json:"rider_confidence" yaml:"rider_confidence"`

	// MaybeRiderConfidence is the minimum confidence for maybe_rider (40).
	MaybeRiderConfidence int `json:"maybe_rider_confidence" yaml:"maybe_rider_confidence"`

	// RecentDays is the maximum age of a "recent" date (730).
	RecentDays int `json:"recent_days" yaml:"recent_days"`

	// MaxFileBytes is the size below which file_size passes (2 MB).
	MaxFileBytes int64 `json:"max_file_bytes" yaml:"max_file_bytes"`

	// LargeFileBytes is the size above which file_size scores 30 (6 MB).
	LargeFileBytes int64 `json:"large_file_bytes" yaml:"large_file_bytes"`

	// PatchPass, DivisionPass and MicAltPass are the partials at which the
	// corresponding rules are promoted to true (60, 55, 60).
	PatchPass    int `json:"patch_pass" yaml:"patch_pass"`
	DivisionPass int `json:"division_pass" yaml:"division_pass"`
	MicAltPass   int `json:"mic_alt_pass" yaml:"mic_alt_pass"`

	// PatchSoftCap is the ceiling of the patch partial (96).
	PatchSoftCap int `json:"patch_soft_cap" yaml:"patch_soft_cap"`

	// PatchPrudenceCap holds the patch partial when no model and fewer
	// than two numbered channels were found (85).
	PatchPrudenceCap int `json:"patch_prudence_cap" yaml:"patch_prudence_cap"`

	// NotRiderCap, MaybeRiderAudioCap and MaybeRiderCap are the document
	// type caps (50, 65, 86).
	NotRiderCap        int `json:"not_rider_cap" yaml:"not_rider_cap"`
	MaybeRiderAudioCap int `json:"maybe_rider_audio_cap" yaml:"maybe_rider_audio_cap"`
	MaybeRiderCap      int `json:"maybe_rider_cap" yaml:"maybe_rider_cap"`

	// ManualMaybeCap and ManualRiderCap cap manual-like documents with no
	// audio vocabulary (40, 45).
	ManualMaybeCap int `json:"manual_maybe_cap" yaml:"manual_maybe_cap"`
	ManualRiderCap int `json:"manual_rider_cap" yaml:"manual_rider_cap"`

	// PrintabilityCap applies when colours fail and nothing else vouches
	// for the document (80).
	PrintabilityCap int `json:"printability_cap" yaml:"printability_cap"`

	// CompressionFloor and CompressionFactor drive FRE80: scores above the
	// floor are compressed by the factor (80, 0.35).
	CompressionFloor  int     `json:"compression_floor" yaml:"compression_floor"`
	CompressionFactor float64 `json:"compression_factor" yaml:"compression_factor"`
}

// DefaultProfile returns the calibrated scoring profile.
func DefaultProfile() Profile {
	return Profile{
		Version: ProfileVersion,
		Weights: map[RuleName]int{
			RuleContact:                16,
			RuleDateOrVersion:          8,
			RuleRepositoryLink:         6,
			RulePrintableColours:       8,
			RuleTechnicalDocShape:      6,
			RuleKeySections:            16,
			RuleSoundTechnician:        10,
			RulePatchList:              18,
			RuleEquipmentDivision:      4,
			RuleMicrophoneAlternatives: 4,
			RuleFileSize:               4,
		},
		Thresholds: Thresholds{
			RiderConfidence:      60,
			MaybeRiderConfidence: 40,
			RecentDays:           730,
			MaxFileBytes:         2 << 20,
			LargeFileBytes:       6 << 20,
			PatchPass:            60,
			DivisionPass:         55,
			MicAltPass:           60,
			PatchSoftCap:         96,
			PatchPrudenceCap:     85,
			NotRiderCap:          50,
			MaybeRiderAudioCap:   65,
			MaybeRiderCap:        86,
			ManualMaybeCap:       40,
			ManualRiderCap:       45,
			PrintabilityCap:      80,
			CompressionFloor:     80,
			CompressionFactor:    0.35,
		},
	}
}
