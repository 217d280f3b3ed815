// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RuleName identifies one quality rule.
type RuleName string

const (
	RuleContact                RuleName = "contact"
	RuleDateOrVersion          RuleName = "date_or_version"
	RuleRepositoryLink         RuleName = "repository_link"
	RulePrintableColours       RuleName = "printable_colours"
	RuleTechnicalDocShape      RuleName = "technical_doc_shape"
	RuleKeySections            RuleName = "key_sections"
	RuleSoundTechnician        RuleName = "sound_technician"
	RulePatchList              RuleName = "patch_list"
	RuleEquipmentDivision      RuleName = "equipment_division"
	RuleMicrophoneAlternatives RuleName = "microphone_alternatives"
	RuleFileSize               RuleName = "file_size"
)

// RuleOrder is the fixed evaluation and reporting order of all rules.
var RuleOrder = []RuleName{
	RuleContact,
	RuleDateOrVersion,
	RuleRepositoryLink,
	RulePrintableColours,
	RuleTechnicalDocShape,
	RuleKeySections,
	RuleSoundTechnician,
	RulePatchList,
	RuleEquipmentDivision,
	RuleMicrophoneAlternatives,
	RuleFileSize,
}

// RuleSet maps each rule to its nullable outcome.
type RuleSet map[RuleName]Tri

// Clone returns an independent copy.
func (r RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// PartialSet maps each rule to its graded 0-100 contribution.
type PartialSet map[RuleName]int

// Clone returns an independent copy.
func (p PartialSet) Clone() PartialSet {
	out := make(PartialSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// DateMeta describes the dates and version markers found in a document.
type DateMeta struct {
	Years      []int      `json:"years" yaml:"years"`
	LatestYear *int       `json:"latest_year" yaml:"latest_year"`
	LatestDate *time.Time `json:"latest_date" yaml:"latest_date"`
	AgeYears   *int       `json:"age_years" yaml:"age_years"`
	IsRecent   bool       `json:"is_recent" yaml:"is_recent"`
	HasVersion bool       `json:"has_version" yaml:"has_version"`
}

// SoundTechMeta describes how the document names its sound technician.
// FOHOwner and MONOwner are empty when no owner could be extracted.
type SoundTechMeta struct {
	Has         bool   `json:"has" yaml:"has"`
	Explicit    bool   `json:"explicit" yaml:"explicit"`
	ExplicitPos bool   `json:"explicit_pos" yaml:"explicit_pos"`
	ExplicitNeg bool   `json:"explicit_neg" yaml:"explicit_neg"`
	Tabular     bool   `json:"tabular" yaml:"tabular"`
	FOHOwner    string `json:"foh_owner,omitempty" yaml:"foh_owner,omitempty"`
	MONOwner    string `json:"mon_owner,omitempty" yaml:"mon_owner,omitempty"`
}

// RoleDivision is what the document says one party (promoter or band)
// is responsible for.
type RoleDivision struct {
	Present         bool     `json:"present" yaml:"present"`
	HasVerb         bool     `json:"has_verb" yaml:"has_verb"`
	Items           int      `json:"items" yaml:"items"`
	Exclusions      bool     `json:"exclusions" yaml:"exclusions"`
	Contact         bool     `json:"contact" yaml:"contact"`
	RawItems        []string `json:"raw_items" yaml:"raw_items"`
	NormalizedItems []string `json:"normalized_items" yaml:"normalized_items"`
}

// DivisionMeta splits equipment responsibility between promoter and band.
type DivisionMeta struct {
	Promoter RoleDivision `json:"promoter" yaml:"promoter"`
	Band     RoleDivision `json:"band" yaml:"band"`
}

// PatchEntry is one parsed channel line of a patch list. Channel is nil
// for entries accepted without a numeric prefix.
type PatchEntry struct {
	Channel       *int `json:"channel" yaml:"channel"`
	DescriptionOK bool `json:"description_ok" yaml:"description_ok"`
	MicrophoneOK  bool `json:"microphone_ok" yaml:"microphone_ok"`
	DirectInputOK bool `json:"direct_input_ok" yaml:"direct_input_ok"`
	StandOK       bool `json:"stand_ok" yaml:"stand_ok"`
	NotesOK       bool `json:"notes_ok" yaml:"notes_ok"`
}

// Meta groups the metadata reported alongside a score.
type Meta struct {
	Dates           DateMeta      `json:"dates" yaml:"dates"`
	SoundTech       SoundTechMeta `json:"sound_tech" yaml:"sound_tech"`
	Division        DivisionMeta  `json:"division" yaml:"division"`
	DocType         DocType       `json:"doc_type" yaml:"doc_type"`
	RiderConfidence int           `json:"rider_confidence" yaml:"rider_confidence"`
	OCRRecommended  bool          `json:"ocr_recommended" yaml:"ocr_recommended"`
	TextChars       int           `json:"text_chars" yaml:"text_chars"`

	// Adjustments lists, in order, the adjustment steps that changed the
	// aggregated score.
	Adjustments []string `json:"adjustments" yaml:"adjustments"`
}

// ScoreResult is the complete outcome of scoring one document.
type ScoreResult struct {
	Rules                  RuleSet    `json:"rules" yaml:"rules"`
	Partials               PartialSet `json:"partials" yaml:"partials"`
	Score                  int        `json:"score" yaml:"score"`
	Comments               []string   `json:"comments" yaml:"comments"`
	Meta                   Meta       `json:"meta" yaml:"meta"`
	SuggestionBlock        string     `json:"suggestion_block" yaml:"suggestion_block"`
	SuggestionBlockCompact *string    `json:"suggestion_block_compact" yaml:"suggestion_block_compact"`
}

// TraceEvent is one step of the scoring computation, reported to an
// optional observer. Score is the running score when the event belongs to
// the adjustment pipeline and -1 otherwise.
type TraceEvent struct {
	Stage string `json:"stage" yaml:"stage"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Score int    `json:"score" yaml:"score"`
}
