// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rider-engine/internal/normalize"
	"github.com/pdiddy/rider-engine/pkg/types"
)

var refNow = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

const fullRider = `TECHNICAL RIDER
Els Amics del Soroll
Version 2.1
TECHNICAL NEEDS
Stage plot and patch list below. We need 4 monitors on stage and 2 in-ears for the singer.
PATCH LIST
1. Kick - Beta 91A
2. Snare - SM57 on short stand
3. Hi-hat - SM81
4. Bass - MD421
5. Guitar - e906
6. Vocal - SM58 on tall stand
FOH: Band / MON: Band
EQUIPMENT
Provided by the promoter:
- PA system
- Monitor mixing desk
Provided by the band:
- Drum kit
- Guitar amp
CONTACT
Joan Puig (FOH engineer)
joan@elsamics.cat
+34 600 123 456`

func input(raw string) Input {
	return NewInput(normalize.Normalize(raw), refNow, 730, "riders.example.org")
}

func TestAnalyze_FullRider(t *testing.T) {
	a := Analyze(input(fullRider))

	assert.True(t, a.Lexicon.Rider)
	assert.True(t, a.Lexicon.StagePlot)
	assert.True(t, a.Lexicon.Patch)
	assert.Equal(t, 6, a.Lexicon.MicModels)
	assert.False(t, a.Manual.Like)

	assert.True(t, a.Contact.Satisfied)
	assert.Equal(t, 100, a.Contact.Partial())

	assert.True(t, a.Dates.Meta.HasVersion)
	assert.Equal(t, 100, a.Dates.Partial())

	assert.False(t, a.Repository.Link)
	assert.True(t, a.Shape.Technical)
	assert.False(t, a.Shape.CoverPage)
	assert.True(t, a.Sections.Satisfied())
	assert.Equal(t, 4, a.Sections.Hits())

	assert.True(t, a.SoundTech.Meta.Tabular)
	assert.False(t, a.SoundTech.Meta.Explicit)
	assert.Equal(t, "Band", a.SoundTech.Meta.FOHOwner)
	assert.Equal(t, "Band", a.SoundTech.Meta.MONOwner)

	require.Len(t, a.Patch.Entries, 6)
	assert.Equal(t, 6, a.Patch.Numbered)
	assert.Equal(t, 6, a.Patch.Strong())

	assert.Equal(t, []string{"pa", "monitors"}, a.Division.Meta.Promoter.NormalizedItems)
	assert.Equal(t, []string{"drums", "guitar_amp"}, a.Division.Meta.Band.NormalizedItems)
	assert.Equal(t, 100, a.Division.Partial())

	assert.Equal(t, 0, a.MicAlt.Pairs)
	assert.Equal(t, 60, a.MicAlt.Partial())
}

func TestAnalyzeParallel_MatchesSequential(t *testing.T) {
	in := input(fullRider)
	want := Analyze(in)
	got, err := AnalyzeParallel(context.Background(), in)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(DateSignal{})); diff != "" {
		t.Errorf("parallel analysis differs (-want +got):\n%s", diff)
	}
}

func TestAnalysis_SignalsStableOrder(t *testing.T) {
	a := Analyze(input(fullRider))
	first := a.Signals()
	second := a.Signals()
	require.Equal(t, first, second)
	assert.Equal(t, "lexicon.rider", first[0].Name)
	assert.Equal(t, "true", first[0].String())
	for _, s := range first {
		if s.Name == "patch.numbered" {
			assert.Equal(t, "6", s.String())
		}
	}
}

func TestDetectManual(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "verbatim manual", text: "Espresso machine manual", want: true},
		{name: "three categories", text: "Table of contents\nTroubleshooting\nPress the power button", want: true},
		{name: "rider", text: fullRider, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectManual(input(tt.text)).Like)
		})
	}
}

func TestDetectContact(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		satisfied bool
		hits      int
	}{
		{
			name:      "trailing block",
			text:      "patch\n1. kick\nMaria Soler - FOH\nmaria@example.com\n+34 611 222 333",
			satisfied: true,
			hits:      3,
		},
		{
			name:      "email and phone only",
			text:      "write to info@example.com or call 600 111 222",
			satisfied: true,
			hits:      2,
		},
		{
			name:      "short phone rejected",
			text:      "info@example.com 123 4567",
			satisfied: false,
			hits:      1,
		},
		{name: "nothing", text: "stage plot", satisfied: false, hits: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectContact(input(tt.text))
			assert.Equal(t, tt.satisfied, got.Satisfied)
			assert.Equal(t, tt.hits, got.Hits())
		})
	}
}

func TestDetectDates(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		satisfied  bool
		recent     bool
		latestYear int
		noLatest   bool
		partial    int
	}{
		{name: "version token", text: "rider v2.3", satisfied: true, partial: 100},
		{name: "catalan date", text: "actualitzat el 12 de març de 2026", satisfied: true, recent: true, latestYear: 2026, partial: 90},
		{name: "numeric date", text: "rev 03/02/2025", satisfied: true, recent: true, latestYear: 2025, partial: 100},
		{name: "old year", text: "tour 2022", satisfied: true, latestYear: 2022, partial: 40},
		{name: "future tour year counts", text: "2030 world tour", satisfied: true, noLatest: true, partial: 90},
		{name: "future dated pattern counts", text: "valid until 12/05/2090", satisfied: true, noLatest: true, partial: 90},
		{name: "outside the 2000s", text: "since 1998", satisfied: false, partial: 0},
		{name: "nothing", text: "stage plot", satisfied: false, partial: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDates(input(tt.text))
			assert.Equal(t, tt.satisfied, got.Satisfied())
			assert.Equal(t, tt.recent, got.Meta.IsRecent)
			if tt.latestYear != 0 {
				require.NotNil(t, got.Meta.LatestYear)
				assert.Equal(t, tt.latestYear, *got.Meta.LatestYear)
			}
			if tt.noLatest {
				assert.Nil(t, got.Meta.LatestYear)
				assert.Nil(t, got.Meta.AgeYears)
			}
			assert.Equal(t, tt.partial, got.Partial())
		})
	}
}

func TestDetectDates_NoClock(t *testing.T) {
	got := DetectDates(NewInput(normalize.Normalize("tour 2024"), time.Time{}, 730, ""))
	assert.True(t, got.Satisfied())
	assert.False(t, got.Meta.IsRecent)
	assert.Nil(t, got.Meta.AgeYears)
	assert.Equal(t, []int{2024}, got.Meta.Years)
}

func TestDetectRepository(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "allow-listed host", text: "files: https://drive.google.com/file/d/abc", want: true},
		{name: "portal host", text: "see https://riders.example.org/r/42", want: true},
		{name: "generic url near keyword", text: "latest rider at https://amics.cat/tech", want: true},
		{name: "unrelated url", text: "follow us https://instagram.com/amics", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectRepository(input(tt.text)).Link)
		})
	}
}

func TestDetectShape_CoverPage(t *testing.T) {
	cover := strings.Repeat("a beautiful story about friendship and music. ", 40) + "\nrider\npatch list"
	got := DetectShape(input(cover))
	assert.True(t, got.Technical)
	assert.True(t, got.CoverPage)
}

func TestDetectSections_StagePlot(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "heading", text: "STAGE PLOT", want: true},
		{name: "split by extraction", text: "see the sta ge plot below", want: true},
		{name: "split across lines", text: "attached sta\nge plan", want: true},
		{name: "unrelated words", text: "a vintage plotter", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSections(input(tt.text)).StagePlot)
		})
	}
}

func TestDetectSoundTech(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		explicit bool
		neg      bool
		tabular  bool
		foh      string
		partial  int
	}{
		{name: "explicit positive", text: "We bring our own sound engineer.", explicit: true, partial: 100},
		{name: "explicit negative catalan", text: "No portem tècnic de so.", explicit: true, neg: true, partial: 100},
		{name: "tabular venue", text: "FOH: venue\nMON: band", tabular: true, foh: "Venue", partial: 80},
		{name: "dash form with name", text: "foh - marc roca", tabular: true, foh: "Marc Roca", partial: 80},
		{name: "bare mention", text: "the foh position must be central", partial: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSoundTech(input(tt.text))
			assert.Equal(t, tt.explicit, got.Meta.Explicit)
			assert.Equal(t, tt.neg, got.Meta.ExplicitNeg)
			assert.Equal(t, tt.tabular, got.Meta.Tabular)
			assert.Equal(t, tt.foh, got.Meta.FOHOwner)
			assert.True(t, got.Satisfied())
			assert.Equal(t, tt.partial, got.Partial(0))
		})
	}
}

func TestSoundTechPartial_ContactFloor(t *testing.T) {
	assert.Equal(t, 60, SoundTechSignal{}.Partial(80))
	assert.Equal(t, 0, SoundTechSignal{}.Partial(79))
}

func TestParsePatch(t *testing.T) {
	caps := PatchCaps{Prudence: 85, Soft: 96}

	t.Run("numbered entries", func(t *testing.T) {
		p := ParsePatch(input("ch1: kick beta 52\nch2: snare sm57\nch 3 - keys di"))
		require.Len(t, p.Entries, 3)
		require.NotNil(t, p.Entries[2].Channel)
		assert.Equal(t, 3, *p.Entries[2].Channel)
		assert.True(t, p.Entries[2].DirectInputOK)
		assert.True(t, p.Satisfied())
		assert.Equal(t, 96, p.Partial(0, MicAltSignal{}, caps))
	})

	t.Run("unprefixed second pass", func(t *testing.T) {
		p := ParsePatch(input("vocal - kms105\nguitar - sm57\nbass - di"))
		assert.Len(t, p.Entries, 3)
		assert.Equal(t, 0, p.Numbered)
		assert.True(t, p.Satisfied())
		assert.True(t, p.MicroBoost())
		assert.Equal(t, 96, p.Partial(0, MicAltSignal{}, caps))
	})

	t.Run("one prefixed line blocks the micro-boost", func(t *testing.T) {
		p := ParsePatch(input("1. intro notes\nvocal - kms105\nguitar - sm57\nbass - di"))
		assert.Equal(t, 1, p.Prefixed)
		assert.Equal(t, 0, p.Numbered)
		assert.Len(t, p.Valid(), 3)
		assert.False(t, p.MicroBoost())
	})

	t.Run("prudence cap without models", func(t *testing.T) {
		p := ParsePatch(input("vocal mic on stand\nguitar mic\nbass di\nkeys di"))
		assert.Equal(t, 0, p.KnownModels)
		assert.LessOrEqual(t, p.Partial(0, MicAltSignal{}, caps), 85)
	})

	t.Run("density fallback", func(t *testing.T) {
		p := ParsePatch(input("drums\nbass\nguitar\nvocals\nmics: sm58 and beta 52"))
		assert.Empty(t, p.Valid())
		assert.Equal(t, 65, p.Partial(0, MicAltSignal{}, caps))
	})

	t.Run("single valid entry", func(t *testing.T) {
		p := ParsePatch(input("1. vocal sm58"))
		assert.Equal(t, 60, p.Partial(0, MicAltSignal{}, caps))
	})
}

func TestEntryScore(t *testing.T) {
	assert.Equal(t, 100, EntryScore(types.PatchEntry{DescriptionOK: true, MicrophoneOK: true, StandOK: true, NotesOK: true}))
	assert.Equal(t, 60, EntryScore(types.PatchEntry{DirectInputOK: true}))
	assert.Equal(t, 45, EntryScore(types.PatchEntry{DescriptionOK: true, NotesOK: true}))
}

func TestParseDivision(t *testing.T) {
	t.Run("inline foh line is not a header", func(t *testing.T) {
		d := ParseDivision(input("FOH: Band / MON: Band"))
		assert.False(t, d.Meta.Band.Present)
		assert.Equal(t, 0, d.Partial())
	})

	t.Run("single role capped", func(t *testing.T) {
		d := ParseDivision(input("Band provides:\n- drums\n- bass amp\n- guitar amp"))
		assert.True(t, d.Meta.Band.Present)
		assert.False(t, d.Meta.Promoter.Present)
		assert.Equal(t, 50, d.Partial())
	})

	t.Run("implied venue lifts the cap only", func(t *testing.T) {
		d := ParseDivision(input("Powerful enough PA required.\nBand provides:\n- drums\n- bass amp\n- guitar amp"))
		assert.True(t, d.ImplicitPromoter)
		assert.False(t, d.Meta.Promoter.Present)
		assert.Equal(t, 50, d.Partial())
	})

	t.Run("soft pa floor", func(t *testing.T) {
		d := ParseDivision(input("we will use the house pa"))
		assert.True(t, d.SoftPA)
		assert.Equal(t, 55, d.Partial())
	})

	t.Run("fallback window", func(t *testing.T) {
		d := ParseDivision(input("the venue will provide a pa system, monitor desk, and all stage cabling for the show"))
		assert.True(t, d.Meta.Promoter.Present)
		assert.True(t, d.Meta.Promoter.HasVerb)
	})

	t.Run("catalan headers merged", func(t *testing.T) {
		d := ParseDivision(input("A càrrec de l'organització:\n- equip de so\nA càrrec del grup:\n- bateria\nA càrrec de l'organització:\n- cablejat"))
		assert.Equal(t, 2, d.Meta.Promoter.Items)
		assert.Equal(t, []string{"pa", "cables"}, d.Meta.Promoter.NormalizedItems)
		assert.Equal(t, []string{"drums"}, d.Meta.Band.NormalizedItems)
	})
}

func TestDetectMicAlternatives(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pairs   int
		rule    bool
		partial int
	}{
		{
			name:    "five pairs",
			text:    "1. kick sm57 or e906\n2. snare sm57 or e906\n3. tom sm57 or e906\n4. gtr sm57 or e906\n5. vox sm57 or e906",
			pairs:   5,
			rule:    true,
			partial: 100,
		},
		{name: "slash pair", text: "vocal: sm58 / beta 58a", pairs: 1, rule: true, partial: 60},
		{name: "equivalent phrase", text: "dynamic mics or equivalent", rule: true, partial: 60},
		{name: "standard kit", text: "standard mic kit", rule: false, partial: 48},
		{name: "nothing", text: "stage plot", rule: false, partial: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMicAlternatives(input(tt.text))
			assert.Equal(t, tt.pairs, got.Pairs)
			assert.Equal(t, tt.rule, got.Satisfied())
			assert.Equal(t, tt.partial, got.Partial())
		})
	}
}

func TestDetectFileSize(t *testing.T) {
	th := types.DefaultProfile().Thresholds

	assert.Equal(t, types.TriNull, DetectFileSize("").Rule(th))
	assert.Equal(t, 60, DetectFileSize(filepath.Join(t.TempDir(), "missing.pdf")).Partial(th))

	path := filepath.Join(t.TempDir(), "rider.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	s := DetectFileSize(path)
	assert.Equal(t, types.TriTrue, s.Rule(th))
	assert.Equal(t, 100, s.Partial(th))

	assert.Equal(t, 60, SizeSignal{Bytes: 3 << 20, Known: true}.Partial(th))
	assert.Equal(t, 30, SizeSignal{Bytes: 7 << 20, Known: true}.Partial(th))
}
