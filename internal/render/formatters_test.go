package render

import (
	"strings"
	"testing"
)

func TestCostTier_Boundaries(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		cost float64
		want Tier
	}{
		{0, TierLow},
		{0.05, TierLow},        // boundary stays low
		{0.0500001, TierMedium},
		{0.10, TierMedium}, // boundary stays medium
		{0.1000001, TierHigh},
		{5.0, TierHigh},
	}
	for _, tt := range tests {
		if got := CostTier(tt.cost, opts); got != tt.want {
			t.Errorf("CostTier(%v) = %v, want %v", tt.cost, got, tt.want)
		}
	}
}

func TestBurnRate(t *testing.T) {
	// 0.0456 over 125s is $1.31/h
	got, ok := BurnRate(0.0456, 125000)
	if !ok {
		t.Fatal("BurnRate returned !ok for a 125s session")
	}
	if got != "$1.31/h" {
		t.Errorf("BurnRate = %q, want $1.31/h", got)
	}
}

func TestBurnRate_ShortSessionOmitted(t *testing.T) {
	if _, ok := BurnRate(1.0, 59999); ok {
		t.Error("BurnRate ok for a sub-minute session, want omitted")
	}
	if _, ok := BurnRate(1.0, 60000); !ok {
		t.Error("BurnRate !ok at exactly one minute")
	}
	if _, ok := BurnRate(1.0, 0); ok {
		t.Error("BurnRate ok for zero duration")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0s"},
		{999, "0s"},
		{45000, "45s"},
		{59999, "59s"},
		{60000, "1m0s"},
		{125000, "2m5s"},
		{3600000, "60m0s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.ms); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestClassifyEfficiency(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		api, total int64
		want       Efficiency
	}{
		{0, 100000, EffNone},
		{5000, 0, EffNone},
		{5000, 100000, EffFast},    // 5%
		{15000, 100000, EffNormal}, // 15%
		{10000, 100000, EffNormal}, // exactly 10% is not fast
		{50000, 100000, EffSlow},   // 50%
		{30000, 100000, EffSlow},   // exactly 30% is slow
	}
	for _, tt := range tests {
		if got := ClassifyEfficiency(tt.api, tt.total, opts); got != tt.want {
			t.Errorf("ClassifyEfficiency(%d, %d) = %v, want %v", tt.api, tt.total, got, tt.want)
		}
	}
}

func TestEfficiencyMarker(t *testing.T) {
	if EffNone.Marker() != "" {
		t.Error("EffNone should render no marker")
	}
	for _, e := range []Efficiency{EffFast, EffNormal, EffSlow} {
		if e.Marker() == "" {
			t.Errorf("%v has empty marker", e)
		}
	}
}

func TestShortenDir(t *testing.T) {
	const home = "/home/u"
	tests := []struct {
		name     string
		current  string
		project  string
		max      int
		want     string
	}{
		{"home itself", home, "", 28, "~"},
		{"under home", "/home/u/src/app", "", 28, "~/src/app"},
		{"outside home", "/srv/data", "", 28, "/srv/data"},
		{"project relative", "/home/u/src/app/internal/api", "/home/u/src/app", 28, "app/internal/api"},
		{"at project root stays home-relative", "/home/u/src/app", "/home/u/src/app", 28, "~/src/app"},
		{
			"overlong collapses to last two segments",
			"/home/u/src/app/very/long/nested/path/inside",
			"", 20,
			"…/path/inside",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortenDir(tt.current, tt.project, home, tt.max); got != tt.want {
				t.Errorf("ShortenDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextBar(t *testing.T) {
	tests := []struct {
		pct    int
		filled int
	}{
		{0, 0},
		{45, 4},  // round(3.6)
		{50, 4},
		{56, 4},  // round(4.48)
		{57, 5},  // round(4.56)
		{100, 8},
		{150, 8}, // clamped, never wider than the bar
		{-10, 0},
	}
	for _, tt := range tests {
		bar := ContextBar(tt.pct)
		filled := strings.Count(bar, "█")
		empty := strings.Count(bar, "░")
		if filled != tt.filled {
			t.Errorf("ContextBar(%d) filled = %d, want %d", tt.pct, filled, tt.filled)
		}
		if filled+empty != 8 {
			t.Errorf("ContextBar(%d) width = %d cells, want 8", tt.pct, filled+empty)
		}
	}
}

func TestLineDelta(t *testing.T) {
	tests := []struct {
		added, removed int64
		want           string
	}{
		{45, 12, "↑33"},
		{12, 45, "↓33"},
		{10, 10, "="},
		{0, 0, "="},
	}
	for _, tt := range tests {
		if got := LineDelta(tt.added, tt.removed); got != tt.want {
			t.Errorf("LineDelta(%d, %d) = %q, want %q", tt.added, tt.removed, got, tt.want)
		}
	}
}

func TestModelGlyph(t *testing.T) {
	tests := []struct {
		name        string
		wantGlyph   string
		wantDisplay string
	}{
		{"Opus", "🎭", "Opus"},
		{"claude-opus-4", "🎭", "claude-opus-4"},
		{"Sonnet 4.5", "🎵", "Sonnet 4.5"},
		{"Haiku", "🍃", "Haiku"},
		{"Unknown", "🤖", "Unknown"},
		{"SomethingVeryLong", "🤖", "Somethi"}, // unknown names truncate to 7
	}
	for _, tt := range tests {
		glyph, display := ModelGlyph(tt.name)
		if glyph != tt.wantGlyph || display != tt.wantDisplay {
			t.Errorf("ModelGlyph(%q) = %q %q, want %q %q",
				tt.name, glyph, display, tt.wantGlyph, tt.wantDisplay)
		}
	}
}
