// Package render derives display fields from session telemetry and
// composes them into a single statusline in one of three styles.
package render

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options carries the configurable display constants. These track external
// model specifications (context windows, latency profiles) and are loaded
// from config rather than hard-wired at call sites.
type Options struct {
	CostMediumUSD  float64
	CostHighUSD    float64
	FastAPIRatio   float64
	NormalAPIRatio float64
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		CostMediumUSD:  0.05,
		CostHighUSD:    0.10,
		FastAPIRatio:   0.10,
		NormalAPIRatio: 0.30,
	}
}

// Tier classifies session cost into a color bucket. The same boundaries
// drive every style.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// CostTier buckets a session cost: > high threshold is TierHigh, > medium
// threshold is TierMedium, everything else (boundaries included) TierLow.
func CostTier(costUSD float64, o Options) Tier {
	switch {
	case costUSD > o.CostHighUSD:
		return TierHigh
	case costUSD > o.CostMediumUSD:
		return TierMedium
	default:
		return TierLow
	}
}

// color maps a tier onto the theme palette.
func (t Tier) color(th Theme) lipgloss.Color {
	switch t {
	case TierHigh:
		return th.CostHigh
	case TierMedium:
		return th.CostMedium
	default:
		return th.CostLow
	}
}

// minBurnDurationMs is the floor below which a burn rate is statistically
// meaningless and therefore omitted.
const minBurnDurationMs = 60_000

// FormatCost renders a session cost with four decimal places.
func FormatCost(costUSD float64) string {
	return fmt.Sprintf("$%.4f", costUSD)
}

// BurnRate returns the cost-per-hour display. ok is false when the session
// is shorter than a minute.
func BurnRate(costUSD float64, durationMs int64) (string, bool) {
	if durationMs < minBurnDurationMs {
		return "", false
	}
	rate := costUSD / (float64(durationMs) / 3_600_000)
	return fmt.Sprintf("$%.2f/h", rate), true
}

// FormatDuration renders elapsed time: "2m5s" at a minute or more,
// "45s" below.
func FormatDuration(durationMs int64) string {
	secs := durationMs / 1000
	if durationMs >= 60_000 {
		return fmt.Sprintf("%dm%ds", secs/60, secs%60)
	}
	return fmt.Sprintf("%ds", secs)
}

// Efficiency classifies how much of the wall clock was spent waiting on
// API calls. EffNone means no marker (no API duration reported).
type Efficiency int

const (
	EffNone Efficiency = iota
	EffFast
	EffNormal
	EffSlow
)

// ClassifyEfficiency derives the efficiency tier from API vs total duration.
func ClassifyEfficiency(apiMs, totalMs int64, o Options) Efficiency {
	if apiMs <= 0 || totalMs <= 0 {
		return EffNone
	}
	ratio := float64(apiMs) / float64(totalMs)
	switch {
	case ratio < o.FastAPIRatio:
		return EffFast
	case ratio < o.NormalAPIRatio:
		return EffNormal
	default:
		return EffSlow
	}
}

// Marker returns the display glyph for an efficiency tier.
func (e Efficiency) Marker() string {
	switch e {
	case EffFast:
		return "⚡"
	case EffNormal:
		return "•"
	case EffSlow:
		return "🐢"
	default:
		return ""
	}
}

// ShortenDir renders a directory for display: project-relative when a
// distinct project root is known, otherwise home-contracted; paths longer
// than maxLen collapse to the last two segments.
func ShortenDir(current, project, home string, maxLen int) string {
	display := current

	switch {
	case project != "" && project != current && strings.HasPrefix(current, project+"/"):
		rel := strings.TrimPrefix(current, project+"/")
		display = filepath.Base(project) + "/" + rel
	case home != "" && current == home:
		display = "~"
	case home != "" && strings.HasPrefix(current, home+"/"):
		display = "~" + strings.TrimPrefix(current, home)
	}

	if len(display) > maxLen {
		segs := strings.Split(strings.Trim(display, "/"), "/")
		switch {
		case len(segs) >= 2:
			display = "…/" + segs[len(segs)-2] + "/" + segs[len(segs)-1]
		case len(segs) == 1 && segs[0] != "":
			display = "…/" + segs[0]
		}
	}

	return display
}

// contextBarWidth is the fixed cell count of the usage bar.
const contextBarWidth = 8

// ContextBar renders the fixed-width usage bar. The filled count is
// round(pct*8/100) clamped to the bar width, so overruns past 100% still
// draw a full (never wider) bar.
func ContextBar(percentage int) string {
	filled := int(math.Round(float64(percentage) * contextBarWidth / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > contextBarWidth {
		filled = contextBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", contextBarWidth-filled)
}

// LineDelta formats the net line-change indicator: "↑33" for net
// additions, "↓5" for net removals (magnitude unsigned), "=" for break-even.
func LineDelta(added, removed int64) string {
	net := added - removed
	switch {
	case net > 0:
		return fmt.Sprintf("↑%d", net)
	case net < 0:
		return fmt.Sprintf("↓%d", -net)
	default:
		return "="
	}
}

// modelGlyphs maps model families onto display glyphs. The list is ordered
// and matched by case-insensitive substring; first hit wins.
var modelGlyphs = []struct {
	substr string
	glyph  string
}{
	{"opus", "🎭"},
	{"sonnet", "🎵"},
	{"haiku", "🍃"},
}

const (
	fallbackGlyph   = "🤖"
	fallbackNameMax = 7
)

// ModelGlyph returns the family glyph and display name for a model. Names
// outside the known families get the generic glyph and a truncated name.
func ModelGlyph(name string) (glyph, display string) {
	lower := strings.ToLower(name)
	for _, m := range modelGlyphs {
		if strings.Contains(lower, m.substr) {
			return m.glyph, name
		}
	}
	display = name
	if len(display) > fallbackNameMax {
		display = display[:fallbackNameMax]
	}
	return fallbackGlyph, display
}
