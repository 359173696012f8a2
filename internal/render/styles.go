package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ccline/internal/gitinfo"
	"ccline/internal/snapshot"
	"ccline/internal/transcript"
)

// Style selects one of the statusline layouts.
type Style int

const (
	StyleBasic Style = iota
	StyleMinimal
	StyleSegments
)

// StyleByName resolves a style name from config or flags.
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "basic":
		return StyleBasic, nil
	case "minimal":
		return StyleMinimal, nil
	case "segments":
		return StyleSegments, nil
	default:
		return StyleSegments, fmt.Errorf("unknown style %q (want basic, minimal, or segments)", name)
	}
}

func (s Style) String() string {
	switch s {
	case StyleBasic:
		return "basic"
	case StyleMinimal:
		return "minimal"
	default:
		return "segments"
	}
}

// StyleNames lists the selectable styles in display order.
var StyleNames = []string{"basic", "minimal", "segments"}

// Inputs gathers everything a style renderer consumes. Collectors fill the
// fields independently, so each is safe to populate from its own goroutine.
type Inputs struct {
	Snapshot snapshot.Snapshot
	Git      gitinfo.State
	Context  transcript.Usage
	Home     string
	Options  Options
	Theme    Theme
}

// segment is one colored unit of the line.
type segment struct {
	text  string
	color lipgloss.Color
}

// Display-width limits for the directory field per style.
const (
	dirMaxMinimal  = 20
	dirMaxSegments = 28
)

// hotContextPct is the usage percentage at which the context bar switches
// to the hot color.
const hotContextPct = 80

// Render produces the full statusline for a style. The output carries no
// trailing newline.
func Render(style Style, in Inputs) string {
	switch style {
	case StyleBasic:
		return join(renderBasic(in), in.Theme)
	case StyleMinimal:
		return join(renderMinimal(in), in.Theme)
	default:
		return join(renderSegments(in), in.Theme)
	}
}

// join concatenates segments with a "│" separator. Each separator takes
// the color of the segment before it so segments read as contiguous units.
func join(segs []segment, th Theme) string {
	var b strings.Builder
	for i, s := range segs {
		style := lipgloss.NewStyle().Foreground(s.color)
		if i > 0 {
			sep := lipgloss.NewStyle().Foreground(segs[i-1].color)
			b.WriteString(sep.Render(" │ "))
		}
		b.WriteString(style.Render(s.text))
	}
	return b.String()
}

// renderBasic shows just model and directory.
func renderBasic(in Inputs) []segment {
	return []segment{
		{in.Snapshot.ModelName, in.Theme.Model},
		{ShortenDir(in.Snapshot.CurrentDir, "", in.Home, dirMaxMinimal), in.Theme.Dir},
	}
}

// renderMinimal shows model, directory, branch, cost, and duration,
// without glyph decoration beyond the branch marker.
func renderMinimal(in Inputs) []segment {
	th := in.Theme
	segs := []segment{
		{in.Snapshot.ModelName, th.Model},
		{ShortenDir(in.Snapshot.CurrentDir, "", in.Home, dirMaxMinimal), th.Dir},
	}

	if in.Git.Present {
		text := "⎇ " + in.Git.DisplayBranch()
		color := th.GitClean
		if !in.Git.Clean() {
			text += "*"
			color = th.GitDirty
		}
		segs = append(segs, segment{text, color})
	}

	tier := CostTier(in.Snapshot.TotalCostUSD, in.Options)
	segs = append(segs,
		segment{FormatCost(in.Snapshot.TotalCostUSD), tier.color(th)},
		segment{FormatDuration(in.Snapshot.TotalDurationMs), th.Duration},
	)
	return segs
}

// renderSegments is the full layout: glyphed model, project-relative
// directory, git detail, cost with burn rate, duration with efficiency
// marker, context bar, and line-change counts.
func renderSegments(in Inputs) []segment {
	th := in.Theme
	snap := in.Snapshot

	glyph, name := ModelGlyph(snap.ModelName)
	segs := []segment{
		{glyph + " " + name, th.Model},
		{ShortenDir(snap.CurrentDir, snap.ProjectDir, in.Home, dirMaxSegments), th.Dir},
	}

	if in.Git.Present {
		segs = append(segs, gitSegment(in.Git, th))
	}

	tier := CostTier(snap.TotalCostUSD, in.Options)
	cost := FormatCost(snap.TotalCostUSD)
	if rate, ok := BurnRate(snap.TotalCostUSD, snap.TotalDurationMs); ok {
		cost += " (" + rate + ")"
	}
	segs = append(segs, segment{cost, tier.color(th)})

	dur := FormatDuration(snap.TotalDurationMs)
	if m := ClassifyEfficiency(snap.APIDurationMs, snap.TotalDurationMs, in.Options).Marker(); m != "" {
		dur += " " + m
	}
	segs = append(segs, segment{dur, th.Duration})

	if in.Context.Available {
		color := th.Context
		if in.Context.Percentage >= hotContextPct {
			color = th.ContextHot
		}
		text := fmt.Sprintf("%s %d%%", ContextBar(in.Context.Percentage), in.Context.Percentage)
		segs = append(segs, segment{text, color})
	}

	if snap.LinesAdded > 0 || snap.LinesRemoved > 0 {
		text := fmt.Sprintf("+%d -%d %s", snap.LinesAdded, snap.LinesRemoved,
			LineDelta(snap.LinesAdded, snap.LinesRemoved))
		segs = append(segs, segment{text, th.Changes})
	}

	return segs
}

// gitSegment renders the detailed repository state: branch with a clean
// check or staged/unstaged counts, plus ahead/behind when diverged.
func gitSegment(g gitinfo.State, th Theme) segment {
	var b strings.Builder
	b.WriteString("⎇ ")
	b.WriteString(g.DisplayBranch())

	color := th.GitClean
	if g.Clean() {
		b.WriteString(" ✓")
	} else {
		color = th.GitDirty
		if g.Staged > 0 {
			fmt.Fprintf(&b, " +%d", g.Staged)
		}
		if g.Unstaged > 0 {
			fmt.Fprintf(&b, " ~%d", g.Unstaged)
		}
	}
	if g.Ahead > 0 {
		fmt.Fprintf(&b, " ↑%d", g.Ahead)
	}
	if g.Behind > 0 {
		fmt.Fprintf(&b, " ↓%d", g.Behind)
	}

	return segment{b.String(), color}
}
