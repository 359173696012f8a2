package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the statusline styles.
type Theme struct {
	Name       string
	Model      lipgloss.Color
	Dir        lipgloss.Color
	GitClean   lipgloss.Color
	GitDirty   lipgloss.Color
	CostLow    lipgloss.Color
	CostMedium lipgloss.Color
	CostHigh   lipgloss.Color
	Duration   lipgloss.Color
	Context    lipgloss.Color
	ContextHot lipgloss.Color // bar color once usage crosses hotContextPct
	Changes    lipgloss.Color
	Muted      lipgloss.Color
}

// FlexokiDark is the default theme - warm, paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:       "flexoki-dark",
	Model:      lipgloss.Color("#8B7EC8"),
	Dir:        lipgloss.Color("#4385BE"),
	GitClean:   lipgloss.Color("#879A39"),
	GitDirty:   lipgloss.Color("#D0A215"),
	CostLow:    lipgloss.Color("#879A39"),
	CostMedium: lipgloss.Color("#D0A215"),
	CostHigh:   lipgloss.Color("#D14D41"),
	Duration:   lipgloss.Color("#3AA99F"),
	Context:    lipgloss.Color("#4385BE"),
	ContextHot: lipgloss.Color("#DA702C"),
	Changes:    lipgloss.Color("#CE5D97"),
	Muted:      lipgloss.Color("#6F6E69"),
}

// CatppuccinMocha is a warm pastel palette.
var CatppuccinMocha = Theme{
	Name:       "catppuccin-mocha",
	Model:      lipgloss.Color("#CBA6F7"),
	Dir:        lipgloss.Color("#89B4FA"),
	GitClean:   lipgloss.Color("#A6E3A1"),
	GitDirty:   lipgloss.Color("#F9E2AF"),
	CostLow:    lipgloss.Color("#A6E3A1"),
	CostMedium: lipgloss.Color("#F9E2AF"),
	CostHigh:   lipgloss.Color("#F38BA8"),
	Duration:   lipgloss.Color("#94E2D5"),
	Context:    lipgloss.Color("#89B4FA"),
	ContextHot: lipgloss.Color("#FAB387"),
	Changes:    lipgloss.Color("#F5C2E7"),
	Muted:      lipgloss.Color("#6C7086"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:       "terminal",
	Model:      lipgloss.Color("5"),
	Dir:        lipgloss.Color("4"),
	GitClean:   lipgloss.Color("2"),
	GitDirty:   lipgloss.Color("3"),
	CostLow:    lipgloss.Color("2"),
	CostMedium: lipgloss.Color("3"),
	CostHigh:   lipgloss.Color("1"),
	Duration:   lipgloss.Color("6"),
	Context:    lipgloss.Color("4"),
	ContextHot: lipgloss.Color("3"),
	Changes:    lipgloss.Color("5"),
	Muted:      lipgloss.Color("8"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}
