package cmd

import (
	"fmt"
	"strings"

	"ccline/internal/config"
	"ccline/internal/gitinfo"
	"ccline/internal/render"
	"ccline/internal/snapshot"
	"ccline/internal/transcript"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse styles and themes with sample data",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	m := previewModel{
		cfg:  cfg,
		keys: defaultPreviewKeys(),
		help: help.New(),
	}
	for i, name := range render.StyleNames {
		if name == cfg.Render.Style {
			m.styleIdx = i
		}
	}
	for i, t := range render.All {
		if t.Name == cfg.Render.Theme {
			m.themeIdx = i
		}
	}

	p := tea.NewProgram(m)
	out, err := p.Run()
	if err != nil {
		return err
	}
	if final, ok := out.(previewModel); ok && final.saved {
		fmt.Printf("Saved to %s\n", config.Path())
	}
	return nil
}

type previewKeys struct {
	NextStyle key.Binding
	PrevStyle key.Binding
	NextTheme key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func defaultPreviewKeys() previewKeys {
	return previewKeys{
		NextStyle: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next style"),
		),
		PrevStyle: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev style"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "cycle theme"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k previewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStyle, k.PrevStyle, k.NextTheme, k.Save, k.Quit}
}

func (k previewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type previewModel struct {
	cfg      config.Config
	keys     previewKeys
	help     help.Model
	styleIdx int
	themeIdx int
	saved    bool
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextStyle):
			m.styleIdx = (m.styleIdx + 1) % len(render.StyleNames)
		case key.Matches(msg, m.keys.PrevStyle):
			m.styleIdx = (m.styleIdx + len(render.StyleNames) - 1) % len(render.StyleNames)
		case key.Matches(msg, m.keys.NextTheme):
			m.themeIdx = (m.themeIdx + 1) % len(render.All)
		case key.Matches(msg, m.keys.Save):
			m.cfg.Render.Style = render.StyleNames[m.styleIdx]
			m.cfg.Render.Theme = render.All[m.themeIdx].Name
			m.saved = config.Save(m.cfg) == nil
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	theme := render.All[m.themeIdx]

	titleStyle := lipgloss.NewStyle().Foreground(theme.Model).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Dir)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  ccline preview"))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("theme: " + theme.Name))
	b.WriteString("\n\n")

	in := sampleInputs(m.cfg, theme)
	for i, name := range render.StyleNames {
		marker := "  "
		nameStyle := labelStyle
		if i == m.styleIdx {
			marker = "> "
			nameStyle = activeStyle
		}
		style, _ := render.StyleByName(name)
		fmt.Fprintf(&b, "  %s%-10s", marker, nameStyle.Render(name))
		b.WriteString(render.Render(style, in))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// sampleInputs is representative mid-session data so every segment of a
// style is visible in the preview.
func sampleInputs(cfg config.Config, theme render.Theme) render.Inputs {
	return render.Inputs{
		Snapshot: snapshot.Snapshot{
			ModelName:       "Opus",
			CurrentDir:      "/home/you/src/myproject/internal/api",
			ProjectDir:      "/home/you/src/myproject",
			TotalCostUSD:    0.0812,
			TotalDurationMs: 754_000,
			APIDurationMs:   121_000,
			LinesAdded:      45,
			LinesRemoved:    12,
		},
		Git: gitinfo.State{
			Present:  true,
			Branch:   "main",
			Staged:   2,
			Unstaged: 1,
			Ahead:    1,
		},
		Context: transcript.Usage{
			Available:     true,
			TokenEstimate: 90_000,
			Percentage:    45,
		},
		Home:    "/home/you",
		Options: renderOptions(cfg),
		Theme:   theme,
	}
}
