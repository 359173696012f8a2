// Package cmd implements the ccline CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"ccline/internal/config"
	"ccline/internal/gitinfo"
	"ccline/internal/render"
	"ccline/internal/snapshot"
	"ccline/internal/store"
	"ccline/internal/transcript"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagStyle   string
	flagTheme   string
	flagNoGit   bool
	flagNoCache bool
)

var rootCmd = &cobra.Command{
	Use:   "ccline",
	Short: "Statusline renderer for Claude Code",
	Long: "Reads a session snapshot as JSON on stdin and prints a single\n" +
		"formatted statusline to stdout. Wire it up as the statusLine command\n" +
		"in Claude Code settings.",
	SilenceUsage: true,
	RunE:         runRender,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStyle, "style", "s", "", "Statusline style (basic, minimal, segments)")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme")
	rootCmd.PersistentFlags().BoolVar(&flagNoGit, "no-git", false, "Skip repository inspection")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse the transcript")
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	style, err := resolveStyle(cfg)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		raw = nil
	}
	snap := snapshot.Parse(raw)

	// stdout is a pipe, so lipgloss would otherwise strip all color.
	lipgloss.SetColorProfile(termenv.TrueColor)

	fmt.Print(renderLine(style, snap, cfg))
	return nil
}

// resolveStyle picks the style: flag beats CCLINE_STYLE beats config.
// Only an explicit unknown name is an error; an empty chain falls back
// to the default.
func resolveStyle(cfg config.Config) (render.Style, error) {
	name := flagStyle
	if name == "" {
		name = config.ActiveStyle(cfg)
	}
	if name == "" {
		return render.StyleSegments, nil
	}
	return render.StyleByName(name)
}

// renderLine collects git and context state concurrently and renders the
// final line. A panic anywhere in collection or layout degrades to the
// basic style so the statusline never goes blank.
func renderLine(style render.Style, snap snapshot.Snapshot, cfg config.Config) (line string) {
	home, _ := os.UserHomeDir()

	themeName := flagTheme
	if themeName == "" {
		themeName = cfg.Render.Theme
	}

	in := render.Inputs{
		Snapshot: snap,
		Home:     home,
		Options:  renderOptions(cfg),
		Theme:    render.ByName(themeName),
	}

	defer func() {
		if r := recover(); r != nil {
			line = render.Render(render.StyleBasic, in)
		}
	}()

	var wg sync.WaitGroup
	if !flagNoGit && snap.CurrentDir != snapshot.DefaultDir {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.Git = gitinfo.Inspect(snap.CurrentDir)
		}()
	}
	if snap.TranscriptPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.Context = estimateContext(snap, cfg)
		}()
	}
	wg.Wait()

	return render.Render(style, in)
}

// estimateContext measures transcript token usage, going through the
// SQLite cache when enabled and falling back to a direct parse when the
// cache cannot be opened.
func estimateContext(snap snapshot.Snapshot, cfg config.Config) transcript.Usage {
	opus, dflt := cfg.Context.OpusWindow, cfg.Context.DefaultWindow

	if cfg.Cache.Enabled && !flagNoCache {
		if cache, err := store.Open(config.CachePath(cfg)); err == nil {
			defer cache.Close()
			return transcript.EstimateCached(cache, snap.TranscriptPath, snap.ModelName, opus, dflt)
		}
	}
	return transcript.Estimate(snap.TranscriptPath, snap.ModelName, opus, dflt)
}

func renderOptions(cfg config.Config) render.Options {
	return render.Options{
		CostMediumUSD:  cfg.Thresholds.CostMediumUSD,
		CostHighUSD:    cfg.Thresholds.CostHighUSD,
		FastAPIRatio:   cfg.Thresholds.FastAPIRatio,
		NormalAPIRatio: cfg.Thresholds.NormalAPIRatio,
	}
}
