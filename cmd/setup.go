package cmd

import (
	"errors"
	"fmt"

	"ccline/internal/config"
	"ccline/internal/render"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	style := cfg.Render.Style
	theme := cfg.Render.Theme
	cacheOn := cfg.Cache.Enabled

	themeOpts := make([]huh.Option[string], 0, len(render.All))
	for _, t := range render.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Statusline style").
				Options(
					huh.NewOption("segments (full detail)", "segments"),
					huh.NewOption("minimal (compact)", "minimal"),
					huh.NewOption("basic (model and directory)", "basic"),
				).
				Value(&style),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&theme),
			huh.NewConfirm().
				Title("Cache transcript estimates?").
				Description("Speeds up repeated renders of long sessions.").
				Value(&cacheOn),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.Render.Style = style
	cfg.Render.Theme = theme
	cfg.Cache.Enabled = cacheOn

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("Saved to %s\n", config.Path())
	fmt.Println("Point Claude Code at ccline via the statusLine command setting.")
	return nil
}
