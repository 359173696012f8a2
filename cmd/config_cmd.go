package cmd

import (
	"fmt"

	"ccline/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Render]")
	fmt.Printf("    Style: %s\n", cfg.Render.Style)
	fmt.Printf("    Theme: %s\n", cfg.Render.Theme)
	fmt.Println()

	fmt.Println("  [Context]")
	fmt.Printf("    Opus window:    %d tokens\n", cfg.Context.OpusWindow)
	fmt.Printf("    Default window: %d tokens\n", cfg.Context.DefaultWindow)
	fmt.Println()

	fmt.Println("  [Thresholds]")
	fmt.Printf("    Cost medium:      $%.2f\n", cfg.Thresholds.CostMediumUSD)
	fmt.Printf("    Cost high:        $%.2f\n", cfg.Thresholds.CostHighUSD)
	fmt.Printf("    Fast API ratio:   %.2f\n", cfg.Thresholds.FastAPIRatio)
	fmt.Printf("    Normal API ratio: %.2f\n", cfg.Thresholds.NormalAPIRatio)
	fmt.Println()

	fmt.Println("  [Cache]")
	fmt.Printf("    Enabled: %v\n", cfg.Cache.Enabled)
	fmt.Printf("    Path:    %s\n", config.CachePath(cfg))

	return nil
}
