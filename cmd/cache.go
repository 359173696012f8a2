package cmd

import (
	"fmt"

	"ccline/internal/config"
	"ccline/internal/store"

	"github.com/spf13/cobra"
)

var flagPrune bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or prune the transcript estimate cache",
	RunE:  runCache,
}

func init() {
	cacheCmd.Flags().BoolVar(&flagPrune, "prune", false, "Drop entries for transcripts deleted from disk")
	rootCmd.AddCommand(cacheCmd)
}

func runCache(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	path := config.CachePath(cfg)
	cache, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer cache.Close()

	if flagPrune {
		removed, err := cache.Prune()
		if err != nil {
			return fmt.Errorf("pruning cache: %w", err)
		}
		fmt.Printf("  Pruned %d stale entries\n", removed)
	}

	count, err := cache.Count()
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}
	fmt.Printf("  Cache file: %s\n", path)
	fmt.Printf("  Entries:    %d\n", count)
	return nil
}
