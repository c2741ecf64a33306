package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

// runMenu loops between the launcher menu, game sessions and the replay
// browser until the user quits.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := sessionLogger()
	defer closeLog()

	cfg := runtimeConfig()
	best := 0

	for {
		menuResult, err := tui.RunMenu(cfg, best)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Action {
		case tui.MenuPlay, tui.MenuRecord:
			res, err := play(logger, cfg, menuResult.Action == tui.MenuRecord)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				continue
			}
			if res.Score > best {
				best = res.Score
			}

		case tui.MenuReplays:
			if err := browse(logger, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		default:
			return
		}
	}
}
