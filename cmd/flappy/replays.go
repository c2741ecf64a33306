package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagTable bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List stored replays",
	Long: `Display the most recent recorded replays, newest first.

With --table the list opens in an interactive browser where Enter watches
the highlighted replay and D deletes it.

Examples:
  flappy replays
  flappy replays --limit 50
  flappy replays --table`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().BoolVar(&flagTable, "table", false, "Browse replays interactively")
}

func runReplays(_ *cobra.Command, _ []string) {
	if flagTable {
		logger, closeLog := sessionLogger()
		defer closeLog()
		if err := browse(logger, runtimeConfig()); err != nil {
			closeLog()
			fail("%v", err)
		}
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	list, err := store.ListReplays(flappy.ID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving replays: %v", err)
	}

	if len(list) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play --record' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-6s  %-9s  %-7s  %-20s  %s\n", "ID", "Score", "Length", "Inputs", "Seed", "Date")
	fmt.Printf("  %-5s  %-6s  %-9s  %-7s  %-20s  %s\n", "--", "-----", "------", "------", "----", "----")

	for _, r := range list {
		fmt.Printf("  %-5d  %-6d  %-9s  %-7d  %-20d  %s\n",
			r.ID, r.Score, r.Duration().Round(100 * time.Millisecond), r.Events, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// browse shows the replay browser and watches the chosen replay, returning
// to the browser afterwards.
func browse(logger *log.Logger, cfg core.RuntimeConfig) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for {
		id, err := tui.RunBrowser(store, flappy.ID, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		r, err := store.LoadReplay(id)
		if err != nil {
			return err
		}
		if r == nil {
			logger.Warn("replay vanished", "id", id)
			continue
		}
		if err := watch(logger, r, cfg); err != nil {
			return err
		}
	}
}
