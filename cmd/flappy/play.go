package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var (
	flagSkipTitle bool
	flagRecord    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the terminal.

Controls:
  Space/Up   - Start, flap, or restart after game over
  Down/S     - Dive
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --skip-title
  flappy play --record --seed 42
  flappy play --config ./my-flappy.yaml
  flappy play --layout ./opening.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSkipTitle, "skip-title", false, "Start flying immediately")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session as a replay")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := sessionLogger()
	defer closeLog()

	res, err := play(logger, runtimeConfig(), flagRecord)
	if err != nil {
		closeLog()
		fail("%v", err)
	}
	fmt.Printf("Best score: %d\n", res.Score)
	if res.ReplayID != 0 {
		fmt.Printf("Replay saved as #%d. Watch it with 'flappy replay %d --watch'.\n", res.ReplayID, res.ReplayID)
	}
}

// play runs one interactive session with the given runtime config.
func play(logger *log.Logger, cfg core.RuntimeConfig, record bool) (tui.Result, error) {
	layout, err := loadLayout()
	if err != nil {
		return tui.Result{}, err
	}
	configureGame(logger, flagSkipTitle, layout)
	if record && layout != nil {
		// Replays do not carry the layout, so playback would diverge.
		logger.Warn("recording disabled with a fixed layout", "layout", flagLayout)
		record = false
	}

	game, err := registry.Create(flappy.ID)
	if err != nil {
		return tui.Result{}, fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	if record && store == nil {
		logger.Warn("recording disabled without a database")
	}

	return tui.Run(game, cfg, tui.Options{
		Store:     store,
		Record:    record,
		SkipTitle: flagSkipTitle,
		Logger:    logger,
	})
}
