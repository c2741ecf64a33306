package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagWatch  bool
	flagExport bool
	flagFile   string
)

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Re-run or watch a stored replay",
	Long: `Re-run a recorded session. Without --watch the replay runs headlessly
and prints the phase transitions and final score; with --watch it plays back
in the terminal at its recorded tick rate.

A replay can also be read from a YAML file written by --export.

Examples:
  flappy replay 3
  flappy replay 3 --watch
  flappy replay 3 --export > run.yaml
  flappy replay --file run.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the replay back in the terminal")
	replayCmd.Flags().BoolVar(&flagExport, "export", false, "Print the replay as YAML and exit")
	replayCmd.Flags().StringVar(&flagFile, "file", "", "Read the replay from a YAML file instead of the database")
}

func runReplay(_ *cobra.Command, args []string) {
	r, err := loadReplay(args)
	if err != nil {
		fail("%v", err)
	}

	if flagExport {
		data, err := replay.Marshal(*r)
		if err != nil {
			fail("%v", err)
		}
		os.Stdout.Write(data)
		return
	}

	if flagWatch {
		logger, closeLog := sessionLogger()
		defer closeLog()
		if err := watch(logger, r, runtimeConfig()); err != nil {
			closeLog()
			fail("%v", err)
		}
		return
	}

	logger := newLogger()
	out, err := rerun(logger, r)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Replay #%d: %d frames, %d inputs\n", r.ID, r.Frames, len(r.Events))
	fmt.Printf("Final phase: %s (score %d)\n", out.Final.Phase, out.Final.Score)
	fmt.Printf("Best score: %d (recorded %d)\n", out.Best, r.Score)
	if !out.Reproduces(*r) {
		logger.Warn("score differs from recording; was the config changed?", "got", out.Best, "recorded", r.Score)
	}
}

// loadReplay reads the replay named by args or --file.
func loadReplay(args []string) (*replay.Replay, error) {
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", flagFile, err)
		}
		r, err := replay.Unmarshal(data)
		if err != nil {
			return nil, err
		}
		return &r, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("replay id or --file required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	r, err := store.LoadReplay(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("no replay with id %d", id)
	}
	return r, nil
}

// rerun plays r headlessly, logging each phase change.
func rerun(logger *log.Logger, r *replay.Replay) (replay.Outcome, error) {
	configureGame(logger, r.SkipTitle, nil)

	game, err := registry.Create(r.GameID)
	if err != nil {
		return replay.Outcome{}, err
	}

	var tick uint64
	out := replay.Verify(game, *r, 80, 24, func(res core.StepResult) {
		tick++
		for _, t := range res.Transitions {
			logger.Info("transition", "tick", tick, "phase", t, "score", res.State.Score)
		}
	})
	return out, nil
}

// watch plays r back in the terminal.
func watch(logger *log.Logger, r *replay.Replay, cfg core.RuntimeConfig) error {
	configureGame(logger, r.SkipTitle, nil)

	game, err := registry.Create(r.GameID)
	if err != nil {
		return err
	}
	_, err = tui.Run(game, cfg, tui.Options{Playback: r, Logger: logger})
	return err
}
