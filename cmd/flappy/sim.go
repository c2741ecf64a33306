package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagFrames        int
	flagSimSkipTitle  bool
	flagSimRecord     bool
	flagRender        bool
	flagKeepOnDeath   bool
	flagAutopilotLead float64
	flagSaveLayout    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headlessly",
	Long: `Run the game without a terminal UI, letting the autopilot fly. The run
stops at game over (unless --keep-going) or after --frames ticks, then prints
the final snapshot. --save-layout writes the opening obstacle layout so it can
be fed back with --layout.

Examples:
  flappy sim
  flappy sim --seed 42 --frames 36000
  flappy sim --record --render
  flappy sim --lead 20 -v
  flappy sim --seed 42 --save-layout opening.yaml
  flappy sim --layout opening.yaml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 60*60, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSkipTitle, "skip-title", false, "Start flying immediately")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run as a replay")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagKeepOnDeath, "keep-going", false, "Keep simulating after game over")
	simCmd.Flags().Float64Var(&flagAutopilotLead, "lead", flappy.NewAutopilot().Lead, "Autopilot flap threshold below the gap center")
	simCmd.Flags().StringVar(&flagSaveLayout, "save-layout", "", "Write the opening obstacle layout to this YAML file")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger()
	layout, err := loadLayout()
	if err != nil {
		fail("%v", err)
	}
	configureGame(logger, flagSimSkipTitle, layout)
	if flagSimRecord && layout != nil {
		logger.Warn("recording disabled with a fixed layout", "layout", flagLayout)
		flagSimRecord = false
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game := flappy.New()
	game.Reset(cfg)

	pilot := flappy.NewAutopilot()
	pilot.Lead = flagAutopilotLead

	var rec *replay.Recorder
	if flagSimRecord {
		rec = replay.NewRecorder(flappy.ID, seed, cfg.TickRate, flagSimSkipTitle)
	}

	started := time.Now()
	var state core.GameState
	best := 0
	for i := 0; i < flagFrames; i++ {
		in := core.NewInputFrame()
		in.Set(pilot.Decide(game.Engine().Snapshot()))
		if rec != nil {
			rec.Record(in)
		}
		state = game.Step(in).State
		if state.Score > best {
			best = state.Score
		}
		if state.GameOver && !flagKeepOnDeath {
			break
		}
	}
	logger.Debug("simulation finished", "elapsed", time.Since(started))

	snap := game.Engine().Snapshot()
	fmt.Printf("Seed:      %d\n", seed)
	simulated := time.Duration(snap.Tick) * time.Second / time.Duration(cfg.TickRate)
	fmt.Printf("Ticks:     %d (%s at %d fps)\n", snap.Tick, simulated.Round(time.Millisecond), cfg.TickRate)
	fmt.Printf("Phase:     %s\n", snap.Phase)
	fmt.Printf("Score:     %d\n", snap.Score)
	fmt.Printf("Actor:     x=%.1f y=%.1f vy=%.1f angle=%.1f tag=%s\n",
		snap.Actor.X, snap.Actor.Y, snap.Actor.VY, snap.Actor.Angle, snap.Actor.Tag)
	fmt.Printf("Obstacles: %d\n", len(snap.Obstacles))

	if flagSaveLayout != "" {
		data, err := flappy.MarshalLayout(game.Engine().Placements())
		if err != nil {
			fail("%v", err)
		}
		if err := os.WriteFile(flagSaveLayout, data, 0o644); err != nil {
			fail("writing layout: %v", err)
		}
		fmt.Printf("Layout:    %s\n", flagSaveLayout)
	}

	if flagRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if rec != nil {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fail("opening replay database: %v", err)
		}
		defer store.Close()
		id, err := store.SaveReplay(rec.Finish(best))
		if err != nil {
			store.Close()
			fail("saving replay: %v", err)
		}
		fmt.Printf("Replay saved as #%d.\n", id)
	}
}
