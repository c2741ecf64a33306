// flappy is a terminal flappy-bird game with replay recording.
//
// Usage:
//
//	flappy                   - Start menu
//	flappy play              - Play directly
//	flappy sim               - Run the autopilot headlessly
//	flappy replay <id>       - Re-run or watch a stored replay
//	flappy replays           - List stored replays
//	flappy list              - List available games
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flappy/flappy.db)
//	--config <path> - Load game config from a YAML file
//	--layout <path> - Fix the opening obstacle layout (see 'flappy sim --save-layout')
//	--verbose       - Log debug output
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLayout  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly between pipes in your terminal",
	Long: `Flappy is a terminal flappy-bird game. Runs can be recorded and
replayed exactly, since the simulation is deterministic for a given seed,
tick rate and input log.

Available commands:
  play     - Play the game directly
  sim      - Let the autopilot play headlessly
  replay   - Re-run or watch a stored replay
  replays  - List stored replays
  list     - Show registered games
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --record
  flappy sim --seed 42 --frames 3600
  flappy replay 3 --watch`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Path to an opening obstacle layout YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger returns a stderr logger for headless commands.
func newLogger() *log.Logger {
	return newLoggerTo(os.Stderr)
}

func newLoggerTo(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// sessionLogger logs to ~/.flappy/flappy.log while the alt screen owns the
// terminal. The returned close func is never nil.
func sessionLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".flappy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "flappy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLoggerTo(f), func() { f.Close() }
}

// runtimeConfig builds the frame driver config from the global flags and
// the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the replay database. Interactive commands keep going
// without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("replay database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// configureGame applies the flags every flappy session shares. A nil
// layout means sampled openings.
func configureGame(logger *log.Logger, skipTitle bool, layout []flappy.Placement) {
	flappy.SetConfigPath(flagConfig)
	flappy.SetSkipTitle(skipTitle)
	flappy.SetPlacements(layout)
	flappy.SetLogger(logger)
}

// loadLayout reads --layout and checks it against the effective config.
func loadLayout() ([]flappy.Placement, error) {
	if flagLayout == "" {
		return nil, nil
	}
	data, err := os.ReadFile(flagLayout)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	layout, err := flappy.ParseLayout(data)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := flappy.ValidateLayout(cfg, layout); err != nil {
		return nil, fmt.Errorf("%s: %w", flagLayout, err)
	}
	return layout, nil
}
