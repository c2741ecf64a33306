package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Store     *storage.Store // Where recordings are saved; may be nil
	Record    bool           // Record intents and save them on quit
	SkipTitle bool           // Stored with recordings
	Playback  *replay.Replay // Play this replay instead of reading keys
	Logger    *log.Logger
}

// Result describes how a session ended.
type Result struct {
	Score    int   // Best score reached during the session
	ReplayID int64 // ID of the saved recording, 0 if none
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	quitting   bool

	recorder *replay.Recorder
	player   *replay.Player
	playback *replay.Replay
	finished bool // Playback reached its last tick
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Playback != nil {
		cfg.Seed = opts.Playback.Seed
		cfg.TickRate = opts.Playback.TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if opts.Playback != nil {
		m.playback = opts.Playback
		m.player = replay.NewPlayer(*opts.Playback)
	} else if opts.Record {
		m.recorder = replay.NewRecorder(game.ID(), cfg.Seed, cfg.TickRate, opts.SkipTitle)
	}
	return m
}

// playHeight leaves one row for the help line.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.player != nil {
		// Playback ignores everything but quit.
		if _, quit := m.keys.MapKey(msg, m.gameState.Phase); quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, m.gameState.Phase, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game scales its world to
// the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	if m.player != nil {
		next, ok := m.player.Next()
		if !ok {
			if !m.finished {
				m.logger.Info("playback finished", "score", m.gameState.Score)
			}
			m.finished = true
			return m, tickCmd(m.config.TickRate)
		}
		in = next
	}

	if m.recorder != nil {
		m.recorder.Record(in)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// statusLine shows the key help, or playback progress when replaying.
func (m Model) statusLine() string {
	if m.playback != nil {
		status := fmt.Sprintf("replay #%d  seed %d  score %d", m.playback.ID, m.playback.Seed, m.gameState.Score)
		if m.finished {
			status += "  (finished, q to quit)"
		}
		return statusStyle.Render(status)
	}
	line := m.help.View(m.keys.Keys().ForPhase(m.gameState.Phase))
	if m.recorder != nil {
		line = "● rec  " + line
	}
	return statusStyle.Render(line)
}

// Run starts the Bubble Tea program and saves the recording, if any, once
// the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	res := Result{Score: m.best}

	if m.recorder != nil && opts.Store != nil && m.recorder.Frames() > 0 {
		id, err := opts.Store.SaveReplay(m.recorder.Finish(m.best))
		if err != nil {
			return res, fmt.Errorf("tui: %w", err)
		}
		res.ReplayID = id
		m.logger.Info("replay saved", "id", id, "score", m.best, "frames", m.recorder.Frames())
	}
	return res, nil
}
