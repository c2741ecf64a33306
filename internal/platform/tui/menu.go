package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// MenuAction is what the launcher menu asks the caller to do next.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuPlay
	MenuRecord
	MenuReplays
	MenuQuit
)

// MenuItem is a selectable launcher entry.
type MenuItem struct {
	Title  string
	Action MenuAction
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     menuKeys
	best     int // Best score seen this session
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	return MenuModel{
		items: []MenuItem{
			{Title: "Play", Action: MenuPlay},
			{Title: "Play & record", Action: MenuRecord},
			{Title: "Replays", Action: MenuReplays},
			{Title: "Quit", Action: MenuQuit},
		},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   defaultMenuKeys(),
		best:   best,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  F L A P P Y  "), m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best this session: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit")
	b.WriteString(centerText(hint, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen action, MenuQuit if the user backed out.
func (m MenuModel) Selected() MenuAction {
	if m.selected == nil {
		if m.quitting {
			return MenuQuit
		}
		return MenuNone
	}
	return m.selected.Action
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Action MenuAction
	Config core.RuntimeConfig
}

// RunMenu runs the launcher menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, best),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Action: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Action: MenuQuit, Config: cfg}, nil
	}

	result := MenuResult{Action: m.Selected(), Config: m.Config()}
	if result.Action == MenuNone {
		result.Action = MenuQuit
	}
	return result, nil
}
