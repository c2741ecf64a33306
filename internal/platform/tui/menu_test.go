package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func pressAll(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuAction
	}{
		{"play", []string{"enter"}, MenuPlay},
		{"record", []string{"down", "enter"}, MenuRecord},
		{"replays", []string{"down", "down", "enter"}, MenuReplays},
		{"cursor stops at the bottom", []string{"down", "down", "down", "down", "down", "enter"}, MenuQuit},
		{"cursor stops at the top", []string{"up", "up", "enter"}, MenuPlay},
		{"quit key", []string{"q"}, MenuQuit},
		{"nothing chosen", nil, MenuNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressAll(NewMenuModel(core.DefaultConfig(), 0), tt.keys...)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 7)
	view := m.View()
	for _, want := range []string{"F L A P P Y", "Best this session: 7", "Play & record", "Replays"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config after resize = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}
