package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Action     key.Binding // Start, flap or restart depending on the phase
	Dive       key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.Dive, k.Pause, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Action, k.Dive, k.Restart},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Action: key.NewBinding(
			key.WithKeys(" ", "up", "w", "enter"),
			key.WithHelp("space", "flap"),
		),
		Dive: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "dive"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForPhase relabels the action key for the given game phase so the help
// line says what space will do right now.
func (k GameKeyMap) ForPhase(phase string) GameKeyMap {
	switch phase {
	case "title":
		k.Action.SetHelp("space", "start")
	case "gameover":
		k.Action.SetHelp("space", "restart")
	default:
		k.Action.SetHelp("space", "flap")
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to intents.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key to an intent for the given phase. The action key
// means Start on the title, Restart after game over and Impulse otherwise.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase string) (intent core.Intent, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.IntentNone, true
	case key.Matches(msg, km.keys.Action):
		switch phase {
		case "title":
			return core.IntentStart, false
		case "gameover":
			return core.IntentRestart, false
		default:
			return core.IntentImpulse, false
		}
	case key.Matches(msg, km.keys.Dive):
		return core.IntentDive, false
	case key.Matches(msg, km.keys.Restart):
		return core.IntentRestart, false
	case key.Matches(msg, km.keys.Pause):
		return core.IntentPause, false
	}
	return core.IntentNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, phase string, frame *core.InputFrame) bool {
	intent, isQuit := km.MapKey(msg, phase)
	frame.Set(intent)
	return isQuit
}
