package core

// Intent is an abstract player request, decoupled from any input backend.
// Keyboard, pointer and replay sources are all reduced to these values.
type Intent int

const (
	IntentNone    Intent = iota
	IntentImpulse        // Flap: set an upward velocity
	IntentDive           // Set a downward velocity
	IntentStart          // Leave the title screen
	IntentRestart        // Start a new run after game over
	IntentPause          // Toggle pause in the frame driver
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentImpulse:
		return "Impulse"
	case IntentDive:
		return "Dive"
	case IntentStart:
		return "Start"
	case IntentRestart:
		return "Restart"
	case IntentPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ParseIntent is the inverse of Intent.String. Unknown names map to IntentNone.
func ParseIntent(s string) Intent {
	for i := IntentNone; i <= IntentPause; i++ {
		if i.String() == s {
			return i
		}
	}
	return IntentNone
}

// InputFrame collects the intents raised during one simulation tick.
// Each intent is consumed at most once per frame no matter how many key
// events produced it.
type InputFrame struct {
	Intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Intents: make(map[Intent]bool),
	}
}

// Set marks an intent as raised for this frame.
func (f *InputFrame) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Has returns true if the given intent was raised this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// Primary returns the single gameplay intent the engine consumes this frame.
// Restart and Start win over movement; Impulse wins over Dive.
func (f InputFrame) Primary() Intent {
	for _, i := range []Intent{IntentRestart, IntentStart, IntentImpulse, IntentDive} {
		if f.Has(i) {
			return i
		}
	}
	return IntentNone
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Intents {
		clone.Intents[k] = v
	}
	return clone
}
