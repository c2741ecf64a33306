package core

import "testing"

func TestInputFramePrimary(t *testing.T) {
	tests := []struct {
		name     string
		set      []Intent
		expected Intent
	}{
		{"empty", nil, IntentNone},
		{"impulse only", []Intent{IntentImpulse}, IntentImpulse},
		{"impulse beats dive", []Intent{IntentDive, IntentImpulse}, IntentImpulse},
		{"restart beats impulse", []Intent{IntentImpulse, IntentRestart}, IntentRestart},
		{"start beats impulse", []Intent{IntentImpulse, IntentStart}, IntentStart},
		{"pause is not a gameplay intent", []Intent{IntentPause}, IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, i := range tc.set {
				f.Set(i)
			}
			if got := f.Primary(); got != tc.expected {
				t.Errorf("Primary() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(IntentImpulse)
	clone := f.Clone()

	f.Clear()
	if f.Has(IntentImpulse) {
		t.Error("Clear should remove intents")
	}
	if !clone.Has(IntentImpulse) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(IntentImpulse) {
		t.Error("zero frame should have no intents")
	}
	zero.Set(IntentDive)
	if !zero.Has(IntentDive) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestParseIntentRoundTrip(t *testing.T) {
	for i := IntentNone; i <= IntentPause; i++ {
		if got := ParseIntent(i.String()); got != i {
			t.Errorf("ParseIntent(%q) = %v", i.String(), got)
		}
	}
	if ParseIntent("bogus") != IntentNone {
		t.Error("unknown name should parse as IntentNone")
	}
}
