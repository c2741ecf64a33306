package replay

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func frame(intents ...core.Intent) core.InputFrame {
	in := core.NewInputFrame()
	for _, i := range intents {
		in.Set(i)
	}
	return in
}

func TestRecorderAndPlayerRoundTrip(t *testing.T) {
	rec := NewRecorder("flappy", 7, 60, false)
	inputs := []core.InputFrame{
		frame(),
		frame(core.IntentStart),
		frame(),
		frame(core.IntentImpulse, core.IntentPause),
		frame(),
	}
	for _, in := range inputs {
		rec.Record(in)
	}
	r := rec.Finish(3)

	if r.Frames != uint64(len(inputs)) {
		t.Fatalf("Frames = %d, expected %d", r.Frames, len(inputs))
	}
	if len(r.Events) != 3 {
		t.Fatalf("Events = %v, expected 3 events", r.Events)
	}

	p := NewPlayer(r)
	for i, want := range inputs {
		got, ok := p.Next()
		if !ok {
			t.Fatalf("player ran out at tick %d", i)
		}
		for _, intent := range []core.Intent{core.IntentStart, core.IntentImpulse, core.IntentPause} {
			if got.Has(intent) != want.Has(intent) {
				t.Errorf("tick %d: Has(%s) = %v, expected %v", i, intent, got.Has(intent), want.Has(intent))
			}
		}
	}
	if _, ok := p.Next(); ok {
		t.Error("player should be exhausted")
	}
	if !p.Done() {
		t.Error("Done() = false after last tick")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	rec := NewRecorder("flappy", 99, 30, true)
	rec.Record(frame(core.IntentImpulse))
	rec.Record(frame())
	rec.Record(frame(core.IntentDive))
	r := rec.Finish(1)

	data, err := Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.Seed != 99 || got.TickRate != 30 || !got.SkipTitle || got.Frames != 3 || got.Score != 1 {
		t.Errorf("header = %+v", got)
	}
	if len(got.Events) != 2 || got.Events[0].Intent != core.IntentImpulse || got.Events[1].Intent != core.IntentDive {
		t.Errorf("events = %+v", got.Events)
	}
	if got.Events[1].Tick != 2 {
		t.Errorf("second event tick = %d, expected 2", got.Events[1].Tick)
	}
}

func TestUnmarshalRejectsUnknownIntent(t *testing.T) {
	data := []byte("game: flappy\nframes: 1\nevents:\n  - tick: 0\n    intent: Teleport\n")
	if _, err := Unmarshal(data); err == nil {
		t.Error("expected error for unknown intent")
	}
}
