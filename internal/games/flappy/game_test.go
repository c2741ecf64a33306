package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetConfigPath("")
	SetSkipTitle(false)
	SetPlacements(nil)
	t.Cleanup(func() {
		SetSkipTitle(false)
		SetPlacements(nil)
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frameWith(intents ...core.Intent) core.InputFrame {
	in := core.NewInputFrame()
	for _, i := range intents {
		in.Set(i)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results.
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		switch {
		case i == 5:
			inputs[i] = frameWith(core.IntentStart)
		case i%20 == 0:
			inputs[i] = frameWith(core.IntentImpulse)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() (core.GameState, Snapshot) {
		g := newTestGame(t, 12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st, g.Engine().Snapshot()
	}

	s1, snap1 := run()
	s2, snap2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if snap1.Actor != snap2.Actor || snap1.Tick != snap2.Tick {
		t.Errorf("snapshots differ: %+v vs %+v", snap1.Actor, snap2.Actor)
	}
}

func TestGameReportsTransitions(t *testing.T) {
	g := newTestGame(t, 1)
	SetSkipTitle(true)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	res := g.Step(core.NewInputFrame())
	want := []string{"boot->title", "title->playing"}
	if strings.Join(res.Transitions, ",") != strings.Join(want, ",") {
		t.Errorf("Transitions = %v, expected %v", res.Transitions, want)
	}
	if res.State.Phase != "playing" {
		t.Errorf("Phase = %q, expected playing", res.State.Phase)
	}

	res = g.Step(core.NewInputFrame())
	if len(res.Transitions) != 0 {
		t.Errorf("Transitions on a quiet frame = %v, expected none", res.Transitions)
	}
}

func TestGamePauseHoldsSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame())
	tick := g.Engine().Tick()

	res := g.Step(frameWith(core.IntentPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Tick() != tick {
		t.Errorf("engine advanced while paused: %d -> %d", tick, g.Engine().Tick())
	}

	res = g.Step(frameWith(core.IntentPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.Engine().Tick() != tick+1 {
		t.Errorf("tick = %d, expected %d", g.Engine().Tick(), tick+1)
	}
}

func TestGameFixedPlacements(t *testing.T) {
	fixed := []Placement{
		{Offset: 500, Gap: 200, UpperY: 300},
		{Offset: 500, Gap: 200, UpperY: 300},
	}
	SetPlacements(fixed)
	t.Cleanup(func() { SetPlacements(nil) })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	g.Step(core.NewInputFrame())

	pl := g.Engine().Placements()
	if pl[0] != fixed[0] || pl[1] != fixed[1] {
		t.Errorf("placements = %+v, expected to start with %+v", pl, fixed)
	}
}

func TestGameRenderPhases(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "FLAPPY") {
		t.Error("title banner not rendered")
	}

	g.Step(frameWith(core.IntentPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause banner not rendered")
	}
}

func TestGameIsRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("registry missing %q", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("registry.Create() error = %v", err)
	}
	if g.Title() != "Flappy" {
		t.Errorf("Title() = %q, expected Flappy", g.Title())
	}
}
