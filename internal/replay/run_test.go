package replay

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestRunReproducesRecordedGame(t *testing.T) {
	flappy.SetSkipTitle(false)
	flappy.SetPlacements(nil)

	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2024}
	g := flappy.New()
	g.Reset(rc)

	rec := NewRecorder(g.ID(), rc.Seed, rc.TickRate, false)
	pilot := flappy.NewAutopilot()
	for i := 0; i < 60*15 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		in.Set(pilot.Decide(g.Engine().Snapshot()))
		rec.Record(in)
		g.Step(in)
	}
	want := g.Engine().Snapshot()
	r := rec.Finish(g.State().Score)

	replayed := flappy.New()
	var transitions int
	st := Run(replayed, r, 80, 24, func(res core.StepResult) {
		transitions += len(res.Transitions)
	})

	got := replayed.Engine().Snapshot()
	if st.Score != r.Score {
		t.Errorf("replayed score = %d, expected %d", st.Score, r.Score)
	}
	if got.Tick != want.Tick || got.Actor != want.Actor {
		t.Errorf("replayed actor = %+v at tick %d, expected %+v at tick %d", got.Actor, got.Tick, want.Actor, want.Tick)
	}
	if transitions < 2 {
		t.Errorf("saw %d transitions, expected at least boot->title->playing", transitions)
	}
}

func TestVerifyAcrossRestart(t *testing.T) {
	flappy.SetSkipTitle(true)
	defer flappy.SetSkipTitle(false)
	flappy.SetPlacements(nil)

	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g := flappy.New()
	g.Reset(rc)
	rec := NewRecorder(g.ID(), rc.Seed, rc.TickRate, true)

	best := 0
	step := func(i core.Intent) {
		in := core.NewInputFrame()
		in.Set(i)
		rec.Record(in)
		if s := g.Step(in).State.Score; s > best {
			best = s
		}
	}

	pilot := flappy.NewAutopilot()
	for i := 0; i < 60*10 && !g.State().GameOver; i++ {
		step(pilot.Decide(g.Engine().Snapshot()))
	}
	// Stop flapping so the run ends.
	for i := 0; i < 60*10 && !g.State().GameOver; i++ {
		step(core.IntentNone)
	}
	if !g.State().GameOver {
		t.Fatalf("run did not end, phase %s", g.State().Phase)
	}

	step(core.IntentRestart)
	for i := 0; i < 10; i++ {
		step(core.IntentNone)
	}
	if st := g.State(); st.Phase != "playing" || st.Score != 0 {
		t.Fatalf("after restart phase = %s score = %d, expected playing with 0", st.Phase, st.Score)
	}
	r := rec.Finish(best)

	out := Verify(flappy.New(), r, 80, 24, nil)
	if out.Final.Score != 0 {
		t.Errorf("final score = %d, expected 0 after restart", out.Final.Score)
	}
	if out.Best != best {
		t.Errorf("best score = %d, expected %d", out.Best, best)
	}
	if !out.Reproduces(r) {
		t.Errorf("replay with recorded score %d not reproduced (best %d)", r.Score, out.Best)
	}
}
