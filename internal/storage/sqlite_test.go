package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReplay(seed int64, score int) replay.Replay {
	rec := replay.NewRecorder("flappy", seed, 60, false)
	for i := 0; i < 10; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 1:
			in.Set(core.IntentStart)
		case i%3 == 0:
			in.Set(core.IntentImpulse)
		}
		rec.Record(in)
	}
	return rec.Finish(score)
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(sampleReplay(1, 4))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	r, err := store.LoadReplay(id)
	if err != nil || r == nil {
		t.Fatalf("LoadReplay() = %v, %v", r, err)
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	want := sampleReplay(42, 7)

	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if got == nil {
		t.Fatal("LoadReplay() returned nil")
	}

	if got.ID != id || got.GameID != "flappy" || got.Seed != 42 || got.TickRate != 60 {
		t.Errorf("header = %+v", got)
	}
	if got.Frames != want.Frames || got.Score != 7 {
		t.Errorf("frames/score = %d/%d, expected %d/7", got.Frames, got.Score, want.Frames)
	}
	if len(got.Events) != len(want.Events) {
		t.Fatalf("events = %d, expected %d", len(got.Events), len(want.Events))
	}
	for i := range want.Events {
		if got.Events[i].Tick != want.Events[i].Tick || got.Events[i].Intent != want.Events[i].Intent {
			t.Errorf("event %d = %+v, expected %+v", i, got.Events[i], want.Events[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestLoadMissingReplay(t *testing.T) {
	store := openTestStore(t)

	r, err := store.LoadReplay(999)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}
	if r != nil {
		t.Errorf("LoadReplay() = %+v, expected nil", r)
	}
}

func TestListReplays(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveReplay(sampleReplay(int64(i), i)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}
	other := sampleReplay(9, 0)
	other.GameID = "other"
	if _, err := store.SaveReplay(other); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	tests := []struct {
		name   string
		gameID string
		limit  int
		want   int
	}{
		{"all games", "", 10, 4},
		{"one game", "flappy", 10, 3},
		{"limited", "flappy", 2, 2},
		{"unknown game", "missing", 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list, err := store.ListReplays(tc.gameID, tc.limit)
			if err != nil {
				t.Fatalf("ListReplays() failed: %v", err)
			}
			if len(list) != tc.want {
				t.Errorf("got %d replays, expected %d", len(list), tc.want)
			}
		})
	}

	list, _ := store.ListReplays("flappy", 10)
	for i := 1; i < len(list); i++ {
		if list[i-1].ID < list[i].ID {
			t.Fatalf("ListReplays() not newest first: %v", list)
		}
	}
	if list[0].Events == 0 {
		t.Error("summary should count events")
	}
	if d := list[0].Duration(); d != 10*time.Second/60 {
		t.Errorf("Duration() = %v, expected %v", d, 10*time.Second/60)
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleReplay(1, 1))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	r, err := store.LoadReplay(id)
	if err != nil || r != nil {
		t.Errorf("LoadReplay() after delete = %v, %v", r, err)
	}
	if err := store.DeleteReplay(id); err != nil {
		t.Errorf("second DeleteReplay() failed: %v", err)
	}
}
