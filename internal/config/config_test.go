package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML and DefaultFlappyConfig disagree:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultFlappyConfig()
	if got := cfg.World.GroundY(); got != 1050 {
		t.Errorf("GroundY() = %f, expected 1050", got)
	}
	if got := cfg.Timing.DeathDelay(); got != 200*time.Millisecond {
		t.Errorf("DeathDelay() = %v, expected 200ms", got)
	}
}

func TestValidateRejectsBrokenSpacing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"offset narrower than obstacle", func(c *FlappyConfig) { c.Obstacles.Offset.Min = 50 }, "obstacles.offset.min"},
		{"gap too small", func(c *FlappyConfig) { c.Obstacles.Gap.Min = 60 }, "obstacles.gap.min"},
		{"empty pool", func(c *FlappyConfig) { c.Obstacles.Pairs = 0 }, "obstacles.pairs"},
		{"inverted range", func(c *FlappyConfig) { c.Obstacles.UpperY = Range{Min: 700, Max: 600} }, "obstacles.upper_y"},
		{"bad smoothing", func(c *FlappyConfig) { c.Tilt.Smoothing = 0 }, "tilt.smoothing"},
		{"bad ground", func(c *FlappyConfig) { c.World.GroundDiv = 0 }, "ground fraction"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsRangesInOrder(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.Offset = Range{Min: 900, Max: 800}
	cfg.Obstacles.Gap = Range{Min: 500, Max: 400}
	cfg.Obstacles.UpperY = Range{Min: 700, Max: 600}
	cfg.Title.UpperY = Range{Min: 650, Max: 150}

	first := cfg.Validate()
	if first == nil {
		t.Fatal("Validate() should fail")
	}
	msg := first.Error()

	last := -1
	for _, name := range []string{"obstacles.offset:", "obstacles.gap:", "obstacles.upper_y:", "title.upper_y:"} {
		i := strings.Index(msg, name)
		if i < 0 {
			t.Fatalf("error %q should mention %q", msg, name)
		}
		if i < last {
			t.Errorf("%q reported out of order in %q", name, msg)
		}
		last = i
	}

	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != msg {
			t.Fatalf("Validate() message changed between calls:\n%s\n%s", msg, got)
		}
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	doc := "obstacles:\n  pairs: 3\n  scroll_speed: 150\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.Pairs != 3 || cfg.Obstacles.ScrollSpeed != 150 {
		t.Errorf("overrides not applied: %+v", cfg.Obstacles)
	}
	if cfg.Physics.Gravity != 980 {
		t.Errorf("untouched values should keep defaults, gravity = %f", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  gap:\n    min: 10\n    max: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("invalid config should be rejected")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config should parse back to the same value")
	}
}
