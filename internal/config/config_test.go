package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := DefaultGame()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid mismatch: %+v vs %+v", cfg.Grid, def.Grid)
	}
	if cfg.Speed != def.Speed {
		t.Errorf("Speed mismatch: %+v vs %+v", cfg.Speed, def.Speed)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("Scoring mismatch: %+v vs %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Bonus != def.Bonus {
		t.Errorf("Bonus mismatch: %+v vs %+v", cfg.Bonus, def.Bonus)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
grid:
  width: 10
  height: 10
scoring:
  food_points: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Grid.Width != 10 || cfg.Grid.Height != 10 {
		t.Errorf("Grid = %+v, expected 10x10", cfg.Grid)
	}
	if cfg.Scoring.FoodPoints != 7 {
		t.Errorf("FoodPoints = %d, expected 7", cfg.Scoring.FoodPoints)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/nope.yaml"); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantEvery int
	}{
		{DifficultyEasy, 8},
		{DifficultyNormal, 6},
		{DifficultyHard, 4},
	}

	for _, tc := range tests {
		cfg := DefaultGame()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Speed.MoveEveryTicks != tc.wantEvery {
			t.Errorf("Preset %s: MoveEveryTicks = %d, expected %d",
				tc.preset, cfg.Speed.MoveEveryTicks, tc.wantEvery)
		}
	}

	// Unknown preset leaves the config alone
	cfg := DefaultGame()
	before := cfg.Speed
	ApplyPreset(&cfg, "ultraviolence")
	if cfg.Speed != before {
		t.Error("Unknown preset should not modify the config")
	}
}
