package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultMazeConfig().Difficulty
	cfg.InitialLevel = 0.2
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		cleared int
		want    float64
	}{
		{0, 0.2},
		{2, 0.6},
		{4, 1.0},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.cleared); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.cleared, got, tt.want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultMazeConfig().Difficulty
	cfg.InitialLevel = 0.5
	cfg.Enabled = false
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Fatal("Expected progression to be disabled")
	}
	if got := dm.Level(100); got != 0.5 {
		t.Errorf("Level should stay at the initial level, got %v", got)
	}

	cfg.Enabled = true
	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).IsEnabled() {
		t.Error(`Progression type "none" should disable scaling`)
	}
}

func TestDifficultyScaling(t *testing.T) {
	dm := NewDifficultyManager(DefaultMazeConfig().Difficulty)

	if got := dm.Size(40, 0); got != 40 {
		t.Errorf("Size at level 0 = %d, want 40", got)
	}
	if got := dm.Size(40, 4); got != 70 {
		t.Errorf("Size at max level = %d, want 70", got)
	}
	if got := dm.Branchy(90, 4); got != 100 {
		t.Errorf("Branchy should cap at 100, got %d", got)
	}
	if got := dm.Battery(8000, 4); got != 6000 {
		t.Errorf("Battery at max level = %d, want 6000", got)
	}
	if got := dm.Battery(1500, 4); got != 1000 {
		t.Errorf("Battery should floor at 1000, got %d", got)
	}
	if got := dm.Size(8, 0); got != 8 {
		t.Errorf("Size below the floor should stay at its base, got %d", got)
	}
}
