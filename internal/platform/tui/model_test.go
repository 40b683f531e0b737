package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	_ "github.com/vovakirdan/tui-maze/internal/games/maze"
)

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames []core.InputFrame
	resets int
}

func (g *recordingGame) ID() string          { return "recording" }
func (g *recordingGame) Title() string       { return "Recording" }
func (g *recordingGame) Description() string { return "test double" }
func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	g.frames = append(g.frames, cp)
	return core.StepResult{State: core.GameState{Score: len(g.frames)}}
}

func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "recording") }
func (g *recordingGame) State() core.GameState   { return core.GameState{} }

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, nil)
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Expected one reset, got %d", g.resets)
	}

	next, _ := m.Update(runeKey('d'))
	next, _ = next.Update(TickMsg{})
	next, _ = next.Update(TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionEast) {
		t.Error("Expected the first frame to carry east")
	}
	if !g.frames[1].Empty() {
		t.Error("Expected the input frame to be cleared after a tick")
	}
	if got := next.(Model).State().Score; got != 2 {
		t.Errorf("Expected the model to track the game state, got score %d", got)
	}
}

func TestModelQuitAndResize(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	resized := next.(Model)
	if resized.screen.Width() != 60 || resized.screen.Height() != 19 {
		t.Errorf("Expected a 60x19 game screen, got %dx%d", resized.screen.Width(), resized.screen.Height())
	}
	if !strings.Contains(resized.View(), "recording") {
		t.Error("Expected the game in the view")
	}

	_, cmd := resized.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.Quit")
	}
}

func TestMenuPicksGameAndPreset(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 {
		t.Fatalf("Expected both maze modes in the menu, got %v", m.items)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.stage != stageDifficulty {
		t.Fatal("Expected the difficulty stage after picking a game")
	}
	if !strings.Contains(menu.View(), "choose a difficulty") {
		t.Error("Expected the difficulty prompt")
	}

	next, _ = menu.Update(runeKey('j'))
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected the menu to quit after picking a preset")
	}

	result := next.(MenuModel).Result()
	if result.Quit {
		t.Fatal("Expected a selection")
	}
	if result.GameID != m.items[0].GameID {
		t.Errorf("Expected %s, got %s", m.items[0].GameID, result.GameID)
	}
	if result.Preset != config.DifficultyHard {
		t.Errorf("Expected hard, got %s", result.Preset)
	}
}

func TestMenuBackAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(MenuModel).stage != stageGame {
		t.Error("Expected esc to return to the game list")
	}

	next, _ = next.Update(runeKey('q'))
	if !next.(MenuModel).Result().Quit {
		t.Error("Expected quit result")
	}
}
