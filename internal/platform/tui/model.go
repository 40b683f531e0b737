package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards platform logs.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight(cfg.ScreenH))
	return m
}

// screenHeight leaves room for the help footer below the game.
func (m Model) screenHeight(termH int) int {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keyMapper.Keys().FullHelp() {
			rows = max(rows, len(col))
		}
	}
	return max(termH-rows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.screen.Width(),
		ScreenH:  m.screen.Height(),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.screenHeight(m.config.ScreenH))
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Debug("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The maze camera follows the player, so the game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.screenHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.Won && !prev.Won:
		m.logger.Info("game won", "game", m.game.ID(), "score", m.gameState.Score)
	case m.gameState.GameOver && !prev.GameOver:
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
