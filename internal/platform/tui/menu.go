package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// menuStage is the step of the picker the user is on.
type menuStage int

const (
	stageGame menuStage = iota
	stageDifficulty
)

// presetHints describes each difficulty preset.
var presetHints = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "bigger battery, fewer side corridors",
	config.DifficultyNormal: "mazes grow as you go",
	config.DifficultyHard:   "less light, larger mazes from the start",
	config.DifficultyFixed:  "every maze is built from your config as-is",
}

// MenuModel is the Bubble Tea model for the game and difficulty picker.
type MenuModel struct {
	items     []MenuItem
	presets   []config.DifficultyPreset
	stage     menuStage
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	game      *MenuItem
	preset    config.DifficultyPreset
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description})
	}

	return MenuModel{
		items:     items,
		presets:   config.Presets(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) optionCount() int {
	if m.stage == stageGame {
		return len(m.items)
	}
	return len(m.presets)
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}

	case MenuActionBack:
		if m.stage == stageDifficulty {
			m.stage = stageGame
			m.cursor = 0
			m.game = nil
		}

	case MenuActionSelect:
		if m.optionCount() == 0 {
			return m, nil
		}
		if m.stage == stageGame {
			selected := m.items[m.cursor]
			m.game = &selected
			m.stage = stageDifficulty
			m.cursor = 1 // normal
			return m, nil
		}
		m.preset = m.presets[m.cursor]
		return m, tea.Quit // Exit menu to start game
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A S H L I G H T   M A Z E"), m.width))
	b.WriteString("\n\n")

	if m.stage == stageGame {
		b.WriteString(centerText(subtitleStyle.Render("Select a mode"), m.width))
		b.WriteString("\n\n")
		for i, item := range m.items {
			b.WriteString(centerText(m.renderOption(i, item.Title, item.Description), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(subtitleStyle.Render(m.game.Title+": choose a difficulty"), m.width))
		b.WriteString("\n\n")
		for i, p := range m.presets {
			b.WriteString(centerText(m.renderOption(i, string(p), presetHints[p]), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(subtitleStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderOption(i int, name, hint string) string {
	if i == m.cursor {
		return selectedStyle.Render(fmt.Sprintf("> %-26s", name)) + subtitleStyle.Render(hint)
	}
	return itemStyle.Render(fmt.Sprintf("  %-26s", name)) + subtitleStyle.Render(hint)
}

// centerText centers text within given width, measuring visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// Result returns what the user picked.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	if m.quitting || m.game == nil || m.preset == "" {
		result.Quit = true
		return result
	}
	result.GameID = m.game.GameID
	result.Preset = m.preset
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
