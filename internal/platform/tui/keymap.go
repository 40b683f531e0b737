package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	North      key.Binding
	South      key.Binding
	East       key.Binding
	West       key.Binding
	Run        key.Binding
	Flashlight key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.North, k.South, k.East, k.West, k.Run, k.Flashlight, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.East, k.West},
		{k.Run, k.Flashlight, k.Confirm},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("↑/w", "north"),
		),
		South: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("↓/s", "south"),
		),
		East: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("→/d", "east"),
		),
		West: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("←/a", "west"),
		),
		Run: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "run"),
		),
		Flashlight: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "boost light"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next maze"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.North):
		return core.ActionNorth, false
	case key.Matches(msg, k.South):
		return core.ActionSouth, false
	case key.Matches(msg, k.East):
		return core.ActionEast, false
	case key.Matches(msg, k.West):
		return core.ActionWest, false
	case key.Matches(msg, k.Run):
		return core.ActionRun, false
	case key.Matches(msg, k.Flashlight):
		return core.ActionFlashlight, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.North):
		return MenuActionUp
	case key.Matches(msg, k.South):
		return MenuActionDown
	case key.Matches(msg, k.Confirm), key.Matches(msg, k.Run):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
