package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap holds the key bindings and doubles as the help.KeyMap for the controls line.
type KeyMap struct {
	Thrust  key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding

	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust:  key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "thrust")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),

		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Screenshot}}
}

// Action translates a key message to a game action (ActionNone if unbound).
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.Left):
		return core.ActionRotateLeft
	case key.Matches(msg, k.Right):
		return core.ActionRotateRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// isDiscrete reports whether an action fires once per key press.
func isDiscrete(a core.Action) bool {
	switch a {
	case core.ActionFire, core.ActionRestart, core.ActionPause:
		return true
	}
	return false
}
