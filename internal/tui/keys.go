package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitals-sh/vitals/internal/dashboard"
)

// keyMap declares the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
	Down key.Binding
	Up   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next process"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous process"),
		),
	}
}

// decode maps a key press to a dashboard action. The second return is
// false for keys the dashboard does not handle.
func (k keyMap) decode(msg tea.KeyMsg) (dashboard.Action, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return dashboard.ActionQuit, true
	case key.Matches(msg, k.Down):
		return dashboard.ActionSelectNext, true
	case key.Matches(msg, k.Up):
		return dashboard.ActionSelectPrevious, true
	}
	return 0, false
}
