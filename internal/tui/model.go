// Package tui renders the vitals dashboard with Bubble Tea. It is a thin
// render surface over the dashboard controller: key presses become
// controller actions, a timer message advances the frame counter, and the
// view is drawn from the controller's immutable snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vitals-sh/vitals/internal/dashboard"
)

// frameMsg signals the next frame tick.
type frameMsg time.Time

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctrl     *dashboard.Controller
	keys     keyMap
	interval time.Duration

	frame   uint64
	started bool

	width  int
	height int

	quitting bool
}

// NewModel creates a dashboard model driving the given controller at the
// given frame interval.
func NewModel(ctrl *dashboard.Controller, interval time.Duration) Model {
	return Model{
		ctrl:     ctrl,
		keys:     newKeyMap(),
		interval: interval,
	}
}

// Init schedules the first frame tick.
func (m Model) Init() tea.Cmd {
	return m.frameCmd()
}

// Update handles input and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, ok := m.keys.decode(msg)
		if !ok {
			return m, nil
		}
		m.ctrl.Apply(action)
		if action == dashboard.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		if !m.ctrl.Running() {
			return m, nil
		}
		// Frame counter starts at 0 so the first tick also runs the
		// throttled refreshes (frame % n == 0).
		if m.started {
			m.frame++
		}
		m.started = true
		_ = m.ctrl.Tick(m.frame)
		return m, m.frameCmd()
	}

	return m, nil
}

// View renders the dashboard from the controller's current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	return m.renderDashboard(m.ctrl.View())
}

// Frame returns the current frame counter, for tests.
func (m Model) Frame() uint64 {
	return m.frame
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
