package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modal != nil {
			return m.handleModalInput(msg)
		}
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m DashboardModel) handleNormalMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.handleQuit(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleDateNav(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleEventCursor(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleEventCreate(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleEventEdit(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleEventDelete(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleTimerToggle(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleTimerReset(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleTimerMode(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleDurationAdjust(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleCourseCycle(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleCourseCreate(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleCourseDelete(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleWellnessEdit(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleThemeCycle(key); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleReport(key); handled {
		return next, cmd
	}
	return m, nil
}

func (m DashboardModel) handleQuit(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "q" {
		return m, nil, false
	}
	return m, tea.Quit, true
}
