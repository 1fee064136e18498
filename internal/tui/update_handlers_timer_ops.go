package tui

import (
	"fmt"

	"gameplan/internal/models"
	"gameplan/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleTimerToggle(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "s" {
		return m, nil, false
	}
	if m.machine.Running() {
		m.machine.Pause()
		m.tickSeq++ // invalidate the in-flight tick chain
		m.Message = "Timer paused"
		return m, nil, true
	}
	m.machine.EnsureCourse(m.planner.Courses())
	m.machine.Start()
	m.tickSeq++
	m.Message = fmt.Sprintf("Focusing on %s", m.machine.ActiveCourse)
	return m, tickCmd(m.tickSeq), true
}

func (m DashboardModel) handleTimerReset(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "x" {
		return m, nil, false
	}
	m.machine.Reset()
	m.tickSeq++
	m.Message = "Timer reset"
	return m, nil, true
}

// handleTimerMode flips Pomodoro/Custom. A mode switch always resets the
// machine; the phase in progress is never resized in place.
func (m DashboardModel) handleTimerMode(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "m" {
		return m, nil, false
	}
	if m.machine.Mode() == models.ModePomodoro {
		m.machine.SetMode(models.ModeCustom)
	} else {
		m.machine.SetMode(models.ModePomodoro)
	}
	m.machine.Reset()
	m.tickSeq++
	m.Message = fmt.Sprintf("Mode: %s", m.machine.Mode())
	return m, nil, true
}

// handleDurationAdjust nudges the active mode's session length. The new
// value applies when the next phase starts.
func (m DashboardModel) handleDurationAdjust(key string) (DashboardModel, tea.Cmd, bool) {
	var delta int
	switch key {
	case "+", "=":
		delta = 5
	case "-", "_":
		delta = -5
	default:
		return m, nil, false
	}

	settings := m.planner.Settings()
	if m.machine.Mode() == models.ModeCustom {
		m.machine.CustomMin = util.Clamp(m.machine.CustomMin+delta, 5, 480)
		settings.CustomMin = m.machine.CustomMin
		m.Message = fmt.Sprintf("Custom session: %d min", m.machine.CustomMin)
	} else {
		m.machine.FocusMin = util.Clamp(m.machine.FocusMin+delta, 5, 480)
		settings.FocusMin = m.machine.FocusMin
		m.Message = fmt.Sprintf("Focus session: %d min", m.machine.FocusMin)
	}
	util.LogError("persist settings", m.planner.SaveSettings(m.ctx, settings))
	return m, nil, true
}

func (m DashboardModel) handleCourseCycle(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "c" {
		return m, nil, false
	}
	courses := m.planner.Courses()
	if len(courses) == 0 {
		m.Message = "No courses yet - press 'C' to add one"
		return m, nil, true
	}
	next := 0
	for i, c := range courses {
		if c == m.machine.ActiveCourse {
			next = (i + 1) % len(courses)
			break
		}
	}
	m.machine.ActiveCourse = courses[next]
	m.Message = fmt.Sprintf("Active course: %s", m.machine.ActiveCourse)
	return m, nil, true
}

func (m DashboardModel) handleThemeCycle(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "T" {
		return m, nil, false
	}
	settings := m.planner.Settings()
	next := 0
	for i, name := range ThemeOrder {
		if name == settings.Theme {
			next = (i + 1) % len(ThemeOrder)
			break
		}
	}
	settings.Theme = ThemeOrder[next]
	m.theme = themeOr(settings.Theme)
	util.LogError("persist settings", m.planner.SaveSettings(m.ctx, settings))
	m.Message = fmt.Sprintf("Theme: %s", m.theme.Name)
	return m, nil, true
}
