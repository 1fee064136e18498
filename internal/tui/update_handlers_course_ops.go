package tui

import (
	"fmt"

	"gameplan/internal/config"
	"gameplan/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleCourseCreate(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "C" {
		return m, nil, false
	}
	m.modal = newCourseCreateState()
	return m, textinput.Blink, true
}

func (m DashboardModel) handleCourseDelete(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "D" {
		return m, nil, false
	}
	if len(m.planner.Courses()) == 0 {
		m.Message = "No courses to remove"
		return m, nil, true
	}
	target := m.machine.ActiveCourse
	m.modal = &ConfirmState{
		Prompt:  fmt.Sprintf("Remove course %q and its study history? (y/n)", target),
		Action:  ConfirmDeleteCourse,
		Payload: target,
	}
	return m, nil, true
}

// removeCourse drops the course from the registry and cascades the delete
// through the ledger, then revalidates the timer's active course.
func (m DashboardModel) removeCourse(name string) DashboardModel {
	removed, err := m.planner.RemoveCourse(m.ctx, name)
	if err != nil {
		m.Message = fmt.Sprintf("Error removing course: %v", err)
		return m
	}
	if !removed {
		return m
	}
	m.ledger.RemoveCourse(name)
	util.LogError("persist study log", m.ledger.Persist(m.ctx, m.kv))
	m.machine.EnsureCourse(m.planner.Courses())
	if len(m.planner.Courses()) == 0 {
		m.Message = fmt.Sprintf("Removed %s - timer now credits %s", name, config.SentinelCourse)
	} else {
		m.Message = fmt.Sprintf("Removed %s", name)
	}
	return m
}
