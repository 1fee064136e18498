package tui

import (
	"errors"
	"fmt"

	"gameplan/internal/planner"

	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleModalInput(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.modal = nil
		return m, nil
	}
	switch state := m.modal.(type) {
	case *ConfirmState:
		return m.handleConfirmInput(state, msg)
	case *CourseCreateState:
		return m.handleCourseCreateInput(state, msg)
	case *EventFormState:
		return m.handleEventFormInput(state, msg)
	case *WellnessFormState:
		return m.handleWellnessFormInput(state, msg)
	}
	return m, nil
}

func (m DashboardModel) handleConfirmInput(state *ConfirmState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.modal = nil
		switch state.Action {
		case ConfirmDeleteEvent:
			if err := m.planner.DeleteEvent(m.ctx, state.Payload); err != nil {
				m.Message = fmt.Sprintf("Error deleting event: %v", err)
			} else {
				m.Message = "Event deleted"
			}
			return m.clampEventCursor(), nil
		case ConfirmDeleteCourse:
			return m.removeCourse(state.Payload), nil
		}
	case "n", "N":
		m.modal = nil
	}
	return m, nil
}

func (m DashboardModel) handleCourseCreateInput(state *CourseCreateState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := state.Input.Value()
		m.modal = nil
		err := m.planner.AddCourse(m.ctx, name)
		switch {
		case errors.Is(err, planner.ErrEmptyCourseName):
			m.Message = "Course name cannot be empty"
		case errors.Is(err, planner.ErrCourseExists):
			m.Message = "Course already exists"
		case err != nil:
			m.Message = fmt.Sprintf("Error adding course: %v", err)
		default:
			m.machine.EnsureCourse(m.planner.Courses())
			m.Message = "Course added"
		}
		return m, nil
	}
	var cmd tea.Cmd
	state.Input, cmd = state.Input.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleEventFormInput(state *EventFormState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !state.atLastField() {
			state.focusField(state.focusIdx + 1)
			return m, nil
		}
		m.modal = nil
		e := state.Event(m.dateStr())
		if state.EditingID == "" {
			if _, err := m.planner.AddEvent(m.ctx, e); err != nil {
				m.Message = fmt.Sprintf("Error adding event: %v", err)
			} else {
				m.Message = "Event added"
			}
		} else {
			if err := m.planner.UpdateEvent(m.ctx, e); err != nil {
				m.Message = fmt.Sprintf("Error updating event: %v", err)
			} else {
				m.Message = "Event updated"
			}
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		state.focusField(state.focusIdx + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		state.focusField(state.focusIdx - 1)
		return m, nil
	}
	return m, state.update(msg)
}

func (m DashboardModel) handleWellnessFormInput(state *WellnessFormState, msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if !state.atLastField() {
			state.focusField(state.focusIdx + 1)
			return m, nil
		}
		m.modal = nil
		if err := m.planner.SetWellness(m.ctx, m.dateStr(), state.Entry()); err != nil {
			m.Message = fmt.Sprintf("Error saving wellness: %v", err)
		} else {
			m.Message = "Wellness saved"
		}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		state.focusField(state.focusIdx + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		state.focusField(state.focusIdx - 1)
		return m, nil
	}
	return m, state.update(msg)
}
