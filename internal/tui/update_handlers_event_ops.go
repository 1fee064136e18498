package tui

import (
	"fmt"
	"time"

	"gameplan/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleDateNav(key string) (DashboardModel, tea.Cmd, bool) {
	switch key {
	case "left", "h":
		m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
	case "right", "l":
		m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
	case "t":
		m.selectedDate = time.Now()
	default:
		return m, nil, false
	}
	m.eventCursor = 0
	return m, nil, true
}

func (m DashboardModel) handleEventCursor(key string) (DashboardModel, tea.Cmd, bool) {
	switch key {
	case "up", "k":
		m.eventCursor--
	case "down", "j":
		m.eventCursor++
	default:
		return m, nil, false
	}
	return m.clampEventCursor(), nil, true
}

func (m DashboardModel) handleEventCreate(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "a" {
		return m, nil, false
	}
	m.modal = newEventFormState(models.Event{Type: models.EventClass})
	return m, textinput.Blink, true
}

func (m DashboardModel) handleEventEdit(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "e" {
		return m, nil, false
	}
	events := m.planner.EventsForDate(m.dateStr())
	if m.eventCursor >= len(events) {
		return m, nil, true
	}
	m.modal = newEventFormState(events[m.eventCursor])
	return m, textinput.Blink, true
}

func (m DashboardModel) handleEventDelete(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "d" {
		return m, nil, false
	}
	events := m.planner.EventsForDate(m.dateStr())
	if m.eventCursor >= len(events) {
		return m, nil, true
	}
	target := events[m.eventCursor]
	m.modal = &ConfirmState{
		Prompt:  fmt.Sprintf("Delete event %q? (y/n)", target.Title),
		Action:  ConfirmDeleteEvent,
		Payload: target.ID,
	}
	return m, nil, true
}

func (m DashboardModel) handleWellnessEdit(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "w" {
		return m, nil, false
	}
	m.modal = newWellnessFormState(m.planner.Wellness(m.dateStr()))
	return m, textinput.Blink, true
}
