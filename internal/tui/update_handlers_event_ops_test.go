package tui

import (
	"testing"
	"time"

	"gameplan/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDateNavigation(t *testing.T) {
	m := setupTestDashboard(t)

	m = typeString(m, "l")
	if got := m.dateStr(); got != "2024-01-11" {
		t.Fatalf("next day = %q", got)
	}
	m = typeString(m, "hh")
	if got := m.dateStr(); got != "2024-01-09" {
		t.Fatalf("prev day = %q", got)
	}

	m = typeString(m, "t")
	if got := m.dateStr(); got != time.Now().Format("2006-01-02") {
		t.Fatalf("today = %q", got)
	}
}

func TestDateNavigationResetsCursor(t *testing.T) {
	m := setupTestDashboard(t)
	m.eventCursor = 3
	m = typeString(m, "l")
	if m.eventCursor != 0 {
		t.Fatalf("cursor should reset on date change, got %d", m.eventCursor)
	}
}

func TestEventCursorClamps(t *testing.T) {
	m := setupTestDashboard(t)
	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := m.planner.AddEvent(m.ctx, models.Event{Date: "2024-01-10", Type: models.EventOther, Title: title}); err != nil {
			t.Fatalf("AddEvent failed: %v", err)
		}
	}

	m = typeString(m, "k")
	if m.eventCursor != 0 {
		t.Fatalf("cursor should not go below zero, got %d", m.eventCursor)
	}
	m = typeString(m, "jjjjj")
	if m.eventCursor != 2 {
		t.Fatalf("cursor should clamp to last event, got %d", m.eventCursor)
	}
}

func TestEventEditPrefillsForm(t *testing.T) {
	m := setupTestDashboard(t)
	created, err := m.planner.AddEvent(m.ctx, models.Event{
		Date: "2024-01-10", Type: models.EventClass, Title: "Chem Lecture", StartTime: "09:00", DurationMin: 50,
	})
	if err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	m = typeString(m, "e")
	state, ok := m.modal.(*EventFormState)
	if !ok {
		t.Fatalf("expected event form, got %T", m.modal)
	}
	if state.EditingID != created.ID {
		t.Fatalf("EditingID = %q, want %q", state.EditingID, created.ID)
	}
	if got := state.inputs[fieldEventTitle].Value(); got != "Chem Lecture" {
		t.Fatalf("title prefill = %q", got)
	}
	if got := state.inputs[fieldEventDuration].Value(); got != "50" {
		t.Fatalf("duration prefill = %q", got)
	}
}

func TestEventEditWithoutEventsIsNoop(t *testing.T) {
	m := setupTestDashboard(t)
	m = typeString(m, "e")
	if m.modal != nil {
		t.Fatalf("edit with no events should not open a modal")
	}
	m = typeString(m, "d")
	if m.modal != nil {
		t.Fatalf("delete with no events should not open a modal")
	}
}

func TestEventEditUpdatesInPlace(t *testing.T) {
	m := setupTestDashboard(t)
	if _, err := m.planner.AddEvent(m.ctx, models.Event{
		Date: "2024-01-10", Type: models.EventClass, Title: "Chem Lecture", StartTime: "09:00",
	}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	m = typeString(m, "e")
	state := m.modal.(*EventFormState)
	state.inputs[fieldEventTitle].SetValue("Chem Lab")
	for i := 0; i < 5; i++ {
		m = press(m, tea.KeyEnter)
	}

	events := m.planner.EventsForDate("2024-01-10")
	if len(events) != 1 {
		t.Fatalf("edit should not duplicate, got %d events", len(events))
	}
	if events[0].Title != "Chem Lab" {
		t.Fatalf("title not updated: %q", events[0].Title)
	}
}
