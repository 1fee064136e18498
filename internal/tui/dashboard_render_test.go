package tui

import (
	"strings"
	"testing"

	"gameplan/internal/models"
	"gameplan/internal/testutil"
)

func TestViewShowsPanes(t *testing.T) {
	m := setupTestDashboard(t)
	out := m.View()
	for _, want := range []string{"GAMEPLAN", "SCHEDULE", "FOCUS TIMER", "STUDY LOG", "WELLNESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewRendersScheduledEvents(t *testing.T) {
	m := setupTestDashboard(t)
	scrimmage := testutil.NewEvent().
		WithType(models.EventPractice).
		WithTitle("Scrimmage").
		WithStartTime("16:00").
		WithDuration(90).
		Build()
	if _, err := m.planner.AddEvent(m.ctx, scrimmage); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	out := m.View()
	if !strings.Contains(out, "Scrimmage") {
		t.Errorf("view missing event title:\n%s", out)
	}
	if !strings.Contains(out, "16:00") {
		t.Errorf("view missing event start time")
	}
}

func TestViewEmptyScheduleHint(t *testing.T) {
	m := setupTestDashboard(t)
	if !strings.Contains(m.View(), "Nothing scheduled") {
		t.Errorf("expected empty-schedule hint")
	}
}

func TestViewShowsStudyTotals(t *testing.T) {
	m := setupTestDashboard(t)
	m.ledger = testutil.NewLedger().
		WithMinutes("2024-01-10", "BIO 212", 135).
		Build()

	out := m.View()
	if !strings.Contains(out, "2h 15m") {
		t.Errorf("view missing formatted study total:\n%s", out)
	}
	if !strings.Contains(out, "BIO 212") {
		t.Errorf("view missing course breakdown")
	}
}

func TestViewShowsWeeklyTotal(t *testing.T) {
	m := setupTestDashboard(t)
	week := []string{
		"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11",
		"2024-01-12", "2024-01-13", "2024-01-14",
	}
	m.ledger = testutil.NewLedger().
		WithWeek(week, "BIO 212", 30).
		Build()

	// 7 days x 30m anchored on the selected Wednesday.
	if !strings.Contains(m.View(), "3h 30m") {
		t.Errorf("view missing weekly total")
	}
}

func TestViewShowsWellnessEntry(t *testing.T) {
	m := setupTestDashboard(t)
	if err := m.planner.SetWellness(m.ctx, "2024-01-10", models.WellnessEntry{
		SleepHours: 7.5, Soreness: 3, Energy: 8,
	}); err != nil {
		t.Fatalf("SetWellness failed: %v", err)
	}

	out := m.View()
	if !strings.Contains(out, "7.5h") {
		t.Errorf("view missing sleep hours")
	}
	// Stress was never recorded and renders as a dash.
	if !strings.Contains(out, "Stress") {
		t.Errorf("view missing stress label")
	}
}

func TestViewShowsModalPrompt(t *testing.T) {
	m := setupTestDashboard(t)
	m.modal = &ConfirmState{Prompt: "Remove course?", Action: ConfirmDeleteCourse, Payload: "BIO 212"}
	if !strings.Contains(m.View(), "Remove course?") {
		t.Errorf("view missing confirm prompt")
	}
}

func TestViewFooterShowsVersion(t *testing.T) {
	m := setupTestDashboard(t)
	if !strings.Contains(m.View(), "v"+AppVersion) {
		t.Errorf("footer missing version")
	}
}

func TestViewShowsMessage(t *testing.T) {
	m := setupTestDashboard(t)
	m.Message = "Course added"
	if !strings.Contains(m.View(), "Course added") {
		t.Errorf("view missing status message")
	}
}
