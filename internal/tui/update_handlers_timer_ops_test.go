package tui

import (
	"testing"

	"gameplan/internal/models"
)

func TestTimerToggleStartsAndPauses(t *testing.T) {
	m := setupTestDashboard(t)

	m, cmd, handled := m.handleTimerToggle("s")
	if !handled || cmd == nil {
		t.Fatalf("start should be handled and arm the clock")
	}
	if !m.machine.Running() || m.machine.Phase() != models.PhaseFocus {
		t.Fatalf("start should enter a running focus phase")
	}
	startSeq := m.tickSeq

	m, cmd, _ = m.handleTimerToggle("s")
	if cmd != nil {
		t.Fatalf("pause must not arm another clock chain")
	}
	if m.machine.Running() {
		t.Fatalf("pause should stop the machine")
	}
	if m.tickSeq == startSeq {
		t.Fatalf("pause should invalidate the in-flight chain")
	}

	// Resume keeps remaining time.
	remaining := m.machine.Remaining()
	m, cmd, _ = m.handleTimerToggle("s")
	if cmd == nil || m.machine.Remaining() != remaining {
		t.Fatalf("resume should re-arm without resizing the countdown")
	}
}

func TestTimerResetDiscardsProgressWithoutCredit(t *testing.T) {
	m := setupTestDashboard(t)
	m, _, _ = m.handleTimerToggle("s")
	m = driveTicks(t, m, 500)

	m, cmd, handled := m.handleTimerReset("x")
	if !handled || cmd != nil {
		t.Fatalf("reset should be handled without arming the clock")
	}
	if m.machine.Phase() != models.PhaseIdle || m.machine.Remaining() != 0 {
		t.Fatalf("reset should return to idle/0")
	}
	if got := m.ledger.TotalForDate("2024-01-10"); got != 0 {
		t.Fatalf("reset mid-focus credited %d minutes", got)
	}

	// A tick from before the reset may still be in flight; it must be inert.
	next, cmd := m.handleTick(TickMsg{Seq: m.tickSeq - 1})
	if cmd != nil || next.machine.Remaining() != 0 {
		t.Fatalf("lagging tick applied after reset")
	}
}

func TestModeSwitchResetsMachine(t *testing.T) {
	m := setupTestDashboard(t)
	m, _, _ = m.handleTimerToggle("s")
	m = driveTicks(t, m, 100)

	m, _, _ = m.handleTimerMode("m")
	if m.machine.Mode() != models.ModeCustom {
		t.Fatalf("mode should flip to custom")
	}
	if m.machine.Phase() != models.PhaseIdle || m.machine.Running() {
		t.Fatalf("mode switch should reset the machine")
	}

	m, _, _ = m.handleTimerMode("m")
	if m.machine.Mode() != models.ModePomodoro {
		t.Fatalf("mode should flip back to pomodoro")
	}
}

func TestDurationAdjustFollowsModeAndPersists(t *testing.T) {
	m := setupTestDashboard(t)

	m, _, handled := m.handleDurationAdjust("+")
	if !handled {
		t.Fatalf("adjust not handled")
	}
	if m.machine.FocusMin != 30 {
		t.Fatalf("pomodoro adjust should raise focus to 30, got %d", m.machine.FocusMin)
	}
	if m.planner.Settings().FocusMin != 30 {
		t.Fatalf("adjust should persist settings, got %d", m.planner.Settings().FocusMin)
	}

	m, _, _ = m.handleTimerMode("m")
	m, _, _ = m.handleDurationAdjust("-")
	if m.machine.CustomMin != 40 {
		t.Fatalf("custom adjust should lower custom to 40, got %d", m.machine.CustomMin)
	}
	if m.machine.FocusMin != 30 {
		t.Fatalf("custom adjust must not touch focus duration")
	}
}

func TestDurationAdjustDoesNotResizeRunningPhase(t *testing.T) {
	m := setupTestDashboard(t)
	m, _, _ = m.handleTimerToggle("s")
	remaining := m.machine.Remaining()

	m, _, _ = m.handleDurationAdjust("+")
	if m.machine.Remaining() != remaining {
		t.Fatalf("adjust resized the running countdown")
	}
}

func TestCourseCycle(t *testing.T) {
	m := setupTestDashboard(t)

	m, _, _ = m.handleCourseCycle("c")
	if m.Message == "" {
		t.Fatalf("empty registry should explain itself")
	}

	for _, c := range []string{"BIO 212", "MATH 151"} {
		if err := m.planner.AddCourse(m.ctx, c); err != nil {
			t.Fatalf("AddCourse failed: %v", err)
		}
	}
	m.machine.EnsureCourse(m.planner.Courses())

	m, _, _ = m.handleCourseCycle("c")
	if m.machine.ActiveCourse != "MATH 151" {
		t.Fatalf("cycle should advance, got %q", m.machine.ActiveCourse)
	}
	m, _, _ = m.handleCourseCycle("c")
	if m.machine.ActiveCourse != "BIO 212" {
		t.Fatalf("cycle should wrap, got %q", m.machine.ActiveCourse)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	m := setupTestDashboard(t)
	m, _, _ = m.handleThemeCycle("T")
	if m.theme.Name != "Varsity" {
		t.Fatalf("theme should advance to varsity, got %q", m.theme.Name)
	}
	if m.planner.Settings().Theme != "varsity" {
		t.Fatalf("theme should persist, got %q", m.planner.Settings().Theme)
	}
}
