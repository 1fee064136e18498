// Package timer implements the focus-timer state machine that drives study
// credit: Idle/Focus/Break phases advanced one second per tick, with a
// completion event fired when a focus phase counts down to zero.
package timer

import (
	"gameplan/internal/config"
	"gameplan/internal/models"
)

// Completion reports a finished focus phase. Minutes is the duration the
// phase was configured with when it started, so a paused-then-resumed
// session still credits the full block.
type Completion struct {
	Course  string
	Minutes int
}

// Machine is the focus-timer state machine. Not safe for concurrent use;
// every call must come from the same event loop that delivers ticks.
type Machine struct {
	mode      models.TimerMode
	phase     models.TimerPhase
	remaining int // seconds
	running   bool

	// Configured durations in minutes. Edits never resize the phase in
	// progress; they take effect when the next phase starts.
	FocusMin  int
	BreakMin  int
	CustomMin int

	// ActiveCourse names the course focus credit lands on.
	ActiveCourse string

	// sessionMin is captured when a focus phase starts and is what a
	// completion credits, regardless of later duration edits.
	sessionMin int
}

// NewMachine returns an idle machine with default durations.
func NewMachine() *Machine {
	return &Machine{
		FocusMin:     config.DefaultFocusMin,
		BreakMin:     config.DefaultBreakMin,
		CustomMin:    config.DefaultCustomMin,
		ActiveCourse: config.SentinelCourse,
	}
}

func (m *Machine) Mode() models.TimerMode   { return m.mode }
func (m *Machine) Phase() models.TimerPhase { return m.phase }
func (m *Machine) Remaining() int           { return m.remaining }
func (m *Machine) Running() bool            { return m.running }

// SessionSeconds returns the length of the phase in progress, for progress
// display. Zero while idle.
func (m *Machine) SessionSeconds() int {
	switch m.phase {
	case models.PhaseFocus:
		return m.sessionMin * 60
	case models.PhaseBreak:
		return clampMinutes(m.BreakMin) * 60
	default:
		return 0
	}
}

// SetMode switches between Pomodoro and Custom sizing. Callers are expected
// to pair a mode switch with Reset; the phase in progress is not resized.
func (m *Machine) SetMode(mode models.TimerMode) {
	m.mode = mode
}

// Start arms the countdown. From Idle it sizes a new focus phase from the
// configured duration; otherwise it only resumes the phase in progress.
func (m *Machine) Start() {
	if m.phase == models.PhaseIdle {
		m.sessionMin = m.configuredFocusMin()
		m.phase = models.PhaseFocus
		m.remaining = m.sessionMin * 60
	}
	m.running = true
}

// Pause stops the countdown without touching phase or remaining time.
func (m *Machine) Pause() {
	m.running = false
}

// Reset returns the machine to Idle, discarding any partial progress. No
// credit is issued for an unfinished focus phase.
func (m *Machine) Reset() {
	m.running = false
	m.phase = models.PhaseIdle
	m.remaining = 0
	m.sessionMin = 0
}

// Tick consumes one clock tick: one decrement, floored at zero, no matter
// how much wall time actually passed since the last delivery. When a phase
// bottoms out it advances synchronously and, for a focus phase, returns the
// completion to credit.
func (m *Machine) Tick() (Completion, bool) {
	if !m.running {
		return Completion{}, false
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		return Completion{}, false
	}
	return m.completePhase()
}

func (m *Machine) completePhase() (Completion, bool) {
	switch m.phase {
	case models.PhaseFocus:
		done := Completion{Course: m.ActiveCourse, Minutes: m.sessionMin}
		if m.mode == models.ModePomodoro {
			m.phase = models.PhaseBreak
			m.remaining = clampMinutes(m.BreakMin) * 60
		} else {
			// Custom sessions are single-shot.
			m.phase = models.PhaseIdle
			m.remaining = 0
			m.running = false
		}
		return done, true
	case models.PhaseBreak:
		m.sessionMin = clampMinutes(m.FocusMin)
		m.phase = models.PhaseFocus
		m.remaining = m.sessionMin * 60
		return Completion{}, false
	default:
		// Spurious completion check while idle.
		return Completion{}, false
	}
}

// EnsureCourse revalidates ActiveCourse against the registry, falling back
// to the first course or the sentinel when it no longer exists.
func (m *Machine) EnsureCourse(courses []string) {
	for _, c := range courses {
		if c == m.ActiveCourse {
			return
		}
	}
	if len(courses) > 0 {
		m.ActiveCourse = courses[0]
		return
	}
	m.ActiveCourse = config.SentinelCourse
}

func (m *Machine) configuredFocusMin() int {
	if m.mode == models.ModeCustom {
		return clampMinutes(m.CustomMin)
	}
	return clampMinutes(m.FocusMin)
}

func clampMinutes(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
