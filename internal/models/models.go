package models

// TimerMode selects how a focus session is sized.
type TimerMode int

const (
	ModePomodoro TimerMode = iota
	ModeCustom
)

func (m TimerMode) String() string {
	if m == ModeCustom {
		return "custom"
	}
	return "pomodoro"
}

// TimerPhase is the timer's current mode of operation.
type TimerPhase int

const (
	PhaseIdle TimerPhase = iota
	PhaseFocus
	PhaseBreak
)

func (p TimerPhase) String() string {
	switch p {
	case PhaseFocus:
		return "focus"
	case PhaseBreak:
		return "break"
	default:
		return "idle"
	}
}

// EventType enumerates the kinds of scheduled entries on a day.
type EventType string

const (
	EventClass    EventType = "class"
	EventLift     EventType = "lift"
	EventPractice EventType = "practice"
	EventMatch    EventType = "match"
	EventStudy    EventType = "study"
	EventRecovery EventType = "recovery"
	EventOther    EventType = "other"
)

// EventTypes lists every type in display order.
var EventTypes = []EventType{
	EventClass, EventLift, EventPractice, EventMatch,
	EventStudy, EventRecovery, EventOther,
}

// Event is one scheduled calendar entry.
type Event struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // "2006-01-02"
	Type        EventType `json:"type"`
	Title       string    `json:"title"`
	StartTime   string    `json:"startTime"` // "HH:MM"
	DurationMin int       `json:"durationMin"`
	Notes       string    `json:"notes"`
}

// WellnessEntry is the daily check-in for one date. Scale fields run 1-10;
// zero means not recorded yet.
type WellnessEntry struct {
	SleepHours float64 `json:"sleepHours"`
	Soreness   int     `json:"soreness"`
	Stress     int     `json:"stress"`
	Energy     int     `json:"energy"`
	Notes      string  `json:"notes"`
}

// Settings holds the durable app preferences.
type Settings struct {
	Theme          string `json:"theme"`
	FocusMin       int    `json:"focusMin"`
	BreakMin       int    `json:"breakMin"`
	CustomMin      int    `json:"customMin"`
	PassphraseHash string `json:"passphraseHash,omitempty"`
}
