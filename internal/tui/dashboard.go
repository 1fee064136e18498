package tui

import (
	"context"
	"time"

	"gameplan/internal/config"
	"gameplan/internal/ledger"
	"gameplan/internal/planner"
	"gameplan/internal/store"
	"gameplan/internal/timer"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one second of wall clock. Seq ties it to the chain that armed
// it so a stale chain left over from pause/resume cannot double-decrement.
type TickMsg struct {
	At  time.Time
	Seq int
}

func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg{At: t, Seq: seq} })
}

// DashboardModel is the root bubbletea model: schedule, focus timer, study
// stats, and wellness for one selected day.
type DashboardModel struct {
	ctx     context.Context
	kv      store.KV
	planner *planner.Planner
	ledger  *ledger.Ledger
	machine *timer.Machine

	selectedDate time.Time
	eventCursor  int
	modal        ModalState
	theme        Theme
	progress     progress.Model
	tickSeq      int

	Message       string
	width, height int
}

// NewDashboardModel loads all records from the store and assembles the
// dashboard anchored on today's date.
func NewDashboardModel(ctx context.Context, kv store.KV) DashboardModel {
	p := planner.Load(ctx, kv)
	l := ledger.Load(ctx, kv)

	settings := p.Settings()
	machine := timer.NewMachine()
	machine.FocusMin = settings.FocusMin
	machine.BreakMin = settings.BreakMin
	machine.CustomMin = settings.CustomMin
	machine.ActiveCourse = p.FirstCourse()
	machine.EnsureCourse(p.Courses())

	m := DashboardModel{
		ctx:          ctx,
		kv:           kv,
		planner:      p,
		ledger:       l,
		machine:      machine,
		selectedDate: time.Now(),
		theme:        themeOr(settings.Theme),
		progress:     progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = config.TargetBarWidth
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	// No tick until the timer starts.
	return nil
}

// dateStr is the selected date in store form.
func (m DashboardModel) dateStr() string {
	return m.selectedDate.Format(config.DateLayout)
}

func (m DashboardModel) clampEventCursor() DashboardModel {
	n := len(m.planner.EventsForDate(m.dateStr()))
	if m.eventCursor >= n {
		m.eventCursor = n - 1
	}
	if m.eventCursor < 0 {
		m.eventCursor = 0
	}
	return m
}
