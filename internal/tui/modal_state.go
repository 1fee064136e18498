package tui

import (
	"fmt"
	"strings"

	"gameplan/internal/config"
	"gameplan/internal/models"
	"gameplan/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalEventForm
	ModalCourseCreate
	ModalWellness
	ModalConfirm
)

// ModalState is the currently open modal, nil when none.
type ModalState interface {
	Type() ModalType
}

// formState is the shared multi-field input machinery.
type formState struct {
	labels   []string
	inputs   []textinput.Model
	focusIdx int
}

func newFormState(labels []string, values []string, widths []int) formState {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		ti := textinput.New()
		ti.SetValue(values[i])
		ti.Width = widths[i]
		ti.CharLimit = config.MaxNotesLength
		inputs[i] = ti
	}
	inputs[0].Focus()
	return formState{labels: labels, inputs: inputs}
}

func (f *formState) focusField(idx int) {
	if idx < 0 {
		idx = len(f.inputs) - 1
	}
	if idx >= len(f.inputs) {
		idx = 0
	}
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = idx
	f.inputs[f.focusIdx].Focus()
}

func (f *formState) atLastField() bool {
	return f.focusIdx == len(f.inputs)-1
}

func (f *formState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return cmd
}

func (f *formState) value(idx int) string {
	return strings.TrimSpace(f.inputs[idx].Value())
}

// --- Event create/edit ---

const (
	fieldEventTitle = iota
	fieldEventType
	fieldEventStart
	fieldEventDuration
	fieldEventNotes
)

type EventFormState struct {
	formState
	EditingID string // empty while creating
}

func newEventFormState(e models.Event) *EventFormState {
	duration := ""
	if e.DurationMin > 0 {
		duration = fmt.Sprintf("%d", e.DurationMin)
	}
	form := newFormState(
		[]string{"Title", "Type", "Start (HH:MM)", "Duration (min)", "Notes"},
		[]string{e.Title, string(e.Type), e.StartTime, duration, e.Notes},
		[]int{40, 12, 8, 6, 50},
	)
	form.inputs[fieldEventTitle].CharLimit = config.MaxTitleLength
	return &EventFormState{formState: form, EditingID: e.ID}
}

func (s *EventFormState) Type() ModalType { return ModalEventForm }

// Event assembles the form into an event for the given date. Bad numerics
// coerce to zero; the planner coerces unknown types.
func (s *EventFormState) Event(date string) models.Event {
	return models.Event{
		ID:          s.EditingID,
		Date:        date,
		Type:        models.EventType(strings.ToLower(s.value(fieldEventType))),
		Title:       s.value(fieldEventTitle),
		StartTime:   s.value(fieldEventStart),
		DurationMin: util.ParseIntOr(s.value(fieldEventDuration), 0),
		Notes:       s.value(fieldEventNotes),
	}
}

// --- Course create ---

type CourseCreateState struct {
	Input textinput.Model
}

func newCourseCreateState() *CourseCreateState {
	ti := textinput.New()
	ti.Placeholder = "Course name..."
	ti.CharLimit = config.MaxCourseNameLength
	ti.Width = 30
	ti.Focus()
	return &CourseCreateState{Input: ti}
}

func (s *CourseCreateState) Type() ModalType { return ModalCourseCreate }

// --- Wellness ---

const (
	fieldSleep = iota
	fieldSoreness
	fieldStress
	fieldEnergy
	fieldWellnessNotes
)

type WellnessFormState struct {
	formState
}

func newWellnessFormState(w models.WellnessEntry) *WellnessFormState {
	scale := func(v int) string {
		if v == 0 {
			return ""
		}
		return fmt.Sprintf("%d", v)
	}
	sleep := ""
	if w.SleepHours > 0 {
		sleep = fmt.Sprintf("%g", w.SleepHours)
	}
	form := newFormState(
		[]string{"Sleep (hours)", "Soreness (1-10)", "Stress (1-10)", "Energy (1-10)", "Notes"},
		[]string{sleep, scale(w.Soreness), scale(w.Stress), scale(w.Energy), w.Notes},
		[]int{6, 4, 4, 4, 50},
	)
	return &WellnessFormState{formState: form}
}

func (s *WellnessFormState) Type() ModalType { return ModalWellness }

// Entry assembles the form into a wellness entry, coercing bad numerics to
// the field's prior value's zero default.
func (s *WellnessFormState) Entry() models.WellnessEntry {
	return models.WellnessEntry{
		SleepHours: util.ParseFloatOr(s.value(fieldSleep), 0),
		Soreness:   util.ParseIntOr(s.value(fieldSoreness), 0),
		Stress:     util.ParseIntOr(s.value(fieldStress), 0),
		Energy:     util.ParseIntOr(s.value(fieldEnergy), 0),
		Notes:      s.value(fieldWellnessNotes),
	}
}

// --- Confirm ---

type ConfirmAction int

const (
	ConfirmDeleteEvent ConfirmAction = iota
	ConfirmDeleteCourse
)

type ConfirmState struct {
	Prompt  string
	Action  ConfirmAction
	Payload string // event ID or course name
}

func (s *ConfirmState) Type() ModalType { return ModalConfirm }
