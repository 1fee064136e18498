package tui

import (
	"fmt"
	"strings"

	"gameplan/internal/config"
	"gameplan/internal/ledger"
	"gameplan/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m DashboardModel) paneFrame(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(width)
}

func (m DashboardModel) eventStyle(t models.EventType) lipgloss.Style {
	switch t {
	case models.EventClass:
		return m.theme.Class
	case models.EventLift:
		return m.theme.Lift
	case models.EventPractice:
		return m.theme.Practice
	case models.EventMatch:
		return m.theme.Match
	case models.EventStudy:
		return m.theme.Study
	case models.EventRecovery:
		return m.theme.Recovery
	default:
		return m.theme.Other
	}
}

func (m DashboardModel) renderSchedulePane(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render("SCHEDULE"))
	b.WriteString("\n")

	events := m.planner.EventsForDate(m.dateStr())
	if len(events) == 0 {
		b.WriteString(m.theme.Dim.Render("Nothing scheduled."))
	}
	shown := events
	if len(shown) > config.MaxVisibleEvents {
		shown = shown[:config.MaxVisibleEvents]
	}
	for i, e := range shown {
		cursor := "  "
		line := fmt.Sprintf("%s %-8s %s", e.StartTime, strings.ToUpper(string(e.Type)), e.Title)
		if e.DurationMin > 0 {
			line += fmt.Sprintf(" (%s)", FormatMinutes(e.DurationMin))
		}
		line = ansi.Truncate(line, width-6, config.TruncationSuffix)
		styled := m.eventStyle(e.Type).Render(line)
		if i == m.eventCursor {
			cursor = m.theme.Selected.Render("> ")
			styled = m.theme.Selected.Render(line)
		}
		b.WriteString(cursor + styled)
		if i < len(shown)-1 {
			b.WriteString("\n")
		}
	}
	if hidden := len(events) - len(shown); hidden > 0 {
		b.WriteString("\n" + m.theme.Dim.Render(fmt.Sprintf("(+%d more)", hidden)))
	}
	return m.paneFrame(width).Render(b.String())
}

func (m DashboardModel) renderTimerPane(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render("FOCUS TIMER"))
	b.WriteString("\n")

	status := FormatPhase(m.machine.Phase(), m.machine.Running(), m.machine.Remaining())
	switch m.machine.Phase() {
	case models.PhaseBreak:
		b.WriteString(m.theme.Break.Render(status))
	case models.PhaseFocus:
		b.WriteString(m.theme.Focus.Render(status))
	default:
		b.WriteString(m.theme.Dim.Render(status))
	}
	b.WriteString("\n")

	if total := m.machine.SessionSeconds(); total > 0 {
		fraction := float64(total-m.machine.Remaining()) / float64(total)
		b.WriteString(m.progress.ViewAs(fraction))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Label.Render("Mode: ") + m.theme.Value.Render(m.machine.Mode().String()))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Course: ") + m.theme.Value.Render(m.machine.ActiveCourse))
	return m.paneFrame(width).Render(b.String())
}

func (m DashboardModel) renderStatsPane(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render("STUDY LOG"))
	b.WriteString("\n")

	today := m.ledger.TotalForDate(m.dateStr())
	week := m.ledger.WeeklyTotal(m.selectedDate)
	b.WriteString(m.theme.Label.Render("Today: ") + m.theme.Value.Render(FormatMinutes(today)))
	b.WriteString("   ")
	b.WriteString(m.theme.Label.Render("Week: ") + m.theme.Value.Render(FormatMinutes(week)))

	rows := ledger.SortedRows(m.ledger.BreakdownForDate(m.dateStr()))
	if len(rows) > config.MaxVisibleCourses {
		rows = rows[:config.MaxVisibleCourses]
	}
	for _, row := range rows {
		line := fmt.Sprintf("%s  %s", row.Course, FormatMinutes(row.Minutes))
		b.WriteString("\n  " + ansi.Truncate(m.theme.Value.Render(line), width-6, config.TruncationSuffix))
	}
	return m.paneFrame(width).Render(b.String())
}

func (m DashboardModel) renderWellnessPane(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render("WELLNESS"))
	b.WriteString("\n")

	w := m.planner.Wellness(m.dateStr())
	if w == (models.WellnessEntry{}) {
		b.WriteString(m.theme.Dim.Render("Not recorded - press 'w'"))
		return m.paneFrame(width).Render(b.String())
	}

	scale := func(v int) string {
		if v == 0 {
			return "-"
		}
		return fmt.Sprintf("%d", v)
	}
	b.WriteString(m.theme.Label.Render("Sleep: ") + m.theme.Value.Render(fmt.Sprintf("%gh", w.SleepHours)))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render("Sore: ") + m.theme.Value.Render(scale(w.Soreness)))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render("Stress: ") + m.theme.Value.Render(scale(w.Stress)))
	b.WriteString("  ")
	b.WriteString(m.theme.Label.Render("Energy: ") + m.theme.Value.Render(scale(w.Energy)))
	if w.Notes != "" {
		b.WriteString("\n" + ansi.Truncate(m.theme.Dim.Render(w.Notes), width-4, config.TruncationSuffix))
	}
	return m.paneFrame(width).Render(b.String())
}

func (m DashboardModel) renderModal() string {
	switch state := m.modal.(type) {
	case *ConfirmState:
		return m.theme.Input.Render(state.Prompt)
	case *CourseCreateState:
		return m.theme.Input.Render("New course\n" + state.Input.View())
	case *EventFormState:
		title := "New event"
		if state.EditingID != "" {
			title = "Edit event"
		}
		return m.theme.Input.Render(title + "\n" + m.renderForm(&state.formState))
	case *WellnessFormState:
		return m.theme.Input.Render("Wellness check-in\n" + m.renderForm(&state.formState))
	}
	return ""
}

func (m DashboardModel) renderForm(f *formState) string {
	var b strings.Builder
	for i := range f.inputs {
		label := f.labels[i]
		if i == f.focusIdx {
			b.WriteString(m.theme.Selected.Render(label))
		} else {
			b.WriteString(m.theme.Label.Render(label))
		}
		b.WriteString(" " + f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
