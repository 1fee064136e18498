package tui

import (
	"fmt"

	"gameplan/internal/config"

	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	width := m.width
	if width <= 0 {
		width = config.CompactModeThreshold
	}
	paneWidth := (width - 10) / 2
	if paneWidth < config.MinPaneWidth {
		paneWidth = config.MinPaneWidth
	}

	header := m.renderHeader(width)
	left := m.renderSchedulePane(paneWidth)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTimerPane(paneWidth),
		m.renderStatsPane(paneWidth),
		m.renderWellnessPane(paneWidth),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	sections := []string{header, body}
	if m.modal != nil {
		sections = append(sections, m.renderModal())
	}
	sections = append(sections, m.renderFooter(width))

	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderHeader(width int) string {
	title := fmt.Sprintf("GAMEPLAN  |  %s", FormatDayHeading(m.selectedDate))
	header := m.theme.Header.Width(width - 4).Render(title)
	if m.Message == "" {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header,
		m.theme.Highlight.Width(width-4).Align(lipgloss.Center).Render(m.Message))
}

func (m DashboardModel) renderFooter(width int) string {
	help := "[h/l] day  [t] today  [j/k] events  [a/e/d] event  [s] start/pause  [x] reset  [m] mode  [+/-] length  [c/C/D] course  [w] wellness  [r] report  [T] theme  [q] quit"
	return m.theme.Dim.Width(width - 4).Render(help + "  v" + AppVersion)
}
