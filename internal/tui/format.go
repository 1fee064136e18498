package tui

import (
	"fmt"
	"time"

	"gameplan/internal/models"
)

// FormatCountdown renders remaining seconds as MM:SS (HH:MM:SS past an hour).
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatMinutes renders a minute total for display (e.g. "2h 15m", "45m").
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatPhase returns a human-readable timer status line.
func FormatPhase(phase models.TimerPhase, running bool, seconds int) string {
	switch phase {
	case models.PhaseFocus:
		if running {
			return fmt.Sprintf("FOCUS - %s remaining", FormatCountdown(seconds))
		}
		return fmt.Sprintf("PAUSED - %s remaining", FormatCountdown(seconds))
	case models.PhaseBreak:
		if running {
			return fmt.Sprintf("BREAK - %s remaining", FormatCountdown(seconds))
		}
		return fmt.Sprintf("BREAK (paused) - %s remaining", FormatCountdown(seconds))
	default:
		return "Ready - press 's' to start"
	}
}

// FormatDayHeading renders a date for the dashboard header.
func FormatDayHeading(d time.Time) string {
	return d.Format("Monday, Jan 2 2006")
}
