package tui

import (
	"fmt"

	"gameplan/internal/config"
	"gameplan/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 3
		}
		if target < config.MinBarWidth {
			target = config.MinBarWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

// handleTick consumes one second of clock. Stale ticks (wrong sequence, or
// delivered after pause/reset) are dropped without re-arming, so only the
// chain started by the most recent Start keeps running.
func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.machine.Running() {
		return m, nil
	}
	if done, ok := m.machine.Tick(); ok {
		m.ledger.Accumulate(m.dateStr(), done.Course, done.Minutes)
		util.LogError("persist study log", m.ledger.Persist(m.ctx, m.kv))
		m.Message = fmt.Sprintf("Logged %s to %s", FormatMinutes(done.Minutes), done.Course)
	}
	if !m.machine.Running() {
		// Custom sessions stop themselves after one block.
		return m, nil
	}
	return m, tickCmd(m.tickSeq)
}
