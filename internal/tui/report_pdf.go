package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gameplan/internal/config"
	"gameplan/internal/ledger"
	"gameplan/internal/planner"
	"gameplan/internal/util"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pdf/fpdf"
)

func (m DashboardModel) handleReport(key string) (DashboardModel, tea.Cmd, bool) {
	if key != "r" {
		return m, nil, false
	}
	path, err := GenerateWeeklyReport(m.planner, m.ledger, m.selectedDate, util.ReportsDir(config.AppName))
	if err != nil {
		m.Message = fmt.Sprintf("Error generating report: %v", err)
	} else {
		m.Message = fmt.Sprintf("Report written to %s", path)
	}
	return m, nil, true
}

// GenerateWeeklyReport writes a PDF summary of the week containing anchor:
// per-day and per-course study totals plus the wellness rows. Returns the
// output path.
func GenerateWeeklyReport(p *planner.Planner, l *ledger.Ledger, anchor time.Time, dir string) (string, error) {
	start := ledger.WeekStart(anchor)
	end := start.AddDate(0, 0, 6)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Weekly Report: %s - %s",
		start.Format("Jan 2"), end.Format("Jan 2 2006")))
	pdf.Ln(12)

	// Study minutes per day.
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Study Time (total %s)", FormatMinutes(l.WeeklyTotal(anchor))))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(config.DateLayout)
		pdf.Cell(0, 8, fmt.Sprintf("  %s  %s", day.Format("Mon Jan 2"), FormatMinutes(l.TotalForDate(date))))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Per-course breakdown for the week.
	rows := ledger.SortedRows(l.WeeklyBreakdown(anchor))
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "By Course")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(rows) == 0 {
		pdf.Cell(0, 8, "  No study time logged.")
		pdf.Ln(6)
	}
	for _, row := range rows {
		pdf.Cell(0, 8, fmt.Sprintf("  %s  %s", row.Course, FormatMinutes(row.Minutes)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Wellness rows for recorded days.
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Wellness")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	recorded := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		w := p.Wellness(day.Format(config.DateLayout))
		if w.SleepHours == 0 && w.Soreness == 0 && w.Stress == 0 && w.Energy == 0 && w.Notes == "" {
			continue
		}
		recorded++
		line := fmt.Sprintf("  %s  sleep %gh, soreness %d, stress %d, energy %d",
			day.Format("Mon"), w.SleepHours, w.Soreness, w.Stress, w.Energy)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
		if w.Notes != "" {
			pdf.MultiCell(0, 6, "      "+w.Notes, "", "", false)
		}
	}
	if recorded == 0 {
		pdf.Cell(0, 8, "  No check-ins recorded.")
		pdf.Ln(6)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("week_%s.pdf", start.Format(config.DateLayout)))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
