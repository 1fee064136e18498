package ledger

import (
	"sort"
	"time"

	"gameplan/internal/config"
)

// Aggregation views are pure reads recomputed on demand; nothing here caches
// or mutates ledger state.

// WeekStart returns the Monday of the week containing anchor.
func WeekStart(anchor time.Time) time.Time {
	offset := int(anchor.Weekday()) - int(time.Monday)
	if anchor.Weekday() == time.Sunday {
		offset = 6
	}
	return anchor.AddDate(0, 0, -offset)
}

// WeeklyTotal sums TotalForDate over the Monday-anchored week containing
// anchor.
func (l *Ledger) WeeklyTotal(anchor time.Time) int {
	start := WeekStart(anchor)
	total := 0
	for i := 0; i < 7; i++ {
		total += l.TotalForDate(start.AddDate(0, 0, i).Format(config.DateLayout))
	}
	return total
}

// BreakdownForDate returns a copy of the date's course minutes. Absent dates
// yield an empty map.
func (l *Ledger) BreakdownForDate(date string) map[string]int {
	out := make(map[string]int, len(l.days[date]))
	for course, minutes := range l.days[date] {
		out[course] = minutes
	}
	return out
}

// WeeklyBreakdown returns per-course totals over the week containing anchor.
func (l *Ledger) WeeklyBreakdown(anchor time.Time) map[string]int {
	start := WeekStart(anchor)
	out := make(map[string]int)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(config.DateLayout)
		for course, minutes := range l.days[date] {
			out[course] += minutes
		}
	}
	return out
}

// CourseRow pairs a course with a minute total for sorted display.
type CourseRow struct {
	Course  string
	Minutes int
}

// SortedRows flattens a breakdown into rows ordered by minutes descending,
// then name.
func SortedRows(breakdown map[string]int) []CourseRow {
	rows := make([]CourseRow, 0, len(breakdown))
	for course, minutes := range breakdown {
		rows = append(rows, CourseRow{Course: course, Minutes: minutes})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Minutes != rows[j].Minutes {
			return rows[i].Minutes > rows[j].Minutes
		}
		return rows[i].Course < rows[j].Course
	})
	return rows
}
