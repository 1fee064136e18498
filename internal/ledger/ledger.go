// Package ledger tracks accumulated study minutes per course per day and
// answers daily and weekly totals over that history.
package ledger

import (
	"context"

	"gameplan/internal/config"
	"gameplan/internal/store"
)

// Ledger maps ISO date -> course name -> accumulated minutes. Entries are
// created lazily on first accumulation. Not safe for concurrent use; all
// mutation happens on the app's single event loop.
type Ledger struct {
	days map[string]map[string]int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{days: make(map[string]map[string]int)}
}

// Load seeds a ledger from the studyLog record, starting empty when the
// record is absent or unreadable. Stored negatives are dropped.
func Load(ctx context.Context, kv store.KV) *Ledger {
	days := map[string]map[string]int{}
	kv.Load(ctx, config.KeyStudyLog, &days)
	for date, courses := range days {
		for course, minutes := range courses {
			if minutes < 0 {
				courses[course] = 0
			}
		}
		if courses == nil {
			days[date] = map[string]int{}
		}
	}
	return &Ledger{days: days}
}

// Persist writes the ledger to the studyLog record.
func (l *Ledger) Persist(ctx context.Context, kv store.KV) error {
	return kv.Save(ctx, config.KeyStudyLog, l.days)
}

// Accumulate adds minutes to the date/course cell, creating intermediate
// entries as needed. Negative amounts are clamped to zero.
func (l *Ledger) Accumulate(date, course string, minutes int) {
	if minutes < 0 {
		minutes = 0
	}
	courses, ok := l.days[date]
	if !ok {
		courses = make(map[string]int)
		l.days[date] = courses
	}
	courses[course] += minutes
}

// RemoveCourse deletes the course from every date. Date keys survive even
// when they end up empty.
func (l *Ledger) RemoveCourse(course string) {
	for _, courses := range l.days {
		delete(courses, course)
	}
}

// TotalForDate sums all course minutes for the date, 0 when absent.
func (l *Ledger) TotalForDate(date string) int {
	total := 0
	for _, minutes := range l.days[date] {
		total += minutes
	}
	return total
}

// TotalForCourseOnDate returns the minutes for one date/course cell.
func (l *Ledger) TotalForCourseOnDate(date, course string) int {
	return l.days[date][course]
}
