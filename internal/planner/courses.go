package planner

import (
	"context"
	"strings"

	"gameplan/internal/config"
)

// Courses returns the registry in insertion order.
func (p *Planner) Courses() []string {
	out := make([]string, len(p.courses))
	copy(out, p.courses)
	return out
}

// FirstCourse returns the first registered course, or the sentinel when the
// registry is empty.
func (p *Planner) FirstCourse() string {
	if len(p.courses) > 0 {
		return p.courses[0]
	}
	return config.SentinelCourse
}

// AddCourse appends a course name, rejecting blanks and duplicates. The
// registry commits only once the record is written.
func (p *Planner) AddCourse(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourseName
	}
	for _, c := range p.courses {
		if c == name {
			return ErrCourseExists
		}
	}
	courses := append(append([]string{}, p.courses...), name)
	if err := p.kv.Save(ctx, config.KeyCourses, courses); err != nil {
		return err
	}
	p.courses = courses
	return nil
}

// RemoveCourse drops a course from the registry, reporting whether it was
// present. The study ledger cascade is the caller's responsibility so the
// two mutations stay on the same event-loop turn.
func (p *Planner) RemoveCourse(ctx context.Context, name string) (bool, error) {
	for i, c := range p.courses {
		if c == name {
			courses := append(append([]string{}, p.courses[:i]...), p.courses[i+1:]...)
			if err := p.kv.Save(ctx, config.KeyCourses, courses); err != nil {
				return true, err
			}
			p.courses = courses
			return true, nil
		}
	}
	return false, nil
}
