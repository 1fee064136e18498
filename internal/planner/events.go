package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gameplan/internal/config"
	"gameplan/internal/models"
)

// newEventID returns a unique-enough id for a locally created event.
func newEventID() string {
	return fmt.Sprintf("evt-%d", time.Now().UnixNano())
}

// AddEvent stores a new event and returns it with its assigned ID. A zero or
// negative duration is stored as zero; an unknown type becomes Other. The
// in-memory view commits only once the record is written, so a failed save
// leaves no phantom event behind.
func (p *Planner) AddEvent(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = newEventID()
	sanitizeEvent(&e)
	events := append(append([]models.Event{}, p.events...), e)
	if err := p.kv.Save(ctx, config.KeyEvents, events); err != nil {
		return models.Event{}, err
	}
	p.events = events
	return e, nil
}

// UpdateEvent replaces the stored event with the same ID.
func (p *Planner) UpdateEvent(ctx context.Context, e models.Event) error {
	for i := range p.events {
		if p.events[i].ID == e.ID {
			sanitizeEvent(&e)
			events := append([]models.Event{}, p.events...)
			events[i] = e
			if err := p.kv.Save(ctx, config.KeyEvents, events); err != nil {
				return err
			}
			p.events = events
			return nil
		}
	}
	return ErrEventNotFound
}

// DeleteEvent removes the event with the given ID.
func (p *Planner) DeleteEvent(ctx context.Context, id string) error {
	for i := range p.events {
		if p.events[i].ID == id {
			events := append(append([]models.Event{}, p.events[:i]...), p.events[i+1:]...)
			if err := p.kv.Save(ctx, config.KeyEvents, events); err != nil {
				return err
			}
			p.events = events
			return nil
		}
	}
	return ErrEventNotFound
}

// EventsForDate returns the date's events ordered by start time.
func (p *Planner) EventsForDate(date string) []models.Event {
	var out []models.Event
	for _, e := range p.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func sanitizeEvent(e *models.Event) {
	if e.DurationMin < 0 {
		e.DurationMin = 0
	}
	if !validEventType(e.Type) {
		e.Type = models.EventOther
	}
}

func validEventType(t models.EventType) bool {
	for _, known := range models.EventTypes {
		if t == known {
			return true
		}
	}
	return false
}
