package testutil

import (
	"gameplan/internal/ledger"
	"gameplan/internal/models"
)

// LedgerBuilder provides a fluent API for seeding study ledgers in tests.
type LedgerBuilder struct {
	l *ledger.Ledger
}

func NewLedger() *LedgerBuilder {
	return &LedgerBuilder{l: ledger.New()}
}

func (b *LedgerBuilder) WithMinutes(date, course string, minutes int) *LedgerBuilder {
	b.l.Accumulate(date, course, minutes)
	return b
}

// WithWeek spreads the same credit across the seven days starting at date.
// Dates are assumed well-formed "2006-01-02" strings.
func (b *LedgerBuilder) WithWeek(dates []string, course string, minutes int) *LedgerBuilder {
	for _, d := range dates {
		b.l.Accumulate(d, course, minutes)
	}
	return b
}

func (b *LedgerBuilder) Build() *ledger.Ledger {
	return b.l
}

// EventBuilder provides a fluent API for creating test events.
type EventBuilder struct {
	event models.Event
}

func NewEvent() *EventBuilder {
	return &EventBuilder{
		event: models.Event{
			Date:        "2024-01-10",
			Type:        models.EventClass,
			Title:       "Test Event",
			StartTime:   "09:00",
			DurationMin: 50,
		},
	}
}

func (b *EventBuilder) WithDate(d string) *EventBuilder {
	b.event.Date = d
	return b
}

func (b *EventBuilder) WithType(t models.EventType) *EventBuilder {
	b.event.Type = t
	return b
}

func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.event.Title = title
	return b
}

func (b *EventBuilder) WithStartTime(hhmm string) *EventBuilder {
	b.event.StartTime = hhmm
	return b
}

func (b *EventBuilder) WithDuration(minutes int) *EventBuilder {
	b.event.DurationMin = minutes
	return b
}

func (b *EventBuilder) Build() models.Event {
	return b.event
}
