// Package planner owns the calendar, course registry, wellness log, and app
// settings, all backed by the key/value store. Every mutation persists its
// record immediately; every read is served from memory.
package planner

import (
	"context"

	"gameplan/internal/config"
	"gameplan/internal/models"
	"gameplan/internal/store"
)

// Planner is the CRUD layer around the store. Not safe for concurrent use.
type Planner struct {
	kv       store.KV
	events   []models.Event
	courses  []string
	wellness map[string]models.WellnessEntry
	settings models.Settings
}

// Load seeds a planner from the store, falling back to empty collections and
// default settings wherever a record is absent or unreadable.
func Load(ctx context.Context, kv store.KV) *Planner {
	p := &Planner{
		kv:       kv,
		events:   []models.Event{},
		courses:  []string{},
		wellness: map[string]models.WellnessEntry{},
		settings: models.Settings{
			Theme:     config.DefaultTheme,
			FocusMin:  config.DefaultFocusMin,
			BreakMin:  config.DefaultBreakMin,
			CustomMin: config.DefaultCustomMin,
		},
	}
	kv.Load(ctx, config.KeyEvents, &p.events)
	kv.Load(ctx, config.KeyCourses, &p.courses)
	kv.Load(ctx, config.KeyWellness, &p.wellness)
	kv.Load(ctx, config.KeySettings, &p.settings)
	return p
}

// Settings returns the current app settings.
func (p *Planner) Settings() models.Settings {
	return p.settings
}

// SaveSettings persists new settings, clamping durations at zero.
func (p *Planner) SaveSettings(ctx context.Context, s models.Settings) error {
	if s.FocusMin < 0 {
		s.FocusMin = 0
	}
	if s.BreakMin < 0 {
		s.BreakMin = 0
	}
	if s.CustomMin < 0 {
		s.CustomMin = 0
	}
	p.settings = s
	return p.kv.Save(ctx, config.KeySettings, p.settings)
}
