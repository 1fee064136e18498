package planner

import (
	"context"

	"gameplan/internal/config"
	"gameplan/internal/models"
	"gameplan/internal/util"
)

// Wellness returns the entry for a date, zero-valued when none exists.
func (p *Planner) Wellness(date string) models.WellnessEntry {
	return p.wellness[date]
}

// SetWellness stores the entry for a date. Sleep is floored at zero; the
// 1-10 scales are clamped into range, with zero kept as "not recorded".
func (p *Planner) SetWellness(ctx context.Context, date string, e models.WellnessEntry) error {
	if e.SleepHours < 0 {
		e.SleepHours = 0
	}
	e.Soreness = clampScale(e.Soreness)
	e.Stress = clampScale(e.Stress)
	e.Energy = clampScale(e.Energy)
	p.wellness[date] = e
	return p.kv.Save(ctx, config.KeyWellness, p.wellness)
}

func clampScale(v int) int {
	if v == 0 {
		return 0
	}
	return util.Clamp(v, config.ScaleMin, config.ScaleMax)
}
