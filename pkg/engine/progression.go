package engine

import (
	"math"

	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// grantXP applies a base XP amount through the buff multiplier and returns
// the adjusted amount actually credited.
//
// The multiplier is additive per active buff: 1 + 0.2*n, never exponential.
// A level increase overwrites any unacknowledged pending level-up; only the
// latest is surfaced. Past level 100 XP keeps accumulating with no further
// level-ups.
func (e *Engine) grantXP(base int, now time.Time) int {
	if base <= 0 {
		return 0
	}
	multiplier := 1 + domain.BuffXPBonus*float64(e.countActiveBuffs(now))
	adjusted := int(math.Round(float64(base) * multiplier))

	e.progression.TotalXP += adjusted
	newLevel := domain.LevelForTotalXP(e.progression.TotalXP)
	if newLevel > e.progression.Level {
		tier := domain.ClassifyLevelUp(newLevel)
		e.progression.PendingLevelUp = &domain.PendingLevelUp{Level: newLevel, Tier: tier}
		e.logger.Info("Level up",
			"level", newLevel,
			"tier", tier,
			"total_xp", e.progression.TotalXP,
		)
	}
	e.progression.Level = newLevel
	return adjusted
}

// AcknowledgeLevelUp returns the pending level-up and clears it.
// Returns nil when nothing is pending.
func (e *Engine) AcknowledgeLevelUp() *domain.PendingLevelUp {
	pending := e.progression.PendingLevelUp
	e.progression.PendingLevelUp = nil
	return pending
}

// ResetProgression zeroes XP and level and clears any pending level-up.
// This belongs to the full-wipe operation only; the daily reset never
// touches progression.
func (e *Engine) ResetProgression() {
	e.progression = domain.NewProgressionState()
}
