package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// activateBuff grants a buff, or refreshes it when one with the same ID is
// still active: the existing entry is replaced and its timer restarted.
// Buffs never stack per ID.
func (e *Engine) activateBuff(id domain.BuffID, name string, duration time.Duration, now time.Time) domain.BuffChange {
	buff := domain.Buff{
		ID:              id,
		Name:            name,
		DurationSeconds: int(duration / time.Second),
		StartedAt:       now,
	}

	refreshed := false
	kept := e.buffs[:0]
	for _, existing := range e.buffs {
		if existing.ID == id {
			refreshed = existing.Active(now)
			continue // replaced below, active or not
		}
		if !existing.Active(now) {
			continue // lazy expiry sweep
		}
		kept = append(kept, existing)
	}
	e.buffs = append(kept, buff)

	return domain.BuffChange{ID: id, Refreshed: refreshed, ExpiresAt: buff.ExpiresAt()}
}

// ActiveBuffs returns the buffs still in effect at now, lazily dropping
// expired entries.
func (e *Engine) ActiveBuffs(now time.Time) []domain.Buff {
	kept := e.buffs[:0]
	for _, buff := range e.buffs {
		if buff.Active(now) {
			kept = append(kept, buff)
		}
	}
	e.buffs = kept

	out := make([]domain.Buff, len(e.buffs))
	copy(out, e.buffs)
	return out
}

// countActiveBuffs feeds the XP multiplier.
func (e *Engine) countActiveBuffs(now time.Time) int {
	n := 0
	for _, buff := range e.buffs {
		if buff.Active(now) {
			n++
		}
	}
	return n
}

// clearBuffs drops every buff. Invoked by the daily reset.
func (e *Engine) clearBuffs() {
	e.buffs = nil
}

// CooldownReady reports whether a stored readyAt timestamp has passed.
// Cooldowns are plain timestamps checked on each attempt; the engine owns
// no timers. A nil readyAt means never used, which is always ready.
func CooldownReady(readyAt *time.Time, now time.Time) bool {
	return readyAt == nil || !now.Before(*readyAt)
}
