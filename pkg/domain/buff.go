package domain

import "time"

// BuffID identifies a buff kind. Identity is a closed enum; the string
// value doubles as the persisted tag so snapshots stay readable.
type BuffID string

const (
	// BuffHydrated is granted when the daily hydration goal is reached.
	BuffHydrated BuffID = "hydrated"

	// BuffRested is granted when a sleep rating is logged.
	BuffRested BuffID = "rested"

	// BuffGutHealth is granted when a gut rating is logged.
	BuffGutHealth BuffID = "gut_health"

	// BuffFocused is granted by long focus sessions.
	BuffFocused BuffID = "focused"
)

// IsValid returns true if the buff ID is a known kind.
func (b BuffID) IsValid() bool {
	switch b {
	case BuffHydrated, BuffRested, BuffGutHealth, BuffFocused:
		return true
	default:
		return false
	}
}

// Buff is a named, time-limited effect. Each active buff adds BuffXPBonus
// to the XP multiplier. Buffs of the same ID are refreshed (replaced, timer
// restarted), never stacked.
type Buff struct {
	ID              BuffID    `json:"id"`
	Name            string    `json:"name"`
	DurationSeconds int       `json:"duration_seconds"`
	StartedAt       time.Time `json:"started_at"`
}

// Remaining returns the time left before the buff expires. Never negative.
func (b *Buff) Remaining(now time.Time) time.Duration {
	rem := time.Duration(b.DurationSeconds)*time.Second - now.Sub(b.StartedAt)
	if rem < 0 {
		return 0
	}
	return rem
}

// Active reports whether the buff is still in effect at the given time.
func (b *Buff) Active(now time.Time) bool {
	return b.Remaining(now) > 0
}

// ExpiresAt returns the instant the buff lapses.
func (b *Buff) ExpiresAt() time.Time {
	return b.StartedAt.Add(time.Duration(b.DurationSeconds) * time.Second)
}
