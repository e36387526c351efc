// Package reminder decides whether and when a reminder may fire.
// Everything here is a pure function of settings, scheduling state, the
// caller's clock, and live context; delivery and timers belong to the host.
package reminder

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// Context carries the live facts a firing decision depends on.
type Context struct {
	// SessionActive reports whether a qualifying session is running right now.
	SessionActive bool

	// TriggerMinutes and TriggerCategory describe the session whose
	// completion triggered this check. Zero/empty when the check was not
	// triggered by a timer completion.
	TriggerMinutes  int
	TriggerCategory string
}

// cadenceElapsed reports whether enough time has passed since the last fire.
// The cadence value is compared against elapsed seconds.
func cadenceElapsed(settings domain.ReminderSettings, lastFiredAt *time.Time, now time.Time) bool {
	if lastFiredAt == nil {
		return true
	}
	return now.Sub(*lastFiredAt) >= time.Duration(settings.CadenceMinutes)*time.Second
}

// InWindow reports whether now falls inside the active window
// [StartHour, EndHour). The window wraps past midnight when
// EndHour < StartHour; StartHour == EndHour means always open.
func InWindow(settings domain.ReminderSettings, now time.Time) bool {
	start, end := settings.StartHour, settings.EndHour
	h := now.Hour()
	switch {
	case start == end:
		return true
	case start < end:
		return h >= start && h < end
	default: // wraps past midnight
		return h >= start || h < end
	}
}

// ShouldFire decides whether a reminder may fire at now. When it returns
// true the caller must deliver the reminder and record lastFiredAt = now.
func ShouldFire(settings domain.ReminderSettings, state domain.ReminderState, now time.Time, ctx Context) bool {
	if !settings.Enabled {
		return false
	}
	if settings.OnlyDuringSession && !ctx.SessionActive {
		return false
	}
	if !InWindow(settings, now) {
		return false
	}
	if !cadenceElapsed(settings, state.LastFiredAt, now) {
		return false
	}
	if settings.MinSessionMinutes > 0 {
		if ctx.TriggerMinutes < settings.MinSessionMinutes {
			return false
		}
		if settings.RequiredCategory != "" && ctx.TriggerCategory != settings.RequiredCategory {
			return false
		}
	}
	return true
}

// NextEligibleTime computes the earliest future instant satisfying the
// window and cadence conditions, without firing. Used to preview upcoming
// reminders. Returns false when the reminder is disabled.
//
// If now is outside the active window the result is the start of the next
// window: today's StartHour when now precedes it, else tomorrow's.
func NextEligibleTime(settings domain.ReminderSettings, state domain.ReminderState, now time.Time) (time.Time, bool) {
	if !settings.Enabled {
		return time.Time{}, false
	}

	t := now
	if state.LastFiredAt != nil {
		ready := state.LastFiredAt.Add(time.Duration(settings.CadenceMinutes) * time.Second)
		if ready.After(t) {
			t = ready
		}
	}

	if InWindow(settings, t) {
		return t, true
	}
	return nextWindowStart(settings, t), true
}

// nextWindowStart returns the first window opening at or after t.
// Only called when t is outside the window, so StartHour != EndHour.
func nextWindowStart(settings domain.ReminderSettings, t time.Time) time.Time {
	y, m, d := t.Date()
	start := time.Date(y, m, d, settings.StartHour, 0, 0, 0, t.Location())
	if start.After(t) {
		return start
	}
	return start.AddDate(0, 0, 1)
}
