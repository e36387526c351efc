package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
	"github.com/habitforge/progression-engine/pkg/reminder"
)

// ReminderSettings returns the current settings for a reminder type.
// Settings start from the catalog's defaults and change only through
// UpdateReminderSettings.
func (e *Engine) ReminderSettings(rt domain.ReminderType) domain.ReminderSettings {
	return e.remSettings[rt]
}

// UpdateReminderSettings applies a reminder-setting-changed command.
func (e *Engine) UpdateReminderSettings(rt domain.ReminderType, settings domain.ReminderSettings) {
	if !rt.IsValid() {
		return
	}
	e.remSettings[rt] = settings
	e.logger.Info("Reminder settings updated", "type", rt, "enabled", settings.Enabled)
}

// ShouldFireReminder decides whether the reminder may fire at now. The
// engine does not deliver or record anything here; a caller that fires
// must follow up with MarkReminderFired.
func (e *Engine) ShouldFireReminder(rt domain.ReminderType, now time.Time, ctx reminder.Context) bool {
	state := e.reminderState(rt)
	return reminder.ShouldFire(e.remSettings[rt], *state, now, ctx)
}

// MarkReminderFired records that the host delivered the reminder at now.
func (e *Engine) MarkReminderFired(rt domain.ReminderType, now time.Time) {
	e.reminderState(rt).LastFiredAt = &now
}

// NextReminderTime previews the earliest future instant the reminder could
// fire, ignoring session context. Returns false when the reminder is
// disabled.
func (e *Engine) NextReminderTime(rt domain.ReminderType, now time.Time) (time.Time, bool) {
	state := e.reminderState(rt)
	return reminder.NextEligibleTime(e.remSettings[rt], *state, now)
}

func (e *Engine) reminderState(rt domain.ReminderType) *domain.ReminderState {
	state, ok := e.remState[rt]
	if !ok {
		state = &domain.ReminderState{}
		e.remState[rt] = state
	}
	return state
}
