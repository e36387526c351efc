package domain

import "time"

// ReminderType identifies one of the app's reminder streams.
type ReminderType string

const (
	// ReminderHydration nudges the player to drink during focus work.
	ReminderHydration ReminderType = "hydration"

	// ReminderPosture nudges a posture check during long sessions.
	ReminderPosture ReminderType = "posture"

	// ReminderMovement nudges the player to stand up and move.
	ReminderMovement ReminderType = "movement"
)

// IsValid returns true if the reminder type is known.
func (r ReminderType) IsValid() bool {
	switch r {
	case ReminderHydration, ReminderPosture, ReminderMovement:
		return true
	default:
		return false
	}
}

// ReminderSettings is the player-tunable policy for one reminder type.
// The engine only decides whether a reminder may fire; delivery belongs
// to the host.
type ReminderSettings struct {
	Enabled        bool `json:"enabled" yaml:"enabled"`
	CadenceMinutes int  `json:"cadence_minutes" yaml:"cadence_minutes"`

	// Active window [StartHour, EndHour). The window wraps past midnight
	// when EndHour < StartHour; StartHour == EndHour means always open.
	StartHour int `json:"start_hour" yaml:"start_hour"`
	EndHour   int `json:"end_hour" yaml:"end_hour"`

	// OnlyDuringSession requires a qualifying session to be active.
	OnlyDuringSession bool `json:"only_during_session" yaml:"only_during_session"`

	// MinSessionMinutes and RequiredCategory gate reminders triggered by
	// timer completion: the finishing session must be at least this long
	// and, when RequiredCategory is set, of that category.
	MinSessionMinutes int    `json:"min_session_minutes,omitempty" yaml:"min_session_minutes,omitempty"`
	RequiredCategory  string `json:"required_category,omitempty" yaml:"required_category,omitempty"`
}

// ReminderState is the engine-persisted scheduling state for one
// reminder type.
type ReminderState struct {
	LastFiredAt *time.Time `json:"last_fired_at,omitempty"`
}
