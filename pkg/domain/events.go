package domain

import "time"

// RatingKind is the check-in dimension a rating event logs.
type RatingKind string

const (
	RatingMood  RatingKind = "mood"
	RatingGut   RatingKind = "gut"
	RatingSleep RatingKind = "sleep"
)

// IsValid returns true if the rating kind is known.
func (k RatingKind) IsValid() bool {
	switch k {
	case RatingMood, RatingGut, RatingSleep:
		return true
	default:
		return false
	}
}

// TimerCompleted is the payload for a finished timer session.
type TimerCompleted struct {
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
}

// RatingLogged is the payload for a mood/gut/sleep check-in.
type RatingLogged struct {
	Kind  RatingKind `json:"kind"`
	Value int        `json:"value"` // 1-5 scale, informational
}

// HydrationLogged is the payload for a hydration entry.
type HydrationLogged struct {
	AmountML int `json:"amount_ml"`
	GoalML   int `json:"goal_ml"` // the day's goal as known by the host
}

// ScreenViewed is the payload for a screen-view event.
type ScreenViewed struct {
	Screen string `json:"screen"`
}

// BuffChange describes a buff granted or refreshed by an event.
type BuffChange struct {
	ID        BuffID    `json:"id"`
	Refreshed bool      `json:"refreshed"` // true when an active buff of the same ID was replaced
	ExpiresAt time.Time `json:"expires_at"`
}

// QuestCompletion describes one quest completed by an event.
type QuestCompletion struct {
	DefinitionID string `json:"definition_id"`
	Scope        QuestScope
	XPReward     int `json:"xp_reward"`
}

// AchievementUnlock describes one achievement unlocked by an event.
type AchievementUnlock struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	XPReward      int    `json:"xp_reward"`
}

// EventResult is the state delta produced by applying one event. The host
// renders from the delta; the engine never pushes.
type EventResult struct {
	BaseXP          int                 `json:"base_xp"`    // pre-multiplier XP of the triggering action
	XPGranted       int                 `json:"xp_granted"` // total adjusted XP applied, all sources
	LevelBefore     int                 `json:"level_before"`
	LevelAfter      int                 `json:"level_after"`
	LevelUp         *PendingLevelUp     `json:"level_up,omitempty"`
	BuffsActivated  []BuffChange        `json:"buffs_activated,omitempty"`
	QuestsCompleted []QuestCompletion   `json:"quests_completed,omitempty"`
	Achievements    []AchievementUnlock `json:"achievements,omitempty"`
	TrifectaGranted bool                `json:"trifecta_granted"`
}

// LeveledUp reports whether the event raised the player's level.
func (r *EventResult) LeveledUp() bool {
	return r.LevelAfter > r.LevelBefore
}
