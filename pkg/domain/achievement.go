package domain

import "time"

// ConditionType selects how an achievement accumulates toward its threshold.
type ConditionType string

const (
	// ConditionCountThreshold accumulates a season-long counter and unlocks
	// when it reaches the requirement's target.
	ConditionCountThreshold ConditionType = "count_threshold"

	// ConditionStreakThreshold counts consecutive qualifying days and
	// unlocks when the streak reaches the requirement's target.
	ConditionStreakThreshold ConditionType = "streak_threshold"

	// ConditionComposite unlocks when every part's season total is met.
	ConditionComposite ConditionType = "composite"
)

// IsValid returns true if the condition type is known.
func (c ConditionType) IsValid() bool {
	switch c {
	case ConditionCountThreshold, ConditionStreakThreshold, ConditionComposite:
		return true
	default:
		return false
	}
}

// AchievementDefinition is a static catalog entry. Achievements accumulate
// across a whole season; they never reset with the day.
type AchievementDefinition struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Title       string        `json:"title" yaml:"title"` // cosmetic title unlocked with the achievement
	Condition   ConditionType `json:"condition" yaml:"condition"`
	Requirement Requirement   `json:"requirement,omitempty" yaml:"requirement,omitempty"` // count and streak conditions
	Parts       []Requirement `json:"parts,omitempty" yaml:"parts,omitempty"`             // composite condition
	XPReward    int           `json:"xp_reward" yaml:"xp_reward"`
}

// Threshold returns the value CurrentValue must reach to unlock.
func (a *AchievementDefinition) Threshold() int {
	if a.Condition == ConditionComposite {
		return len(a.Parts)
	}
	return a.Requirement.TargetValue
}

// AchievementProgress tracks a player's season-long progress toward one
// achievement. UnlockedAt is nil until the threshold is met, then fixed
// forever; later counter changes never revoke it.
type AchievementProgress struct {
	AchievementID string     `json:"achievement_id"`
	CurrentValue  int        `json:"current_value"`
	StreakLastDay string     `json:"streak_last_day,omitempty"` // day key of the last qualifying day
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
}

// Unlocked reports whether the achievement has been earned.
func (p *AchievementProgress) Unlocked() bool {
	return p.UnlockedAt != nil
}

// Fraction returns progress toward the threshold in [0,1].
// An unlocked achievement always reports 1.
func (p *AchievementProgress) Fraction(def *AchievementDefinition) float64 {
	if p.Unlocked() {
		return 1
	}
	threshold := def.Threshold()
	if threshold <= 0 {
		return 0
	}
	frac := float64(p.CurrentValue) / float64(threshold)
	if frac > 1 {
		return 1
	}
	return frac
}
