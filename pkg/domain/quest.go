package domain

import "time"

// QuestScope is the calendar window a quest instance lives in.
type QuestScope string

const (
	// QuestScopeDaily quests run for exactly one calendar day.
	QuestScopeDaily QuestScope = "daily"

	// QuestScopeWeekly quests run for one calendar week.
	QuestScopeWeekly QuestScope = "weekly"
)

// IsValid returns true if the scope is a valid quest scope.
func (s QuestScope) IsValid() bool {
	switch s {
	case QuestScopeDaily, QuestScopeWeekly:
		return true
	default:
		return false
	}
}

// Difficulty grades a quest from trivial to epic.
type Difficulty int

const (
	DifficultyTrivial Difficulty = 1
	DifficultyEasy    Difficulty = 2
	DifficultyMedium  Difficulty = 3
	DifficultyHard    Difficulty = 4
	DifficultyEpic    Difficulty = 5
)

// IsValid returns true if the difficulty is inside the graded range.
func (d Difficulty) IsValid() bool {
	return d >= DifficultyTrivial && d <= DifficultyEpic
}

// QuestDefinition is a static catalog entry. Definitions are immutable at
// runtime; all mutable state lives on QuestInstance.
type QuestDefinition struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Scope       QuestScope  `json:"scope" yaml:"scope"`
	Category    string      `json:"category" yaml:"category"`
	Difficulty  Difficulty  `json:"difficulty" yaml:"difficulty"`
	XPReward    int         `json:"xp_reward" yaml:"xp_reward"`
	OneShot     bool        `json:"one_shot" yaml:"one_shot"` // once completed, never offered again this season
	Requirement Requirement `json:"requirement" yaml:"requirement"`
}

// QuestStatus is the state of a quest instance within its window.
// Transitions are monotonic: pending -> completed or pending -> rerolled,
// never back.
type QuestStatus string

const (
	// QuestStatusPending means the requirement has not been met yet.
	QuestStatusPending QuestStatus = "pending"

	// QuestStatusCompleted means the requirement was met and the reward
	// granted. Completed instances never revert.
	QuestStatusCompleted QuestStatus = "completed"

	// QuestStatusRerolled means the player swapped this instance out.
	// Rerolled instances are dead for the rest of their window.
	QuestStatusRerolled QuestStatus = "rerolled"
)

// IsValid returns true if the status is a valid quest status.
func (s QuestStatus) IsValid() bool {
	switch s {
	case QuestStatusPending, QuestStatusCompleted, QuestStatusRerolled:
		return true
	default:
		return false
	}
}

// QuestInstance is one materialized quest for one window. Identity is
// deterministic (definition + window start) so re-materialization after a
// snapshot restore cannot duplicate instances.
type QuestInstance struct {
	DefinitionID string      `json:"definition_id"`
	Scope        QuestScope  `json:"scope" yaml:"scope"`
	WindowStart  string      `json:"window_start"` // day key of the window's first day
	Status       QuestStatus `json:"status"`
	Progress     int         `json:"progress"` // last measured metric value
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// Key returns the instance's unique identity within a season.
func (q *QuestInstance) Key() string {
	return q.DefinitionID + "@" + q.WindowStart
}

// IsCompleted returns true once the instance has been completed.
func (q *QuestInstance) IsCompleted() bool {
	return q.Status == QuestStatusCompleted
}

// Open reports whether the instance can still complete.
func (q *QuestInstance) Open() bool {
	return q.Status == QuestStatusPending
}
