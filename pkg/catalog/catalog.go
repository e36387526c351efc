package catalog

import "github.com/habitforge/progression-engine/pkg/domain"

// Cache provides O(1) in-memory lookups over the validated content catalog.
// It is built at engine construction time and read-only thereafter.
// All lookups are thread-safe.
type Cache interface {
	// QuestByID retrieves a quest definition by its unique ID.
	// Returns nil if the quest does not exist.
	QuestByID(questID string) *domain.QuestDefinition

	// DailyQuests retrieves all daily quest definitions in catalog order.
	DailyQuests() []*domain.QuestDefinition

	// WeeklyQuests retrieves all weekly quest definitions in catalog order.
	WeeklyQuests() []*domain.QuestDefinition

	// DailyQuestSlots is the number of daily quests materialized per day.
	DailyQuestSlots() int

	// AchievementByID retrieves an achievement definition by ID.
	// Returns nil if the achievement does not exist.
	AchievementByID(achievementID string) *domain.AchievementDefinition

	// Achievements retrieves all achievement definitions in catalog order.
	Achievements() []*domain.AchievementDefinition

	// TalentByID retrieves a talent node by ID.
	// Returns nil if the node does not exist.
	TalentByID(nodeID string) *domain.TalentNode

	// Talents retrieves all talent nodes in catalog order.
	Talents() []*domain.TalentNode

	// ReminderDefaults returns the catalog's settings for a reminder type.
	// The second return is false when the catalog does not configure it.
	ReminderDefaults(rt domain.ReminderType) (domain.ReminderSettings, bool)

	// Reload rebuilds the cache from the catalog file it was loaded from.
	// Returns an error if the file cannot be read or fails validation.
	Reload() error
}
