package config

import "github.com/habitforge/progression-engine/pkg/domain"

// DefaultDailyQuestSlots is the number of daily quests offered when the
// catalog does not say otherwise.
const DefaultDailyQuestSlots = 3

// Catalog is the top-level content definition loaded from a catalog file.
// It is pure data: quest, achievement, and talent definitions plus reminder
// defaults. Rule logic never lives here, so content changes never touch
// the engine.
type Catalog struct {
	DailyQuestSlots int                                             `json:"daily_quest_slots" yaml:"daily_quest_slots"`
	Quests          []*domain.QuestDefinition                       `json:"quests" yaml:"quests"`
	Achievements    []*domain.AchievementDefinition                 `json:"achievements" yaml:"achievements"`
	Talents         []*domain.TalentNode                            `json:"talents" yaml:"talents"`
	Reminders       map[domain.ReminderType]domain.ReminderSettings `json:"reminders" yaml:"reminders"`
}
