package config

import (
	"errors"
	"fmt"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// Validator validates content catalogs.
// It ensures all business rules are met before the engine sees the data.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate performs comprehensive validation of the catalog.
// It checks for:
//   - At least one daily quest, and enough to fill the daily slots
//   - Unique quest, achievement, and talent IDs
//   - Valid enums, operators, and positive thresholds/rewards
//   - Talent prerequisites that resolve and only point at strictly lower
//     tiers, which makes the graph acyclic by construction
//
// Returns an error describing the first validation failure encountered.
func (v *Validator) Validate(catalog *Catalog) error {
	if err := v.validateQuests(catalog); err != nil {
		return err
	}
	if err := v.validateAchievements(catalog); err != nil {
		return err
	}
	if err := v.validateTalents(catalog); err != nil {
		return err
	}
	return v.validateReminders(catalog)
}

func (v *Validator) validateQuests(catalog *Catalog) error {
	if len(catalog.Quests) == 0 {
		return errors.New("catalog must have at least one quest")
	}
	if catalog.DailyQuestSlots < 1 {
		return fmt.Errorf("daily_quest_slots must be positive (got %d)", catalog.DailyQuestSlots)
	}

	questIDs := make(map[string]bool)
	dailyCount := 0
	for _, quest := range catalog.Quests {
		if err := v.validateQuest(quest); err != nil {
			return fmt.Errorf("invalid quest '%s': %w", quest.ID, err)
		}
		if questIDs[quest.ID] {
			return fmt.Errorf("duplicate quest ID: %s", quest.ID)
		}
		questIDs[quest.ID] = true
		if quest.Scope == domain.QuestScopeDaily {
			dailyCount++
		}
	}

	if dailyCount < catalog.DailyQuestSlots {
		return fmt.Errorf("daily_quest_slots is %d but only %d daily quests are defined",
			catalog.DailyQuestSlots, dailyCount)
	}
	return nil
}

func (v *Validator) validateQuest(quest *domain.QuestDefinition) error {
	if quest.ID == "" {
		return errors.New("quest ID cannot be empty")
	}
	if quest.Name == "" {
		return errors.New("quest name cannot be empty")
	}
	if !quest.Scope.IsValid() {
		return fmt.Errorf("invalid scope '%s' (must be 'daily' or 'weekly')", quest.Scope)
	}
	if !quest.Difficulty.IsValid() {
		return fmt.Errorf("invalid difficulty %d (must be 1-5)", quest.Difficulty)
	}
	if quest.XPReward <= 0 {
		return fmt.Errorf("xp_reward must be positive (got %d)", quest.XPReward)
	}
	return v.validateRequirement(quest.Requirement)
}

func (v *Validator) validateAchievements(catalog *Catalog) error {
	achievementIDs := make(map[string]bool)
	for _, achievement := range catalog.Achievements {
		if err := v.validateAchievement(achievement); err != nil {
			return fmt.Errorf("invalid achievement '%s': %w", achievement.ID, err)
		}
		if achievementIDs[achievement.ID] {
			return fmt.Errorf("duplicate achievement ID: %s", achievement.ID)
		}
		achievementIDs[achievement.ID] = true
	}
	return nil
}

func (v *Validator) validateAchievement(achievement *domain.AchievementDefinition) error {
	if achievement.ID == "" {
		return errors.New("achievement ID cannot be empty")
	}
	if achievement.Name == "" {
		return errors.New("achievement name cannot be empty")
	}
	if !achievement.Condition.IsValid() {
		return fmt.Errorf("invalid condition '%s'", achievement.Condition)
	}
	if achievement.XPReward <= 0 {
		return fmt.Errorf("xp_reward must be positive (got %d)", achievement.XPReward)
	}

	switch achievement.Condition {
	case domain.ConditionComposite:
		if len(achievement.Parts) < 2 {
			return errors.New("composite condition needs at least two parts")
		}
		for i, part := range achievement.Parts {
			if err := v.validateRequirement(part); err != nil {
				return fmt.Errorf("part %d: %w", i, err)
			}
		}
	default:
		return v.validateRequirement(achievement.Requirement)
	}
	return nil
}

func (v *Validator) validateTalents(catalog *Catalog) error {
	talentsByID := make(map[string]*domain.TalentNode)
	for _, node := range catalog.Talents {
		if node.ID == "" {
			return errors.New("talent ID cannot be empty")
		}
		if node.Tier < domain.MinTalentTier || node.Tier > domain.MaxTalentTier {
			return fmt.Errorf("talent '%s' has invalid tier %d (must be %d-%d)",
				node.ID, node.Tier, domain.MinTalentTier, domain.MaxTalentTier)
		}
		if node.MaxRanks < 1 {
			return fmt.Errorf("talent '%s' must have at least one rank", node.ID)
		}
		if talentsByID[node.ID] != nil {
			return fmt.Errorf("duplicate talent ID: %s", node.ID)
		}
		talentsByID[node.ID] = node
	}

	// Second pass: prerequisites must resolve and point at strictly lower
	// tiers. That ordering rules out cycles without a runtime check.
	for _, node := range catalog.Talents {
		for _, prereqID := range node.Requires {
			prereq, exists := talentsByID[prereqID]
			if !exists {
				return fmt.Errorf("talent '%s' has invalid prerequisite: '%s' does not exist", node.ID, prereqID)
			}
			if prereq.Tier >= node.Tier {
				return fmt.Errorf("talent '%s' (tier %d) cannot require '%s' (tier %d)",
					node.ID, node.Tier, prereqID, prereq.Tier)
			}
		}
	}
	return nil
}

func (v *Validator) validateReminders(catalog *Catalog) error {
	for rt, settings := range catalog.Reminders {
		if !rt.IsValid() {
			return fmt.Errorf("unknown reminder type: %s", rt)
		}
		if settings.CadenceMinutes <= 0 {
			return fmt.Errorf("reminder '%s': cadence_minutes must be positive", rt)
		}
		if settings.StartHour < 0 || settings.StartHour > 23 {
			return fmt.Errorf("reminder '%s': start_hour must be 0-23", rt)
		}
		if settings.EndHour < 0 || settings.EndHour > 23 {
			return fmt.Errorf("reminder '%s': end_hour must be 0-23", rt)
		}
		if settings.MinSessionMinutes < 0 {
			return fmt.Errorf("reminder '%s': min_session_minutes cannot be negative", rt)
		}
	}
	return nil
}

func (v *Validator) validateRequirement(req domain.Requirement) error {
	if !req.Metric.IsValid() {
		return fmt.Errorf("invalid metric '%s'", req.Metric)
	}
	if req.Operator != domain.OperatorGTE {
		return fmt.Errorf("unsupported operator '%s' (only '>=')", req.Operator)
	}
	if req.TargetValue <= 0 {
		return fmt.Errorf("target_value must be positive (got %d)", req.TargetValue)
	}
	if req.MinMinutes < 0 {
		return fmt.Errorf("min_minutes cannot be negative (got %d)", req.MinMinutes)
	}
	if req.MinMinutes > 0 && req.Metric != domain.MetricTimerSessions {
		return fmt.Errorf("min_minutes only applies to timer_sessions (got metric '%s')", req.Metric)
	}
	return nil
}
