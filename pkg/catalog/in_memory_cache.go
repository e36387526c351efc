package catalog

import (
	"log/slog"
	"sync"

	"github.com/habitforge/progression-engine/pkg/config"
	"github.com/habitforge/progression-engine/pkg/domain"
)

// InMemoryCache indexes a validated catalog for O(1) lookups.
// All maps are built at startup; reads are thread-safe.
type InMemoryCache struct {
	questsByID       map[string]*domain.QuestDefinition
	dailyQuests      []*domain.QuestDefinition
	weeklyQuests     []*domain.QuestDefinition
	dailySlots       int
	achievementsByID map[string]*domain.AchievementDefinition
	achievements     []*domain.AchievementDefinition
	talentsByID      map[string]*domain.TalentNode
	talents          []*domain.TalentNode
	reminders        map[domain.ReminderType]domain.ReminderSettings
	catalogPath      string // empty when built from an in-memory catalog
	mu               sync.RWMutex
	logger           *slog.Logger
}

// NewInMemoryCache creates a cache from a validated catalog.
//
// Parameters:
//   - catalog: Validated catalog containing all content definitions
//   - catalogPath: Path the catalog was loaded from (used by Reload;
//     pass "" for embedded or test catalogs)
//   - logger: Structured logger for operational logging
func NewInMemoryCache(catalog *config.Catalog, catalogPath string, logger *slog.Logger) *InMemoryCache {
	c := &InMemoryCache{
		catalogPath: catalogPath,
		logger:      logger,
	}
	c.build(catalog)
	return c
}

func (c *InMemoryCache) build(catalog *config.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.questsByID = make(map[string]*domain.QuestDefinition, len(catalog.Quests))
	c.dailyQuests = nil
	c.weeklyQuests = nil
	c.dailySlots = catalog.DailyQuestSlots
	c.achievementsByID = make(map[string]*domain.AchievementDefinition, len(catalog.Achievements))
	c.achievements = catalog.Achievements
	c.talentsByID = make(map[string]*domain.TalentNode, len(catalog.Talents))
	c.talents = catalog.Talents
	c.reminders = catalog.Reminders

	for _, quest := range catalog.Quests {
		c.questsByID[quest.ID] = quest
		switch quest.Scope {
		case domain.QuestScopeDaily:
			c.dailyQuests = append(c.dailyQuests, quest)
		case domain.QuestScopeWeekly:
			c.weeklyQuests = append(c.weeklyQuests, quest)
		}
	}
	for _, achievement := range catalog.Achievements {
		c.achievementsByID[achievement.ID] = achievement
	}
	for _, node := range catalog.Talents {
		c.talentsByID[node.ID] = node
	}

	c.logger.Info("Catalog cache built",
		"daily_quests", len(c.dailyQuests),
		"weekly_quests", len(c.weeklyQuests),
		"achievements", len(c.achievements),
		"talents", len(c.talents),
	)
}

// QuestByID retrieves a quest definition by ID, or nil.
func (c *InMemoryCache) QuestByID(questID string) *domain.QuestDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.questsByID[questID]
}

// DailyQuests retrieves all daily quest definitions in catalog order.
func (c *InMemoryCache) DailyQuests() []*domain.QuestDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dailyQuests
}

// WeeklyQuests retrieves all weekly quest definitions in catalog order.
func (c *InMemoryCache) WeeklyQuests() []*domain.QuestDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.weeklyQuests
}

// DailyQuestSlots is the number of daily quests materialized per day.
func (c *InMemoryCache) DailyQuestSlots() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dailySlots
}

// AchievementByID retrieves an achievement definition by ID, or nil.
func (c *InMemoryCache) AchievementByID(achievementID string) *domain.AchievementDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.achievementsByID[achievementID]
}

// Achievements retrieves all achievement definitions in catalog order.
func (c *InMemoryCache) Achievements() []*domain.AchievementDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.achievements
}

// TalentByID retrieves a talent node by ID, or nil.
func (c *InMemoryCache) TalentByID(nodeID string) *domain.TalentNode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.talentsByID[nodeID]
}

// Talents retrieves all talent nodes in catalog order.
func (c *InMemoryCache) Talents() []*domain.TalentNode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.talents
}

// ReminderDefaults returns the catalog's settings for a reminder type.
func (c *InMemoryCache) ReminderDefaults(rt domain.ReminderType) (domain.ReminderSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	settings, ok := c.reminders[rt]
	return settings, ok
}

// Reload rebuilds the cache from its catalog file. A cache built from an
// embedded or in-memory catalog has no file and reloads to its current state.
func (c *InMemoryCache) Reload() error {
	if c.catalogPath == "" {
		return nil
	}
	loader := config.NewLoader(c.catalogPath, c.logger)
	catalog, err := loader.Load()
	if err != nil {
		return err
	}
	c.build(catalog)
	c.logger.Info("Catalog cache reloaded")
	return nil
}
