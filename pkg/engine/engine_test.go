package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/habitforge/progression-engine/pkg/catalog"
	"github.com/habitforge/progression-engine/pkg/config"
	"github.com/habitforge/progression-engine/pkg/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// at builds an instant on a named day. Tests run in UTC so day keys stay
// stable regardless of the host timezone.
func at(t *testing.T, day string, hour, min int) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	require.NoError(t, err)
	return parsed.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func newEngine(t *testing.T, cfg *config.Catalog, opts ...Option) *Engine {
	t.Helper()
	cache := catalog.NewInMemoryCache(cfg, "", discardLogger())
	return New(cache, discardLogger(), opts...)
}

// emptyCatalog has no quests, achievements, or talents, isolating XP and
// daily-grant behavior from evaluator side effects.
func emptyCatalog() *config.Catalog {
	return &config.Catalog{}
}

func gte(metric domain.Metric, target int) domain.Requirement {
	return domain.Requirement{Metric: metric, Operator: domain.OperatorGTE, TargetValue: target}
}

func dailyQuest(id string, req domain.Requirement, xp int) *domain.QuestDefinition {
	return &domain.QuestDefinition{
		ID:          id,
		Name:        id,
		Scope:       domain.QuestScopeDaily,
		Difficulty:  domain.DifficultyEasy,
		XPReward:    xp,
		Requirement: req,
	}
}

func weeklyQuest(id string, req domain.Requirement, xp int) *domain.QuestDefinition {
	def := dailyQuest(id, req, xp)
	def.Scope = domain.QuestScopeWeekly
	return def
}
