package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitforge/progression-engine/pkg/config"
	"github.com/habitforge/progression-engine/pkg/domain"
)

func countAchievement(id string, req domain.Requirement, xp int) *domain.AchievementDefinition {
	return &domain.AchievementDefinition{
		ID: id, Name: id, Title: "the " + id,
		Condition:   domain.ConditionCountThreshold,
		Requirement: req,
		XPReward:    xp,
	}
}

func TestCountAchievementUnlocks(t *testing.T) {
	cfg := &config.Catalog{
		Achievements: []*domain.AchievementDefinition{
			countAchievement("ach-sessions", gte(domain.MetricTimerSessions, 3), 100),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, now)
	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, now.Add(time.Hour))
	assert.Empty(t, res.Achievements)
	assert.Equal(t, 2, e.achieve["ach-sessions"].CurrentValue)

	res = e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, now.Add(2*time.Hour))
	require.Len(t, res.Achievements, 1)
	assert.Equal(t, "ach-sessions", res.Achievements[0].AchievementID)
	assert.Equal(t, "the ach-sessions", res.Achievements[0].Title)
	assert.Equal(t, 105, res.XPGranted, "5 base plus the 100 reward")
	assert.True(t, e.achieve["ach-sessions"].Unlocked())

	// Further qualifying activity never re-unlocks.
	res = e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, now.Add(3*time.Hour))
	assert.Empty(t, res.Achievements)
}

func TestStreakAchievement(t *testing.T) {
	cfg := &config.Catalog{
		Achievements: []*domain.AchievementDefinition{
			{
				ID: "ach-streak", Name: "ach-streak", Title: "Consistent",
				Condition:   domain.ConditionStreakThreshold,
				Requirement: gte(domain.MetricCheckinDays, 3),
				XPReward:    200,
			},
		},
	}
	e := newEngine(t, cfg)

	fullCheckin := func(day string) *domain.EventResult {
		e.RatingLogged(domain.RatingLogged{Kind: domain.RatingMood, Value: 3}, at(t, day, 8, 0))
		e.RatingLogged(domain.RatingLogged{Kind: domain.RatingGut, Value: 4}, at(t, day, 9, 0))
		return e.RatingLogged(domain.RatingLogged{Kind: domain.RatingSleep, Value: 4}, at(t, day, 10, 0))
	}

	fullCheckin("2026-03-03")
	require.Equal(t, 1, e.achieve["ach-streak"].CurrentValue)

	// Re-logging the same day never advances the streak.
	e.RatingLogged(domain.RatingLogged{Kind: domain.RatingSleep, Value: 2}, at(t, "2026-03-03", 22, 0))
	require.Equal(t, 1, e.achieve["ach-streak"].CurrentValue)

	fullCheckin("2026-03-04")
	require.Equal(t, 2, e.achieve["ach-streak"].CurrentValue)

	// A missed day resets the run.
	fullCheckin("2026-03-06")
	require.Equal(t, 1, e.achieve["ach-streak"].CurrentValue)

	fullCheckin("2026-03-07")
	res := fullCheckin("2026-03-08")
	require.Len(t, res.Achievements, 1)
	assert.Equal(t, "ach-streak", res.Achievements[0].AchievementID)
}

func TestCompositeAchievement(t *testing.T) {
	cfg := &config.Catalog{
		Achievements: []*domain.AchievementDefinition{
			{
				ID: "ach-balanced", Name: "ach-balanced", Title: "Balanced",
				Condition: domain.ConditionComposite,
				Parts: []domain.Requirement{
					gte(domain.MetricTimerSessions, 1),
					gte(domain.MetricHydrationPct, 1),
				},
				XPReward: 150,
			},
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, now)
	assert.Empty(t, res.Achievements)
	assert.Equal(t, 1, e.achieve["ach-balanced"].CurrentValue, "one of two parts met")

	res = e.HydrationLogged(domain.HydrationLogged{AmountML: 2000, GoalML: 2000}, now.Add(time.Hour))
	require.Len(t, res.Achievements, 1)
	assert.Equal(t, "ach-balanced", res.Achievements[0].AchievementID)
}

func TestAchievementOverview(t *testing.T) {
	cfg := &config.Catalog{
		Achievements: []*domain.AchievementDefinition{
			countAchievement("ach-sessions", gte(domain.MetricTimerSessions, 4), 100),
		},
	}
	e := newEngine(t, cfg)

	views := e.AchievementOverview()
	require.Len(t, views, 1)
	assert.Zero(t, views[0].Fraction, "untouched achievements report zero progress")

	e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, at(t, "2026-03-03", 9, 0))
	views = e.AchievementOverview()
	assert.Equal(t, 1, views[0].CurrentValue)
	assert.InDelta(t, 0.25, views[0].Fraction, 1e-9)
	assert.Nil(t, views[0].UnlockedAt)
}
