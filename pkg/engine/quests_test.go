package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitforge/progression-engine/pkg/config"
	"github.com/habitforge/progression-engine/pkg/domain"
)

func TestDailyQuestMaterialization(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 2,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-focus", gte(domain.MetricFocusMinutes, 30), 25),
			dailyQuest("q-water", gte(domain.MetricHydrationPct, 100), 15),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	board := e.DailyQuestInstances(now)
	require.Len(t, board, 2)
	for _, inst := range board {
		assert.Equal(t, domain.QuestStatusPending, inst.Status)
		assert.Equal(t, "2026-03-03", inst.WindowStart)
	}

	// Re-asking, and any further event, must not duplicate the board.
	e.ScreenViewed(domain.ScreenViewed{Screen: "home"}, now.Add(time.Hour))
	assert.Len(t, e.DailyQuestInstances(now.Add(2*time.Hour)), 2)
}

func TestDailyQuestRotation(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 1,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-a", gte(domain.MetricFocusMinutes, 30), 10),
			dailyQuest("q-b", gte(domain.MetricHydrationPct, 100), 10),
			dailyQuest("q-c", gte(domain.MetricTimerSessions, 1), 10),
		},
	}
	e := newEngine(t, cfg)

	day1 := e.DailyQuestInstances(at(t, "2026-03-03", 9, 0))
	day2 := e.DailyQuestInstances(at(t, "2026-03-04", 9, 0))
	require.Len(t, day1, 1)
	require.Len(t, day2, 1)
	assert.NotEqual(t, day1[0].DefinitionID, day2[0].DefinitionID, "offering rotates day to day")
}

func TestQuestCompletionIsMonotonicAndPaysOnce(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 1,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-focus", gte(domain.MetricFocusMinutes, 30), 25),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 30}, now)
	require.Len(t, res.QuestsCompleted, 1)
	assert.Equal(t, "q-focus", res.QuestsCompleted[0].DefinitionID)
	assert.Equal(t, 55, res.XPGranted, "30 base plus the 25 reward")
	assert.Equal(t, 1, e.season.QuestsCompleted)

	res = e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 10}, now.Add(time.Hour))
	assert.Empty(t, res.QuestsCompleted, "a completed instance never completes again")
	assert.Equal(t, 1, e.season.QuestsCompleted)

	board := e.DailyQuestInstances(now.Add(time.Hour))
	require.Len(t, board, 1)
	assert.Equal(t, domain.QuestStatusCompleted, board[0].Status)
	require.NotNil(t, board[0].CompletedAt)
	assert.Equal(t, now, *board[0].CompletedAt)
}

func TestWeeklyQuestAggregatesAcrossDays(t *testing.T) {
	cfg := &config.Catalog{
		Quests: []*domain.QuestDefinition{
			weeklyQuest("w-focus", gte(domain.MetricFocusMinutes, 60), 40),
		},
	}
	e := newEngine(t, cfg)

	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 35}, at(t, "2026-03-03", 9, 0))
	assert.Empty(t, res.QuestsCompleted)

	res = e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 25}, at(t, "2026-03-04", 9, 0))
	require.Len(t, res.QuestsCompleted, 1)
	assert.Equal(t, "w-focus", res.QuestsCompleted[0].DefinitionID)
	assert.Equal(t, domain.QuestScopeWeekly, res.QuestsCompleted[0].Scope)
}

func TestWeeklyWindowDropsPastWeek(t *testing.T) {
	cfg := &config.Catalog{
		Quests: []*domain.QuestDefinition{
			weeklyQuest("w-focus", gte(domain.MetricFocusMinutes, 60), 40),
		},
	}
	e := newEngine(t, cfg)

	// 35 minutes on Sunday, 30 more the following Monday. The Monday
	// rollover starts a fresh window, so the quest must not complete.
	e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 35}, at(t, "2026-03-08", 9, 0))
	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 30}, at(t, "2026-03-09", 9, 0))
	assert.Empty(t, res.QuestsCompleted)

	week := e.WeeklyQuestInstances(at(t, "2026-03-09", 10, 0))
	require.Len(t, week, 1)
	assert.Equal(t, "2026-03-09", week[0].WindowStart)
	assert.Equal(t, 30, week[0].Progress)
}

func TestQuestCompletionCascades(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 1,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-focus", gte(domain.MetricFocusMinutes, 10), 5),
			weeklyQuest("w-any", gte(domain.MetricQuestsCompleted, 1), 7),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	// The daily completion feeds the quests-completed counter, which the
	// weekly quest observes within the same event.
	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 10}, now)
	require.Len(t, res.QuestsCompleted, 2)
	assert.Equal(t, 22, res.XPGranted)
}

func TestOneShotQuestNotRematerialized(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 2,
		Quests: []*domain.QuestDefinition{
			{
				ID: "q-once", Name: "q-once", Scope: domain.QuestScopeDaily,
				Difficulty: domain.DifficultyEasy, XPReward: 10, OneShot: true,
				Requirement: gte(domain.MetricFocusMinutes, 5),
			},
			dailyQuest("q-water", gte(domain.MetricHydrationPct, 100), 5),
		},
	}
	e := newEngine(t, cfg)

	res := e.TimerCompleted(domain.TimerCompleted{Category: "work", Minutes: 5}, at(t, "2026-03-03", 9, 0))
	require.Len(t, res.QuestsCompleted, 1)

	board := e.DailyQuestInstances(at(t, "2026-03-04", 9, 0))
	require.Len(t, board, 1, "completed one-shot leaves the pool")
	assert.Equal(t, "q-water", board[0].DefinitionID)
}

func TestRerollDailyQuest(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 2,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-a", gte(domain.MetricFocusMinutes, 30), 10),
			dailyQuest("q-b", gte(domain.MetricHydrationPct, 100), 10),
			dailyQuest("q-c", gte(domain.MetricTimerSessions, 1), 10),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	board := e.DailyQuestInstances(now)
	require.Len(t, board, 2)
	onBoard := map[string]bool{board[0].DefinitionID: true, board[1].DefinitionID: true}

	ok, replacement := e.RerollDailyQuest(board[0].DefinitionID, now)
	require.True(t, ok)
	require.NotNil(t, replacement)
	assert.False(t, onBoard[replacement.ID], "replacement comes from the remaining pool")

	after := e.DailyQuestInstances(now)
	require.Len(t, after, 3, "rerolled-out instance stays as history")
	statuses := map[domain.QuestStatus]int{}
	for _, inst := range after {
		statuses[inst.Status]++
	}
	assert.Equal(t, 1, statuses[domain.QuestStatusRerolled])
	assert.Equal(t, 2, statuses[domain.QuestStatusPending])

	ok, _ = e.RerollDailyQuest(board[1].DefinitionID, now)
	assert.False(t, ok, "one reroll per day")

	ok, _ = e.RerollDailyQuest(board[1].DefinitionID, at(t, "2026-03-04", 9, 0))
	assert.False(t, ok, "yesterday's instance is immutable history")
}

func TestRerollRejectionsDoNotConsumeTheReroll(t *testing.T) {
	cfg := &config.Catalog{
		DailyQuestSlots: 2,
		Quests: []*domain.QuestDefinition{
			dailyQuest("q-a", gte(domain.MetricFocusMinutes, 30), 10),
			dailyQuest("q-b", gte(domain.MetricHydrationPct, 100), 10),
			dailyQuest("q-c", gte(domain.MetricTimerSessions, 1), 10),
		},
	}
	e := newEngine(t, cfg)
	now := at(t, "2026-03-03", 9, 0)

	board := e.DailyQuestInstances(now)
	require.Len(t, board, 2)

	ok, _ := e.RerollDailyQuest("q-unknown", now)
	require.False(t, ok)

	ok, _ = e.RerollDailyQuest(board[0].DefinitionID, now)
	assert.True(t, ok, "a rejected reroll leaves the daily reroll available")
}
