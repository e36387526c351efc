package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/common"
	"github.com/habitforge/progression-engine/pkg/domain"
)

// evaluateAchievements updates season-long progress and unlocks any
// achievement whose threshold is met. Unlocks are monotonic: once
// UnlockedAt is set it is never cleared, whatever the counters do later.
func (e *Engine) evaluateAchievements(now time.Time, res *domain.EventResult) {
	for _, def := range e.catalog.Achievements() {
		prog := e.achievementProgress(def.ID)
		if prog.Unlocked() {
			continue
		}

		switch def.Condition {
		case domain.ConditionCountThreshold:
			prog.CurrentValue = e.seasonMeasure(def.Requirement)
		case domain.ConditionComposite:
			met := 0
			for _, part := range def.Parts {
				if part.Met(e.seasonMeasure(part)) {
					met++
				}
			}
			prog.CurrentValue = met
		case domain.ConditionStreakThreshold:
			e.updateStreak(def, prog)
		}

		if prog.CurrentValue < def.Threshold() {
			continue
		}

		unlockedAt := now
		prog.UnlockedAt = &unlockedAt
		res.Achievements = append(res.Achievements, domain.AchievementUnlock{
			AchievementID: def.ID,
			Title:         def.Title,
			XPReward:      def.XPReward,
		})
		res.XPGranted += e.grantXP(def.XPReward, now)

		e.logger.Info("Achievement unlocked",
			"achievement", def.ID,
			"title", def.Title,
			"xp", def.XPReward,
		)
	}
}

// achievementProgress returns the progress record for an achievement,
// creating it lazily.
func (e *Engine) achievementProgress(achievementID string) *domain.AchievementProgress {
	prog, ok := e.achieve[achievementID]
	if !ok {
		prog = &domain.AchievementProgress{AchievementID: achievementID}
		e.achieve[achievementID] = prog
	}
	return prog
}

// updateStreak counts consecutive qualifying days. A day qualifies when
// today's counters satisfy the requirement's metric (see dayQualifies);
// each day is counted at most once. A gap resets the run to 1 on the next
// qualifying day.
func (e *Engine) updateStreak(def *domain.AchievementDefinition, prog *domain.AchievementProgress) {
	if !dayQualifies(def.Requirement, e.currentCounters()) {
		return
	}
	todayKey := e.currentDayKey()
	if prog.StreakLastDay == todayKey {
		return
	}

	yesterday := ""
	if today := common.ParseDayKey(todayKey, time.UTC); !today.IsZero() {
		yesterday = common.DayKey(today.AddDate(0, 0, -1))
	}
	if prog.StreakLastDay == yesterday {
		prog.CurrentValue++
	} else {
		prog.CurrentValue = 1
	}
	prog.StreakLastDay = todayKey
}

// dayQualifies decides whether a day counts toward a streak. Checkin and
// hydration streaks have fixed day conditions (full check-in, goal reached);
// activity streaks qualify on any matching activity.
func dayQualifies(req domain.Requirement, c *domain.DayCounters) bool {
	switch req.Metric {
	case domain.MetricCheckinDays:
		return c.AllCheckinsLogged()
	case domain.MetricHydrationPct:
		return c.HydrationPct() >= 100
	case domain.MetricTimerSessions:
		return c.SessionCount(req.MinMinutes, req.Category) >= 1
	case domain.MetricFocusMinutes:
		return c.TotalFocusMinutes(req.Category) >= 1
	case domain.MetricQuestsCompleted:
		return c.QuestsCompleted >= 1
	case domain.MetricScreenViews:
		return c.ScreenViews[req.Category] >= 1
	default:
		return false
	}
}

// seasonMeasure reads a requirement's metric from the season counters.
// Timer-session requirements count every completed session at season scope;
// hydration reads the number of days the goal was reached.
func (e *Engine) seasonMeasure(req domain.Requirement) int {
	switch req.Metric {
	case domain.MetricTimerSessions:
		return e.season.TimerSessions
	case domain.MetricFocusMinutes:
		return e.season.TotalFocusMinutes(req.Category)
	case domain.MetricQuestsCompleted:
		return e.season.QuestsCompleted
	case domain.MetricCheckinDays:
		return e.season.CheckinDays
	case domain.MetricHydrationPct:
		return e.season.HydrationGoalDays
	case domain.MetricScreenViews:
		return e.season.ScreenViews[req.Category]
	default:
		return 0
	}
}
