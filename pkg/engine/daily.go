package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/common"
	"github.com/habitforge/progression-engine/pkg/domain"
)

// ensureFreshDay performs the lazy day-rollover check. It must run before
// any grant check that depends on day-scoped state: there is no background
// timer, so the first interaction after midnight is what resets the day.
//
// Only forward day transitions trigger a reset. When the device clock has
// jumped backward across a day boundary the engine keeps operating on the
// last reset day until the wall clock passes it again.
func (e *Engine) ensureFreshDay(now time.Time) {
	today := common.StartOfDay(now)
	last := common.ParseDayKey(e.daily.LastResetDay, now.Location())

	if !last.IsZero() && !today.After(last) {
		if today.Before(last) {
			e.logger.Warn("Clock moved backward across a day boundary; keeping current day",
				"today", common.DayKey(today),
				"last_reset_day", e.daily.LastResetDay,
			)
		}
		return
	}

	todayKey := common.DayKey(today)
	e.daily.Clear()
	e.clearBuffs()
	e.daily.LastResetDay = todayKey
	if _, ok := e.days[todayKey]; !ok {
		e.days[todayKey] = domain.NewDayCounters()
	}

	weekKey := common.DayKey(common.StartOfWeek(today, e.weekStart))
	if weekKey != e.weekKey {
		e.rolloverWeek(weekKey)
	}

	e.materializeDailyQuests(today, todayKey)

	e.logger.Info("Daily reset applied", "day", todayKey, "week", weekKey)
}

// rolloverWeek discards day counters from past weeks and materializes the
// new week's quest instances. Day keys sort chronologically, so pruning is
// a string comparison.
func (e *Engine) rolloverWeek(weekKey string) {
	for key := range e.days {
		if key < weekKey {
			delete(e.days, key)
		}
	}
	e.weekKey = weekKey
	e.materializeWeeklyQuests(weekKey)
}

// grantOncePerDay runs action and sets the flag only if the flag has not
// fired today, returning whether the grant occurred. The reset check runs
// first, so a call that straddles midnight lands on the right day.
func (e *Engine) grantOncePerDay(flagID string, now time.Time, action func()) bool {
	e.ensureFreshDay(now)
	if e.daily.IsSet(flagID) {
		return false
	}
	action()
	e.daily.Set(flagID)
	return true
}

// checkTrifecta grants the composite bonus once per day when the hydration,
// sleep, and gut grants have all fired. Eligibility is re-derived from the
// day flags rather than from buff presence: a buff expiring mid-day must not
// forfeit a bonus already earned that day.
func (e *Engine) checkTrifecta(now time.Time, res *domain.EventResult) {
	if e.daily.IsSet(domain.FlagTrifectaGranted) {
		return
	}
	if !e.daily.IsSet(domain.FlagWaterGoalGranted) ||
		!e.daily.IsSet(domain.FlagSleepGranted) ||
		!e.daily.IsSet(domain.FlagGutGranted) {
		return
	}

	e.daily.Set(domain.FlagTrifectaGranted)
	res.XPGranted += e.grantXP(TrifectaBonusXP, now)
	res.TrifectaGranted = true
	e.logger.Info("Trifecta bonus granted", "day", e.currentDayKey())
}
