package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// TimerCompleted applies a finished timer session: counters accumulate,
// base XP is granted per focus minute, long sessions earn the Focused buff,
// and quest/achievement completion is re-derived.
func (e *Engine) TimerCompleted(p domain.TimerCompleted, now time.Time) *domain.EventResult {
	res := e.beginResult()
	e.ensureFreshDay(now)

	if p.Minutes <= 0 {
		e.finishResult(res)
		return res
	}

	c := e.currentCounters()
	c.FocusMinutes[p.Category] += p.Minutes
	c.Sessions = append(c.Sessions, domain.TimerSession{
		Category: p.Category,
		Minutes:  p.Minutes,
		EndedAt:  now,
	})
	e.season.TimerSessions++
	e.season.FocusMinutes[p.Category] += p.Minutes

	if p.Minutes >= focusedBuffMinMinutes {
		res.BuffsActivated = append(res.BuffsActivated,
			e.activateBuff(domain.BuffFocused, "Focused", focusedBuffDuration, now))
	}

	res.BaseXP = p.Minutes * XPPerFocusMinute
	res.XPGranted += e.grantXP(res.BaseXP, now)

	e.evaluate(now, res)
	e.finishResult(res)
	return res
}

// HydrationLogged applies a hydration entry. Reaching the daily goal fires
// the one-shot hydration grant: bonus XP plus the Hydrated buff, at most
// once per day no matter how often the goal is re-crossed.
func (e *Engine) HydrationLogged(p domain.HydrationLogged, now time.Time) *domain.EventResult {
	res := e.beginResult()
	e.ensureFreshDay(now)

	c := e.currentCounters()
	if p.AmountML > 0 {
		c.HydrationML += p.AmountML
	}
	if p.GoalML > 0 {
		c.HydrationGoalML = p.GoalML
	}

	if c.HydrationPct() >= 100 {
		granted := e.grantOncePerDay(domain.FlagWaterGoalGranted, now, func() {
			res.BaseXP = HydrationGoalXP
			res.XPGranted += e.grantXP(HydrationGoalXP, now)
			res.BuffsActivated = append(res.BuffsActivated,
				e.activateBuff(domain.BuffHydrated, "Hydrated", hydratedBuffDuration, now))
			e.season.HydrationGoalDays++
		})
		if granted {
			e.checkTrifecta(now, res)
		}
	}

	e.evaluate(now, res)
	e.finishResult(res)
	return res
}

// RatingLogged applies a mood, gut, or sleep check-in. Each kind carries a
// one-shot daily XP grant; gut and sleep also grant their buffs. Completing
// all three check-ins counts a season check-in day and arms the trifecta.
func (e *Engine) RatingLogged(p domain.RatingLogged, now time.Time) *domain.EventResult {
	res := e.beginResult()
	e.ensureFreshDay(now)

	if !p.Kind.IsValid() {
		e.finishResult(res)
		return res
	}

	c := e.currentCounters()
	hadFullCheckin := c.AllCheckinsLogged()

	switch p.Kind {
	case domain.RatingMood:
		c.MoodLogged = true
		e.grantOncePerDay(domain.FlagMoodGranted, now, func() {
			res.BaseXP = MoodLogXP
			res.XPGranted += e.grantXP(MoodLogXP, now)
		})
	case domain.RatingGut:
		c.GutLogged = true
		granted := e.grantOncePerDay(domain.FlagGutGranted, now, func() {
			res.BaseXP = GutLogXP
			res.XPGranted += e.grantXP(GutLogXP, now)
			res.BuffsActivated = append(res.BuffsActivated,
				e.activateBuff(domain.BuffGutHealth, "Gut Health", gutHealthBuffDuration, now))
		})
		if granted {
			e.checkTrifecta(now, res)
		}
	case domain.RatingSleep:
		c.SleepLogged = true
		granted := e.grantOncePerDay(domain.FlagSleepGranted, now, func() {
			res.BaseXP = SleepLogXP
			res.XPGranted += e.grantXP(SleepLogXP, now)
			res.BuffsActivated = append(res.BuffsActivated,
				e.activateBuff(domain.BuffRested, "Rested", restedBuffDuration, now))
		})
		if granted {
			e.checkTrifecta(now, res)
		}
	}

	if !hadFullCheckin && c.AllCheckinsLogged() {
		e.season.CheckinDays++
	}

	e.evaluate(now, res)
	e.finishResult(res)
	return res
}

// ScreenViewed applies a screen-view event. No XP is granted directly, but
// screen-view counters can complete quests and achievements.
func (e *Engine) ScreenViewed(p domain.ScreenViewed, now time.Time) *domain.EventResult {
	res := e.beginResult()
	e.ensureFreshDay(now)

	if p.Screen != "" {
		e.currentCounters().ScreenViews[p.Screen]++
		e.season.ScreenViews[p.Screen]++
	}

	e.evaluate(now, res)
	e.finishResult(res)
	return res
}
