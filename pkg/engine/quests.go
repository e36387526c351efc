package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// materializeDailyQuests fills the day's quest slots from the catalog.
// Selection rotates with the day ordinal so the offering varies day to day
// while staying deterministic: re-running the rollover for the same day
// (e.g. after a snapshot restore) can never duplicate or reshuffle
// instances, because instances already materialized for the window are
// kept as-is.
func (e *Engine) materializeDailyQuests(today time.Time, todayKey string) {
	if e.hasInstancesFor(domain.QuestScopeDaily, todayKey) {
		return
	}

	pool := e.eligibleDefinitions(e.catalog.DailyQuests())
	if len(pool) == 0 {
		return
	}

	slots := e.catalog.DailyQuestSlots()
	if slots > len(pool) {
		slots = len(pool)
	}

	dayOrdinal := int(today.Unix() / 86400)
	for i := 0; i < slots; i++ {
		def := pool[(dayOrdinal+i)%len(pool)]
		e.quests = append(e.quests, &domain.QuestInstance{
			DefinitionID: def.ID,
			Scope:        domain.QuestScopeDaily,
			WindowStart:  todayKey,
			Status:       domain.QuestStatusPending,
		})
	}
}

// materializeWeeklyQuests creates the week's instances from the full weekly
// catalog. Weekly quests are not slot-limited.
func (e *Engine) materializeWeeklyQuests(weekKey string) {
	if e.hasInstancesFor(domain.QuestScopeWeekly, weekKey) {
		return
	}
	for _, def := range e.eligibleDefinitions(e.catalog.WeeklyQuests()) {
		e.quests = append(e.quests, &domain.QuestInstance{
			DefinitionID: def.ID,
			Scope:        domain.QuestScopeWeekly,
			WindowStart:  weekKey,
			Status:       domain.QuestStatusPending,
		})
	}
}

func (e *Engine) hasInstancesFor(scope domain.QuestScope, windowStart string) bool {
	for _, inst := range e.quests {
		if inst.Scope == scope && inst.WindowStart == windowStart {
			return true
		}
	}
	return false
}

// eligibleDefinitions filters out one-shot quests that have already been
// completed this season.
func (e *Engine) eligibleDefinitions(defs []*domain.QuestDefinition) []*domain.QuestDefinition {
	eligible := make([]*domain.QuestDefinition, 0, len(defs))
	for _, def := range defs {
		if def.OneShot && e.definitionCompleted(def.ID) {
			continue
		}
		eligible = append(eligible, def)
	}
	return eligible
}

func (e *Engine) definitionCompleted(defID string) bool {
	for _, inst := range e.quests {
		if inst.DefinitionID == defID && inst.IsCompleted() {
			return true
		}
	}
	return false
}

// instanceCurrent reports whether the instance's window is the engine's
// current day or week. Instances for past windows are immutable history.
func (e *Engine) instanceCurrent(inst *domain.QuestInstance) bool {
	switch inst.Scope {
	case domain.QuestScopeDaily:
		return inst.WindowStart == e.currentDayKey()
	case domain.QuestScopeWeekly:
		return inst.WindowStart == e.weekKey
	default:
		return false
	}
}

// evaluate re-derives quest completion from the updated counters and then
// updates achievements. Quest evaluation loops to a fixpoint so that
// quests-completed metrics observe completions produced in the same event.
// Completion is monotonic: instances never leave completed status.
func (e *Engine) evaluate(now time.Time, res *domain.EventResult) {
	for e.evaluateQuests(now, res) > 0 {
	}
	e.evaluateAchievements(now, res)
}

func (e *Engine) evaluateQuests(now time.Time, res *domain.EventResult) int {
	completed := 0
	for _, inst := range e.quests {
		if !inst.Open() || !e.instanceCurrent(inst) {
			continue
		}
		def := e.catalog.QuestByID(inst.DefinitionID)
		if def == nil {
			// Definition removed by a catalog update; the instance can
			// no longer complete but stays as history.
			continue
		}

		value := e.measure(def.Requirement, inst.Scope)
		inst.Progress = value
		if !def.Requirement.Met(value) {
			continue
		}

		completedAt := now
		inst.Status = domain.QuestStatusCompleted
		inst.CompletedAt = &completedAt
		e.currentCounters().QuestsCompleted++
		e.season.QuestsCompleted++
		res.QuestsCompleted = append(res.QuestsCompleted, domain.QuestCompletion{
			DefinitionID: def.ID,
			Scope:        def.Scope,
			XPReward:     def.XPReward,
		})
		res.XPGranted += e.grantXP(def.XPReward, now)
		completed++

		e.logger.Info("Quest completed", "quest", def.ID, "scope", def.Scope, "xp", def.XPReward)
	}
	return completed
}

// measure computes a requirement's current value over the instance's window.
func (e *Engine) measure(req domain.Requirement, scope domain.QuestScope) int {
	if scope == domain.QuestScopeDaily {
		return measureDay(req, e.currentCounters())
	}

	// Weekly windows aggregate the per-day counters still retained for the
	// current week. Hydration percent does not sum meaningfully across
	// days, so weekly hydration requirements see the week's best day.
	total, best := 0, 0
	for key, c := range e.days {
		if key < e.weekKey {
			continue
		}
		v := measureDay(req, c)
		total += v
		if v > best {
			best = v
		}
	}
	if req.Metric == domain.MetricHydrationPct {
		return best
	}
	return total
}

func measureDay(req domain.Requirement, c *domain.DayCounters) int {
	switch req.Metric {
	case domain.MetricFocusMinutes:
		return c.TotalFocusMinutes(req.Category)
	case domain.MetricTimerSessions:
		return c.SessionCount(req.MinMinutes, req.Category)
	case domain.MetricHydrationPct:
		return c.HydrationPct()
	case domain.MetricCheckinDays:
		if c.AllCheckinsLogged() {
			return 1
		}
		return 0
	case domain.MetricQuestsCompleted:
		return c.QuestsCompleted
	case domain.MetricScreenViews:
		return c.ScreenViews[req.Category]
	default:
		return 0
	}
}

// RerollDailyQuest replaces one still-pending daily quest instance with a
// definition from the remaining catalog pool. Allowed at most once per
// calendar day; the rerolled-out instance is discarded permanently for the
// day. Returns the replacement definition, or (false, nil) as a guarded
// no-op when the reroll is not available.
func (e *Engine) RerollDailyQuest(definitionID string, now time.Time) (bool, *domain.QuestDefinition) {
	e.ensureFreshDay(now)

	if e.daily.IsSet(domain.FlagQuestRerollUsed) {
		return false, nil
	}

	var target *domain.QuestInstance
	usedToday := make(map[string]bool)
	todayKey := e.currentDayKey()
	for _, inst := range e.quests {
		if inst.Scope != domain.QuestScopeDaily || inst.WindowStart != todayKey {
			continue
		}
		usedToday[inst.DefinitionID] = true
		if inst.DefinitionID == definitionID && inst.Open() {
			target = inst
		}
	}
	if target == nil {
		return false, nil
	}

	var replacement *domain.QuestDefinition
	for _, def := range e.eligibleDefinitions(e.catalog.DailyQuests()) {
		if !usedToday[def.ID] {
			replacement = def
			break
		}
	}
	if replacement == nil {
		return false, nil // pool exhausted
	}

	target.Status = domain.QuestStatusRerolled
	e.quests = append(e.quests, &domain.QuestInstance{
		DefinitionID: replacement.ID,
		Scope:        domain.QuestScopeDaily,
		WindowStart:  todayKey,
		Status:       domain.QuestStatusPending,
	})
	e.daily.Set(domain.FlagQuestRerollUsed)

	e.logger.Info("Daily quest rerolled", "out", definitionID, "in", replacement.ID)
	return true, replacement
}
