package engine

import (
	"time"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// Level returns the player's current level.
func (e *Engine) Level() int {
	return e.progression.Level
}

// TotalXP returns the player's lifetime XP.
func (e *Engine) TotalXP() int {
	return e.progression.TotalXP
}

// ProgressToNextLevel returns the fraction [0,1] of the way to the next
// level. At the level cap it always reports 1.
func (e *Engine) ProgressToNextLevel() float64 {
	return e.progression.ProgressToNextLevel()
}

// PendingLevelUp returns a copy of the unacknowledged level-up, or nil.
func (e *Engine) PendingLevelUp() *domain.PendingLevelUp {
	if e.progression.PendingLevelUp == nil {
		return nil
	}
	up := *e.progression.PendingLevelUp
	return &up
}

// DailyQuestInstances returns copies of today's daily quest instances in
// materialization order, rerolled-out instances included. Asking for
// today's board is an interaction, so the lazy daily reset runs first.
func (e *Engine) DailyQuestInstances(now time.Time) []domain.QuestInstance {
	e.ensureFreshDay(now)
	return e.instancesFor(domain.QuestScopeDaily, e.currentDayKey())
}

// WeeklyQuestInstances returns copies of this week's quest instances.
func (e *Engine) WeeklyQuestInstances(now time.Time) []domain.QuestInstance {
	e.ensureFreshDay(now)
	return e.instancesFor(domain.QuestScopeWeekly, e.weekKey)
}

func (e *Engine) instancesFor(scope domain.QuestScope, windowStart string) []domain.QuestInstance {
	var out []domain.QuestInstance
	for _, inst := range e.quests {
		if inst.Scope == scope && inst.WindowStart == windowStart {
			out = append(out, *inst)
		}
	}
	return out
}

// AchievementView pairs an achievement definition with the player's
// progress toward it for display.
type AchievementView struct {
	Definition   *domain.AchievementDefinition
	CurrentValue int
	Fraction     float64
	UnlockedAt   *time.Time
}

// AchievementOverview returns every catalog achievement with the player's
// progress, in catalog order. Achievements never interacted with report
// zero progress.
func (e *Engine) AchievementOverview() []AchievementView {
	defs := e.catalog.Achievements()
	out := make([]AchievementView, 0, len(defs))
	for _, def := range defs {
		view := AchievementView{Definition: def}
		if prog, ok := e.achieve[def.ID]; ok {
			view.CurrentValue = prog.CurrentValue
			view.Fraction = prog.Fraction(def)
			view.UnlockedAt = prog.UnlockedAt
		}
		out = append(out, view)
	}
	return out
}

// TalentView pairs a talent node with the player's rank in it and whether
// one more rank could be bought right now.
type TalentView struct {
	Node        *domain.TalentNode
	Rank        int
	CanAllocate bool
}

// TalentOverview returns every catalog talent node with the player's rank,
// in catalog order.
func (e *Engine) TalentOverview() []TalentView {
	nodes := e.catalog.Talents()
	out := make([]TalentView, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, TalentView{
			Node:        node,
			Rank:        e.talents.Rank(node.ID),
			CanAllocate: e.CanAllocate(node.ID),
		})
	}
	return out
}

// FullWipe discards all player state: progression, buffs, daily flags,
// counters, quest history, achievement progress, talent allocation, and
// reminder firing state. Reminder settings revert to catalog defaults.
// The catalog itself is untouched.
func (e *Engine) FullWipe() {
	e.ResetProgression()
	e.buffs = nil
	e.daily = domain.NewDailyFlags()
	e.weekKey = ""
	e.days = make(map[string]*domain.DayCounters)
	e.season = domain.NewSeasonCounters()
	e.quests = nil
	e.achieve = make(map[string]*domain.AchievementProgress)
	e.talents = make(domain.TalentAllocation)
	e.remSettings = make(map[domain.ReminderType]domain.ReminderSettings)
	e.remState = make(map[domain.ReminderType]*domain.ReminderState)
	for _, rt := range []domain.ReminderType{domain.ReminderHydration, domain.ReminderPosture, domain.ReminderMovement} {
		if settings, ok := e.catalog.ReminderDefaults(rt); ok {
			e.remSettings[rt] = settings
		}
		e.remState[rt] = &domain.ReminderState{}
	}
	e.logger.Info("Player state wiped")
}
