// Package engine is the player-progression rules engine. It converts
// real-world action events (timer finished, hydration logged, ratings,
// screen views) into persistent game state: XP and levels, time-limited
// buffs, one-shot daily grants, quest and achievement completion, talent
// allocation, and reminder scheduling state.
//
// The engine is synchronous, in-memory logic driven by an explicit "now"
// on every call. It owns no timers and performs no I/O; persistence happens
// through the snapshot API after each mutation. A single logical owner per
// player profile is assumed: the host must not invoke methods for the same
// engine from two goroutines concurrently.
package engine

import (
	"log/slog"
	"time"

	"github.com/habitforge/progression-engine/pkg/catalog"
	"github.com/habitforge/progression-engine/pkg/domain"
)

// Per-action base XP and bonus amounts.
const (
	// XPPerFocusMinute is the base XP for each completed focus minute.
	XPPerFocusMinute = 1

	// HydrationGoalXP is the one-shot daily award for reaching the
	// hydration goal.
	HydrationGoalXP = 50

	// SleepLogXP is the one-shot daily award for logging sleep.
	SleepLogXP = 30

	// GutLogXP is the one-shot daily award for logging gut health.
	GutLogXP = 20

	// MoodLogXP is the one-shot daily award for logging mood.
	MoodLogXP = 10

	// TrifectaBonusXP is the composite bonus for earning the hydration,
	// sleep, and gut grants all in one day.
	TrifectaBonusXP = 150
)

// Buff durations.
const (
	hydratedBuffDuration  = 4 * time.Hour
	restedBuffDuration    = 16 * time.Hour
	gutHealthBuffDuration = 8 * time.Hour
	focusedBuffDuration   = 2 * time.Hour

	// focusedBuffMinMinutes is the session length that earns the
	// Focused buff.
	focusedBuffMinMinutes = 40
)

// Engine holds one player profile's progression state. Construct it with
// New, feed it events, and persist it through the snapshot API. There is
// no ambient global instance; the host owns the handle.
type Engine struct {
	catalog   catalog.Cache
	logger    *slog.Logger
	weekStart time.Weekday

	progression domain.ProgressionState
	buffs       []domain.Buff
	daily       domain.DailyFlags
	weekKey     string // day key of the current week's first day
	days        map[string]*domain.DayCounters
	season      domain.SeasonCounters
	quests      []*domain.QuestInstance
	achieve     map[string]*domain.AchievementProgress
	talents     domain.TalentAllocation
	remSettings map[domain.ReminderType]domain.ReminderSettings
	remState    map[domain.ReminderType]*domain.ReminderState
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithWeekStart overrides the weekday a calendar week begins on.
// The default is Monday.
func WithWeekStart(day time.Weekday) Option {
	return func(e *Engine) { e.weekStart = day }
}

// New creates an engine with fresh state over the given content catalog.
// Reminder settings start from the catalog's defaults.
func New(cache catalog.Cache, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog:     cache,
		logger:      logger,
		weekStart:   time.Monday,
		progression: domain.NewProgressionState(),
		daily:       domain.NewDailyFlags(),
		days:        make(map[string]*domain.DayCounters),
		season:      domain.NewSeasonCounters(),
		achieve:     make(map[string]*domain.AchievementProgress),
		talents:     make(domain.TalentAllocation),
		remSettings: make(map[domain.ReminderType]domain.ReminderSettings),
		remState:    make(map[domain.ReminderType]*domain.ReminderState),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, rt := range []domain.ReminderType{domain.ReminderHydration, domain.ReminderPosture, domain.ReminderMovement} {
		if settings, ok := cache.ReminderDefaults(rt); ok {
			e.remSettings[rt] = settings
		}
		e.remState[rt] = &domain.ReminderState{}
	}
	return e
}

// currentDayKey is the day the engine currently considers "today".
// During a backward clock jump this stays at the last reset day.
func (e *Engine) currentDayKey() string {
	return e.daily.LastResetDay
}

// currentCounters returns the mutable counters for the engine's current day.
func (e *Engine) currentCounters() *domain.DayCounters {
	key := e.currentDayKey()
	c, ok := e.days[key]
	if !ok {
		c = domain.NewDayCounters()
		e.days[key] = c
	}
	return c
}

func (e *Engine) beginResult() *domain.EventResult {
	return &domain.EventResult{
		LevelBefore: e.progression.Level,
		LevelAfter:  e.progression.Level,
	}
}

func (e *Engine) finishResult(res *domain.EventResult) {
	res.LevelAfter = e.progression.Level
	if res.LevelAfter > res.LevelBefore && e.progression.PendingLevelUp != nil {
		up := *e.progression.PendingLevelUp
		res.LevelUp = &up
	}
}
