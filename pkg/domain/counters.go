package domain

import "time"

// Metric names the counter a quest or achievement requirement reads.
type Metric string

const (
	// MetricFocusMinutes is the total completed focus minutes in the window,
	// optionally restricted to a category.
	MetricFocusMinutes Metric = "focus_minutes"

	// MetricTimerSessions counts completed timer sessions of at least
	// MinMinutes, optionally restricted to a category.
	MetricTimerSessions Metric = "timer_sessions"

	// MetricHydrationPct is hydration as a whole percentage of the daily goal.
	MetricHydrationPct Metric = "hydration_pct"

	// MetricCheckinDays counts days in the window with mood, gut, and sleep
	// all logged.
	MetricCheckinDays Metric = "checkin_days"

	// MetricQuestsCompleted counts quest completions in the window.
	MetricQuestsCompleted Metric = "quests_completed"

	// MetricScreenViews counts views of the screen named by the
	// requirement's category.
	MetricScreenViews Metric = "screen_views"
)

// IsValid returns true if the metric is a known counter.
func (m Metric) IsValid() bool {
	switch m {
	case MetricFocusMinutes, MetricTimerSessions, MetricHydrationPct,
		MetricCheckinDays, MetricQuestsCompleted, MetricScreenViews:
		return true
	default:
		return false
	}
}

// OperatorGTE is the only comparison supported by requirements.
const OperatorGTE = ">="

// Requirement is the literal threshold a completion predicate compares
// a metric against. Evaluation is pure: the same counters always produce
// the same decision.
type Requirement struct {
	Metric      Metric `json:"metric" yaml:"metric"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`       // metric-dependent filter
	MinMinutes  int    `json:"min_minutes,omitempty" yaml:"min_minutes,omitempty"` // timer_sessions only
	Operator    string `json:"operator" yaml:"operator"`
	TargetValue int    `json:"target_value" yaml:"target_value"`
}

// Met reports whether the measured value satisfies the requirement.
func (r Requirement) Met(value int) bool {
	if r.Operator == OperatorGTE {
		return value >= r.TargetValue
	}
	return false
}

// TimerSession records one completed timer for window-scoped evaluation.
type TimerSession struct {
	Category string    `json:"category"`
	Minutes  int       `json:"minutes"`
	EndedAt  time.Time `json:"ended_at"`
}

// DayCounters accumulates one calendar day's raw activity. Quest and
// achievement predicates read these; they never mutate them.
type DayCounters struct {
	FocusMinutes    map[string]int `json:"focus_minutes"` // by category
	Sessions        []TimerSession `json:"sessions"`
	HydrationML     int            `json:"hydration_ml"`
	HydrationGoalML int            `json:"hydration_goal_ml"`
	MoodLogged      bool           `json:"mood_logged"`
	GutLogged       bool           `json:"gut_logged"`
	SleepLogged     bool           `json:"sleep_logged"`
	ScreenViews     map[string]int `json:"screen_views"`
	QuestsCompleted int            `json:"quests_completed"`
}

// NewDayCounters returns zeroed counters for a fresh day.
func NewDayCounters() *DayCounters {
	return &DayCounters{
		FocusMinutes: make(map[string]int),
		ScreenViews:  make(map[string]int),
	}
}

// TotalFocusMinutes returns focus minutes for a category, or across all
// categories when category is empty.
func (c *DayCounters) TotalFocusMinutes(category string) int {
	if category != "" {
		return c.FocusMinutes[category]
	}
	total := 0
	for _, m := range c.FocusMinutes {
		total += m
	}
	return total
}

// SessionCount returns the number of completed sessions of at least
// minMinutes, optionally restricted to a category.
func (c *DayCounters) SessionCount(minMinutes int, category string) int {
	n := 0
	for _, s := range c.Sessions {
		if s.Minutes < minMinutes {
			continue
		}
		if category != "" && s.Category != category {
			continue
		}
		n++
	}
	return n
}

// HydrationPct returns hydration as a whole percentage of the goal.
// Zero when no goal has been reported yet.
func (c *DayCounters) HydrationPct() int {
	if c.HydrationGoalML <= 0 {
		return 0
	}
	return c.HydrationML * 100 / c.HydrationGoalML
}

// AllCheckinsLogged reports whether mood, gut, and sleep were all logged.
func (c *DayCounters) AllCheckinsLogged() bool {
	return c.MoodLogged && c.GutLogged && c.SleepLogged
}
