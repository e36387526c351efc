package domain

// SeasonCounters accumulate across a whole season with no daily or weekly
// reset. Achievements read these; only a full wipe clears them.
type SeasonCounters struct {
	TimerSessions     int            `json:"timer_sessions"`
	FocusMinutes      map[string]int `json:"focus_minutes"` // by category
	QuestsCompleted   int            `json:"quests_completed"`
	CheckinDays       int            `json:"checkin_days"`        // days with mood+gut+sleep all logged
	HydrationGoalDays int            `json:"hydration_goal_days"` // days the hydration goal was reached
	ScreenViews       map[string]int `json:"screen_views"`
}

// NewSeasonCounters returns zeroed season counters.
func NewSeasonCounters() SeasonCounters {
	return SeasonCounters{
		FocusMinutes: make(map[string]int),
		ScreenViews:  make(map[string]int),
	}
}

// TotalFocusMinutes returns season focus minutes for a category, or across
// all categories when category is empty.
func (s *SeasonCounters) TotalFocusMinutes(category string) int {
	if category != "" {
		return s.FocusMinutes[category]
	}
	total := 0
	for _, m := range s.FocusMinutes {
		total += m
	}
	return total
}
