package domain

// Per-day grant flag identifiers.
const (
	// FlagWaterGoalGranted gates the daily hydration-goal XP award.
	FlagWaterGoalGranted = "water-goal-granted"

	// FlagSleepGranted gates the daily sleep-logged XP award.
	FlagSleepGranted = "sleep-granted"

	// FlagGutGranted gates the daily gut-logged XP award.
	FlagGutGranted = "gut-granted"

	// FlagMoodGranted gates the daily mood-logged XP award.
	FlagMoodGranted = "mood-granted"

	// FlagTrifectaGranted gates the composite hydration+sleep+gut bonus.
	FlagTrifectaGranted = "trifecta-granted"

	// FlagQuestRerollUsed gates the one-per-day manual quest reroll.
	FlagQuestRerollUsed = "quest-reroll-used"
)

// DailyFlags is the per-calendar-day set of one-shot grant markers.
// Flags for day D are cleared exactly once, the first time any day-scoped
// check observes a day later than LastResetDay.
type DailyFlags struct {
	Flags        map[string]bool `json:"flags"`
	LastResetDay string          `json:"last_reset_day"` // day key, empty = never reset
}

// NewDailyFlags returns an empty flag set that has never been reset.
func NewDailyFlags() DailyFlags {
	return DailyFlags{Flags: make(map[string]bool)}
}

// IsSet reports whether the flag has fired today.
func (d *DailyFlags) IsSet(flagID string) bool {
	return d.Flags[flagID]
}

// Set marks the flag as fired for the current day.
func (d *DailyFlags) Set(flagID string) {
	if d.Flags == nil {
		d.Flags = make(map[string]bool)
	}
	d.Flags[flagID] = true
}

// Clear drops every flag. Called only by the daily reset.
func (d *DailyFlags) Clear() {
	d.Flags = make(map[string]bool)
}
