package engine

import (
	"encoding/json"

	"github.com/habitforge/progression-engine/pkg/domain"
)

// SnapshotVersion tags the serialized record format. Future format changes
// bump this and add an explicit version-tagged transform in RestoreSnapshot.
const SnapshotVersion = 1

// Snapshot is the flat, versioned record of one player profile's entire
// engine state. It is the sole persistence contract: the engine can be
// reconstructed from it with no other side effects, and the storage medium
// and write schedule are the host's concern.
type Snapshot struct {
	Version          int                                             `json:"version"`
	Progression      domain.ProgressionState                         `json:"progression"`
	Buffs            []domain.Buff                                   `json:"buffs"`
	Daily            domain.DailyFlags                               `json:"daily"`
	WeekKey          string                                          `json:"week_key"`
	Days             map[string]*domain.DayCounters                  `json:"days"`
	Season           domain.SeasonCounters                           `json:"season"`
	Quests           []*domain.QuestInstance                         `json:"quests"`
	Achievements     map[string]*domain.AchievementProgress          `json:"achievements"`
	Talents          domain.TalentAllocation                         `json:"talents"`
	ReminderSettings map[domain.ReminderType]domain.ReminderSettings `json:"reminder_settings"`
	ReminderState    map[domain.ReminderType]*domain.ReminderState   `json:"reminder_state"`
}

// Snapshot captures the engine's current state.
func (e *Engine) Snapshot() *Snapshot {
	return &Snapshot{
		Version:          SnapshotVersion,
		Progression:      e.progression,
		Buffs:            append([]domain.Buff(nil), e.buffs...),
		Daily:            e.daily,
		WeekKey:          e.weekKey,
		Days:             e.days,
		Season:           e.season,
		Quests:           e.quests,
		Achievements:     e.achieve,
		Talents:          e.talents,
		ReminderSettings: e.remSettings,
		ReminderState:    e.remState,
	}
}

// MarshalSnapshot serializes the engine state for the host's store.
func (e *Engine) MarshalSnapshot() ([]byte, error) {
	return json.Marshal(e.Snapshot())
}

// snapshotEnvelope splits the record into independently decodable sections
// so one corrupt section cannot take down the rest.
type snapshotEnvelope struct {
	Version          json.RawMessage `json:"version"`
	Progression      json.RawMessage `json:"progression"`
	Buffs            json.RawMessage `json:"buffs"`
	Daily            json.RawMessage `json:"daily"`
	WeekKey          json.RawMessage `json:"week_key"`
	Days             json.RawMessage `json:"days"`
	Season           json.RawMessage `json:"season"`
	Quests           json.RawMessage `json:"quests"`
	Achievements     json.RawMessage `json:"achievements"`
	Talents          json.RawMessage `json:"talents"`
	ReminderSettings json.RawMessage `json:"reminder_settings"`
	ReminderState    json.RawMessage `json:"reminder_state"`
}

// RestoreSnapshot reconstructs engine state from a serialized record.
// Recovery is local, never fatal: each unreadable section falls back to its
// documented default while valid sections survive. A record that cannot be
// parsed at all restores the engine to fresh defaults.
func (e *Engine) RestoreSnapshot(data []byte) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		e.logger.Error("Snapshot unreadable; restoring fresh state", "error", err)
		env = snapshotEnvelope{}
	}

	version := SnapshotVersion
	restoreSection(e, "version", env.Version, &version)
	if version != SnapshotVersion {
		// Only version 1 exists; an unknown tag is read best-effort.
		e.logger.Warn("Unknown snapshot version", "version", version, "supported", SnapshotVersion)
	}

	e.progression = domain.NewProgressionState()
	restoreSection(e, "progression", env.Progression, &e.progression)
	if e.progression.Level < 1 {
		e.progression.Level = domain.LevelForTotalXP(e.progression.TotalXP)
	}

	e.buffs = nil
	restoreSection(e, "buffs", env.Buffs, &e.buffs)

	e.daily = domain.NewDailyFlags()
	restoreSection(e, "daily", env.Daily, &e.daily)
	if e.daily.Flags == nil {
		e.daily.Flags = make(map[string]bool)
	}

	e.weekKey = ""
	restoreSection(e, "week_key", env.WeekKey, &e.weekKey)

	e.days = make(map[string]*domain.DayCounters)
	restoreSection(e, "days", env.Days, &e.days)
	for key, c := range e.days {
		if c == nil {
			delete(e.days, key)
			continue
		}
		if c.FocusMinutes == nil {
			c.FocusMinutes = make(map[string]int)
		}
		if c.ScreenViews == nil {
			c.ScreenViews = make(map[string]int)
		}
	}

	e.season = domain.NewSeasonCounters()
	restoreSection(e, "season", env.Season, &e.season)
	if e.season.FocusMinutes == nil {
		e.season.FocusMinutes = make(map[string]int)
	}
	if e.season.ScreenViews == nil {
		e.season.ScreenViews = make(map[string]int)
	}

	e.quests = nil
	restoreSection(e, "quests", env.Quests, &e.quests)

	e.achieve = make(map[string]*domain.AchievementProgress)
	restoreSection(e, "achievements", env.Achievements, &e.achieve)
	for id, prog := range e.achieve {
		if prog == nil {
			delete(e.achieve, id)
		}
	}

	e.talents = make(domain.TalentAllocation)
	restoreSection(e, "talents", env.Talents, &e.talents)

	// Reminder settings fall back to catalog defaults, not to zero values:
	// a corrupt section must not silently disable every reminder.
	e.remSettings = make(map[domain.ReminderType]domain.ReminderSettings)
	for _, rt := range []domain.ReminderType{domain.ReminderHydration, domain.ReminderPosture, domain.ReminderMovement} {
		if settings, ok := e.catalog.ReminderDefaults(rt); ok {
			e.remSettings[rt] = settings
		}
	}
	restoreSection(e, "reminder_settings", env.ReminderSettings, &e.remSettings)

	e.remState = make(map[domain.ReminderType]*domain.ReminderState)
	restoreSection(e, "reminder_state", env.ReminderState, &e.remState)
	for rt, state := range e.remState {
		if state == nil {
			delete(e.remState, rt)
		}
	}
}

// restoreSection decodes one section into a scratch value so a corrupt
// section cannot partially overwrite the target's preset default.
func restoreSection[T any](e *Engine, name string, raw json.RawMessage, target *T) {
	if len(raw) == 0 {
		return
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		e.logger.Warn("Corrupt snapshot section; using defaults", "section", name, "error", err)
		return
	}
	*target = decoded
}
