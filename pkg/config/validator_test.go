package config

import (
	"strings"
	"testing"

	"github.com/habitforge/progression-engine/pkg/domain"
)

func validCatalog() *Catalog {
	return &Catalog{
		DailyQuestSlots: 1,
		Quests: []*domain.QuestDefinition{
			{
				ID:         "daily-focus",
				Name:       "Focus",
				Scope:      domain.QuestScopeDaily,
				Difficulty: domain.DifficultyEasy,
				XPReward:   50,
				Requirement: domain.Requirement{
					Metric:      domain.MetricFocusMinutes,
					Operator:    domain.OperatorGTE,
					TargetValue: 30,
				},
			},
		},
		Achievements: []*domain.AchievementDefinition{
			{
				ID:        "ach-ten",
				Name:      "Ten Sessions",
				Title:     "Regular",
				Condition: domain.ConditionCountThreshold,
				Requirement: domain.Requirement{
					Metric:      domain.MetricTimerSessions,
					Operator:    domain.OperatorGTE,
					TargetValue: 10,
				},
				XPReward: 100,
			},
		},
		Talents: []*domain.TalentNode{
			{ID: "root", Name: "Root", Tier: 1, MaxRanks: 3},
			{ID: "branch", Name: "Branch", Tier: 2, MaxRanks: 2, Requires: []string{"root"}},
		},
		Reminders: map[domain.ReminderType]domain.ReminderSettings{
			domain.ReminderHydration: {Enabled: true, CadenceMinutes: 60, StartHour: 9, EndHour: 22},
		},
	}
}

func TestValidator_ValidCatalog(t *testing.T) {
	if err := NewValidator().Validate(validCatalog()); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "no quests",
			mutate:  func(c *Catalog) { c.Quests = nil },
			wantErr: "at least one quest",
		},
		{
			name:    "duplicate quest ID",
			mutate:  func(c *Catalog) { c.Quests = append(c.Quests, c.Quests[0]) },
			wantErr: "duplicate quest ID",
		},
		{
			name:    "not enough daily quests for slots",
			mutate:  func(c *Catalog) { c.DailyQuestSlots = 5 },
			wantErr: "daily quests are defined",
		},
		{
			name:    "invalid scope",
			mutate:  func(c *Catalog) { c.Quests[0].Scope = "monthly" },
			wantErr: "invalid scope",
		},
		{
			name:    "invalid difficulty",
			mutate:  func(c *Catalog) { c.Quests[0].Difficulty = 9 },
			wantErr: "invalid difficulty",
		},
		{
			name:    "non-positive reward",
			mutate:  func(c *Catalog) { c.Quests[0].XPReward = 0 },
			wantErr: "xp_reward must be positive",
		},
		{
			name:    "invalid metric",
			mutate:  func(c *Catalog) { c.Quests[0].Requirement.Metric = "steps" },
			wantErr: "invalid metric",
		},
		{
			name:    "unsupported operator",
			mutate:  func(c *Catalog) { c.Quests[0].Requirement.Operator = "<" },
			wantErr: "unsupported operator",
		},
		{
			name:    "min_minutes on wrong metric",
			mutate:  func(c *Catalog) { c.Quests[0].Requirement.MinMinutes = 20 },
			wantErr: "min_minutes only applies",
		},
		{
			name:    "duplicate achievement ID",
			mutate:  func(c *Catalog) { c.Achievements = append(c.Achievements, c.Achievements[0]) },
			wantErr: "duplicate achievement ID",
		},
		{
			name: "composite with one part",
			mutate: func(c *Catalog) {
				c.Achievements[0].Condition = domain.ConditionComposite
				c.Achievements[0].Parts = []domain.Requirement{c.Achievements[0].Requirement}
			},
			wantErr: "at least two parts",
		},
		{
			name:    "talent tier out of range",
			mutate:  func(c *Catalog) { c.Talents[0].Tier = 6 },
			wantErr: "invalid tier",
		},
		{
			name:    "talent prerequisite missing",
			mutate:  func(c *Catalog) { c.Talents[1].Requires = []string{"ghost"} },
			wantErr: "does not exist",
		},
		{
			name: "talent prerequisite at same tier",
			mutate: func(c *Catalog) {
				c.Talents = append(c.Talents, &domain.TalentNode{
					ID: "peer", Name: "Peer", Tier: 2, MaxRanks: 1, Requires: []string{"branch"},
				})
			},
			wantErr: "cannot require",
		},
		{
			name: "unknown reminder type",
			mutate: func(c *Catalog) {
				c.Reminders["nap"] = domain.ReminderSettings{CadenceMinutes: 30}
			},
			wantErr: "unknown reminder type",
		},
		{
			name: "non-positive cadence",
			mutate: func(c *Catalog) {
				c.Reminders[domain.ReminderHydration] = domain.ReminderSettings{CadenceMinutes: 0}
			},
			wantErr: "cadence_minutes must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := validCatalog()
			tt.mutate(catalog)
			err := NewValidator().Validate(catalog)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
