package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/habitforge/progression-engine/pkg/domain"
	"github.com/habitforge/progression-engine/pkg/errors"
)

// Loader loads and validates a content catalog from a JSON or YAML file.
type Loader struct {
	catalogPath string
	validator   *Validator
	logger      *slog.Logger
}

// NewLoader creates a new Loader instance.
//
// Parameters:
//   - catalogPath: Path to the catalog file (.json, .yaml, or .yml)
//   - logger: Structured logger for operational logging
func NewLoader(catalogPath string, logger *slog.Logger) *Loader {
	return &Loader{
		catalogPath: catalogPath,
		validator:   NewValidator(),
		logger:      logger,
	}
}

// Load reads the catalog file and returns a validated Catalog.
// This is a "fail fast" operation: an invalid catalog prevents startup.
func (l *Loader) Load() (*Catalog, error) {
	data, err := os.ReadFile(l.catalogPath)
	if err != nil {
		return nil, errors.ErrCatalogNotFound(l.catalogPath, err)
	}

	format := "json"
	switch strings.ToLower(filepath.Ext(l.catalogPath)) {
	case ".yaml", ".yml":
		format = "yaml"
	}

	catalog, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	if err := l.validator.Validate(catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}

	l.logger.Info("Catalog loaded successfully",
		"quests", len(catalog.Quests),
		"achievements", len(catalog.Achievements),
		"talents", len(catalog.Talents),
		"catalog_path", l.catalogPath,
	)

	return catalog, nil
}

// Parse decodes catalog bytes in the given format ("json" or "yaml") and
// applies defaults. The result is NOT validated; callers that accept
// untrusted input must run a Validator over it.
func Parse(data []byte, format string) (*Catalog, error) {
	var catalog Catalog

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, errors.ErrInvalidInput("catalog YAML", err)
		}
	default:
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, errors.ErrInvalidInput("catalog JSON", err)
		}
	}

	applyDefaults(&catalog)
	return &catalog, nil
}

// applyDefaults fills optional fields so older catalog files keep working.
func applyDefaults(catalog *Catalog) {
	if catalog.DailyQuestSlots == 0 {
		catalog.DailyQuestSlots = DefaultDailyQuestSlots
	}
	for _, quest := range catalog.Quests {
		if quest.Scope == "" {
			quest.Scope = domain.QuestScopeDaily
		}
		if quest.Requirement.Operator == "" {
			quest.Requirement.Operator = domain.OperatorGTE
		}
	}
	for _, achievement := range catalog.Achievements {
		if achievement.Requirement.Operator == "" {
			achievement.Requirement.Operator = domain.OperatorGTE
		}
		for i := range achievement.Parts {
			if achievement.Parts[i].Operator == "" {
				achievement.Parts[i].Operator = domain.OperatorGTE
			}
		}
	}
	if catalog.Reminders == nil {
		catalog.Reminders = make(map[domain.ReminderType]domain.ReminderSettings)
	}
}
