package config

import (
	_ "embed"
	"fmt"
	"log/slog"
)

// defaultCatalogJSON is the content catalog shipped with the engine.
// Hosts that do not manage their own content files run on this.
//
//go:embed default_catalog.json
var defaultCatalogJSON []byte

// LoadDefault parses and validates the embedded default catalog.
func LoadDefault(logger *slog.Logger) (*Catalog, error) {
	catalog, err := Parse(defaultCatalogJSON, "json")
	if err != nil {
		return nil, fmt.Errorf("embedded catalog is unparseable: %w", err)
	}
	if err := NewValidator().Validate(catalog); err != nil {
		return nil, fmt.Errorf("embedded catalog failed validation: %w", err)
	}

	logger.Info("Default catalog loaded",
		"quests", len(catalog.Quests),
		"achievements", len(catalog.Achievements),
		"talents", len(catalog.Talents),
	)

	return catalog, nil
}
