// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadItemDefinitions reads a shop catalogue file and replaces ItemLibrary.
// On error the current catalogue stays in place.
func LoadItemDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read item definitions file: %w", err)
	}

	var items []ItemDefinition
	if err := json.Unmarshal(file, &items); err != nil {
		return fmt.Errorf("failed to unmarshal item definitions: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		switch {
		case it.ID == "":
			return fmt.Errorf("item definition without id in %s", path)
		case seen[it.ID]:
			return fmt.Errorf("duplicate item id %q in %s", it.ID, path)
		case it.Price <= 0:
			return fmt.Errorf("item %q must have a positive price, got %d", it.ID, it.Price)
		}
		seen[it.ID] = true
	}

	ItemLibrary = items
	log.Info().Int("items", len(ItemLibrary)).Str("path", path).Msg("Loaded item definitions")
	return nil
}
