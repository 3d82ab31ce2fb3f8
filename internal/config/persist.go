package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadProfilesFromFile reads a registry persisted as a JSON object keyed by
// profile id. A missing file yields an empty registry, not an error.
func LoadProfilesFromFile(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Registry{}, nil
		}
		return nil, fmt.Errorf("reading profiles %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing profiles %s: %w", path, err)
	}
	return reg, nil
}

// SaveProfilesToFile writes the registry as indented JSON keyed by id.
func SaveProfilesToFile(reg Registry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
