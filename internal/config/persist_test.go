package config

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	reg := Registry{
		"lopr": {
			ID:          "lopr",
			Name:        "Low-Price (Economy)",
			Description: "Budget-friendly",
			Modes: map[string]string{
				"default":      "llama-4-maverick",
				"orchestrator": "deepseek-v3.2-exp",
			},
		},
	}

	if err := SaveProfilesToFile(reg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadProfilesFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := loaded["lopr"]
	if !ok {
		t.Fatalf("lopr missing after round trip: %v", loaded.IDs())
	}
	if p.Name != "Low-Price (Economy)" || p.Modes["default"] != "llama-4-maverick" {
		t.Errorf("round trip mangled profile: %+v", p)
	}
}

func TestLoadProfilesFromFileMissing(t *testing.T) {
	reg, err := LoadProfilesFromFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(reg) != 0 {
		t.Errorf("got %d profiles from missing file", len(reg))
	}
}
