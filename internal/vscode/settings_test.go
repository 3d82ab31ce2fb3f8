package vscode

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kilomoco/kilomoco/internal/config"
)

func TestGenerateModeSettings(t *testing.T) {
	profile := &config.Profile{
		ID: "lopr",
		Modes: map[string]string{
			"default":      "llama-4-maverick",
			"orchestrator": "deepseek-v3.2-exp",
		},
	}

	settings := GenerateModeSettings(profile, "kilo-code")

	if len(settings) != 2 {
		t.Fatalf("got %d entries, want 2", len(settings))
	}
	if settings["kilo-code.default.model"] != "llama-4-maverick" {
		t.Errorf("default = %q", settings["kilo-code.default.model"])
	}
	if settings["kilo-code.orchestrator.model"] != "deepseek-v3.2-exp" {
		t.Errorf("orchestrator = %q", settings["kilo-code.orchestrator.model"])
	}
}

func TestGenerateModeSettingsAllModes(t *testing.T) {
	modes := make(map[string]string, len(config.ModeNames))
	for i, mode := range config.ModeNames {
		modes[mode] = string(rune('a' + i))
	}
	profile := &config.Profile{ID: "full", Modes: modes}

	settings := GenerateModeSettings(profile, "kilo-code")

	if len(settings) != len(config.ModeNames) {
		t.Fatalf("got %d entries, want %d", len(settings), len(config.ModeNames))
	}
	for _, mode := range config.ModeNames {
		key := "kilo-code." + mode + ".model"
		if settings[key] != modes[mode] {
			t.Errorf("%s = %q, want %q", key, settings[key], modes[mode])
		}
	}
}

func TestApplyModeConfiguration(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	profile := &config.Profile{
		ID:    "test",
		Modes: map[string]string{"default": "gpt-4", "code": "claude-3"},
	}

	dir, err := ApplyModeConfiguration(profile, config.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	settingsFile := filepath.Join(dir, "User", "settings.json")
	data, err := os.ReadFile(settingsFile)
	if err != nil {
		t.Fatalf("settings.json missing: %v", err)
	}

	var settings map[string]string
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("settings.json not valid JSON: %v", err)
	}
	if settings["kilo-code.default.model"] != "gpt-4" {
		t.Errorf("default = %q", settings["kilo-code.default.model"])
	}
	if settings["kilo-code.code.model"] != "claude-3" {
		t.Errorf("code = %q", settings["kilo-code.code.model"])
	}
}

func TestWriteJSONAtomicLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	if err := writeJSONAtomic(path, map[string]string{"key": "value"}); err != nil {
		t.Fatal(err)
	}

	var loaded map[string]string
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded["key"] != "value" {
		t.Errorf("loaded = %v", loaded)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temp file %s left behind", entry.Name())
		}
	}
}

// Round-trip: generating settings and re-extracting the mode/model pairs
// must match the profile exactly.
func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	settings := config.DefaultSettings()

	profile := &config.Profile{
		ID: "lopr",
		Modes: map[string]string{
			"default":      "llama-4-maverick",
			"orchestrator": "deepseek-v3.2-exp",
		},
	}

	dir, err := ApplyModeConfiguration(profile, settings)
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	reg := config.Registry{"lopr": profile}
	inst := Instance{UserDataDir: dir, PID: 1}

	id, ok := ProfileForInstance(inst, reg, settings)
	if !ok || id != "lopr" {
		t.Errorf("ProfileForInstance = %q, %v; want lopr, true", id, ok)
	}
}
