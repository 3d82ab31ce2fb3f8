package vscode

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kilomoco/kilomoco/internal/config"
)

func writeSettings(t *testing.T, userDataDir string, settings map[string]any) {
	t.Helper()
	userDir := filepath.Join(userDataDir, "User")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(settings)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "settings.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func testRegistry() config.Registry {
	return config.Registry{
		"bas": {
			ID: "bas",
			Modes: map[string]string{
				"default": "grok-code-fast-1",
				"code":    "grok-code-fast-1",
			},
		},
		"hiq": {
			ID: "hiq",
			Modes: map[string]string{
				"default": "gemini-2.5-pro",
				"code":    "claude-sonnet-4.5",
			},
		},
	}
}

func TestProfileForInstanceExactMatch(t *testing.T) {
	udd := t.TempDir()
	writeSettings(t, udd, map[string]any{
		"kilo-code.default.model": "gemini-2.5-pro",
		"kilo-code.code.model":    "claude-sonnet-4.5",
		"editor.fontSize":         14,
	})

	id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil)
	if !ok || id != "hiq" {
		t.Errorf("got %q, %v; want hiq, true", id, ok)
	}
}

func TestProfileForInstanceSubsetNoMatch(t *testing.T) {
	udd := t.TempDir()
	// Strict subset of bas: exact equality must reject it.
	writeSettings(t, udd, map[string]any{
		"kilo-code.default.model": "grok-code-fast-1",
	})

	if id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil); ok {
		t.Errorf("subset matched %q, want no match", id)
	}
}

func TestProfileForInstanceSupersetNoMatch(t *testing.T) {
	udd := t.TempDir()
	writeSettings(t, udd, map[string]any{
		"kilo-code.default.model": "grok-code-fast-1",
		"kilo-code.code.model":    "grok-code-fast-1",
		"kilo-code.extra.model":   "whatever",
	})

	if id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil); ok {
		t.Errorf("superset matched %q, want no match", id)
	}
}

func TestProfileForInstanceUnknownModels(t *testing.T) {
	udd := t.TempDir()
	writeSettings(t, udd, map[string]any{
		"kilo-code.default.model": "unknown-model",
		"kilo-code.code.model":    "another-unknown",
	})

	if id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil); ok {
		t.Errorf("got %q, want no match", id)
	}
}

func TestProfileForInstanceNoUserDataDir(t *testing.T) {
	if id, ok := ProfileForInstance(Instance{Workspace: "/some/path"}, testRegistry(), nil); ok {
		t.Errorf("got %q, want no match", id)
	}
}

func TestProfileForInstanceNoSettingsFile(t *testing.T) {
	if id, ok := ProfileForInstance(Instance{UserDataDir: t.TempDir()}, testRegistry(), nil); ok {
		t.Errorf("got %q, want no match", id)
	}
}

func TestProfileForInstanceInvalidJSON(t *testing.T) {
	udd := t.TempDir()
	userDir := filepath.Join(udd, "User")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "settings.json"), []byte("invalid json content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil); ok {
		t.Errorf("got %q, want no match", id)
	}
}

func TestProfileForInstanceNoKiloSettings(t *testing.T) {
	udd := t.TempDir()
	writeSettings(t, udd, map[string]any{
		"editor.fontSize":       14,
		"workbench.colorTheme":  "Default Dark+",
		"kilo-code.unrelated":   true,
		"other-ext.debug.model": "x",
	})

	if id, ok := ProfileForInstance(Instance{UserDataDir: udd}, testRegistry(), nil); ok {
		t.Errorf("got %q, want no match", id)
	}
}

func TestModeSettingsFromFile(t *testing.T) {
	udd := t.TempDir()
	writeSettings(t, udd, map[string]any{
		"kilo-code.default.model":    "m1",
		"kilo-code.debug.model":      "m2",
		"kilo-code.debug.tempmodel":  "not-a-model-key",
		"kilo-code.a.b.model":        "nested-mode-rejected",
		"other.default.model":        "wrong-namespace",
		"kilo-code.default.maxTurns": 5,
	})

	modes := ModeSettingsFromFile(filepath.Join(udd, "User", "settings.json"), "kilo-code")

	want := map[string]string{"default": "m1", "debug": "m2"}
	if len(modes) != len(want) {
		t.Fatalf("modes = %v, want %v", modes, want)
	}
	for k, v := range want {
		if modes[k] != v {
			t.Errorf("modes[%q] = %q, want %q", k, modes[k], v)
		}
	}
}
