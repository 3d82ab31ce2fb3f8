package vscode

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/kilomoco/kilomoco/internal/config"
)

// ModeSettingsFromFile extracts the <namespace>.<mode>.model entries from a
// VS Code settings.json into a mode to model mapping. A missing or
// unparseable file yields an empty map; reconciliation is advisory and must
// never fail on malformed external state.
func ModeSettingsFromFile(path, namespace string) map[string]string {
	modes := make(map[string]string)

	data, err := os.ReadFile(path)
	if err != nil {
		return modes
	}
	if !gjson.ValidBytes(data) {
		log.Debug().Str("file", path).Msg("settings.json is not valid JSON")
		return modes
	}

	prefix := namespace + "."
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if !strings.HasPrefix(k, prefix) || !strings.HasSuffix(k, ".model") {
			return true
		}
		mode := strings.TrimSuffix(strings.TrimPrefix(k, prefix), ".model")
		if mode == "" || strings.Contains(mode, ".") {
			return true
		}
		modes[mode] = value.String()
		return true
	})
	return modes
}

// ProfileForInstance maps an instance's persisted settings back to a known
// profile by exact equality of mode mappings: every key and value must
// match, no subset or superset. Any added or removed mode breaks
// recognition.
func ProfileForInstance(inst Instance, reg config.Registry, settings *config.Settings) (string, bool) {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if inst.UserDataDir == "" {
		return "", false
	}

	path := filepath.Join(inst.UserDataDir, "User", "settings.json")
	observed := ModeSettingsFromFile(path, settings.Namespace)
	if len(observed) == 0 {
		return "", false
	}

	for id, p := range reg {
		if modesEqual(observed, p.Modes) {
			return id, true
		}
	}
	return "", false
}

func modesEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
