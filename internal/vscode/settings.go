package vscode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kilomoco/kilomoco/internal/config"
)

// GenerateModeSettings produces the settings entries for a profile: one
// <namespace>.<mode>.model key per mode.
func GenerateModeSettings(p *config.Profile, namespace string) map[string]string {
	settings := make(map[string]string, len(p.Modes))
	for mode, model := range p.Modes {
		settings[fmt.Sprintf("%s.%s.model", namespace, mode)] = model
	}
	return settings
}

// CreateTemporaryUserDataDir creates a fresh directory for use as a VS Code
// user-data-dir and returns its path.
func CreateTemporaryUserDataDir(prefix string) (string, error) {
	return os.MkdirTemp("", prefix)
}

// ApplyModeConfiguration writes the profile's mode settings as the sole
// content of a freshly created temporary user-data dir and returns that dir
// as a handle. On any failure the partially built dir is removed before the
// error is returned.
func ApplyModeConfiguration(p *config.Profile, settings *config.Settings) (string, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	dir, err := CreateTemporaryUserDataDir(settings.TempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("creating user-data dir: %w", err)
	}

	userDir := filepath.Join(dir, "User")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("creating User dir: %w", err)
	}

	modeSettings := GenerateModeSettings(p, settings.Namespace)
	if err := writeJSONAtomic(filepath.Join(userDir, "settings.json"), modeSettings); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("writing settings.json: %w", err)
	}

	return dir, nil
}

// writeJSONAtomic writes v as indented JSON using a write-to-temp-then-rename
// pattern, so the target is never observed partially written. A failed write
// leaves no temp file behind.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
