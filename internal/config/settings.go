package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the application configuration, loaded from
// ~/.config/kilomoco/config.toml. Every field has a working default; the
// file only exists to override them.
type Settings struct {
	EditorBinary  string `toml:"editor_binary"`  // VS Code CLI name or path
	Namespace     string `toml:"namespace"`      // settings key namespace
	ExtensionID   string `toml:"extension_id"`   // directory name under <udd>/extensions
	ProfilesDir   string `toml:"profiles_dir"`   // extra profiles directory (optional)
	TempDirPrefix string `toml:"tempdir_prefix"` // prefix for generated user-data dirs
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() *Settings {
	return &Settings{
		EditorBinary:  "code",
		Namespace:     "kilo-code",
		ExtensionID:   "kilocode.kilo-code",
		TempDirPrefix: "kilomoco-profile-",
	}
}

// DefaultSettingsPath returns the config file path, honoring XDG_CONFIG_HOME.
func DefaultSettingsPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kilomoco", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kilomoco", "config.toml")
}

// LoadSettings reads the config file at path (DefaultSettingsPath if empty).
// A missing file yields defaults; a malformed file is an error.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath()
	}

	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Re-fill anything the file blanked out.
	d := DefaultSettings()
	if s.EditorBinary == "" {
		s.EditorBinary = d.EditorBinary
	}
	if s.Namespace == "" {
		s.Namespace = d.Namespace
	}
	if s.ExtensionID == "" {
		s.ExtensionID = d.ExtensionID
	}
	if s.TempDirPrefix == "" {
		s.TempDirPrefix = d.TempDirPrefix
	}
	s.ProfilesDir = ExpandHome(s.ProfilesDir)

	return s, nil
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
