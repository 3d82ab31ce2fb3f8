package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config file should yield defaults, got %v", err)
	}
	if s.EditorBinary != "code" {
		t.Errorf("EditorBinary = %q", s.EditorBinary)
	}
	if s.Namespace != "kilo-code" {
		t.Errorf("Namespace = %q", s.Namespace)
	}
	if s.ExtensionID != "kilocode.kilo-code" {
		t.Errorf("ExtensionID = %q", s.ExtensionID)
	}
	if s.TempDirPrefix != "kilomoco-profile-" {
		t.Errorf("TempDirPrefix = %q", s.TempDirPrefix)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
editor_binary = "codium"
namespace = "kilo-code"
profiles_dir = "~/my-profiles"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.EditorBinary != "codium" {
		t.Errorf("EditorBinary = %q", s.EditorBinary)
	}
	// Unset fields keep their defaults.
	if s.ExtensionID != "kilocode.kilo-code" {
		t.Errorf("ExtensionID = %q", s.ExtensionID)
	}
	if want := filepath.Join(home, "my-profiles"); s.ProfilesDir != want {
		t.Errorf("ProfilesDir = %q, want %q", s.ProfilesDir, want)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("editor_binary = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultSettingsPath(); got != filepath.Join("/tmp/xdg", "kilomoco", "config.toml") {
		t.Errorf("DefaultSettingsPath() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot get user home dir")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/foo", filepath.Join(home, "foo")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
