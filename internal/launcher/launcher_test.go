package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kilomoco/kilomoco/internal/config"
)

type fakeRunner struct {
	binary string
	args   []string
	code   int
	err    error
	calls  int
}

func (f *fakeRunner) Run(binary string, args []string) (int, error) {
	f.binary = binary
	f.args = args
	f.calls++
	return f.code, f.err
}

// installFakeEditor puts an executable named bin on PATH.
func installFakeEditor(t *testing.T, bin string) {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(filepath.Join(dir, bin), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.EditorBinary = "fake-code"
	return s
}

func testRegistry() config.Registry {
	return config.Registry{
		"lopr": {ID: "lopr", Modes: map[string]string{"default": "llama-4-maverick"}},
		"copr": {ID: "copr", Modes: map[string]string{"default": "gpt-5-mini"}},
	}
}

func TestCheckEditorAvailable(t *testing.T) {
	installFakeEditor(t, "fake-code")
	if err := CheckEditorAvailable("fake-code"); err != nil {
		t.Errorf("fake editor on PATH, got %v", err)
	}
	if err := CheckEditorAvailable("definitely-not-a-real-binary"); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestPrepareAndLaunchUnknownProfile(t *testing.T) {
	installFakeEditor(t, "fake-code")

	_, err := PrepareAndLaunch("bogus", Options{
		Settings: testSettings(),
		Registry: testRegistry(),
		Runner:   &fakeRunner{},
	})
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	msg := err.Error()
	if !strings.Contains(msg, "bogus") {
		t.Errorf("error %q should name the requested id", msg)
	}
	if !strings.Contains(msg, "copr, lopr") {
		t.Errorf("error %q should list the available ids", msg)
	}
}

func TestPrepareAndLaunchEditorNotAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("TMPDIR", t.TempDir())

	runner := &fakeRunner{}
	_, err := PrepareAndLaunch("lopr", Options{
		Settings: testSettings(),
		Registry: testRegistry(),
		Runner:   runner,
	})
	if err == nil {
		t.Fatal("expected error when editor is missing")
	}
	if !strings.Contains(err.Error(), "fake-code") {
		t.Errorf("error %q should name the binary", err.Error())
	}
	if runner.calls != 0 {
		t.Error("runner should not be invoked when editor is missing")
	}
	// Nothing may be written before the editor check.
	entries, _ := os.ReadDir(os.TempDir())
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "kilomoco-profile-") {
			t.Errorf("user-data dir %s created before editor check", e.Name())
		}
	}
}

func TestPrepareAndLaunchSuccess(t *testing.T) {
	installFakeEditor(t, "fake-code")
	t.Setenv("TMPDIR", t.TempDir())

	runner := &fakeRunner{code: 0}
	code, err := PrepareAndLaunch("lopr", Options{
		Workspace: "/path/to/workspace",
		Settings:  testSettings(),
		Registry:  testRegistry(),
		Runner:    runner,
	})
	if err != nil {
		t.Fatal(err)
	}
	if code != 0 {
		t.Errorf("code = %d", code)
	}
	if runner.binary != "fake-code" {
		t.Errorf("binary = %q", runner.binary)
	}
	if len(runner.args) != 3 || runner.args[0] != "--user-data-dir" {
		t.Fatalf("args = %v", runner.args)
	}
	if runner.args[2] != "/path/to/workspace" {
		t.Errorf("workspace arg = %q", runner.args[2])
	}

	// The configured settings must be in place for the launched editor.
	settingsFile := filepath.Join(runner.args[1], "User", "settings.json")
	if _, err := os.Stat(settingsFile); err != nil {
		t.Errorf("settings.json missing in launched dir: %v", err)
	}
	os.RemoveAll(runner.args[1])
}

func TestPrepareAndLaunchExtensionsDir(t *testing.T) {
	installFakeEditor(t, "fake-code")
	t.Setenv("TMPDIR", t.TempDir())

	runner := &fakeRunner{}
	_, err := PrepareAndLaunch("lopr", Options{
		ExtensionsDir: "/ext",
		Settings:      testSettings(),
		Registry:      testRegistry(),
		Runner:        runner,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"--user-data-dir", runner.args[1], "--extensions-dir", "/ext"}
	if len(runner.args) != len(want) {
		t.Fatalf("args = %v", runner.args)
	}
	for i := range want {
		if runner.args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, runner.args[i], want[i])
		}
	}
	os.RemoveAll(runner.args[1])
}

func TestPrepareAndLaunchExitCodeSurfaced(t *testing.T) {
	installFakeEditor(t, "fake-code")
	t.Setenv("TMPDIR", t.TempDir())

	runner := &fakeRunner{code: 3}
	code, err := PrepareAndLaunch("lopr", Options{
		Settings: testSettings(),
		Registry: testRegistry(),
		Runner:   runner,
	})
	if err != nil {
		t.Fatal(err)
	}
	if code != 3 {
		t.Errorf("code = %d, want 3", code)
	}
	os.RemoveAll(runner.args[1])
}

func TestPrepareAndLaunchCleanupOnLaunchError(t *testing.T) {
	installFakeEditor(t, "fake-code")
	t.Setenv("TMPDIR", t.TempDir())

	runner := &fakeRunner{err: errors.New("launch failed")}
	_, err := PrepareAndLaunch("lopr", Options{
		Settings: testSettings(),
		Registry: testRegistry(),
		Runner:   runner,
	})
	if err == nil {
		t.Fatal("expected launch error to propagate")
	}
	if !strings.Contains(err.Error(), "launch failed") {
		t.Errorf("error = %q", err.Error())
	}

	// The applied configuration dir must be cleaned up.
	if len(runner.args) < 2 {
		t.Fatalf("args = %v", runner.args)
	}
	if _, statErr := os.Stat(runner.args[1]); !os.IsNotExist(statErr) {
		t.Errorf("user-data dir %s should be removed after launch failure", runner.args[1])
	}
}
