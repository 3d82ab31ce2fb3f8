// Package launcher applies a profile and starts VS Code against it.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/vscode"
)

// Runner executes the editor binary and blocks until it exits, returning the
// process exit code. It exists so launches can be faked in tests.
type Runner interface {
	Run(binary string, args []string) (int, error)
}

type execRunner struct{}

func (execRunner) Run(binary string, args []string) (int, error) {
	cmd := exec.Command(binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// DefaultRunner launches the editor via os/exec with inherited stdio.
var DefaultRunner Runner = execRunner{}

// CheckEditorAvailable verifies the editor binary is on PATH.
func CheckEditorAvailable(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("VS Code CLI ('%s') not found in PATH", binary)
	}
	return nil
}

// Options control a launch.
type Options struct {
	Workspace     string
	ExtensionsDir string
	Settings      *config.Settings
	Runner        Runner
	Registry      config.Registry // overrides discovery when non-nil (for tests)
}

// PrepareAndLaunch resolves profileID, applies its mode configuration to a
// temporary user-data dir and launches the editor against it, blocking until
// the editor exits. The editor's exit code is returned. If the launch itself
// fails after configuration was applied, the temporary dir is removed before
// the error is returned.
func PrepareAndLaunch(profileID string, opts Options) (int, error) {
	settings := opts.Settings
	if settings == nil {
		s, err := config.LoadSettings("")
		if err != nil {
			return -1, err
		}
		settings = s
	}

	reg := opts.Registry
	if reg == nil {
		reg = config.ResolveProfilesWith(settings.ProfilesDir)
	}

	profile, err := reg.Lookup(profileID)
	if err != nil {
		return -1, err
	}

	// Fail before any filesystem mutation when the editor is missing.
	if err := CheckEditorAvailable(settings.EditorBinary); err != nil {
		return -1, err
	}

	userDataDir, err := vscode.ApplyModeConfiguration(profile, settings)
	if err != nil {
		return -1, err
	}

	args := []string{"--user-data-dir", userDataDir}
	if opts.ExtensionsDir != "" {
		args = append(args, "--extensions-dir", opts.ExtensionsDir)
	}
	if opts.Workspace != "" {
		args = append(args, opts.Workspace)
	}

	runner := opts.Runner
	if runner == nil {
		runner = DefaultRunner
	}

	code, err := runner.Run(settings.EditorBinary, args)
	if err != nil {
		os.RemoveAll(userDataDir)
		return -1, fmt.Errorf("launching %s: %w", settings.EditorBinary, err)
	}
	return code, nil
}
