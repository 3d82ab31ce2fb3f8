package vscode

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kilomoco/kilomoco/internal/config"
)

// Instance is a running VS Code process observed via the process table.
// Its lifetime is owned by the OS; this is a point-in-time snapshot.
type Instance struct {
	Workspace   string `json:"workspace,omitempty"`
	UserDataDir string `json:"user_data_dir"`
	HasKilo     bool   `json:"has_kilo"`
	PID         int32  `json:"pid"`
}

// DetectInstances returns all running editor instances that were launched
// with an explicit --user-data-dir and have the Kilo extension installed
// under it. Everything here is best-effort; a failed read drops the
// candidate, never the scan.
func DetectInstances(lister ProcessLister, settings *config.Settings) []Instance {
	if lister == nil {
		lister = DefaultLister
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}

	procs, err := lister.Processes()
	if err != nil {
		log.Debug().Err(err).Msg("process enumeration failed")
		return nil
	}

	binary := filepath.Base(settings.EditorBinary)

	var instances []Instance
	for _, proc := range procs {
		if proc.Name != binary {
			continue
		}

		userDataDir, workspace := parseCmdline(proc.Cmdline)
		if userDataDir == "" {
			continue
		}
		if !hasExtension(userDataDir, settings.ExtensionID) {
			continue
		}

		instances = append(instances, Instance{
			Workspace:   workspace,
			UserDataDir: userDataDir,
			HasKilo:     true,
			PID:         proc.PID,
		})
	}
	return instances
}

// parseCmdline extracts the --user-data-dir value and the workspace path
// (the first argument that is neither argv0 nor a flag) from an editor
// command line.
func parseCmdline(cmdline []string) (userDataDir, workspace string) {
	for i := 1; i < len(cmdline); i++ {
		arg := cmdline[i]
		switch {
		case arg == "--user-data-dir":
			if i+1 < len(cmdline) {
				userDataDir = cmdline[i+1]
				i++
			}
		case strings.HasPrefix(arg, "--user-data-dir="):
			userDataDir = strings.TrimPrefix(arg, "--user-data-dir=")
		case strings.HasPrefix(arg, "-"):
			// Some other flag; value-taking flags we don't know about are
			// indistinguishable from workspace paths, so leave them be.
		default:
			if workspace == "" {
				workspace = arg
			}
		}
	}
	return userDataDir, workspace
}

func hasExtension(userDataDir, extensionID string) bool {
	path := filepath.Join(userDataDir, "extensions", extensionID)
	_, err := os.Stat(path)
	return err == nil
}
