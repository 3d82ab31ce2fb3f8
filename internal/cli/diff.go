package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/output"
	"github.com/kilomoco/kilomoco/internal/vscode"
)

type diffResultWrapper struct {
	result *output.DiffResult
}

func (r diffResultWrapper) JSON() interface{} {
	return r.result
}

func (r diffResultWrapper) Text(w io.Writer) error {
	if r.result.Identical {
		fmt.Fprintf(w, "%s matches %s exactly.\n", r.result.Right, r.result.Left)
		return nil
	}
	fmt.Fprintf(w, "%s vs %s (similarity %.0f%%):\n\n", r.result.Left, r.result.Right, r.result.Similarity*100)
	fmt.Fprintln(w, r.result.UnifiedDiff)
	return nil
}

func newDiffCmd() *cobra.Command {
	var pid int32

	cmd := &cobra.Command{
		Use:   "diff <profile-id>",
		Short: "Compare a profile against a running instance's mode settings",
		Long: `Compare a profile's mode/model mapping against the mode settings persisted
by a running VS Code instance. With --pid the instance is selected by process
id; otherwise the first detected instance is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], pid)
		},
	}

	cmd.Flags().Int32Var(&pid, "pid", 0, "process id of the instance to compare against")
	return cmd
}

func runDiff(profileID string, pid int32) error {
	reg := config.ResolveProfilesWith(cfg.ProfilesDir)
	profile, err := reg.Lookup(profileID)
	if err != nil {
		return formatter().Error(profileError(err))
	}

	instances := vscode.DetectInstances(nil, cfg)
	if len(instances) == 0 {
		return formatter().Error(fmt.Errorf("no running instances to compare against"))
	}

	var inst *vscode.Instance
	if pid != 0 {
		for i := range instances {
			if instances[i].PID == pid {
				inst = &instances[i]
				break
			}
		}
		if inst == nil {
			return formatter().Error(fmt.Errorf("no detected instance with pid %d", pid))
		}
	} else {
		inst = &instances[0]
	}

	settingsPath := filepath.Join(inst.UserDataDir, "User", "settings.json")
	observed := vscode.ModeSettingsFromFile(settingsPath, cfg.Namespace)

	result := output.CompareModes(
		fmt.Sprintf("profile %s", profile.ID),
		profile.Modes,
		fmt.Sprintf("instance pid %d", inst.PID),
		observed,
	)
	return formatter().Output(diffResultWrapper{result: result})
}
