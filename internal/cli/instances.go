package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/output"
	"github.com/kilomoco/kilomoco/internal/tui"
	"github.com/kilomoco/kilomoco/internal/tui/theme"
)

// InstanceListItem is the JSON shape of one detected instance.
type InstanceListItem struct {
	PID         int32  `json:"pid"`
	Workspace   string `json:"workspace,omitempty"`
	UserDataDir string `json:"user_data_dir"`
	Profile     string `json:"profile,omitempty"`
}

type instanceListResult struct {
	items []InstanceListItem
}

func (r instanceListResult) JSON() interface{} {
	return map[string]interface{}{"instances": r.items}
}

func (r instanceListResult) Text(w io.Writer) error {
	if len(r.items) == 0 {
		fmt.Fprintln(w, "No running VS Code instances with the Kilo extension detected.")
		return nil
	}

	useColor := output.ColorEnabled()
	t := theme.Current()
	pidStyle := lipgloss.NewStyle().Foreground(t.Overlay)
	profStyle := lipgloss.NewStyle().Foreground(t.Green)

	for _, item := range r.items {
		workspace := item.Workspace
		if workspace == "" {
			workspace = "(no workspace)"
		}
		profile := item.Profile
		if profile == "" {
			profile = "no profile"
		}
		if useColor {
			fmt.Fprintf(w, "%s  %s  %s\n",
				pidStyle.Render(fmt.Sprintf("pid %-7d", item.PID)),
				workspace,
				profStyle.Render(profile),
			)
		} else {
			fmt.Fprintf(w, "pid %-7d  %s  %s\n", item.PID, workspace, profile)
		}
	}
	return nil
}

func newInstancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "instances",
		Aliases: []string{"ps"},
		Short:   "List running VS Code instances and their reconciled profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstances()
		},
	}
}

func runInstances() error {
	reg := config.ResolveProfilesWith(cfg.ProfilesDir)
	rows := tui.DetectRows(nil, reg, cfg)

	items := make([]InstanceListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, InstanceListItem{
			PID:         row.Instance.PID,
			Workspace:   row.Instance.Workspace,
			UserDataDir: row.Instance.UserDataDir,
			Profile:     row.ProfileID,
		})
	}

	return formatter().Output(instanceListResult{items: items})
}
