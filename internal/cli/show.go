package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/output"
	"github.com/kilomoco/kilomoco/internal/tui/theme"
)

type profileShowResult struct {
	profile *config.Profile
}

func (r profileShowResult) JSON() interface{} {
	return r.profile
}

func (r profileShowResult) Text(w io.Writer) error {
	p := r.profile
	useColor := output.ColorEnabled()
	t := theme.Current()

	idStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)
	modeStyle := lipgloss.NewStyle().Foreground(t.Teal)

	if useColor {
		fmt.Fprintf(w, "%s  %s\n", idStyle.Render(p.ID), p.Name)
		if p.Description != "" {
			fmt.Fprintf(w, "%s\n", descStyle.Render(p.Description))
		}
	} else {
		fmt.Fprintf(w, "%s  %s\n", p.ID, p.Name)
		if p.Description != "" {
			fmt.Fprintf(w, "%s\n", p.Description)
		}
	}
	fmt.Fprintln(w)

	modes := make([]string, 0, len(p.Modes))
	for mode := range p.Modes {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		if useColor {
			fmt.Fprintf(w, "  %s %s\n", modeStyle.Render(fmt.Sprintf("%-13s", mode)), p.Modes[mode])
		} else {
			fmt.Fprintf(w, "  %-13s %s\n", mode, p.Modes[mode])
		}
	}
	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <profile-id>",
		Short: "Show a profile's mode/model mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := config.ResolveProfilesWith(cfg.ProfilesDir)
			p, err := reg.Lookup(args[0])
			if err != nil {
				return formatter().Error(profileError(err))
			}
			return formatter().Output(profileShowResult{profile: p})
		},
	}
}
