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

// ProfileListItem is the JSON shape of one profile in list output.
type ProfileListItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Modes       map[string]string `json:"modes"`
}

type profileListResult struct {
	items []ProfileListItem
}

func (r profileListResult) JSON() interface{} {
	return map[string]interface{}{"profiles": r.items}
}

func (r profileListResult) Text(w io.Writer) error {
	if len(r.items) == 0 {
		fmt.Fprintln(w, "No profiles found.")
		return nil
	}

	useColor := output.ColorEnabled()
	t := theme.Current()
	idStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.Text)
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay)

	for _, item := range r.items {
		if useColor {
			fmt.Fprintf(w, "%s: %s - %s\n",
				idStyle.Render(item.ID),
				nameStyle.Render(item.Name),
				descStyle.Render(item.Description),
			)
		} else {
			fmt.Fprintf(w, "%s: %s - %s\n", item.ID, item.Name, item.Description)
		}
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List available profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	reg := config.ResolveProfilesWith(cfg.ProfilesDir)

	items := make([]ProfileListItem, 0, len(reg))
	for _, id := range reg.IDs() {
		p := reg[id]
		items = append(items, ProfileListItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Modes:       p.Modes,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return formatter().Output(profileListResult{items: items})
}
