// Package tui implements the interactive profile selector.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/tui/styles"
	"github.com/kilomoco/kilomoco/internal/tui/theme"
	"github.com/kilomoco/kilomoco/internal/vscode"
)

// InstanceRow pairs a detected instance with its reconciled profile id.
type InstanceRow struct {
	Instance  vscode.Instance
	ProfileID string // empty when no profile matched
}

// AnimationTickMsg drives the shimmer animation.
type AnimationTickMsg time.Time

// registryMsg delivers a re-resolved registry (from the profile watcher).
type registryMsg config.Registry

// instancesMsg delivers a refreshed instance list.
type instancesMsg []InstanceRow

// ProfileSelector is a TUI for picking a profile to launch.
type ProfileSelector struct {
	profiles  []*config.Profile
	instances []InstanceRow
	cursor    int
	selected  string
	quitting  bool
	width     int
	height    int
	animTick  int

	refresh func() tea.Msg // re-detects instances
	theme   theme.Theme
}

// SelectorKeyMap defines keybindings for the selector.
type SelectorKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var selectorKeys = SelectorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

func sortProfiles(reg config.Registry) []*config.Profile {
	profiles := make([]*config.Profile, 0, len(reg))
	for _, p := range reg {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

// NewProfileSelector creates a selector over the given registry.
func NewProfileSelector(reg config.Registry, instances []InstanceRow, refresh func() tea.Msg) ProfileSelector {
	return ProfileSelector{
		profiles:  sortProfiles(reg),
		instances: instances,
		refresh:   refresh,
		width:     80,
		height:    24,
		theme:     theme.Current(),
	}
}

// Init implements tea.Model.
func (s ProfileSelector) Init() tea.Cmd {
	return s.tick()
}

func (s ProfileSelector) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// Update implements tea.Model.
func (s ProfileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case AnimationTickMsg:
		s.animTick++
		return s, s.tick()

	case registryMsg:
		s.profiles = sortProfiles(config.Registry(msg))
		if s.cursor >= len(s.profiles) {
			s.cursor = len(s.profiles) - 1
		}
		if s.cursor < 0 {
			s.cursor = 0
		}
		return s, nil

	case instancesMsg:
		s.instances = msg
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, selectorKeys.Quit):
			s.quitting = true
			return s, tea.Quit

		case key.Matches(msg, selectorKeys.Up):
			if s.cursor > 0 {
				s.cursor--
			}

		case key.Matches(msg, selectorKeys.Down):
			if s.cursor < len(s.profiles)-1 {
				s.cursor++
			}

		case key.Matches(msg, selectorKeys.Refresh):
			if s.refresh != nil {
				return s, s.refresh
			}

		case key.Matches(msg, selectorKeys.Select):
			if len(s.profiles) > 0 {
				s.selected = s.profiles[s.cursor].ID
				return s, tea.Quit
			}

		default:
			// Quick select with numbers 1-9.
			if n := quickSelectIndex(msg.String()); n >= 0 && n < len(s.profiles) {
				s.cursor = n
				s.selected = s.profiles[n].ID
				return s, tea.Quit
			}
		}
	}

	return s, nil
}

func quickSelectIndex(keyStr string) int {
	if len(keyStr) == 1 && keyStr[0] >= '1' && keyStr[0] <= '9' {
		return int(keyStr[0] - '1')
	}
	return -1
}

// View implements tea.Model.
func (s ProfileSelector) View() string {
	if s.quitting || s.selected != "" {
		return ""
	}

	t := s.theme
	var b strings.Builder

	boxWidth := s.width - 6
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 45 {
		boxWidth = 45
	}

	b.WriteString("\n")

	title := styles.Shimmer("◆  kilomoco — Select Profile", s.animTick, string(t.Blue), string(t.Lavender), string(t.Mauve))
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + styles.GradientDivider(boxWidth, string(t.Blue), string(t.Mauve)) + "\n\n")

	if len(s.profiles) == 0 {
		emptyText := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render("No profiles found")
		b.WriteString("  " + emptyText + "\n\n")
	} else {
		for i, p := range s.profiles {
			isSelected := i == s.cursor

			var line strings.Builder
			if isSelected {
				pointer := styles.Shimmer("❯", s.animTick, string(t.Pink), string(t.Mauve))
				line.WriteString(pointer + " ")
			} else {
				line.WriteString("  ")
			}

			if i < 9 {
				numStyle := lipgloss.NewStyle().
					Foreground(t.Overlay).
					Background(t.Surface0)
				line.WriteString(numStyle.Render(fmt.Sprintf("%d", i+1)) + " ")
			} else {
				line.WriteString("  ")
			}

			if isSelected {
				line.WriteString(styles.GradientText(p.ID, string(t.Pink), string(t.Rosewater)))
			} else {
				line.WriteString(lipgloss.NewStyle().Foreground(t.Text).Render(p.ID))
			}

			nameBadge := lipgloss.NewStyle().Foreground(t.Subtext).Render("  " + p.Name)
			line.WriteString(nameBadge)

			b.WriteString(line.String() + "\n")
		}
		b.WriteString("\n")

		b.WriteString(s.renderDetails(boxWidth))
	}

	b.WriteString(s.renderInstances(boxWidth))

	b.WriteString("  " + styles.GradientDivider(boxWidth, string(t.Surface2), string(t.Surface1)) + "\n\n")
	b.WriteString("  " + s.renderHelpBar() + "\n")

	return b.String()
}

func (s ProfileSelector) renderDetails(boxWidth int) string {
	if len(s.profiles) == 0 {
		return ""
	}
	p := s.profiles[s.cursor]
	t := s.theme

	var b strings.Builder
	header := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(t.Teal)
	modelStyle := lipgloss.NewStyle().Foreground(t.Text)

	b.WriteString("  " + header.Render(p.Name) + "\n")
	if p.Description != "" {
		desc := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render(p.Description)
		b.WriteString("  " + desc + "\n")
	}

	modes := make([]string, 0, len(p.Modes))
	for mode := range p.Modes {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		b.WriteString(fmt.Sprintf("    %s %s\n",
			modeStyle.Render(fmt.Sprintf("%-13s", mode)),
			modelStyle.Render(p.Modes[mode]),
		))
	}
	b.WriteString("\n")
	return b.String()
}

func (s ProfileSelector) renderInstances(boxWidth int) string {
	t := s.theme
	var b strings.Builder

	header := lipgloss.NewStyle().Foreground(t.Subtext).Bold(true)
	b.WriteString("  " + header.Render("Running instances") + "\n")

	if len(s.instances) == 0 {
		none := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render("none detected")
		b.WriteString("    " + none + "\n\n")
		return b.String()
	}

	pidStyle := lipgloss.NewStyle().Foreground(t.Overlay)
	wsStyle := lipgloss.NewStyle().Foreground(t.Text)
	profStyle := lipgloss.NewStyle().Foreground(t.Green)
	noneStyle := lipgloss.NewStyle().Foreground(t.Overlay)

	for _, row := range s.instances {
		workspace := row.Instance.Workspace
		if workspace == "" {
			workspace = "(no workspace)"
		}
		profileLabel := noneStyle.Render("no profile")
		if row.ProfileID != "" {
			profileLabel = profStyle.Render(row.ProfileID)
		}
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			pidStyle.Render(fmt.Sprintf("pid %-7d", row.Instance.PID)),
			wsStyle.Render(workspace),
			profileLabel,
		))
	}
	b.WriteString("\n")
	return b.String()
}

func (s ProfileSelector) renderHelpBar() string {
	t := s.theme

	keyStyle := lipgloss.NewStyle().
		Background(t.Surface0).
		Foreground(t.Text).
		Bold(true).
		Padding(0, 1)
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay)

	items := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "navigate"},
		{"1-9", "quick select"},
		{"Enter", "launch"},
		{"r", "refresh"},
		{"Esc", "quit"},
	}

	var parts []string
	for _, item := range items {
		parts = append(parts, keyStyle.Render(item.key)+" "+descStyle.Render(item.desc))
	}
	return strings.Join(parts, "  ")
}

// Selected returns the selected profile id (empty if cancelled).
func (s ProfileSelector) Selected() string {
	return s.selected
}
