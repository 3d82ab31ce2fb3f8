package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/vscode"
)

// DetectRows detects running instances and reconciles each against reg.
func DetectRows(lister vscode.ProcessLister, reg config.Registry, settings *config.Settings) []InstanceRow {
	instances := vscode.DetectInstances(lister, settings)
	rows := make([]InstanceRow, 0, len(instances))
	for _, inst := range instances {
		id, _ := vscode.ProfileForInstance(inst, reg, settings)
		rows = append(rows, InstanceRow{Instance: inst, ProfileID: id})
	}
	return rows
}

// RunProfileSelector runs the interactive selector and returns the selected
// profile id, or "" when the user cancelled. The profile list live-refreshes
// when a profiles directory changes on disk.
func RunProfileSelector(settings *config.Settings) (string, error) {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	reg := config.ResolveProfilesWith(settings.ProfilesDir)
	rows := DetectRows(nil, reg, settings)

	refresh := func() tea.Msg {
		return instancesMsg(DetectRows(nil, config.ResolveProfilesWith(settings.ProfilesDir), settings))
	}

	model := NewProfileSelector(reg, rows, refresh)
	p := tea.NewProgram(model)

	stopWatch, err := config.WatchProfiles(settings.ProfilesDir, func(updated config.Registry) {
		p.Send(registryMsg(updated))
	})
	if err == nil {
		defer stopWatch()
	}

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result := finalModel.(ProfileSelector)
	return result.Selected(), nil
}
