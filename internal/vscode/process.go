// Package vscode handles VS Code instance detection, settings generation and
// reconciliation of running instances back to known profiles.
package vscode

import (
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo is the snapshot of one live process that detection needs.
type ProcessInfo struct {
	PID     int32
	Name    string
	Cmdline []string
}

// ProcessLister enumerates live processes. Detection logic depends only on
// this interface so it stays OS-agnostic and testable with fakes.
type ProcessLister interface {
	Processes() ([]ProcessInfo, error)
}

// SystemProcessLister lists processes from the OS process table.
type SystemProcessLister struct{}

// Processes returns a snapshot of all live processes. Processes that vanish
// or deny access between enumeration and inspection are skipped; concurrent
// process churn is expected.
func (SystemProcessLister) Processes() ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		cmdline, err := p.CmdlineSlice()
		if err != nil {
			continue
		}
		infos = append(infos, ProcessInfo{PID: p.Pid, Name: name, Cmdline: cmdline})
	}
	return infos, nil
}

// DefaultLister is the process lister used by package-level helpers.
var DefaultLister ProcessLister = SystemProcessLister{}
