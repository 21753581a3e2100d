//go:build windows

package process_windows

import (
	"strings"

	"golang.org/x/sys/windows"

	"winmem/process"
)

const maxProcesses = 1024

// Pids lists the process identifiers on the system, capped at 1024.
func Pids() ([]process.ProcessID, error) {
	pids := make([]uint32, maxProcesses)
	var bytesReturned uint32
	if err := windows.EnumProcesses(pids, &bytesReturned); err != nil {
		return nil, err
	}
	count := int(bytesReturned / 4)
	out := make([]process.ProcessID, count)
	for i, pid := range pids[:count] {
		out[i] = process.ProcessID(pid)
	}
	return out, nil
}

// Processes opens every process the caller can acquire with full memory
// access. Processes that refuse the open (typically access denied or
// already gone) are skipped. The caller owns the returned handles.
func Processes() ([]*Process, error) {
	pids, err := Pids()
	if err != nil {
		return nil, err
	}

	var procs []*Process
	for _, pid := range pids {
		p, err := NewWithPID(pid)
		if err != nil {
			continue
		}
		procs = append(procs, p)
	}
	return procs, nil
}

// FindProcesses opens the processes whose image name matches name,
// case-insensitively. Handles to non-matching processes are closed before
// returning.
func FindProcesses(name string) ([]*Process, error) {
	procs, err := Processes()
	if err != nil {
		return nil, err
	}

	var matched []*Process
	for _, p := range procs {
		pn, err := p.Name()
		if err == nil && strings.EqualFold(pn, name) {
			matched = append(matched, p)
			continue
		}
		p.Close()
	}
	return matched, nil
}
