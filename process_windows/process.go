//go:build windows

// Package process_windows implements the process interfaces against the
// Win32 API: handle lifecycle, raw memory transfer, pointer-width
// resolution, module enumeration and remote page allocation.
//
// Caches on Process and Module (pointer width, names, module info) are
// memoized on first success and not synchronized. Confine a handle to one
// goroutine or wrap it in external locking before sharing it.
package process_windows

import (
	"fmt"

	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"

	"winmem/coloransi"
	"winmem/process"
	"winmem/process_memory"
)

// Access rights requested on open: metadata queries plus read, write and
// the VM operations page allocation needs.
const openAccess = windows.PROCESS_QUERY_INFORMATION |
	windows.PROCESS_VM_READ |
	windows.PROCESS_VM_WRITE |
	windows.PROCESS_VM_OPERATION

// Not wrapped by x/sys/windows as plain constants.
const (
	// STILL_ACTIVE exit code, also returned for a process that exited
	// with code 259.
	stillActive = 259

	waitTimeout = 0x00000102
)

const nameCapacity = 255

// Process owns one Win32 process handle. The handle is valid from a
// successful Open until Close; Close releases it exactly once.
type Process struct {
	pid    process.ProcessID
	handle windows.Handle
	log    *logger.Logger

	// lazy caches, write-once on first success
	name    *string
	bitness process.BitnessCache
}

var _ process.Process = (*Process)(nil)

// New returns an unopened Process.
func New() *Process {
	return &Process{
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open")),
	}
}

// NewWithPID creates a Process and opens it with the given pid.
func NewWithPID(pid process.ProcessID) (*Process, error) {
	p := New()
	if err := p.Open(pid); err != nil {
		return nil, err
	}
	return p, nil
}

// Open acquires a handle on pid with read/write/operation access.
func (p *Process) Open(pid process.ProcessID) error {
	if p.handle != 0 {
		return fmt.Errorf("process %d already open", p.pid)
	}

	handle, err := windows.OpenProcess(openAccess, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("OpenProcess %d: %w", pid, err)
	}

	p.pid = pid
	p.handle = handle
	p.log = logger.NewLogger(coloransi.Color(coloransi.ColorFrom(uint64(pid)), coloransi.ColorOrange, fmt.Sprintf("process-%d", pid)))
	p.log.Infoln("process opened")
	return nil
}

// Close releases the handle. Calling Close on an already-closed Process is
// a no-op, so the OS resource is released exactly once.
func (p *Process) Close() error {
	if p.handle == 0 {
		return nil
	}
	if err := windows.CloseHandle(p.handle); err != nil {
		return fmt.Errorf("CloseHandle: %w", err)
	}
	p.handle = 0
	p.log.Infoln("process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))
	return nil
}

// Pid returns the process identifier this handle was opened for.
func (p *Process) Pid() process.ProcessID {
	return p.pid
}

// Is64Bit reports whether the target uses 8-byte pointers. The underlying
// IsWow64Process query runs once; the answer is cached for the handle's
// lifetime. A failed query is not cached and is retried on the next call.
//
// A process that is not running under WOW64 is taken to be 64-bit, which
// misreports native 32-bit processes on a 32-bit OS; the assumed memory
// model here is a 64-bit host.
func (p *Process) Is64Bit() (bool, error) {
	return p.bitness.Resolve(func() (bool, error) {
		if p.handle == 0 {
			return false, process.ErrProcessNotOpen
		}
		var wow64 bool
		if err := windows.IsWow64Process(p.handle, &wow64); err != nil {
			return false, fmt.Errorf("IsWow64Process: %w", err)
		}
		return !wow64, nil
	})
}

// Name returns the target's image name, decoded from UTF-16 and cached
// after the first successful decode. Image names cannot change for the
// life of a process, so the cache is never invalidated.
func (p *Process) Name() (string, error) {
	if p.name != nil {
		return *p.name, nil
	}
	if p.handle == 0 {
		return "", process.ErrProcessNotOpen
	}

	// A zeroed fixed-capacity buffer; GetModuleBaseName with a zero module
	// handle names the process image itself. The buffer stays
	// null-terminated because the capacity starts zero-filled.
	buf := make([]uint16, nameCapacity)
	if err := windows.GetModuleBaseName(p.handle, 0, &buf[0], nameCapacity); err != nil {
		return "", fmt.Errorf("GetModuleBaseName: %w", err)
	}
	name, err := process_memory.DecodeUTF16(buf)
	if err != nil {
		return "", err
	}
	p.name = &name
	return name, nil
}

// IsAlive polls whether the target is still running. A target that exited
// with the STILL_ACTIVE code is disambiguated with a zero-timeout wait on
// the handle.
func (p *Process) IsAlive() (bool, error) {
	if p.handle == 0 {
		return false, process.ErrProcessNotOpen
	}

	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return false, fmt.Errorf("GetExitCodeProcess: %w", err)
	}
	if code != stillActive {
		return false, nil
	}

	event, err := windows.WaitForSingleObject(p.handle, 0)
	if err != nil {
		return false, fmt.Errorf("WaitForSingleObject: %w", err)
	}
	switch event {
	case waitTimeout:
		return true, nil
	case windows.WAIT_OBJECT_0:
		return false, nil
	}
	return false, fmt.Errorf("WaitForSingleObject: unexpected event %#x", event)
}
