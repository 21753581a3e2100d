//go:build windows

package process_windows

import (
	"fmt"

	"golang.org/x/sys/windows"

	"winmem/process"
)

// VirtualAllocEx and VirtualFreeEx have no wrappers in x/sys/windows, so
// they go through lazy procs.
var (
	modkernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAllocEx = modkernel32.NewProc("VirtualAllocEx")
	procVirtualFreeEx  = modkernel32.NewProc("VirtualFreeEx")
)

// Allocate commits a readable, writable and executable region of at least
// size bytes in the target and returns its base address.
func (p *Process) Allocate(size process.Size) (process.Address, error) {
	if p.handle == 0 {
		return 0, process.ErrProcessNotOpen
	}

	addr, _, err := procVirtualAllocEx.Call(
		uintptr(p.handle),
		0,
		uintptr(size),
		windows.MEM_COMMIT,
		windows.PAGE_EXECUTE_READWRITE,
	)
	if addr == 0 {
		return 0, fmt.Errorf("VirtualAllocEx %d bytes: %w", size, err)
	}
	p.log.Infoln(fmt.Sprintf("allocated %d bytes at %#x", size, uint64(addr)))
	return process.Address(addr), nil
}

// Free releases an entire region previously returned by Allocate. Passing
// any other address is undefined at the OS boundary and is not validated
// here; nothing tracks outstanding allocations, so double-free protection
// is the caller's responsibility.
func (p *Process) Free(addr process.Address) error {
	if p.handle == 0 {
		return process.ErrProcessNotOpen
	}

	ret, _, err := procVirtualFreeEx.Call(
		uintptr(p.handle),
		uintptr(addr),
		0,
		windows.MEM_RELEASE,
	)
	if ret == 0 {
		return fmt.Errorf("VirtualFreeEx at %#x: %w", uint64(addr), err)
	}
	return nil
}
