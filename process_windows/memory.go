//go:build windows

package process_windows

import (
	"fmt"

	"golang.org/x/sys/windows"

	"winmem/process"
)

// ReadMemory reads exactly size bytes of the target at addr. An
// inaccessible range, a closed handle or a short read all fail; the caller
// never sees truncated or zero-padded data.
func (p *Process) ReadMemory(addr process.Address, size process.Size) ([]byte, error) {
	if p.handle == 0 {
		return nil, process.ErrProcessNotOpen
	}
	if size == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	var read uintptr
	if err := windows.ReadProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(size), &read); err != nil {
		return nil, fmt.Errorf("ReadProcessMemory %d bytes at %#x: %w", size, uint64(addr), err)
	}
	if read != uintptr(size) {
		return nil, process.ErrShortTransfer
	}
	return buf, nil
}

// WriteMemory writes all of data into the target at addr. A short write is
// an error even though some bytes may have landed; the remote range is not
// rolled back.
func (p *Process) WriteMemory(addr process.Address, data []byte) error {
	if p.handle == 0 {
		return process.ErrProcessNotOpen
	}
	if len(data) == 0 {
		return nil
	}

	var written uintptr
	if err := windows.WriteProcessMemory(p.handle, uintptr(addr), &data[0], uintptr(len(data)), &written); err != nil {
		return fmt.Errorf("WriteProcessMemory %d bytes at %#x: %w", len(data), uint64(addr), err)
	}
	if written != uintptr(len(data)) {
		return process.ErrShortTransfer
	}
	return nil
}
