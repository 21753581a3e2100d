// Package process_blob provides an in-memory address space: a writable,
// bounds-checked window over a byte slice with a declared pointer width.
// It backs the portable tests of the toolkit and offline inspection of
// memory captured from a live process.
package process_blob

import (
	"winmem/process"
)

// Blob maps the byte range [base, base+len(data)) of a pretend target.
type Blob struct {
	base process.Address
	data []byte
	is64 bool
}

var _ process.MemoryBitness = (*Blob)(nil)

// New wraps data as the contents of the target's memory starting at base.
// The slice is used directly, not copied.
func New(base process.Address, data []byte, is64 bool) *Blob {
	return &Blob{base: base, data: data, is64: is64}
}

// NewZeroed allocates a zero-filled blob of size bytes at base.
func NewZeroed(base process.Address, size process.Size, is64 bool) *Blob {
	return New(base, make([]byte, size), is64)
}

// Base returns the lowest mapped address.
func (b *Blob) Base() process.Address {
	return b.base
}

// Data returns the backing slice.
func (b *Blob) Data() []byte {
	return b.data
}

// Is64Bit reports the declared pointer width. It never fails.
func (b *Blob) Is64Bit() (bool, error) {
	return b.is64, nil
}

// ReadMemory returns a copy of size bytes at addr, or
// process.ErrAddressOutOfRange if any part of the range is unmapped.
func (b *Blob) ReadMemory(addr process.Address, size process.Size) ([]byte, error) {
	if err := b.check(addr, size); err != nil {
		return nil, err
	}
	off := addr - b.base
	out := make([]byte, size)
	copy(out, b.data[off:])
	return out, nil
}

// WriteMemory copies data into the window at addr, all or nothing.
func (b *Blob) WriteMemory(addr process.Address, data []byte) error {
	if err := b.check(addr, process.Size(len(data))); err != nil {
		return err
	}
	copy(b.data[addr-b.base:], data)
	return nil
}

func (b *Blob) check(addr process.Address, size process.Size) error {
	if addr < b.base {
		return process.ErrAddressOutOfRange
	}
	// Compared separately so a range ending past 2^64 cannot wrap around
	// the bounds check and panic the slice below.
	off := process.Size(addr - b.base)
	if off > process.Size(len(b.data)) || size > process.Size(len(b.data))-off {
		return process.ErrAddressOutOfRange
	}
	return nil
}
