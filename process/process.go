// Package process defines the types, errors and interfaces shared by every
// backend of the winmem toolkit.
//
// A remote address space is always accessed through the Memory interface,
// the single funnel for cross-process byte transfer. Everything layered on
// top (typed access, pointer resolution, string decoding) lives in the
// process_memory package and works against any Memory implementation: a
// live process handle from process_windows or an in-memory snapshot from
// process_blob.
package process

import "errors"

var (
	// ErrProcessNotOpen is returned when an operation requiring an open
	// process is attempted before Open succeeded or after Close.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrShortTransfer is returned when the OS moved fewer bytes than
	// requested. Layered callers must treat this as total failure; the
	// destination contents are undefined and, for writes, the remote
	// memory may have been partially modified with no rollback.
	ErrShortTransfer = errors.New("short memory transfer")

	// ErrBitnessUnknown is returned by pointer-sized operations when the
	// target's pointer width could not be resolved. No default width is
	// ever assumed.
	ErrBitnessUnknown = errors.New("pointer width not resolved")

	// ErrDecode is returned when a buffer does not decode cleanly in the
	// requested string encoding. No partial or lossy result is produced.
	ErrDecode = errors.New("string decode failed")

	// ErrAddressOutOfRange is returned by bounded address spaces (such as
	// process_blob) when a transfer falls outside the mapped window.
	ErrAddressOutOfRange = errors.New("address out of range")
)
