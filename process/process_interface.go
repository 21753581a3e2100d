package process

// Memory is the raw transfer funnel for one remote address space. Every
// higher-level operation in this module is expressed as one or more calls
// through this interface.
type Memory interface {
	// ReadMemory reads exactly size bytes at addr. A short read is an
	// error, never a truncated or zero-padded success.
	ReadMemory(addr Address, size Size) ([]byte, error)

	// WriteMemory writes all of data at addr. A short write is an error
	// even though some bytes may already have landed; the remote range is
	// not restored.
	WriteMemory(addr Address, data []byte) error
}

// Bitness reports whether the target process uses 8-byte pointers.
type Bitness interface {
	Is64Bit() (bool, error)
}

// MemoryBitness is what pointer-sized operations need: raw transfer plus
// the target's pointer width.
type MemoryBitness interface {
	Memory
	Bitness
}

// Process is the full address-space capability: raw transfer, pointer
// width, identity, liveness and page allocation for one remote process.
//
// Implementations memoize pointer width and names on first success and do
// not synchronize those caches; share a Process across goroutines only
// with external locking.
type Process interface {
	MemoryBitness

	// Open acquires the OS resource for pid.
	Open(pid ProcessID) error

	// Close releases the OS resource. Releasing happens exactly once;
	// closing an already-closed Process is a no-op.
	Close() error

	// Pid returns the process identifier this capability was opened for.
	Pid() ProcessID

	// Name returns the target's image name, cached after the first
	// successful decode.
	Name() (string, error)

	// IsAlive polls whether the target is still running.
	IsAlive() (bool, error)

	// Allocate commits a readable, writable and executable region of at
	// least size bytes in the target and returns its base.
	Allocate(size Size) (Address, error)

	// Free releases a region previously returned by Allocate. Passing any
	// other address is undefined at the OS boundary and is not validated
	// here; outstanding allocations are not tracked.
	Free(addr Address) error
}
