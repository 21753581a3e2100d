package process

// ProcessID identifies a process on the local system.
type ProcessID uint32

// Address is a location in the target's address space. It is never
// dereferenced by the controlling process; it is only ever handed back to
// a Memory implementation.
type Address uint64

// Size is a byte count for a memory transfer or allocation.
type Size uint64

// ModuleInfo is an immutable snapshot of one loaded module, queried
// atomically from a single OS call. Either all three fields are valid or
// the query failed and no ModuleInfo exists.
type ModuleInfo struct {
	Base       Address
	Size       uint32
	EntryPoint Address
}

// StringType selects the decoding mode for remote string reads.
type StringType int

const (
	// StringUTF8 decodes the buffer as null-terminated UTF-8.
	StringUTF8 StringType = iota

	// StringUTF16 decodes the buffer as null-terminated UTF-16.
	StringUTF16

	// StringAuto inspects the first bytes of the buffer and picks UTF-16
	// or UTF-8. See process_memory.DecodeAuto for the exact heuristic and
	// its limitations.
	StringAuto
)

func (t StringType) String() string {
	switch t {
	case StringUTF8:
		return "utf8"
	case StringUTF16:
		return "utf16"
	case StringAuto:
		return "auto"
	}
	return "unknown"
}
