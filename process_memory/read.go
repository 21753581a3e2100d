// Package process_memory layers typed access, pointer resolution and
// string decoding on top of the raw transfer funnel. All functions work
// against any process.Memory, so the same code path serves a live Windows
// process and an in-memory snapshot.
//
// Type parameters must be plain-data types: fixed-size values with no
// pointers, slices, maps or strings in them. The byte layout transferred
// is the target's, read and reinterpreted verbatim.
package process_memory

import (
	"unsafe"

	"winmem/process"
)

// ReadValue reads one value of type T at addr. The transfer length is
// exactly the size of T; a short or failed transfer yields the zero value
// and an error, never a partially-initialized result.
func ReadValue[T any](m process.Memory, addr process.Address) (T, error) {
	var v T
	size := process.Size(unsafe.Sizeof(v))
	data, err := m.ReadMemory(addr, size)
	if err != nil {
		return v, err
	}
	if process.Size(len(data)) != size {
		return v, process.ErrShortTransfer
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(size)), data)
	return v, nil
}

// ReadBuf fills buf with len(buf) consecutive values of type T starting at
// addr. On error the contents of buf are undefined; there is no guaranteed
// partial fill.
func ReadBuf[T any](m process.Memory, addr process.Address, buf []T) error {
	if len(buf) == 0 {
		return nil
	}
	size := process.Size(unsafe.Sizeof(buf[0])) * process.Size(len(buf))
	data, err := m.ReadMemory(addr, size)
	if err != nil {
		return err
	}
	if process.Size(len(data)) != size {
		return process.ErrShortTransfer
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), int(size)), data)
	return nil
}

// ReadPointer reads a pointer-sized value at addr, 4 or 8 bytes per the
// target's resolved width, widened to Address. Unknown bitness aborts the
// read; no default width is assumed.
func ReadPointer(m process.MemoryBitness, addr process.Address) (process.Address, error) {
	is64, err := m.Is64Bit()
	if err != nil {
		return 0, err
	}
	if is64 {
		v, err := ReadValue[uint64](m, addr)
		if err != nil {
			return 0, err
		}
		return process.Address(v), nil
	}
	v, err := ReadValue[uint32](m, addr)
	if err != nil {
		return 0, err
	}
	return process.Address(v), nil
}

// DerefOffsets walks a pointer chain rooted at addr. The value at addr is
// dereferenced first; every offset except the last is then added to the
// current address and dereferenced in turn. The last offset is added
// without a final dereference, so it selects a member inside the structure
// the chain lands on. With no offsets the call degenerates to a single
// ReadPointer.
//
// Any failed hop aborts the whole chain; there is no partial result.
func DerefOffsets(m process.MemoryBitness, addr process.Address, offsets ...uint32) (process.Address, error) {
	current, err := ReadPointer(m, addr)
	if err != nil {
		return 0, err
	}
	if len(offsets) == 0 {
		return current, nil
	}
	last := offsets[len(offsets)-1]
	for _, off := range offsets[:len(offsets)-1] {
		current, err = ReadPointer(m, current+process.Address(off))
		if err != nil {
			return 0, err
		}
	}
	return current + process.Address(last), nil
}
