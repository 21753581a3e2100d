package process_memory

import (
	"unsafe"

	"winmem/process"
)

// WriteValue writes the exact byte representation of v at addr. A failed
// or short write is reported as an error; some bytes may still have
// landed, the remote range is not rolled back.
func WriteValue[T any](m process.Memory, addr process.Address, v T) error {
	size := int(unsafe.Sizeof(v))
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
	return m.WriteMemory(addr, data)
}

// WriteBuf writes len(buf) consecutive values of type T starting at addr,
// with the same partial-write caveat as WriteValue.
func WriteBuf[T any](m process.Memory, addr process.Address, buf []T) error {
	if len(buf) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(buf[0])) * len(buf)
	data := make([]byte, size)
	copy(data, unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), size))
	return m.WriteMemory(addr, data)
}
