// Package search scans remote memory for byte patterns. Patterns are the
// usual AOB form: hex bytes with ?? wildcards, e.g. "48 8B ?? ?? 89 05".
// All reads go through the raw transfer funnel, chunked so large regions
// do not need one giant transfer.
package search

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"winmem/process"
)

// Pattern is a compiled byte pattern. A false mask entry matches any byte.
type Pattern struct {
	bytes []byte
	mask  []bool
}

// Len returns the pattern length in bytes.
func (p Pattern) Len() int {
	return len(p.bytes)
}

// ParsePattern compiles a whitespace-separated hex pattern. "??" (or "?")
// marks a wildcard byte.
func ParsePattern(s string) (Pattern, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Pattern{}, fmt.Errorf("empty pattern")
	}

	p := Pattern{
		bytes: make([]byte, len(fields)),
		mask:  make([]bool, len(fields)),
	}
	for i, f := range fields {
		if f == "?" || f == "??" {
			continue
		}
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern byte %d %q: %w", i, f, err)
		}
		p.bytes[i] = byte(v)
		p.mask[i] = true
	}
	return p, nil
}

// PatternFromValue builds an exact pattern from the byte representation of
// a plain-data value.
func PatternFromValue[T any](v T) Pattern {
	size := int(unsafe.Sizeof(v))
	p := Pattern{
		bytes: make([]byte, size),
		mask:  make([]bool, size),
	}
	copy(p.bytes, unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
	for i := range p.mask {
		p.mask[i] = true
	}
	return p
}

func (p Pattern) matchAt(data []byte, i int) bool {
	for j := range p.bytes {
		if p.mask[j] && data[i+j] != p.bytes[j] {
			return false
		}
	}
	return true
}

const chunkSize = 64 * 1024

// Scan reads [start, start+length) through m and returns the address of
// every pattern match. Chunks overlap by Len()-1 bytes so matches crossing
// a chunk boundary are still found. A failed read aborts the scan; the
// caller is expected to scan a known-mapped region (a module image, an
// allocation it made).
func Scan(m process.Memory, start process.Address, length process.Size, pat Pattern) ([]process.Address, error) {
	if pat.Len() == 0 || process.Size(pat.Len()) > length {
		return nil, nil
	}
	if pat.Len() > chunkSize {
		return nil, fmt.Errorf("pattern of %d bytes exceeds the %d byte scan chunk", pat.Len(), chunkSize)
	}

	var results []process.Address
	overlap := process.Size(pat.Len() - 1)

	for offset := process.Size(0); offset+process.Size(pat.Len()) <= length; {
		size := process.Size(chunkSize)
		if offset+size > length {
			size = length - offset
		}

		data, err := m.ReadMemory(start+process.Address(offset), size)
		if err != nil {
			return nil, fmt.Errorf("scan at %#x: %w", uint64(start)+uint64(offset), err)
		}

		for i := 0; i+pat.Len() <= len(data); i++ {
			if pat.matchAt(data, i) {
				results = append(results, start+process.Address(offset)+process.Address(i))
			}
		}

		if offset+size >= length {
			break
		}
		offset += size - overlap
	}
	return results, nil
}

// ScanFirst returns the address of the first match in [start,
// start+length), or an error if the pattern does not occur.
func ScanFirst(m process.Memory, start process.Address, length process.Size, pat Pattern) (process.Address, error) {
	results, err := Scan(m, start, length, pat)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("pattern not found in %#x..%#x", uint64(start), uint64(start)+uint64(length))
	}
	return results[0], nil
}
