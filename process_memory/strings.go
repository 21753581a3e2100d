package process_memory

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"winmem/process"
)

// ReadString reads a fixed-capacity string buffer at addr and decodes it
// according to typ. capacity is counted in code units of the mode: bytes
// for StringUTF8, 16-bit units for StringUTF16 and StringAuto. The full
// capacity is transferred in one read; decoding stops at the first null.
func ReadString(m process.Memory, addr process.Address, capacity int, typ process.StringType) (string, error) {
	switch typ {
	case process.StringUTF16:
		return ReadStringUTF16(m, addr, capacity)
	case process.StringAuto:
		return ReadStringAuto(m, addr, capacity)
	default:
		return ReadStringUTF8(m, addr, capacity)
	}
}

// ReadStringUTF8 reads capacity bytes at addr and strictly decodes the
// null-terminated prefix as UTF-8.
func ReadStringUTF8(m process.Memory, addr process.Address, capacity int) (string, error) {
	buf := make([]byte, capacity)
	if err := ReadBuf(m, addr, buf); err != nil {
		return "", err
	}
	return DecodeUTF8(buf)
}

// ReadStringUTF16 reads capacity 16-bit units at addr and decodes the
// null-terminated prefix as UTF-16.
func ReadStringUTF16(m process.Memory, addr process.Address, capacity int) (string, error) {
	buf := make([]uint16, capacity)
	if err := ReadBuf(m, addr, buf); err != nil {
		return "", err
	}
	return DecodeUTF16(buf)
}

// ReadStringAuto reads capacity 16-bit units at addr and decodes them with
// the DecodeAuto heuristic.
func ReadStringAuto(m process.Memory, addr process.Address, capacity int) (string, error) {
	buf := make([]uint16, capacity)
	if err := ReadBuf(m, addr, buf); err != nil {
		return "", err
	}
	return DecodeAuto(buf)
}

// DecodeUTF8 decodes buf up to its first zero byte (or the whole buffer if
// none) as strict UTF-8. Invalid sequences fail; nothing lossy is returned.
func DecodeUTF8(buf []byte) (string, error) {
	if end := bytes.IndexByte(buf, 0); end >= 0 {
		buf = buf[:end]
	}
	if !utf8.Valid(buf) {
		return "", process.ErrDecode
	}
	return string(buf), nil
}

// DecodeUTF16 decodes buf up to its first zero unit (or the whole buffer
// if none) as UTF-16. Unpaired surrogates fail; the replacement-rune
// substitution done by unicode/utf16 is never exposed.
func DecodeUTF16(buf []uint16) (string, error) {
	end := len(buf)
	for i, u := range buf {
		if u == 0 {
			end = i
			break
		}
	}
	units := buf[:end]
	if !validUTF16(units) {
		return "", process.ErrDecode
	}
	return string(utf16.Decode(units)), nil
}

// DecodeAuto chooses between the two encodings by inspecting the raw bytes
// of buf: if bytes 1 and 3 are both zero the buffer is decoded as UTF-16,
// otherwise as UTF-8. Buffers shorter than four bytes always go the UTF-8
// way.
//
// This is a tie-break for ASCII-range UTF-16 (the common case for OS-native
// wide strings) against dense UTF-8, not a general encoding sniffer: short
// strings, non-ASCII UTF-16 and binary data can be misclassified. Callers
// depend on this exact behavior; pick an explicit mode if it is wrong for
// your data.
func DecodeAuto(buf []uint16) (string, error) {
	if len(buf) == 0 {
		return "", nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(buf)*2)
	if len(raw) >= 4 && raw[1] == 0 && raw[3] == 0 {
		return DecodeUTF16(buf)
	}
	return DecodeUTF8(raw)
}

func validUTF16(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) {
				return false
			}
			if next := units[i+1]; next < 0xDC00 || next >= 0xE000 {
				return false
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return false
		}
	}
	return true
}
