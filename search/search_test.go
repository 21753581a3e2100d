package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"winmem/process"
	"winmem/process_blob"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("48 8B ?? C3")
	require.NoError(t, err)
	require.Equal(t, 4, p.Len())

	_, err = ParsePattern("")
	require.Error(t, err)

	_, err = ParsePattern("48 GG")
	require.Error(t, err)
}

func TestScanWithWildcards(t *testing.T) {
	data := make([]byte, 0x100)
	copy(data[0x10:], []byte{0x48, 0x8B, 0x05, 0xC3})
	copy(data[0x80:], []byte{0x48, 0x8B, 0xFF, 0xC3})
	b := process_blob.New(0x4000, data, true)

	pat, err := ParsePattern("48 8B ?? C3")
	require.NoError(t, err)

	results, err := Scan(b, 0x4000, 0x100, pat)
	require.NoError(t, err)
	require.Equal(t, []process.Address{0x4010, 0x4080}, results)

	first, err := ScanFirst(b, 0x4000, 0x100, pat)
	require.NoError(t, err)
	require.Equal(t, process.Address(0x4010), first)
}

func TestScanAcrossChunkBoundary(t *testing.T) {
	// Place a match straddling the 64 KiB chunk edge so the overlap logic
	// is exercised.
	data := make([]byte, chunkSize+0x100)
	copy(data[chunkSize-2:], []byte{0xAA, 0xBB, 0xCC, 0xDD})
	b := process_blob.New(0x10000, data, true)

	pat, err := ParsePattern("AA BB CC DD")
	require.NoError(t, err)

	results, err := Scan(b, 0x10000, process.Size(len(data)), pat)
	require.NoError(t, err)
	require.Equal(t, []process.Address{0x10000 + process.Address(chunkSize) - 2}, results)
}

func TestScanRejectsOversizedPattern(t *testing.T) {
	b := process_blob.NewZeroed(0x4000, process.Size(2*chunkSize), true)

	pat, err := ParsePattern(strings.TrimSpace(strings.Repeat("00 ", chunkSize+1)))
	require.NoError(t, err)

	_, err = Scan(b, 0x4000, process.Size(2*chunkSize), pat)
	require.Error(t, err, "a pattern longer than one chunk cannot silently match nothing")
}

func TestScanNotFound(t *testing.T) {
	b := process_blob.NewZeroed(0x4000, 0x40, true)

	pat := PatternFromValue(uint32(0xDEADBEEF))
	results, err := Scan(b, 0x4000, 0x40, pat)
	require.NoError(t, err)
	require.Empty(t, results)

	_, err = ScanFirst(b, 0x4000, 0x40, pat)
	require.Error(t, err)
}

func TestPatternFromValue(t *testing.T) {
	data := make([]byte, 0x40)
	// 0xDEADBEEF little-endian at offset 0x20.
	copy(data[0x20:], []byte{0xEF, 0xBE, 0xAD, 0xDE})
	b := process_blob.New(0x4000, data, true)

	first, err := ScanFirst(b, 0x4000, 0x40, PatternFromValue(uint32(0xDEADBEEF)))
	require.NoError(t, err)
	require.Equal(t, process.Address(0x4020), first)
}

func TestScanPropagatesReadFailure(t *testing.T) {
	b := process_blob.NewZeroed(0x4000, 0x40, true)

	pat, err := ParsePattern("01 02")
	require.NoError(t, err)

	// Region extends past the mapped window.
	_, err = Scan(b, 0x4000, 0x80, pat)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)
}
