package process_blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"winmem/process"
)

func TestBlobReadWrite(t *testing.T) {
	b := NewZeroed(0x2000, 0x100, true)

	require.NoError(t, b.WriteMemory(0x2010, []byte{1, 2, 3, 4}))
	data, err := b.ReadMemory(0x2010, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, data)

	// Reads are copies, not views.
	data[0] = 0xFF
	again, err := b.ReadMemory(0x2010, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, again)
}

func TestBlobBounds(t *testing.T) {
	b := NewZeroed(0x2000, 0x100, true)

	_, err := b.ReadMemory(0x1FFF, 1)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	_, err = b.ReadMemory(0x20FF, 2)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	_, err = b.ReadMemory(0x2100, 1)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	err = b.WriteMemory(0x20FE, []byte{1, 2, 3})
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	// The very last byte is reachable.
	_, err = b.ReadMemory(0x20FF, 1)
	require.NoError(t, err)
}

func TestBlobBoundsWrapAround(t *testing.T) {
	b := NewZeroed(0x1000, 0x100, true)

	// A range whose end wraps past 2^64 must fail like any other
	// unmapped range, never panic.
	_, err := b.ReadMemory(0xFFFFFFFFFFFFFFF0, 0x1010)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	err = b.WriteMemory(0xFFFFFFFFFFFFFFF0, make([]byte, 0x20))
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	// In-window address with a length that overflows the end.
	_, err = b.ReadMemory(0x1000, ^process.Size(0))
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)

	_, err = b.ReadMemory(0x1010, ^process.Size(0)-0x8)
	require.ErrorIs(t, err, process.ErrAddressOutOfRange)
}

func TestBlobBitness(t *testing.T) {
	is64, err := New(0, nil, true).Is64Bit()
	require.NoError(t, err)
	require.True(t, is64)

	is64, err = New(0, nil, false).Is64Bit()
	require.NoError(t, err)
	require.False(t, is64)
}
