//go:build windows

package process_windows

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"winmem/process"
	"winmem/process_memory"
)

// A package-level target so its address is stable for the test's duration.
var probe uint64 = 0x1122334455667788

func addrOf(v *uint64) uintptr {
	return uintptr(unsafe.Pointer(v))
}

func openSelf(t *testing.T) *Process {
	t.Helper()
	p, err := NewWithPID(process.ProcessID(os.Getpid()))
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestSelfReadKnownValue(t *testing.T) {
	p := openSelf(t)

	addr := process.Address(uintptr(addrOf(&probe)))
	got, err := process_memory.ReadValue[uint64](p, addr)
	require.NoError(t, err)
	require.Equal(t, probe, got)
}

func TestSelfNameAndLiveness(t *testing.T) {
	p := openSelf(t)

	name, err := p.Name()
	require.NoError(t, err)
	require.NotEmpty(t, name)

	// Second call must come from the cache and agree.
	again, err := p.Name()
	require.NoError(t, err)
	require.Equal(t, name, again)

	alive, err := p.IsAlive()
	require.NoError(t, err)
	require.True(t, alive)
}

func TestSelfBitnessStable(t *testing.T) {
	p := openSelf(t)

	first, err := p.Is64Bit()
	require.NoError(t, err)
	second, err := p.Is64Bit()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSelfModules(t *testing.T) {
	p := openSelf(t)

	mod, err := p.MainModule()
	require.NoError(t, err)

	name, err := mod.Name(p)
	require.NoError(t, err)
	require.NotEmpty(t, name)

	info, err := mod.Info(p)
	require.NoError(t, err)
	require.NotZero(t, info.Base)
	require.NotZero(t, info.Size)

	// The image starts with the DOS magic "MZ".
	magic, err := process_memory.ReadValue[uint16](p, info.Base)
	require.NoError(t, err)
	require.Equal(t, uint16(0x5A4D), magic)
}

func TestSelfAllocateWriteReadFree(t *testing.T) {
	p := openSelf(t)

	region, err := p.Allocate(4096)
	require.NoError(t, err)
	require.NotZero(t, region)

	require.NoError(t, process_memory.WriteValue(p, region, uint32(0xDEADBEEF)))
	got, err := process_memory.ReadValue[uint32](p, region)
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), got)

	require.NoError(t, p.Free(region))
}

func TestCloseIsIdempotent(t *testing.T) {
	p, err := NewWithPID(process.ProcessID(os.Getpid()))
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close(), "second close must be a no-op")

	_, err = p.ReadMemory(process.Address(uintptr(addrOf(&probe))), 8)
	require.ErrorIs(t, err, process.ErrProcessNotOpen)

	// Even a zero-size transfer needs an open handle.
	_, err = p.ReadMemory(process.Address(uintptr(addrOf(&probe))), 0)
	require.ErrorIs(t, err, process.ErrProcessNotOpen)
	err = p.WriteMemory(process.Address(uintptr(addrOf(&probe))), nil)
	require.ErrorIs(t, err, process.ErrProcessNotOpen)
}
