package hexdump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpLayout(t *testing.T) {
	data := append([]byte("Hello, winmem!!!"), 0x00, 0x7F, 0x20)
	out := Dump(data)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2, "19 bytes at 16 per line")

	require.True(t, strings.HasPrefix(lines[0], "00000000  "))
	require.True(t, strings.HasPrefix(lines[1], "00000010  "))
	require.Contains(t, lines[0], "|Hello, winmem!!!|")
	require.Contains(t, lines[1], "|.. |", "non-printables render as dots")
}

func TestDumpBaseAddress(t *testing.T) {
	out := DumpWithOptions([]byte{0xAB}, Options{
		BytesPerLine: 8,
		BaseAddress:  0x7FF6_0000_1000,
		ShowASCII:    false,
	})
	require.True(t, strings.HasPrefix(out, "7ff600001000  ab "))
}

func TestDumpEmpty(t *testing.T) {
	require.Equal(t, "", Dump(nil))
}
