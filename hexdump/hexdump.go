// Package hexdump renders byte buffers in the classic offset/hex/ASCII
// layout, for eyeballing regions pulled out of a remote process.
package hexdump

import (
	"fmt"
	"strings"

	"winmem/coloransi"
)

// Options customizes the dump layout.
type Options struct {
	// BytesPerLine is the number of bytes rendered per line.
	BytesPerLine int

	// GroupSize inserts an extra space between groups of this many bytes.
	GroupSize int

	// ShowASCII appends the printable-ASCII gutter.
	ShowASCII bool

	// BaseAddress is added to the offset column, so the dump lines up with
	// target addresses.
	BaseAddress uint64

	// Colorize wraps the offset column in ANSI colors.
	Colorize bool

	// OffsetColor is the offset column color when Colorize is set.
	OffsetColor coloransi.ColorCode
}

// DefaultOptions is the usual 16-bytes-per-line layout with an ASCII
// gutter and no colors.
func DefaultOptions() Options {
	return Options{
		BytesPerLine: 16,
		GroupSize:    8,
		ShowASCII:    true,
		OffsetColor:  coloransi.ColorTeal,
	}
}

// Dump renders data with DefaultOptions.
func Dump(data []byte) string {
	return DumpWithOptions(data, DefaultOptions())
}

// DumpWithOptions renders data one line per BytesPerLine bytes.
func DumpWithOptions(data []byte, o Options) string {
	if o.BytesPerLine <= 0 {
		o.BytesPerLine = 16
	}

	var sb strings.Builder
	for lineStart := 0; lineStart < len(data); lineStart += o.BytesPerLine {
		line := data[lineStart:]
		if len(line) > o.BytesPerLine {
			line = line[:o.BytesPerLine]
		}

		offset := fmt.Sprintf("%08x", o.BaseAddress+uint64(lineStart))
		if o.Colorize {
			offset = coloransi.Foreground(o.OffsetColor, offset)
		}
		sb.WriteString(offset)
		sb.WriteString("  ")

		for i := 0; i < o.BytesPerLine; i++ {
			if i > 0 && o.GroupSize > 0 && i%o.GroupSize == 0 {
				sb.WriteByte(' ')
			}
			if i < len(line) {
				fmt.Fprintf(&sb, "%02x ", line[i])
			} else {
				sb.WriteString("   ")
			}
		}

		if o.ShowASCII {
			sb.WriteString(" |")
			for _, b := range line {
				if b >= 0x20 && b < 0x7f {
					sb.WriteByte(b)
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
