// Package coloransi builds ANSI-colored terminal text. It exists to give
// the per-process logger tags a stable, recognizable color.
package coloransi

import (
	"fmt"
	"strings"
)

// ColorCode holds either an ANSI color code in its low 8 bits or a 24-bit
// RGB color in its upper bits.
type ColorCode uint32

const (
	Black   ColorCode = 30
	Red     ColorCode = 31
	Green   ColorCode = 32
	Yellow  ColorCode = 33
	Blue    ColorCode = 34
	Magenta ColorCode = 35
	Cyan    ColorCode = 36
	White   ColorCode = 37

	BrightBlack   ColorCode = Black + 60
	BrightRed     ColorCode = Red + 60
	BrightGreen   ColorCode = Green + 60
	BrightYellow  ColorCode = Yellow + 60
	BrightBlue    ColorCode = Blue + 60
	BrightMagenta ColorCode = Magenta + 60
	BrightCyan    ColorCode = Cyan + 60
	BrightWhite   ColorCode = White + 60

	// Background colors are the foreground code plus this offset.
	BackgroundOffset ColorCode = 10

	rgbMask ColorCode = 0xFFFFFF00
)

// RGB creates a ColorCode from a 24-bit color.
func RGB(r, g, b uint8) ColorCode {
	return ColorCode(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8)
}

var (
	ColorOrange = RGB(255, 140, 0)
	ColorPurple = RGB(128, 0, 128)
	ColorTeal   = RGB(0, 128, 128)
)

// IsRGB reports whether the code carries a 24-bit color.
func (c ColorCode) IsRGB() bool {
	return c&rgbMask != 0
}

// ColorFrom deterministically maps an identifier (such as a pid) to a
// color, so related log lines always render the same.
func ColorFrom(item uint64) ColorCode {
	colors := []ColorCode{
		Red, Green, Yellow, Blue, Magenta, Cyan, White,
		BrightRed, BrightGreen, BrightYellow, BrightBlue,
		BrightMagenta, BrightCyan, BrightWhite,
	}
	return colors[item%uint64(len(colors))]
}

// Color formats the arguments with the given foreground and background
// colors, resetting afterwards.
func Color(fg, bg ColorCode, v ...interface{}) string {
	return foreground(fg) + background(bg) + join(v) + reset()
}

// Foreground formats the arguments with only a foreground color.
func Foreground(fg ColorCode, v ...interface{}) string {
	return foreground(fg) + join(v) + reset()
}

func foreground(code ColorCode) string {
	if code.IsRGB() {
		r := (code >> 24) & 0xFF
		g := (code >> 16) & 0xFF
		b := (code >> 8) & 0xFF
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[%dm", code)
}

func background(code ColorCode) string {
	if code.IsRGB() {
		r := (code >> 24) & 0xFF
		g := (code >> 16) & 0xFF
		b := (code >> 8) & 0xFF
		return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
	}
	return fmt.Sprintf("\033[%dm", code+BackgroundOffset)
}

func reset() string {
	return "\033[0m"
}

func join(v []interface{}) string {
	args := make([]string, len(v))
	for i, arg := range v {
		args[i] = fmt.Sprint(arg)
	}
	return strings.Join(args, " ")
}
