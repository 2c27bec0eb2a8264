// Package design implements the banner compositing primitives: escape-aware
// width arithmetic, color palettes, the NFO metadata block and frames.
package design

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Reset ends any color run started by a palette prefix.
const Reset = "\x1b[0m"

// StripEscapes removes terminal escape sequences such as SGR color codes
// ("\x1b[38;5;27m") from s.
func StripEscapes(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of characters left in s once escape
// sequences are removed. All alignment in this package is based on it.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripEscapes(s))
}

// PadVisible right-pads s with spaces until its visible width equals width.
// Strings already at or beyond width are returned unchanged, never truncated.
func PadVisible(s string, width int) string {
	vw := VisibleWidth(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// CenterVisible centers s within width columns using VisibleWidth, so it
// agrees with PadVisible. The extra column of an odd gap goes right. Lines
// already at least width wide are returned unchanged.
func CenterVisible(s string, width int) string {
	gap := width - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// MaxVisibleWidth returns the widest visible width across lines.
func MaxVisibleWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if vw := VisibleWidth(l); vw > w {
			w = vw
		}
	}
	return w
}

// MaxRawWidth returns the widest line measured in characters, counting any
// escape bytes as characters. Used on uncolored raster lines.
func MaxRawWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	return w
}
