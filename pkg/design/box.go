package design

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Border style names.
const (
	BorderDouble  = "double"
	BorderSingle  = "single"
	BorderASCII   = "ascii"
	BorderRounded = "rounded"
	BorderThick   = "thick"
	BorderNone    = "none"
)

// DefaultPadding is the interior padding used when none is configured.
const DefaultPadding = 1

// DefaultBorders returns the built-in border glyph table. Glyphs come from
// lipgloss so the set matches what the rest of the charm stack draws.
func DefaultBorders() map[string]lipgloss.Border {
	return map[string]lipgloss.Border{
		BorderDouble:  lipgloss.DoubleBorder(),
		BorderSingle:  lipgloss.NormalBorder(),
		BorderASCII:   lipgloss.ASCIIBorder(),
		BorderRounded: lipgloss.RoundedBorder(),
		BorderThick:   lipgloss.ThickBorder(),
		BorderNone:    {},
	}
}

// Frame draws a border around a block of lines, with an optional caption
// centered in the top border.
type Frame struct {
	borders map[string]lipgloss.Border
	style   string
	padding int
	caption string
}

// NewFrame returns a frame drawing style from borders. Unknown styles draw
// double lines; negative padding is treated as zero.
func NewFrame(borders map[string]lipgloss.Border, style string, padding int, caption string) *Frame {
	if padding < 0 {
		padding = 0
	}
	return &Frame{borders: borders, style: style, padding: padding, caption: caption}
}

// Style returns the effective border style name.
func (f *Frame) Style() string {
	if f.style == BorderNone {
		return BorderNone
	}
	if _, ok := f.borders[f.style]; !ok {
		return BorderDouble
	}
	return f.style
}

// Boxify frames lines. The none style returns lines unchanged. Widths are
// measured on visible characters, so colorized lines align with plain ones.
// A caption wider than the border is not truncated; the top line grows past
// the nominal width instead.
func (f *Frame) Boxify(lines []string) []string {
	style := f.Style()
	if style == BorderNone {
		return lines
	}
	b := f.borders[style]

	contentWidth := MaxVisibleWidth(lines)
	inner := contentWidth + 2*f.padding
	pad := strings.Repeat(" ", f.padding)

	out := make([]string, 0, len(lines)+2)
	out = append(out, f.top(b, inner))
	for _, l := range lines {
		out = append(out, b.Left+pad+PadVisible(l, contentWidth)+pad+b.Right)
	}
	out = append(out, b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight)
	return out
}

func (f *Frame) top(b lipgloss.Border, inner int) string {
	if f.caption == "" {
		return b.TopLeft + strings.Repeat(b.Top, inner) + b.TopRight
	}
	left, right := CaptionFill(inner, f.caption)
	return b.TopLeft +
		strings.Repeat(b.Top, left) + " " + f.caption + " " + strings.Repeat(b.Top, right) +
		b.TopRight
}

// CaptionFill splits the horizontal fill around a caption and its two
// delimiting spaces within a border of the given inner width. Both counts
// are clamped at zero.
func CaptionFill(inner int, caption string) (left, right int) {
	rem := inner - (utf8.RuneCountInString(caption) + 2)
	if rem < 0 {
		rem = 0
	}
	left = rem / 2
	return left, rem - left
}
