package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxify_NoneIsIdentity(t *testing.T) {
	inputs := [][]string{
		nil,
		{},
		{"a"},
		{"\x1b[1mbold\x1b[0m", "", "  spaced  "},
	}
	for _, in := range inputs {
		f := NewFrame(DefaultBorders(), BorderNone, 3, "caption")
		assert.Equal(t, in, f.Boxify(in))
	}
}

func TestBoxify_ASCII(t *testing.T) {
	f := NewFrame(DefaultBorders(), BorderASCII, 1, "")
	got := f.Boxify([]string{"ab", "c"})

	want := []string{
		"+----+",
		"| ab |",
		"| c  |",
		"+----+",
	}
	assert.Equal(t, want, got)
}

func TestBoxify_DoubleAndSingleGlyphs(t *testing.T) {
	got := NewFrame(DefaultBorders(), BorderDouble, 1, "").Boxify([]string{"x"})
	assert.Equal(t, []string{"╔═══╗", "║ x ║", "╚═══╝"}, got)

	got = NewFrame(DefaultBorders(), BorderSingle, 0, "").Boxify([]string{"x"})
	assert.Equal(t, []string{"┌─┐", "│x│", "└─┘"}, got)
}

func TestBoxify_UnknownStyleIsDouble(t *testing.T) {
	f := NewFrame(DefaultBorders(), "wavy", 1, "")
	assert.Equal(t, BorderDouble, f.Style())
	assert.Equal(t, "╔═══╗", f.Boxify([]string{"x"})[0])
}

func TestBoxify_ColoredLinesAlign(t *testing.T) {
	f := NewFrame(DefaultBorders(), BorderASCII, 1, "")
	got := f.Boxify([]string{"\x1b[36mabc\x1b[0m", "d"})

	require.Len(t, got, 4)
	for _, l := range got {
		assert.Equal(t, 7, VisibleWidth(l), "line %q", l)
	}
	assert.Equal(t, "| d   |", got[2])
}

func TestBoxify_Caption(t *testing.T) {
	f := NewFrame(DefaultBorders(), BorderASCII, 1, "ACME")
	got := f.Boxify([]string{strings.Repeat("#", 12)})

	// inner 14, caption+delimiters 6, remainder 8 split 4/4
	assert.Equal(t, "+---- ACME ----+", got[0])
	assert.Equal(t, "+--------------+", got[len(got)-1])
	assert.Equal(t, VisibleWidth(got[1]), VisibleWidth(got[0]))
}

func TestBoxify_CaptionOddRemainder(t *testing.T) {
	f := NewFrame(DefaultBorders(), BorderASCII, 1, "ABC")
	got := f.Boxify([]string{strings.Repeat("#", 12)})
	// remainder 9 -> left 4, right 5
	assert.Equal(t, "+---- ABC -----+", got[0])
}

func TestBoxify_CaptionOverflow(t *testing.T) {
	f := NewFrame(DefaultBorders(), BorderASCII, 1, "A VERY LONG CAPTION")
	var got []string
	require.NotPanics(t, func() { got = f.Boxify([]string{"ab"}) })

	assert.Equal(t, "+ A VERY LONG CAPTION +", got[0])
	assert.Equal(t, "+----+", got[len(got)-1])
}

func TestCaptionFill(t *testing.T) {
	tests := []struct {
		inner       int
		caption     string
		left, right int
	}{
		{14, "ACME", 4, 4},
		{14, "ABC", 4, 5},
		{6, "ABCD", 0, 0},
		{4, "LONGER THAN BORDER", 0, 0},
		{0, "X", 0, 0},
	}
	for _, tt := range tests {
		l, r := CaptionFill(tt.inner, tt.caption)
		assert.Equal(t, tt.left, l, "inner %d caption %q", tt.inner, tt.caption)
		assert.Equal(t, tt.right, r, "inner %d caption %q", tt.inner, tt.caption)
	}
}

func TestBoxify_HIFramedWidth(t *testing.T) {
	lines := make([]string, 7)
	for i := range lines {
		lines[i] = strings.Repeat("#", 12)
	}
	got := NewFrame(DefaultBorders(), BorderASCII, 1, "").Boxify(lines)

	require.Len(t, got, 9)
	for _, l := range got {
		assert.Equal(t, 16, VisibleWidth(l))
	}
}

func TestBoxify_NegativePadding(t *testing.T) {
	got := NewFrame(DefaultBorders(), BorderASCII, -2, "").Boxify([]string{"x"})
	assert.Equal(t, []string{"+-+", "|x|", "+-+"}, got)
}
