package design

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(vtSafe bool) *PaletteEngine {
	return NewPaletteEngine(DefaultPalettes(), RestrictedPalettes(), vtSafe)
}

func TestGradient256_Endpoints(t *testing.T) {
	assert.Equal(t, []int{27}, Gradient256(27, 201, 1))
	assert.Equal(t, []int{27}, Gradient256(27, 201, 0))

	for _, width := range []int{2, 3, 7, 12, 61, 200} {
		idx := Gradient256(27, 201, width)
		require.Len(t, idx, width)
		assert.Equal(t, 27, idx[0], "width %d", width)
		assert.Equal(t, 201, idx[width-1], "width %d", width)
	}

	desc := Gradient256(226, 202, 9)
	assert.Equal(t, 226, desc[0])
	assert.Equal(t, 202, desc[8])
}

func TestGradient256_Interpolation(t *testing.T) {
	assert.Equal(t, []int{27, 114, 201}, Gradient256(27, 201, 3))
	// 70.5 and 157.5 round half to even.
	assert.Equal(t, []int{27, 70, 114, 158, 201}, Gradient256(27, 201, 5))
}

func TestPalette_Lengths(t *testing.T) {
	e := newEngine(false)
	for name := range DefaultPalettes() {
		for _, width := range []int{2, 5, 40} {
			assert.Len(t, e.Palette(name, width), width, "palette %s width %d", name, width)
		}
	}
}

func TestPalette_Kinds(t *testing.T) {
	e := newEngine(false)

	assert.Equal(t, []string{"", "", ""}, e.Palette("none", 3))
	assert.Equal(t, []string{"\x1b[1m", "\x1b[1m"}, e.Palette("mono", 2))
	assert.Equal(t, []string{"\x1b[90m"}, e.Palette("grey", 1))
	assert.Equal(t, []string{"\x1b[38;5;202m", "\x1b[38;5;226m"}, e.Palette("sunset", 2))
	assert.Equal(t, []string{"\x1b[38;5;27m"}, e.Palette("gradient", 1))
}

func TestPalette_UnknownFallsBackToNone(t *testing.T) {
	e := newEngine(false)
	assert.False(t, e.Known("rainbow"))
	assert.Equal(t, []string{"", ""}, e.Palette("rainbow", 2))
}

func TestPalette_Truecolor(t *testing.T) {
	e := newEngine(false)
	seq := regexp.MustCompile(`^\x1b\[38;2;\d+;\d+;\d+m$`)

	got := e.Palette("aurora", 10)
	require.Len(t, got, 10)
	for _, p := range got {
		assert.Regexp(t, seq, p)
	}
	assert.Len(t, e.Palette("ember", 1), 1)
}

func TestPalette_RestrictedMode(t *testing.T) {
	e := newEngine(true)
	tests := []struct {
		name string
		want string
	}{
		{"none", ""},
		{"mono", "\x1b[1m"},
		{"cyan", "\x1b[36m"},
		{"magenta", "\x1b[35m"},
		{"grey", "\x1b[37m"},
		{"gradient", "\x1b[1m"},
		{"sunset", "\x1b[1m"},
		{"aurora", "\x1b[1m"},
		{"bogus", "\x1b[1m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Palette(tt.name, 4)
			require.Len(t, got, 4)
			for _, p := range got {
				assert.Equal(t, tt.want, p)
				assert.NotContains(t, p, "38;5;")
				assert.NotContains(t, p, "38;2;")
			}
		})
	}
}

func TestColorize(t *testing.T) {
	e := newEngine(false)
	lines := []string{"ab", "c", ""}

	out, width := e.Colorize(lines, "mono")
	require.Len(t, out, 3)
	assert.Equal(t, 2, width)
	assert.Equal(t, "\x1b[1ma\x1b[1mb\x1b[0m", out[0])
	assert.Equal(t, "\x1b[1mc\x1b[1m \x1b[0m", out[1])
	assert.Equal(t, "\x1b[1m \x1b[1m \x1b[0m", out[2])

	for i, l := range out {
		assert.Equal(t, PadVisible(lines[i], width), StripEscapes(l))
		assert.True(t, strings.HasSuffix(l, Reset))
	}
}

func TestColorize_GradientColumns(t *testing.T) {
	e := newEngine(false)
	out, _ := e.Colorize([]string{"█ █"}, "gradient")
	assert.Equal(t, "\x1b[38;5;27m█\x1b[38;5;114m \x1b[38;5;201m█\x1b[0m", out[0])
}

func TestColorize_NoneKeepsContent(t *testing.T) {
	e := newEngine(false)
	out, width := e.Colorize([]string{"x", "yyy"}, "none")
	assert.Equal(t, 3, width)
	assert.Equal(t, []string{"x  \x1b[0m", "yyy\x1b[0m"}, out)
}

func TestColorize_Empty(t *testing.T) {
	e := newEngine(false)
	out, width := e.Colorize(nil, "gradient")
	assert.Empty(t, out)
	assert.Equal(t, 0, width)
}
