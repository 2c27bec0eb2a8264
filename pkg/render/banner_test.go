package render

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/nfo/pkg/design"
	"github.com/dkoosis/nfo/pkg/glyph"
)

func asciiOptions() Options {
	return Options{
		Preset:  PresetASCII,
		Border:  design.BorderASCII,
		Charset: CharsetUnicode,
		Align:   AlignLeft,
		Palette: design.PaletteNone,
		Padding: design.DefaultPadding,
	}
}

func TestBanner_HIFramedASCII(t *testing.T) {
	out, err := NewBanner(asciiOptions(), zerolog.Nop()).Render("HI\n")
	require.NoError(t, err)

	require.Len(t, out, 9)
	assert.Equal(t, "+"+strings.Repeat("-", 14)+"+", out[0])
	assert.Equal(t, "+"+strings.Repeat("-", 14)+"+", out[8])
	assert.Equal(t, "| #   # #####  |", design.StripEscapes(out[1]))
	for _, l := range out {
		assert.Equal(t, 16, design.VisibleWidth(l), "line %q", l)
	}
	for _, l := range out[1:8] {
		body := design.StripEscapes(l)
		body = strings.Trim(body, "|")
		assert.Empty(t, strings.Trim(body, "# "), "only # and space in raster, got %q", body)
	}
}

func TestBanner_RasterRowsBeforeFrame(t *testing.T) {
	opts := asciiOptions()
	opts.Border = design.BorderNone
	out, err := NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)

	require.Len(t, out, glyph.Rows)
	for _, l := range out {
		assert.Equal(t, 12, design.VisibleWidth(l))
		assert.True(t, strings.HasSuffix(l, design.Reset))
	}
}

func TestBanner_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "\n", " \r\n  ", "\n\n"} {
		out, err := NewBanner(asciiOptions(), zerolog.Nop()).Render(in)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", in)
		assert.Nil(t, out)
	}
}

func TestBanner_NFOBlock(t *testing.T) {
	opts := asciiOptions()
	opts.Border = design.BorderNone
	opts.NFO = true
	opts.Metadata = design.Metadata{Date: "2024-01-01", Group: "ACME"}

	out, err := NewBanner(opts, zerolog.Nop()).Render("HELLO")
	require.NoError(t, err)

	require.Len(t, out, glyph.Rows+1+8)
	plain := make([]string, len(out))
	for i, l := range out {
		plain[i] = strings.TrimRight(design.StripEscapes(l), " ")
	}
	assert.Equal(t, "", plain[glyph.Rows])
	assert.Equal(t, "Release       :", plain[glyph.Rows+1])
	assert.Equal(t, "Date          : 2024-01-01", plain[glyph.Rows+2])
	assert.Equal(t, "Group         : ACME", plain[glyph.Rows+5])

	for _, l := range out {
		assert.Equal(t, 30, design.VisibleWidth(l))
	}
}

func TestBanner_CaptionFallsBackToGroup(t *testing.T) {
	opts := asciiOptions()
	opts.NFO = true
	opts.Metadata = design.Metadata{Group: "ACME"}
	assert.Equal(t, "ACME", opts.Caption())

	out, err := NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)
	assert.Contains(t, out[0], " ACME ")

	opts.Title = "RELEASE"
	assert.Equal(t, "RELEASE", opts.Caption())

	opts.Title = ""
	opts.NFO = false
	assert.Equal(t, "", opts.Caption())
}

func TestBanner_CharsetASCIIForcesASCIIBorder(t *testing.T) {
	opts := asciiOptions()
	opts.Border = design.BorderDouble
	opts.Charset = CharsetASCII
	assert.Equal(t, design.BorderASCII, opts.BorderStyle())

	out, err := NewBanner(opts, zerolog.Nop()).Render("A")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out[0], "+-"))

	opts.Border = design.BorderNone
	assert.Equal(t, design.BorderNone, opts.BorderStyle())
}

func TestBanner_CenterOnlyWithoutBorder(t *testing.T) {
	opts := asciiOptions()
	opts.Border = design.BorderNone
	opts.Align = AlignCenter
	opts.TermWidth = 40

	out, err := NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)
	for _, l := range out {
		assert.Equal(t, 40, design.VisibleWidth(l))
		assert.True(t, strings.HasPrefix(l, strings.Repeat(" ", 14)), "line %q", l)
	}

	opts.Border = design.BorderASCII
	out, err = NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)
	assert.Equal(t, 16, design.VisibleWidth(out[0]))
}

func TestBanner_Wrap(t *testing.T) {
	opts := asciiOptions()
	opts.Border = design.BorderNone
	opts.Wrap = 3

	out, err := NewBanner(opts, zerolog.Nop()).Render("AB\nCD")
	require.NoError(t, err)
	// "AB CD" wraps to two lines: two blocks and one separator.
	assert.Len(t, out, glyph.Rows*2+1)
}

func TestBanner_GradientColorizes(t *testing.T) {
	opts := asciiOptions()
	opts.Palette = "gradient"
	out, err := NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)

	assert.Contains(t, out[1], "\x1b[38;5;27m")
	assert.Contains(t, out[1], "\x1b[38;5;201m")
	assert.NotContains(t, out[0], "\x1b[")
}

func TestBanner_VTSafeNeverEmitsIndexedColor(t *testing.T) {
	opts := asciiOptions()
	opts.Palette = "gradient"
	opts.VTSafe = true
	out, err := NewBanner(opts, zerolog.Nop()).Render("HI")
	require.NoError(t, err)
	for _, l := range out {
		assert.NotContains(t, l, "38;5;")
	}
	assert.Contains(t, out[1], "\x1b[1m")
}
