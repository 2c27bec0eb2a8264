package render

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/nfo/pkg/design"
	"github.com/dkoosis/nfo/pkg/glyph"
)

// ErrEmptyInput is returned when the input holds nothing to render once
// surrounding newlines and spaces are trimmed.
var ErrEmptyInput = errors.New("no input")

// Alignment names.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
)

// Charset names. The ascii charset draws every border with ASCII glyphs.
const (
	CharsetUnicode = "unicode"
	CharsetASCII   = "ascii"
)

// DefaultTermWidth is used for centering when the terminal width is unknown.
const DefaultTermWidth = 80

// Options is the resolved configuration consumed by Banner.
type Options struct {
	Preset    string
	Border    string
	Charset   string
	Align     string
	Palette   string
	Font      string
	Wrap      int
	VTSafe    bool
	NFO       bool
	Metadata  design.Metadata
	Title     string
	Padding   int
	TermWidth int
}

// Caption returns the frame caption: the title, or the group name when the
// NFO block is shown and no title is set.
func (o Options) Caption() string {
	if o.Title != "" {
		return o.Title
	}
	if o.NFO && o.Metadata.Group != "" {
		return o.Metadata.Group
	}
	return ""
}

// BorderStyle returns the border style after the charset is applied.
func (o Options) BorderStyle() string {
	if o.Charset == CharsetASCII && o.Border != design.BorderNone {
		return design.BorderASCII
	}
	return o.Border
}

// Banner renders text into the final framed line sequence.
type Banner struct {
	opts     Options
	log      zerolog.Logger
	font     glyph.Font
	palettes *design.PaletteEngine
	nfo      *design.NFOBlock
	frame    *design.Frame
}

// NewBanner builds a banner renderer over the built-in tables.
func NewBanner(opts Options, log zerolog.Logger) *Banner {
	if opts.TermWidth <= 0 {
		opts.TermWidth = DefaultTermWidth
	}
	return &Banner{
		opts:     opts,
		log:      log,
		font:     glyph.Builtin(),
		palettes: design.NewPaletteEngine(design.DefaultPalettes(), design.RestrictedPalettes(), opts.VTSafe),
		nfo:      design.NewNFOBlock(design.LabelWidth),
		frame:    design.NewFrame(design.DefaultBorders(), opts.BorderStyle(), opts.Padding, opts.Caption()),
	}
}

// Render produces the output lines for raw input text.
func (b *Banner) Render(raw string) ([]string, error) {
	text := strings.Trim(raw, "\n\r ")
	if text == "" {
		return nil, ErrEmptyInput
	}
	if b.opts.Wrap > 0 {
		text = strings.Join(design.WrapText(strings.ReplaceAll(text, "\n", " "), b.opts.Wrap), "\n")
	}

	preset := PresetByName(b.opts.Preset)
	renderer := Select(text, b.opts.Font, NewBuiltin(b.font, preset.On, preset.Off), b.log)
	b.log.Debug().Str("renderer", renderer.Name()).Str("preset", preset.Name).Msg("rendering text")

	lines := renderer.Render(text)

	if b.opts.NFO {
		width := design.MaxRawWidth(lines)
		lines = append(lines, "")
		lines = append(lines, b.nfo.Render(b.opts.Metadata, width)...)
	}

	if !b.palettes.Known(b.opts.Palette) {
		b.log.Debug().Str("palette", b.opts.Palette).Bool("vt_safe", b.opts.VTSafe).Msg("unknown palette, using fallback")
	}
	colored, width := b.palettes.Colorize(lines, b.opts.Palette)
	b.log.Debug().Int("width", width).Int("lines", len(colored)).Msg("colorized")

	if b.opts.Align == AlignCenter && b.opts.Border == design.BorderNone {
		for i, l := range colored {
			colored[i] = design.CenterVisible(l, b.opts.TermWidth)
		}
	}

	if style := b.frame.Style(); style != b.opts.BorderStyle() {
		b.log.Debug().Str("border", b.opts.BorderStyle()).Str("using", style).Msg("unknown border style")
	}
	return b.frame.Boxify(colored), nil
}
