package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/mazznoer/colorgrad"
	"github.com/muesli/termenv"
)

// PaletteNone is the fallback for unknown palette names.
const PaletteNone = "none"

// SGR prefixes used by the solid palettes and the restricted table.
const (
	sgrBold    = "\x1b[1m"
	sgrCyan    = "\x1b[36m"
	sgrMagenta = "\x1b[35m"
	sgrWhite   = "\x1b[37m"
	sgrGrey    = "\x1b[90m"
)

// PaletteKind selects how a palette fills its columns.
type PaletteKind int

const (
	KindNone PaletteKind = iota
	KindSolid
	KindGradient256
	KindGradientRGB
)

// PaletteSpec describes one named palette.
type PaletteSpec struct {
	Kind PaletteKind

	// Prefix is repeated on every column for KindSolid.
	Prefix string

	// Start and End are 256-color indexes for KindGradient256.
	Start, End int

	// From and To are hex colors for KindGradientRGB.
	From, To string
}

// DefaultPalettes returns the built-in palette table.
func DefaultPalettes() map[string]PaletteSpec {
	return map[string]PaletteSpec{
		"none":     {Kind: KindNone},
		"mono":     {Kind: KindSolid, Prefix: sgrBold},
		"cyan":     {Kind: KindSolid, Prefix: sgrCyan},
		"magenta":  {Kind: KindSolid, Prefix: sgrMagenta},
		"grey":     {Kind: KindSolid, Prefix: sgrGrey},
		"gradient": {Kind: KindGradient256, Start: 27, End: 201},
		"sunset":   {Kind: KindGradient256, Start: 202, End: 226},
		"aurora":   {Kind: KindGradientRGB, From: "#00c9ff", To: "#92fe9d"},
		"ember":    {Kind: KindGradientRGB, From: "#f12711", To: "#f5af19"},
	}
}

// RestrictedPalettes maps palette names to a single basic SGR code for
// terminals limited to the legacy 8/16 colors. Names missing here render bold.
func RestrictedPalettes() map[string]string {
	return map[string]string{
		"none":    "",
		"mono":    sgrBold,
		"cyan":    sgrCyan,
		"magenta": sgrMagenta,
		"grey":    sgrWhite,
	}
}

// PaletteEngine builds per-column color prefixes and applies them to lines.
type PaletteEngine struct {
	palettes   map[string]PaletteSpec
	restricted map[string]string
	vtSafe     bool
}

// NewPaletteEngine returns an engine over the given tables. With vtSafe set
// only the restricted table is consulted.
func NewPaletteEngine(palettes map[string]PaletteSpec, restricted map[string]string, vtSafe bool) *PaletteEngine {
	return &PaletteEngine{palettes: palettes, restricted: restricted, vtSafe: vtSafe}
}

// Known reports whether name is a palette the engine can render without
// falling back.
func (e *PaletteEngine) Known(name string) bool {
	if e.vtSafe {
		_, ok := e.restricted[name]
		return ok
	}
	_, ok := e.palettes[name]
	return ok
}

// Palette returns width escape prefixes for the named palette. Gradients of
// width 1 or less return exactly one prefix for the start color.
func (e *PaletteEngine) Palette(name string, width int) []string {
	if e.vtSafe {
		prefix, ok := e.restricted[name]
		if !ok {
			prefix = sgrBold
		}
		return repeat(prefix, width)
	}

	spec, ok := e.palettes[name]
	if !ok {
		spec = PaletteSpec{Kind: KindNone}
	}
	switch spec.Kind {
	case KindSolid:
		return repeat(spec.Prefix, width)
	case KindGradient256:
		idx := Gradient256(spec.Start, spec.End, width)
		out := make([]string, len(idx))
		for i, c := range idx {
			out[i] = fmt.Sprintf("\x1b[38;5;%dm", c)
		}
		return out
	case KindGradientRGB:
		return gradientRGB(spec.From, spec.To, width)
	default:
		return repeat("", width)
	}
}

// Colorize right-pads every line to the widest line and prefixes each
// character at column i with palette[i]. Every output line ends with Reset.
// The returned width is the uncolored width of the block.
func (e *PaletteEngine) Colorize(lines []string, name string) ([]string, int) {
	width := MaxRawWidth(lines)
	colors := e.Palette(name, width)

	out := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		col := 0
		for _, ch := range line {
			sb.WriteString(colors[col])
			sb.WriteRune(ch)
			col++
		}
		for ; col < width; col++ {
			sb.WriteString(colors[col])
			sb.WriteByte(' ')
		}
		sb.WriteString(Reset)
		out[i] = sb.String()
	}
	return out, width
}

// Gradient256 interpolates width color indexes from start to end. Both
// endpoints are exact; halves round to even.
func Gradient256(start, end, width int) []int {
	if width <= 1 {
		return []int{start}
	}
	step := float64(end-start) / float64(width-1)
	out := make([]int, width)
	for i := range out {
		out[i] = int(math.RoundToEven(float64(start) + float64(i)*step))
	}
	return out
}

func gradientRGB(from, to string, width int) []string {
	grad, err := colorgrad.NewGradient().HtmlColors(from, to).Build()
	if err != nil {
		return repeat("", width)
	}
	if width <= 1 {
		return []string{truecolorPrefix(grad.At(0).HexString())}
	}
	colors := grad.Colors(uint(width))
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = truecolorPrefix(c.HexString())
	}
	return out
}

func truecolorPrefix(hex string) string {
	return termenv.CSI + termenv.TrueColor.Color(hex).Sequence(false) + "m"
}

func repeat(prefix string, width int) []string {
	if width < 0 {
		width = 0
	}
	out := make([]string, width)
	for i := range out {
		out[i] = prefix
	}
	return out
}
