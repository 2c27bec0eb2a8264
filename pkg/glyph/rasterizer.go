package glyph

import "strings"

// Symbol presets for lit and unlit pixels.
const (
	SymbolFullBlock  = "█"
	SymbolShadeBlock = "▓"
	SymbolHash       = "#"
	SymbolBlank      = " "
)

// Rasterizer renders text as rows of on/off symbols.
type Rasterizer struct {
	font Font
	on   string
	off  string
}

// NewRasterizer returns a rasterizer drawing font with the given symbols.
func NewRasterizer(font Font, on, off string) *Rasterizer {
	return &Rasterizer{font: font, on: on, off: off}
}

// RenderLine renders a single line (no newlines) into exactly Rows rows.
// Every character occupies Cols columns plus one trailing blank separator,
// including the last one.
func (r *Rasterizer) RenderLine(line string) []string {
	var rows [Rows]strings.Builder
	for _, ch := range line {
		g, _ := r.font.Lookup(ch)
		for y := 0; y < Rows; y++ {
			for x := 0; x < Cols; x++ {
				if g.On(y, x) {
					rows[y].WriteString(r.on)
				} else {
					rows[y].WriteString(r.off)
				}
			}
			rows[y].WriteByte(' ')
		}
	}
	out := make([]string, Rows)
	for y := range rows {
		out[y] = rows[y].String()
	}
	return out
}

// Render rasterizes every line of text independently and joins the blocks
// with a single blank row. Empty text yields no rows.
func (r *Rasterizer) Render(text string) []string {
	if text == "" {
		return nil
	}
	lines := splitLines(text)
	out := make([]string, 0, len(lines)*(Rows+1))
	for i, ln := range lines {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, r.RenderLine(ln)...)
	}
	return out
}

// splitLines splits on \n, \r\n and \r without producing a trailing empty
// element for a final line break.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
