// Package render assembles banners: it picks a text renderer, then runs the
// raster lines through the NFO block, palette, alignment and frame stages.
package render

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/nfo/pkg/figlet"
	"github.com/dkoosis/nfo/pkg/glyph"
)

// Renderer turns text into raster rows.
type Renderer interface {
	Render(text string) []string
	Name() string
}

// Builtin renders with the built-in 5x7 font.
type Builtin struct {
	r *glyph.Rasterizer
}

// NewBuiltin returns a renderer drawing font with the given symbols.
func NewBuiltin(font glyph.Font, on, off string) *Builtin {
	return &Builtin{r: glyph.NewRasterizer(font, on, off)}
}

func (b *Builtin) Render(text string) []string { return b.r.Render(text) }

func (b *Builtin) Name() string { return "builtin" }

// engine is the part of figlet.Engine that External uses.
type engine interface {
	Render(text string) ([]string, error)
	Font() string
}

// External renders with a FIGlet engine. Engine failures fall back to the
// wrapped renderer and are only logged.
type External struct {
	engine   engine
	fallback Renderer
	log      zerolog.Logger
}

func (e *External) Render(text string) []string {
	rows, err := e.engine.Render(text)
	if err != nil || len(rows) == 0 {
		e.log.Debug().Err(err).Str("font", e.engine.Font()).Msg("figlet render failed, using builtin font")
		return e.fallback.Render(text)
	}
	return rows
}

func (e *External) Name() string { return "figlet:" + e.engine.Font() }

// Select picks the renderer for text once. The FIGlet engine is used only
// when a font is configured, loads cleanly and text is a single line;
// otherwise builtin is returned.
func Select(text, font string, builtin Renderer, log zerolog.Logger) Renderer {
	if strings.TrimSpace(font) == "" {
		return builtin
	}
	if strings.ContainsAny(text, "\r\n") {
		log.Debug().Str("font", font).Msg("multi-line input, using builtin font")
		return builtin
	}
	engine, err := figlet.Load(font)
	if err != nil {
		log.Debug().Err(err).Msg("figlet unavailable, using builtin font")
		return builtin
	}
	return &External{engine: engine, fallback: builtin, log: log}
}
