// Package figlet adapts FIGlet engines to the banner renderer. Bundled fonts
// come from go-figure; ".flf" files on disk are loaded with figlet4go.
//
// Engines report problems as errors or panics. Both are converted to errors
// here so callers only ever see a usable engine or a load failure.
package figlet

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/mbndr/figlet4go"
)

// ErrNoFont is returned by Load for an empty font name.
var ErrNoFont = errors.New("figlet: no font configured")

// probeText is rendered once when a font is loaded to confirm it works.
const probeText = "Ab1"

// Engine renders a single line of text with one FIGlet font.
type Engine struct {
	font   string
	render func(text string) ([]string, error)
}

// Load resolves font to an engine. Names ending in ".flf" are read from disk;
// anything else is looked up among the bundled fonts.
func Load(font string) (*Engine, error) {
	font = strings.TrimSpace(font)
	if font == "" {
		return nil, ErrNoFont
	}

	e := &Engine{font: font}
	if strings.EqualFold(filepath.Ext(font), ".flf") {
		r, err := fileRenderer(font)
		if err != nil {
			return nil, err
		}
		e.render = r
	} else {
		e.render = bundledRenderer(font)
	}

	if _, err := e.Render(probeText); err != nil {
		return nil, fmt.Errorf("figlet: font %q unusable: %w", font, err)
	}
	return e, nil
}

// Font returns the font name or path the engine was loaded with.
func (e *Engine) Font() string { return e.font }

// Render renders text and trims whitespace-only rows from the top and
// bottom, keeping blank rows in between.
func (e *Engine) Render(text string) (rows []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("figlet: render panicked: %v", r)
		}
	}()
	rows, err = e.render(text)
	if err != nil {
		return nil, err
	}
	return TrimBlankEdges(rows), nil
}

func bundledRenderer(font string) func(string) ([]string, error) {
	return func(text string) ([]string, error) {
		return figure.NewFigure(text, font, false).Slicify(), nil
	}
}

func fileRenderer(path string) (func(string) ([]string, error), error) {
	ascii := figlet4go.NewAsciiRender()
	if err := ascii.LoadFont(path); err != nil {
		return nil, fmt.Errorf("figlet: loading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return func(text string) ([]string, error) {
		opts := figlet4go.NewRenderOptions()
		opts.FontName = name
		out, err := ascii.RenderOpts(text, opts)
		if err != nil {
			return nil, err
		}
		return strings.Split(strings.TrimRight(out, "\n"), "\n"), nil
	}, nil
}

// TrimBlankEdges drops leading and trailing rows that contain only
// whitespace.
func TrimBlankEdges(rows []string) []string {
	start, end := 0, len(rows)
	for start < end && strings.TrimSpace(rows[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(rows[end-1]) == "" {
		end--
	}
	return rows[start:end]
}
