package render

import "github.com/dkoosis/nfo/pkg/glyph"

// Preset names.
const (
	PresetUnicode = "unicode"
	PresetANSI    = "ansi"
	PresetASCII   = "ascii"
)

// Preset is the pair of raster symbols used for lit and unlit pixels.
type Preset struct {
	Name string
	On   string
	Off  string
}

// UnicodePreset draws with full blocks.
func UnicodePreset() Preset {
	return Preset{Name: PresetUnicode, On: glyph.SymbolFullBlock, Off: glyph.SymbolBlank}
}

// ANSIPreset draws with dark shade blocks, as in classic CP437 art.
func ANSIPreset() Preset {
	return Preset{Name: PresetANSI, On: glyph.SymbolShadeBlock, Off: glyph.SymbolBlank}
}

// ASCIIPreset draws with hashes only.
func ASCIIPreset() Preset {
	return Preset{Name: PresetASCII, On: glyph.SymbolHash, Off: glyph.SymbolBlank}
}

// PresetByName returns a preset by name, defaulting to ASCIIPreset for
// names other than unicode and ansi.
func PresetByName(name string) Preset {
	switch name {
	case PresetUnicode:
		return UnicodePreset()
	case PresetANSI:
		return ANSIPreset()
	default:
		return ASCIIPreset()
	}
}
