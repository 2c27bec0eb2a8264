package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/nfo/pkg/design"
	"github.com/dkoosis/nfo/pkg/render"
)

// Source names recorded in ResolvedConfig.
const (
	SourceNetworkSafe = "network-safe"
	SourceCLI         = "cli"
	SourceEnv         = "env"
	SourceFile        = "file"
	SourceDefault     = "default"
)

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// Resolver holds the external lookups used during resolution. The zero value
// reads the process environment.
type Resolver struct {
	Env     Env
	NoColor func() bool
	Log     zerolog.Logger
}

// ResolvedConfig holds the final configuration after applying all priority
// rules.
type ResolvedConfig struct {
	Options render.Options

	NetworkSafe bool
	Debug       bool
	Verbosity   int
	ConfigPath  string

	// Resolution metadata (for debugging)
	PresetSource  string
	BorderSource  string
	PaletteSource string
	FontSource    string
	CharsetSource string
	VTSafeSource  string
}

// Resolve resolves configuration from all sources with explicit priority
// order. The network-safe override is decided first and wins over every
// other source for the values it controls.
func (r Resolver) Resolve(cliFlags CliFlags) (*ResolvedConfig, error) {
	env := r.Env
	if env == nil {
		env = os.LookupEnv
	}
	noColor := r.NoColor
	if noColor == nil {
		noColor = termenv.EnvNoColor
	}

	appCfg, path := LoadConfig(cliFlags.ConfigFile, r.Log)
	r.Log.Debug().Stringer("file", appCfg).Msg("base configuration")

	networkSafe := cliFlags.NetworkSafe || appCfg.NetworkSafe
	envDebug, _ := env("NFO_DEBUG")

	resolved := &ResolvedConfig{
		NetworkSafe: networkSafe,
		Debug:       cliFlags.Debug || envDebug != "",
		Verbosity:   cliFlags.Verbosity,
		ConfigPath:  path,
	}
	opts := &resolved.Options

	if networkSafe {
		opts.Charset, resolved.CharsetSource = render.CharsetASCII, SourceNetworkSafe
		opts.VTSafe, resolved.VTSafeSource = true, SourceNetworkSafe
		opts.Palette, resolved.PaletteSource = design.PaletteNone, SourceNetworkSafe
		opts.Preset, resolved.PresetSource = render.PresetASCII, SourceNetworkSafe
	} else {
		opts.Preset, resolved.PresetSource = pick(cliFlags.PresetSet, cliFlags.Preset, env, "NFO_PRESET", appCfg.Preset, DefaultPreset)
		opts.Palette, resolved.PaletteSource = pick(cliFlags.PaletteSet, cliFlags.Palette, env, "NFO_PALETTE", appCfg.Palette, DefaultPalette)
		if !cliFlags.PaletteSet && noColor() {
			opts.Palette, resolved.PaletteSource = design.PaletteNone, SourceEnv
		}
		opts.Charset, resolved.CharsetSource = pick(cliFlags.CharsetSet, cliFlags.Charset, env, "", appCfg.Charset, DefaultCharset)
		opts.VTSafe, resolved.VTSafeSource = appCfg.VTSafe, SourceFile
		if cliFlags.VTSafeSet {
			opts.VTSafe, resolved.VTSafeSource = cliFlags.VTSafe, SourceCLI
		}
	}

	opts.Border, resolved.BorderSource = pick(cliFlags.BorderSet, cliFlags.Border, env, "NFO_BORDER", appCfg.Border, DefaultBorder)
	opts.Font, resolved.FontSource = pick(cliFlags.FontSet, cliFlags.Font, env, "NFO_FONT", appCfg.Font, "")
	opts.Align, _ = pick(cliFlags.AlignSet, cliFlags.Align, env, "", appCfg.Align, DefaultAlign)

	opts.Wrap = appCfg.Wrap
	if cliFlags.WrapSet {
		opts.Wrap = cliFlags.Wrap
	}
	opts.NFO = appCfg.NFO
	if cliFlags.NFOSet {
		opts.NFO = cliFlags.NFO
	}
	opts.Title = cliFlags.Title
	if opts.Title == "" {
		opts.Title = appCfg.Title
	}
	opts.Padding = design.DefaultPadding
	if appCfg.Padding != nil {
		opts.Padding = *appCfg.Padding
	}
	opts.Metadata = ResolveMetadata(cliFlags.Metadata, appCfg.Metadata.metadata(), env)

	if path == "" {
		resolved.demoteFileSources()
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	r.Log.Debug().
		Str("preset", opts.Preset+" ("+resolved.PresetSource+")").
		Str("border", opts.Border+" ("+resolved.BorderSource+")").
		Str("palette", opts.Palette+" ("+resolved.PaletteSource+")").
		Bool("vt_safe", opts.VTSafe).
		Bool("network_safe", networkSafe).
		Msg("resolved configuration")
	return resolved, nil
}

// demoteFileSources relabels values that came from the built-in defaults
// merged into AppConfig when no file was read.
func (c *ResolvedConfig) demoteFileSources() {
	for _, src := range []*string{&c.PresetSource, &c.BorderSource, &c.PaletteSource, &c.FontSource, &c.CharsetSource, &c.VTSafeSource} {
		if *src == SourceFile {
			*src = SourceDefault
		}
	}
}

// pick resolves one string setting: CLI, then envKey (when non-empty), then
// file, then def.
func pick(cliSet bool, cli string, env Env, envKey, file, def string) (string, string) {
	if cliSet {
		return cli, SourceCLI
	}
	if envKey != "" {
		if v, ok := env(envKey); ok && v != "" {
			return v, SourceEnv
		}
	}
	if file != "" {
		return file, SourceFile
	}
	return def, SourceDefault
}

// EnvKey returns the environment variable consulted for a metadata field:
// the name upper-cased with dashes and spaces turned into underscores.
func EnvKey(name string) string {
	name = strings.NewReplacer("-", "_", " ", "_").Replace(strings.TrimSpace(name))
	return cases.Upper(language.Und).String(name)
}

// ResolveField resolves one metadata field: the explicit value, else the
// environment variable for name, else fallback.
func ResolveField(explicit, name, fallback string, env Env) string {
	if explicit != "" {
		return explicit
	}
	if v, ok := env(EnvKey(name)); ok && v != "" {
		return v
	}
	return fallback
}

// ResolveMetadata resolves every NFO field with ResolveField, using file
// values as the last fallback.
func ResolveMetadata(explicit, file design.Metadata, env Env) design.Metadata {
	return design.Metadata{
		Release:   ResolveField(explicit.Release, "release", file.Release, env),
		Date:      ResolveField(explicit.Date, "date", file.Date, env),
		Supplier:  ResolveField(explicit.Supplier, "supplier", file.Supplier, env),
		CrackedBy: ResolveField(explicit.CrackedBy, "cracked-by", file.CrackedBy, env),
		Group:     ResolveField(explicit.Group, "group", file.Group, env),
		URL:       ResolveField(explicit.URL, "url", file.URL, env),
		Greets:    ResolveField(explicit.Greets, "greets", file.Greets, env),
		Notes:     ResolveField(explicit.Notes, "notes", file.Notes, env),
	}
}

// validateResolvedConfig rejects values the renderer has no fallback for.
// Unknown border and palette names are not errors; they fall back when
// rendering.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	o := cfg.Options

	validPresets := map[string]bool{render.PresetUnicode: true, render.PresetANSI: true, render.PresetASCII: true}
	if !validPresets[o.Preset] {
		return fmt.Errorf("invalid preset: %s (must be: unicode, ansi, ascii)", o.Preset)
	}

	validAlign := map[string]bool{render.AlignLeft: true, render.AlignCenter: true}
	if !validAlign[o.Align] {
		return fmt.Errorf("invalid align: %s (must be: left, center)", o.Align)
	}

	validCharset := map[string]bool{render.CharsetUnicode: true, render.CharsetASCII: true}
	if !validCharset[o.Charset] {
		return fmt.Errorf("invalid charset: %s (must be: unicode, ascii)", o.Charset)
	}

	if o.Wrap < 0 {
		return fmt.Errorf("wrap must not be negative, got: %d", o.Wrap)
	}
	if o.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got: %d", o.Padding)
	}
	return nil
}
