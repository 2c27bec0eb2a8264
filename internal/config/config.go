package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/nfo/pkg/design"
	"github.com/dkoosis/nfo/pkg/render"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Preset      string
	Border      string
	Align       string
	Palette     string
	Font        string
	Charset     string
	Title       string
	ConfigFile  string
	Wrap        int
	VTSafe      bool
	NFO         bool
	NetworkSafe bool
	Debug       bool
	Verbosity   int

	// Metadata carries explicitly supplied NFO field values.
	Metadata design.Metadata

	// Flags to track if they were explicitly set by the user
	PresetSet  bool
	BorderSet  bool
	AlignSet   bool
	PaletteSet bool
	FontSet    bool
	CharsetSet bool
	WrapSet    bool
	VTSafeSet  bool
	NFOSet     bool
}

// AppConfig represents the optional YAML configuration file.
type AppConfig struct {
	Preset      string         `yaml:"preset"`
	Border      string         `yaml:"border"`
	Align       string         `yaml:"align"`
	Palette     string         `yaml:"palette"`
	Font        string         `yaml:"font"`
	Charset     string         `yaml:"charset"`
	Title       string         `yaml:"title"`
	Wrap        int            `yaml:"wrap"`
	Padding     *int           `yaml:"padding"`
	VTSafe      bool           `yaml:"vt_safe"`
	NFO         bool           `yaml:"nfo"`
	NetworkSafe bool           `yaml:"network_safe"`
	Metadata    MetadataConfig `yaml:"metadata"`
}

// MetadataConfig is the YAML form of the NFO fields.
type MetadataConfig struct {
	Release   string `yaml:"release"`
	Date      string `yaml:"date"`
	Supplier  string `yaml:"supplier"`
	CrackedBy string `yaml:"cracked_by"`
	Group     string `yaml:"group"`
	URL       string `yaml:"url"`
	Greets    string `yaml:"greets"`
	Notes     string `yaml:"notes"`
}

// Constants for default values.
const (
	DefaultPreset  = render.PresetUnicode
	DefaultBorder  = design.BorderDouble
	DefaultAlign   = render.AlignLeft
	DefaultPalette = "gradient"
	DefaultCharset = render.CharsetUnicode

	localConfigName = ".nfo.yaml"
	xdgConfigName   = "nfo/config.yaml"
)

// DefaultAppConfig returns the configuration used when no file is found.
func DefaultAppConfig() *AppConfig {
	padding := design.DefaultPadding
	return &AppConfig{
		Preset:  DefaultPreset,
		Border:  DefaultBorder,
		Align:   DefaultAlign,
		Palette: DefaultPalette,
		Charset: DefaultCharset,
		Padding: &padding,
	}
}

// LoadConfig loads the YAML configuration from explicitPath, or from the
// first config file found when explicitPath is empty. It returns the merged
// configuration and the path it was read from. Unreadable or malformed
// files are logged and ignored.
func LoadConfig(explicitPath string, log zerolog.Logger) (*AppConfig, string) {
	appCfg := DefaultAppConfig()

	configPath := getConfigPath(explicitPath, log)
	if configPath == "" {
		log.Debug().Msg("no config file found, using defaults")
		return appCfg, ""
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("reading config file, using defaults")
		return appCfg, ""
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("parsing config file, using defaults")
		return appCfg, ""
	}

	mergeAppConfig(appCfg, &fileCfg)
	log.Debug().Str("path", configPath).Msg("loaded config file")
	return appCfg, configPath
}

// mergeAppConfig copies every value set in src onto dst.
func mergeAppConfig(dst, src *AppConfig) {
	setString := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	setString(&dst.Preset, src.Preset)
	setString(&dst.Border, src.Border)
	setString(&dst.Align, src.Align)
	setString(&dst.Palette, src.Palette)
	setString(&dst.Font, src.Font)
	setString(&dst.Charset, src.Charset)
	setString(&dst.Title, src.Title)
	if src.Wrap != 0 {
		dst.Wrap = src.Wrap
	}
	if src.Padding != nil {
		p := *src.Padding
		dst.Padding = &p
	}
	dst.VTSafe = src.VTSafe
	dst.NFO = src.NFO
	dst.NetworkSafe = src.NetworkSafe
	dst.Metadata = src.Metadata
}

// getConfigPath finds the configuration file: the explicit path, then
// .nfo.yaml in the working directory, then the XDG config directory.
func getConfigPath(explicitPath string, log zerolog.Logger) string {
	if explicitPath != "" {
		return explicitPath
	}

	if _, err := os.Stat(localConfigName); err == nil {
		abs, _ := filepath.Abs(localConfigName)
		log.Debug().Str("path", abs).Msg("using local config file")
		return localConfigName
	}

	xdgPath, err := xdg.SearchConfigFile(xdgConfigName)
	if err != nil {
		log.Trace().Err(err).Msg("no XDG config file")
		return ""
	}
	return xdgPath
}

// metadata converts the YAML fields to design.Metadata.
func (m MetadataConfig) metadata() design.Metadata {
	return design.Metadata{
		Release:   m.Release,
		Date:      m.Date,
		Supplier:  m.Supplier,
		CrackedBy: m.CrackedBy,
		Group:     m.Group,
		URL:       m.URL,
		Greets:    m.Greets,
		Notes:     m.Notes,
	}
}

// String implements fmt.Stringer for debug logging.
func (c *AppConfig) String() string {
	return fmt.Sprintf("preset=%s border=%s palette=%s font=%q charset=%s", c.Preset, c.Border, c.Palette, c.Font, c.Charset)
}
