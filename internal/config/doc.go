// Package config resolves the banner configuration.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. --network-safe (forces charset ascii, VT-safe colors, palette none and
//     preset ascii before anything else is consulted)
//  2. CLI flags (--preset, --border, --gradient, --figlet-font, ...)
//  3. Environment variables (NFO_PRESET, NFO_BORDER, NFO_PALETTE, NFO_FONT,
//     NO_COLOR)
//  4. YAML config file (--config, .nfo.yaml in the working directory, or
//     $XDG_CONFIG_HOME/nfo/config.yaml)
//  5. Hardcoded defaults
//
// # Metadata Fields
//
// Each NFO field resolves independently: an explicit flag value wins, then
// an environment variable named after the field (upper-cased, separators
// turned into underscores: cracked-by reads CRACKED_BY), then the config
// file, else the empty string. Empty fields are still rendered.
//
// # Environment Variables
//
//   - NFO_PRESET, NFO_BORDER, NFO_PALETTE, NFO_FONT: defaults for the flags
//   - NO_COLOR: any value selects the none palette unless --gradient is given
//   - NFO_DEBUG: any non-empty value enables debug logging
package config
