// Package config loads server and CLI settings from defaults, an optional
// TOML file and COLOR_MCP_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Keys recognized in the config file. The matching environment variable is
// the key upper-cased with '.' replaced by '_' and prefixed with COLOR_MCP_,
// e.g. log.level -> COLOR_MCP_LOG_LEVEL.
const (
	KeyLogLevel      = "log.level"
	KeyLogJSON       = "log.json"
	KeySwatchWidth   = "swatch.width"
	KeySwatchHeight  = "swatch.height"
	KeySwatchRoot    = "swatch.root"
	KeyConvertFormat = "convert.format"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "COLOR_MCP"

	// FileName is the config file base name, without extension.
	FileName = "color-mcp"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Default holds the factory value of every key.
var Default = map[string]any{
	KeyLogLevel:      "info",
	KeyLogJSON:       false,
	KeySwatchWidth:   64,
	KeySwatchHeight:  64,
	KeySwatchRoot:    "",
	KeyConvertFormat: colorconv.Hex8.String(),
}

// Config is the resolved configuration.
type Config struct {
	LogLevel      string
	LogJSON       bool
	SwatchWidth   int
	SwatchHeight  int
	ConvertFormat colorconv.Format

	// SwatchRoot is the directory swatch files are written under. Empty
	// disables writing swatches to disk.
	SwatchRoot string
}

// New returns a viper instance with defaults and environment bindings
// applied and, if one exists in searchPaths, the config file read from fs.
// A missing config file is not an error.
func New(fs afero.Fs, searchPaths ...string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(FileName)
	v.SetConfigType("toml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for name, value := range Default {
		v.SetDefault(name, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// FromViper resolves and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	format, err := colorconv.ParseFormat(v.GetString(KeyConvertFormat))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyConvertFormat, err)
	}

	cfg := &Config{
		LogLevel:      v.GetString(KeyLogLevel),
		LogJSON:       v.GetBool(KeyLogJSON),
		SwatchWidth:   v.GetInt(KeySwatchWidth),
		SwatchHeight:  v.GetInt(KeySwatchHeight),
		ConvertFormat: format,
		SwatchRoot:    v.GetString(KeySwatchRoot),
	}
	if cfg.SwatchWidth <= 0 || cfg.SwatchHeight <= 0 {
		return nil, fmt.Errorf("swatch size must be positive, got %dx%d", cfg.SwatchWidth, cfg.SwatchHeight)
	}
	return cfg, nil
}

// Load is New followed by FromViper.
func Load(fs afero.Fs, searchPaths ...string) (*Config, error) {
	v, err := New(fs, searchPaths...)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}
