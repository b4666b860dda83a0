// Package config loads runtime settings from defaults, an optional config
// file, PALETTE_MCP_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ironsheep/palette-tools-mcp/internal/logging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "PALETTE_MCP"

// DefaultConfigPath is read when no config file is named. It is optional.
const DefaultConfigPath = "~/.config/palette-mcp/config.yaml"

// Keys understood in config files and the environment.
const (
	KeyPrecision   = "precision"
	KeySampleSize  = "sample_size"
	KeySeed        = "seed"
	KeyReseedEmpty = "reseed_empty"
	KeyHueAverage  = "hue_average"
	KeyAlgorithm   = "algorithm"
	KeyLogLevel    = "log_level"
	KeyLogJSON     = "log_json"
)

var keys = []string{
	KeyPrecision, KeySampleSize, KeySeed, KeyReseedEmpty,
	KeyHueAverage, KeyAlgorithm, KeyLogLevel, KeyLogJSON,
}

// Config is the resolved runtime configuration.
type Config struct {
	Precision   int    `json:"precision"`
	SampleSize  int    `json:"sample_size"`
	Seed        int64  `json:"seed"`
	ReseedEmpty bool   `json:"reseed_empty"`
	HueAverage  string `json:"hue_average"`
	Algorithm   string `json:"algorithm"`
	LogLevel    string `json:"log_level"`
	LogJSON     bool   `json:"log_json"`

	// File is the config file that was read, empty if none.
	File string `json:"file,omitempty"`
}

// FlagName returns the command-line flag bound to key: underscores become
// hyphens, so sample_size is --sample-size.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	p := palette.DefaultConfig()
	return &Config{
		Precision:   p.Precision,
		SampleSize:  p.SampleSize,
		Seed:        p.Seed,
		ReseedEmpty: p.ReseedEmpty,
		HueAverage:  string(palette.HueCircular),
		Algorithm:   string(p.Algorithm),
		LogLevel:    logging.DefaultLevel,
	}
}

// Load resolves the configuration.
//
// path names a config file (YAML, JSON or TOML by extension); it must exist.
// An empty path falls back to DefaultConfigPath, which is skipped when
// absent. flags may be nil; otherwise every flag named by FlagName(key) is
// bound and overrides the other sources when set on the command line.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyPrecision, def.Precision)
	v.SetDefault(KeySampleSize, def.SampleSize)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyReseedEmpty, def.ReseedEmpty)
	v.SetDefault(KeyHueAverage, def.HueAverage)
	v.SetDefault(KeyAlgorithm, def.Algorithm)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogJSON, def.LogJSON)

	file, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range keys {
			if f := flags.Lookup(FlagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := &Config{
		Precision:   v.GetInt(KeyPrecision),
		SampleSize:  v.GetInt(KeySampleSize),
		Seed:        v.GetInt64(KeySeed),
		ReseedEmpty: v.GetBool(KeyReseedEmpty),
		HueAverage:  v.GetString(KeyHueAverage),
		Algorithm:   v.GetString(KeyAlgorithm),
		LogLevel:    v.GetString(KeyLogLevel),
		LogJSON:     v.GetBool(KeyLogJSON),
		File:        file,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveFile(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		if explicit {
			return "", fmt.Errorf("invalid config path %s: %w", path, err)
		}
		return "", nil
	}

	if _, err := os.Stat(expanded); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("config file %s: %w", expanded, err)
	}
	return expanded, nil
}

// Validate checks every setting. Errors wrap palette.ErrInvalidArgument.
func (c *Config) Validate() error {
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := palette.ParseHueAverage(c.HueAverage); err != nil {
		return err
	}
	return nil
}

// Palette converts the configuration into an extractor configuration.
func (c *Config) Palette() (palette.Config, error) {
	algo, err := palette.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return palette.Config{}, err
	}
	pc := palette.Config{
		Precision:   c.Precision,
		SampleSize:  c.SampleSize,
		Seed:        c.Seed,
		ReseedEmpty: c.ReseedEmpty,
		Algorithm:   algo,
	}
	if err := pc.Validate(); err != nil {
		return palette.Config{}, err
	}
	return pc, nil
}

// HueMode returns the configured hue averaging mode, defaulting to circular.
func (c *Config) HueMode() palette.HueAverage {
	mode, err := palette.ParseHueAverage(c.HueAverage)
	if err != nil {
		return palette.HueCircular
	}
	return mode
}

// LoggingOptions returns logger options for this configuration.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, JSON: c.LogJSON}
}
