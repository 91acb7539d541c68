// Package config manages application configuration.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/roboco-io/pnmedit/internal/ir"
	"github.com/roboco-io/pnmedit/internal/netpbm"
)

// Environment variables that override file values.
const (
	EnvConfig    = "PNMEDIT_CONFIG"
	EnvOutputDir = "PNMEDIT_OUTPUT_DIR"
	EnvVerbose   = "PNMEDIT_VERBOSE"
)

// Config represents the application configuration.
type Config struct {
	OutputDir  string            `yaml:"output_dir"`
	MaxPixels  int               `yaml:"max_pixels"`
	Extensions netpbm.Extensions `yaml:"extensions"`
	Log        LogConfig         `yaml:"log"`
}

// LogConfig contains logging options.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Keys lists the settable keys in display order.
var Keys = []string{
	"output_dir",
	"max_pixels",
	"extensions.color",
	"extensions.gray",
	"log.verbose",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxPixels:  ir.DefaultMaxPixels,
		Extensions: netpbm.DefaultExtensions(),
	}
}

// DecodeOptions returns decoder options derived from the configuration.
func (c *Config) DecodeOptions() netpbm.Options {
	opts := netpbm.DefaultOptions()
	if c.MaxPixels > 0 {
		opts.MaxPixels = c.MaxPixels
	}
	return opts
}

// ApplyEnv overrides file values with PNMEDIT_* environment variables.
func (c *Config) ApplyEnv() {
	c.OutputDir = GetEnvOrDefault(EnvOutputDir, c.OutputDir)
	if GetEnvBool(EnvVerbose) {
		c.Log.Verbose = true
	}
}

// Set updates a single key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output_dir":
		c.OutputDir = value

	case "max_pixels":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid max_pixels value: %s (must be a positive integer)", value)
		}
		c.MaxPixels = n

	case "extensions.color", "extensions.gray":
		if !strings.HasPrefix(value, ".") || len(value) < 2 {
			return fmt.Errorf("invalid extension: %s (must start with '.')", value)
		}
		if key == "extensions.color" {
			c.Extensions.Color = value
		} else {
			c.Extensions.Gray = value
		}

	case "log.verbose":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid log.verbose value: %s (must be true or false)", value)
		}
		c.Log.Verbose = v

	default:
		return fmt.Errorf("unknown config key: %s\nsupported keys: %s", key, strings.Join(Keys, ", "))
	}
	return nil
}

// IsKey reports whether key can be passed to Set.
func IsKey(key string) bool {
	return lo.Contains(Keys, key)
}
