// Package config loads the optional aoc.yaml settings file.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	adverrors "github.com/aledsdavies/advent/internal/errors"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "aoc.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the CLI settings.
type Config struct {
	InputDir     string `yaml:"input_dir"`
	InputPattern string `yaml:"input_pattern"`
	LogLevel     string `yaml:"log_level"`
	Color        string `yaml:"color"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		InputDir:     "inputs",
		InputPattern: "day%02d.txt",
		LogLevel:     "warn",
		Color:        ColorAuto,
	}
}

// Load reads path over the defaults. A missing file is not an error.
// AOC_INPUT_DIR and AOC_LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, adverrors.NewConfigError(fmt.Sprintf("failed to read config %s", path), err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, adverrors.NewConfigError(fmt.Sprintf("failed to parse config %s", path), err).
				WithContext("path", path)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, adverrors.NewConfigError(fmt.Sprintf("invalid config %s", path), err).
			WithContext("path", path)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("AOC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if err := checkPattern(c.InputPattern); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// checkPattern requires exactly one integer verb such as %d or %02d.
func checkPattern(pattern string) error {
	verbs := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i < len(pattern) && pattern[i] == '%' {
			continue
		}
		for i < len(pattern) && strings.IndexByte("0123456789-+ #", pattern[i]) >= 0 {
			i++
		}
		if i >= len(pattern) || pattern[i] != 'd' {
			return fmt.Errorf("input_pattern %q: only %%d verbs are allowed", pattern)
		}
		verbs++
	}
	if verbs != 1 {
		return fmt.Errorf("input_pattern %q must contain exactly one %%d verb, found %d", pattern, verbs)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// InputFile returns the default input file name for day n.
func (c *Config) InputFile(n int) string {
	return fmt.Sprintf(c.InputPattern, n)
}
