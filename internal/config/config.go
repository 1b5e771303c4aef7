package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a rateconv run.
type Config struct {
	Provider   string
	InputPath  string
	OutputPath string

	LogFormat string // "text" or "json"
	Verbose   bool

	// OutputDelimiter separates canonical fields in the output file.
	// Defaults to comma; the legacy DB loader format uses "|".
	OutputDelimiter string `yaml:"output_delimiter"`

	// KeepPartial leaves the partial output file in place when a run
	// aborts on a malformed row, for debugging.
	KeepPartial bool `yaml:"keep_partial"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	OutputDelimiter string `yaml:"output_delimiter"`
	KeepPartial     *bool  `yaml:"keep_partial"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values present in the file override flag defaults.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.OutputDelimiter != "" {
		c.OutputDelimiter = yc.OutputDelimiter
	}
	if yc.KeepPartial != nil {
		c.KeepPartial = *yc.KeepPartial
	}
	return nil
}

// Delimiter returns the output delimiter as a rune.
func (c *Config) Delimiter() rune {
	if c.OutputDelimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.OutputDelimiter)
	return r
}

// Validate checks the config fields that do not require touching any file.
func (c *Config) Validate() error {
	if c.OutputDelimiter != "" && utf8.RuneCountInString(c.OutputDelimiter) != 1 {
		return fmt.Errorf("output_delimiter must be a single character, got %q", c.OutputDelimiter)
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
