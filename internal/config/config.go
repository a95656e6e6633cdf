// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package config loads pathglob CLI settings from TOML.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/woozymasta/pathglob"
)

const (
	defaultPlatform     = "auto"
	defaultOutputFormat = "text"
	defaultOutputColor  = "auto"
	defaultLogLevel     = "warn"
	defaultLogFormat    = "text"
)

// Config is the CLI configuration file model.
type Config struct {
	// Platform is "auto", "posix" or "windows".
	Platform string `toml:"platform"`
	// WorkingDir roots relative patterns instead of the process working directory.
	WorkingDir string `toml:"working_dir"`
	// HomeDir replaces "~" when ExpandHome is set.
	HomeDir string `toml:"home_dir"`
	// ExpandHome enables "~" expansion.
	ExpandHome bool `toml:"expand_home"`

	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls command result rendering.
type OutputConfig struct {
	// Format is "text", "json" or "yaml".
	Format string `toml:"format"`
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format"`
}

// Default returns configuration with every field defaulted.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads TOML from path, expands environment variables, applies
// defaults and validates the result. Empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("decode TOML %q: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := pathglob.ParsePlatform(c.Platform); err != nil {
		return fmt.Errorf("platform: %w", err)
	}

	if err := oneOf("output.format", c.Output.Format, "text", "json", "yaml"); err != nil {
		return err
	}

	if err := oneOf("output.color", c.Output.Color, "auto", "always", "never"); err != nil {
		return err
	}

	if err := oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}

	return oneOf("log.format", c.Log.Format, "text", "json")
}

// PatternOptions converts the configuration into pattern construction options.
func (c *Config) PatternOptions() (pathglob.Options, error) {
	platform, err := pathglob.ParsePlatform(c.Platform)
	if err != nil {
		return pathglob.Options{}, err
	}

	return pathglob.Options{
		Platform:   platform,
		WorkingDir: c.WorkingDir,
		HomeDir:    c.HomeDir,
		ExpandHome: c.ExpandHome,
	}, nil
}

// applyDefaults fills empty values and lower-cases enumerations.
func (c *Config) applyDefaults() {
	c.Platform = lowerOrDefault(c.Platform, defaultPlatform)
	c.Output.Format = lowerOrDefault(c.Output.Format, defaultOutputFormat)
	c.Output.Color = lowerOrDefault(c.Output.Color, defaultOutputColor)
	c.Log.Level = lowerOrDefault(c.Log.Level, defaultLogLevel)
	c.Log.Format = lowerOrDefault(c.Log.Format, defaultLogFormat)
}

func oneOf(field string, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	return fmt.Errorf("%s: unsupported value %q (want one of %s)", field, value, strings.Join(allowed, ", "))
}

func lowerOrDefault(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}

	return value
}
