// Package config loads lvpatrol settings from YAML: which map file to read
// (selected by a dev/prod profile), search tuning, and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile names shipped in DefaultConfig.
const (
	ProfileDev  = "dev"
	ProfileProd = "prod"
)

var (
	// ErrUnknownProfile indicates the active profile is not defined.
	ErrUnknownProfile = errors.New("config: unknown profile")
	// ErrInvalid indicates a field failed validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds all lvpatrol configuration.
type Config struct {
	// Profile selects an entry of Profiles.
	Profile string `yaml:"profile"`

	// Profiles maps a profile name to its input settings.
	Profiles map[string]ProfileConfig `yaml:"profiles"`

	// Input, when set, bypasses Profiles entirely.
	Input string `yaml:"input,omitempty"`

	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProfileConfig names the map file for one profile.
type ProfileConfig struct {
	Input string `yaml:"input"`
}

// SearchConfig tunes the simulator and the obstacle-placement search.
type SearchConfig struct {
	Workers  int `yaml:"workers"`   // 0 = one per CPU
	MaxSteps int `yaml:"max_steps"` // 0 = derived from map size
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// DefaultConfig returns the default configuration: the dev profile reads
// the bundled example map, prod reads input.txt.
func DefaultConfig() *Config {
	return &Config{
		Profile: ProfileDev,
		Profiles: map[string]ProfileConfig{
			ProfileDev:  {Input: filepath.Join("testdata", "example.txt")},
			ProfileProd: {Input: "input.txt"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies PATROL_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PATROL_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := os.Getenv("PATROL_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("PATROL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PATROL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PATROL_WORKERS=%q", ErrInvalid, v)
		}
		c.Search.Workers = n
	}
	return nil
}

// InputPath returns the map file to read: Input if set, otherwise the
// active profile's input.
func (c *Config) InputPath() (string, error) {
	if c.Input != "" {
		return c.Input, nil
	}
	p, ok := c.Profiles[c.Profile]
	if !ok {
		return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownProfile, c.Profile, strings.Join(c.ProfileNames(), ", "))
	}
	if p.Input == "" {
		return "", fmt.Errorf("%w: profile %q has no input", ErrInvalid, c.Profile)
	}
	return p.Input, nil
}

// ProfileNames lists the defined profiles, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.InputPath(); err != nil {
		return err
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must be >= 0, got %d", ErrInvalid, c.Search.Workers)
	}
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("%w: search.max_steps must be >= 0, got %d", ErrInvalid, c.Search.MaxSteps)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}
