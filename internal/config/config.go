// Package config loads CLI settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/ngmat"
	"github.com/bjaus/ngmat/internal/logging"
)

// Environment variables that override file settings.
const (
	EnvDebug     = "NGMAT_DEBUG"
	EnvLogFormat = "NGMAT_LOG_FORMAT"
	EnvID        = "NGMAT_ID"
)

// ErrInvalid marks a bad value in the config file or the environment.
var ErrInvalid = errors.New("invalid config")

// Config holds CLI settings.
type Config struct {
	Debug     bool   `yaml:"debug,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`

	// ID fixes the generated identifier so output is reproducible.
	ID string `yaml:"id,omitempty"`

	// Defaults are per-kind attributes applied under explicit ones.
	Defaults map[ngmat.Kind]ngmat.Attributes `yaml:"defaults,omitempty"`
}

// configPathFunc can be overridden in tests.
var configPathFunc = defaultConfigPath

// defaultConfigPath returns ~/.config/ngmat/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ngmat", "config.yaml"), nil
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() (string, error) {
	return configPathFunc()
}

// LoadEnv loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set win. A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Load reads the config at path, or the default path when empty, and
// applies environment overrides. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads a single YAML file without environment overrides.
func LoadFromPath(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: file %s: %w", ErrInvalid, path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDebug, err)
		}
		c.Debug = b
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvID); v != "" {
		c.ID = v
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	for k := range c.Defaults {
		if _, err := ngmat.ParseKind(string(k)); err != nil {
			return fmt.Errorf("%w: defaults: %w", ErrInvalid, err)
		}
	}
	return nil
}

// IDSource returns a fixed source when ID is set, otherwise random ids.
func (c *Config) IDSource() ngmat.IDSource {
	if c.ID != "" {
		return ngmat.FixedID(c.ID)
	}
	return ngmat.RandomID()
}
