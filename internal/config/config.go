package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is looked up in the working directory by Load.
	ConfigFileName = "dirty.json"

	// DefaultAddr is the default listen address for the serve command.
	DefaultAddr = "localhost:3000"

	// DefaultFlushEvery is the default streaming flush cadence.
	DefaultFlushEvery = 32
)

// Config is the dirty.json schema.
type Config struct {
	// Addr is the listen address for the serve command.
	Addr string `json:"addr,omitempty"`

	// FlushEvery is how many fragments to buffer before flushing a
	// streamed response.
	FlushEvery int `json:"flush_every,omitempty"`

	// Compress enables gzip compression of streamed responses.
	Compress bool `json:"compress,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `json:"metrics,omitempty"`
}

// New returns a Config carrying the defaults.
func New() *Config {
	return &Config{
		Addr:       DefaultAddr,
		FlushEvery: DefaultFlushEvery,
	}
}

// Load reads dirty.json from dir. A missing file is not an error; it
// yields the defaults.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from an explicitly named file, which is
// expected to exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills fields the file explicitly zeroed or left unset.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.FlushEvery == 0 {
		c.FlushEvery = DefaultFlushEvery
	}
}

// Validate rejects values that would misbehave at runtime.
func (c *Config) Validate() error {
	if c.FlushEvery < 1 {
		return fmt.Errorf("config: flush_every must be at least 1, got %d", c.FlushEvery)
	}
	return nil
}
