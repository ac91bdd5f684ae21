// Package config loads pdsctl settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/naoina/toml"

	"github.com/aglyzov/go-pds/internal/log"
)

// Config is the top level configuration.
type Config struct {
	Log      LogConfig      `toml:"log"`
	Replacer ReplacerConfig `toml:"replacer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Colour bool   `toml:"colour"`
}

// ReplacerConfig holds the LRU-K replacer settings.
type ReplacerConfig struct {
	Frames int `toml:"frames"`
	K      int `toml:"k"`
}

const (
	defaultFrames = 64
	defaultK      = 2
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: log.Info.String(),
		},
		Replacer: ReplacerConfig{
			Frames: defaultFrames,
			K:      defaultK,
		},
	}
}

// Load decodes the file at path on top of the defaults and validates the result.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot open config: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("cannot close config: %w", closeErr)
		}
	}()

	if err = toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values for consistency.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %s", ErrInvalidConfig, err)
	}

	if c.Replacer.Frames <= 0 {
		return fmt.Errorf("%w: replacer frames must be positive, got %d", ErrInvalidConfig, c.Replacer.Frames)
	}

	if c.Replacer.K <= 0 {
		return fmt.Errorf("%w: replacer k must be positive, got %d", ErrInvalidConfig, c.Replacer.K)
	}

	return nil
}
