// Package config loads agent settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Debug turns on debug-level tracing of action execution and decisions.
	Debug bool `yaml:"debug"`
	// Seed seeds the baseline strategies' random choices. 0 picks a random seed.
	Seed        uint64      `yaml:"seed"`
	LocalSearch LocalSearch `yaml:"local_search"`
}

type LocalSearch struct {
	// Steps is the number of scouting moves made before committing to fences.
	Steps int `yaml:"steps"`
	// Margin is how close to the deadline scouting stops and fences are chosen.
	Margin time.Duration `yaml:"margin"`
}

func Default() Config {
	return Config{
		LocalSearch: LocalSearch{
			Steps:  2,
			Margin: 50 * time.Millisecond,
		},
	}
}

// Load reads a YAML config file. Unset keys keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LocalSearch.Steps < 0 {
		return fmt.Errorf("local_search.steps %d is negative: %w", c.LocalSearch.Steps, ErrInvalidConfig)
	}
	if c.LocalSearch.Margin < 0 {
		return fmt.Errorf("local_search.margin %s is negative: %w", c.LocalSearch.Margin, ErrInvalidConfig)
	}
	return nil
}

// NewLogger returns a logger writing to w, at debug level when Debug is set and
// info level otherwise.
func (c Config) NewLogger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if c.Debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
