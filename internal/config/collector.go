package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Collector configures the collector CLI. Values come from defaults, then
// the YAML file, then CHOICETRAIL_* environment variables.
type Collector struct {
	// Endpoint is the aggregator URL; empty means log-only mode
	Endpoint string        `yaml:"endpoint" env:"CHOICETRAIL_ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout" env:"CHOICETRAIL_TIMEOUT"`

	CapturePhone bool          `yaml:"capture_phone" env:"CHOICETRAIL_CAPTURE_PHONE"`
	Cooldown     time.Duration `yaml:"cooldown" env:"CHOICETRAIL_COOLDOWN"`
	RecentWindow int           `yaml:"recent_window" env:"CHOICETRAIL_RECENT_WINDOW"`
	MaxDepth     int           `yaml:"max_depth" env:"CHOICETRAIL_MAX_DEPTH"`
	MaxInFlight  int           `yaml:"max_in_flight" env:"CHOICETRAIL_MAX_IN_FLIGHT"`

	Debug bool `yaml:"debug" env:"CHOICETRAIL_DEBUG"`
}

// DefaultCollector returns the collector defaults
func DefaultCollector() *Collector {
	return &Collector{
		Timeout:      10 * time.Second,
		CapturePhone: true,
		Cooldown:     2 * time.Second,
		RecentWindow: 10,
		MaxDepth:     5,
		MaxInFlight:  8,
	}
}

// LoadCollector loads the YAML file at path. A missing file or empty path
// leaves the defaults in place.
func LoadCollector(path string) (*Collector, error) {
	cfg := DefaultCollector()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Save writes the config as YAML
func (c *Collector) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
