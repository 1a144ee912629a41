package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/subtlepseudonym/sundial"
)

type Config struct {
	Listen   string           `json:"listen,omitempty"`
	Location sundial.Location `json:"location"`
	Jobs     []Job            `json:"jobs"`
}

// Job defines when to log a solar position report. Schedule is
// either a standard cron spec or a sun event prefixed with "@",
// optionally followed by an offset duration, e.g. "@sunset -1h".
type Job struct {
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", c.Location.Longitude)
	}

	for _, job := range c.Jobs {
		if job.Schedule == "" {
			return fmt.Errorf("job %q has no schedule", job.Name)
		}
	}

	return nil
}
