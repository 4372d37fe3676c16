// Package config defines the tool's configuration and its loading order.
//
// Values are layered, lowest precedence first: built-in defaults, an
// optional YAML file named by KHL_CONFIG, then KHL_-prefixed environment
// variables. CLI flags override the loaded config in the cli package.
package config

import (
	"time"

	"github.com/SubFearix/khl-results/internal/scraper"
)

// Config contains process configuration.
type Config struct {
	// URL is the calendar page to fetch.
	URL string `koanf:"url"`

	// Team is the tracked team; sides are matched by substring containment.
	Team string `koanf:"team"`

	// OutputFile is the xlsx path, relative to the working directory.
	OutputFile string `koanf:"output_file"`

	// TimeoutSeconds bounds the single page request.
	TimeoutSeconds int `koanf:"timeout_seconds"`

	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New creates a Config with the defaults for the 2024/25 Sibir season.
func New() *Config {
	return &Config{
		URL:            scraper.DefaultCalendarURL,
		Team:           "Сибирь",
		OutputFile:     "sibir_results_2024_25.xlsx",
		TimeoutSeconds: 30,
		LogLevel:       "info",
	}
}

// Timeout returns TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
