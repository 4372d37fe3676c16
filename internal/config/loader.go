package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if KHL_CONFIG is set
//  3. env (prefix KHL_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("KHL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: KHL_URL, KHL_TEAM, KHL_OUTPUT_FILE, ...
	// Underscores are preserved so keys line up with the koanf tags.
	envProvider := env.Provider("KHL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "khl_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.URL == "" {
		return nil, errors.New("url must not be empty")
	}
	if cfg.Team == "" {
		return nil, errors.New("team must not be empty")
	}
	if cfg.OutputFile == "" {
		return nil, errors.New("output_file must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("timeout_seconds must be positive")
	}
	return &cfg, nil
}
