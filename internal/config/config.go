// Package config loads the checkers command configuration from the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/benbeisheim/checkers-backend/internal/console"
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"CHECKERS_LOG_LEVEL" envDefault:"warn"`
	Color    string `env:"CHECKERS_COLOR" envDefault:"auto"`
	First    string `env:"CHECKERS_FIRST" envDefault:"black"`
}

// Load reads dotenvFile when it exists and then parses the environment.
// Variables already set in the environment win over the file.
func Load(dotenvFile string) (Config, error) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvFile, err)
		}
	}
	return ParseEnv()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Settings are the enumerated options of a Config in parsed form.
type Settings struct {
	Color console.ColorMode
	First model.Color
}

// Settings parses the enumerated options. The log level is checked when
// the logger is configured.
func (c Config) Settings() (Settings, error) {
	mode, err := console.ParseColorMode(c.Color)
	if err != nil {
		return Settings{}, err
	}
	first, err := model.ParseColor(c.First)
	if err != nil {
		return Settings{}, fmt.Errorf("first player: %w", err)
	}
	return Settings{Color: mode, First: first}, nil
}
