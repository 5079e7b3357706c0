// Package config loads runtime settings from MICROMATCH_* environment
// variables and turns them into engine configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/appengine-ltd/micromatch/internal/game"
)

type Settings struct {
	Seed        int64  `env:"MICROMATCH_SEED"`
	CatalogPath string `env:"MICROMATCH_CATALOG"`
	ScoresPath  string `env:"MICROMATCH_SCORES_DB" envDefault:"micromatch-scores.db"`
	NoScores    bool   `env:"MICROMATCH_NO_SCORES"`
	LogFile     string `env:"MICROMATCH_LOG_FILE" envDefault:"micromatch.log"`
	Player      string `env:"MICROMATCH_PLAYER" envDefault:"player"`
	Lives       int    `env:"MICROMATCH_LIVES" envDefault:"3"`
	Points      int    `env:"MICROMATCH_POINTS" envDefault:"10"`
	Organisms   int    `env:"MICROMATCH_VISIBLE_ORGANISMS" envDefault:"4"`
	TraitRamp   bool   `env:"MICROMATCH_TRAIT_RAMP"`
	Mute        bool   `env:"MICROMATCH_MUTE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Seed = s.Seed
	cfg.StartingLives = s.Lives
	cfg.PointsPerMatch = s.Points
	cfg.MaxVisibleOrganisms = s.Organisms
	if s.TraitRamp {
		cfg.TraitSchedule = game.RampSchedule()
	}
	return cfg
}

// Catalog returns the configured catalog file, or the built-in organisms when
// no path is set.
func (s Settings) Catalog() (game.Catalog, error) {
	if s.CatalogPath == "" {
		return game.BuiltInCatalog(), nil
	}
	c, err := game.LoadCatalog(s.CatalogPath)
	if err != nil {
		return game.Catalog{}, fmt.Errorf("catalog %s: %w", s.CatalogPath, err)
	}
	return c, nil
}
