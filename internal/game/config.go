package game

import (
	"fmt"
)

const (
	DefaultStartingLives       = 3
	DefaultPointsPerMatch      = 10
	DefaultMaxVisibleOrganisms = 4
	DefaultVisibleTraits       = 6
)

type Config struct {
	Seed                int64
	StartingLives       int
	PointsPerMatch      int
	MaxVisibleOrganisms int
	// TraitSchedule[i] is the visible trait count on level i+1; the last entry
	// applies to every later level.
	TraitSchedule []int
}

func DefaultConfig() Config {
	return Config{
		StartingLives:       DefaultStartingLives,
		PointsPerMatch:      DefaultPointsPerMatch,
		MaxVisibleOrganisms: DefaultMaxVisibleOrganisms,
		TraitSchedule:       FixedSchedule(),
	}
}

func FixedSchedule() []int {
	return []int{DefaultVisibleTraits}
}

func RampSchedule() []int {
	return []int{4, 6, 8, 10, 12}
}

func (c Config) Validate() error {
	if c.StartingLives < 1 {
		return fmt.Errorf("starting lives must be at least 1, got %d", c.StartingLives)
	}
	if c.PointsPerMatch < 0 {
		return fmt.Errorf("points per match must not be negative, got %d", c.PointsPerMatch)
	}
	if c.MaxVisibleOrganisms < 1 {
		return fmt.Errorf("max visible organisms must be at least 1, got %d", c.MaxVisibleOrganisms)
	}
	if len(c.TraitSchedule) == 0 {
		return fmt.Errorf("trait schedule is empty")
	}
	prev := 0
	for i, n := range c.TraitSchedule {
		if n < 1 {
			return fmt.Errorf("trait schedule level %d must show at least 1 trait, got %d", i+1, n)
		}
		if n < prev {
			return fmt.Errorf("trait schedule must not decrease: level %d shows %d after %d", i+1, n, prev)
		}
		prev = n
	}
	return nil
}

func (c Config) VisibleTraitCount(level int) int {
	if len(c.TraitSchedule) == 0 {
		return DefaultVisibleTraits
	}
	if level < 1 {
		level = 1
	}
	i := min(level-1, len(c.TraitSchedule)-1)
	return c.TraitSchedule[i]
}
