package game

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no lives", mutate: func(c *Config) { c.StartingLives = 0 }},
		{name: "negative points", mutate: func(c *Config) { c.PointsPerMatch = -1 }},
		{name: "no organisms shown", mutate: func(c *Config) { c.MaxVisibleOrganisms = 0 }},
		{name: "empty schedule", mutate: func(c *Config) { c.TraitSchedule = nil }},
		{name: "zero traits", mutate: func(c *Config) { c.TraitSchedule = []int{0} }},
		{name: "decreasing schedule", mutate: func(c *Config) { c.TraitSchedule = []int{6, 4} }},
	}
	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestVisibleTraitCountSchedules(t *testing.T) {
	fixed := DefaultConfig()
	for level := 1; level <= 7; level++ {
		if got := fixed.VisibleTraitCount(level); got != 6 {
			t.Fatalf("fixed schedule level %d: got %d want 6", level, got)
		}
	}

	ramp := DefaultConfig()
	ramp.TraitSchedule = RampSchedule()
	want := []int{4, 6, 8, 10, 12, 12, 12}
	prev := 0
	for i, w := range want {
		got := ramp.VisibleTraitCount(i + 1)
		if got != w {
			t.Fatalf("ramp level %d: got %d want %d", i+1, got, w)
		}
		if got < prev {
			t.Fatalf("ramp must be non-decreasing at level %d", i+1)
		}
		prev = got
	}
	if got := ramp.VisibleTraitCount(0); got != 4 {
		t.Fatalf("levels below 1 clamp to level 1, got %d", got)
	}
}
