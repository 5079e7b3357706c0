package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/micromatch/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Lives != 3 || s.Points != 10 || s.Organisms != 4 || s.ScoresPath != "micromatch-scores.db" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	cfg := s.GameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default settings give invalid game config: %v", err)
	}
	if cfg.VisibleTraitCount(3) != game.DefaultVisibleTraits {
		t.Fatalf("expected fixed schedule by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MICROMATCH_SEED", "42")
	t.Setenv("MICROMATCH_LIVES", "5")
	t.Setenv("MICROMATCH_TRAIT_RAMP", "true")
	t.Setenv("MICROMATCH_PLAYER", "ada")

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := s.GameConfig()
	if cfg.Seed != 42 || cfg.StartingLives != 5 || s.Player != "ada" {
		t.Fatalf("env not applied: %+v", s)
	}
	if cfg.VisibleTraitCount(1) != 4 || cfg.VisibleTraitCount(9) != 12 {
		t.Fatalf("expected ramp schedule, got %v", cfg.TraitSchedule)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("MICROMATCH_LIVES", "not-an-int")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestCatalogSelection(t *testing.T) {
	builtIn, err := Settings{}.Catalog()
	if err != nil || builtIn.Len() != game.BuiltInCatalog().Len() {
		t.Fatalf("expected built-in catalog, got %d organisms err=%v", builtIn.Len(), err)
	}

	path := filepath.Join(t.TempDir(), "mini.yaml")
	if err := os.WriteFile(path, []byte("organisms:\n  - name: Solo\n    cultural: [one]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	custom, err := Settings{CatalogPath: path}.Catalog()
	if err != nil || custom.Len() != 1 {
		t.Fatalf("expected custom catalog, got %d organisms err=%v", custom.Len(), err)
	}

	if _, err := (Settings{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")}).Catalog(); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
