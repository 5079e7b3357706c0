package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/appengine-ltd/micromatch/internal/config"
	"github.com/appengine-ltd/micromatch/internal/game"
	"github.com/appengine-ltd/micromatch/internal/scores"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const openTimeout = 5 * time.Second

type options struct {
	showVersion bool
	tui         bool
	settings    config.Settings
}

func parseFlags(args []string, base config.Settings) (options, error) {
	opts := options{settings: base}
	s := &opts.settings

	fs := flag.NewFlagSet("micromatch", flag.ContinueOnError)
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&opts.tui, "tui", false, "run the terminal client instead of the window")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "deal seed (0 picks one from the clock)")
	fs.StringVar(&s.CatalogPath, "catalog", s.CatalogPath, "organism catalog YAML (built-in when empty)")
	fs.StringVar(&s.ScoresPath, "scores", s.ScoresPath, "score database path")
	fs.BoolVar(&s.NoScores, "no-scores", s.NoScores, "do not record finished games")
	fs.StringVar(&s.Player, "player", s.Player, "name stored with recorded scores")
	fs.StringVar(&s.LogFile, "log", s.LogFile, "terminal client log file")
	fs.IntVar(&s.Lives, "lives", s.Lives, "starting lives")
	fs.IntVar(&s.Organisms, "organisms", s.Organisms, "organisms displayed at once")
	fs.BoolVar(&s.TraitRamp, "ramp", s.TraitRamp, "show more traits on later levels")
	fs.BoolVar(&s.Mute, "mute", s.Mute, "disable sound cues")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

type session struct {
	engine *game.Engine
	store  *scores.Store
}

func (s session) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("scores close: %v", err)
	}
}

func openSession(settings config.Settings) (session, error) {
	catalog, err := settings.Catalog()
	if err != nil {
		return session{}, err
	}
	engine, err := game.NewEngine(settings.GameConfig(), catalog)
	if err != nil {
		return session{}, fmt.Errorf("new game: %w", err)
	}
	if settings.NoScores {
		return session{engine: engine}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()
	store, err := scores.Open(ctx, settings.ScoresPath)
	if err != nil {
		// A broken score file should not stop play.
		log.Printf("scores disabled: %v", err)
		return session{engine: engine}, nil
	}
	return session{engine: engine, store: store}, nil
}

func main() {
	settings, err := config.Load()
	if err != nil {
		config.Exitf("micromatch: %v", err)
	}
	opts, err := parseFlags(os.Args[1:], settings)
	if err != nil {
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("Micromatch %s (%s) %s\n", version, commit, date)
		return
	}

	sess, err := openSession(opts.settings)
	if err != nil {
		config.Exitf("micromatch: %v", err)
	}
	runErr := runClient(opts, sess)
	sess.Close()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
