//go:build cgo

package main

import (
	"github.com/appengine-ltd/micromatch/internal/gui"
	"github.com/appengine-ltd/micromatch/internal/ui"
)

func runClient(opts options, sess session) error {
	if opts.tui {
		return runTUI(opts, sess)
	}
	return gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Engine:    sess.engine,
		Scores:    sess.store,
		Player:    opts.settings.Player,
		Mute:      opts.settings.Mute,
	}).Run()
}

func runTUI(opts options, sess session) error {
	return ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Engine:    sess.engine,
		Scores:    sess.store,
		Player:    opts.settings.Player,
		LogFile:   opts.settings.LogFile,
	}).Run()
}
