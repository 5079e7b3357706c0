//go:build !cgo
// +build !cgo

package main

import (
	"github.com/appengine-ltd/micromatch/internal/ui"
)

// Without cgo there is no raylib window, so every run uses the terminal.
func runClient(opts options, sess session) error {
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
