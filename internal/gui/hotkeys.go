package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/micromatch/internal/game"
)

// hotkeyVerbs maps Ctrl/Alt chords to commands; plain letters always go to the
// command line.
var hotkeyVerbs = []struct {
	key  int32
	verb string
}{
	{key: rl.KeyH, verb: "hint"},
	{key: rl.KeyP, verb: "pause"},
	{key: rl.KeyR, verb: "reset"},
	{key: rl.KeyS, verb: "scores"},
	{key: rl.KeyQ, verb: "quit"},
}

// HotkeysEnabled reports whether chords act as commands. Holding a card turns
// them off so a reset cannot pull the board out from under the drag.
func HotkeysEnabled(ui *gameUI) bool {
	if ui == nil {
		return true
	}
	return !ui.drag.Active
}

func CommandKeyPressed(key int32) bool {
	return (ctrlDown() || altDown()) && rl.IsKeyPressed(key)
}

func pollHotkeys(ui *gameUI) {
	if !HotkeysEnabled(ui) {
		return
	}
	for _, hk := range hotkeyVerbs {
		if CommandKeyPressed(hk.key) {
			ui.commands.Hotkey(hk.verb)
		}
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		ui.commands.Hotkey("help")
	}
	// Enter on an empty command line deals the first board.
	if rl.IsKeyPressed(rl.KeyEnter) && ui.input == "" && ui.engine.State().Phase == game.PhaseIdle {
		ui.commands.Hotkey("start")
	}
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
