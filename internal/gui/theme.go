package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/micromatch/internal/ui/theme"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Agar          rl.Color
	Success       rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = uitheme.PaddingXS
	spaceS  = uitheme.PaddingS
	spaceM  = uitheme.PaddingM
)

var AppTheme = Theme{
	Background:    uitheme.BG,
	Panel:         uitheme.Panel,
	PanelRaised:   uitheme.PanelRaised,
	Border:        uitheme.Border,
	TextPrimary:   uitheme.TextPrimary,
	TextSecondary: uitheme.TextSecondary,
	TextMuted:     uitheme.TextMuted,
	Accent:        uitheme.AccentStain,
	Agar:          uitheme.AccentAgar,
	Success:       uitheme.Success,
	Warning:       uitheme.WarningAmber,
	Danger:        uitheme.Danger,
}

type ButtonState = uitheme.ButtonState

const (
	buttonStateNormal   = uitheme.ButtonNormal
	buttonStateFocused  = uitheme.ButtonFocused
	buttonStateDisabled = uitheme.ButtonDisabled
)

// DrawPanel draws a themed panel with an optional underlined title.
func DrawPanel(rect rl.Rectangle, title string, focused bool) {
	variant := uitheme.PanelStandard
	if focused {
		variant = uitheme.PanelLifted
	}
	uitheme.DrawPanel(rect, variant)
	if title != "" {
		uitheme.DrawHeader(title, int32(rect.X+spaceM), int32(rect.Y+spaceS))
	}
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	uitheme.DrawButton(rect, state, text)
}

func DrawScoreRow(rect rl.Rectangle, highlight bool, left, right string) {
	state := uitheme.ListItemNormal
	if highlight {
		state = uitheme.ListItemSelected
	}
	uitheme.DrawListItem(rect, state, left, right)
}

// DrawProgressBar shows done/total with a label; the fill turns to the success
// colour when complete.
func DrawProgressBar(label string, done, total int, rect rl.Rectangle) {
	frac := float32(0)
	if total > 0 {
		frac = float32(clampInt(done, 0, total)) / float32(total)
	}
	barY := rect.Y + float32(typeScale.Small) + 4
	track := rl.NewRectangle(rect.X, barY, rect.Width, 8)
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*frac, track.Height-2)

	drawText(fmt.Sprintf("%s %d/%d", label, done, total), int32(rect.X), int32(rect.Y), typeScale.Small, AppTheme.TextSecondary)
	rl.DrawRectangleRec(track, rl.Fade(AppTheme.PanelRaised, 0.9))
	if fill.Width > 0 {
		clr := AppTheme.Agar
		if frac >= 1 {
			clr = AppTheme.Success
		}
		rl.DrawRectangleRec(fill, clr)
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(AppTheme.Border, 0.95))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
