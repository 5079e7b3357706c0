package theme

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bench palette: dark lab bench, agar amber, teal stain accents.
var (
	BG            = rl.NewColor(0x10, 0x16, 0x1C, 255) // #10161C
	Panel         = rl.NewColor(0x18, 0x22, 0x2B, 255) // #18222B
	PanelRaised   = rl.NewColor(0x20, 0x2D, 0x38, 255) // #202D38
	Border        = rl.NewColor(0x2C, 0x3E, 0x4A, 255) // #2C3E4A
	Divider       = rl.NewColor(0x24, 0x33, 0x3E, 255) // #24333E
	TextPrimary   = rl.NewColor(0xE6, 0xEE, 0xEA, 255) // #E6EEEA
	TextSecondary = rl.NewColor(0xA3, 0xB5, 0xAE, 255) // #A3B5AE
	TextMuted     = rl.NewColor(0x74, 0x86, 0x80, 255) // #748680
	AccentStain   = rl.NewColor(0x2F, 0xB8, 0x9E, 255) // #2FB89E
	AccentAgar    = rl.NewColor(0xD9, 0xA4, 0x41, 255) // #D9A441
	Success       = rl.NewColor(0x4C, 0xC7, 0x6A, 255) // #4CC76A
	WarningAmber  = rl.NewColor(0xE0, 0x9B, 0x2D, 255) // #E09B2D
	Danger        = rl.NewColor(0xD0, 0x4B, 0x4B, 255) // #D04B4B
	DisabledPanel = rl.NewColor(0x14, 0x1B, 0x21, 255)
	DisabledText  = TextMuted
)

// HexColor parses "#rrggbb" catalog colours; anything else maps to the stain
// accent.
func HexColor(s string) rl.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return AccentStain
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return AccentStain
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}
