package ui

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/micromatch/internal/game"
)

var defaultColony = color.RGBA{R: 0, G: 230, B: 110, A: 235}

// renderColonyANSI draws the organism as colonies on an agar plate and returns
// it as ANSI half-block rows. The layout is derived from the name, so a card
// looks the same on every redraw.
func renderColonyANSI(o game.Organism, widthChars, heightRows int) string {
	widthChars = clampInt(widthChars, 8, 32)
	heightRows = clampInt(heightRows, 4, 16)

	w := widthChars
	h := heightRows * 2
	dc := gg.NewContext(w, h)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := float64(w)/2-0.5, float64(h)/2-0.5

	// Agar.
	plate := gg.NewRadialGradient(cx, cy, 0, cx, cy, math.Max(rx, ry))
	plate.AddColorStop(0, color.RGBA{R: 64, G: 52, B: 30, A: 255})
	plate.AddColorStop(1, color.RGBA{R: 36, G: 30, B: 20, A: 255})
	dc.SetFillStyle(plate)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()

	base := parseHexColor(o.Color)
	shade := darken(base, 0.6)
	rng := rand.New(rand.NewPCG(nameHash(o.Name), 0x636f6c6f6e79))

	count, minR, maxR := colonyShape(o)
	for i := 0; i < count; i++ {
		// Rejection-free placement inside the plate ellipse.
		a := rng.Float64() * 2 * math.Pi
		d := math.Sqrt(rng.Float64()) * 0.78
		x := cx + math.Cos(a)*rx*d
		y := cy + math.Sin(a)*ry*d
		r := lerp(minR, maxR, rng.Float64())
		g := gg.NewRadialGradient(x-r*0.3, y-r*0.3, r*0.1, x, y, r)
		g.AddColorStop(0, base)
		g.AddColorStop(1, shade)
		dc.SetFillStyle(g)
		if o.Stain == "acid_fast" {
			dc.DrawRegularPolygon(5, x, y, r, rng.Float64())
		} else {
			dc.DrawCircle(x, y, r)
		}
		dc.Fill()
	}

	dc.SetRGBA(0.85, 0.9, 0.85, 0.35)
	dc.SetLineWidth(1)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Stroke()

	return rgbaImageToANSIHalfBlocks(dc.Image())
}

func colonyShape(o game.Organism) (count int, minR, maxR float64) {
	switch {
	case o.Group == "fungus":
		return 4, 1.8, 2.8
	case o.Stain == "gram_positive":
		return 9, 0.8, 1.5
	case o.Stain == "acid_fast":
		return 6, 1.2, 2.0
	default:
		return 6, 1.2, 2.2
	}
}

func rgbaImageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			out.WriteString(fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb))
		}
		out.WriteString("\x1b[0m")
		if y+2 < height {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// parseHexColor accepts "#rrggbb"; anything else falls back to terminal green.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return defaultColony
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return defaultColony
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

func nameHash(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampInt(v, minV, maxV int) int {
	return max(minV, min(maxV, v))
}
