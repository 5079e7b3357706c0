package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	headerHeight = float32(72)
	inputHeight  = float32(48)
	logWidth     = float32(320)
	margin       = float32(20)
	gap          = float32(14)
	organismH    = float32(150)
	traitH       = float32(52)
	traitColumns = 2
	minTraitW    = float32(220)
)

// boardLayout positions every card for one frame. Organism and trait slices
// follow the engine's display order.
type boardLayout struct {
	Header    rl.Rectangle
	Board     rl.Rectangle
	Log       rl.Rectangle
	Input     rl.Rectangle
	Organisms []rl.Rectangle
	Traits    []rl.Rectangle
}

func computeLayout(width, height float32, organisms, traits int) boardLayout {
	l := boardLayout{
		Header: rl.NewRectangle(margin, margin, width-2*margin, headerHeight),
		Input:  rl.NewRectangle(margin, height-margin-inputHeight, width-2*margin, inputHeight),
	}
	top := l.Header.Y + l.Header.Height + gap
	bottom := l.Input.Y - gap
	boardW := max(width-2*margin-logWidth-gap, minTraitW)
	l.Board = rl.NewRectangle(margin, top, boardW, max(bottom-top, 0))
	l.Log = rl.NewRectangle(l.Board.X+l.Board.Width+gap, top, max(width-margin-(l.Board.X+l.Board.Width+gap), 0), l.Board.Height)

	if organisms > 0 {
		w := (l.Board.Width - gap*float32(organisms-1)) / float32(organisms)
		for i := 0; i < organisms; i++ {
			l.Organisms = append(l.Organisms, rl.NewRectangle(l.Board.X+float32(i)*(w+gap), top, w, organismH))
		}
	}

	cols := traitColumns
	if l.Board.Width < 2*minTraitW+gap {
		cols = 1
	}
	traitTop := top + organismH + 2*gap
	w := (l.Board.Width - gap*float32(cols-1)) / float32(cols)
	for i := 0; i < traits; i++ {
		row, col := i/cols, i%cols
		l.Traits = append(l.Traits, rl.NewRectangle(l.Board.X+float32(col)*(w+gap), traitTop+float32(row)*(traitH+gap/2), w, traitH))
	}
	return l
}

func pointIn(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// hit returns the index of the first rectangle containing p, or -1.
func hit(rects []rl.Rectangle, p rl.Vector2) int {
	for i, r := range rects {
		if pointIn(r, p) {
			return i
		}
	}
	return -1
}
