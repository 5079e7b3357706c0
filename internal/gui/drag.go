package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/micromatch/internal/game"
)

// dragState tracks the trait card under the mouse. Only the card position is
// cosmetic; the proposal happens on Drop.
type dragState struct {
	Active bool
	Trait  game.TraitID
	Index  int
	Offset rl.Vector2
	Pos    rl.Vector2
	size   rl.Vector2
}

func (d *dragState) Begin(l boardLayout, traits []game.TraitInstance, p rl.Vector2) bool {
	i := hit(l.Traits, p)
	if i < 0 || i >= len(traits) {
		return false
	}
	r := l.Traits[i]
	*d = dragState{
		Active: true,
		Trait:  traits[i].ID,
		Index:  i,
		Offset: rl.NewVector2(p.X-r.X, p.Y-r.Y),
		Pos:    p,
		size:   rl.NewVector2(r.Width, r.Height),
	}
	return true
}

func (d *dragState) Move(p rl.Vector2) {
	if d.Active {
		d.Pos = p
	}
}

// Drop ends the drag. ok is false when the card was released outside every
// organism card, in which case it simply returns to the board.
func (d *dragState) Drop(l boardLayout, organisms []game.OrganismKey, p rl.Vector2) (game.OrganismKey, game.TraitID, bool) {
	if !d.Active {
		return "", 0, false
	}
	trait := d.Trait
	*d = dragState{}
	i := hit(l.Organisms, p)
	if i < 0 || i >= len(organisms) {
		return "", 0, false
	}
	return organisms[i], trait, true
}

func (d *dragState) Cancel() {
	*d = dragState{}
}

func (d dragState) Rect() rl.Rectangle {
	return rl.NewRectangle(d.Pos.X-d.Offset.X, d.Pos.Y-d.Offset.Y, d.size.X, d.size.Y)
}
