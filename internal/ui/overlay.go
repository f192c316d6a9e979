//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional help and status text on top of the animation.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles overlay visibility on the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay text when visible.
func (o *Overlay) Draw(screen *ebiten.Image, cells int, paused bool) {
	if !o.visible {
		return
	}
	state := "running"
	if paused {
		state = "paused"
	}
	msg := fmt.Sprintf("cells: %d  tps: %.0f  %s\n[space] pause  [r] reshuffle  [h] help  [q] quit",
		cells, ebiten.ActualTPS(), state)
	ebitenutil.DebugPrint(screen, msg)
}
