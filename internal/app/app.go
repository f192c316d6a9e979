//go:build ebiten

package app

import (
	"mosaic/internal/core"
	"mosaic/internal/render"
	"mosaic/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core.Animator to the ebiten.Game interface.
type Game struct {
	anim    *core.Animator
	painter *render.Painter
	overlay *ui.Overlay

	paused bool
}

// New constructs a Game for the provided animator.
func New(anim *core.Animator) *Game {
	return &Game{
		anim:    anim,
		painter: render.NewPainter(),
		overlay: ui.NewOverlay(),
	}
}

// Update handles per-frame input and advances the animation phase.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.anim.Regenerate()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused {
		g.anim.Tick()
	}
	return nil
}

// Draw renders the current cell set with this frame's transform.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.anim.Cells(), g.anim.Frame())
	if g.overlay != nil {
		g.overlay.Draw(screen, len(g.anim.Cells()), g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := int(g.anim.Config().SurfaceSize())
	return side, side
}
