package render

import (
	"image/color"
	"math"

	"mosaic/internal/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background is the surface clear color used by both renderers.
var Background = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}

const (
	hueStep    = 0.3
	saturation = 0.65
	lightness  = 0.55
)

// CellColor derives a stable color from a cell's center, so a cell keeps
// its color for the lifetime of one partition. The hue walks the wheel with
// the sum of the center coordinates; saturation and lightness are fixed.
func CellColor(c core.Cell) color.RGBA {
	hue := math.Mod((c.Center.X+c.Center.Y)*hueStep, 360)
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
