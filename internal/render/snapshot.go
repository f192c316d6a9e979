package render

import (
	"image"

	"mosaic/internal/core"

	"github.com/fogleman/gg"
)

// RenderImage draws one frame of the animation offline and returns the
// resulting image. The surface is a square of the given side length.
func RenderImage(cells []core.Cell, frame core.Frame, surface float64) image.Image {
	side := int(surface)
	dc := gg.NewContext(side, side)
	dc.SetColor(Background)
	dc.Clear()

	for _, c := range cells {
		corners := c.TransformedCorners(frame.Scale, frame.Offset(c))
		dc.MoveTo(corners[0].X, corners[0].Y)
		for _, q := range corners[1:] {
			dc.LineTo(q.X, q.Y)
		}
		dc.ClosePath()
		dc.SetColor(CellColor(c))
		dc.Fill()
	}
	return dc.Image()
}

// SavePNG renders one frame offline and writes it to path as PNG.
func SavePNG(path string, cells []core.Cell, frame core.Frame, surface float64) error {
	return gg.SavePNG(path, RenderImage(cells, frame, surface))
}
