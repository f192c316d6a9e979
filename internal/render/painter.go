//go:build ebiten

package render

import (
	"image"
	"image/color"

	"mosaic/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter fills animated cell quads on an ebiten screen.
type Painter struct {
	src *ebiten.Image
}

// NewPainter allocates the source image used for path filling: the center
// pixel of a 3x3 white image, so sampling cannot bleed past its edges.
func NewPainter() *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{src: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw clears dst and fills every cell with its transform for the frame.
func (p *Painter) Draw(dst *ebiten.Image, cells []core.Cell, frame core.Frame) {
	dst.Fill(Background)
	for _, c := range cells {
		corners := c.TransformedCorners(frame.Scale, frame.Offset(c))

		var path vector.Path
		path.MoveTo(float32(corners[0].X), float32(corners[0].Y))
		for _, q := range corners[1:] {
			path.LineTo(float32(q.X), float32(q.Y))
		}
		path.Close()

		col := CellColor(c)
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(col.R) / 0xff
			vs[i].ColorG = float32(col.G) / 0xff
			vs[i].ColorB = float32(col.B) / 0xff
			vs[i].ColorA = 1
		}
		op := &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.EvenOdd,
			AntiAlias: true,
		}
		dst.DrawTriangles(vs, is, p.src, op)
	}
}
