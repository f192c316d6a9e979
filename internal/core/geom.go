package core

import "math"

// Point is an immutable (x, y) coordinate pair.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Cell is one rectangle of the tiled grid. Corners are stored clockwise:
// top-left, top-right, bottom-right, bottom-left. Cells are immutable once
// generated; a regeneration replaces the whole set.
type Cell struct {
	Corners [4]Point

	// Center is the arithmetic mean of the four corners.
	Center Point

	// Direction is the unit vector from the region center toward Center.
	// It is the zero vector when Center coincides with the region center.
	Direction Point

	// Distance is the Euclidean distance from the region center to Center.
	Distance float64
}

// TransformedCorners returns the cell's corners scaled uniformly by scale
// about its center, then translated along its direction vector by offset.
func (c Cell) TransformedCorners(scale, offset float64) [4]Point {
	dx := c.Direction.X * offset
	dy := c.Direction.Y * offset
	var out [4]Point
	for i, p := range c.Corners {
		out[i] = Point{
			X: c.Center.X + (p.X-c.Center.X)*scale + dx,
			Y: c.Center.Y + (p.Y-c.Center.Y)*scale + dy,
		}
	}
	return out
}

func newCell(x0, y0, x1, y1 float64, regionCenter Point) Cell {
	c := Cell{
		Corners: [4]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}},
	}
	for _, p := range c.Corners {
		c.Center.X += p.X / 4
		c.Center.Y += p.Y / 4
	}
	c.Distance = regionCenter.Dist(c.Center)
	if c.Distance > 0 {
		c.Direction = Point{
			X: (c.Center.X - regionCenter.X) / c.Distance,
			Y: (c.Center.Y - regionCenter.Y) / c.Distance,
		}
	}
	return c
}
