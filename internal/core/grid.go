package core

import "sort"

// Generate partitions the square region described by cfg into rectangular
// cells. Each axis gets an independent random number of cut lines at
// continuous random positions; the cells are the cross product of the
// resulting intervals and exactly tile [Padding, Padding+Size] on both axes.
func Generate(cfg Config, rng Rand) []Cell {
	xs := axisBounds(cfg, rng)
	ys := axisBounds(cfg, rng)
	center := cfg.RegionCenter()

	cells := make([]Cell, 0, (len(xs)-1)*(len(ys)-1))
	for yi := 0; yi+1 < len(ys); yi++ {
		for xi := 0; xi+1 < len(xs); xi++ {
			cells = append(cells, newCell(xs[xi], ys[yi], xs[xi+1], ys[yi+1], center))
		}
	}
	return cells
}

// axisBounds samples the cut coordinates for one axis, sorts them, and
// brackets them with the region edges to form the boundary sequence.
func axisBounds(cfg Config, rng Rand) []float64 {
	n := rng.IntIn(cfg.MinRandomCount, cfg.MaxRandomCount)
	cuts := make([]float64, n)
	for i := range cuts {
		cuts[i] = rng.FloatIn(cfg.Padding, cfg.Padding+cfg.Size)
	}
	sort.Float64s(cuts)

	bounds := make([]float64, 0, n+2)
	bounds = append(bounds, cfg.Padding)
	bounds = append(bounds, cuts...)
	bounds = append(bounds, cfg.Padding+cfg.Size)
	return bounds
}
