package core

import (
	"math"
	"sort"
	"testing"
)

// stubRand replays fixed sequences, falling back to the lower bound when a
// sequence runs out.
type stubRand struct {
	ints   []int
	floats []float64
}

func (s *stubRand) IntIn(lo, hi int) int {
	if len(s.ints) == 0 {
		return lo
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *stubRand) FloatIn(lo, hi float64) float64 {
	if len(s.floats) == 0 {
		return lo
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestGenerateTilesRegion(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(0); seed < 10; seed++ {
		cells := Generate(cfg, NewRNG(seed))

		min := (cfg.MinRandomCount + 1) * (cfg.MinRandomCount + 1)
		max := (cfg.MaxRandomCount + 1) * (cfg.MaxRandomCount + 1)
		if len(cells) < min || len(cells) > max {
			t.Fatalf("seed %d: cell count %d outside [%d, %d]", seed, len(cells), min, max)
		}

		// Reconstruct the boundary sequences from the cell corners. Corner
		// coordinates are the sampled cuts verbatim, so exact equality holds.
		xs := boundarySet(cells, func(c Cell) (float64, float64) { return c.Corners[0].X, c.Corners[1].X })
		ys := boundarySet(cells, func(c Cell) (float64, float64) { return c.Corners[0].Y, c.Corners[3].Y })

		lo, hi := cfg.Padding, cfg.Padding+cfg.Size
		if xs[0] != lo || xs[len(xs)-1] != hi || ys[0] != lo || ys[len(ys)-1] != hi {
			t.Fatalf("seed %d: boundaries do not span region: x %v..%v y %v..%v",
				seed, xs[0], xs[len(xs)-1], ys[0], ys[len(ys)-1])
		}
		if want := (len(xs) - 1) * (len(ys) - 1); len(cells) != want {
			t.Fatalf("seed %d: got %d cells, interval grid implies %d", seed, len(cells), want)
		}

		// Every cell spans one adjacent interval pair on each axis, and no
		// interval pair repeats: together with the count this is exact
		// tiling with no gaps or overlaps.
		seen := map[[2]int]bool{}
		for _, c := range cells {
			xi := index(xs, c.Corners[0].X)
			yi := index(ys, c.Corners[0].Y)
			if xi < 0 || yi < 0 {
				t.Fatalf("seed %d: corner %v not on a boundary", seed, c.Corners[0])
			}
			if xs[xi+1] != c.Corners[1].X || ys[yi+1] != c.Corners[3].Y {
				t.Fatalf("seed %d: cell does not span adjacent intervals: %v", seed, c.Corners)
			}
			key := [2]int{xi, yi}
			if seen[key] {
				t.Fatalf("seed %d: interval pair %v covered twice", seed, key)
			}
			seen[key] = true
		}

		var area float64
		for _, c := range cells {
			area += (c.Corners[1].X - c.Corners[0].X) * (c.Corners[3].Y - c.Corners[0].Y)
		}
		if diff := math.Abs(area - cfg.Size*cfg.Size); diff > 1e-6 {
			t.Fatalf("seed %d: total area %v, want %v", seed, area, cfg.Size*cfg.Size)
		}
	}
}

func TestGenerateCellMetadata(t *testing.T) {
	cfg := DefaultConfig()
	center := cfg.RegionCenter()
	cells := Generate(cfg, NewRNG(1))

	for i, c := range cells {
		var mx, my float64
		for _, p := range c.Corners {
			mx += p.X / 4
			my += p.Y / 4
		}
		if math.Abs(mx-c.Center.X) > 1e-9 || math.Abs(my-c.Center.Y) > 1e-9 {
			t.Fatalf("cell %d: center %v, corner mean (%v, %v)", i, c.Center, mx, my)
		}
		if d := center.Dist(c.Center); math.Abs(d-c.Distance) > 1e-9 {
			t.Fatalf("cell %d: distance %v, want %v", i, c.Distance, d)
		}
		if c.Distance == 0 {
			continue
		}
		norm := math.Hypot(c.Direction.X, c.Direction.Y)
		if math.Abs(norm-1) > 1e-9 {
			t.Fatalf("cell %d: direction %v has length %v", i, c.Direction, norm)
		}
		wantX := (c.Center.X - center.X) / c.Distance
		wantY := (c.Center.Y - center.Y) / c.Distance
		if math.Abs(c.Direction.X-wantX) > 1e-9 || math.Abs(c.Direction.Y-wantY) > 1e-9 {
			t.Fatalf("cell %d: direction %v, want (%v, %v)", i, c.Direction, wantX, wantY)
		}
	}
}

func TestGeneratePinnedScenario(t *testing.T) {
	// One cut per axis at 75, the center of the [50, 100] region: four
	// equal quadrants.
	cfg := Config{Size: 50, Padding: 50, MinRandomCount: 1, MaxRandomCount: 1}
	rng := &stubRand{ints: []int{1, 1}, floats: []float64{75, 75}}

	cells := Generate(cfg, rng)
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	for i, c := range cells {
		w := c.Corners[1].X - c.Corners[0].X
		h := c.Corners[3].Y - c.Corners[0].Y
		if w != 25 || h != 25 {
			t.Fatalf("cell %d: %vx%v, want 25x25", i, w, h)
		}
		for _, p := range c.Corners {
			if p.X < 50 || p.X > 100 || p.Y < 50 || p.Y > 100 {
				t.Fatalf("cell %d: corner %v outside region", i, p)
			}
		}
	}
}

func TestGenerateDegenerateCenterCell(t *testing.T) {
	// Zero cuts leave a single cell whose center is the region center; its
	// direction must be the zero vector rather than NaN.
	cfg := Config{Size: 100, Padding: 50}
	cells := Generate(cfg, &stubRand{})
	if len(cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(cells))
	}
	c := cells[0]
	if c.Distance != 0 {
		t.Fatalf("distance %v, want 0", c.Distance)
	}
	if c.Direction.X != 0 || c.Direction.Y != 0 {
		t.Fatalf("direction %v, want zero vector", c.Direction)
	}
}

func boundarySet(cells []Cell, pick func(Cell) (float64, float64)) []float64 {
	set := map[float64]bool{}
	for _, c := range cells {
		lo, hi := pick(c)
		set[lo] = true
		set[hi] = true
	}
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

func index(sorted []float64, v float64) int {
	for i, s := range sorted {
		if s == v {
			return i
		}
	}
	return -1
}
