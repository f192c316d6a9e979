package core

import "math"

// Animator drives the breathe cycle. A continuously increasing phase maps
// through a cosine to a [0, 1] progress value; the cell set is regenerated
// each time the cycle passes through full contraction, so the swap is never
// visible mid-animation.
type Animator struct {
	cfg Config
	rng Rand

	phase     float64
	prevPhase float64

	cells          []Cell
	maxDistance    float64
	maxTotalOffset float64
}

// NewAnimator builds an animator with a freshly generated cell set.
func NewAnimator(cfg Config, rng Rand) *Animator {
	a := &Animator{cfg: cfg, rng: rng}
	a.Regenerate()
	return a
}

// Config returns the animator's immutable configuration.
func (a *Animator) Config() Config { return a.cfg }

// Cells returns the current cell set. The slice is replaced wholesale at
// regeneration and must not be mutated by callers.
func (a *Animator) Cells() []Cell { return a.cells }

// Phase returns the cumulative animation phase in radians.
func (a *Animator) Phase() float64 { return a.phase }

// Regenerate replaces the cell set and recomputes the derived maxima.
func (a *Animator) Regenerate() {
	a.cells = Generate(a.cfg, a.rng)
	a.maxDistance = 0
	for _, c := range a.cells {
		if c.Distance > a.maxDistance {
			a.maxDistance = c.Distance
		}
	}
	a.maxTotalOffset = a.cfg.MaxBaseOffset + a.cfg.DistanceMultiplier*a.maxDistance
}

// Tick advances the phase by one step and regenerates the grid when the
// phase crosses pi plus a whole number of cycles, the point of full
// contraction. Comparing cycle indices of the cumulative phase makes the
// check edge-triggered: one peak per 2*pi of accumulated phase for any
// step below 2*pi. It reports whether regeneration happened.
func (a *Animator) Tick() bool {
	a.prevPhase = a.phase
	a.phase += a.cfg.AnimationSpeed

	prev := math.Floor((a.prevPhase - math.Pi) / (2 * math.Pi))
	curr := math.Floor((a.phase - math.Pi) / (2 * math.Pi))
	if curr > prev {
		a.Regenerate()
		return true
	}
	return false
}

// Seek jumps the phase to an arbitrary value without peak detection. It is
// meant for offline rendering; the regular loop should use Tick.
func (a *Animator) Seek(phase float64) {
	a.phase = phase
	a.prevPhase = phase
}

// Frame captures the per-tick parameters derived from the current phase.
type Frame struct {
	// Progress oscillates between 0 (fully contracted) and 1 (fully
	// expanded) with period 2*pi in phase.
	Progress float64
	// Scale is the uniform per-cell scale for this frame.
	Scale float64
	// BaseOffset is the outward displacement floor shared by every cell.
	BaseOffset float64
	// TotalOffset is the displacement ceiling, reached by the cells
	// farthest from the region center.
	TotalOffset float64

	maxDistance float64
}

// Frame derives the current frame parameters from the phase.
func (a *Animator) Frame() Frame {
	progress := (math.Cos(a.phase) + 1) / 2
	return Frame{
		Progress:    progress,
		Scale:       1 + progress*(a.cfg.ScaleFactor-1),
		BaseOffset:  progress * a.cfg.MaxBaseOffset,
		TotalOffset: progress * a.maxTotalOffset,
		maxDistance: a.maxDistance,
	}
}

// Offset returns the outward displacement for one cell, interpolated
// between BaseOffset and TotalOffset by the cell's share of the maximum
// distance from the region center.
func (f Frame) Offset(c Cell) float64 {
	if f.maxDistance == 0 {
		return f.BaseOffset
	}
	return f.BaseOffset + (f.TotalOffset-f.BaseOffset)*(c.Distance/f.maxDistance)
}
