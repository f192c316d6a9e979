package core

// Config holds the tunable parameters for grid generation and animation.
// Values are trusted as-is; nonsensical settings (non-positive sizes,
// inverted count bounds) produce undefined geometry rather than an error.
type Config struct {
	// Size is the side length of the animated square region.
	Size float64
	// Padding is the margin reserved around the region on all sides.
	Padding float64
	// AnimationSpeed is the phase increment per frame, in radians.
	AnimationSpeed float64
	// ScaleFactor is the peak scale multiplier at full expansion.
	ScaleFactor float64
	// MaxRandomCount bounds the cut lines per axis from above, inclusive.
	MaxRandomCount int
	// MinRandomCount bounds the cut lines per axis from below, inclusive.
	MinRandomCount int
	// MaxBaseOffset is the minimum outward offset at full expansion,
	// applied uniformly to every cell.
	MaxBaseOffset float64
	// DistanceMultiplier adds extra offset per unit of distance from the
	// region center, on top of MaxBaseOffset, to form the offset ceiling.
	DistanceMultiplier float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:               300,
		Padding:            240,
		AnimationSpeed:     0.012,
		ScaleFactor:        1.4,
		MaxRandomCount:     10,
		MinRandomCount:     5,
		MaxBaseOffset:      100,
		DistanceMultiplier: 0.5,
	}
}

// SurfaceSize returns the side length of the square drawing surface that
// fits the region plus padding on every side.
func (c Config) SurfaceSize() float64 { return c.Size + 2*c.Padding }

// RegionCenter returns the fixed center of the animated region.
func (c Config) RegionCenter() Point {
	return Point{X: c.Padding + c.Size/2, Y: c.Padding + c.Size/2}
}
