package app

import (
	"flag"

	"mosaic/internal/core"
)

// Options bundles the core configuration with process-level settings.
type Options struct {
	Config core.Config

	ConfigPath string
	Seed       int64
	TPS        int
}

// NewOptions returns Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{Config: core.DefaultConfig(), Seed: 42, TPS: 60}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "optional TOML configuration file")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for grid generation")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second")

	fs.Float64Var(&o.Config.Size, "size", o.Config.Size, "side length of the animated region")
	fs.Float64Var(&o.Config.Padding, "padding", o.Config.Padding, "margin around the region")
	fs.Float64Var(&o.Config.AnimationSpeed, "speed", o.Config.AnimationSpeed, "phase increment per frame (radians)")
	fs.Float64Var(&o.Config.ScaleFactor, "scale", o.Config.ScaleFactor, "peak scale multiplier at full expansion")
	fs.IntVar(&o.Config.MaxRandomCount, "max-cuts", o.Config.MaxRandomCount, "upper bound on cut lines per axis")
	fs.IntVar(&o.Config.MinRandomCount, "min-cuts", o.Config.MinRandomCount, "lower bound on cut lines per axis")
	fs.Float64Var(&o.Config.MaxBaseOffset, "base-offset", o.Config.MaxBaseOffset, "minimum outward offset at full expansion")
	fs.Float64Var(&o.Config.DistanceMultiplier, "distance-mult", o.Config.DistanceMultiplier, "extra offset per unit of distance from center")
}
