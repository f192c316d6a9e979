package app

import (
	"flag"

	"mosaic/internal/core"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors core.Config with pointer fields so keys absent from a
// TOML file leave the current values untouched.
type fileConfig struct {
	Size               *float64 `toml:"size"`
	Padding            *float64 `toml:"padding"`
	AnimationSpeed     *float64 `toml:"animation_speed"`
	ScaleFactor        *float64 `toml:"scale_factor"`
	MaxRandomCount     *int     `toml:"max_random_count"`
	MinRandomCount     *int     `toml:"min_random_count"`
	MaxBaseOffset      *float64 `toml:"max_base_offset"`
	DistanceMultiplier *float64 `toml:"distance_multiplier"`
}

// LoadFile merges configuration values from a TOML file into cfg.
func LoadFile(path string, cfg *core.Config) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}
	if fc.Size != nil {
		cfg.Size = *fc.Size
	}
	if fc.Padding != nil {
		cfg.Padding = *fc.Padding
	}
	if fc.AnimationSpeed != nil {
		cfg.AnimationSpeed = *fc.AnimationSpeed
	}
	if fc.ScaleFactor != nil {
		cfg.ScaleFactor = *fc.ScaleFactor
	}
	if fc.MaxRandomCount != nil {
		cfg.MaxRandomCount = *fc.MaxRandomCount
	}
	if fc.MinRandomCount != nil {
		cfg.MinRandomCount = *fc.MinRandomCount
	}
	if fc.MaxBaseOffset != nil {
		cfg.MaxBaseOffset = *fc.MaxBaseOffset
	}
	if fc.DistanceMultiplier != nil {
		cfg.DistanceMultiplier = *fc.DistanceMultiplier
	}
	return nil
}

// ApplyFile loads the TOML file named by ConfigPath, if any, keeping flags
// the user set explicitly on the command line ahead of file values. It must
// be called after fs has been parsed.
func (o *Options) ApplyFile(fs *flag.FlagSet) error {
	if o.ConfigPath == "" {
		return nil
	}
	fromFlags := o.Config
	if err := LoadFile(o.ConfigPath, &o.Config); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["size"] {
		o.Config.Size = fromFlags.Size
	}
	if set["padding"] {
		o.Config.Padding = fromFlags.Padding
	}
	if set["speed"] {
		o.Config.AnimationSpeed = fromFlags.AnimationSpeed
	}
	if set["scale"] {
		o.Config.ScaleFactor = fromFlags.ScaleFactor
	}
	if set["max-cuts"] {
		o.Config.MaxRandomCount = fromFlags.MaxRandomCount
	}
	if set["min-cuts"] {
		o.Config.MinRandomCount = fromFlags.MinRandomCount
	}
	if set["base-offset"] {
		o.Config.MaxBaseOffset = fromFlags.MaxBaseOffset
	}
	if set["distance-mult"] {
		o.Config.DistanceMultiplier = fromFlags.DistanceMultiplier
	}
	return nil
}
