// Command mosaic-snap renders frames of the breathe cycle to PNG files
// without opening a window. Useful for previewing a configuration or
// generating stills for documentation.
package main

import (
	"flag"
	"fmt"
	"math"
	"path/filepath"

	"mosaic/internal/app"
	"mosaic/internal/core"
	"mosaic/internal/render"

	"github.com/charmbracelet/log"
)

func main() {
	opts := app.NewOptions()
	frames := flag.Int("frames", 8, "number of snapshots spread across one breathe cycle")
	outDir := flag.String("out", ".", "directory for the rendered PNG files")
	opts.Bind(flag.CommandLine)
	flag.Parse()

	if err := opts.ApplyFile(flag.CommandLine); err != nil {
		log.Fatal("loading config file", "path", opts.ConfigPath, "err", err)
	}
	if *frames < 1 {
		log.Fatal("frames must be at least 1")
	}

	anim := core.NewAnimator(opts.Config, core.NewRNG(opts.Seed))
	surface := opts.Config.SurfaceSize()
	log.Info("rendering", "frames", *frames, "cells", len(anim.Cells()), "seed", opts.Seed)

	for i := 0; i < *frames; i++ {
		anim.Seek(2 * math.Pi * float64(i) / float64(*frames))
		name := filepath.Join(*outDir, fmt.Sprintf("mosaic-%03d.png", i))
		if err := render.SavePNG(name, anim.Cells(), anim.Frame(), surface); err != nil {
			log.Fatal("writing snapshot", "path", name, "err", err)
		}
		log.Debug("wrote", "path", name)
	}
}
