//go:build ebiten

package main

import (
	"errors"
	"flag"
	"time"

	"mosaic/internal/app"
	"mosaic/internal/core"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Seed = time.Now().UnixNano()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	if err := opts.ApplyFile(flag.CommandLine); err != nil {
		log.Fatal("loading config file", "path", opts.ConfigPath, "err", err)
	}

	anim := core.NewAnimator(opts.Config, core.NewRNG(opts.Seed))
	game := app.New(anim)
	side := int(opts.Config.SurfaceSize())

	log.Info("starting", "surface", side, "cells", len(anim.Cells()), "seed", opts.Seed)

	ebiten.SetWindowTitle("mosaic")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run", "err", err)
	}
}
