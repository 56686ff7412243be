// Package main is the entry point for the wireview model viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/voxfeld/wireframe/internal/config"
	"github.com/voxfeld/wireframe/internal/logger"
	"github.com/voxfeld/wireframe/internal/raster"
	"github.com/voxfeld/wireframe/internal/window"
	"github.com/voxfeld/wireframe/pkg/render"
)

var flagSnapshot = flag.String("snapshot", "", "Render a single frame to this PNG and exit (no window)")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wireview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	r, err := newRenderer(cfg)
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	r.Start()

	if *flagSnapshot != "" {
		if err := snapshot(r, cfg, *flagSnapshot); err != nil {
			logger.Error("snapshot failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("snapshot written", zap.String("path", *flagSnapshot))
		return
	}

	if err := run(r, cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// newRenderer builds the wireframe renderer from the loaded config.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	r, err := render.New(render.Config{
		Width:            cfg.Viewport.Width,
		Height:           cfg.Viewport.Height,
		FocalLength:      cfg.Viewport.FocalLength,
		NearEpsilon:      cfg.Render.NearEpsilon,
		DedupTolerancePx: cfg.Render.DedupTolerancePx,
		SpinStepDeg:      cfg.Render.SpinStepDeg,
		Logger:           logger.Log,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Model.Path != "" {
		if err := r.LoadModel(cfg.Model.Path); err != nil {
			return nil, err
		}
	}
	r.SetCamera(cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z)
	r.SetRotation(cfg.Rotation.X, cfg.Rotation.Y, cfg.Rotation.Z)
	return r, nil
}

// snapshot renders one frame offscreen and saves it as PNG.
func snapshot(r *render.Renderer, cfg *config.Config, path string) error {
	c := raster.New(cfg.Viewport.Width, cfg.Viewport.Height)
	c.Stroke(r.Render(), raster.Phosphor)
	return c.SavePNG(path)
}

// run drives the animation loop: one Render call per displayed frame.
func run(r *render.Renderer, cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  "wireview",
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	fps := cfg.Viewport.FPS
	if fps <= 0 {
		fps = 30
	}
	frameDelay := uint32(1000 / fps)
	sr := win.Renderer()

	for !win.ShouldClose() {
		lines := r.Render()

		bg := raster.Background
		if err := sr.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
			return err
		}
		if err := sr.Clear(); err != nil {
			return err
		}

		fg := raster.Phosphor
		if err := sr.SetDrawColor(fg.R, fg.G, fg.B, fg.A); err != nil {
			return err
		}
		for _, l := range lines {
			if err := sr.DrawLine(int32(l.X1), int32(l.Y1), int32(l.X2), int32(l.Y2)); err != nil {
				return err
			}
		}

		sr.Present()
		sdl.Delay(frameDelay)
	}
	return nil
}
