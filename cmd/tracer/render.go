package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/taigrr/tracer/internal/demo"
)

func newRenderCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Trace one frame of the demo scene to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.out, "out", "o", cfg.out, "Output PNG path")
	f.IntVar(&cfg.width, "width", cfg.width, "Image width in pixels")
	f.IntVar(&cfg.height, "height", cfg.height, "Image height in pixels")
	f.IntVar(&cfg.frames, "frames", cfg.frames, "Animate this many frames before tracing")
	return cmd
}

func runRender(cfg *config) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}

	s, err := cfg.newSession(cfg.width, cfg.height)
	if err != nil {
		return err
	}

	for range cfg.frames {
		demo.Animate(s.Scene)
	}
	s.Animate = false

	start := time.Now()
	if err := s.Step(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := s.Front().SavePNG(cfg.out); err != nil {
		return fmt.Errorf("save %s: %w", cfg.out, err)
	}

	rays, hits := s.FrameStats()
	slog.Info("rendered frame",
		"out", cfg.out,
		"size", fmt.Sprintf("%dx%d", cfg.width, cfg.height),
		"triangles", s.Scene.TriangleCount(),
		"rays", rays,
		"hits", hits,
		"elapsed", elapsed.Round(time.Millisecond),
	)
	return nil
}
