package main

import (
	"github.com/spf13/cobra"
	"github.com/taigrr/tracer/internal/window"
)

func newWindowCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Explore the demo scene in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := cfg.newSession(cfg.width, cfg.height)
			if err != nil {
				return err
			}
			return window.Run(s, window.Options{
				Title: "tracer",
				Scale: cfg.scale,
				FPS:   cfg.fps,
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.width, "width", cfg.width, "Framebuffer width in pixels")
	f.IntVar(&cfg.height, "height", cfg.height, "Framebuffer height in pixels")
	f.IntVar(&cfg.scale, "scale", cfg.scale, "Window pixels per framebuffer pixel")
	return cmd
}
