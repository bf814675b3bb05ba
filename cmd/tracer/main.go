// tracer - brute-force triangle ray tracer
// Renders a small demo scene of cubes, an octahedron and two large
// rectangles with barycentric shading, shadow rays and a mirror bounce.
//
// Commands:
//
//	render  - Trace one frame to a PNG file
//	view    - Interactive viewer in the terminal
//	window  - Interactive viewer in a desktop window
//
// Controls (view and window):
//
//	W/S         - Move forward/back
//	A/D         - Strafe left/right
//	E/Q         - Move up/down
//	Arrows      - Look up/down/left/right
//	F1 (or 1)   - Toggle shadows
//	F2 (or 2)   - Toggle reflections
//	R           - Reset the view
//	?           - Toggle HUD overlay (terminal only)
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:   "tracer",
		Short: "Brute-force triangle ray tracer",
		Long: "tracer renders a demo scene of triangle meshes by casting one ray per pixel,\n" +
			"with optional shadow rays and a single mirror bounce.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cfg.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "Log level (debug, info, warn, error)")
	pf.IntVar(&cfg.workers, "workers", cfg.workers, "Render workers (0 = GOMAXPROCS)")
	pf.IntVar(&cfg.fps, "fps", cfg.fps, "Target FPS for interactive viewers")
	pf.BoolVar(&cfg.shadows, "shadows", cfg.shadows, "Cast shadow rays")
	pf.BoolVar(&cfg.reflections, "reflections", cfg.reflections, "Trace one mirror bounce")
	pf.StringVar(&cfg.shadowPolicy, "shadow-policy", cfg.shadowPolicy, "Shadowed pixels: suppress (drop the light) or constant (flat grey)")
	pf.StringVar(&cfg.reflectionHit, "reflection-hit", cfg.reflectionHit, "Reflected hit: nearest or first")
	pf.BoolVar(&cfg.excludeMesh, "exclude-mesh", cfg.excludeMesh, "Secondary rays skip the whole source mesh, not just the source face")
	pf.StringVar(&cfg.model, "model", cfg.model, "Extra .glb model to place in the scene")

	root.AddCommand(
		newRenderCmd(cfg),
		newViewCmd(cfg),
		newWindowCmd(cfg),
	)
	return root
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
	return nil
}
