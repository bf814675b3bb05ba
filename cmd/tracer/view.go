package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/tracer/internal/demo"
	"github.com/taigrr/tracer/pkg/render"
)

func newViewCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Explore the demo scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd.Context(), cfg)
		},
	}
}

// handleKey applies one key press to the session. It returns false when the
// viewer should quit.
func handleKey(s *demo.Session, hud *HUD, ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
		return false
	case ev.MatchString("f1", "1"):
		s.ToggleShadows()
	case ev.MatchString("f2", "2"):
		s.ToggleReflections()
	case ev.MatchString("w"):
		s.Move(1, 0)
	case ev.MatchString("s"):
		s.Move(-1, 0)
	case ev.MatchString("a"):
		s.Move(0, -1)
	case ev.MatchString("d"):
		s.Move(0, 1)
	case ev.MatchString("e"):
		s.Climb(1)
	case ev.MatchString("q"):
		s.Climb(-1)
	case ev.MatchString("up"):
		s.Look(1, 0)
	case ev.MatchString("down"):
		s.Look(-1, 0)
	case ev.MatchString("left"):
		s.Look(0, 1)
	case ev.MatchString("right"):
		s.Look(0, -1)
	case ev.MatchString("r"):
		s.ResetView()
	case ev.MatchString("?"), ev.MatchString("shift+/"):
		hud.Show = !hud.Show
	}
	return true
}

func runView(ctx context.Context, cfg *config) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	fbWidth, fbHeight := render.TerminalSize(width, height)
	s, err := cfg.newSession(fbWidth, fbHeight)
	if err != nil {
		return err
	}
	hud := NewHUD("tracer", s.Scene.TriangleCount())

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	events := term.Events()
	targetDuration := time.Second / time.Duration(max(cfg.fps, 1))

	for {
		now := time.Now()

		// Drain pending input without blocking the frame
	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					s.Resize(render.TerminalSize(width, height))
				case uv.KeyPressEvent:
					if !handleKey(s, hud, ev) {
						return nil
					}
				}
			default:
				break drain
			}
		}

		if err := s.Step(); err != nil {
			return err
		}

		s.Front().Draw(term, uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		hud.UpdateFPS()
		rays, hits := s.FrameStats()
		hud.Render(width, height, *s.Config(), rays, hits)

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
