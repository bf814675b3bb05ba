//go:build cgo

// Package window presents a demo session in a desktop window.
package window

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/tracer/internal/demo"
)

// Options configures the window.
type Options struct {
	Title string
	Scale int // Window pixels per framebuffer pixel
	FPS   int
}

// Run opens a window that shows the session's frames and forwards keyboard
// input to it. It blocks until the window closes or Escape is pressed.
func Run(s *demo.Session, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Title == "" {
		opts.Title = "tracer"
	}

	fb := s.Front()
	g := &game{s: s}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(fb.Width*opts.Scale, fb.Height*opts.Scale)
	ebiten.SetTPS(opts.FPS)
	return ebiten.RunGame(g)
}

type game struct {
	s   *demo.Session
	img *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		slog.Info("shadows", "enabled", g.s.ToggleShadows())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		slog.Info("reflections", "enabled", g.s.ToggleReflections())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.s.ResetView()
	}

	g.s.Move(axis(ebiten.KeyW, ebiten.KeyS), axis(ebiten.KeyD, ebiten.KeyA))
	g.s.Climb(axis(ebiten.KeyE, ebiten.KeyQ))
	g.s.Look(axis(ebiten.KeyArrowUp, ebiten.KeyArrowDown), axis(ebiten.KeyArrowLeft, ebiten.KeyArrowRight))

	return g.s.Step()
}

// axis returns 1 while pos is held, -1 while neg is held and 0 otherwise.
func axis(pos, neg ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(pos) {
		v++
	}
	if ebiten.IsKeyPressed(neg) {
		v--
	}
	return v
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.s.Front()
	if fb.Width == 0 || fb.Height == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != fb.Width || g.img.Bounds().Dy() != fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.img.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.s.Front()
	return fb.Width, fb.Height
}
