package main

import (
	"fmt"
	"time"

	"github.com/taigrr/tracer/pkg/trace"
)

// HUD renders an overlay with frame rate, scene size and trace toggles.
type HUD struct {
	title     string
	triangles int
	fps       float64
	fpsFrames int
	fpsTime   time.Time
	Show      bool
}

// NewHUD creates a new HUD
func NewHUD(title string, triangles int) *HUD {
	return &HUD{
		title:     title,
		triangles: triangles,
		fpsTime:   time.Now(),
	}
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// FPS returns the last measured frame rate.
func (h *HUD) FPS() float64 {
	return h.fps
}

// checkbox renders a toggle as [✓] or [ ].
func checkbox(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}

// rayStats formats a frame's primary ray counts.
func rayStats(rays, hits int64) string {
	return fmt.Sprintf("%d rays %d hits", rays, hits)
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, cfg trace.Config, rays, hits int64) {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !h.Show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	titleCol := max((width-len(h.title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.title, reset))

	tris := fmt.Sprintf("%d tris", h.triangles)
	trisCol := max(width-len(tris)-2, 1)
	fmt.Print(moveTo(1, trisCol) + fmt.Sprintf("%s%s%s %s %s", bgBlack, fgCyan, bold, tris, reset))

	modes := fmt.Sprintf("%s%s %s Shadows  %s Reflections %s",
		bgBlack, fgWhite, checkbox(cfg.Shadows), checkbox(cfg.Reflections), reset)
	fmt.Print(moveTo(height, 1) + modes)

	counts := rayStats(rays, hits)
	countsCol := max((width-len(counts)-2)/2, 1)
	fmt.Print(moveTo(height, countsCol) + fmt.Sprintf("%s%s%s %s %s", bgBlack, dim, fgCyan, counts, reset))

	hint := fmt.Sprintf("%s%s%s F1/F2 toggle %s", bgBlack, dim, fgYellow, reset)
	fmt.Print(moveTo(height, max(width-14, 1)) + hint)
}
