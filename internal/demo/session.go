package demo

import (
	"fmt"
	"math"

	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/render"
	"github.com/taigrr/tracer/pkg/trace"
)

// Input impulses applied per key press or held tick.
const (
	MoveImpulse = 0.1                 // World units per tick
	LookImpulse = 1.5 * math.Pi / 180 // Radians per tick
)

// Session owns everything a viewer needs to produce frames: the scene, a
// camera with its controller, a renderer and a pair of framebuffers.
type Session struct {
	Scene      *models.Scene
	Camera     *render.Camera
	Controller *render.Controller
	Renderer   *render.Renderer
	Buffers    *render.DoubleBuffer

	Animate bool // Spin the cube every frame
	frames  int
}

// NewSession creates a session over scene rendering width×height frames.
func NewSession(scene *models.Scene, lights []trace.Light, width, height, fps int) (*Session, error) {
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &Session{
		Scene:      scene,
		Camera:     render.NewCamera(),
		Controller: render.NewController(fps),
		Renderer:   render.NewRenderer(scene, lights),
		Buffers:    render.NewDoubleBuffer(width, height),
		Animate:    true,
	}, nil
}

// Config returns the live trace configuration.
func (s *Session) Config() *trace.Config {
	return &s.Renderer.Tracer.Config
}

// ToggleShadows flips shadow rays and returns the new state.
func (s *Session) ToggleShadows() bool {
	cfg := s.Config()
	cfg.Shadows = !cfg.Shadows
	return cfg.Shadows
}

// ToggleReflections flips the mirror bounce and returns the new state.
func (s *Session) ToggleReflections() bool {
	cfg := s.Config()
	cfg.Reflections = !cfg.Reflections
	return cfg.Reflections
}

// Move adds a movement impulse in key presses (forward/back, right/left).
func (s *Session) Move(forward, right float64) {
	s.Controller.Move(forward*MoveImpulse, right*MoveImpulse)
}

// Climb adds a vertical movement impulse in key presses (up/down).
func (s *Session) Climb(up float64) {
	s.Controller.Climb(up * MoveImpulse)
}

// ResetView stops all motion, returns the camera to the origin and points
// it at the first mesh.
func (s *Session) ResetView() {
	s.Controller.Reset()
	*s.Camera = *render.NewCamera()
	if s.Scene.Len() > 0 {
		s.Camera.LookAt(s.Scene.Meshes[0].Center())
	}
}

// Look adds a look impulse in key presses (up/down, left/right).
func (s *Session) Look(up, left float64) {
	s.Controller.Look(up*LookImpulse, left*LookImpulse)
}

// Step runs one frame: animate, move the camera, trace into the back buffer
// and present it. The tracer's counters cover the last frame only.
func (s *Session) Step() error {
	if s.Animate {
		Animate(s.Scene)
	}
	s.Controller.Update(s.Camera)
	s.Renderer.Tracer.Stats.Reset()

	if err := s.Renderer.Render(s.Buffers.Back(), s.Camera); err != nil {
		return fmt.Errorf("render frame %d: %w", s.frames, err)
	}
	s.Buffers.Swap()
	s.frames++
	return nil
}

// Frames returns the number of frames presented so far.
func (s *Session) Frames() int {
	return s.frames
}

// FrameStats returns the primary rays traced and the rays that hit
// geometry in the last frame.
func (s *Session) FrameStats() (rays, hits int64) {
	stats := &s.Renderer.Tracer.Stats
	return stats.Rays(), stats.Hits()
}

// Front returns the last presented frame.
func (s *Session) Front() *render.Framebuffer {
	return s.Buffers.Front()
}

// Resize changes the frame size for subsequent frames.
func (s *Session) Resize(width, height int) {
	s.Buffers.Resize(width, height)
}
