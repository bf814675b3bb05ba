package main

import (
	"fmt"

	"github.com/taigrr/tracer/internal/demo"
	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/trace"
)

// config holds every command-line setting.
type config struct {
	logLevel string
	workers  int
	fps      int

	shadows       bool
	reflections   bool
	shadowPolicy  string
	reflectionHit string
	excludeMesh   bool

	model string

	// render only
	out    string
	width  int
	height int
	frames int

	// window only
	scale int
}

func defaultConfig() *config {
	return &config{
		logLevel:      "info",
		fps:           30,
		shadowPolicy:  trace.ShadowSuppress.String(),
		reflectionHit: trace.HitNearest.String(),
		out:           "frame.png",
		width:         320,
		height:        240,
		scale:         2,
	}
}

// traceConfig converts the flags into a trace.Config.
func (c *config) traceConfig() (trace.Config, error) {
	tc := trace.DefaultConfig()
	tc.Shadows = c.shadows
	tc.Reflections = c.reflections

	var err error
	if tc.Shadow, err = trace.ParseShadowPolicy(c.shadowPolicy); err != nil {
		return tc, err
	}
	if tc.ReflectionHit, err = trace.ParseHitPolicy(c.reflectionHit); err != nil {
		return tc, err
	}
	if c.excludeMesh {
		tc.Exclude = trace.ExcludeMesh
	}
	return tc, nil
}

// newSession builds the demo scene, places the optional model and returns
// a session producing width×height frames.
func (c *config) newSession(width, height int) (*demo.Session, error) {
	tc, err := c.traceConfig()
	if err != nil {
		return nil, err
	}

	scene := demo.NewScene()
	if c.model != "" {
		lib, err := models.NewLibrary(models.NewGLTFLoader(), 0)
		if err != nil {
			return nil, err
		}
		mesh, err := lib.Get(c.model)
		if err != nil {
			return nil, err
		}
		demo.PlaceModel(scene, mesh)
	}

	s, err := demo.NewSession(scene, demo.Lights(), width, height, c.fps)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	*s.Config() = tc
	s.Renderer.Workers = c.workers
	return s, nil
}
