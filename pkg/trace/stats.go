package trace

import (
	"sync/atomic"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
)

// Stats counts primary rays and the ones that hit geometry. Safe for
// concurrent use; callers that want per-frame numbers Reset it between
// frames.
type Stats struct {
	rays atomic.Int64
	hits atomic.Int64
}

// Rays returns the number of primary rays traced.
func (s *Stats) Rays() int64 { return s.rays.Load() }

// Hits returns the number of primary rays that hit geometry.
func (s *Stats) Hits() int64 { return s.hits.Load() }

// Reset zeroes the counters.
func (s *Stats) Reset() {
	s.rays.Store(0)
	s.hits.Store(0)
}

// Tracer binds a scene, its lights and a config, and counts what it traces.
type Tracer struct {
	Scene  *models.Scene
	Lights []Light
	Config Config
	Stats  Stats
}

// NewTracer creates a tracer with the default config.
func NewTracer(scene *models.Scene, lights []Light) *Tracer {
	return &Tracer{
		Scene:  scene,
		Lights: lights,
		Config: DefaultConfig(),
	}
}

// Trace traces one primary ray and updates the counters.
func (t *Tracer) Trace(ray Ray) math3d.Vec3 {
	t.Stats.rays.Add(1)
	rec, ok := Nearest(t.Scene, ray, NearClip, NoFace)
	if !ok {
		return t.Config.Background
	}
	t.Stats.hits.Add(1)
	return shadeHit(t.Scene, rec, ray, t.Lights, t.Config)
}
