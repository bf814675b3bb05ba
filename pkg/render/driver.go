package render

import (
	"runtime"

	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/trace"
	"golang.org/x/sync/errgroup"
)

// rowsPerTask is the number of framebuffer rows one worker task traces.
const rowsPerTask = 4

// Renderer traces a scene into framebuffers.
type Renderer struct {
	Tracer  *trace.Tracer
	Workers int // Maximum concurrent tasks; <= 0 means GOMAXPROCS
}

// NewRenderer creates a renderer over scene with the default trace config.
func NewRenderer(scene *models.Scene, lights []trace.Light) *Renderer {
	return &Renderer{
		Tracer:  trace.NewTracer(scene, lights),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Render traces one primary ray per pixel of fb as seen from cam.
//
// Rows are split into chunks traced concurrently; each task writes only its
// own rows. Render returns once every row is done. The scene must not change
// until it returns.
func (r *Renderer) Render(fb *Framebuffer, cam *Camera) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	toWorld := cam.CameraToWorld()
	fov := cam.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for y0 := 0; y0 < fb.Height; y0 += rowsPerTask {
		y1 := min(y0+rowsPerTask, fb.Height)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				for x := 0; x < fb.Width; x++ {
					ray := CameraRay(x, y, fb.Width, fb.Height, fov, toWorld)
					fb.SetColor(x, y, r.Tracer.Trace(ray))
				}
			}
			return nil
		})
	}

	return g.Wait()
}
