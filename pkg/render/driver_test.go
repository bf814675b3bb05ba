package render

import (
	"errors"
	"testing"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/trace"
)

func testScene() (*models.Scene, []trace.Light) {
	scene := models.NewScene(
		models.NewCube().Translate(0, 0, -4),
		models.NewOctahedron().Rotate(0.2, 0.2, 0.1).Translate(1.5, 1, -6),
		models.NewRectangle().Rotate(-1.57, 0, 0).Scale(20, 1, 20).Translate(0, -2, -5),
	)
	return scene, []trace.Light{{Position: math3d.V3(0, 0, -1)}}
}

func TestRenderMatchesSerialTrace(t *testing.T) {
	scene, lights := testScene()
	cam := NewCamera()

	for _, workers := range []int{1, 3, 8} {
		r := NewRenderer(scene, lights)
		r.Workers = workers
		r.Tracer.Config.Shadows = true
		r.Tracer.Config.Reflections = true

		fb := NewFramebuffer(24, 18)
		if err := r.Render(fb, cam); err != nil {
			t.Fatalf("workers=%d: Render: %v", workers, err)
		}

		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				ray := CameraRay(x, y, fb.Width, fb.Height, cam.FOV, cam.CameraToWorld())
				want := ToRGBA(trace.Trace(scene, ray, lights, r.Tracer.Config))
				if got := fb.GetPixel(x, y); got != want {
					t.Fatalf("workers=%d: pixel (%d, %d) = %v, want %v", workers, x, y, got, want)
				}
			}
		}

		if got := r.Tracer.Stats.Rays(); got != int64(fb.Width*fb.Height) {
			t.Errorf("workers=%d: traced %d rays, want %d", workers, got, fb.Width*fb.Height)
		}
	}
}

func TestRenderCubeCenter(t *testing.T) {
	scene := models.NewScene(models.NewCube().Translate(0, 0, -4))
	r := NewRenderer(scene, []trace.Light{{Position: math3d.V3(0, 0, -1)}})

	fb := NewFramebuffer(5, 5)
	if err := r.Render(fb, NewCamera()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	c := fb.GetPixel(2, 2)
	if c.R == 0 && c.G == 0 && c.B == 0 {
		t.Error("center pixel is black")
	}
	minAmbient := uint8(trace.Ambient * 255)
	if c.R < minAmbient || c.G < minAmbient || c.B < minAmbient {
		t.Errorf("center pixel %v below ambient", c)
	}
	if r.Tracer.Stats.Hits() == 0 {
		t.Error("no primary hits recorded")
	}
}

func TestRenderRejectsEmptyFramebuffer(t *testing.T) {
	scene, lights := testScene()
	r := NewRenderer(scene, lights)

	if err := r.Render(NewFramebuffer(0, 0), NewCamera()); !errors.Is(err, ErrFramebufferSize) {
		t.Errorf("Render = %v, want ErrFramebufferSize", err)
	}
}

func BenchmarkRender(b *testing.B) {
	scene, lights := testScene()
	r := NewRenderer(scene, lights)
	r.Tracer.Config.Shadows = true
	r.Tracer.Config.Reflections = true
	fb := NewFramebuffer(160, 120)
	cam := NewCamera()

	for b.Loop() {
		_ = r.Render(fb, cam)
	}
}
