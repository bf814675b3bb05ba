package render

import (
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/trace"
)

// CameraRay returns the world-space primary ray through the center of pixel
// (x, y) of a w×h image. fov is horizontal; the vertical extent follows from
// the aspect ratio. Pixel rows grow downwards.
func CameraRay(x, y, w, h int, fov float64, camToWorld math3d.Mat4) trace.Ray {
	halfTan := math.Tan(fov / 2)
	aspect := float64(w) / float64(h)

	ndcX := lerp(-1, 1, (float64(x)+0.5)/float64(w))
	ndcY := lerp(1, -1, (float64(y)+0.5)/float64(h))

	cx := halfTan * ndcX
	cy := halfTan * ndcY / aspect

	origin := camToWorld.MulVec3(math3d.Zero3())
	target := camToWorld.MulVec3(math3d.V3(cx, cy, -1))

	return trace.NewRay(origin, target.Sub(origin))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
