// Package geom implements ray-triangle geometry: intersection, surface
// normals and barycentric interpolation.
package geom

import (
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
)

// Epsilon is the smallest |determinant| Intersect accepts. Anything closer
// to zero means the ray runs parallel to the triangle's plane (or the
// triangle has no area).
const Epsilon = 1.1920929e-7

// EdgeEpsilon widens the barycentric bounds so rounding cannot open a crack
// along an edge shared by two triangles.
const EdgeEpsilon = 1e-9

// Hit is the result of a successful ray-triangle intersection.
// Alpha, Beta and Gamma weight vertices A, B and C respectively.
type Hit struct {
	Beta  float64
	Gamma float64
	T     float64 // Ray parameter; world distance for a unit direction
}

// Alpha returns the weight of vertex A.
func (h Hit) Alpha() float64 {
	return 1 - h.Beta - h.Gamma
}

// Barycentrics returns (alpha, beta, gamma).
func (h Hit) Barycentrics() math3d.Vec3 {
	return math3d.V3(h.Alpha(), h.Beta, h.Gamma)
}

// Intersect solves origin + t·dir = a + beta·(b-a) + gamma·(c-a) with
// Cramer's rule. Boundary values, and weights within EdgeEpsilon of them,
// count as inside, so adjacent triangles may both report a hit on a shared
// edge but never both miss it.
func Intersect(a, b, c, origin, dir math3d.Vec3) (Hit, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	negD := dir.Negate()

	vol := math3d.TripleProduct(ab, ac, negD)
	if math.Abs(vol) <= Epsilon {
		return Hit{}, false
	}

	ao := origin.Sub(a)
	beta := math3d.TripleProduct(ao, ac, negD) / vol
	if beta < -EdgeEpsilon || beta > 1+EdgeEpsilon {
		return Hit{}, false
	}

	gamma := math3d.TripleProduct(ab, ao, negD) / vol
	if gamma < -EdgeEpsilon || gamma > 1+EdgeEpsilon || beta+gamma > 1+EdgeEpsilon {
		return Hit{}, false
	}

	t := math3d.TripleProduct(ab, ac, ao) / vol
	if t < 0 {
		return Hit{}, false
	}

	return Hit{Beta: beta, Gamma: gamma, T: t}, true
}

// RawNormal returns cross(b-a, c-a) without normalizing it.
// Its length is twice the triangle's area.
func RawNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// SurfaceNormal returns the unit normal of the triangle. Counter-clockwise
// winding (seen from the front) points it towards the viewer.
func SurfaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return RawNormal(a, b, c).Normalize()
}

// Interpolate blends the three vertices with barycentric weights
// (alpha, beta, gamma).
func Interpolate(a, b, c, bary math3d.Vec3) math3d.Vec3 {
	return a.Scale(bary.X).Add(b.Scale(bary.Y)).Add(c.Scale(bary.Z))
}

// Barycentrics returns the weights (alpha, beta, gamma) of point p with
// respect to the triangle. p is assumed to lie in the triangle's plane.
// A degenerate triangle yields the zero vector.
func Barycentrics(a, b, c, p math3d.Vec3) math3d.Vec3 {
	n := RawNormal(a, b, c)
	area := n.LenSq()
	if area == 0 {
		return math3d.Zero3()
	}
	ap := p.Sub(a)
	beta := ap.Cross(c.Sub(a)).Dot(n) / area
	gamma := b.Sub(a).Cross(ap).Dot(n) / area
	return math3d.V3(1-beta-gamma, beta, gamma)
}

// RayAt returns origin + t·dir.
func RayAt(origin, dir math3d.Vec3, t float64) math3d.Vec3 {
	return origin.Add(dir.Scale(t))
}

// Direction returns the unit vector pointing from one point to another.
func Direction(from, to math3d.Vec3) math3d.Vec3 {
	return to.Sub(from).Normalize()
}
