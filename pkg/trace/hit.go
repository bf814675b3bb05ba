package trace

import (
	"math"

	"github.com/taigrr/tracer/pkg/geom"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
)

// AnyFace in FaceRef.Face matches every face of the referenced mesh.
const AnyFace = -2

// FaceRef identifies a face by its mesh and face index in scene order.
type FaceRef struct {
	Mesh int
	Face int
}

// NoFace matches nothing.
var NoFace = FaceRef{Mesh: -1, Face: -1}

// Matches reports whether face f of mesh m is the referenced face.
func (r FaceRef) Matches(m, f int) bool {
	return r.Mesh == m && (r.Face == f || r.Face == AnyFace)
}

// Record describes a ray-face hit.
type Record struct {
	Mesh   int
	Face   int
	Hit    geom.Hit
	Point  math3d.Vec3 // World-space hit point
	Normal math3d.Vec3 // Unit face normal, sign given by winding
}

// Ref returns the face that produced the hit.
func (r Record) Ref() FaceRef {
	return FaceRef{Mesh: r.Mesh, Face: r.Face}
}

// Nearest scans every face of every mesh in order and returns the closest
// hit with t > minT, ignoring skip. Ties go to the face found first.
func Nearest(scene *models.Scene, ray Ray, minT float64, skip FaceRef) (Record, bool) {
	best := math.Inf(1)
	var rec Record
	found := false

	for mi, mesh := range scene.Meshes {
		for fi := range mesh.Faces {
			if skip.Matches(mi, fi) {
				continue
			}
			a, b, c := mesh.Triangle(fi)
			hit, ok := geom.Intersect(a, b, c, ray.Origin, ray.Direction)
			if !ok || hit.T <= minT || hit.T >= best {
				continue
			}
			best = hit.T
			rec = Record{Mesh: mi, Face: fi, Hit: hit}
			found = true
		}
	}

	if !found {
		return Record{}, false
	}
	return complete(scene, ray, rec), true
}

// First returns the first hit with t > minT in scene order, ignoring skip.
func First(scene *models.Scene, ray Ray, minT float64, skip FaceRef) (Record, bool) {
	for mi, mesh := range scene.Meshes {
		for fi := range mesh.Faces {
			if skip.Matches(mi, fi) {
				continue
			}
			a, b, c := mesh.Triangle(fi)
			hit, ok := geom.Intersect(a, b, c, ray.Origin, ray.Direction)
			if ok && hit.T > minT {
				return complete(scene, ray, Record{Mesh: mi, Face: fi, Hit: hit}), true
			}
		}
	}
	return Record{}, false
}

// complete fills in the hit point and normal of a record.
func complete(scene *models.Scene, ray Ray, rec Record) Record {
	a, b, c := scene.Meshes[rec.Mesh].Triangle(rec.Face)
	rec.Point = ray.At(rec.Hit.T)
	rec.Normal = geom.SurfaceNormal(a, b, c)
	return rec
}

// offset moves p off the surface along n, on the side dir leaves towards.
func offset(p, n, dir math3d.Vec3) math3d.Vec3 {
	if n.Dot(dir) < 0 {
		n = n.Negate()
	}
	return p.Add(n.Scale(Bias))
}
