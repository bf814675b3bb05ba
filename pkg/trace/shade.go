package trace

import (
	"math"

	"github.com/taigrr/tracer/pkg/geom"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/models"
)

// Shade lights a primary hit. The barycentric weights double as the surface
// color; each visible light adds color·(n·l)·Diffuse, and Ambient is added
// once before the result is saturated.
func Shade(scene *models.Scene, rec Record, lights []Light, cfg Config) math3d.Vec3 {
	bary := rec.Hit.Barycentrics()
	color := math3d.Zero3()

	for _, l := range lights {
		if cfg.Shadows && Occluded(scene, rec.Point, rec.Normal, l, cfg.skipFor(rec)) {
			if cfg.Shadow == ShadowConstant {
				return math3d.Splat(ShadowGrey)
			}
			continue
		}

		lambert := rec.Normal.Dot(geom.Direction(rec.Point, l.Position))
		if cfg.ClampLambert {
			lambert = math.Max(0, lambert)
		}
		color = color.Add(bary.Scale(lambert * Diffuse))
	}

	return color.Add(math3d.Splat(Ambient)).Saturate()
}

// Occluded reports whether any face other than skip lies between point and
// the light. It returns at the first blocker found.
func Occluded(scene *models.Scene, point, normal math3d.Vec3, light Light, skip FaceRef) bool {
	dir := geom.Direction(point, light.Position)
	origin := offset(point, normal, dir)
	dist := point.Distance(light.Position)

	for mi, mesh := range scene.Meshes {
		for fi := range mesh.Faces {
			if skip.Matches(mi, fi) {
				continue
			}
			a, b, c := mesh.Triangle(fi)
			hit, ok := geom.Intersect(a, b, c, origin, dir)
			if ok && hit.T > 0 && hit.T < dist {
				return true
			}
		}
	}
	return false
}

// Reflect casts the mirror ray of incident about rec's normal and blends
// color towards the barycentric color of whatever it hits. Without a
// secondary hit color is returned unchanged.
func Reflect(scene *models.Scene, rec Record, incident, color math3d.Vec3, cfg Config) math3d.Vec3 {
	dir := incident.Reflect(rec.Normal).Normalize()
	ray := Ray{Origin: offset(rec.Point, rec.Normal, dir), Direction: dir}

	var (
		hit Record
		ok  bool
	)
	if cfg.ReflectionHit == HitFirst {
		hit, ok = First(scene, ray, 0, cfg.skipFor(rec))
	} else {
		hit, ok = Nearest(scene, ray, 0, cfg.skipFor(rec))
	}
	if !ok {
		return color
	}

	reflected := hit.Hit.Barycentrics().Mul(color)
	return color.Lerp(reflected, Reflectivity).Saturate()
}

// Trace returns the color seen along a primary ray.
func Trace(scene *models.Scene, ray Ray, lights []Light, cfg Config) math3d.Vec3 {
	rec, ok := Nearest(scene, ray, NearClip, NoFace)
	if !ok {
		return cfg.Background
	}
	return shadeHit(scene, rec, ray, lights, cfg)
}

func shadeHit(scene *models.Scene, rec Record, ray Ray, lights []Light, cfg Config) math3d.Vec3 {
	color := Shade(scene, rec, lights, cfg)
	if cfg.Reflections {
		color = Reflect(scene, rec, ray.Direction, color, cfg)
	}
	return color
}
