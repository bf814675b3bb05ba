// Package trace implements the brute-force ray tracing core: nearest-hit
// search over a scene, barycentric Lambert shading, shadow rays and a single
// mirror bounce.
//
// Every function here is read-only over the scene, so callers may trace
// many rays concurrently as long as nobody mutates the meshes meanwhile.
package trace

import (
	"fmt"
	"strings"

	"github.com/taigrr/tracer/pkg/geom"
	"github.com/taigrr/tracer/pkg/math3d"
)

// Shading constants.
const (
	NearClip     = 1.0    // Primary hits closer than this are ignored
	Diffuse      = 0.8    // Lambert coefficient per light
	Ambient      = 0.2    // Flat term added once per pixel
	Reflectivity = 0.95   // Blend factor towards the reflected color
	ShadowGrey   = 0.0625 // Pixel intensity under the ShadowConstant policy
	Bias         = 1e-4   // Offset of secondary ray origins off the surface
)

// Ray is a half-line origin + t·Direction, t >= 0.
type Ray struct {
	Origin    math3d.Vec3
	Direction math3d.Vec3
}

// NewRay creates a ray, normalizing its direction.
func NewRay(origin, dir math3d.Vec3) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) math3d.Vec3 {
	return geom.RayAt(r.Origin, r.Direction, t)
}

// Light is a point light.
type Light struct {
	Position math3d.Vec3
}

// ShadowPolicy decides what an occluded light does to the pixel.
type ShadowPolicy int

const (
	// ShadowSuppress drops the diffuse contribution of each occluded light.
	ShadowSuppress ShadowPolicy = iota
	// ShadowConstant replaces the whole pixel with ShadowGrey as soon as
	// any light is occluded.
	ShadowConstant
)

func (p ShadowPolicy) String() string {
	switch p {
	case ShadowSuppress:
		return "suppress"
	case ShadowConstant:
		return "constant"
	default:
		return fmt.Sprintf("ShadowPolicy(%d)", int(p))
	}
}

// ParseShadowPolicy parses "suppress" or "constant".
func ParseShadowPolicy(s string) (ShadowPolicy, error) {
	switch strings.ToLower(s) {
	case "suppress", "":
		return ShadowSuppress, nil
	case "constant":
		return ShadowConstant, nil
	}
	return 0, fmt.Errorf("unknown shadow policy %q (want suppress or constant)", s)
}

// HitPolicy selects which secondary hit a reflection ray uses.
type HitPolicy int

const (
	// HitNearest uses the closest face along the ray.
	HitNearest HitPolicy = iota
	// HitFirst uses the first face found in scene order.
	HitFirst
)

func (p HitPolicy) String() string {
	switch p {
	case HitNearest:
		return "nearest"
	case HitFirst:
		return "first"
	default:
		return fmt.Sprintf("HitPolicy(%d)", int(p))
	}
}

// ParseHitPolicy parses "nearest" or "first".
func ParseHitPolicy(s string) (HitPolicy, error) {
	switch strings.ToLower(s) {
	case "nearest", "":
		return HitNearest, nil
	case "first":
		return HitFirst, nil
	}
	return 0, fmt.Errorf("unknown hit policy %q (want nearest or first)", s)
}

// Exclusion decides what a secondary ray skips around its own surface.
type Exclusion int

const (
	// ExcludeFace skips only the face the ray leaves from.
	ExcludeFace Exclusion = iota
	// ExcludeMesh skips every face of the mesh the ray leaves from.
	ExcludeMesh
)

// Config holds the per-call trace toggles.
type Config struct {
	Shadows       bool
	Reflections   bool
	Shadow        ShadowPolicy
	ReflectionHit HitPolicy
	Exclude       Exclusion
	ClampLambert  bool        // Clamp n·l at zero so back-lit faces do not subtract
	Background    math3d.Vec3 // Color of rays that hit nothing
}

// DefaultConfig returns shadows and reflections off, suppressing shadows,
// nearest reflection hits, clamped Lambert and a white background.
func DefaultConfig() Config {
	return Config{
		Shadow:        ShadowSuppress,
		ReflectionHit: HitNearest,
		Exclude:       ExcludeFace,
		ClampLambert:  true,
		Background:    math3d.One3(),
	}
}

// skipFor returns the exclusion key a secondary ray leaving rec uses.
func (c Config) skipFor(rec Record) FaceRef {
	if c.Exclude == ExcludeMesh {
		return FaceRef{Mesh: rec.Mesh, Face: AnyFace}
	}
	return rec.Ref()
}
