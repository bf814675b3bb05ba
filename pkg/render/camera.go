package render

import (
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
)

// DefaultFOV is the horizontal field of view (90 degrees).
const DefaultFOV = math.Pi / 2

// maxPitch keeps the camera from flipping over the vertical.
const maxPitch = 89 * math.Pi / 180

// Camera is a first-person camera. It looks down -Z when Pitch and Yaw are
// zero.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in radians)
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)

	FOV float64 // Horizontal field of view in radians
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera() *Camera {
	return &Camera{
		FOV: DefaultFOV,
	}
}

// SetRotation sets pitch and yaw in radians. Pitch is clamped to ±89°.
func (c *Camera) SetRotation(pitch, yaw float64) {
	c.Pitch = clampPitch(pitch)
	c.Yaw = yaw
}

// Forward returns the viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	// Forward is -Z in camera space, rotated by pitch then yaw
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// Right returns the horizontal right direction.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.V3(
		math.Cos(c.Yaw),
		0,
		-math.Sin(c.Yaw),
	)
}

// Up returns the camera's up direction.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// CameraToWorld returns the matrix taking camera-space points to world
// space.
func (c *Camera) CameraToWorld() math3d.Mat4 {
	return math3d.Translate(c.Position).
		Mul(math3d.RotateY(c.Yaw)).
		Mul(math3d.RotateX(c.Pitch))
}

// MoveForward moves the camera along its viewing direction.
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
}

// MoveRight strafes the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
}

// MoveUp moves the camera along world up.
func (c *Camera) MoveUp(distance float64) {
	c.Position = c.Position.Add(math3d.Up().Scale(distance))
}

// Rotate turns the camera by the given angles in radians.
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch = clampPitch(c.Pitch + deltaPitch)
	c.Yaw += deltaYaw
}

// LookAt turns the camera towards a target point.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = clampPitch(math.Asin(dir.Y))
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
}

func clampPitch(p float64) float64 {
	return math.Max(-maxPitch, math.Min(maxPitch, p))
}
