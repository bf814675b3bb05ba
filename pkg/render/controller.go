package render

import "github.com/charmbracelet/harmonica"

// Axis tracks one camera degree of freedom whose velocity decays towards
// zero on a critically damped spring.
type Axis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewAxis creates an axis updated fps times per second.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns the current velocity and decays it for the next tick.
func (a *Axis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// Controller drives a Camera from movement and look impulses.
type Controller struct {
	Forward, Strafe Axis // World units per tick
	Lift            Axis // World units per tick along world up
	Pitch, Yaw      Axis // Radians per tick
	fps             int
}

// NewController creates a controller ticking fps times per second.
func NewController(fps int) *Controller {
	if fps <= 0 {
		fps = 30
	}
	c := &Controller{fps: fps}
	c.Reset()
	return c
}

// Move adds a movement impulse.
func (c *Controller) Move(forward, right float64) {
	c.Forward.Velocity += forward
	c.Strafe.Velocity += right
}

// Climb adds a vertical movement impulse.
func (c *Controller) Climb(up float64) {
	c.Lift.Velocity += up
}

// Look adds a rotation impulse.
func (c *Controller) Look(pitch, yaw float64) {
	c.Pitch.Velocity += pitch
	c.Yaw.Velocity += yaw
}

// Update applies one tick of motion to cam.
func (c *Controller) Update(cam *Camera) {
	cam.MoveForward(c.Forward.Step())
	cam.MoveRight(c.Strafe.Step())
	cam.MoveUp(c.Lift.Step())
	cam.Rotate(c.Pitch.Step(), c.Yaw.Step())
}

// Reset stops all motion.
func (c *Controller) Reset() {
	c.Forward = NewAxis(c.fps)
	c.Strafe = NewAxis(c.fps)
	c.Lift = NewAxis(c.fps)
	c.Pitch = NewAxis(c.fps)
	c.Yaw = NewAxis(c.fps)
}
