package player

import (
	"github.com/charmbracelet/harmonica"
)

// Axis tracks a velocity that springs back to zero when input stops.
// Terminals only report key repeats, never releases, so each press is an
// impulse and the spring supplies the smooth deceleration.
type Axis struct {
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewAxis creates an axis whose velocity decays over roughly a quarter second.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 6.0 = quick stop, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Push adds an impulse to the velocity.
func (a *Axis) Push(v float64) {
	a.Velocity += v
}

// Step returns the velocity for this frame and decays it toward 0.
func (a *Axis) Step() float64 {
	v := a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
	return v
}

// Stop zeroes the axis.
func (a *Axis) Stop() {
	a.Velocity = 0
	a.accel = 0
}

// Controller applies smoothed walk, strafe and turn input to a Player once
// per frame.
type Controller struct {
	Walk   Axis // World units per frame, positive = forward
	Strafe Axis // World units per frame, positive = right
	Turn   Axis // Radians per frame, positive = clockwise on screen
}

// NewController creates a controller ticking at fps frames per second.
// Non-positive rates fall back to 60.
func NewController(fps int) *Controller {
	if fps <= 0 {
		fps = 60
	}
	return &Controller{
		Walk:   NewAxis(fps),
		Strafe: NewAxis(fps),
		Turn:   NewAxis(fps),
	}
}

// Forward pushes the player forward by one MoveSpeed.
func (c *Controller) Forward(p *Player) { c.Walk.Push(p.MoveSpeed) }

// Backward pushes the player backward by one MoveSpeed.
func (c *Controller) Backward(p *Player) { c.Walk.Push(-p.MoveSpeed) }

// Left turns the player left by one RotSpeed.
func (c *Controller) Left(p *Player) { c.Turn.Push(-p.RotSpeed) }

// Right turns the player right by one RotSpeed.
func (c *Controller) Right(p *Player) { c.Turn.Push(p.RotSpeed) }

// StrafeLeft sidesteps left by one MoveSpeed.
func (c *Controller) StrafeLeft(p *Player) { c.Strafe.Push(-p.MoveSpeed) }

// StrafeRight sidesteps right by one MoveSpeed.
func (c *Controller) StrafeRight(p *Player) { c.Strafe.Push(p.MoveSpeed) }

// Reset stops all motion.
func (c *Controller) Reset() {
	c.Walk.Stop()
	c.Strafe.Stop()
	c.Turn.Stop()
}

// Update applies one frame of motion to p. Blocked moves kill the velocity on
// that axis so the player does not keep pushing into a wall.
func (c *Controller) Update(p *Player, world Walkable) {
	p.Rotate(c.Turn.Step())

	if v := c.Walk.Step(); v != 0 && !p.MoveForward(v, world) {
		c.Walk.Stop()
	}
	if v := c.Strafe.Step(); v != 0 && !p.Strafe(v, world) {
		c.Strafe.Stop()
	}
}
