// Package player owns the viewer's position and heading and applies input to
// them between frames.
package player

import (
	"math"

	"github.com/taigrr/mazecaster/pkg/math2d"
	"github.com/taigrr/mazecaster/pkg/render"
)

// Walkable is the part of a maze the player collides with.
type Walkable interface {
	IsOpen(p math2d.Vec2) bool
}

// Player is the mutable viewer state. The renderer only ever sees a Pose
// snapshot of it.
type Player struct {
	Position  math2d.Vec2
	Heading   float64 // Radians
	FOV       float64 // Radians
	MoveSpeed float64 // World units per MoveForward/MoveBackward call
	RotSpeed  float64 // Radians per RotateLeft/RotateRight call
}

// New creates a player at pos facing 60° below +X with a 60° field of view.
func New(pos math2d.Vec2) *Player {
	return &Player{
		Position:  pos,
		Heading:   math.Pi / 3,
		FOV:       math.Pi / 3,
		MoveSpeed: 5,
		RotSpeed:  0.1,
	}
}

// Pose returns a copy of the state the renderer needs.
func (p *Player) Pose() render.Pose {
	return render.Pose{
		Position: p.Position,
		Heading:  p.Heading,
		FOV:      p.FOV,
	}
}

// Direction returns the unit vector the player faces.
func (p *Player) Direction() math2d.Vec2 {
	return math2d.FromAngle(p.Heading)
}

// Move translates the player by delta if the destination is open.
// Returns whether the move happened.
func (p *Player) Move(delta math2d.Vec2, world Walkable) bool {
	next := p.Position.Add(delta)
	if !world.IsOpen(next) {
		return false
	}
	p.Position = next
	return true
}

// MoveForward steps distance along the heading.
func (p *Player) MoveForward(distance float64, world Walkable) bool {
	return p.Move(p.Direction().Scale(distance), world)
}

// MoveBackward steps distance against the heading.
func (p *Player) MoveBackward(distance float64, world Walkable) bool {
	return p.Move(p.Direction().Scale(-distance), world)
}

// Strafe steps distance to the right of the heading (left when negative).
func (p *Player) Strafe(distance float64, world Walkable) bool {
	return p.Move(p.Direction().Perp().Scale(distance), world)
}

// RotateLeft turns counter-clockwise on screen by angle.
func (p *Player) RotateLeft(angle float64) {
	p.Rotate(-angle)
}

// RotateRight turns clockwise on screen by angle.
func (p *Player) RotateRight(angle float64) {
	p.Rotate(angle)
}

// Rotate adds delta to the heading, keeping it within (-2π, 2π).
func (p *Player) Rotate(delta float64) {
	p.Heading = math.Mod(p.Heading+delta, 2*math.Pi)
}
