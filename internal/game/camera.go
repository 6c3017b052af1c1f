package game

import (
	"math"

	"gridcaster/internal/mathutil"
	"gridcaster/internal/raycast"
)

// FirstPersonCamera is the viewer: position, heading and pitch.
type FirstPersonCamera struct {
	X, Y       float64 // Position in world
	Angle      float64 // Viewing angle in radians
	Pitch      float64 // Vertical shift in screen pixels
	PitchLimit float64
}

// Forward returns the unit vector the camera faces.
func (c *FirstPersonCamera) Forward() (x, y float64) {
	sin, cos := math.Sincos(c.Angle)
	return cos, sin
}

// Right returns the unit vector to the camera's right, a quarter turn
// clockwise on screen from Forward.
func (c *FirstPersonCamera) Right() (x, y float64) {
	fx, fy := c.Forward()
	return -fy, fx
}

// Rotate turns the camera and keeps the angle in (-Pi, Pi].
func (c *FirstPersonCamera) Rotate(angle float64) {
	c.Angle = mathutil.NormalizeAngle(c.Angle + angle)
}

// Look shifts the pitch, clamped to the limit.
func (c *FirstPersonCamera) Look(delta float64) {
	c.Pitch = math.Max(-c.PitchLimit, math.Min(c.PitchLimit, c.Pitch+delta))
}

// Pose returns the render snapshot for this frame.
func (c *FirstPersonCamera) Pose() raycast.Pose {
	return raycast.Pose{X: c.X, Y: c.Y, Heading: c.Angle, Pitch: c.Pitch}
}
