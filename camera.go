package pyramid

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits the origin at a fixed height.
// Angle is unbounded; sin/cos take care of wrapping.
type Camera struct {
	Angle  float32 // radians
	Radius float32

	Height     float32
	OrbitSpeed float32
	ZoomSpeed  float32
	MinRadius  float32
	MaxRadius  float32
}

// NewCamera returns the camera described by cfg, looking down +Z.
func NewCamera(cfg Config) *Camera {
	return &Camera{
		Radius:     cfg.CameraRadius,
		Height:     cfg.CameraHeight,
		OrbitSpeed: cfg.OrbitSpeed,
		ZoomSpeed:  cfg.ZoomSpeed,
		MinRadius:  cfg.MinRadius,
		MaxRadius:  cfg.MaxRadius,
	}
}

// Update applies the held keys for a frame of length dt seconds.
// It returns true when the quit binding is held.
func (c *Camera) Update(in *InputState, dt float32) (quit bool) {
	if in.Active(ActionOrbitLeft) {
		c.Angle -= c.OrbitSpeed * dt
	}
	if in.Active(ActionOrbitRight) {
		c.Angle += c.OrbitSpeed * dt
	}
	if in.Active(ActionZoomIn) {
		c.Radius = max(c.MinRadius, c.Radius-c.ZoomSpeed*dt)
	}
	if in.Active(ActionZoomOut) {
		c.Radius = min(c.MaxRadius, c.Radius+c.ZoomSpeed*dt)
	}
	return in.Active(ActionQuit)
}

// Position returns the eye position derived from the orbit state.
func (c *Camera) Position() mgl32.Vec3 {
	return OrbitPosition(c.Angle, c.Radius, c.Height)
}

// View returns the look-at matrix for the current orbit state.
func (c *Camera) View() mgl32.Mat4 {
	return ViewMatrix(c.Position())
}

// OrbitPosition places an eye on a circle of the given radius around the Y axis.
func OrbitPosition(angle, radius, height float32) mgl32.Vec3 {
	s, co := math.Sincos(float64(angle))
	return mgl32.Vec3{float32(s) * radius, height, float32(co) * radius}
}
