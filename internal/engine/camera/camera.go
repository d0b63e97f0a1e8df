// Package camera provides the orbiting scene camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Camera circles the target in the XZ plane at a fixed height, advancing its
// orbit angle by Speed every frame.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	// Perspective
	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	// Orbit
	Radius float32
	Angle  float32 // radians
	Speed  float32 // radians per frame

	// Zoom constraints
	MinRadius       float32
	MaxRadius       float32
	ZoomSensitivity float32

	view math.Mat4
	proj math.Mat4
}

// New creates a camera with the default viewer setup for the given aspect
// ratio and computes its matrices.
func New(aspect float32) *Camera {
	c := &Camera{
		Eye:             math.Vec3{X: 0, Y: 3, Z: 5},
		Target:          math.Vec3{},
		Up:              math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:            gomath.Pi / 2,
		Aspect:          aspect,
		Near:            0.1,
		Far:             100,
		Radius:          5,
		Angle:           0.1,
		Speed:           0.003,
		MinRadius:       1,
		MaxRadius:       50,
		ZoomSensitivity: 0.1,
	}
	c.Refresh()
	return c
}

// Update advances the orbit one frame and recomputes the matrices. The eye
// height is left unchanged.
func (c *Camera) Update() {
	c.Angle += c.Speed
	sin, cos := gomath.Sincos(float64(c.Angle))
	c.Eye.X = c.Radius * float32(sin)
	c.Eye.Z = c.Radius * float32(cos)
	c.Refresh()
}

// Refresh recomputes the view and projection matrices from the current fields.
func (c *Camera) Refresh() {
	c.view = math.LookAt(c.Eye, c.Target, c.Up)
	c.proj = math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// SetAspect updates the aspect ratio after a window resize.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.proj = math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// HandleZoom changes the orbit radius based on scroll wheel delta. The new
// radius takes effect on the next Update.
func (c *Camera) HandleZoom(delta float32) {
	c.Radius -= delta * c.Radius * c.ZoomSensitivity
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// ViewMatrix returns the view matrix computed by the last Update or Refresh.
func (c *Camera) ViewMatrix() math.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return c.proj
}
