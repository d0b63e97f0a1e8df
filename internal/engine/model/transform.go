// Package model provides per-object placement and animation.
package model

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// Transform places a mesh in the world. Each frame the Y and Z angles grow
// by their rates and the model matrix is rebuilt as
// RotateY * RotateZ * Translate * Scale, so a translated object orbits the
// world origin rather than spinning in place.
type Transform struct {
	Translate math.Vec3
	Scale     math.Vec3

	// Rotation rates in radians per frame.
	RateY float32
	RateZ float32

	// Accumulated angles in radians.
	AngleY float32
	AngleZ float32

	matrix math.Mat4
}

// NewTransform creates a transform with unit scale and no rotation.
func NewTransform(translate math.Vec3, rateY, rateZ float32) *Transform {
	t := &Transform{
		Translate: translate,
		Scale:     math.Vec3{X: 1, Y: 1, Z: 1},
		RateY:     rateY,
		RateZ:     rateZ,
	}
	t.Rebuild()
	return t
}

// SetUniformScale sets the same scale factor on every axis.
func (t *Transform) SetUniformScale(s float32) {
	t.Scale = math.Vec3{X: s, Y: s, Z: s}
	t.Rebuild()
}

// Update advances the rotation angles one frame and rebuilds the matrix.
func (t *Transform) Update() {
	t.AngleY += t.RateY
	t.AngleZ += t.RateZ
	t.Rebuild()
}

// Rebuild recomputes the model matrix from the current fields.
func (t *Transform) Rebuild() {
	t.matrix = math.RotateY(t.AngleY).
		Mul(math.RotateZ(t.AngleZ)).
		Mul(math.TranslateVec(t.Translate)).
		Mul(math.ScaleVec(t.Scale))
}

// Matrix returns the model matrix.
func (t *Transform) Matrix() math.Mat4 {
	return t.matrix
}
