package lighting

import (
	gomath "math"

	"github.com/Faultbox/meshview/pkg/math"
)

// Uniform set names bound by the mesh shader.
const (
	TrackingName = "white"
	FixedName    = "yellow"
)

// Model combines a light that follows the camera eye with one fixed in the
// world. Both lights contribute additively; neither is merged into the other.
type Model struct {
	Tracking *Light
	Fixed    *Light
}

// NewModel creates the default rig: a white light at eye and a translucent
// yellow light above the origin.
func NewModel(eye math.Vec3) *Model {
	return &Model{
		Tracking: NewLight(TrackingName, eye, math.Vec4{1, 1, 1, 1}),
		Fixed:    NewLight(FixedName, math.Vec3{X: 0, Y: 5, Z: 0}, math.Vec4{1, 1, 0, 0.5}),
	}
}

// Track moves the tracking light to the camera eye.
func (m *Model) Track(eye math.Vec3) {
	m.Tracking.Position = eye
}

// Lights returns both lights, tracking first.
func (m *Model) Lights() []*Light {
	return []*Light{m.Tracking, m.Fixed}
}

// Shade evaluates the lighting the fragment shader computes for one point.
// point and normal are in view space; light positions are taken to view
// space with view. The viewer sits at the view-space origin.
//
// Specular terms are not multiplied by base, so highlights take the light's
// color only.
func (m *Model) Shade(view math.Mat4, point, normal math.Vec3, base math.Vec4) math.Vec4 {
	n := normal.Normalize()
	toCamera := point.Scale(-1).Normalize()

	var ambient, diffuse, specular math.Vec4
	for _, l := range m.Lights() {
		toLight := view.TransformPoint(l.Position).Sub(point).Normalize()
		half := toLight.Add(toCamera).Normalize()

		dif := max(0, toLight.Dot(n))
		spec := float32(gomath.Pow(float64(max(0, half.Dot(n))), float64(l.Shininess)))

		ambient = ambient.Add(l.AmbientColor.Scale(l.AmbientK))
		diffuse = diffuse.Add(l.DiffuseColor.Scale(dif * l.DiffuseK))
		specular = specular.Add(l.SpecularColor.Scale(spec * l.SpecularK))
	}

	return base.Mul(ambient).Add(base.Mul(diffuse)).Add(specular)
}
