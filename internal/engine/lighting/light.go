// Package lighting provides the two-light Phong model used by the mesh shader.
package lighting

import (
	"github.com/Faultbox/meshview/pkg/math"
)

// Default coefficients for a new light.
const (
	DefaultAmbientK  = 0.2
	DefaultDiffuseK  = 0.55
	DefaultSpecularK = 0.25
	DefaultShininess = 100
)

// Light is a point light with separate ambient, diffuse and specular terms.
// Name selects the uniform set the light is bound to in the shader.
type Light struct {
	Name     string
	Position math.Vec3 // World position

	AmbientColor math.Vec4
	AmbientK     float32

	DiffuseColor math.Vec4
	DiffuseK     float32

	SpecularColor math.Vec4
	SpecularK     float32
	Shininess     float32
}

// NewLight creates a light with the default coefficients. The ambient color
// keeps the alpha of color; diffuse and specular colors are opaque.
func NewLight(name string, position math.Vec3, color math.Vec4) *Light {
	opaque := math.Vec4{color[0], color[1], color[2], 1}
	return &Light{
		Name:          name,
		Position:      position,
		AmbientColor:  color,
		AmbientK:      DefaultAmbientK,
		DiffuseColor:  opaque,
		DiffuseK:      DefaultDiffuseK,
		SpecularColor: opaque,
		SpecularK:     DefaultSpecularK,
		Shininess:     DefaultShininess,
	}
}

// Uniform is a named float uniform value; Value holds 1 or 4 floats.
type Uniform struct {
	Name  string
	Value []float32
}

// UniformName returns the shader uniform name for field on the light's set,
// e.g. "uLightPos_white".
func (l *Light) UniformName(field string) string {
	return "u" + field + "_" + l.Name
}

// PositionUniform returns the light position with w=1.
func (l *Light) PositionUniform() Uniform {
	p := l.Position.Point()
	return Uniform{Name: l.UniformName("LightPos"), Value: p[:]}
}

// Uniforms returns every uniform of the light, position first.
func (l *Light) Uniforms() []Uniform {
	amb, dif, spec := l.AmbientColor, l.DiffuseColor, l.SpecularColor
	return []Uniform{
		l.PositionUniform(),
		{Name: l.UniformName("AmbientColor"), Value: amb[:]},
		{Name: l.UniformName("AmbientK"), Value: []float32{l.AmbientK}},
		{Name: l.UniformName("DiffuseColor"), Value: dif[:]},
		{Name: l.UniformName("DiffuseK"), Value: []float32{l.DiffuseK}},
		{Name: l.UniformName("SpecularColor"), Value: spec[:]},
		{Name: l.UniformName("SpecularK"), Value: []float32{l.SpecularK}},
		{Name: l.UniformName("Shininess"), Value: []float32{l.Shininess}},
	}
}
