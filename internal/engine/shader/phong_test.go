package shader

import (
	"strings"
	"testing"

	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/pkg/math"
)

func TestPhongDeclaresLightUniforms(t *testing.T) {
	rig := lighting.NewModel(math.Vec3{X: 0, Y: 3, Z: 5})

	for _, l := range rig.Lights() {
		for _, u := range l.Uniforms() {
			typ := "float"
			if len(u.Value) == 4 {
				typ = "vec4"
			}
			decl := "uniform " + typ + " " + u.Name + ";"
			if !strings.Contains(PhongFragmentShader, decl) {
				t.Errorf("fragment shader missing %q", decl)
			}
		}
	}
}

func TestPhongVertexInputs(t *testing.T) {
	for _, want := range []string{
		"layout (location = 0) in vec4 aPosition;",
		"layout (location = 1) in vec4 aColor;",
		"layout (location = 2) in vec4 aNormal;",
		"uniform mat4 uModel;",
		"uniform mat4 uView;",
		"uniform mat4 uProjection;",
	} {
		if !strings.Contains(PhongVertexShader, want) {
			t.Errorf("vertex shader missing %q", want)
		}
	}
}
