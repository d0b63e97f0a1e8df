package lighting

import (
	"testing"

	"github.com/Faultbox/meshview/pkg/math"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight("yellow", math.Vec3{X: 0, Y: 5, Z: 0}, math.Vec4{1, 1, 0, 0.5})

	if l.AmbientColor != (math.Vec4{1, 1, 0, 0.5}) {
		t.Errorf("ambient color should keep alpha, got %v", l.AmbientColor)
	}
	if l.DiffuseColor != (math.Vec4{1, 1, 0, 1}) || l.SpecularColor != (math.Vec4{1, 1, 0, 1}) {
		t.Errorf("diffuse and specular should be opaque, got %v %v", l.DiffuseColor, l.SpecularColor)
	}
	if l.AmbientK != 0.2 || l.DiffuseK != 0.55 || l.SpecularK != 0.25 || l.Shininess != 100 {
		t.Errorf("unexpected coefficients: %+v", l)
	}
}

func TestUniforms(t *testing.T) {
	l := NewLight("white", math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec4{1, 1, 1, 1})
	u := l.Uniforms()

	if len(u) != 8 {
		t.Fatalf("expected 8 uniforms, got %d", len(u))
	}
	if u[0].Name != "uLightPos_white" {
		t.Errorf("expected position first, got %s", u[0].Name)
	}
	want := []float32{1, 2, 3, 1}
	for i := range want {
		if u[0].Value[i] != want[i] {
			t.Fatalf("position = %v, want %v", u[0].Value, want)
		}
	}

	names := map[string]int{}
	for _, x := range u {
		names[x.Name] = len(x.Value)
	}
	for name, size := range map[string]int{
		"uAmbientColor_white":  4,
		"uAmbientK_white":      1,
		"uDiffuseColor_white":  4,
		"uDiffuseK_white":      1,
		"uSpecularColor_white": 4,
		"uSpecularK_white":     1,
		"uShininess_white":     1,
	} {
		if names[name] != size {
			t.Errorf("%s: expected %d floats, got %d", name, size, names[name])
		}
	}
}

func TestTrack(t *testing.T) {
	m := NewModel(math.Vec3{X: 0, Y: 3, Z: 5})
	fixed := m.Fixed.Position

	m.Track(math.Vec3{X: 1, Y: 3, Z: 4})
	if m.Tracking.Position != (math.Vec3{X: 1, Y: 3, Z: 4}) {
		t.Errorf("tracking light at %+v", m.Tracking.Position)
	}
	if m.Fixed.Position != fixed {
		t.Error("fixed light moved")
	}
}

func TestShadeSpecularIgnoresBase(t *testing.T) {
	// Light at the viewer, surface facing it head on.
	m := &Model{
		Tracking: NewLight(TrackingName, math.Vec3{}, math.Vec4{1, 1, 1, 1}),
		Fixed:    &Light{Name: FixedName},
	}
	view := math.Identity()
	p := math.Vec3{Z: -5}
	n := math.Vec3{Z: 1}

	black := m.Shade(view, p, n, math.Vec4{0, 0, 0, 0})
	assertVec4(t, black, math.Vec4{0.25, 0.25, 0.25, 0.25})

	red := m.Shade(view, p, n, math.Vec4{1, 0, 0, 1})
	assertVec4(t, red, math.Vec4{1, 0.25, 0.25, 1})
}

func TestShadeFacingAway(t *testing.T) {
	m := &Model{
		Tracking: NewLight(TrackingName, math.Vec3{}, math.Vec4{1, 1, 1, 1}),
		Fixed:    &Light{Name: FixedName},
	}

	got := m.Shade(math.Identity(), math.Vec3{Z: -5}, math.Vec3{Z: -1}, math.Vec4{0.5, 0.5, 0.5, 1})
	assertVec4(t, got, math.Vec4{0.1, 0.1, 0.1, 0.2})
}

func TestShadeIsAdditive(t *testing.T) {
	eye := math.Vec3{X: 2, Y: 3, Z: 4}
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1})
	full := NewModel(eye)

	onlyTracking := &Model{Tracking: full.Tracking, Fixed: &Light{Name: FixedName}}
	onlyFixed := &Model{Tracking: &Light{Name: TrackingName}, Fixed: full.Fixed}

	points := []struct{ p, n math.Vec3 }{
		{math.Vec3{X: 0.1, Y: -0.2, Z: -4}, math.Vec3{X: 0, Y: 1, Z: 1}},
		{math.Vec3{X: -1, Y: 1, Z: -6}, math.Vec3{X: 1, Y: 0, Z: 0.5}},
		{math.Vec3{X: 0, Y: 0, Z: -3}, math.Vec3{X: 0, Y: 0, Z: 1}},
	}
	base := vertexColor()

	for i, pt := range points {
		got := full.Shade(view, pt.p, pt.n, base)
		want := onlyTracking.Shade(view, pt.p, pt.n, base).Add(onlyFixed.Shade(view, pt.p, pt.n, base))
		for c := range got {
			if d := got[c] - want[c]; d > 1e-5 || d < -1e-5 {
				t.Errorf("point %d channel %d: got %f, want %f", i, c, got[c], want[c])
			}
		}
	}
}

func vertexColor() math.Vec4 {
	return math.Vec4{0.5, 0.2, 0.4, 1}
}

func assertVec4(t *testing.T, got, want math.Vec4) {
	t.Helper()
	for i := range got {
		if d := got[i] - want[i]; d > 1e-5 || d < -1e-5 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
