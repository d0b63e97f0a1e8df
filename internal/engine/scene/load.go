package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/assets"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/formats"
	"github.com/Faultbox/meshview/pkg/halfedge"
	"github.com/Faultbox/meshview/pkg/math"
)

// Load builds the scene described by cfg, reading models through mgr.
// Models are loaded in order so a fit reference is always available.
func Load(cfg *config.Config, mgr *assets.Manager, aspect float32) (*Scene, error) {
	cam := NewCamera(cfg.Camera, aspect)
	s := New(cam, NewLights(cfg.Lights, cam.Eye))

	opts := halfedge.BuildOptions{
		Strict: cfg.Selection.Strict,
		Color:  vec4(cfg.Selection.DefaultColor),
	}

	for _, mc := range cfg.Models {
		obj, err := mgr.LoadOBJ(mc.Path)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", mc.Name, err)
		}

		o, err := BuildObject(mc.Name, obj, opts, transformFor(mc))
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", mc.Name, err)
		}

		if mc.Fit != nil {
			ref, ok := s.Object(mc.Fit.Reference)
			if !ok {
				return nil, fmt.Errorf("model %s: %w: fit reference %q", mc.Name, ErrUnknownObject, mc.Fit.Reference)
			}
			scale := FitScale(ref.Width(), mc.Fit.Ratio, mc.Fit.NativeWidth)
			o.Transform.SetUniformScale(scale)
			s.log.Debug("fit scale", zap.String("name", mc.Name), zap.Float32("scale", scale))
		}

		s.AddObject(o)
	}

	return s, nil
}

// BuildObject builds the half-edge mesh for a parsed OBJ and wraps it in an
// object. Missing normals are generated. Non-manifold edges are logged.
func BuildObject(name string, obj *formats.OBJ, opts halfedge.BuildOptions, transform *model.Transform) (*Object, error) {
	log := loggerFor(name)

	if obj.EnsureNormals() {
		log.Debug("generated vertex normals")
	}

	mesh, err := halfedge.Build(obj.Positions, obj.Indices, obj.Normals, opts)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}

	if nm := mesh.NonManifoldEdges(); len(nm) > 0 {
		log.Warn("non-manifold edges left unpaired",
			zap.Int("count", len(nm)),
			zap.Int("first_a", nm[0].Edge.A),
			zap.Int("first_b", nm[0].Edge.B))
	}
	if b := mesh.BoundaryEdgeCount(); b > 0 {
		log.Debug("open mesh", zap.Int("boundary_half_edges", b))
	}

	log.Info("mesh built",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
		zap.Int("half_edges", mesh.HalfEdgeCount()))

	return NewObject(name, mesh, transform), nil
}

// NewCamera creates a camera from its configuration.
func NewCamera(cc config.CameraConfig, aspect float32) *camera.Camera {
	cam := camera.New(aspect)
	cam.Eye = vec3(cc.Eye)
	cam.Target = vec3(cc.Target)
	cam.Up = vec3(cc.Up)
	cam.FovY = cc.FovY
	cam.Near = cc.Near
	cam.Far = cc.Far
	cam.Radius = cc.Radius
	cam.Speed = cc.Speed
	cam.Angle = cc.StartAngle
	cam.Refresh()
	return cam
}

// NewLights creates the lighting model from its configuration. The tracking
// light starts at eye.
func NewLights(lc config.LightsConfig, eye math.Vec3) *lighting.Model {
	return &lighting.Model{
		Tracking: lightFor(lighting.TrackingName, lc.Tracking, eye),
		Fixed:    lightFor(lighting.FixedName, lc.Fixed, vec3(lc.Fixed.Position)),
	}
}

func lightFor(name string, lc config.LightConfig, pos math.Vec3) *lighting.Light {
	l := lighting.NewLight(name, pos, vec4(lc.Color))
	l.AmbientK = lc.Ambient
	l.DiffuseK = lc.Diffuse
	l.SpecularK = lc.Specular
	l.Shininess = lc.Shininess
	return l
}

func transformFor(mc config.ModelConfig) *model.Transform {
	t := model.NewTransform(vec3(mc.Translate), mc.RotateY, mc.RotateZ)
	if mc.Scale != ([3]float32{}) {
		t.Scale = vec3(mc.Scale)
		t.Rebuild()
	}
	return t
}

func loggerFor(name string) *zap.Logger {
	return logger.Named("mesh").With(zap.String("name", name))
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func vec4(v [4]float32) math.Vec4 {
	return math.Vec4(v)
}
