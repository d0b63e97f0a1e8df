// Package scene composes the camera, the lights and the mesh objects into
// per-frame draw calls.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// DrawCall is one object to draw with its model matrix for this frame.
type DrawCall struct {
	Object *Object
	Model  math.Mat4
}

// Frame holds everything the renderer needs for one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Lights     *lighting.Model
	Draws      []DrawCall
}

// Scene owns the camera, the lighting model and the objects.
type Scene struct {
	Camera *camera.Camera
	Lights *lighting.Model

	objects []*Object
	byName  map[string]*Object
	frame   uint64
	log     *zap.Logger
}

// New creates an empty scene. The tracking light starts at the camera eye.
func New(cam *camera.Camera, lights *lighting.Model) *Scene {
	lights.Track(cam.Eye)
	return &Scene{
		Camera: cam,
		Lights: lights,
		byName: make(map[string]*Object),
		log:    logger.Named("scene"),
	}
}

// AddObject adds an object; objects are drawn in the order added. An object
// with the name of an existing one replaces it.
func (s *Scene) AddObject(o *Object) {
	if old, ok := s.byName[o.Name]; ok {
		for i, existing := range s.objects {
			if existing == old {
				s.objects[i] = o
			}
		}
	} else {
		s.objects = append(s.objects, o)
	}
	s.byName[o.Name] = o

	s.log.Debug("object added",
		zap.String("name", o.Name),
		zap.Int("vertices", o.Mesh.VertexCount()),
		zap.Int("faces", o.Mesh.FaceCount()))
}

// Object returns the object with the given name.
func (s *Scene) Object(name string) (*Object, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// Objects returns the objects in draw order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// MarkAllFailed stops every object from being drawn, e.g. when the shading
// pipeline could not be built. Objects keep animating.
func (s *Scene) MarkAllFailed() {
	for _, o := range s.objects {
		o.MarkFailed()
	}
	s.log.Warn("all objects marked not drawable", zap.Int("objects", len(s.objects)))
}

// Update advances one frame: the camera orbits, the tracking light follows
// the eye, and every object transform advances. Objects that are not ready
// still animate but are left out of the draw list.
func (s *Scene) Update() Frame {
	s.frame++

	s.Camera.Update()
	s.Lights.Track(s.Camera.Eye)

	draws := make([]DrawCall, 0, len(s.objects))
	for _, o := range s.objects {
		o.Transform.Update()
		if !o.Ready() {
			continue
		}
		draws = append(draws, DrawCall{Object: o, Model: o.Transform.Matrix()})
	}

	return Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(),
		Lights:     s.Lights,
		Draws:      draws,
	}
}

// FrameCount returns the number of frames updated so far.
func (s *Scene) FrameCount() uint64 {
	return s.frame
}
