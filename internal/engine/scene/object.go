package scene

import (
	"github.com/Faultbox/meshview/internal/engine/model"
	"github.com/Faultbox/meshview/pkg/halfedge"
	"github.com/Faultbox/meshview/pkg/math"
)

// Object is a mesh placed in the scene. Its exported buffers are rebuilt
// whenever the mesh colors change, and the renderer re-uploads them while
// the object is dirty.
type Object struct {
	Name      string
	Mesh      *halfedge.Mesh
	Transform *model.Transform

	buffers halfedge.Buffers
	dirty   bool
	ready   bool
}

// NewObject wraps a built mesh and exports its buffers.
func NewObject(name string, mesh *halfedge.Mesh, transform *model.Transform) *Object {
	return &Object{
		Name:      name,
		Mesh:      mesh,
		Transform: transform,
		buffers:   mesh.Export(),
		dirty:     true,
		ready:     true,
	}
}

// Buffers returns the last exported buffers.
func (o *Object) Buffers() halfedge.Buffers {
	return o.buffers
}

// Dirty reports whether the buffers changed since the last ClearDirty.
func (o *Object) Dirty() bool {
	return o.dirty
}

// ClearDirty marks the buffers as uploaded.
func (o *Object) ClearDirty() {
	o.dirty = false
}

// Ready reports whether the object should be drawn.
func (o *Object) Ready() bool {
	return o.ready
}

// MarkFailed stops the object from being drawn, e.g. after a failed upload.
func (o *Object) MarkFailed() {
	o.ready = false
}

// Width returns the object's untransformed X extent.
func (o *Object) Width() float32 {
	lo, hi := o.Mesh.Bounds()
	return hi.X - lo.X
}

// ColorStar colors the star of vertex id and re-exports the buffers.
func (o *Object) ColorStar(id int, color math.Vec4) error {
	if err := o.Mesh.ColorStar(id, color); err != nil {
		return err
	}
	o.refresh()
	return nil
}

// ResetColors paints every vertex color and re-exports the buffers.
func (o *Object) ResetColors(color math.Vec4) {
	o.Mesh.ResetColors(color)
	o.refresh()
}

func (o *Object) refresh() {
	o.buffers = o.Mesh.Export()
	o.dirty = true
}

// FitScale returns the uniform scale that makes an object whose untransformed
// X extent is nativeWidth as wide as ratio times the reference width.
func FitScale(referenceWidth, ratio, nativeWidth float32) float32 {
	if nativeWidth <= 0 {
		return 1
	}
	return referenceWidth * ratio / nativeWidth
}
