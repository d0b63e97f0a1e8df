package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshview/internal/engine/lighting"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/engine/shader"
	"github.com/Faultbox/meshview/internal/logger"
)

// ErrEmptyMesh is returned when an object has nothing to upload.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Vertex attribute locations in the Phong shader.
const (
	attribPosition = 0
	attribColor    = 1
	attribNormal   = 2
)

// gpuMesh holds the GL objects of one uploaded scene object.
type gpuMesh struct {
	vao        uint32
	vbos       [3]uint32 // positions, colors, normals
	ebo        uint32
	indexCount int32
}

// MeshRenderer draws scene objects with the two-light Phong shader.
type MeshRenderer struct {
	program uint32

	// Uniform locations
	locModel      int32
	locView       int32
	locProjection int32
	lightLocs     map[string]int32

	// Lighting model whose constant uniforms were last pushed
	lights *lighting.Model

	meshes map[*scene.Object]*gpuMesh
	log    *zap.Logger
}

// NewMeshRenderer compiles the Phong program and looks up its uniforms.
func NewMeshRenderer() (*MeshRenderer, error) {
	program, err := shader.CompileProgram(shader.PhongVertexShader, shader.PhongFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}

	locs, err := shader.LookupUniforms(program, "uModel", "uView", "uProjection")
	if err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("phong shader: %w", err)
	}

	return &MeshRenderer{
		program:       program,
		locModel:      locs[0],
		locView:       locs[1],
		locProjection: locs[2],
		lightLocs:     make(map[string]int32),
		meshes:        make(map[*scene.Object]*gpuMesh),
		log:           logger.Named("renderer"),
	}, nil
}

// Render draws a frame. Dirty objects are re-uploaded first; an object whose
// upload fails is marked failed and skipped from then on.
func (mr *MeshRenderer) Render(frame scene.Frame) {
	gl.UseProgram(mr.program)

	gl.UniformMatrix4fv(mr.locView, 1, false, &frame.View[0])
	gl.UniformMatrix4fv(mr.locProjection, 1, false, &frame.Projection[0])

	// The fixed light is pushed once per lighting model, the tracking
	// light position every frame.
	if frame.Lights != mr.lights {
		for _, l := range frame.Lights.Lights() {
			for _, u := range l.Uniforms() {
				mr.setUniform(u)
			}
		}
		mr.lights = frame.Lights
	}
	mr.setUniform(frame.Lights.Tracking.PositionUniform())

	for _, dc := range frame.Draws {
		o := dc.Object

		m, ok := mr.meshes[o]
		if !ok || o.Dirty() {
			var err error
			m, err = mr.upload(o, m)
			if err != nil {
				mr.log.Error("mesh upload failed", zap.String("object", o.Name), zap.Error(err))
				o.MarkFailed()
				continue
			}
			o.ClearDirty()
		}

		model := dc.Model
		gl.UniformMatrix4fv(mr.locModel, 1, false, &model[0])

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

// upload copies the object's buffers to the GPU, reusing m's GL objects
// when it is not nil.
func (mr *MeshRenderer) upload(o *scene.Object, m *gpuMesh) (*gpuMesh, error) {
	b := o.Buffers()
	if len(b.Indices) == 0 || len(b.Positions) == 0 {
		return nil, ErrEmptyMesh
	}

	if m == nil {
		m = &gpuMesh{}
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])
		gl.GenBuffers(1, &m.ebo)
		mr.meshes[o] = m
	}

	gl.BindVertexArray(m.vao)

	attribs := []struct {
		location uint32
		data     []float32
	}{
		{attribPosition, b.Positions},
		{attribColor, b.Colors},
		{attribNormal, b.Normals},
	}
	for i, a := range attribs {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, unsafe.Pointer(&a.data[0]), gl.DYNAMIC_DRAW)
		gl.VertexAttribPointerWithOffset(a.location, 4, gl.FLOAT, false, 0, 0)
		gl.EnableVertexAttribArray(a.location)
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, unsafe.Pointer(&b.Indices[0]), gl.STATIC_DRAW)
	m.indexCount = int32(len(b.Indices))

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("gl error 0x%x", code)
	}

	mr.log.Debug("mesh uploaded",
		zap.String("object", o.Name),
		zap.Int("vertices", b.VertexCount()),
		zap.Int("indices", b.IndexCount()))
	return m, nil
}

func (mr *MeshRenderer) setUniform(u lighting.Uniform) {
	loc, ok := mr.lightLocs[u.Name]
	if !ok {
		loc = shader.GetUniform(mr.program, u.Name)
		mr.lightLocs[u.Name] = loc
	}
	if loc < 0 {
		return
	}

	switch len(u.Value) {
	case 4:
		gl.Uniform4fv(loc, 1, &u.Value[0])
	case 1:
		gl.Uniform1f(loc, u.Value[0])
	}
}

func (mr *MeshRenderer) clearMeshes() {
	for _, m := range mr.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	mr.meshes = make(map[*scene.Object]*gpuMesh)
}

// Destroy releases all resources.
func (mr *MeshRenderer) Destroy() {
	mr.clearMeshes()
	if mr.program != 0 {
		gl.DeleteProgram(mr.program)
		mr.program = 0
	}
}
