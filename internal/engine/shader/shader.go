// Package shader compiles GLSL programs and carries the embedded Phong
// shaders used to draw scene meshes.
package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program setup errors.
var (
	ErrCompile        = errors.New("shader compile failed")
	ErrLink           = errors.New("program link failed")
	ErrMissingUniform = errors.New("uniform not found")
)

// CompileProgram compiles the vertex and fragment stages and links them.
// Compile and link logs are returned wrapped in ErrCompile or ErrLink.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, msg)
	}

	return program, nil
}

func compileStage(source string, stage uint32, name string) (uint32, error) {
	sh := gl.CreateShader(stage)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%w: %s stage: %s", ErrCompile, name, msg)
	}

	return sh, nil
}

// infoLog reads a shader or program log through the matching GL getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n)
	getLog(id, n, nil, &buf[0])
	return gl.GoStr(&buf[0])
}

// GetUniform returns the location of name, or -1 when the uniform does not
// exist or was optimized out.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// LookupUniforms returns the locations of names in order. A missing uniform
// is reported as ErrMissingUniform.
func LookupUniforms(program uint32, names ...string) ([]int32, error) {
	locs := make([]int32, len(names))
	for i, name := range names {
		loc := GetUniform(program, name)
		if loc < 0 {
			return nil, fmt.Errorf("%w: %q in program %d", ErrMissingUniform, name, program)
		}
		locs[i] = loc
	}
	return locs, nil
}
