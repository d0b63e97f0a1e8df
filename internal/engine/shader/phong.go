package shader

import _ "embed"

// PhongVertexShader transforms mesh vertices and normals into view space.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader combines the camera-tracking and fixed lights.
//
//go:embed phong.frag
var PhongFragmentShader string
