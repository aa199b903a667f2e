// Package driver describes the graphics driver calls the shader layer is built on.
//
// Handles are opaque integers and zero is never a valid handle. Status queries
// return the driver's verdict and info logs are returned as Go strings
// (empty when the driver has nothing to say).
package driver

import "github.com/bloeys/gglm/gglm"

type Driver interface {
	CreateShader(shaderType ShaderType) uint32
	DeleteShader(shaderId uint32)
	ShaderSource(shaderId uint32, src string)
	CompileShader(shaderId uint32)
	ShaderCompileStatus(shaderId uint32) bool
	ShaderInfoLog(shaderId uint32) string

	CreateProgram() uint32
	DeleteProgram(progId uint32)
	AttachShader(progId, shaderId uint32)
	BindAttribLocation(progId, index uint32, name string)
	LinkProgram(progId uint32)
	ProgramLinkStatus(progId uint32) bool
	ProgramInfoLog(progId uint32) string
	UseProgram(progId uint32)

	GetUniformLocation(progId uint32, name string) int32
	ProgramUniform1i(progId uint32, loc int32, val int32)
	ProgramUniform1f(progId uint32, loc int32, val float32)
	ProgramUniformVec2(progId uint32, loc int32, vec2 *gglm.Vec2)
	ProgramUniformVec3(progId uint32, loc int32, vec3 *gglm.Vec3)
	ProgramUniformVec4(progId uint32, loc int32, vec4 *gglm.Vec4)
	ProgramUniformMat3(progId uint32, loc int32, mat3 *gglm.Mat3)
	ProgramUniformMat4(progId uint32, loc int32, mat4 *gglm.Mat4)
}
