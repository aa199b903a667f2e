package drvgl

import (
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ driver.Driver = &DrvGL{}

// DrvGL forwards to OpenGL 4.1 core. gl.Init must have been called on the current thread.
type DrvGL struct{}

func shaderTypeToGl(s driver.ShaderType) uint32 {

	switch s {
	case driver.ShaderType_Vertex:
		return gl.VERTEX_SHADER
	case driver.ShaderType_Fragment:
		return gl.FRAGMENT_SHADER

	default:
		logging.ErrLog.Printf("Unknown shader type '%d'\n", s)
		return 0
	}
}

func (d *DrvGL) CreateShader(shaderType driver.ShaderType) uint32 {

	glType := shaderTypeToGl(shaderType)
	if glType == 0 {
		return 0
	}

	shaderId := gl.CreateShader(glType)
	if shaderId == 0 {
		logging.ErrLog.Printf("Failed to create OpenGl shader. OpenGl Error=%d\n", gl.GetError())
	}

	return shaderId
}

func (d *DrvGL) DeleteShader(shaderId uint32) {
	gl.DeleteShader(shaderId)
}

func (d *DrvGL) ShaderSource(shaderId uint32, src string) {
	shaderCStr, shaderFree := gl.Strs(src + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)
}

func (d *DrvGL) CompileShader(shaderId uint32) {
	gl.CompileShader(shaderId)
}

func (d *DrvGL) ShaderCompileStatus(shaderId uint32) bool {
	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	return compiledSuccessfully == gl.TRUE
}

func (d *DrvGL) ShaderInfoLog(shaderId uint32) string {

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)
	return strings.TrimSpace(gl.GoStr(log))
}

func (d *DrvGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *DrvGL) DeleteProgram(progId uint32) {
	gl.DeleteProgram(progId)
}

func (d *DrvGL) AttachShader(progId, shaderId uint32) {
	gl.AttachShader(progId, shaderId)
}

func (d *DrvGL) BindAttribLocation(progId, index uint32, name string) {
	gl.BindAttribLocation(progId, index, gl.Str(name+"\x00"))
}

func (d *DrvGL) LinkProgram(progId uint32) {
	gl.LinkProgram(progId)
}

func (d *DrvGL) ProgramLinkStatus(progId uint32) bool {
	var linkedSuccessfully int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &linkedSuccessfully)
	return linkedSuccessfully == gl.TRUE
}

func (d *DrvGL) ProgramInfoLog(progId uint32) string {

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(progId, logLength, nil, log)
	return strings.TrimSpace(gl.GoStr(log))
}

func (d *DrvGL) UseProgram(progId uint32) {
	gl.UseProgram(progId)
}

func (d *DrvGL) GetUniformLocation(progId uint32, name string) int32 {
	return gl.GetUniformLocation(progId, gl.Str(name+"\x00"))
}

func (d *DrvGL) ProgramUniform1i(progId uint32, loc int32, val int32) {
	gl.ProgramUniform1i(progId, loc, val)
}

func (d *DrvGL) ProgramUniform1f(progId uint32, loc int32, val float32) {
	gl.ProgramUniform1f(progId, loc, val)
}

func (d *DrvGL) ProgramUniformVec2(progId uint32, loc int32, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(progId, loc, 1, &vec2.Data[0])
}

func (d *DrvGL) ProgramUniformVec3(progId uint32, loc int32, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(progId, loc, 1, &vec3.Data[0])
}

func (d *DrvGL) ProgramUniformVec4(progId uint32, loc int32, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(progId, loc, 1, &vec4.Data[0])
}

func (d *DrvGL) ProgramUniformMat3(progId uint32, loc int32, mat3 *gglm.Mat3) {
	gl.ProgramUniformMatrix3fv(progId, loc, 1, false, &mat3.Data[0][0])
}

func (d *DrvGL) ProgramUniformMat4(progId uint32, loc int32, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(progId, loc, 1, false, &mat4.Data[0][0])
}

func NewDrvGL() *DrvGL {
	return &DrvGL{}
}
