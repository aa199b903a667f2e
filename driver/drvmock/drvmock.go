// Package drvmock is an in-memory driver.Driver that records what it is asked to do.
// It lets the shader layer be exercised without a GL context.
package drvmock

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nshader/driver"
)

var _ driver.Driver = &Driver{}

type Shader struct {
	Type     driver.ShaderType
	Source   string
	Compiled bool
	Ok       bool
	Log      string
	Deleted  bool
}

type Program struct {
	Attached []uint32
	Attribs  map[string]uint32
	Linked   bool
	Ok       bool
	Log      string
	Deleted  bool

	UnifLocs map[string]int32
	// Uniforms holds the last value uploaded to each location
	Uniforms map[int32]any
}

type Driver struct {
	lastId uint32

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program

	// CompileFunc decides compile results. When nil every shader compiles.
	CompileFunc func(shaderType driver.ShaderType, src string) (ok bool, log string)
	// LinkFunc decides link results. When nil every program links.
	LinkFunc func(p *Program) (ok bool, log string)

	// Uniforms lists the uniform names every program reports as active.
	// When nil all names are considered active.
	Uniforms []string

	CurrentProgram uint32
	Calls          []string
}

func (d *Driver) nextId() uint32 {
	d.lastId++
	return d.lastId
}

func (d *Driver) call(name string) {
	d.Calls = append(d.Calls, name)
}

func (d *Driver) CreateShader(shaderType driver.ShaderType) uint32 {
	d.call("CreateShader")

	if shaderType != driver.ShaderType_Vertex && shaderType != driver.ShaderType_Fragment {
		return 0
	}

	id := d.nextId()
	d.Shaders[id] = &Shader{Type: shaderType}
	return id
}

func (d *Driver) DeleteShader(shaderId uint32) {
	d.call("DeleteShader")
	if s, ok := d.Shaders[shaderId]; ok {
		s.Deleted = true
	}
}

func (d *Driver) ShaderSource(shaderId uint32, src string) {
	d.call("ShaderSource")
	if s, ok := d.Shaders[shaderId]; ok {
		s.Source = src
	}
}

func (d *Driver) CompileShader(shaderId uint32) {
	d.call("CompileShader")

	s, ok := d.Shaders[shaderId]
	if !ok {
		return
	}

	s.Compiled = true
	s.Ok = true
	s.Log = ""
	if d.CompileFunc != nil {
		s.Ok, s.Log = d.CompileFunc(s.Type, s.Source)
	}
}

func (d *Driver) ShaderCompileStatus(shaderId uint32) bool {
	d.call("ShaderCompileStatus")
	s, ok := d.Shaders[shaderId]
	return ok && s.Compiled && s.Ok
}

func (d *Driver) ShaderInfoLog(shaderId uint32) string {
	d.call("ShaderInfoLog")
	if s, ok := d.Shaders[shaderId]; ok {
		return s.Log
	}
	return ""
}

func (d *Driver) CreateProgram() uint32 {
	d.call("CreateProgram")

	id := d.nextId()
	d.Programs[id] = &Program{
		Attribs:  map[string]uint32{},
		UnifLocs: map[string]int32{},
		Uniforms: map[int32]any{},
	}
	return id
}

func (d *Driver) DeleteProgram(progId uint32) {
	d.call("DeleteProgram")
	if p, ok := d.Programs[progId]; ok {
		p.Deleted = true
	}
}

func (d *Driver) AttachShader(progId, shaderId uint32) {
	d.call("AttachShader")
	if p, ok := d.Programs[progId]; ok {
		p.Attached = append(p.Attached, shaderId)
	}
}

func (d *Driver) BindAttribLocation(progId, index uint32, name string) {
	d.call("BindAttribLocation")
	if p, ok := d.Programs[progId]; ok {
		p.Attribs[name] = index
	}
}

func (d *Driver) LinkProgram(progId uint32) {
	d.call("LinkProgram")

	p, ok := d.Programs[progId]
	if !ok {
		return
	}

	p.Linked = true
	p.Ok = true
	p.Log = ""
	if d.LinkFunc != nil {
		p.Ok, p.Log = d.LinkFunc(p)
	}
}

func (d *Driver) ProgramLinkStatus(progId uint32) bool {
	d.call("ProgramLinkStatus")
	p, ok := d.Programs[progId]
	return ok && p.Linked && p.Ok
}

func (d *Driver) ProgramInfoLog(progId uint32) string {
	d.call("ProgramInfoLog")
	if p, ok := d.Programs[progId]; ok {
		return p.Log
	}
	return ""
}

func (d *Driver) UseProgram(progId uint32) {
	d.call("UseProgram")
	d.CurrentProgram = progId
}

func (d *Driver) GetUniformLocation(progId uint32, name string) int32 {
	d.call("GetUniformLocation")

	p, ok := d.Programs[progId]
	if !ok || !d.hasUniform(name) {
		return -1
	}

	loc, ok := p.UnifLocs[name]
	if !ok {
		loc = int32(len(p.UnifLocs))
		p.UnifLocs[name] = loc
	}

	return loc
}

func (d *Driver) hasUniform(name string) bool {

	if d.Uniforms == nil {
		return true
	}

	for i := 0; i < len(d.Uniforms); i++ {
		if d.Uniforms[i] == name {
			return true
		}
	}

	return false
}

func (d *Driver) setUniform(progId uint32, loc int32, val any) {
	if p, ok := d.Programs[progId]; ok {
		p.Uniforms[loc] = val
	}
}

func (d *Driver) ProgramUniform1i(progId uint32, loc int32, val int32) {
	d.call("ProgramUniform1i")
	d.setUniform(progId, loc, val)
}

func (d *Driver) ProgramUniform1f(progId uint32, loc int32, val float32) {
	d.call("ProgramUniform1f")
	d.setUniform(progId, loc, val)
}

func (d *Driver) ProgramUniformVec2(progId uint32, loc int32, vec2 *gglm.Vec2) {
	d.call("ProgramUniformVec2")
	d.setUniform(progId, loc, *vec2)
}

func (d *Driver) ProgramUniformVec3(progId uint32, loc int32, vec3 *gglm.Vec3) {
	d.call("ProgramUniformVec3")
	d.setUniform(progId, loc, *vec3)
}

func (d *Driver) ProgramUniformVec4(progId uint32, loc int32, vec4 *gglm.Vec4) {
	d.call("ProgramUniformVec4")
	d.setUniform(progId, loc, *vec4)
}

func (d *Driver) ProgramUniformMat3(progId uint32, loc int32, mat3 *gglm.Mat3) {
	d.call("ProgramUniformMat3")
	d.setUniform(progId, loc, *mat3)
}

func (d *Driver) ProgramUniformMat4(progId uint32, loc int32, mat4 *gglm.Mat4) {
	d.call("ProgramUniformMat4")
	d.setUniform(progId, loc, *mat4)
}

// CallCount returns how many times the named method was called
func (d *Driver) CallCount(name string) int {

	count := 0
	for i := 0; i < len(d.Calls); i++ {
		if d.Calls[i] == name {
			count++
		}
	}

	return count
}

func New() *Driver {
	return &Driver{
		Shaders:  map[uint32]*Shader{},
		Programs: map[uint32]*Program{},
	}
}
