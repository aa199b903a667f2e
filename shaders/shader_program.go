package shaders

import (
	"fmt"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/logging"
)

// AttributeKeywords start the vertex shader lines whose trailing identifier gets an attribute location
var AttributeKeywords = []string{"attribute", "in"}

type ShaderProgram struct {
	ShaderObject

	Linked      bool
	AttachCount int

	// AttribLocs maps attribute names found in attached vertex sources to their bound location
	AttribLocs map[string]uint32
	UnifLocs   map[string]int32

	ctx Context
}

// Attach binds the attributes of a vertex source and attaches it to the program.
// An invalid source makes the program invalid and finished (Linked=true),
// with ErrorObject pointing at the source.
func (sp *ShaderProgram) Attach(src *ShaderSource) {

	if sp.Linked {
		return
	}

	if !src.IsValid {

		srcErr := src.ErrorString
		if srcErr == "" {
			srcErr = "not compiled"
		}

		sp.Linked = true
		sp.setError(&src.ShaderObject, fmt.Sprintf("%s: %s", src.Type(), srcErr))
		return
	}

	if src.Type() == driver.ShaderType_Vertex {

		attribNames := scanAttributes(src.Source)
		for i := 0; i < len(attribNames); i++ {

			if _, ok := sp.AttribLocs[attribNames[i]]; ok {
				continue
			}

			loc := uint32(len(sp.AttribLocs))
			sp.drv.BindAttribLocation(sp.Id, loc, attribNames[i])
			sp.AttribLocs[attribNames[i]] = loc
		}
	}

	sp.drv.AttachShader(sp.Id, src.Id)
	sp.AttachCount++
}

// scanAttributes returns, in order, the trailing identifier of every line starting with an attribute keyword.
// This is a line heuristic and not a GLSL parser.
func scanAttributes(src string) []string {

	names := make([]string, 0, 4)
	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {

		line := lines[i]
		if commentStart := strings.Index(line, "//"); commentStart != -1 {
			line = line[:commentStart]
		}

		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		fields := strings.Fields(line)
		if len(fields) < 2 || !isAttributeKeyword(fields[0]) {
			continue
		}

		names = append(names, fields[len(fields)-1])
	}

	return names
}

func isAttributeKeyword(s string) bool {

	for i := 0; i < len(AttributeKeywords); i++ {
		if AttributeKeywords[i] == s {
			return true
		}
	}

	return false
}

// Link needs at least two attached sources and happens at most once
func (sp *ShaderProgram) Link() bool {

	if sp.Linked || sp.Id == 0 || sp.AttachCount < 2 {
		return false
	}

	sp.Linked = true
	sp.drv.LinkProgram(sp.Id)

	sp.IsValid = sp.drv.ProgramLinkStatus(sp.Id)
	if sp.IsValid {
		sp.ErrorObject = nil
		sp.ErrorString = ""
		return true
	}

	errMsg := sp.drv.ProgramInfoLog(sp.Id)
	if errMsg == "" {
		errMsg = unknownErrorStr
	}

	sp.setError(&sp.ShaderObject, errMsg)
	logging.ErrLog.Printf("Linking of shader program with id %d failed. Err: %s\n", sp.Id, errMsg)
	return false
}

// Push makes this program the active one on the context. Every Push needs a matching Pop.
func (sp *ShaderProgram) Push() {

	if !sp.IsValid {
		return
	}

	sp.ctx.PushProgram(sp.Id)
}

// Pop restores the program that was active before Push. It does nothing unless this program is the active one.
func (sp *ShaderProgram) Pop() {

	if !sp.IsValid || !sp.Active() {
		return
	}

	sp.ctx.PopProgram()
}

func (sp *ShaderProgram) Active() bool {
	return sp.Id != 0 && sp.ctx.GetProgram() == sp.Id
}

func (sp *ShaderProgram) SetActive(active bool) {

	if active {
		sp.Push()
	} else {
		sp.Pop()
	}
}

// UpdateMatrix uploads the context's current transforms, but only while this program is active
func (sp *ShaderProgram) UpdateMatrix() {

	if !sp.Active() {
		return
	}

	sp.ctx.SetProgramMatrix()
}

func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	if sp.Active() {
		logging.ErrLog.Printf("Deleting shader program with id %d while it is still active\n", sp.Id)
	}

	sp.ctx.ForgetProgram(sp.Id)
	sp.ShaderObject.Delete()
}

// GetUnifLoc returns the location of a uniform, or -1 if the program has no such active uniform
func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {

	loc, ok := sp.UnifLocs[uniformName]
	if ok {
		return loc
	}

	loc = sp.drv.GetUniformLocation(sp.Id, uniformName)
	if loc == -1 {
		logging.ErrLog.Printf("Uniform '%s' doesn't exist on shader program with id %d\n", uniformName, sp.Id)
	}

	sp.UnifLocs[uniformName] = loc
	return loc
}

func (sp *ShaderProgram) unifLocForSet(uniformName string) (int32, bool) {

	if !sp.IsValid {
		return -1, false
	}

	loc := sp.GetUnifLoc(uniformName)
	return loc, loc != -1
}

func (sp *ShaderProgram) SetUnifInt32(uniformName string, val int32) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniform1i(sp.Id, loc, val)
	}
}

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniform1f(sp.Id, loc, val)
	}
}

func (sp *ShaderProgram) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniformVec2(sp.Id, loc, vec2)
	}
}

func (sp *ShaderProgram) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniformVec3(sp.Id, loc, vec3)
	}
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniformVec4(sp.Id, loc, vec4)
	}
}

func (sp *ShaderProgram) SetUnifMat3(uniformName string, mat3 *gglm.Mat3) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniformMat3(sp.Id, loc, mat3)
	}
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	if loc, ok := sp.unifLocForSet(uniformName); ok {
		sp.drv.ProgramUniformMat4(sp.Id, loc, mat4)
	}
}

func NewShaderProgram(ctx Context) *ShaderProgram {

	drv := ctx.Driver()
	sp := &ShaderProgram{
		ShaderObject: ShaderObject{
			Kind: Kind_Program,
			drv:  drv,
		},
		AttribLocs: map[string]uint32{},
		UnifLocs:   map[string]int32{},
		ctx:        ctx,
	}

	sp.Id = drv.CreateProgram()
	if sp.Id == 0 {
		sp.Linked = true
		sp.setError(&sp.ShaderObject, "failed to create shader program")
		logging.ErrLog.Println(sp.ErrorString)
	}

	return sp
}
