package shaders

import (
	"strings"

	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/logging"
)

const unknownErrorStr = "Unknown error"

type ShaderSource struct {
	ShaderObject

	Compiled bool
	Source   string

	shaderType driver.ShaderType
}

func (s *ShaderSource) Type() driver.ShaderType {
	return s.shaderType
}

// Compile submits src to the driver. A source compiles at most once: later calls,
// and calls with blank text, return false and change nothing.
func (s *ShaderSource) Compile(src string) bool {

	if s.Compiled || s.Id == 0 || strings.TrimSpace(src) == "" {
		return false
	}

	s.Compiled = true
	s.Source = src

	s.drv.ShaderSource(s.Id, src)
	s.drv.CompileShader(s.Id)

	s.IsValid = s.drv.ShaderCompileStatus(s.Id)
	if s.IsValid {
		return true
	}

	errMsg := s.drv.ShaderInfoLog(s.Id)
	if errMsg == "" {
		errMsg = unknownErrorStr
	}

	s.setError(&s.ShaderObject, errMsg)
	logging.ErrLog.Printf("Compilation of %s with id %d failed. Err: %s\n", s.shaderType, s.Id, errMsg)
	return false
}

func NewShaderSource(drv driver.Driver, shaderType driver.ShaderType) *ShaderSource {

	s := &ShaderSource{
		ShaderObject: ShaderObject{
			Kind: kindFromShaderType(shaderType),
			drv:  drv,
		},
		shaderType: shaderType,
	}

	s.Id = drv.CreateShader(shaderType)
	if s.Id == 0 {
		s.setError(&s.ShaderObject, "failed to create driver shader for "+shaderType.String())
		logging.ErrLog.Println(s.ErrorString)
	}

	return s
}

func NewVertexSource(drv driver.Driver) *ShaderSource {
	return NewShaderSource(drv, driver.ShaderType_Vertex)
}

func NewFragmentSource(drv driver.Driver) *ShaderSource {
	return NewShaderSource(drv, driver.ShaderType_Fragment)
}
