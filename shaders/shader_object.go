package shaders

import (
	"errors"

	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/renderctx"
)

// Context is what shader programs need from the rendering context they live in
type Context interface {
	Driver() driver.Driver

	PushProgram(progId uint32)
	PopProgram()
	GetProgram() uint32
	SetProgramMatrix()
	ForgetProgram(progId uint32)

	GetAssetFile(name string) (string, bool)

	GetCollection(name string) (any, bool)
	RegisterCollection(name string, coll any)
}

var _ Context = &renderctx.Context{}

type Kind int32

const (
	Kind_Unknown Kind = iota
	Kind_VertexSource
	Kind_FragmentSource
	Kind_Program
)

func (k Kind) String() string {

	switch k {
	case Kind_VertexSource:
		return driver.ShaderType_Vertex.String()
	case Kind_FragmentSource:
		return driver.ShaderType_Fragment.String()
	case Kind_Program:
		return "shader program"

	default:
		return "unknown shader object"
	}
}

func kindFromShaderType(t driver.ShaderType) Kind {

	switch t {
	case driver.ShaderType_Vertex:
		return Kind_VertexSource
	case driver.ShaderType_Fragment:
		return Kind_FragmentSource

	default:
		return Kind_Unknown
	}
}

// Shader is implemented by *ShaderSource and *ShaderProgram
type Shader interface {
	Object() *ShaderObject
	Delete()
}

// ShaderObject is the state shared by sources and programs.
//
// Failures are never returned as errors by compile and link. They are recorded
// here instead: IsValid turns false, ErrorString holds the driver log and
// ErrorObject points at the object the failure started from (the object itself,
// or for programs an attached source).
type ShaderObject struct {
	Id   uint32
	Kind Kind

	IsValid     bool
	ErrorString string
	ErrorObject *ShaderObject

	drv driver.Driver
}

func (so *ShaderObject) Object() *ShaderObject {
	return so
}

func (so *ShaderObject) setError(errObj *ShaderObject, errStr string) {
	so.IsValid = false
	so.ErrorObject = errObj
	so.ErrorString = errStr
}

// Err returns the recorded failure as an error, or nil if nothing failed
func (so *ShaderObject) Err() error {

	if so.ErrorObject == nil && so.ErrorString == "" {
		return nil
	}

	return errors.New(so.ErrorString)
}

// RootErrorObject follows the ErrorObject chain to where the failure started
func (so *ShaderObject) RootErrorObject() *ShaderObject {

	curr := so.ErrorObject
	for curr != nil && curr.ErrorObject != nil && curr.ErrorObject != curr {
		curr = curr.ErrorObject
	}

	return curr
}

// Delete releases the driver handle. Calling it more than once is harmless.
func (so *ShaderObject) Delete() {

	if so.Id == 0 {
		return
	}

	if so.Kind == Kind_Program {
		so.drv.DeleteProgram(so.Id)
	} else {
		so.drv.DeleteShader(so.Id)
	}

	so.Id = 0
	so.IsValid = false
}
