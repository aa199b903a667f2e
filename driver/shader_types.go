package driver

import "fmt"

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
)

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex shader"
	case ShaderType_Fragment:
		return "fragment shader"

	default:
		return fmt.Sprintf("unknown shader type '%d'", int32(s))
	}
}

// Ext is the file extension used by the '.vert'/'.frag' naming convention
func (s ShaderType) Ext() string {

	switch s {
	case ShaderType_Vertex:
		return ".vert"
	case ShaderType_Fragment:
		return ".frag"

	default:
		return ""
	}
}
