package shaders_test

import (
	"testing"

	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {

	_, drv := newTestCtx()

	vs := shaders.NewVertexSource(drv)
	require.NotZero(t, vs.Id)
	assert.Equal(t, shaders.Kind_VertexSource, vs.Kind)
	assert.False(t, vs.IsValid)

	assert.True(t, vs.Compile(basicVertSrc))
	assert.True(t, vs.Compiled)
	assert.True(t, vs.IsValid)
	assert.Equal(t, basicVertSrc, vs.Source)
	assert.Equal(t, basicVertSrc, drv.Shaders[vs.Id].Source)
	assert.NoError(t, vs.Err())
}

func TestCompileTwice(t *testing.T) {

	_, drv := newTestCtx()

	fs := shaders.NewFragmentSource(drv)
	require.True(t, fs.Compile(basicFragSrc))

	assert.False(t, fs.Compile("void main() {}"))
	assert.True(t, fs.IsValid)
	assert.Equal(t, basicFragSrc, fs.Source)
	assert.Equal(t, 1, drv.CallCount("CompileShader"))
}

func TestCompileTwiceAfterFailure(t *testing.T) {

	_, drv := newTestCtx()
	drv.CompileFunc = func(driver.ShaderType, string) (bool, string) { return false, "0:1: syntax error" }

	fs := shaders.NewFragmentSource(drv)
	require.False(t, fs.Compile("bad"))

	drv.CompileFunc = nil
	assert.False(t, fs.Compile(basicFragSrc))
	assert.False(t, fs.IsValid)
	assert.Equal(t, "bad", fs.Source)
	assert.Equal(t, "0:1: syntax error", fs.ErrorString)
}

func TestCompileBlank(t *testing.T) {

	for _, src := range []string{"", "   ", "\n\t \r\n"} {

		_, drv := newTestCtx()
		vs := shaders.NewVertexSource(drv)
		callsBefore := len(drv.Calls)

		assert.False(t, vs.Compile(src))
		assert.False(t, vs.Compiled)
		assert.False(t, vs.IsValid)
		assert.Len(t, drv.Calls, callsBefore, "blank source must not reach the driver")

		// A blank attempt doesn't use up the single compile
		assert.True(t, vs.Compile(basicVertSrc))
	}
}

func TestCompileFailure(t *testing.T) {

	_, drv := newTestCtx()
	drv.CompileFunc = func(driver.ShaderType, string) (bool, string) {
		return false, "ERROR: 0:3: 'positon' : undeclared identifier"
	}

	vs := shaders.NewVertexSource(drv)
	assert.False(t, vs.Compile(basicVertSrc))
	assert.True(t, vs.Compiled)
	assert.False(t, vs.IsValid)
	assert.Equal(t, "ERROR: 0:3: 'positon' : undeclared identifier", vs.ErrorString)
	assert.Same(t, vs.Object(), vs.ErrorObject)
	assert.EqualError(t, vs.Err(), vs.ErrorString)
}

func TestCompileFailureWithoutLog(t *testing.T) {

	_, drv := newTestCtx()
	drv.CompileFunc = func(driver.ShaderType, string) (bool, string) { return false, "" }

	fs := shaders.NewFragmentSource(drv)
	assert.False(t, fs.Compile(basicFragSrc))
	assert.Equal(t, "Unknown error", fs.ErrorString)
}

func TestSourceDelete(t *testing.T) {

	_, drv := newTestCtx()

	vs := shaders.NewVertexSource(drv)
	require.True(t, vs.Compile(basicVertSrc))
	id := vs.Id

	vs.Delete()
	vs.Delete()

	assert.Zero(t, vs.Id)
	assert.True(t, drv.Shaders[id].Deleted)
	assert.Equal(t, 1, drv.CallCount("DeleteShader"))
}

func TestNewShaderSourceUnknownType(t *testing.T) {

	_, drv := newTestCtx()

	s := shaders.NewShaderSource(drv, driver.ShaderType_Unknown)
	assert.Zero(t, s.Id)
	assert.False(t, s.IsValid)
	assert.NotEmpty(t, s.ErrorString)
	assert.False(t, s.Compile(basicVertSrc))

	s.Delete()
	assert.Zero(t, drv.CallCount("DeleteShader"))
}
