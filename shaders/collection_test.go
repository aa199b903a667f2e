package shaders_test

import (
	"path/filepath"
	"testing"

	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionMissing(t *testing.T) {

	ctx, _ := newTestCtx()
	sc := shaders.Collection(ctx)

	s, ok := sc.Shader("missing")
	assert.False(t, ok)
	assert.Nil(t, s)

	sp, ok := sc.Program("missing")
	assert.False(t, ok)
	assert.Nil(t, sp)
}

func TestCollectionLookup(t *testing.T) {

	ctx, drv := newTestCtx()
	sc := shaders.Collection(ctx)

	vs := compiledSource(t, drv, driver.ShaderType_Vertex, basicVertSrc)
	sc.Add("basicVert", vs)

	prog := linkedProgram(t, ctx)
	sc.Add("basic", prog)

	s, ok := sc.Shader("basicVert")
	require.True(t, ok)
	assert.Same(t, vs.Object(), s.Object())

	s, ok = sc.Shader("basic")
	require.True(t, ok)
	assert.Same(t, prog.Object(), s.Object())

	sp, ok := sc.Program("basic")
	require.True(t, ok)
	assert.Same(t, prog, sp)

	// Wrong kind reads as absent
	sp, ok = sc.Program("basicVert")
	assert.False(t, ok)
	assert.Nil(t, sp)

	assert.Equal(t, []string{"basic", "basicVert"}, sc.Names())
	assert.Equal(t, 2, sc.Len())
}

func TestCollectionIsPerContext(t *testing.T) {

	ctx, _ := newTestCtx()
	otherCtx, _ := newTestCtx()

	sc := shaders.Collection(ctx)
	assert.Same(t, sc, shaders.Collection(ctx))
	assert.NotSame(t, sc, shaders.Collection(otherCtx))

	registered, ok := ctx.GetCollection(shaders.CollectionName)
	require.True(t, ok)
	assert.Same(t, sc, registered)
}

func TestCollectionReplaceAndRemove(t *testing.T) {

	ctx, drv := newTestCtx()
	sc := shaders.Collection(ctx)

	first := linkedProgram(t, ctx)
	firstId := first.Id
	sc.Add("basic", first)

	second := linkedProgram(t, ctx)
	sc.Add("basic", second)
	assert.True(t, drv.Programs[firstId].Deleted)

	// Re-adding the same object must not delete it
	sc.Add("basic", second)
	assert.NotZero(t, second.Id)

	secondId := second.Id
	sc.Remove("basic")
	sc.Remove("basic")
	assert.True(t, drv.Programs[secondId].Deleted)
	assert.Zero(t, sc.Len())
}

func TestContextDestroyDeletesCollection(t *testing.T) {

	ctx, drv := newTestCtx()
	sc := shaders.Collection(ctx)

	prog := linkedProgram(t, ctx)
	progId := prog.Id
	sc.Add("basic", prog)

	prog.Push()
	ctx.Destroy()

	assert.True(t, drv.Programs[progId].Deleted)
	assert.Zero(t, sc.Len())
	assert.Zero(t, ctx.GetProgram())

	_, ok := ctx.GetCollection(shaders.CollectionName)
	assert.False(t, ok)
}

func TestCollectionLoadProgram(t *testing.T) {

	dir := t.TempDir()
	writeFile(t, dir, "basic.vert", basicVertSrc)
	writeFile(t, dir, "basic.frag", basicFragSrc)

	ctx, _ := newTestCtx()
	sc := shaders.Collection(ctx)

	sp, err := sc.LoadProgram("basic", filepath.Join(dir, "basic"))
	require.NoError(t, err)

	got, ok := sc.Program("basic")
	require.True(t, ok)
	assert.Same(t, sp, got)

	_, err = sc.LoadProgram("broken", filepath.Join(dir, "missing"))
	assert.Error(t, err)
	_, ok = sc.Shader("broken")
	assert.False(t, ok)
}
