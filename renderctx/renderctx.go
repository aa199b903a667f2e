// Package renderctx holds the per-window rendering state that shader programs
// cooperate with: the active-program stack, the transform stacks uploaded to
// programs, asset lookup and a registry of named collections.
//
// A Context is not safe for concurrent use. Like the GL context it wraps it
// belongs to one thread.
package renderctx

import (
	"os"
	"path/filepath"

	"github.com/bloeys/nshader/assert"
	"github.com/bloeys/nshader/driver"
	"github.com/bloeys/nshader/logging"
)

const (
	DefaultModelViewUniform  = "modelViewMat"
	DefaultProjectionUniform = "projMat"
)

// Deleter is implemented by registered collections that own driver resources.
// Context.Destroy calls it.
type Deleter interface {
	Delete()
}

type Context struct {
	Drv driver.Driver

	ModelView  MatrixStack
	Projection MatrixStack

	// Uniform names SetProgramMatrix writes to. A program without them is skipped silently.
	ModelViewUniform  string
	ProjectionUniform string

	// AssetDirs are searched in order by GetAssetFile
	AssetDirs []string

	currProgId uint32
	progStack  []uint32

	unifLocs    map[uint32]map[string]int32
	collections map[string]any
}

func (c *Context) Driver() driver.Driver {
	return c.Drv
}

// PushProgram makes progId the active program, remembering the previous one for PopProgram
func (c *Context) PushProgram(progId uint32) {
	c.progStack = append(c.progStack, c.currProgId)
	c.currProgId = progId
	c.Drv.UseProgram(progId)
}

// PopProgram restores the program that was active before the matching PushProgram
func (c *Context) PopProgram() {

	assert.T(len(c.progStack) > 0, "PopProgram called more times than PushProgram")

	prevProgId := uint32(0)
	if len(c.progStack) > 0 {
		prevProgId = c.progStack[len(c.progStack)-1]
		c.progStack = c.progStack[:len(c.progStack)-1]
	}

	c.currProgId = prevProgId
	c.Drv.UseProgram(prevProgId)
}

func (c *Context) GetProgram() uint32 {
	return c.currProgId
}

func (c *Context) ProgramStackDepth() int {
	return len(c.progStack)
}

// SetProgramMatrix uploads the top of the model-view and projection stacks to the active program
func (c *Context) SetProgramMatrix() {

	if c.currProgId == 0 {
		return
	}

	if loc := c.uniformLoc(c.currProgId, c.ModelViewUniform); loc != -1 {
		c.Drv.ProgramUniformMat4(c.currProgId, loc, c.ModelView.Top())
	}

	if loc := c.uniformLoc(c.currProgId, c.ProjectionUniform); loc != -1 {
		c.Drv.ProgramUniformMat4(c.currProgId, loc, c.Projection.Top())
	}
}

func (c *Context) uniformLoc(progId uint32, name string) int32 {

	if name == "" {
		return -1
	}

	progLocs, ok := c.unifLocs[progId]
	if !ok {
		progLocs = map[string]int32{}
		c.unifLocs[progId] = progLocs
	}

	loc, ok := progLocs[name]
	if ok {
		return loc
	}

	loc = c.Drv.GetUniformLocation(progId, name)
	progLocs[name] = loc
	return loc
}

// ForgetProgram drops cached state for a program handle that is being released,
// since the driver is free to hand the same handle out again.
func (c *Context) ForgetProgram(progId uint32) {
	delete(c.unifLocs, progId)
}

// GetAssetFile resolves a logical asset name against AssetDirs and returns the first existing file
func (c *Context) GetAssetFile(name string) (string, bool) {

	if name == "" {
		return "", false
	}

	for i := 0; i < len(c.AssetDirs); i++ {

		p := filepath.Join(c.AssetDirs[i], name)
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}

		return p, true
	}

	return "", false
}

func (c *Context) GetCollection(name string) (any, bool) {
	coll, ok := c.collections[name]
	return coll, ok
}

func (c *Context) RegisterCollection(name string, coll any) {

	if _, ok := c.collections[name]; ok {
		logging.ErrLog.Printf("Replacing already registered collection '%s'\n", name)
	}

	c.collections[name] = coll
}

// Destroy releases every registered collection that owns driver resources and resets program state
func (c *Context) Destroy() {

	for name, coll := range c.collections {
		if d, ok := coll.(Deleter); ok {
			d.Delete()
		}
		delete(c.collections, name)
	}

	if c.currProgId != 0 {
		c.Drv.UseProgram(0)
	}

	c.currProgId = 0
	c.progStack = c.progStack[:0]
	c.unifLocs = map[uint32]map[string]int32{}
}

func NewContext(drv driver.Driver, assetDirs ...string) *Context {
	return &Context{
		Drv:               drv,
		ModelViewUniform:  DefaultModelViewUniform,
		ProjectionUniform: DefaultProjectionUniform,
		AssetDirs:         assetDirs,
		unifLocs:          map[uint32]map[string]int32{},
		collections:       map[string]any{},
	}
}
