package shaders

import (
	"sort"

	"github.com/bloeys/nshader/logging"
)

// CollectionName is the name the shader collection is registered under on a context
const CollectionName = "shaders"

// ShaderCollection owns named shader objects for the lifetime of its context
type ShaderCollection struct {
	ctx     Context
	shaders map[string]Shader
}

// Shader returns the object registered under name, of any kind
func (sc *ShaderCollection) Shader(name string) (Shader, bool) {
	s, ok := sc.shaders[name]
	return s, ok
}

// Program returns the program registered under name. Names that are missing or
// hold a source are reported as absent.
func (sc *ShaderCollection) Program(name string) (*ShaderProgram, bool) {

	s, ok := sc.shaders[name]
	if !ok {
		return nil, false
	}

	sp, ok := s.(*ShaderProgram)
	return sp, ok
}

// Add registers s under name, taking ownership of it. An existing entry with that name is deleted.
func (sc *ShaderCollection) Add(name string, s Shader) {

	if old, ok := sc.shaders[name]; ok && old != s {
		logging.InfoLog.Printf("Replacing shader '%s' in collection\n", name)
		old.Delete()
	}

	sc.shaders[name] = s
}

// Remove deletes and forgets the entry with name, if any
func (sc *ShaderCollection) Remove(name string) {

	s, ok := sc.shaders[name]
	if !ok {
		return
	}

	s.Delete()
	delete(sc.shaders, name)
}

// Names returns the registered names sorted
func (sc *ShaderCollection) Names() []string {

	names := make([]string, 0, len(sc.shaders))
	for name := range sc.shaders {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func (sc *ShaderCollection) Len() int {
	return len(sc.shaders)
}

// LoadProgram creates a program with CreateFromFile and registers it under name.
// Programs that fail to compile or link are still registered so their errors can be inspected.
func (sc *ShaderCollection) LoadProgram(name string, paths ...string) (*ShaderProgram, error) {

	sp, err := CreateFromFile(sc.ctx, paths...)
	if err != nil {
		return nil, err
	}

	sc.Add(name, sp)
	return sp, nil
}

// LoadCombinedProgram is LoadProgram for a single '//shader:' combined file
func (sc *ShaderCollection) LoadCombinedProgram(name, shaderPath string) (*ShaderProgram, error) {

	sp, err := CreateFromCombinedFile(sc.ctx, shaderPath)
	if err != nil {
		return nil, err
	}

	sc.Add(name, sp)
	return sp, nil
}

// Delete releases every entry. The collection stays usable and empty.
func (sc *ShaderCollection) Delete() {

	for name, s := range sc.shaders {
		s.Delete()
		delete(sc.shaders, name)
	}
}

func NewShaderCollection(ctx Context) *ShaderCollection {
	return &ShaderCollection{
		ctx:     ctx,
		shaders: map[string]Shader{},
	}
}

// Collection returns the shader collection of ctx, creating and registering it on first use
func Collection(ctx Context) *ShaderCollection {

	if coll, ok := ctx.GetCollection(CollectionName); ok {
		if sc, ok := coll.(*ShaderCollection); ok {
			return sc
		}
		logging.ErrLog.Printf("Collection '%s' is not a shader collection and will be replaced\n", CollectionName)
	}

	sc := NewShaderCollection(ctx)
	ctx.RegisterCollection(CollectionName, sc)
	return sc
}
