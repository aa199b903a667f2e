// Command shaderview opens a window, loads a shader manifest into the window's
// shader collection and draws a triangle with one of its programs.
//
//	shaderview [config.toml]
package main

import (
	"os"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/nshader/engine"
	"github.com/bloeys/nshader/logging"
	"github.com/bloeys/nshader/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var triangleVerts = []float32{
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0, 0.5, 0,
}

func main() {

	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	profile, _ := cfg.GlProfile()
	err = engine.Init(profile)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	window, err := engine.CreateOpenGLWindowCentered(cfg.Title, cfg.Width, cfg.Height, engine.WindowFlags_RESIZABLE, cfg.AssetDirs...)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	engine.SetVSync(cfg.VSync)

	coll := shaders.Collection(window.Ctx)
	invalid, err := coll.LoadManifest(cfg.Manifest)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load shader manifest. Err: ", err)
	}

	for _, name := range invalid {
		sp, _ := coll.Program(name)
		if root := sp.RootErrorObject(); root != nil {
			logging.ErrLog.Printf("Program '%s' failed in %s: %s\n", name, root.Kind, root.ErrorString)
		}
	}

	prog, ok := coll.Program(cfg.Program)
	if !ok || !prog.IsValid {
		logging.ErrLog.Fatalf("Program '%s' is missing or invalid\n", cfg.Program)
	}

	posLoc, ok := prog.AttribLocs["position"]
	if !ok {
		logging.ErrLog.Fatalf("Program '%s' has no 'position' attribute\n", cfg.Program)
	}

	vao := newTriangleVao(posLoc)
	defer gl.DeleteVertexArrays(1, &vao)

	aspect := float32(cfg.Width) / float32(cfg.Height)
	projMat := gglm.Ortho(-aspect, aspect, -1, 1, -1, 1).Mat4
	window.Ctx.Projection.Load(&projMat)
	window.EventCallbacks = append(window.EventCallbacks, func(e sdl.Event) {

		we, ok := e.(*sdl.WindowEvent)
		if !ok || we.Event != sdl.WINDOWEVENT_SIZE_CHANGED || we.Data2 == 0 {
			return
		}

		aspect := float32(we.Data1) / float32(we.Data2)
		projMat := gglm.Ortho(-aspect, aspect, -1, 1, -1, 1).Mat4
		window.Ctx.Projection.Load(&projMat)
	})

	logging.InfoLog.Printf("Drawing with program '%s' (loaded: %v)\n", cfg.Program, coll.Names())

	startTicks := sdl.GetTicks()
	for !window.PollEvents() {

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Push()
		prog.UpdateMatrix()
		prog.SetUnifFloat32("time", float32(sdl.GetTicks()-startTicks)/1000)

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(triangleVerts)/3))
		prog.Pop()

		window.SwapBuffers()
	}
}

func newTriangleVao(posLoc uint32) uint32 {

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangleVerts)*4, gl.Ptr(triangleVerts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(posLoc)
	gl.VertexAttribPointerWithOffset(posLoc, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return vao
}
