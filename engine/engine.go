package engine

import (
	"runtime"

	"github.com/bloeys/nshader/assert"
	"github.com/bloeys/nshader/driver/drvgl"
	"github.com/bloeys/nshader/renderctx"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type GlProfile int32

const (
	GlProfile_Core GlProfile = iota
	// Compatibility contexts accept pre-1.30 GLSL ('attribute'/'varying')
	GlProfile_Compatibility
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)

	// Ctx is the rendering context shader programs of this window are created against
	Ctx *renderctx.Context
}

// PollEvents drains the SDL event queue, firing EventCallbacks for each event.
// It returns true if the user asked to quit.
func (w *Window) PollEvents() (quitRequested bool) {

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			quitRequested = true
		}
	}

	return quitRequested
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

func (w *Window) SwapBuffers() {
	w.SDLWin.GLSwap()
}

// Destroy releases everything registered on the rendering context before the GL context goes away
func (w *Window) Destroy() error {

	if w.Ctx != nil {
		w.Ctx.Destroy()
	}

	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func Init(profile GlProfile) error {

	isInited = true

	runtime.LockOSThread()
	err := initSDL(profile)

	return err
}

func initSDL(profile GlProfile) error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	// Allows us to do MSAA
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 4)

	if profile == GlProfile_Compatibility {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
		return nil
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags, assetDirs ...string) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags, assetDirs)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, assetDirs ...string) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, assetDirs)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, assetDirs []string) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	err = initOpenGL()
	if err != nil {
		sdl.GLDeleteContext(win.GlCtx)
		sdlWin.Destroy()
		return nil, err
	}

	win.Ctx = renderctx.NewContext(drvgl.NewDrvGL(), assetDirs...)

	// Get rid of the blinding white startup screen (unfortunately there is still one frame of white)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	gl.Enable(gl.BLEND)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}

func SetMSAA(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}
