package glfwcontext

import (
	"runtime"

	"github.com/charmbracelet/log"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogfx/hellotriangle/graphics"
	"github.com/gogfx/hellotriangle/options"
)

// Context wraps a GLFW window and its OpenGL context. It implements
// graphics.Context for the renderer.
type Context struct {
	window        *glfw.Window
	resizeHandler func(width, height int)
}

var _ graphics.Context = (*Context)(nil)

// Init initializes the GLFW library. Must be called from the main thread
// before New.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Debug("glfw initialized")
	return nil
}

// Terminate shuts GLFW down. Must be called from the main thread, after
// every Context has been destroyed.
func Terminate() {
	glfw.Terminate()
	log.Debug("glfw terminated")
}

// New creates a window carrying an OpenGL 3.3 core-profile context. A hidden
// window is created when visible is false (record mode).
func New(opts *options.Options, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.glfwResizeCallback)
	return c, nil
}

// MakeCurrent binds the context to the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// SetVSync toggles buffer-swap synchronization with the display refresh.
// The context must be current.
func (c *Context) SetVSync(on bool) {
	if on {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

// ProcessInput runs the once-per-frame input check: Escape requests close.
// The close flag is only ever set here, never cleared.
func (c *Context) ProcessInput() {
	if c.window.GetKey(glfw.KeyEscape) == glfw.Press {
		if !c.window.ShouldClose() {
			log.Info("escape pressed, closing window")
		}
		c.window.SetShouldClose(true)
	}
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame swaps the front and back buffers and drains the platform event
// queue, invoking callbacks on the calling thread.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// SetResizeHandler registers the function invoked when the framebuffer size
// changes.
func (c *Context) SetResizeHandler(h func(width, height int)) {
	c.resizeHandler = h
}

func (c *Context) glfwResizeCallback(w *glfw.Window, width, height int) {
	log.Debug("framebuffer resized", "width", width, "height", height)
	if c.resizeHandler != nil {
		c.resizeHandler(width, height)
	}
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}
