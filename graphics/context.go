package graphics

// Context defines the interface for the window and OpenGL context provider.
type Context interface {
	// MakeCurrent binds the context to the calling thread.
	MakeCurrent()
	// ProcessInput performs the per-frame input check and may set the close
	// flag (the Escape key by default).
	ProcessInput()
	ShouldClose() bool
	// EndFrame presents the rendered frame and polls platform events,
	// invoking any registered callbacks on the calling thread.
	EndFrame()
	GetFramebufferSize() (int, int)
	// SetResizeHandler registers the function invoked when the framebuffer
	// size changes. Only one handler is kept.
	SetResizeHandler(func(width, height int))
	Time() float64
	Shutdown()
}
