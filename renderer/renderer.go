package renderer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gogfx/hellotriangle/graphics"
	"github.com/gogfx/hellotriangle/options"
	"github.com/gogfx/hellotriangle/shader"
)

// Renderer owns the GPU objects for the lifetime of the program: the
// triangle mesh and the shader program. It drives the three phases of the
// pipeline — setup, the per-frame loop, teardown.
type Renderer struct {
	context graphics.Context
	api     graphics.API
	opts    *options.Options

	mesh    *Mesh
	program uint32
}

// New binds the context to the calling thread and loads the driver function
// pointers. A loader failure is fatal for the caller.
func New(ctx graphics.Context, api graphics.API, opts *options.Options) (*Renderer, error) {
	r := &Renderer{context: ctx, api: api, opts: opts}

	r.context.MakeCurrent()
	if err := r.api.Init(); err != nil {
		return nil, fmt.Errorf("failed to load OpenGL function pointers: %w", err)
	}
	return r, nil
}

// Setup runs the one-time setup phase: viewport, resize handler, shader
// program, geometry upload.
//
// A shader compile or link failure is deliberately not fatal: the driver
// diagnostic is logged and the loop still runs, it just has nothing to draw.
// The failure is carried as an explicit empty program rather than an ignored
// status bit.
func (r *Renderer) Setup() {
	width, height := r.context.GetFramebufferSize()
	r.api.Viewport(0, 0, int32(width), int32(height))
	r.context.SetResizeHandler(func(w, h int) {
		r.api.Viewport(0, 0, int32(w), int32(h))
	})

	log.Debug("compiling shader program")
	program, err := shader.NewProgram(r.api, r.opts.VertexShaderSource, r.opts.FragmentShaderSource)
	if err != nil {
		log.Error("shader program build failed, continuing without a drawable program", "err", err)
	} else {
		r.program = program
	}

	log.Debug("uploading triangle geometry")
	r.mesh = NewMesh(r.api, triangleVertices, triangleIndices)
}

// RenderFrame clears the color buffer and draws the triangle. When setup
// produced no drawable program the clear still happens and the draw call is
// skipped.
func (r *Renderer) RenderFrame() {
	c := r.opts.ClearColor
	r.api.ClearColor(c[0], c[1], c[2], c[3])
	r.api.Clear(graphics.ColorBufferBit)

	if r.program != 0 {
		r.api.UseProgram(r.program)
		r.mesh.Draw()
	}
}

// Run drives the interactive loop until the close flag is set, either by the
// platform's close affordance or by the per-frame Escape check.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		r.context.ProcessInput()
		r.RenderFrame()
		r.context.EndFrame()
	}
}

// Shutdown deletes every GPU object created during setup, then destroys the
// window and its context. It must run exactly once.
func (r *Renderer) Shutdown() {
	if r.mesh != nil {
		r.mesh.Destroy()
		r.mesh = nil
	}
	if r.program != 0 {
		r.api.DeleteProgram(r.program)
		r.program = 0
	}
	r.context.Shutdown()
}
