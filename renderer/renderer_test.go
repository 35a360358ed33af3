package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogfx/hellotriangle/graphics"
	"github.com/gogfx/hellotriangle/graphics/gltest"
	"github.com/gogfx/hellotriangle/options"
	"github.com/gogfx/hellotriangle/shader"
)

// stubContext is a scriptable window surface: it reports a fixed framebuffer
// size and sets the close flag after a chosen number of input checks.
type stubContext struct {
	width, height int
	closeAfter    int // ProcessInput call number that sets the close flag; 0 = never

	processCalls  int
	endFrameCalls int
	shutdowns     int
	closed        bool
	resizeHandler func(width, height int)
}

var _ graphics.Context = (*stubContext)(nil)

func (s *stubContext) MakeCurrent() {}

func (s *stubContext) ProcessInput() {
	s.processCalls++
	if s.closeAfter > 0 && s.processCalls >= s.closeAfter {
		s.closed = true
	}
}

func (s *stubContext) ShouldClose() bool { return s.closed }

func (s *stubContext) EndFrame() { s.endFrameCalls++ }

func (s *stubContext) GetFramebufferSize() (int, int) { return s.width, s.height }

func (s *stubContext) SetResizeHandler(h func(width, height int)) { s.resizeHandler = h }

func (s *stubContext) Time() float64 { return 0 }

func (s *stubContext) Shutdown() { s.shutdowns++ }

func newTestRenderer(t *testing.T, api *gltest.API, ctx *stubContext) *Renderer {
	t.Helper()
	opts := options.Default()
	opts.VertexShaderSource = shader.VertexSource
	opts.FragmentShaderSource = shader.FragmentSource
	r, err := New(ctx, api, opts)
	require.NoError(t, err)
	return r
}

func TestNewFailsWhenLoaderFails(t *testing.T) {
	api := gltest.New()
	api.InitErr = errors.New("no current context")

	_, err := New(&stubContext{width: 800, height: 600}, api, options.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function pointers")
}

func TestSetupUploadsTriangleGeometry(t *testing.T) {
	api := gltest.New()
	r := newTestRenderer(t, api, &stubContext{width: 800, height: 600})
	r.Setup()

	floats := api.Filter("BufferDataFloat32")
	require.Len(t, floats, 1)
	assert.Equal(t, graphics.ArrayBuffer, floats[0].Args[0])
	assert.Equal(t, []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}, floats[0].Args[1])
	assert.Equal(t, graphics.StaticDraw, floats[0].Args[2])

	uints := api.Filter("BufferDataUint32")
	require.Len(t, uints, 1)
	assert.Equal(t, graphics.ElementArrayBuffer, uints[0].Args[0])
	assert.Equal(t, []uint32{0, 1, 2}, uints[0].Args[1])
	assert.Equal(t, graphics.StaticDraw, uints[0].Args[2])

	attribs := api.Filter("VertexAttribPointer")
	require.Len(t, attribs, 1)
	assert.Equal(t, []any{uint32(0), int32(3), graphics.Float, false, int32(12), 0}, attribs[0].Args)
	assert.Equal(t, 1, api.Count("EnableVertexAttribArray"))

	viewports := api.Filter("Viewport")
	require.Len(t, viewports, 1)
	assert.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, viewports[0].Args)
}

func TestRunStopsWhenCloseFlagSet(t *testing.T) {
	api := gltest.New()
	ctx := &stubContext{width: 800, height: 600, closeAfter: 3}
	r := newTestRenderer(t, api, ctx)
	r.Setup()
	r.Run()

	// The flag is set during the third iteration's input check; that frame
	// still renders and presents, then the loop exits.
	assert.Equal(t, 3, ctx.processCalls)
	assert.Equal(t, 3, ctx.endFrameCalls)
	assert.Equal(t, 3, api.Count("DrawElements"))
	assert.True(t, ctx.closed)
}

func TestFrameIssuesOneIndexedTriangleDraw(t *testing.T) {
	api := gltest.New()
	ctx := &stubContext{width: 800, height: 600, closeAfter: 1}
	r := newTestRenderer(t, api, ctx)
	r.Setup()

	setupCalls := len(api.Calls)
	r.Run()
	frame := api.Calls[setupCalls:]

	var names []string
	for _, c := range frame {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"ClearColor",
		"Clear",
		"UseProgram",
		"BindVertexArray",
		"DrawElements",
		"BindVertexArray",
	}, names)

	draws := api.Filter("DrawElements")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{graphics.Triangles, int32(3), graphics.UnsignedInt, 0}, draws[0].Args)

	// The trailing bind unbinds the vertex array.
	assert.Equal(t, uint32(0), frame[len(frame)-1].Args[0])
}

func TestResizeUpdatesViewportOnly(t *testing.T) {
	api := gltest.New()
	ctx := &stubContext{width: 800, height: 600}
	r := newTestRenderer(t, api, ctx)
	r.Setup()
	require.NotNil(t, ctx.resizeHandler)

	viewportsBefore := api.Count("Viewport")
	floatUploads := api.Count("BufferDataFloat32")
	uintUploads := api.Count("BufferDataUint32")

	ctx.resizeHandler(1024, 768)

	viewports := api.Filter("Viewport")
	require.Equal(t, viewportsBefore+1, len(viewports))
	assert.Equal(t, []any{int32(0), int32(0), int32(1024), int32(768)}, viewports[len(viewports)-1].Args)

	// Geometry is untouched by a resize.
	assert.Equal(t, floatUploads, api.Count("BufferDataFloat32"))
	assert.Equal(t, uintUploads, api.Count("BufferDataUint32"))
}

func TestShaderFailureStillRunsLoop(t *testing.T) {
	api := gltest.New()
	api.VertexLog = "0:1(1): error: syntax error"
	ctx := &stubContext{width: 800, height: 600, closeAfter: 2}
	r := newTestRenderer(t, api, ctx)
	r.Setup()
	r.Run()

	// The loop runs and clears, but nothing is drawable.
	assert.Equal(t, 2, ctx.endFrameCalls)
	assert.Equal(t, 2, api.Count("Clear"))
	assert.Zero(t, api.Count("UseProgram"))
	assert.Zero(t, api.Count("DrawElements"))
}

func TestShutdownReleasesEachObjectOnce(t *testing.T) {
	api := gltest.New()
	ctx := &stubContext{width: 800, height: 600, closeAfter: 1}
	r := newTestRenderer(t, api, ctx)
	r.Setup()
	r.Run()
	r.Shutdown()

	assert.Equal(t, 1, api.Count("DeleteVertexArray"))
	assert.Equal(t, 2, api.Count("DeleteBuffer"))
	assert.Equal(t, 1, api.Count("DeleteProgram"))
	assert.Equal(t, 1, ctx.shutdowns)

	// Every created object has a matching delete.
	assert.Equal(t, api.Count("CreateVertexArray"), api.Count("DeleteVertexArray"))
	assert.Equal(t, api.Count("CreateBuffer"), api.Count("DeleteBuffer"))
	assert.Equal(t, api.Count("CreateProgram"), api.Count("DeleteProgram"))
}
