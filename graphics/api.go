package graphics

// Enum is a GL enumerant. Values match the OpenGL 3.3 core specification so
// implementations can pass them straight through to the driver.
type Enum uint32

const (
	Triangles          Enum = 0x0004
	UnsignedInt        Enum = 0x1405
	Float              Enum = 0x1406
	ColorBufferBit     Enum = 0x00004000
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4
	FragmentShader     Enum = 0x8B30
	VertexShader       Enum = 0x8B31
)

// API is the subset of the GPU driver interface this program drives: buffer
// and vertex-array lifecycle, shader compilation and linking with the
// driver's diagnostic log, indexed draws, and framebuffer state. Object names
// are the driver-assigned uint32 handles.
//
// Init loads the driver function pointers and must be called with a current
// context before any other method.
type API interface {
	Init() error

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint32(target Enum, data []uint32, usage Enum)
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(xtype Enum) uint32
	ShaderSource(shader uint32, source string)
	// CompileShader compiles the shader and reports the driver's compile
	// status along with the info log when compilation failed.
	CompileShader(shader uint32) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	// LinkProgram links the program and reports the driver's link status
	// along with the info log when linking failed.
	LinkProgram(program uint32) (ok bool, infoLog string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	DrawElements(mode Enum, count int32, xtype Enum, offset int)

	// ReadPixels reads the RGBA8 contents of the current read framebuffer
	// into dst, which must hold at least width*height*4 bytes. Rows are in
	// GL order, bottom to top.
	ReadPixels(x, y, width, height int32, dst []byte)
}
