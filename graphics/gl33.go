package graphics

import (
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// GL33 implements API against a real OpenGL 3.3 core-profile context via the
// go-gl bindings. All methods must be called on the thread that owns the
// context.
type GL33 struct{}

var _ API = GL33{}

func (GL33) Init() error {
	return gl.Init()
}

func (GL33) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (GL33) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (GL33) Clear(mask Enum) {
	gl.Clear(uint32(mask))
}

func (GL33) CreateVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (GL33) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (GL33) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (GL33) CreateBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (GL33) BindBuffer(target Enum, buffer uint32) {
	gl.BindBuffer(uint32(target), buffer)
}

func (GL33) BufferDataFloat32(target Enum, data []float32, usage Enum) {
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (GL33) BufferDataUint32(target Enum, data []uint32, usage Enum) {
	gl.BufferData(uint32(target), len(data)*4, gl.Ptr(data), uint32(usage))
}

func (GL33) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (GL33) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(xtype), normalized, stride, gl.PtrOffset(offset))
}

func (GL33) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (GL33) CreateShader(xtype Enum) uint32 {
	return gl.CreateShader(uint32(xtype))
}

func (GL33) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (GL33) CompileShader(shader uint32) (bool, string) {
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		return false, strings.TrimRight(infoLog, "\x00")
	}
	return true, ""
}

func (GL33) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL33) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL33) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL33) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		return false, strings.TrimRight(infoLog, "\x00")
	}
	return true, ""
}

func (GL33) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL33) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GL33) DrawElements(mode Enum, count int32, xtype Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(xtype), gl.PtrOffset(offset))
}

func (GL33) ReadPixels(x, y, width, height int32, dst []byte) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}
