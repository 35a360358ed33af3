// Package gltest provides a recording fake of the graphics.API driver
// interface for call-sequence and call-count assertions in tests.
package gltest

import (
	"fmt"

	"github.com/gogfx/hellotriangle/graphics"
)

// Call is one recorded driver call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// API records every driver call it receives and hands out sequential object
// names starting at 1. Zero value is not usable; use New.
type API struct {
	Calls []Call

	// InitErr, when set, is returned from Init to simulate a loader failure.
	InitErr error
	// VertexLog and FragmentLog, when non-empty, force compilation of the
	// corresponding shader stage to fail with that info log.
	VertexLog   string
	FragmentLog string
	// LinkLog, when non-empty, forces program linking to fail with that log.
	LinkLog string

	nextName    uint32
	shaderTypes map[uint32]graphics.Enum
}

var _ graphics.API = (*API)(nil)

func New() *API {
	return &API{shaderTypes: make(map[uint32]graphics.Enum)}
}

func (a *API) record(name string, args ...any) {
	a.Calls = append(a.Calls, Call{Name: name, Args: args})
}

func (a *API) newName() uint32 {
	a.nextName++
	return a.nextName
}

// Count reports how many recorded calls have the given name.
func (a *API) Count(name string) int {
	n := 0
	for _, c := range a.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Filter returns all recorded calls with the given name, in order.
func (a *API) Filter(name string) []Call {
	var out []Call
	for _, c := range a.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the recorded call names in order.
func (a *API) Names() []string {
	out := make([]string, len(a.Calls))
	for i, c := range a.Calls {
		out[i] = c.Name
	}
	return out
}

func (a *API) Init() error {
	a.record("Init")
	return a.InitErr
}

func (a *API) Viewport(x, y, width, height int32) {
	a.record("Viewport", x, y, width, height)
}

func (a *API) ClearColor(r, g, b, al float32) {
	a.record("ClearColor", r, g, b, al)
}

func (a *API) Clear(mask graphics.Enum) {
	a.record("Clear", mask)
}

func (a *API) CreateVertexArray() uint32 {
	name := a.newName()
	a.record("CreateVertexArray", name)
	return name
}

func (a *API) BindVertexArray(array uint32) {
	a.record("BindVertexArray", array)
}

func (a *API) DeleteVertexArray(array uint32) {
	a.record("DeleteVertexArray", array)
}

func (a *API) CreateBuffer() uint32 {
	name := a.newName()
	a.record("CreateBuffer", name)
	return name
}

func (a *API) BindBuffer(target graphics.Enum, buffer uint32) {
	a.record("BindBuffer", target, buffer)
}

func (a *API) BufferDataFloat32(target graphics.Enum, data []float32, usage graphics.Enum) {
	cp := make([]float32, len(data))
	copy(cp, data)
	a.record("BufferDataFloat32", target, cp, usage)
}

func (a *API) BufferDataUint32(target graphics.Enum, data []uint32, usage graphics.Enum) {
	cp := make([]uint32, len(data))
	copy(cp, data)
	a.record("BufferDataUint32", target, cp, usage)
}

func (a *API) DeleteBuffer(buffer uint32) {
	a.record("DeleteBuffer", buffer)
}

func (a *API) VertexAttribPointer(index uint32, size int32, xtype graphics.Enum, normalized bool, stride int32, offset int) {
	a.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (a *API) EnableVertexAttribArray(index uint32) {
	a.record("EnableVertexAttribArray", index)
}

func (a *API) CreateShader(xtype graphics.Enum) uint32 {
	name := a.newName()
	a.shaderTypes[name] = xtype
	a.record("CreateShader", xtype, name)
	return name
}

func (a *API) ShaderSource(shader uint32, source string) {
	a.record("ShaderSource", shader, source)
}

func (a *API) CompileShader(shader uint32) (bool, string) {
	a.record("CompileShader", shader)
	switch a.shaderTypes[shader] {
	case graphics.VertexShader:
		if a.VertexLog != "" {
			return false, a.VertexLog
		}
	case graphics.FragmentShader:
		if a.FragmentLog != "" {
			return false, a.FragmentLog
		}
	}
	return true, ""
}

func (a *API) DeleteShader(shader uint32) {
	a.record("DeleteShader", shader)
}

func (a *API) CreateProgram() uint32 {
	name := a.newName()
	a.record("CreateProgram", name)
	return name
}

func (a *API) AttachShader(program, shader uint32) {
	a.record("AttachShader", program, shader)
}

func (a *API) LinkProgram(program uint32) (bool, string) {
	a.record("LinkProgram", program)
	if a.LinkLog != "" {
		return false, a.LinkLog
	}
	return true, ""
}

func (a *API) UseProgram(program uint32) {
	a.record("UseProgram", program)
}

func (a *API) DeleteProgram(program uint32) {
	a.record("DeleteProgram", program)
}

func (a *API) DrawElements(mode graphics.Enum, count int32, xtype graphics.Enum, offset int) {
	a.record("DrawElements", mode, count, xtype, offset)
}

func (a *API) ReadPixels(x, y, width, height int32, dst []byte) {
	a.record("ReadPixels", x, y, width, height)
	for i := range dst {
		dst[i] = byte(i)
	}
}
