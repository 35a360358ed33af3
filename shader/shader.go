// Package shader holds the fixed GLSL 330 core sources for the triangle
// pipeline and the compile/link helper that turns them into a drawable
// program.
package shader

import (
	"fmt"

	"github.com/gogfx/hellotriangle/graphics"
)

// VertexSource passes the position attribute in slot 0 through unchanged.
const VertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// FragmentSource paints every fragment a constant orange.
const FragmentSource = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// NewProgram compiles the vertex and fragment sources and links them into a
// program. The intermediate shader objects are deleted before returning, so
// the program is the only GPU object the caller owns. On any failure the
// returned error carries the driver's info log and no GPU objects are leaked.
func NewProgram(api graphics.API, vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compile(api, graphics.VertexShader, vertexSource)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compile(api, graphics.FragmentShader, fragmentSource)
	if err != nil {
		api.DeleteShader(vertexShader)
		return 0, err
	}

	program := api.CreateProgram()
	api.AttachShader(program, vertexShader)
	api.AttachShader(program, fragmentShader)
	ok, infoLog := api.LinkProgram(program)

	// Once the link step has run the shader objects are no longer needed,
	// whether it succeeded or not.
	api.DeleteShader(vertexShader)
	api.DeleteShader(fragmentShader)

	if !ok {
		api.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %s", infoLog)
	}
	return program, nil
}

func compile(api graphics.API, xtype graphics.Enum, source string) (uint32, error) {
	shader := api.CreateShader(xtype)
	api.ShaderSource(shader, source)
	ok, infoLog := api.CompileShader(shader)
	if !ok {
		api.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %s", stageName(xtype), infoLog)
	}
	return shader, nil
}

func stageName(xtype graphics.Enum) string {
	switch xtype {
	case graphics.VertexShader:
		return "vertex"
	case graphics.FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("0x%04X", uint32(xtype))
	}
}
