// SPDX-License-Identifier: Unlicense OR MIT

// Package gl exposes the OpenGL entry points the renderer needs and the
// loader that resolves them at runtime.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ARRAY_BUFFER         = 0x8892
	COLOR_BUFFER_BIT     = 0x4000
	COMPILE_STATUS       = 0x8b81
	ELEMENT_ARRAY_BUFFER = 0x8893
	FALSE                = 0
	FLOAT                = 0x1406
	FRAGMENT_SHADER      = 0x8b30
	INFO_LOG_LENGTH      = 0x8B84
	LINK_STATUS          = 0x8b82
	STATIC_DRAW          = 0x88E4
	TRIANGLES            = 0x0004
	TRUE                 = 1
	UNSIGNED_SHORT       = 0x1403
	VERTEX_SHADER        = 0x8b31
)

// API is the subset of OpenGL the triangle renderer draws with. The
// Windows implementation is Functions; tests substitute fakes.
type API interface {
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindVertexArray(a VertexArray)
	BufferData(target Enum, src []byte, usage Enum)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateVertexArray() VertexArray
	DeleteShader(s Shader)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	EnableVertexAttribArray(a Attrib)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	LinkProgram(p Program)
	ShaderSource(s Shader, src string)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
}
