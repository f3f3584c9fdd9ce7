// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log"

	"github.com/tinselfly/glwindow/internal/gl"
	"github.com/tinselfly/glwindow/internal/unsafeslice"
)

// Interleaved position and color, one corner per row.
var triangleVertices = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

var triangleIndices = []uint16{0, 1, 2}

const vertexStride = 6 * 4

// renderer owns the GL objects for the triangle. setup runs once, on the
// first paint after the context exists.
type renderer struct {
	program gl.Program
	vao     gl.VertexArray
}

func newRenderer() *renderer {
	return &renderer{}
}

func (r *renderer) setup(g gl.API) {
	r.vao = g.CreateVertexArray()
	g.BindVertexArray(r.vao)

	vbo := g.CreateBuffer()
	g.BindBuffer(gl.ARRAY_BUFFER, vbo)
	g.BufferData(gl.ARRAY_BUFFER, unsafeslice.BytesView(triangleVertices), gl.STATIC_DRAW)

	ebo := g.CreateBuffer()
	g.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	g.BufferData(gl.ELEMENT_ARRAY_BUFFER, unsafeslice.BytesView(triangleIndices), gl.STATIC_DRAW)

	g.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, 0)
	g.EnableVertexAttribArray(0)
	g.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	g.EnableVertexAttribArray(1)

	vert := r.compile(g, gl.VERTEX_SHADER, vertexShaderSrc)
	frag := r.compile(g, gl.FRAGMENT_SHADER, fragmentShaderSrc)
	r.program = g.CreateProgram()
	g.AttachShader(r.program, vert)
	g.AttachShader(r.program, frag)
	g.LinkProgram(r.program)
	if g.GetProgrami(r.program, gl.LINK_STATUS) == gl.FALSE {
		// TODO: failed shaders leave the window clearing to the
		// background color; decide whether that should be fatal.
		log.Printf("app: program link failed: %s", g.GetProgramInfoLog(r.program))
	}
	g.DeleteShader(vert)
	g.DeleteShader(frag)

	g.UseProgram(r.program)
}

func (r *renderer) compile(g gl.API, ty gl.Enum, src string) gl.Shader {
	s := g.CreateShader(ty)
	g.ShaderSource(s, src)
	g.CompileShader(s)
	if g.GetShaderi(s, gl.COMPILE_STATUS) == gl.FALSE {
		log.Printf("app: shader compile failed: %s", g.GetShaderInfoLog(s))
	}
	return s
}

func (r *renderer) frame(g gl.API) {
	g.ClearColor(0.2, 0.3, 0.3, 1.0)
	g.Clear(gl.COLOR_BUFFER_BIT)
	g.UseProgram(r.program)
	g.BindVertexArray(r.vao)
	g.DrawElements(gl.TRIANGLES, len(triangleIndices), gl.UNSIGNED_SHORT, 0)
}
