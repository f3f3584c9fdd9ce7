// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"testing"

	"github.com/tinselfly/glwindow/internal/gl"
)

// fakeGL records the call stream and can fail shader compilation and
// linking.
type fakeGL struct {
	ops []string

	compileOK bool
	linkOK    bool

	nextName    uint
	logsFetched int
}

func newFakeGL() *fakeGL {
	return &fakeGL{compileOK: true, linkOK: true}
}

func (f *fakeGL) op(format string, args ...interface{}) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeGL) name() uint {
	f.nextName++
	return f.nextName
}

func (f *fakeGL) count(op string) int {
	n := 0
	for _, o := range f.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) { f.op("AttachShader") }
func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) { f.op("BindBuffer %#x", uint(target)) }
func (f *fakeGL) BindVertexArray(a gl.VertexArray)       { f.op("BindVertexArray") }
func (f *fakeGL) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	f.op("BufferData %#x %d", uint(target), len(src))
}
func (f *fakeGL) Clear(mask gl.Enum)                      { f.op("Clear") }
func (f *fakeGL) ClearColor(r, g, b, a float32)           { f.op("ClearColor") }
func (f *fakeGL) CompileShader(s gl.Shader)               { f.op("CompileShader") }
func (f *fakeGL) CreateBuffer() gl.Buffer                 { return gl.Buffer{V: f.name()} }
func (f *fakeGL) CreateProgram() gl.Program               { return gl.Program{V: f.name()} }
func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader       { return gl.Shader{V: f.name()} }
func (f *fakeGL) CreateVertexArray() gl.VertexArray       { return gl.VertexArray{V: f.name()} }
func (f *fakeGL) DeleteShader(s gl.Shader)                { f.op("DeleteShader") }
func (f *fakeGL) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.op("DrawElements %#x %d %#x", uint(mode), count, uint(ty))
}
func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) { f.op("EnableVertexAttribArray %d", uint(a)) }
func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && !f.linkOK {
		return gl.FALSE
	}
	return gl.TRUE
}
func (f *fakeGL) GetProgramInfoLog(p gl.Program) string {
	f.logsFetched++
	return "fake link failure"
}
func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && !f.compileOK {
		return gl.FALSE
	}
	return gl.TRUE
}
func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string {
	f.logsFetched++
	return "fake compile failure"
}
func (f *fakeGL) LinkProgram(p gl.Program)              { f.op("LinkProgram") }
func (f *fakeGL) ShaderSource(s gl.Shader, src string)  { f.op("ShaderSource %d", len(src)) }
func (f *fakeGL) UseProgram(p gl.Program)               { f.op("UseProgram") }
func (f *fakeGL) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.op("VertexAttribPointer %d", uint(dst))
}

var _ gl.API = (*fakeGL)(nil)

func TestRendererSetupUploadsGeometry(t *testing.T) {
	g := newFakeGL()
	r := newRenderer()
	r.setup(g)

	wantVertexBytes := fmt.Sprintf("BufferData %#x %d", uint(gl.ARRAY_BUFFER), len(triangleVertices)*4)
	if got := g.count(wantVertexBytes); got != 1 {
		t.Errorf("vertex upload %q seen %d times, want 1; ops: %v", wantVertexBytes, got, g.ops)
	}
	wantIndexBytes := fmt.Sprintf("BufferData %#x %d", uint(gl.ELEMENT_ARRAY_BUFFER), len(triangleIndices)*2)
	if got := g.count(wantIndexBytes); got != 1 {
		t.Errorf("index upload %q seen %d times, want 1; ops: %v", wantIndexBytes, got, g.ops)
	}
	for _, attrib := range []string{"VertexAttribPointer 0", "VertexAttribPointer 1"} {
		if got := g.count(attrib); got != 1 {
			t.Errorf("%q seen %d times, want 1", attrib, got)
		}
	}
	if g.logsFetched != 0 {
		t.Errorf("fetched %d info logs on a clean setup, want 0", g.logsFetched)
	}
}

func TestRendererFrameDrawsIndexedTriangle(t *testing.T) {
	g := newFakeGL()
	r := newRenderer()
	r.setup(g)
	r.frame(g)

	want := fmt.Sprintf("DrawElements %#x %d %#x", uint(gl.TRIANGLES), 3, uint(gl.UNSIGNED_SHORT))
	if got := g.count(want); got != 1 {
		t.Errorf("%q seen %d times, want 1; ops: %v", want, got, g.ops)
	}
	if got := g.count("Clear"); got != 1 {
		t.Errorf("Clear seen %d times, want 1", got)
	}
}

func TestRendererShaderFailureIsNotFatal(t *testing.T) {
	g := newFakeGL()
	g.compileOK = false
	g.linkOK = false
	r := newRenderer()

	// Must not panic; the run continues with whatever linked.
	r.setup(g)
	r.frame(g)

	if g.logsFetched == 0 {
		t.Error("no info logs fetched after compile and link failures")
	}
	if got := g.count("Clear"); got != 1 {
		t.Errorf("Clear seen %d times after shader failure, want 1", got)
	}
}
