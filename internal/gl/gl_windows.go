// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"math"
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// LibraryResolver resolves entry points from a loaded library's export
// table, the fallback for core functions the context lookup cannot see.
type LibraryResolver struct {
	Module windows.Handle
}

func (r LibraryResolver) Resolve(name string) uintptr {
	addr, err := windows.GetProcAddress(r.Module, name)
	if err != nil {
		return 0
	}
	return addr
}

// Functions calls OpenGL through addresses resolved once at construction.
// Calls must stay on the thread whose context was current at New.
type Functions struct {
	// Scratch for syscall out parameters.
	int32s [4]int32

	glAttachShader           uintptr
	glBindBuffer             uintptr
	glBindVertexArray        uintptr
	glBufferData             uintptr
	glClear                  uintptr
	glClearColor             uintptr
	glCompileShader          uintptr
	glCreateProgram          uintptr
	glCreateShader           uintptr
	glDeleteShader           uintptr
	glDrawElements           uintptr
	glEnableVertexAttribArray uintptr
	glGenBuffers             uintptr
	glGenVertexArrays        uintptr
	glGetProgramInfoLog      uintptr
	glGetProgramiv           uintptr
	glGetShaderInfoLog       uintptr
	glGetShaderiv            uintptr
	glLinkProgram            uintptr
	glShaderSource           uintptr
	glUseProgram             uintptr
	glVertexAttribPointer    uintptr
}

// New eagerly resolves every entry point through the loader. Entries no
// resolver knows stay zero; calling one panics with the function name.
func New(l *Loader) *Functions {
	f := new(Functions)
	for _, e := range []struct {
		name string
		dst  *uintptr
	}{
		{"glAttachShader", &f.glAttachShader},
		{"glBindBuffer", &f.glBindBuffer},
		{"glBindVertexArray", &f.glBindVertexArray},
		{"glBufferData", &f.glBufferData},
		{"glClear", &f.glClear},
		{"glClearColor", &f.glClearColor},
		{"glCompileShader", &f.glCompileShader},
		{"glCreateProgram", &f.glCreateProgram},
		{"glCreateShader", &f.glCreateShader},
		{"glDeleteShader", &f.glDeleteShader},
		{"glDrawElements", &f.glDrawElements},
		{"glEnableVertexAttribArray", &f.glEnableVertexAttribArray},
		{"glGenBuffers", &f.glGenBuffers},
		{"glGenVertexArrays", &f.glGenVertexArrays},
		{"glGetProgramInfoLog", &f.glGetProgramInfoLog},
		{"glGetProgramiv", &f.glGetProgramiv},
		{"glGetShaderInfoLog", &f.glGetShaderInfoLog},
		{"glGetShaderiv", &f.glGetShaderiv},
		{"glLinkProgram", &f.glLinkProgram},
		{"glShaderSource", &f.glShaderSource},
		{"glUseProgram", &f.glUseProgram},
		{"glVertexAttribPointer", &f.glVertexAttribPointer},
	} {
		*e.dst = l.Load(e.name)
	}
	return f
}

func addr(p uintptr, name string) uintptr {
	if p == 0 {
		panic("gl: " + name + " is not available")
	}
	return p
}

func (f *Functions) AttachShader(p Program, s Shader) {
	syscall.SyscallN(addr(f.glAttachShader, "glAttachShader"), uintptr(p.V), uintptr(s.V))
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	syscall.SyscallN(addr(f.glBindBuffer, "glBindBuffer"), uintptr(target), uintptr(b.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	syscall.SyscallN(addr(f.glBindVertexArray, "glBindVertexArray"), uintptr(a.V))
}

func (f *Functions) BufferData(target Enum, src []byte, usage Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = unsafe.Pointer(&src[0])
	}
	syscall.SyscallN(addr(f.glBufferData, "glBufferData"), uintptr(target), uintptr(len(src)), uintptr(p), uintptr(usage))
	runtime.KeepAlive(src)
}

func (f *Functions) Clear(mask Enum) {
	syscall.SyscallN(addr(f.glClear, "glClear"), uintptr(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	syscall.SyscallN(addr(f.glClearColor, "glClearColor"),
		uintptr(math.Float32bits(red)),
		uintptr(math.Float32bits(green)),
		uintptr(math.Float32bits(blue)),
		uintptr(math.Float32bits(alpha)))
}

func (f *Functions) CompileShader(s Shader) {
	syscall.SyscallN(addr(f.glCompileShader, "glCompileShader"), uintptr(s.V))
}

func (f *Functions) CreateBuffer() Buffer {
	var buf uint32
	syscall.SyscallN(addr(f.glGenBuffers, "glGenBuffers"), 1, uintptr(unsafe.Pointer(&buf)))
	return Buffer{uint(buf)}
}

func (f *Functions) CreateProgram() Program {
	p, _, _ := syscall.SyscallN(addr(f.glCreateProgram, "glCreateProgram"))
	return Program{uint(p)}
}

func (f *Functions) CreateShader(ty Enum) Shader {
	s, _, _ := syscall.SyscallN(addr(f.glCreateShader, "glCreateShader"), uintptr(ty))
	return Shader{uint(s)}
}

func (f *Functions) CreateVertexArray() VertexArray {
	var a uint32
	syscall.SyscallN(addr(f.glGenVertexArrays, "glGenVertexArrays"), 1, uintptr(unsafe.Pointer(&a)))
	return VertexArray{uint(a)}
}

func (f *Functions) DeleteShader(s Shader) {
	syscall.SyscallN(addr(f.glDeleteShader, "glDeleteShader"), uintptr(s.V))
}

func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	syscall.SyscallN(addr(f.glDrawElements, "glDrawElements"), uintptr(mode), uintptr(count), uintptr(ty), uintptr(offset))
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	syscall.SyscallN(addr(f.glEnableVertexAttribArray, "glEnableVertexAttribArray"), uintptr(a))
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	syscall.SyscallN(addr(f.glGetProgramiv, "glGetProgramiv"), uintptr(p.V), uintptr(pname), uintptr(unsafe.Pointer(&f.int32s[0])))
	return int(f.int32s[0])
}

func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	syscall.SyscallN(addr(f.glGetProgramInfoLog, "glGetProgramInfoLog"), uintptr(p.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(&buf[0])))
	return strings.TrimRight(string(buf), "\x00")
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	syscall.SyscallN(addr(f.glGetShaderiv, "glGetShaderiv"), uintptr(s.V), uintptr(pname), uintptr(unsafe.Pointer(&f.int32s[0])))
	return int(f.int32s[0])
}

func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	syscall.SyscallN(addr(f.glGetShaderInfoLog, "glGetShaderInfoLog"), uintptr(s.V), uintptr(len(buf)), 0, uintptr(unsafe.Pointer(&buf[0])))
	return strings.TrimRight(string(buf), "\x00")
}

func (f *Functions) LinkProgram(p Program) {
	syscall.SyscallN(addr(f.glLinkProgram, "glLinkProgram"), uintptr(p.V))
}

func (f *Functions) ShaderSource(s Shader, src string) {
	buf := append([]byte(src), 0)
	ptr := &buf[0]
	syscall.SyscallN(addr(f.glShaderSource, "glShaderSource"), uintptr(s.V), 1, uintptr(unsafe.Pointer(&ptr)), 0)
	runtime.KeepAlive(buf)
}

func (f *Functions) UseProgram(p Program) {
	syscall.SyscallN(addr(f.glUseProgram, "glUseProgram"), uintptr(p.V))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	var norm uintptr
	if normalized {
		norm = 1
	}
	syscall.SyscallN(addr(f.glVertexAttribPointer, "glVertexAttribPointer"), uintptr(dst), uintptr(size), uintptr(ty), norm, uintptr(stride), uintptr(offset))
}

var _ API = (*Functions)(nil)
