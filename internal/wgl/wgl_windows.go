// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"
	"log"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tinselfly/glwindow/internal/gl"
	"github.com/tinselfly/glwindow/internal/w32"
)

var (
	opengl32            = windows.NewLazySystemDLL("opengl32.dll")
	_wglCreateContext   = opengl32.NewProc("wglCreateContext")
	_wglDeleteContext   = opengl32.NewProc("wglDeleteContext")
	_wglGetProcAddress  = opengl32.NewProc("wglGetProcAddress")
	_wglMakeCurrent     = opengl32.NewProc("wglMakeCurrent")
)

// GetProcAddress resolves a context-dependent entry point. Sentinel
// return values collapse to 0; a context must be current for the result
// to mean anything.
func GetProcAddress(name string) uintptr {
	p, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	addr, _, _ := _wglGetProcAddress.Call(uintptr(unsafe.Pointer(p)))
	if gl.InvalidProcAddress(addr) {
		return 0
	}
	return addr
}

// contextResolver adapts GetProcAddress to the loader's resolver chain.
type contextResolver struct{}

func (contextResolver) Resolve(name string) uintptr {
	return GetProcAddress(name)
}

var ContextResolver gl.Resolver = contextResolver{}

func CreateLegacyContext(hdc w32.HDC) (w32.HGLRC, error) {
	ctx, _, err := _wglCreateContext.Call(uintptr(hdc))
	if ctx == 0 {
		return 0, fmt.Errorf("wglCreateContext: %w", wglErr(err))
	}
	return w32.HGLRC(ctx), nil
}

func DeleteContext(ctx w32.HGLRC) error {
	r, _, err := _wglDeleteContext.Call(uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglDeleteContext: %w", wglErr(err))
	}
	return nil
}

func MakeCurrent(hdc w32.HDC, ctx w32.HGLRC) error {
	r, _, err := _wglMakeCurrent.Call(uintptr(hdc), uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglMakeCurrent: %w", wglErr(err))
	}
	return nil
}

func wglErr(e error) error {
	if errno, ok := e.(syscall.Errno); ok {
		return w32.Error(errno)
	}
	return e
}

func logTeardown(err error) {
	log.Printf("wgl: teardown: %v", err)
}

// systemBackend drives negotiation against the live window system. The
// probe window never shows; its class points straight at DefWindowProc.
type systemBackend struct {
	inst w32.HINSTANCE
}

func NewSystemBackend() (Backend, error) {
	inst, err := w32.GetModuleHandle()
	if err != nil {
		return nil, err
	}
	return &systemBackend{inst: inst}, nil
}

func (b *systemBackend) RegisterProbeClass(name string) error {
	cls := w32.WndClassEx{
		Style:         w32.CS_OWNDC,
		LpfnWndProc:   w32.DefWindowProcAddr(),
		HInstance:     b.inst,
		LpszClassName: w32.UTF16Ptr(name),
	}
	return w32.RegisterClassEx(&cls)
}

func (b *systemBackend) UnregisterProbeClass(name string) {
	if err := w32.UnregisterClass(w32.UTF16Ptr(name), b.inst); err != nil {
		logTeardown(err)
	}
}

func (b *systemBackend) CreateProbeWindow(class string) (w32.HWND, error) {
	return w32.CreateWindowEx(0,
		w32.UTF16Ptr(class), w32.UTF16Ptr("probe"),
		0, 0, 0, 1, 1,
		0, 0, b.inst, 0)
}

func (b *systemBackend) DestroyWindow(hwnd w32.HWND) {
	if err := w32.DestroyWindow(hwnd); err != nil {
		logTeardown(err)
	}
}

func (b *systemBackend) GetDC(hwnd w32.HWND) (w32.HDC, error) {
	return w32.GetDC(hwnd)
}

func (b *systemBackend) ReleaseDC(hwnd w32.HWND, hdc w32.HDC) {
	if err := w32.ReleaseDC(hwnd, hdc); err != nil {
		logTeardown(err)
	}
}

func (b *systemBackend) SetBasicPixelFormat(hdc w32.HDC) error {
	pfd := w32.PixelFormatDescriptor{
		Flags:       w32.PFD_DRAW_TO_WINDOW | w32.PFD_SUPPORT_OPENGL | w32.PFD_DOUBLEBUFFER,
		PixelType:   w32.PFD_TYPE_RGBA,
		ColorBits:   32,
		DepthBits:   24,
		StencilBits: 8,
		LayerType:   w32.PFD_MAIN_PLANE,
	}
	idx, err := w32.ChoosePixelFormat(hdc, &pfd)
	if err != nil {
		return err
	}
	return w32.SetPixelFormat(hdc, idx, &pfd)
}

func (b *systemBackend) CreateLegacyContext(hdc w32.HDC) (w32.HGLRC, error) {
	return CreateLegacyContext(hdc)
}

func (b *systemBackend) DeleteContext(ctx w32.HGLRC) {
	if err := DeleteContext(ctx); err != nil {
		logTeardown(err)
	}
}

func (b *systemBackend) MakeCurrent(hdc w32.HDC, ctx w32.HGLRC) error {
	if hdc == 0 && ctx == 0 {
		// Unbinding failure only matters for the resources torn down
		// next, which report their own errors.
		if err := MakeCurrent(0, 0); err != nil {
			logTeardown(err)
		}
		return nil
	}
	return MakeCurrent(hdc, ctx)
}

func (b *systemBackend) ExtensionString(hdc w32.HDC) (string, error) {
	addr := GetProcAddress("wglGetExtensionsStringARB")
	if addr == 0 {
		return "", fmt.Errorf("wglGetExtensionsStringARB is unavailable")
	}
	s, _, _ := syscall.SyscallN(addr, uintptr(hdc))
	if s == 0 {
		return "", fmt.Errorf("wglGetExtensionsStringARB returned no string")
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(s))), nil
}

func (b *systemBackend) ProcAddress(name string) uintptr {
	return GetProcAddress(name)
}

// ChoosePixelFormat asks the driver for the pixel format closest to the
// attribute request. The empty list is passed as null.
func (c *Caps) ChoosePixelFormat(hdc w32.HDC, attribs AttribList) (int32, error) {
	if err := attribs.Validate(); err != nil {
		return 0, err
	}
	var intPtr *int32
	if len(attribs) > 0 {
		intPtr = &attribs[0]
	}
	var (
		format int32
		count  uint32
	)
	r, _, err := syscall.SyscallN(c.choosePixelFormatARB,
		uintptr(hdc),
		uintptr(unsafe.Pointer(intPtr)),
		0, // no float attributes
		1,
		uintptr(unsafe.Pointer(&format)),
		uintptr(unsafe.Pointer(&count)))
	runtime.KeepAlive(attribs)
	if r == 0 {
		return 0, fmt.Errorf("wglChoosePixelFormatARB: %w", wglErr(err))
	}
	if count < 1 {
		return 0, fmt.Errorf("wglChoosePixelFormatARB matched no formats")
	}
	return format, nil
}

// CreateContext creates a context with the requested attributes,
// optionally sharing objects with another context.
func (c *Caps) CreateContext(hdc w32.HDC, share w32.HGLRC, attribs AttribList) (w32.HGLRC, error) {
	if err := attribs.Validate(); err != nil {
		return 0, err
	}
	var intPtr *int32
	if len(attribs) > 0 {
		intPtr = &attribs[0]
	}
	ctx, _, err := syscall.SyscallN(c.createContextAttribsARB,
		uintptr(hdc),
		uintptr(share),
		uintptr(unsafe.Pointer(intPtr)))
	runtime.KeepAlive(attribs)
	if ctx == 0 {
		return 0, fmt.Errorf("wglCreateContextAttribsARB: %w", wglErr(err))
	}
	return w32.HGLRC(ctx), nil
}

// SetSwapInterval needs a current context.
func (c *Caps) SetSwapInterval(interval int) error {
	r, _, err := syscall.SyscallN(c.swapIntervalEXT, uintptr(interval))
	if r == 0 {
		return fmt.Errorf("wglSwapIntervalEXT(%d): %w", interval, wglErr(err))
	}
	return nil
}
