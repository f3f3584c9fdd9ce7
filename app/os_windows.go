// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tinselfly/glwindow/internal/gl"
	"github.com/tinselfly/glwindow/internal/w32"
	"github.com/tinselfly/glwindow/internal/wgl"
)

const (
	windowTitle  = "Triangle"
	windowWidth  = 800
	windowHeight = 600
)

var winDriver = &driver{env: systemEnv{}}

// resources holds the process-wide window class. Class registration and
// callback creation happen once.
var resources struct {
	once  sync.Once
	err   error
	class *uint16
}

func initResources() error {
	resources.once.Do(func() {
		inst, err := w32.GetModuleHandle()
		if err != nil {
			resources.err = err
			return
		}
		cursor, err := w32.LoadCursor(w32.IDC_ARROW)
		if err != nil {
			resources.err = err
			return
		}
		proc := windows.NewCallback(func(hwnd, msg, wparam, lparam uintptr) uintptr {
			return winDriver.windowProc(w32.HWND(hwnd), uint32(msg), wparam, lparam)
		})
		name := w32.UTF16Ptr("GlWindow")
		cls := w32.WndClassEx{
			Style:         w32.CS_HREDRAW | w32.CS_VREDRAW | w32.CS_OWNDC,
			LpfnWndProc:   proc,
			HInstance:     inst,
			HCursor:       cursor,
			LpszClassName: name,
		}
		if err := w32.RegisterClassEx(&cls); err != nil {
			resources.err = err
			return
		}
		resources.class = name
	})
	return resources.err
}

// systemEnv is the live procEnv.
type systemEnv struct{}

func (systemEnv) createParams(lparam uintptr) uintptr {
	if lparam == 0 {
		return 0
	}
	cs := (*w32.CreateStruct)(unsafe.Pointer(lparam))
	return cs.CreateParams
}

func (systemEnv) setUserData(h w32.HWND, v uintptr) error {
	_, err := w32.SetWindowLongPtr(h, w32.GWLP_USERDATA, v)
	return err
}

func (systemEnv) userData(h w32.HWND) (uintptr, error) {
	return w32.GetWindowLongPtr(h, w32.GWLP_USERDATA)
}

func (systemEnv) destroyWindow(h w32.HWND) error {
	return w32.DestroyWindow(h)
}

func (systemEnv) postQuit(code int32) {
	w32.PostQuitMessage(code)
}

func (systemEnv) invalidate(h w32.HWND) error {
	return w32.InvalidateRect(h, nil, false)
}

func (systemEnv) swapBuffers(hdc w32.HDC) error {
	return w32.SwapBuffers(hdc)
}

func (systemEnv) releaseDC(h w32.HWND, hdc w32.HDC) error {
	return w32.ReleaseDC(h, hdc)
}

func (systemEnv) deleteContext(ctx w32.HGLRC) error {
	return wgl.DeleteContext(ctx)
}

func (systemEnv) defWindowProc(h w32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	return w32.DefWindowProc(h, msg, wparam, lparam)
}

// systemPump is the live messagePump.
type systemPump struct{}

func (systemPump) next(m *w32.Msg) (int32, error) {
	return w32.GetMessage(m, 0, 0, 0)
}

func (systemPump) translate(m *w32.Msg) {
	w32.TranslateMessage(m)
}

func (systemPump) dispatch(m *w32.Msg) {
	w32.DispatchMessage(m)
}

// createNativeWindow opens the real window with the requested client
// size. The state id rides in as the creation parameter.
func createNativeWindow(title string, width, height int32, stateID uintptr) (w32.HWND, error) {
	inst, err := w32.GetModuleHandle()
	if err != nil {
		return 0, err
	}
	const style = w32.WS_OVERLAPPEDWINDOW | w32.WS_CLIPCHILDREN | w32.WS_CLIPSIBLINGS
	r := w32.Rect{Right: width, Bottom: height}
	if err := w32.AdjustWindowRectEx(&r, style, false, 0); err != nil {
		return 0, err
	}
	return w32.CreateWindowEx(0,
		resources.class,
		w32.UTF16Ptr(title),
		style,
		w32.CW_USEDEFAULT, w32.CW_USEDEFAULT,
		r.Right-r.Left, r.Bottom-r.Top,
		0, 0, inst, stateID)
}

// Main bootstraps the window and context and runs the message loop. It
// returns the exit status carried by the quit message. It must run on
// the program's main goroutine.
func Main() (int, error) {
	// The context, the window and the GL calls all bind to one thread.
	runtime.LockOSThread()

	backend, err := wgl.NewSystemBackend()
	if err != nil {
		return 0, err
	}
	caps, err := wgl.Negotiate(backend)
	if err != nil {
		return 0, fmt.Errorf("app: negotiate WGL capabilities: %w", err)
	}
	log.Printf("app: WGL extensions: %v", caps.Extensions.Names())

	if err := initResources(); err != nil {
		return 0, fmt.Errorf("app: window class: %w", err)
	}

	st := &windowState{rend: newRenderer()}
	id := winDriver.arena.put(st)
	hwnd, err := createNativeWindow(windowTitle, windowWidth, windowHeight, id)
	if err != nil {
		return 0, fmt.Errorf("app: create window: %w", err)
	}

	hdc, err := w32.GetDC(hwnd)
	if err != nil {
		return 0, err
	}
	st.hdc = hdc

	format, err := caps.ChoosePixelFormat(hdc, wgl.PixelFormatAttribs(caps.Extensions))
	if err != nil {
		return 0, fmt.Errorf("app: choose pixel format: %w", err)
	}
	var pfd w32.PixelFormatDescriptor
	if _, err := w32.DescribePixelFormat(hdc, format, &pfd); err != nil {
		return 0, err
	}
	if err := w32.SetPixelFormat(hdc, format, &pfd); err != nil {
		return 0, err
	}

	ctx, err := caps.CreateContext(hdc, 0, wgl.ContextAttribs(glDebug))
	if err != nil {
		return 0, fmt.Errorf("app: create context: %w", err)
	}
	st.ctx = ctx
	if err := wgl.MakeCurrent(hdc, ctx); err != nil {
		return 0, err
	}

	lib, err := windows.LoadLibraryEx("opengl32.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return 0, fmt.Errorf("app: load opengl32.dll: %w", err)
	}
	st.gl = gl.New(gl.NewLoader(wgl.ContextResolver, gl.LibraryResolver{Module: lib}))
	st.freeLib = func() error { return windows.FreeLibrary(lib) }

	if err := caps.SetSwapInterval(wgl.SwapInterval(caps.Extensions)); err != nil {
		return 0, fmt.Errorf("app: swap interval: %w", err)
	}

	w32.ShowWindow(hwnd, w32.SW_SHOW)
	return runLoop(systemPump{})
}
