// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log"

	"github.com/tinselfly/glwindow/internal/gl"
	"github.com/tinselfly/glwindow/internal/w32"
)

// windowState is everything a live window owns. It is reached from the
// window procedure through the arena, never through a raw pointer.
type windowState struct {
	hdc     w32.HDC
	ctx     w32.HGLRC
	gl      gl.API
	freeLib func() error
	rend    *renderer
	glReady bool
}

// procEnv is the OS surface the window procedure runs against. The
// Windows implementation is systemEnv; tests substitute fakes.
type procEnv interface {
	// createParams digs the creation parameter out of the lparam a
	// creation message carries.
	createParams(lparam uintptr) uintptr
	setUserData(h w32.HWND, v uintptr) error
	userData(h w32.HWND) (uintptr, error)
	destroyWindow(h w32.HWND) error
	postQuit(code int32)
	invalidate(h w32.HWND) error
	swapBuffers(hdc w32.HDC) error
	releaseDC(h w32.HWND, hdc w32.HDC) error
	deleteContext(ctx w32.HGLRC) error
	defWindowProc(h w32.HWND, msg uint32, wparam, lparam uintptr) uintptr
}

// driver dispatches window messages against arena-held state.
type driver struct {
	arena stateArena
	env   procEnv
}

func (d *driver) windowProc(h w32.HWND, msg uint32, wparam, lparam uintptr) uintptr {
	switch msg {
	case w32.WM_NCCREATE:
		id := d.env.createParams(lparam)
		if id == 0 {
			log.Print("app: window created without state; refusing")
			return 0
		}
		if _, ok := d.arena.get(id); !ok {
			log.Printf("app: creation parameter %d is not a live state id; refusing", id)
			return 0
		}
		if err := d.env.setUserData(h, id); err != nil {
			log.Printf("app: storing window state id: %v", err)
			return 0
		}
		return 1
	case w32.WM_CREATE:
		log.Print("app: window created")
		return 0
	case w32.WM_PAINT:
		d.paint(h)
		return 0
	case w32.WM_CLOSE:
		if err := d.env.destroyWindow(h); err != nil {
			log.Printf("app: destroying window: %v", err)
		}
		return 0
	case w32.WM_DESTROY:
		d.destroy(h)
		return 0
	default:
		return d.env.defWindowProc(h, msg, wparam, lparam)
	}
}

func (d *driver) state(h w32.HWND) (*windowState, bool) {
	id, err := d.env.userData(h)
	if err != nil || id == 0 {
		return nil, false
	}
	return d.arena.get(id)
}

func (d *driver) paint(h w32.HWND) {
	st, ok := d.state(h)
	if !ok || st.gl == nil {
		return
	}
	if !st.glReady {
		st.rend.setup(st.gl)
		st.glReady = true
	}
	st.rend.frame(st.gl)
	if err := d.env.swapBuffers(st.hdc); err != nil {
		log.Printf("app: swap buffers: %v", err)
	}
	// Immediate re-invalidation turns the paint message into a frame
	// clock.
	if err := d.env.invalidate(h); err != nil {
		log.Printf("app: invalidate: %v", err)
	}
}

// destroy releases what the window owns: the GL library first, then the
// rendering context, then the device context. The state is reclaimed
// exactly once and the quit message ends the loop.
func (d *driver) destroy(h w32.HWND) {
	id, err := d.env.userData(h)
	if err != nil || id == 0 {
		// A refused creation destroys a window that never had state.
		log.Print("app: window destroyed without state")
		d.env.postQuit(0)
		return
	}
	st, ok := d.arena.get(id)
	if !ok {
		log.Printf("app: window state %d already reclaimed", id)
		d.env.postQuit(0)
		return
	}
	if st.freeLib != nil {
		if err := st.freeLib(); err != nil {
			log.Printf("app: releasing GL library: %v", err)
		}
	}
	if st.ctx != 0 {
		if err := d.env.deleteContext(st.ctx); err != nil {
			log.Printf("app: deleting context: %v", err)
		}
	}
	if st.hdc != 0 {
		if err := d.env.releaseDC(h, st.hdc); err != nil {
			log.Printf("app: releasing device context: %v", err)
		}
	}
	if _, ok := d.arena.take(id); !ok {
		log.Printf("app: window state %d reclaimed twice", id)
	}
	d.env.postQuit(0)
}
