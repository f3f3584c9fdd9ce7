// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/tinselfly/glwindow/internal/gl"
	"github.com/tinselfly/glwindow/internal/w32"
)

// Backend is the platform surface Negotiate drives. The Windows
// implementation is systemBackend; tests substitute mocks.
type Backend interface {
	RegisterProbeClass(name string) error
	UnregisterProbeClass(name string)
	CreateProbeWindow(class string) (w32.HWND, error)
	DestroyWindow(w32.HWND)
	GetDC(w32.HWND) (w32.HDC, error)
	ReleaseDC(w32.HWND, w32.HDC)
	// SetBasicPixelFormat applies a plain double-buffered RGBA format.
	// A window's format can be set once, which is why the probe window
	// is sacrificed rather than reused.
	SetBasicPixelFormat(w32.HDC) error
	CreateLegacyContext(w32.HDC) (w32.HGLRC, error)
	DeleteContext(w32.HGLRC)
	MakeCurrent(w32.HDC, w32.HGLRC) error
	ExtensionString(w32.HDC) (string, error)
	// ProcAddress reports 0 for unknown names; sentinel addresses are
	// already filtered.
	ProcAddress(name string) uintptr
}

// Caps is what negotiation yields: the advertised extensions and the
// resolved extension entry points. The addresses stay valid for other
// contexts created against the same driver.
type Caps struct {
	Extensions ExtensionSet

	choosePixelFormatARB    uintptr
	createContextAttribsARB uintptr
	swapIntervalEXT         uintptr
}

// probeClassName returns a class name unlikely to clash with anything
// else registered in the process.
func probeClassName() string {
	var suffix [8]byte
	rand.Read(suffix[:])
	return "glwindow probe " + hex.EncodeToString(suffix[:])
}

// Negotiate discovers the device's WGL capabilities using a throwaway
// window and legacy context. Every acquired resource is released before
// return, success or not, in reverse acquisition order.
func Negotiate(b Backend) (*Caps, error) {
	class := probeClassName()
	if err := b.RegisterProbeClass(class); err != nil {
		return nil, fmt.Errorf("wgl: register probe class: %w", err)
	}
	defer b.UnregisterProbeClass(class)

	hwnd, err := b.CreateProbeWindow(class)
	if err != nil {
		return nil, fmt.Errorf("wgl: create probe window: %w", err)
	}
	defer b.DestroyWindow(hwnd)

	hdc, err := b.GetDC(hwnd)
	if err != nil {
		return nil, fmt.Errorf("wgl: probe device context: %w", err)
	}
	defer b.ReleaseDC(hwnd, hdc)

	if err := b.SetBasicPixelFormat(hdc); err != nil {
		return nil, fmt.Errorf("wgl: probe pixel format: %w", err)
	}

	ctx, err := b.CreateLegacyContext(hdc)
	if err != nil {
		return nil, fmt.Errorf("wgl: legacy context: %w", err)
	}
	defer b.DeleteContext(ctx)

	if err := b.MakeCurrent(hdc, ctx); err != nil {
		return nil, fmt.Errorf("wgl: make legacy context current: %w", err)
	}
	defer b.MakeCurrent(0, 0)

	caps := &Caps{Extensions: ExtensionSet{}}
	if s, err := b.ExtensionString(hdc); err != nil {
		// Pre-extension drivers exist; treat them as advertising nothing.
		log.Printf("wgl: extension query failed, assuming none: %v", err)
	} else {
		caps.Extensions = ParseExtensions(s)
	}

	for _, e := range []struct {
		name string
		dst  *uintptr
	}{
		{"wglChoosePixelFormatARB", &caps.choosePixelFormatARB},
		{"wglCreateContextAttribsARB", &caps.createContextAttribsARB},
		{"wglSwapIntervalEXT", &caps.swapIntervalEXT},
	} {
		addr := b.ProcAddress(e.name)
		if gl.InvalidProcAddress(addr) {
			return nil, fmt.Errorf("wgl: %s is unavailable", e.name)
		}
		*e.dst = addr
	}
	return caps, nil
}
