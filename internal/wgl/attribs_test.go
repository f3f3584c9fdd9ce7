// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"testing"

	"github.com/tinselfly/glwindow/internal/w32"
)

func TestBuildAttribs(t *testing.T) {
	l := BuildAttribs([][2]int32{{DrawToWindowARB, 1}, {ColorBitsARB, 32}})
	want := AttribList{DrawToWindowARB, 1, ColorBitsARB, 32, 0}
	if len(l) != len(want) {
		t.Fatalf("BuildAttribs returned %v, want %v", l, want)
	}
	for i := range want {
		if l[i] != want[i] {
			t.Fatalf("BuildAttribs returned %v, want %v", l, want)
		}
	}
	if got := BuildAttribs(nil); got != nil {
		t.Errorf("BuildAttribs(nil) = %v, want nil", got)
	}
}

func TestAttribListValidate(t *testing.T) {
	if err := (AttribList)(nil).Validate(); err != nil {
		t.Errorf("empty list Validate() = %v, want nil", err)
	}
	if err := (AttribList{DrawToWindowARB, 1, 0}).Validate(); err != nil {
		t.Errorf("terminated list Validate() = %v, want nil", err)
	}

	err := (AttribList{DrawToWindowARB, 1}).Validate()
	if err == nil {
		t.Fatal("unterminated list Validate() = nil, want error")
	}
	var w32err w32.Error
	if !errors.As(err, &w32err) || !w32err.IsApplication() {
		t.Errorf("unterminated list error = %v, want an application-tagged w32.Error", err)
	}
}

func TestPixelFormatAttribsGating(t *testing.T) {
	keys := func(l AttribList) map[int32]int32 {
		m := make(map[int32]int32)
		for i := 0; i+1 < len(l); i += 2 {
			m[l[i]] = l[i+1]
		}
		return m
	}

	base := PixelFormatAttribs(ExtensionSet{})
	if err := base.Validate(); err != nil {
		t.Fatalf("base list Validate() = %v", err)
	}
	m := keys(base)
	for k, want := range map[int32]int32{
		DrawToWindowARB:  1,
		SupportOpenGLARB: 1,
		DoubleBufferARB:  1,
		PixelTypeARB:     TypeRGBAARB,
		ColorBitsARB:     32,
		DepthBitsARB:     24,
		StencilBitsARB:   8,
	} {
		if m[k] != want {
			t.Errorf("base attribs key %#x = %d, want %d", k, m[k], want)
		}
	}
	if _, ok := m[FramebufferSRGBCapableEXT]; ok {
		t.Error("base attribs request sRGB without the extension")
	}
	if _, ok := m[SampleBuffersARB]; ok {
		t.Error("base attribs request sample buffers without the extension")
	}

	full := PixelFormatAttribs(ParseExtensions(ExtFramebufferSRGB + " " + ExtMultisample))
	if err := full.Validate(); err != nil {
		t.Fatalf("full list Validate() = %v", err)
	}
	m = keys(full)
	if got := m[FramebufferSRGBCapableEXT]; got != 1 {
		t.Errorf("sRGB-capable value = %d, want 1", got)
	}
	if got := m[SampleBuffersARB]; got != 1 {
		t.Errorf("sample buffers value = %d, want 1", got)
	}
}

func TestContextAttribs(t *testing.T) {
	for _, debug := range []bool{false, true} {
		l := ContextAttribs(debug)
		if err := l.Validate(); err != nil {
			t.Fatalf("ContextAttribs(%v).Validate() = %v", debug, err)
		}
		m := make(map[int32]int32)
		for i := 0; i+1 < len(l); i += 2 {
			m[l[i]] = l[i+1]
		}
		if m[ContextMajorVersionARB] != 4 || m[ContextMinorVersionARB] != 6 {
			t.Errorf("ContextAttribs(%v) requests %d.%d, want 4.6", debug, m[ContextMajorVersionARB], m[ContextMinorVersionARB])
		}
		if m[ContextProfileMaskARB] != ContextCoreProfileBitARB {
			t.Errorf("ContextAttribs(%v) profile = %#x, want core", debug, m[ContextProfileMaskARB])
		}
		flags := m[ContextFlagsARB]
		if flags&ContextForwardCompatibleBitARB == 0 {
			t.Errorf("ContextAttribs(%v) missing forward-compatible bit", debug)
		}
		if got := flags&ContextDebugBitARB != 0; got != debug {
			t.Errorf("ContextAttribs(%v) debug bit = %v", debug, got)
		}
	}
}
