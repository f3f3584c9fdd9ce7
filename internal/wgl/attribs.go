// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"fmt"

	"github.com/tinselfly/glwindow/internal/w32"
)

// Error code for a key/value list whose final key is not the zero
// terminator.
const errCodeBadAttribList = 1

// AttribList is a key/value attribute array in the wire form the WGL
// extension entry points take: pairs followed by a single zero key. The
// empty list is valid and is passed as a null pointer.
type AttribList []int32

// BuildAttribs flattens key/value pairs and appends the terminator.
func BuildAttribs(pairs [][2]int32) AttribList {
	if len(pairs) == 0 {
		return nil
	}
	l := make(AttribList, 0, 2*len(pairs)+1)
	for _, kv := range pairs {
		l = append(l, kv[0], kv[1])
	}
	return append(l, 0)
}

// Validate rejects a non-empty list that does not end in the zero key.
// Handing such a list to the driver would make it read past the end.
func (l AttribList) Validate() error {
	if len(l) == 0 {
		return nil
	}
	if l[len(l)-1] != 0 {
		return fmt.Errorf("attribute list not zero-terminated: %w", w32.AppError(errCodeBadAttribList))
	}
	return nil
}

// PixelFormatAttribs builds the pixel format request: a double-buffered
// 32-bit RGBA format with a 24/8 depth/stencil split, asking for an sRGB
// framebuffer and multisample storage only when the device advertises
// them.
func PixelFormatAttribs(exts ExtensionSet) AttribList {
	pairs := [][2]int32{
		{DrawToWindowARB, 1},
		{SupportOpenGLARB, 1},
		{DoubleBufferARB, 1},
		{PixelTypeARB, TypeRGBAARB},
		{ColorBitsARB, 32},
		{DepthBitsARB, 24},
		{StencilBitsARB, 8},
	}
	if exts.Has(ExtFramebufferSRGB) {
		pairs = append(pairs, [2]int32{FramebufferSRGBCapableEXT, 1})
	}
	if exts.Has(ExtMultisample) {
		pairs = append(pairs, [2]int32{SampleBuffersARB, 1})
	}
	return BuildAttribs(pairs)
}

// ContextAttribs requests a 4.6 core forward-compatible context, with the
// debug bit when asked.
func ContextAttribs(debug bool) AttribList {
	flags := int32(ContextForwardCompatibleBitARB)
	if debug {
		flags |= ContextDebugBitARB
	}
	return BuildAttribs([][2]int32{
		{ContextMajorVersionARB, 4},
		{ContextMinorVersionARB, 6},
		{ContextProfileMaskARB, ContextCoreProfileBitARB},
		{ContextFlagsARB, flags},
	})
}
