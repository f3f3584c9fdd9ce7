// SPDX-License-Identifier: Unlicense OR MIT

// Package wgl negotiates a modern OpenGL context on Windows. The
// extension entry points that make that possible can only be resolved
// with a context already current, so negotiation runs against a throwaway
// window and legacy context first.
package wgl

// Pixel format attribute keys and values (WGL_ARB_pixel_format and
// friends).
const (
	DrawToWindowARB           = 0x2001
	SupportOpenGLARB          = 0x2010
	DoubleBufferARB           = 0x2011
	PixelTypeARB              = 0x2013
	ColorBitsARB              = 0x2014
	DepthBitsARB              = 0x2022
	StencilBitsARB            = 0x2023
	TypeRGBAARB               = 0x202B
	SampleBuffersARB          = 0x2041
	FramebufferSRGBCapableEXT = 0x20A9
)

// Context attribute keys and bits (WGL_ARB_create_context).
const (
	ContextMajorVersionARB = 0x2091
	ContextMinorVersionARB = 0x2092
	ContextFlagsARB        = 0x2094
	ContextProfileMaskARB  = 0x9126

	ContextDebugBitARB             = 0x0001
	ContextForwardCompatibleBitARB = 0x0002
	ContextCoreProfileBitARB       = 0x0001
)

// Extension names consulted during bootstrap.
const (
	ExtFramebufferSRGB = "WGL_EXT_framebuffer_sRGB"
	ExtMultisample     = "WGL_ARB_multisample"
	ExtSwapControlTear = "WGL_EXT_swap_control_tear"
)
