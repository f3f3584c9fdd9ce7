// SPDX-License-Identifier: Unlicense OR MIT

// Package w32 wraps the slice of the Win32 API surface the window
// bootstrap needs, as typed functions with explicit error returns.
package w32

// Handle types. All are opaque; only this package and the WGL layer
// dereference them.
type (
	HWND      uintptr
	HDC       uintptr
	HGLRC     uintptr
	HINSTANCE uintptr
	HICON     uintptr
	HCURSOR   uintptr
	HBRUSH    uintptr
	HMENU     uintptr
)

type Point struct {
	X, Y int32
}

type Rect struct {
	Left, Top, Right, Bottom int32
}

type Msg struct {
	Hwnd     HWND
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       Point
	LPrivate uint32
}

type WndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     HINSTANCE
	HIcon         HICON
	HCursor       HCURSOR
	HbrBackground HBRUSH
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       HICON
}

// CreateStruct mirrors CREATESTRUCTW. Only CreateParams is read here; the
// rest keeps the layout intact.
type CreateStruct struct {
	CreateParams uintptr
	Instance     HINSTANCE
	Menu         HMENU
	Parent       HWND
	Cy           int32
	Cx           int32
	Y            int32
	X            int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}

type PixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      byte
	ColorBits      byte
	RedBits        byte
	RedShift       byte
	GreenBits      byte
	GreenShift     byte
	BlueBits       byte
	BlueShift      byte
	AlphaBits      byte
	AlphaShift     byte
	AccumBits      byte
	AccumRedBits   byte
	AccumGreenBits byte
	AccumBlueBits  byte
	AccumAlphaBits byte
	DepthBits      byte
	StencilBits    byte
	AuxBuffers     byte
	LayerType      byte
	Reserved       byte
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

const (
	WM_CREATE   = 0x0001
	WM_DESTROY  = 0x0002
	WM_PAINT    = 0x000F
	WM_CLOSE    = 0x0010
	WM_QUIT     = 0x0012
	WM_NCCREATE = 0x0081
)

const (
	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002
	CS_OWNDC   = 0x0020
)

const (
	WS_OVERLAPPEDWINDOW = 0x00CF0000
	WS_CLIPCHILDREN     = 0x02000000
	WS_CLIPSIBLINGS     = 0x04000000
)

// CW_USEDEFAULT is 0x80000000 reinterpreted as a signed coordinate.
const CW_USEDEFAULT = -0x80000000

const SW_SHOW = 5

const GWLP_USERDATA = -21

const IDC_ARROW = 32512

const (
	PFD_TYPE_RGBA      = 0
	PFD_MAIN_PLANE     = 0
	PFD_DOUBLEBUFFER   = 0x00000001
	PFD_DRAW_TO_WINDOW = 0x00000004
	PFD_SUPPORT_OPENGL = 0x00000020
)
