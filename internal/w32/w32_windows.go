// SPDX-License-Identifier: Unlicense OR MIT

package w32

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/samber/lo"
	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	_AdjustWindowRectEx   = user32.NewProc("AdjustWindowRectEx")
	_CreateWindowExW      = user32.NewProc("CreateWindowExW")
	_DefWindowProcW       = user32.NewProc("DefWindowProcW")
	_DestroyWindow        = user32.NewProc("DestroyWindow")
	_DispatchMessageW     = user32.NewProc("DispatchMessageW")
	_GetDC                = user32.NewProc("GetDC")
	_GetMessageW          = user32.NewProc("GetMessageW")
	_GetWindowLongPtrW    = user32.NewProc("GetWindowLongPtrW")
	_InvalidateRect       = user32.NewProc("InvalidateRect")
	_LoadCursorW          = user32.NewProc("LoadCursorW")
	_PostQuitMessage      = user32.NewProc("PostQuitMessage")
	_RegisterClassExW     = user32.NewProc("RegisterClassExW")
	_ReleaseDC            = user32.NewProc("ReleaseDC")
	_SetWindowLongPtrW    = user32.NewProc("SetWindowLongPtrW")
	_ShowWindow           = user32.NewProc("ShowWindow")
	_TranslateMessage     = user32.NewProc("TranslateMessage")
	_UnregisterClassW     = user32.NewProc("UnregisterClassW")
	gdi32                 = windows.NewLazySystemDLL("gdi32.dll")
	_ChoosePixelFormat    = gdi32.NewProc("ChoosePixelFormat")
	_DescribePixelFormat  = gdi32.NewProc("DescribePixelFormat")
	_SetPixelFormat       = gdi32.NewProc("SetPixelFormat")
	_SwapBuffers          = gdi32.NewProc("SwapBuffers")
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW     = kernel32.NewProc("GetModuleHandleW")
	_SetLastError         = kernel32.NewProc("SetLastError")
)

// lastErr converts the errno a Proc.Call reports into a typed Error.
func lastErr(e error) error {
	if errno, ok := e.(syscall.Errno); ok {
		return Error(errno)
	}
	return e
}

// UTF16Ptr converts a compile-time string for a syscall. It panics on
// interior NULs, which cannot occur for the fixed names used here.
func UTF16Ptr(s string) *uint16 {
	return lo.Must(windows.UTF16PtrFromString(s))
}

func GetModuleHandle() (HINSTANCE, error) {
	h, _, err := _GetModuleHandleW.Call(0)
	if h == 0 {
		return 0, fmt.Errorf("GetModuleHandleW: %w", lastErr(err))
	}
	return HINSTANCE(h), nil
}

func RegisterClassEx(cls *WndClassEx) error {
	cls.CbSize = uint32(unsafe.Sizeof(*cls))
	atom, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(cls)))
	if atom == 0 {
		return fmt.Errorf("RegisterClassExW: %w", lastErr(err))
	}
	return nil
}

func UnregisterClass(name *uint16, inst HINSTANCE) error {
	r, _, err := _UnregisterClassW.Call(uintptr(unsafe.Pointer(name)), uintptr(inst))
	if r == 0 {
		return fmt.Errorf("UnregisterClassW: %w", lastErr(err))
	}
	return nil
}

func LoadCursor(id uint16) (HCURSOR, error) {
	h, _, err := _LoadCursorW.Call(0, uintptr(id))
	if h == 0 {
		return 0, fmt.Errorf("LoadCursorW: %w", lastErr(err))
	}
	return HCURSOR(h), nil
}

func AdjustWindowRectEx(r *Rect, style uint32, menu bool, exStyle uint32) error {
	var m uintptr
	if menu {
		m = 1
	}
	ret, _, err := _AdjustWindowRectEx.Call(uintptr(unsafe.Pointer(r)), uintptr(style), m, uintptr(exStyle))
	if ret == 0 {
		return fmt.Errorf("AdjustWindowRectEx: %w", lastErr(err))
	}
	return nil
}

func CreateWindowEx(exStyle uint32, class, title *uint16, style uint32, x, y, w, h int32, parent HWND, menu HMENU, inst HINSTANCE, param uintptr) (HWND, error) {
	hwnd, _, err := _CreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
		uintptr(x), uintptr(y),
		uintptr(w), uintptr(h),
		uintptr(parent),
		uintptr(menu),
		uintptr(inst),
		param)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW: %w", lastErr(err))
	}
	return HWND(hwnd), nil
}

func DestroyWindow(hwnd HWND) error {
	r, _, err := _DestroyWindow.Call(uintptr(hwnd))
	if r == 0 {
		return fmt.Errorf("DestroyWindow: %w", lastErr(err))
	}
	return nil
}

func GetDC(hwnd HWND) (HDC, error) {
	hdc, _, _ := _GetDC.Call(uintptr(hwnd))
	if hdc == 0 {
		return 0, fmt.Errorf("GetDC failed for window %#x", uintptr(hwnd))
	}
	return HDC(hdc), nil
}

func ReleaseDC(hwnd HWND, hdc HDC) error {
	r, _, _ := _ReleaseDC.Call(uintptr(hwnd), uintptr(hdc))
	if r == 0 {
		return fmt.Errorf("ReleaseDC failed for window %#x", uintptr(hwnd))
	}
	return nil
}

func ShowWindow(hwnd HWND, cmd int32) {
	_ShowWindow.Call(uintptr(hwnd), uintptr(cmd))
}

func InvalidateRect(hwnd HWND, r *Rect, erase bool) error {
	var e uintptr
	if erase {
		e = 1
	}
	ret, _, _ := _InvalidateRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(r)), e)
	if ret == 0 {
		return fmt.Errorf("InvalidateRect failed for window %#x", uintptr(hwnd))
	}
	return nil
}

func DefWindowProc(hwnd HWND, msg uint32, wparam, lparam uintptr) uintptr {
	r, _, _ := _DefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r
}

// DefWindowProcAddr is the raw default handler address, usable directly
// as a window class procedure.
func DefWindowProcAddr() uintptr {
	return _DefWindowProcW.Addr()
}

// GetMessage blocks until a message arrives. It returns -1 on failure, 0
// for the quit message and a positive value otherwise.
func GetMessage(m *Msg, hwnd HWND, filterMin, filterMax uint32) (int32, error) {
	r, _, err := _GetMessageW.Call(
		uintptr(unsafe.Pointer(m)),
		uintptr(hwnd),
		uintptr(filterMin),
		uintptr(filterMax))
	ret := int32(r)
	if ret == -1 {
		return ret, fmt.Errorf("GetMessageW: %w", lastErr(err))
	}
	return ret, nil
}

func TranslateMessage(m *Msg) {
	_TranslateMessage.Call(uintptr(unsafe.Pointer(m)))
}

func DispatchMessage(m *Msg) {
	_DispatchMessageW.Call(uintptr(unsafe.Pointer(m)))
}

func PostQuitMessage(exitCode int32) {
	_PostQuitMessage.Call(uintptr(exitCode))
}

func SetLastError(code uint32) {
	_SetLastError.Call(uintptr(code))
}

// SetWindowLongPtr stores a per-window value and returns the previous one.
// A zero return is only a failure if the OS also set an error code, so the
// code is cleared first.
func SetWindowLongPtr(hwnd HWND, index int32, value uintptr) (uintptr, error) {
	SetLastError(0)
	prev, _, err := _SetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index), value)
	if prev == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("SetWindowLongPtrW: %w", Error(errno))
		}
	}
	return prev, nil
}

// GetWindowLongPtr follows the same zero-versus-error protocol as
// SetWindowLongPtr.
func GetWindowLongPtr(hwnd HWND, index int32) (uintptr, error) {
	SetLastError(0)
	v, _, err := _GetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index))
	if v == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("GetWindowLongPtrW: %w", Error(errno))
		}
	}
	return v, nil
}

func ChoosePixelFormat(hdc HDC, pfd *PixelFormatDescriptor) (int32, error) {
	pfd.Size = uint16(unsafe.Sizeof(*pfd))
	pfd.Version = 1
	idx, _, err := _ChoosePixelFormat.Call(uintptr(hdc), uintptr(unsafe.Pointer(pfd)))
	if idx == 0 {
		return 0, fmt.Errorf("ChoosePixelFormat: %w", lastErr(err))
	}
	return int32(idx), nil
}

// DescribePixelFormat fills pfd for a format index. Pass a nil pfd to query
// the number of formats the device supports.
func DescribePixelFormat(hdc HDC, index int32, pfd *PixelFormatDescriptor) (int32, error) {
	var size uintptr
	if pfd != nil {
		size = unsafe.Sizeof(*pfd)
	}
	n, _, err := _DescribePixelFormat.Call(uintptr(hdc), uintptr(index), size, uintptr(unsafe.Pointer(pfd)))
	if n == 0 {
		return 0, fmt.Errorf("DescribePixelFormat: %w", lastErr(err))
	}
	return int32(n), nil
}

func SetPixelFormat(hdc HDC, index int32, pfd *PixelFormatDescriptor) error {
	r, _, err := _SetPixelFormat.Call(uintptr(hdc), uintptr(index), uintptr(unsafe.Pointer(pfd)))
	if r == 0 {
		return fmt.Errorf("SetPixelFormat: %w", lastErr(err))
	}
	return nil
}

func SwapBuffers(hdc HDC) error {
	r, _, err := _SwapBuffers.Call(uintptr(hdc))
	if r == 0 {
		return fmt.Errorf("SwapBuffers: %w", lastErr(err))
	}
	return nil
}
