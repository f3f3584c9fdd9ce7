// SPDX-License-Identifier: Unlicense OR MIT

package w32

import "fmt"

// applicationErrorBit is the Win32 application-reserved error bit. Codes
// with it set originate in this program, not in the OS, and must never be
// handed to FormatMessage.
const applicationErrorBit uint32 = 1 << 29

// Error is a Win32 last-error code. The zero value means the OS reported
// failure without setting a code.
type Error uint32

// AppError builds an application-defined error code.
func AppError(code uint32) Error {
	return Error(code | applicationErrorBit)
}

// IsApplication reports whether the code was produced by this program
// rather than the OS.
func (e Error) IsApplication() bool {
	return uint32(e)&applicationErrorBit != 0
}

func (e Error) Error() string {
	if e.IsApplication() {
		return fmt.Sprintf("win32 application error %#x", uint32(e)&^applicationErrorBit)
	}
	return fmt.Sprintf("win32 error %#x: %s", uint32(e), sysMessage(uint32(e)))
}
