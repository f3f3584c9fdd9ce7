// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

type debugLogger struct{}

var (
	kernel32           = syscall.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

func init() {
	// Without a console, route logs to the debugger. DebugView already
	// stamps times.
	if syscall.Stderr == 0 {
		log.SetFlags(log.Flags() &^ log.LstdFlags)
		log.SetOutput(&debugLogger{})
	}
}

func (l *debugLogger) Write(buf []byte) (int, error) {
	p, err := syscall.UTF16PtrFromString(string(buf))
	if err != nil {
		return 0, err
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return len(buf), nil
}
