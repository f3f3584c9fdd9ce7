// SPDX-License-Identifier: Unlicense OR MIT

package w32

import (
	"strings"
	"syscall"
)

// sysMessage renders a last-error code through the system message table.
// Errno.Error performs the FormatMessage call; line breaks in the message
// are flattened so the result stays a single log line.
func sysMessage(code uint32) string {
	msg := syscall.Errno(code).Error()
	msg = strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, msg)
	return strings.TrimSpace(msg)
}
