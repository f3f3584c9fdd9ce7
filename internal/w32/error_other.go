// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package w32

import "strconv"

// Off Windows there is no system message table; tests only need a stable
// rendering.
func sysMessage(code uint32) string {
	return "system error " + strconv.FormatUint(uint64(code), 10)
}
