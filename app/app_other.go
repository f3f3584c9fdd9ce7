// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package app

import "errors"

// Main renders through WGL, which only exists on Windows. The stub keeps
// the module buildable elsewhere so the logic tests run anywhere.
func Main() (int, error) {
	return 0, errors.New("app: only supported on windows")
}
