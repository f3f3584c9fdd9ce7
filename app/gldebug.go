// SPDX-License-Identifier: Unlicense OR MIT

//go:build gldebug

package app

// glDebug requests a debug context from the driver.
const glDebug = true
