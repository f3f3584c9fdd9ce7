// SPDX-License-Identifier: Unlicense OR MIT

//go:build !gldebug

package app

const glDebug = false
