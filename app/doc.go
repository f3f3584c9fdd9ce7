// SPDX-License-Identifier: Unlicense OR MIT

// Package app owns the window: it bootstraps a modern OpenGL context on a
// native window, runs the message loop, and draws the triangle from the
// window procedure.
package app
