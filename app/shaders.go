// SPDX-License-Identifier: Unlicense OR MIT

package app

import _ "embed"

var (
	//go:embed shaders/triangle.vert
	vertexShaderSrc string
	//go:embed shaders/triangle.frag
	fragmentShaderSrc string
)
