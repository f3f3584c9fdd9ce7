// SPDX-License-Identifier: Unlicense OR MIT

// Command triangle opens a native window with a modern OpenGL context
// and draws a colored triangle until the window is closed.
package main

import (
	"log"
	"os"

	"github.com/tinselfly/glwindow/app"
)

func main() {
	status, err := app.Main()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(status)
}
