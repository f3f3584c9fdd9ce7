// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"

	"github.com/tinselfly/glwindow/internal/w32"
)

// messagePump retrieves and routes queued messages. The Windows
// implementation is systemPump; tests substitute scripted pumps.
type messagePump interface {
	// next blocks for a message. It returns -1 on retrieval failure and
	// 0 when the quit message arrived.
	next(m *w32.Msg) (int32, error)
	translate(m *w32.Msg)
	dispatch(m *w32.Msg)
}

// runLoop pumps messages until the quit message arrives, and reports its
// payload as the process exit status. Nothing else ends the loop.
func runLoop(p messagePump) (int, error) {
	var msg w32.Msg
	for {
		ret, err := p.next(&msg)
		switch {
		case ret == -1:
			return 0, fmt.Errorf("app: message retrieval: %w", err)
		case ret == 0:
			return int(int32(msg.WParam)), nil
		}
		p.translate(&msg)
		p.dispatch(&msg)
	}
}
