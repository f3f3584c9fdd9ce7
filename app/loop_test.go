// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"testing"

	"github.com/tinselfly/glwindow/internal/w32"
)

// scriptedPump replays canned messages and records what got routed.
type scriptedPump struct {
	script []struct {
		ret int32
		msg w32.Msg
	}
	err        error
	translated []uint32
	dispatched []uint32
}

func (p *scriptedPump) push(ret int32, msg w32.Msg) {
	p.script = append(p.script, struct {
		ret int32
		msg w32.Msg
	}{ret, msg})
}

func (p *scriptedPump) next(m *w32.Msg) (int32, error) {
	if len(p.script) == 0 {
		panic("pump drained; the loop should have stopped")
	}
	entry := p.script[0]
	p.script = p.script[1:]
	*m = entry.msg
	if entry.ret == -1 {
		return -1, p.err
	}
	return entry.ret, nil
}

func (p *scriptedPump) translate(m *w32.Msg) {
	p.translated = append(p.translated, m.Message)
}

func (p *scriptedPump) dispatch(m *w32.Msg) {
	p.dispatched = append(p.dispatched, m.Message)
}

func TestRunLoopQuitCarriesExitStatus(t *testing.T) {
	p := &scriptedPump{}
	p.push(1, w32.Msg{Message: w32.WM_PAINT})
	p.push(1, w32.Msg{Message: w32.WM_CLOSE})
	p.push(0, w32.Msg{Message: w32.WM_QUIT, WParam: 7})

	status, err := runLoop(p)
	if err != nil {
		t.Fatalf("runLoop: %v", err)
	}
	if status != 7 {
		t.Errorf("exit status = %d, want 7", status)
	}
	if len(p.translated) != 2 || len(p.dispatched) != 2 {
		t.Errorf("routed %d/%d messages before quit, want 2/2", len(p.translated), len(p.dispatched))
	}
}

func TestRunLoopQuitZero(t *testing.T) {
	p := &scriptedPump{}
	p.push(0, w32.Msg{Message: w32.WM_QUIT, WParam: 0})
	status, err := runLoop(p)
	if err != nil {
		t.Fatalf("runLoop: %v", err)
	}
	if status != 0 {
		t.Errorf("exit status = %d, want 0", status)
	}
}

func TestRunLoopSurfacesRetrievalFailure(t *testing.T) {
	wantErr := errors.New("retrieval broke")
	p := &scriptedPump{err: wantErr}
	p.push(-1, w32.Msg{})
	if _, err := runLoop(p); !errors.Is(err, wantErr) {
		t.Errorf("runLoop error = %v, want wrapped %v", err, wantErr)
	}
}

func TestRunLoopOnlyQuitTerminates(t *testing.T) {
	p := &scriptedPump{}
	// A quit-numbered message delivered normally must not end the loop.
	p.push(1, w32.Msg{Message: w32.WM_QUIT, WParam: 9})
	p.push(1, w32.Msg{Message: w32.WM_DESTROY})
	p.push(0, w32.Msg{Message: w32.WM_QUIT, WParam: 3})

	status, err := runLoop(p)
	if err != nil {
		t.Fatalf("runLoop: %v", err)
	}
	if status != 3 {
		t.Errorf("exit status = %d, want 3", status)
	}
	if len(p.dispatched) != 2 {
		t.Errorf("dispatched %d messages, want 2", len(p.dispatched))
	}
}
