// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"sync"
	"sync/atomic"
)

// stateArena hands out integer ids for window state, so raw pointers
// never transit the window's user data slot. Ids start at 1; 0 is the
// "no state" value the OS reports for an untouched slot.
type stateArena struct {
	next uintptr
	m    sync.Map // uintptr -> *windowState
}

func (a *stateArena) put(st *windowState) uintptr {
	id := atomic.AddUintptr(&a.next, 1)
	a.m.Store(id, st)
	return id
}

func (a *stateArena) get(id uintptr) (*windowState, bool) {
	v, ok := a.m.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*windowState), true
}

// take removes and returns the state. The second take of an id fails,
// which is what makes double teardown structurally impossible.
func (a *stateArena) take(id uintptr) (*windowState, bool) {
	v, ok := a.m.LoadAndDelete(id)
	if !ok {
		return nil, false
	}
	return v.(*windowState), true
}
