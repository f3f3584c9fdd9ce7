// SPDX-License-Identifier: Unlicense OR MIT

package unsafeslice

import "testing"

func TestBytesViewSizes(t *testing.T) {
	if got := len(BytesView([]float32{1, 2, 3})); got != 12 {
		t.Errorf("BytesView of 3 float32 has %d bytes, want 12", got)
	}
	if got := len(BytesView([]uint16{1, 2, 3})); got != 6 {
		t.Errorf("BytesView of 3 uint16 has %d bytes, want 6", got)
	}
}

func TestBytesViewAliases(t *testing.T) {
	s := []uint16{1, 2, 3}
	b := BytesView(s)
	b[0] ^= 0xFF
	b[1] ^= 0xFF
	if s[0] == 1 {
		t.Error("BytesView copied the slice instead of aliasing it")
	}
}
