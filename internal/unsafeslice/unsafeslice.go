// SPDX-License-Identifier: Unlicense OR MIT

// Package unsafeslice reinterprets typed slices as raw bytes for buffer
// uploads.
package unsafeslice

import (
	"reflect"
	"unsafe"
)

// BytesView returns a byte slice view of a slice.
func BytesView(s interface{}) []byte {
	v := reflect.ValueOf(s)
	first := v.Index(0)
	sz := int(first.Type().Size())
	var res []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&res))
	h.Data = first.UnsafeAddr()
	h.Cap = v.Cap() * sz
	h.Len = v.Len() * sz
	return res
}
