// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Resolver looks up a named entry point and reports its raw address, or 0
// when the name is unknown to it.
type Resolver interface {
	Resolve(name string) uintptr
}

// InvalidProcAddress reports whether addr is one of the sentinel values
// some OpenGL implementations return instead of failing a lookup.
func InvalidProcAddress(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return true
	}
	return false
}

// Loader resolves entry points through an ordered resolver chain. Core 1.1
// functions are typically absent from the extension mechanism and only the
// library export table knows them, so a miss falls through to the next
// resolver. Not safe for concurrent use.
type Loader struct {
	resolvers []Resolver
}

func NewLoader(resolvers ...Resolver) *Loader {
	return &Loader{resolvers: resolvers}
}

// Load returns the address of the named entry point, or 0 if every
// resolver misses. Sentinel addresses count as misses.
func (l *Loader) Load(name string) uintptr {
	for _, r := range l.resolvers {
		if addr := r.Resolve(name); !InvalidProcAddress(addr) {
			return addr
		}
	}
	return 0
}
