// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ExtensionSet is the set of WGL extensions a device context advertises.
type ExtensionSet map[string]struct{}

// ParseExtensions splits the single space-delimited advertisement string.
// Empty tokens are dropped and duplicates collapse.
func ParseExtensions(s string) ExtensionSet {
	names := lo.Uniq(lo.Filter(strings.Split(s, " "), func(name string, _ int) bool {
		return name != ""
	}))
	set := make(ExtensionSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s ExtensionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the extensions in sorted order, for logging.
func (s ExtensionSet) Names() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}

// SwapInterval picks the buffer swap interval: adaptive vsync when the
// device supports late tearing swaps, plain vsync otherwise.
func SwapInterval(exts ExtensionSet) int {
	if exts.Has(ExtSwapControlTear) {
		return -1
	}
	return 1
}
