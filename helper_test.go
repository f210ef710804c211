// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"code.hybscloud.com/lazy"
)

// collect materializes a finite stream into a slice.
// Used by tests after bounding with Take where the source is infinite.
func collect[T any](s lazy.Stream[T]) []T {
	var out []T
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// counting returns an infinite generator-backed stream 1, 2, 3, ...
// and a pointer to the number of generator invocations, for pinning
// at-most-once and exact-demand properties.
func counting() (lazy.Stream[int], *int) {
	calls := new(int)
	s := lazy.FromFunc(func() (int, bool) {
		*calls++
		return *calls, true
	})
	return s, calls
}
