// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"sync"
	"sync/atomic"
)

// Thunk is a memoized zero-argument suspension.
// The suspended function runs at most once, on the first Force; every Force
// returns that first result.
type Thunk[A any] struct {
	once   sync.Once
	forced atomic.Bool
	f      func() A
	v      A
	sig    string
}

// Defer suspends f. sig describes the value, e.g. "() => [Number]", and is
// kept for introspection only.
func Defer[A any](f func() A, sig string) *Thunk[A] {
	return &Thunk[A]{f: f, sig: sig}
}

// Force evaluates the suspension on first use and returns its value.
func (t *Thunk[A]) Force() A {
	t.once.Do(func() {
		t.v = t.f()
		t.f = nil
		t.forced.Store(true)
	})
	return t.v
}

// Forced reports whether the suspension has been evaluated.
func (t *Thunk[A]) Forced() bool { return t.forced.Load() }

// Signature returns the signature given to Defer.
func (t *Thunk[A]) Signature() string { return t.sig }
