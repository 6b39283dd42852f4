// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"reflect"
	"strconv"

	"github.com/gostdlib/base/values/immutable"
	"go.uber.org/zap"
)

// MutableState is the state of a Mutable.
type MutableState uint8

const (
	// Fresh: no update yet; the wrapper still holds the original reference.
	Fresh MutableState = iota
	// Mutated: the reference has been cloned and updated in place.
	Mutated
	// Sealed: the value has been consumed; updates are rejected.
	Sealed
)

func (s MutableState) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Mutated:
		return "Mutated"
	case Sealed:
		return "Sealed"
	}
	return "MutableState(" + strconv.Itoa(int(s)) + ")"
}

// Mutable allows in-place updates of a value without sharing the effect.
//
// The first Update replaces the wrapped reference with a clone and every
// Update, the first included, mutates that clone, so the original is never
// touched and later updates observe earlier ones. The first Consume seals the
// wrapper: the reference it returns is final and further updates fail.
//
// T should be a reference type (pointer, map, slice) since updates are
// applied to it in place. A Mutable has a single owner and is not safe for
// concurrent use.
type Mutable[T any] struct {
	clone func(T) T
	ref   T
	state MutableState
	final *Thunk[T]
	sig   string

	// updating is set while an update function runs.
	updating bool
}

// NewMutable wraps ref. clone is called at most once, by the first Update.
func NewMutable[T any](clone func(T) T, ref T) *Mutable[T] {
	anno := reflect.TypeFor[T]().String()
	m := &Mutable[T]{
		clone: clone,
		ref:   ref,
		sig:   "Mutable {consume: " + anno + ", update: ((" + anno + " => " + anno + ") => this*)}",
	}
	m.final = Defer(m.seal, "() => "+anno)
	return m
}

func (m *Mutable[T]) seal() T {
	m.state = Sealed
	m.clone = nil
	return m.ref
}

// TryUpdate applies k to the wrapped reference, cloning it first if this is
// the first update. It returns ErrConsumed, leaving m unchanged, once m has
// been consumed.
func (m *Mutable[T]) TryUpdate(k func(T)) error {
	switch m.state {
	case Sealed:
		logger().Debug("rejected update of consumed value", zap.String("mutable", m.sig))
		return ErrConsumed
	case Fresh:
		m.ref = m.clone(m.ref)
		m.state = Mutated
	}
	outer := m.updating
	m.updating = true
	defer func() { m.updating = outer }()
	k(m.ref)
	return nil
}

// Update is like TryUpdate but panics with ErrConsumed. It returns m for
// chaining.
func (m *Mutable[T]) Update(k func(T)) *Mutable[T] {
	if err := m.TryUpdate(k); err != nil {
		panic(err)
	}
	return m
}

// Consume seals m and returns the wrapped reference: the original one if m
// was never updated, the updated clone otherwise. Every call returns the
// same reference.
//
// Consume panics with ErrUpdating when called from within an update
// function of m, leaving m unsealed.
func (m *Mutable[T]) Consume() T {
	if m.updating {
		panic(ErrUpdating)
	}
	return m.final.Force()
}

// State returns the current state.
func (m *Mutable[T]) State() MutableState { return m.state }

// Signature describes the wrapper's interface in the textual signature
// notation.
func (m *Mutable[T]) Signature() string { return m.sig }

// CloneSlice copies s for use as a Mutable clone function. Elements that
// implement immutable.Copier are deep-copied.
func CloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	return S(immutable.CopySlice([]E(s)))
}

// CloneMap copies m for use as a Mutable clone function. Values that
// implement immutable.Copier are deep-copied.
func CloneMap[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	return M(immutable.CopyMap(map[K]V(m)))
}
