// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Erased represents a type-erased element of a type constructor.
// Dictionary operations are polymorphic in their element types, which Go
// cannot express, so they process Erased values. Concrete types are
// recovered via type assertions at the typed boundary (see unerase).
type Erased = any

// unerase recovers a typed element from an erased one.
// A nil element recovers as the zero value of A, so interface and pointer
// element types round-trip nil.
func unerase[A any](x Erased) A {
	if x == nil {
		var zero A
		return zero
	}
	return x.(A)
}

// erase is the identity continuation into the erased domain.
// Named generic function produces a static function value per type instantiation.
func erase[A any](a A) Erased { return a }

// mapFrame is one pending function in a deferred map chain.
// Frames are persistent: extending a chain links a new frame in front of the
// existing one, so values sharing a prefix never observe each other's
// extensions.
type mapFrame struct {
	// F is the transformation applied at this position.
	F func(Erased) Erased

	// Prev is the frame applied before F, nil at the start of the chain.
	Prev *mapFrame

	depth int
}

// then returns the chain c followed by f. c may be nil.
func (c *mapFrame) then(f func(Erased) Erased) *mapFrame {
	return &mapFrame{F: f, Prev: c, depth: c.len() + 1}
}

func (c *mapFrame) len() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// compose flattens the chain into a single function.
// The frames are applied in order by an iterative loop, so arbitrarily long
// chains do not grow the call stack.
func (c *mapFrame) compose() func(Erased) Erased {
	switch c.len() {
	case 0:
		return Id[Erased]
	case 1:
		return c.F
	}
	fs := make([]func(Erased) Erased, c.depth)
	for fr := c; fr != nil; fr = fr.Prev {
		fs[fr.depth-1] = fr.F
	}
	return func(x Erased) Erased {
		for _, f := range fs {
			x = f(x)
		}
		return x
	}
}
