// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Ordering results.
const (
	LT = -1
	EQ = 0
	GT = 1
)

// Id is the identity function and the identity of Comp.
func Id[A any](a A) A { return a }

// Const returns a function that ignores its argument and yields a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Comp composes right to left: Comp(f, g)(x) == f(g(x)).
func Comp[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Flip swaps the arguments of a curried binary function.
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return f(a)(b)
		}
	}
}
