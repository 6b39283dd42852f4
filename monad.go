// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Bind runs m and feeds its result to f.
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map transforms the result of m with a pure function.
// It is the Functor operation behind ContFunctor and fuses with k
// instead of building an intermediate Return.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then runs m, discards its result and continues with n.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(A) R {
			return n(k)
		})
	}
}

// Join flattens a nested continuation.
func Join[R, A any](mm Cont[R, Cont[R, A]]) Cont[R, A] {
	return Bind(mm, Id[Cont[R, A]])
}
