// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// ContFunctor returns the Functor dictionary of Cont[R, _].
func ContFunctor[R any]() Functor[Cont[R, Erased]] {
	return MustFunctor[Cont[R, Erased]]("Cont", Ops{
		"map": func(f func(Erased) Erased, m Cont[R, Erased]) Cont[R, Erased] {
			return Map(m, f)
		},
	})
}

// ContApply returns the Apply dictionary of Cont[R, _].
// The function is produced first, then the argument.
func ContApply[R any]() Apply[Cont[R, Erased]] {
	return MustApply(ContFunctor[R](), Ops{
		"ap": func(mf, ma Cont[R, Erased]) Cont[R, Erased] {
			return Bind(mf, func(f Erased) Cont[R, Erased] {
				return Map(ma, f.(func(Erased) Erased))
			})
		},
	})
}

// ContApplicative returns the Applicative dictionary of Cont[R, _].
func ContApplicative[R any]() Applicative[Cont[R, Erased]] {
	return MustApplicative(ContApply[R](), Ops{
		"of": func(x Erased) Cont[R, Erased] {
			return Return[R](x)
		},
	})
}
