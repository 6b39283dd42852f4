// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Either is a closed sum of two variants. Left conventionally carries the
// reason a computation stopped, Right its result; the instances of this
// package treat Right as the element and let Left pass through unchanged.
type Either[E, A any] struct {
	right bool
	l     E
	r     A
}

// Left wraps e as the first variant.
func Left[E, A any](e E) Either[E, A] { return Either[E, A]{l: e} }

// Right wraps a as the second variant.
func Right[E, A any](a A) Either[E, A] { return Either[E, A]{right: true, r: a} }

func (e Either[E, A]) IsRight() bool { return e.right }

func (e Either[E, A]) IsLeft() bool { return !e.right }

// GetRight yields the payload of a Right. For a Left, ok is false and v is
// the zero A.
func (e Either[E, A]) GetRight() (v A, ok bool) {
	if e.right {
		v, ok = e.r, true
	}
	return
}

// GetLeft is the mirror of GetRight.
func (e Either[E, A]) GetLeft() (v E, ok bool) {
	if !e.right {
		v, ok = e.l, true
	}
	return
}

// MatchEither eliminates e. Both handlers are required, and only the one
// matching the variant runs.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if !e.right {
		return onLeft(e.l)
	}
	return onRight(e.r)
}

// MapEither transforms the payload of a Right.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.right {
		return Left[E, B](e.l)
	}
	return Right[E](f(e.r))
}

// FlatMapEither feeds the payload of a Right to f. A Left stops the chain.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.right {
		return Left[E, B](e.l)
	}
	return f(e.r)
}

// MapLeftEither transforms the payload of a Left, changing its type.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.right {
		return Right[F](e.r)
	}
	return Left[F, A](f(e.l))
}

// EitherFunctor returns the Functor dictionary of Either[E, _].
func EitherFunctor[E any]() Functor[Either[E, Erased]] {
	return MustFunctor[Either[E, Erased]]("Either", Ops{
		"map": func(f func(Erased) Erased, e Either[E, Erased]) Either[E, Erased] {
			return MapEither(e, f)
		},
	})
}

// EitherApply returns the Apply dictionary of Either[E, _].
// The first Left encountered, function side first, is the result.
func EitherApply[E any]() Apply[Either[E, Erased]] {
	return MustApply(EitherFunctor[E](), Ops{
		"ap": func(ef, ea Either[E, Erased]) Either[E, Erased] {
			return FlatMapEither(ef, func(f Erased) Either[E, Erased] {
				return MapEither(ea, f.(func(Erased) Erased))
			})
		},
	})
}

// EitherApplicative returns the Applicative dictionary of Either[E, _].
func EitherApplicative[E any]() Applicative[Either[E, Erased]] {
	return MustApplicative(EitherApply[E](), Ops{
		"of": func(x Erased) Either[E, Erased] {
			return Right[E](x)
		},
	})
}
