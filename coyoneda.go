// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Coyoneda pairs a value of the type constructor represented by F with a
// pending function from its (hidden) element type to A.
//
// No dictionary is needed until LowerCoyoneda. MapCoyoneda only extends the
// pending chain; the underlying map runs exactly once, on lowering, with the
// composition of every mapped function.
type Coyoneda[F, A any] struct {
	inner F
	chain *mapFrame
}

// LiftCoyoneda wraps fa with the identity function. Elements of fa must be A.
func LiftCoyoneda[F, A any](fa F) Coyoneda[F, A] {
	return Coyoneda[F, A]{inner: fa}
}

// NewCoyoneda pairs fb, whose elements are B, with f.
func NewCoyoneda[F, B, A any](f func(B) A, fb F) Coyoneda[F, A] {
	return Coyoneda[F, A]{
		inner: fb,
		chain: (*mapFrame)(nil).then(func(x Erased) Erased { return f(unerase[B](x)) }),
	}
}

// MapCoyoneda composes f after the pending function. c is not modified and
// the wrapped value is not touched.
func MapCoyoneda[F, A, B any](c Coyoneda[F, A], f func(A) B) Coyoneda[F, B] {
	return Coyoneda[F, B]{
		inner: c.inner,
		chain: c.chain.then(func(x Erased) Erased { return f(unerase[A](x)) }),
	}
}

// LowerCoyoneda runs the functor's map once with the composed function.
func LowerCoyoneda[F, A any](d Functor[F], c Coyoneda[F, A]) F {
	return d.Map(c.chain.compose(), c.inner)
}

// Unwrap returns the wrapped value and the composed pending function.
func (c Coyoneda[F, A]) Unwrap() (F, func(Erased) A) {
	f := c.chain.compose()
	return c.inner, func(x Erased) A { return unerase[A](f(x)) }
}

// Depth returns the number of pending functions.
func (c Coyoneda[F, A]) Depth() int { return c.chain.len() }

// CoyonedaFunctor returns the Functor dictionary of Coyoneda[F, _].
// It needs no dictionary for F.
func CoyonedaFunctor[F any]() Functor[Coyoneda[F, Erased]] {
	return MustFunctor[Coyoneda[F, Erased]]("Coyoneda", Ops{
		"map": func(f func(Erased) Erased, c Coyoneda[F, Erased]) Coyoneda[F, Erased] {
			return MapCoyoneda(c, f)
		},
	})
}
