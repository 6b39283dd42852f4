// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Yoneda represents a value of the type constructor F with elements of type
// A as the continuation that maps it: given k, it produces F with the
// elements passed through k.
//
// Unlike Coyoneda, a Functor dictionary is needed up front, by LiftYoneda.
// MapYoneda composes into the continuation, so a chain of maps never
// materializes an intermediate container.
type Yoneda[F, A any] struct {
	run func(func(A) Erased) F
}

// Run applies the continuation k.
func (y Yoneda[F, A]) Run(k func(A) Erased) F { return y.run(k) }

// LiftYoneda wraps fa. Elements of fa must be A.
func LiftYoneda[F, A any](d Functor[F], fa F) Yoneda[F, A] {
	return Yoneda[F, A]{run: func(k func(A) Erased) F {
		return d.Map(func(x Erased) Erased { return k(unerase[A](x)) }, fa)
	}}
}

// LowerYoneda runs y with the identity continuation.
func LowerYoneda[F, A any](y Yoneda[F, A]) F {
	return y.run(erase[A])
}

// MapYoneda composes f before whatever continuation y is eventually run with.
func MapYoneda[F, A, B any](y Yoneda[F, A], f func(A) B) Yoneda[F, B] {
	return Yoneda[F, B]{run: func(k func(B) Erased) F {
		return y.run(func(a A) Erased { return k(f(a)) })
	}}
}

// ApYoneda applies the functions of tf to the values of ta.
// Run with k, the functions of tf are composed with k and combined by the
// Apply dictionary with ta run through the identity continuation, so that
//
//	LowerYoneda(ApYoneda(d, LiftYoneda(d, tf), LiftYoneda(d, ta)))
//
// equals d.Ap(tf, ta).
func ApYoneda[F, A, B any](d Apply[F], tf Yoneda[F, func(A) B], ta Yoneda[F, A]) Yoneda[F, B] {
	return Yoneda[F, B]{run: func(k func(B) Erased) F {
		fs := tf.run(func(h func(A) B) Erased {
			return func(x Erased) Erased { return k(h(unerase[A](x))) }
		})
		return d.Ap(fs, LowerYoneda(ta))
	}}
}

// OfYoneda lifts x with the Applicative dictionary.
func OfYoneda[F, A any](d Applicative[F], x A) Yoneda[F, A] {
	return Yoneda[F, A]{run: func(k func(A) Erased) F {
		return d.Of(k(x))
	}}
}

// YonedaFunctor returns the Functor dictionary of Yoneda[F, _].
func YonedaFunctor[F any]() Functor[Yoneda[F, Erased]] {
	return MustFunctor[Yoneda[F, Erased]]("Yoneda", Ops{
		"map": func(f func(Erased) Erased, y Yoneda[F, Erased]) Yoneda[F, Erased] {
			return MapYoneda(y, f)
		},
	})
}

// YonedaApply returns the Apply dictionary of Yoneda[F, _] given the one of F.
func YonedaApply[F any](d Apply[F]) Apply[Yoneda[F, Erased]] {
	return MustApply(YonedaFunctor[F](), Ops{
		"ap": func(tf, ta Yoneda[F, Erased]) Yoneda[F, Erased] {
			return ApYoneda(d, MapYoneda(tf, asFunc), ta)
		},
	})
}

// YonedaApplicative returns the Applicative dictionary of Yoneda[F, _] given
// the one of F.
func YonedaApplicative[F any](d Applicative[F]) Applicative[Yoneda[F, Erased]] {
	return MustApplicative(YonedaApply(d.Apply()), Ops{
		"of": func(x Erased) Yoneda[F, Erased] {
			return OfYoneda(d, x)
		},
	})
}

func asFunc(x Erased) func(Erased) Erased { return x.(func(Erased) Erased) }
