// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scriptum provides type classes by explicit dictionary passing,
// the Yoneda and Coyoneda encodings for fusing maps over any functor, and a
// copy-on-write Mutable wrapper.
//
// # Type Classes
//
// A class is declared from a textual signature naming its superclasses, its
// operations with their shapes, and its parameter:
//
//	Functor<f> => (^a, b. {
//	  ap: (f<(a => b)> => f<a> => f<b>)
//	}) => Apply<f>
//
//   - [DeclareClass], [MustDeclareClass], [LookupClass]: Registry
//   - [Class.New]: Validate an [Ops] candidate and return a [Dict]
//   - [ShapeError]: Missing operation, non-function, wrong arity or missing superclass
//
// The built-in [FunctorClass], [ApplyClass] and [ApplicativeClass] have typed
// views [Functor], [Apply] and [Applicative], constructed with [NewFunctor],
// [NewApply] and [NewApplicative].
//
// # Higher Kinds
//
// Element types that dictionary operations are polymorphic over are erased
// to [Erased]. A type constructor is represented by a Go type F over erased
// elements ([List], Either[E, Erased], Cont[R, Erased], ...), and
// function-valued containers hold func(Erased) Erased. Typed front-ends
// recover element types by assertion at the boundary.
//
// # Ad-hoc Operations
//
//   - [ApFst]: Combine effects, keep the first values
//   - [ApSnd]: Combine effects, keep the second values
//   - [Lift2]: Lift a binary function
//   - [MapEff]: Replace every element with a constant
//
// # Coyoneda
//
// [Coyoneda] defers map without a dictionary. Chained maps are kept as a
// persistent chain and composed once: [LowerCoyoneda] calls the functor's
// map exactly once.
//
//   - [LiftCoyoneda], [NewCoyoneda], [MapCoyoneda], [LowerCoyoneda], [CoyonedaFunctor]
//
// # Yoneda
//
// [Yoneda] takes the dictionary at [LiftYoneda] and fuses maps into its
// continuation.
//
//   - [LiftYoneda], [MapYoneda], [ApYoneda], [OfYoneda], [LowerYoneda]
//   - [YonedaFunctor], [YonedaApply], [YonedaApplicative]
//
// Laws:
//
//	LowerCoyoneda(d, MapCoyoneda(MapCoyoneda(LiftCoyoneda(v), f), g)) == d.Map(g∘f, v)
//	LowerYoneda(MapYoneda(MapYoneda(LiftYoneda(d, v), f), g)) == d.Map(g∘f, v)
//	LowerYoneda(LiftYoneda(d, v)) == v
//	LowerYoneda(ApYoneda(d, LiftYoneda(d, tf), LiftYoneda(d, tv))) == d.Ap(tf, tv)
//
// # Mutable
//
// [Mutable] moves through Fresh, Mutated and Sealed:
//
//	Fresh   --Update-->  Mutated  (clone, once)
//	Mutated --Update-->  Mutated
//	Fresh | Mutated --Consume--> Sealed
//	Sealed  --Update-->  ErrConsumed
//
// [Mutable.Consume] is backed by a memoized [Thunk].
//
// # Continuations and Either
//
// [Cont] with [Return], [Bind], [Map], [Then], [Run] has dictionaries
// [ContFunctor], [ContApply] and [ContApplicative]. [Either] is a tagged
// sum with [MatchEither] and short-circuiting [EitherApply].
//
// # Configuration
//
// [Config] toggles deep validation ([Checking]) and the log level of the
// logger installed with [SetLogger]. It can be loaded from YAML with
// [LoadConfig]; the SCRIPTUM_CHECK environment variable overrides Check.
package scriptum
