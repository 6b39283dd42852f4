// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Ad-hoc polymorphic operations. Each takes its dictionary as the first
// argument and knows nothing about F beyond it.

// MapEff replaces every element of fa with x, keeping the structure.
func MapEff[F any](d Functor[F], x Erased, fa F) F {
	return d.Map(Const[Erased](x), fa)
}

// ApFst combines the effects of tx and ty, keeping the values of tx.
func ApFst[F any](d Apply[F], tx, ty F) F {
	return d.Ap(d.Map(constFn, tx), ty)
}

// ApSnd combines the effects of tx and ty, keeping the values of ty.
func ApSnd[F any](d Apply[F], tx, ty F) F {
	return d.Ap(MapEff(d.Functor(), idFn, tx), ty)
}

// Lift2 lifts a binary function over F: ap(map(f)(tx))(ty).
// Elements of tx and ty are recovered as A and B.
func Lift2[F, A, B, C any](d Apply[F], f func(A, B) C, tx, ty F) F {
	return d.Ap(d.Map(func(x Erased) Erased {
		a := unerase[A](x)
		return func(y Erased) Erased {
			return f(a, unerase[B](y))
		}
	}, tx), ty)
}

// idFn is Id as an element of a function-valued container.
var idFn Erased = func(x Erased) Erased { return x }

// constFn turns an element into a function-valued element that ignores its
// argument.
func constFn(x Erased) Erased { return Const[Erased](x) }
