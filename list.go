// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// List is an eager sequence with erased elements.
// Operations never modify their arguments.
type List []Erased

// ListOf builds a List from typed elements.
func ListOf[A any](xs ...A) List {
	l := make(List, len(xs))
	for i, x := range xs {
		l[i] = x
	}
	return l
}

// ListValues recovers the typed elements of l.
// It panics if an element is not an A.
func ListValues[A any](l List) []A {
	xs := make([]A, len(l))
	for i, x := range l {
		xs[i] = unerase[A](x)
	}
	return xs
}

// Foldl folds xs from the left.
func Foldl[B any](f func(B, Erased) B, init B, xs List) B {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Append returns the concatenation of xs and ys in a new List.
func Append(xs, ys List) List {
	out := make(List, 0, len(xs)+len(ys))
	return append(append(out, xs...), ys...)
}

// ListMap applies f to each element.
func ListMap(f func(Erased) Erased, xs List) List {
	out := make(List, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// ListAp is the cartesian application: for each function in fs, in order,
// the function is mapped over xs and the results are concatenated.
func ListAp(fs, xs List) List {
	return Foldl(func(acc List, f Erased) List {
		return Append(acc, ListMap(f.(func(Erased) Erased), xs))
	}, make(List, 0, len(fs)*len(xs)), fs)
}

// ListPure returns the singleton List of x.
func ListPure(x Erased) List { return List{x} }

// Dictionaries of List.
var (
	ListFunctor     = MustFunctor[List]("List", Ops{"map": ListMap})
	ListApply       = MustApply(ListFunctor, Ops{"ap": ListAp})
	ListApplicative = MustApplicative(ListApply, Ops{"of": ListPure})
)
