// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/scriptum"
)

func TestYonedaFusion(t *testing.T) {
	d := scriptum.ListFunctor
	v := scriptum.ListOf(1, 2, 3)

	y := scriptum.MapYoneda(scriptum.MapYoneda(scriptum.LiftYoneda[scriptum.List, int](d, v), inc), double)
	got := scriptum.LowerYoneda(y)

	require.Equal(t, d.Map(scriptum.Comp(erasedDouble, erasedInc), v), got)
	require.Equal(t, []int{4, 6, 8}, scriptum.ListValues[int](got))
}

func TestYonedaMapsOnce(t *testing.T) {
	var calls int
	d := countingFunctor(&calls)

	y := scriptum.LiftYoneda[scriptum.List, int](d, scriptum.ListOf(1, 2))
	for range 10 {
		y = scriptum.MapYoneda(y, inc)
	}
	s := scriptum.MapYoneda(y, itoa)
	require.Zero(t, calls)

	got := scriptum.LowerYoneda(s)
	require.Equal(t, 1, calls)
	require.Equal(t, []string{"11", "12"}, scriptum.ListValues[string](got))
}

func TestYonedaRoundTrip(t *testing.T) {
	v := scriptum.ListOf("a", "b", "c")
	require.Equal(t, v, scriptum.LowerYoneda(scriptum.LiftYoneda[scriptum.List, string](scriptum.ListFunctor, v)))

	e := scriptum.Left[int, scriptum.Erased](7)
	back := scriptum.LowerYoneda(scriptum.LiftYoneda[scriptum.Either[int, scriptum.Erased], string](scriptum.EitherFunctor[int](), e))
	l, ok := back.GetLeft()
	require.True(t, ok)
	require.Equal(t, 7, l)
}

func TestYonedaRun(t *testing.T) {
	y := scriptum.LiftYoneda[scriptum.List, int](scriptum.ListFunctor, scriptum.ListOf(1, 2))
	got := y.Run(func(x int) scriptum.Erased { return x * 100 })
	require.Equal(t, []int{100, 200}, scriptum.ListValues[int](got))
}

func TestYonedaApNaturality(t *testing.T) {
	d := scriptum.ListApply
	tf := scriptum.List{erasedInc, erasedDouble}
	tv := scriptum.ListOf(10, 20)

	yf := scriptum.LiftYoneda[scriptum.List, func(scriptum.Erased) scriptum.Erased](d.Functor(), tf)
	yv := scriptum.LiftYoneda[scriptum.List, scriptum.Erased](d.Functor(), tv)
	got := scriptum.LowerYoneda(scriptum.ApYoneda(d, yf, yv))

	require.Equal(t, d.Ap(tf, tv), got)
	require.Equal(t, []int{11, 21, 20, 40}, scriptum.ListValues[int](got))
}

func TestYonedaApThenMap(t *testing.T) {
	d := scriptum.ListApply
	tf := scriptum.LiftYoneda[scriptum.List, func(int) int](d.Functor(), scriptum.ListOf(inc, double))
	tv := scriptum.LiftYoneda[scriptum.List, int](d.Functor(), scriptum.ListOf(1, 2))

	got := scriptum.LowerYoneda(scriptum.MapYoneda(scriptum.ApYoneda(d, tf, tv), itoa))
	require.Equal(t, []string{"2", "3", "2", "4"}, scriptum.ListValues[string](got))
}

func TestYonedaApShortCircuit(t *testing.T) {
	d := scriptum.EitherApply[string]()
	type E = scriptum.Either[string, scriptum.Erased]

	tf := scriptum.LiftYoneda[E, func(int) int](d.Functor(), scriptum.Right[string, scriptum.Erased](inc))
	bad := scriptum.LiftYoneda[E, int](d.Functor(), scriptum.Left[string, scriptum.Erased]("bad"))
	good := scriptum.LiftYoneda[E, int](d.Functor(), scriptum.Right[string, scriptum.Erased](41))

	v, ok := scriptum.LowerYoneda(scriptum.ApYoneda(d, tf, good)).GetRight()
	require.True(t, ok)
	require.Equal(t, 42, v)

	e, ok := scriptum.LowerYoneda(scriptum.ApYoneda(d, tf, bad)).GetLeft()
	require.True(t, ok)
	require.Equal(t, "bad", e)
}

func TestOfYoneda(t *testing.T) {
	y := scriptum.MapYoneda(scriptum.OfYoneda(scriptum.ListApplicative, 20), double)
	require.Equal(t, scriptum.ListOf(40), scriptum.LowerYoneda(y))

	c := scriptum.LowerYoneda(scriptum.OfYoneda(scriptum.ContApplicative[scriptum.Erased](), "done"))
	require.Equal(t, "done", scriptum.Run(c))
}

func TestYonedaDictionaries(t *testing.T) {
	ya := scriptum.YonedaApplicative(scriptum.ListApplicative)
	require.Equal(t, "Applicative<Yoneda>", ya.Dict().String())
	yap := ya.Apply()

	lift := func(xs ...int) scriptum.Yoneda[scriptum.List, scriptum.Erased] {
		return scriptum.LiftYoneda[scriptum.List, scriptum.Erased](scriptum.ListFunctor, scriptum.ListOf(xs...))
	}

	// The ad-hoc operations work over Yoneda unchanged and agree with List.
	fst := scriptum.LowerYoneda(scriptum.ApFst(yap, lift(1, 2), lift(10, 20)))
	require.Equal(t, scriptum.ApFst(scriptum.ListApply, scriptum.ListOf(1, 2), scriptum.ListOf(10, 20)), fst)

	snd := scriptum.LowerYoneda(scriptum.ApSnd(yap, lift(1, 2), lift(10, 20)))
	require.Equal(t, []int{10, 20, 10, 20}, scriptum.ListValues[int](snd))

	sum := scriptum.LowerYoneda(scriptum.Lift2(yap, add, lift(1, 2), lift(10, 20)))
	require.Equal(t, []int{11, 21, 12, 22}, scriptum.ListValues[int](sum))

	one := scriptum.LowerYoneda(ya.Map(erasedInc, ya.Of(1)))
	require.Equal(t, scriptum.ListOf(2), one)
}
