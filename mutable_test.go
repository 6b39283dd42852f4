// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/scriptum"
)

type record struct {
	X, Y int
	Tags []string
}

func deepCopy(r *record) *record {
	c := *r
	c.Tags = scriptum.CloneSlice(r.Tags)
	return &c
}

func TestMutableConsumeBeforeUpdate(t *testing.T) {
	orig := &record{X: 5}
	m := scriptum.NewMutable(deepCopy, orig)
	require.Equal(t, scriptum.Fresh, m.State())

	got := m.Consume()
	require.Same(t, orig, got)
	require.Equal(t, scriptum.Sealed, m.State())
}

func TestMutableCopyOnWrite(t *testing.T) {
	orig := &record{X: 5, Tags: []string{"a"}}
	var clones int
	clone := func(r *record) *record {
		clones++
		return deepCopy(r)
	}
	m := scriptum.NewMutable(clone, orig)

	m.Update(func(r *record) { r.X = 1; r.Tags[0] = "b" })
	require.Equal(t, 1, clones)
	require.Equal(t, scriptum.Mutated, m.State())

	// A second update mutates the same clone.
	m.Update(func(r *record) { r.Y = 2 })
	require.Equal(t, 1, clones)

	got := m.Consume()
	require.Equal(t, 1, got.X)
	require.Equal(t, 2, got.Y)
	require.Equal(t, []string{"b"}, got.Tags)

	require.Equal(t, 5, orig.X)
	require.Zero(t, orig.Y)
	require.Equal(t, []string{"a"}, orig.Tags)
	require.NotSame(t, orig, got)
}

func TestMutableUpdateChain(t *testing.T) {
	m := scriptum.NewMutable(scriptum.CloneSlice[[]int], []int{1, 2, 3})
	got := m.
		Update(func(xs []int) { xs[0] = 10 }).
		Update(func(xs []int) { xs[2] = 30 }).
		Consume()
	require.Equal(t, []int{10, 2, 30}, got)
}

func TestMutableSealed(t *testing.T) {
	orig := map[string]int{"a": 1}
	m := scriptum.NewMutable(scriptum.CloneMap[map[string]int], orig)
	m.Update(func(mm map[string]int) { mm["b"] = 2 })

	first := m.Consume()
	require.Equal(t, map[string]int{"a": 1, "b": 2}, first)
	require.Equal(t, map[string]int{"a": 1}, orig)

	require.ErrorIs(t, m.TryUpdate(func(mm map[string]int) { mm["c"] = 3 }), scriptum.ErrConsumed)
	require.PanicsWithError(t, scriptum.ErrConsumed.Error(), func() {
		m.Update(func(mm map[string]int) { mm["c"] = 3 })
	})
	require.Equal(t, scriptum.Sealed, m.State())

	second := m.Consume()
	require.Equal(t, map[string]int{"a": 1, "b": 2}, second)
	second["z"] = 26
	require.Equal(t, 26, m.Consume()["z"], "consume returns the same reference every time")
}

func TestMutableSealedFresh(t *testing.T) {
	var clones int
	m := scriptum.NewMutable(func(xs []int) []int { clones++; return xs }, []int{1})
	_ = m.Consume()
	require.ErrorIs(t, m.TryUpdate(func([]int) {}), scriptum.ErrConsumed)
	require.Zero(t, clones)
}

func TestMutableSignature(t *testing.T) {
	m := scriptum.NewMutable(scriptum.CloneSlice[[]int], []int(nil))
	require.Equal(t, "Mutable {consume: []int, update: (([]int => []int) => this*)}", m.Signature())
}

func TestMutableStateString(t *testing.T) {
	require.Equal(t, "Fresh", scriptum.Fresh.String())
	require.Equal(t, "Mutated", scriptum.Mutated.String())
	require.Equal(t, "Sealed", scriptum.Sealed.String())
	require.Equal(t, "MutableState(7)", scriptum.MutableState(7).String())
}

func TestThunk(t *testing.T) {
	var runs int
	th := scriptum.Defer(func() int { runs++; return 42 }, "() => Number")
	require.False(t, th.Forced())
	require.Zero(t, runs)

	require.Equal(t, 42, th.Force())
	require.Equal(t, 42, th.Force())
	require.Equal(t, 1, runs)
	require.True(t, th.Forced())
	require.Equal(t, "() => Number", th.Signature())
}

func TestMutableConsumeWhileUpdating(t *testing.T) {
	m := scriptum.NewMutable(scriptum.CloneSlice[[]int], []int{1, 2})
	require.PanicsWithError(t, scriptum.ErrUpdating.Error(), func() {
		m.Update(func(xs []int) {
			_ = m.Consume()
			xs[0] = 99
		})
	})
	require.Equal(t, scriptum.Mutated, m.State(), "the wrapper is not sealed")

	// Nested updates share the guard of the outermost one.
	require.PanicsWithError(t, scriptum.ErrUpdating.Error(), func() {
		m.Update(func([]int) {
			m.Update(func(xs []int) { xs[1] = 20 })
			_ = m.Consume()
		})
	})

	got := m.Update(func(xs []int) { xs[0] = 10 }).Consume()
	require.Equal(t, []int{10, 20}, got)
	require.Equal(t, scriptum.Sealed, m.State())
}

func TestCloneHelpers(t *testing.T) {
	xs := []int{1, 2, 3}
	ys := scriptum.CloneSlice(xs)
	ys[0] = 100
	require.Equal(t, []int{1, 2, 3}, xs)
	require.Equal(t, []int{100, 2, 3}, ys)
	require.Nil(t, scriptum.CloneSlice([]int(nil)))

	type counts map[string]int
	m := counts{"a": 1}
	c := scriptum.CloneMap(m)
	c["b"] = 2
	require.Equal(t, counts{"a": 1}, m)
	require.Equal(t, counts{"a": 1, "b": 2}, c)
	require.Nil(t, scriptum.CloneMap(counts(nil)))
}
