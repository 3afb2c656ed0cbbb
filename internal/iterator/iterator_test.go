package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liberrors "github.com/egret-data/egret/internal/errors"
)

func TestSliceIterator_SingleElement(t *testing.T) {
	it := NewSlice([]any{1})

	// Not positioned before the first Next.
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())

	require.True(t, it.Next())
	assert.Equal(t, 1, it.Current())
	assert.Equal(t, 0, it.CurrentIndex())

	require.False(t, it.Next())
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())

	// Exhaustion is permanent.
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestSliceIterator_AdvanceCountMatchesLength(t *testing.T) {
	for _, values := range [][]any{nil, {}, {1}, {1, 2, 3}, {"a", "b", "c", "d"}} {
		it := NewSlice(values)
		n := 0
		for it.Next() {
			n++
		}
		assert.Equal(t, len(values), n)
		assert.False(t, it.Next())
	}
}

func TestSliceIterator_Realize(t *testing.T) {
	it := NewSlice([]any{1, 2, 3})
	assert.Equal(t, []any{1, 2, 3}, it.Realize())

	// Realize consumes; a second drain yields nothing.
	assert.Nil(t, it.Realize())
}

func TestSliceIterator_RealizeFromMidPosition(t *testing.T) {
	it := NewSlice([]any{1, 2, 3})
	require.True(t, it.Next())
	assert.Equal(t, []any{2, 3}, it.Realize())
}

func TestSliceIterator_EmptySequence(t *testing.T) {
	it := NewSlice(nil)
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())
}

func TestSliceIterator_WithLabels(t *testing.T) {
	it, err := NewSliceWithLabels([]any{10, 20}, []any{"x", "y"})
	require.NoError(t, err)

	require.True(t, it.Next())
	assert.Equal(t, 10, it.Current())
	assert.Equal(t, "x", it.CurrentIndex())
	require.True(t, it.Next())
	assert.Equal(t, "y", it.CurrentIndex())
	assert.False(t, it.Next())
}

func TestSliceIterator_LabelLengthMismatch(t *testing.T) {
	_, err := NewSliceWithLabels([]any{1, 2, 3}, []any{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, liberrors.ErrShapeMismatch)
}

func TestSkip_BasicAndOverrun(t *testing.T) {
	it := Skip(NewSlice([]any{1, 2, 3, 4}), 2)
	assert.Equal(t, []any{3, 4}, Drain(it))

	// Skipping past the end permanently reports no elements.
	it = Skip(NewSlice([]any{1, 2}), 5)
	assert.False(t, it.Next())
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestSkip_PreservesPositions(t *testing.T) {
	it := Skip(NewSlice([]any{1, 2, 3}), 1)
	assert.Equal(t, []any{1, 2}, DrainIndexes(it))
}

func TestSkipWhile_FirstFailingElementIsYielded(t *testing.T) {
	it := SkipWhile(NewSlice([]any{1, 2, 30, 1}), func(v any) bool { return v.(int) < 10 })
	// Pass-through once past the skip phase, including elements that would
	// satisfy the predicate again.
	assert.Equal(t, []any{30, 1}, Drain(it))
}

func TestSkipWhile_NilBeforeFirstNext(t *testing.T) {
	it := SkipWhile(NewSlice([]any{1}), func(any) bool { return false })
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())
}

func TestTake_YieldsAtMostN(t *testing.T) {
	cases := []struct {
		n        int
		expected []any
	}{
		{0, nil},
		{2, []any{1, 2}},
		{3, []any{1, 2, 3}},
		{10, []any{1, 2, 3}},
	}
	for _, tc := range cases {
		it := Take(NewSlice([]any{1, 2, 3}), tc.n)
		assert.Equal(t, tc.expected, Drain(it))
	}
}

func TestTake_CurrentNilAfterLimit(t *testing.T) {
	it := Take(NewSlice([]any{1, 2, 3}), 1)
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Current())
	require.False(t, it.Next())
	// Upstream is still positioned on element 1, but the window is closed.
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())
}

func TestTakeWhile_TerminatesPermanently(t *testing.T) {
	it := TakeWhile(NewSlice([]any{1, 2, 9, 3}), func(v any) bool { return v.(int) < 5 })
	// 3 satisfies the predicate but comes after the terminating 9.
	assert.Equal(t, []any{1, 2}, Drain(it))
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestWhere_FiltersAndKeepsPositions(t *testing.T) {
	it := Where(NewSlice([]any{1, 2, 3, 4}), func(v any) bool { return v.(int)%2 == 0 })
	require.True(t, it.Next())
	assert.Equal(t, 2, it.Current())
	assert.Equal(t, 1, it.CurrentIndex())
	require.True(t, it.Next())
	assert.Equal(t, 4, it.Current())
	assert.Equal(t, 3, it.CurrentIndex())
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestSelect_TransformsLazily(t *testing.T) {
	calls := 0
	it := Select(NewSlice([]any{1, 2}), func(v any) any {
		calls++
		return v.(int) * 10
	})
	assert.Zero(t, calls)
	assert.Nil(t, it.Current())
	assert.Zero(t, calls)

	assert.Equal(t, []any{10, 20}, Drain(it))
	assert.Nil(t, it.Current())
}

func TestSelectMany_ExpandsWithUpstreamPositions(t *testing.T) {
	it := SelectMany(NewSlice([]any{2, 0, 1}), func(v any) []any {
		out := make([]any, v.(int))
		for i := range out {
			out[i] = v
		}
		return out
	})

	require.True(t, it.Next())
	assert.Equal(t, 2, it.Current())
	assert.Equal(t, 0, it.CurrentIndex())
	require.True(t, it.Next())
	assert.Equal(t, 0, it.CurrentIndex())

	// The zero-length expansion at position 1 is dropped entirely.
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Current())
	assert.Equal(t, 2, it.CurrentIndex())

	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestConcat_EqualsSequentialRealization(t *testing.T) {
	a := []any{1, 2}
	b := []any{3}
	it := Concat(NewSlice(a), NewSlice(b))
	assert.Equal(t, []any{1, 2, 3}, Drain(it))

	// Positions are each child's own, not renumbered.
	it = Concat(NewSlice(a), NewSlice(b))
	assert.Equal(t, []any{0, 1, 0}, DrainIndexes(it))
}

func TestConcat_EmptyChildren(t *testing.T) {
	assert.Nil(t, Drain(Concat()))
	assert.Nil(t, Drain(Concat(NewSlice(nil), NewSlice(nil))))

	it := Concat(NewSlice(nil), NewSlice([]any{7}))
	assert.Equal(t, []any{7}, Drain(it))
}

func TestMulti_LockstepPairs(t *testing.T) {
	it := Multi(NewSlice([]any{1, 2}), NewSlice([]any{10, 20}))

	require.True(t, it.Next())
	assert.Equal(t, []any{1, 10}, it.Current())
	assert.Equal(t, []any{0, 0}, it.CurrentIndex())

	require.True(t, it.Next())
	assert.Equal(t, []any{2, 20}, it.Current())

	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
	assert.Nil(t, it.CurrentIndex())
}

func TestMulti_ShortestChildWins(t *testing.T) {
	it := Multi(NewSlice([]any{1, 2}), NewSlice([]any{10, 20, 30}))
	n := 0
	for it.Next() {
		n++
	}
	assert.Equal(t, 2, n)

	// Latched: repeated calls stay false.
	assert.False(t, it.Next())
	assert.False(t, it.Next())
}

func TestMulti_ZeroChildren(t *testing.T) {
	it := Multi()
	assert.False(t, it.Next())
	assert.Nil(t, it.Current())
}

func TestRange_ProducesPositionalInts(t *testing.T) {
	assert.Equal(t, []any{0, 1, 2}, Drain(Range(3)))
	assert.Nil(t, Drain(Range(0)))
}

func TestCombinators_NilOutsideValidWindow(t *testing.T) {
	pred := func(any) bool { return true }
	builders := map[string]func() Iterator{
		"skip":       func() Iterator { return Skip(NewSlice([]any{1}), 0) },
		"skipWhile":  func() Iterator { return SkipWhile(NewSlice([]any{1}), func(any) bool { return false }) },
		"take":       func() Iterator { return Take(NewSlice([]any{1}), 5) },
		"takeWhile":  func() Iterator { return TakeWhile(NewSlice([]any{1}), pred) },
		"where":      func() Iterator { return Where(NewSlice([]any{1}), pred) },
		"select":     func() Iterator { return Select(NewSlice([]any{1}), func(v any) any { return v }) },
		"selectMany": func() Iterator { return SelectMany(NewSlice([]any{1}), func(v any) []any { return []any{v} }) },
		"concat":     func() Iterator { return Concat(NewSlice([]any{1})) },
		"multi":      func() Iterator { return Multi(NewSlice([]any{1})) },
	}

	for name, build := range builders {
		it := build()
		assert.Nil(t, it.Current(), "%s before first Next", name)
		assert.Nil(t, it.CurrentIndex(), "%s before first Next", name)

		require.True(t, it.Next(), name)
		assert.NotNil(t, it.Current(), "%s positioned", name)

		require.False(t, it.Next(), name)
		assert.Nil(t, it.Current(), "%s after exhaustion", name)
		assert.Nil(t, it.CurrentIndex(), "%s after exhaustion", name)
	}
}

func TestCount_WalksToExhaustion(t *testing.T) {
	assert.Equal(t, 3, Count(NewSlice([]any{1, 2, 3})))
	assert.Zero(t, Count(NewSlice(nil)))
}
