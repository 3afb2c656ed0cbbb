package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	liberrors "github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/series"
)

func sampleFrame() *DataFrame {
	return New([]string{"n", "s"}, [][]any{{1, "a"}, {2, "b"}})
}

func TestNew_BasicAccessors(t *testing.T) {
	df := sampleFrame()
	assert.Equal(t, []string{"n", "s"}, df.GetColumnNames())
	assert.Equal(t, 0, df.GetColumnIndex("n"))
	assert.Equal(t, 1, df.GetColumnIndex("s"))
	assert.Equal(t, -1, df.GetColumnIndex("missing"))
	assert.Equal(t, 2, df.Count())
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}}, df.ToValues())
	assert.Equal(t, []any{0, 1}, df.Index().ToValues())
}

func TestFromPairs_ShapeMismatch(t *testing.T) {
	_, err := FromPairs([]string{"n"}, [][]any{{1}, {2}}, []any{"x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, liberrors.ErrShapeMismatch)
}

func TestGetSeries_ProjectsColumn(t *testing.T) {
	df := sampleFrame()
	n := df.GetSeries("n")
	assert.Equal(t, []any{1, 2}, n.ToValues())
	// The index is shared by reference, not copied.
	assert.Same(t, df.Index(), n.Index())

	s := df.GetSeries("s")
	assert.Equal(t, []any{"a", "b"}, s.ToValues())
}

func TestGetSeries_MissingColumnIsEmpty(t *testing.T) {
	df := sampleFrame()
	missing := df.GetSeries("zz")
	assert.Empty(t, missing.ToValues())
}

func TestExpectSeries_MissingColumnFails(t *testing.T) {
	df := sampleFrame()
	_, err := df.ExpectSeries("zz")
	require.Error(t, err)
	assert.ErrorIs(t, err, liberrors.ErrMissingColumn)

	s, err := df.ExpectSeries("n")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, s.ToValues())
}

func TestWhere_RetainsOriginalLabels(t *testing.T) {
	df := sampleFrame()
	filtered := df.Where(func(r Row) bool { return r["n"].(int) > 1 })
	assert.Equal(t, [][]any{{2, "b"}}, filtered.ToValues())
	// Original position retained, not renumbered.
	assert.Equal(t, []any{1}, filtered.Index().ToValues())
}

func TestOrderByDescending_ColumnName(t *testing.T) {
	df := sampleFrame()
	sorted, err := df.OrderByDescending("n")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{2, "b"}, {1, "a"}}, sorted.ToValues())
	assert.Equal(t, []any{1, 0}, sorted.Index().ToValues())
}

func TestOrderBy_SelectorForms(t *testing.T) {
	df := New([]string{"n"}, [][]any{{3}, {1}, {2}})

	byName, err := df.OrderBy("n")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1}, {2}, {3}}, byName.ToValues())

	byPos, err := df.OrderBy(0)
	require.NoError(t, err)
	assert.Equal(t, byName.ToValues(), byPos.ToValues())

	byRow, err := df.OrderBy(func(r Row) any { return r["n"] })
	require.NoError(t, err)
	assert.Equal(t, byName.ToValues(), byRow.ToValues())

	byCells, err := df.OrderBy(func(cells []any) any { return cells[0] })
	require.NoError(t, err)
	assert.Equal(t, byName.ToValues(), byCells.ToValues())
}

func TestOrderBy_FailsFastOnBadSelector(t *testing.T) {
	df := sampleFrame()

	_, err := df.OrderBy("missing")
	assert.ErrorIs(t, err, liberrors.ErrMissingColumn)

	_, err = df.OrderBy(99)
	assert.ErrorIs(t, err, liberrors.ErrInvalidArgument)

	_, err = df.OrderBy(nil)
	assert.ErrorIs(t, err, liberrors.ErrInvalidArgument)

	_, err = df.OrderBy((func(Row) any)(nil))
	assert.ErrorIs(t, err, liberrors.ErrInvalidArgument)
}

func TestThenBy_MultiKeyStability(t *testing.T) {
	df := New([]string{"dept", "salary", "id"}, [][]any{
		{"HR", 50000, 0},
		{"IT", 80000, 1},
		{"HR", 50000, 2},
		{"IT", 70000, 3},
	})

	byDept, err := df.OrderBy("dept")
	require.NoError(t, err)
	sorted, err := byDept.ThenByDescending("salary")
	require.NoError(t, err)

	var ids []any
	for _, row := range sorted.ToValues() {
		ids = append(ids, row[2])
	}
	// Equal (dept, salary) keeps original relative order: 0 before 2.
	assert.Equal(t, []any{0, 2, 1, 3}, ids)
}

func TestThenBy_IsPersistent(t *testing.T) {
	df := New([]string{"a", "b"}, [][]any{{1, 2}, {1, 1}, {0, 9}})
	base, err := df.OrderBy("a")
	require.NoError(t, err)
	baseRows := base.ToValues()

	_, err = base.ThenBy("b")
	require.NoError(t, err)
	assert.Equal(t, baseRows, base.ToValues())
}

func TestOrderByIndex(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{1}, {2}, {3}}, []any{"c", "a", "b"})
	require.NoError(t, err)

	sorted := df.OrderByIndex()
	assert.Equal(t, []any{"a", "b", "c"}, sorted.Index().ToValues())
	assert.Equal(t, [][]any{{2}, {3}, {1}}, sorted.ToValues())
}

func TestSkipTake_IndexLockstep(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{1}, {2}, {3}, {4}}, []any{"a", "b", "c", "d"})
	require.NoError(t, err)

	window := df.Skip(1).Take(2)
	assert.Equal(t, [][]any{{2}, {3}}, window.ToValues())
	assert.Equal(t, []any{"b", "c"}, window.Index().ToValues())
}

func TestSkipWhileTakeWhile_RowPredicates(t *testing.T) {
	df := New([]string{"n"}, [][]any{{1}, {2}, {10}, {3}})
	small := func(r Row) bool { return r["n"].(int) < 5 }

	assert.Equal(t, [][]any{{10}, {3}}, df.SkipWhile(small).ToValues())
	assert.Equal(t, []any{2, 3}, df.SkipWhile(small).Index().ToValues())
	assert.Equal(t, [][]any{{1}, {2}}, df.TakeWhile(small).ToValues())
}

func TestSelect_TransformsRows(t *testing.T) {
	df := sampleFrame()
	doubled := df.Select(func(r Row) Row {
		return Row{"n2": r["n"].(int) * 2}
	})
	assert.Equal(t, []string{"n2"}, doubled.GetColumnNames())
	assert.Equal(t, [][]any{{2}, {4}}, doubled.ToValues())
	// Index shared with the source frame.
	assert.Same(t, df.Index(), doubled.Index())
}

func TestSelectMany_ExpandsRowsWithLabels(t *testing.T) {
	df := New([]string{"n"}, [][]any{{2}, {1}})
	expanded := df.SelectMany(func(r Row) []Row {
		out := make([]Row, r["n"].(int))
		for i := range out {
			out[i] = Row{"v": r["n"]}
		}
		return out
	})
	assert.Equal(t, []string{"v"}, expanded.GetColumnNames())
	assert.Equal(t, [][]any{{2}, {2}, {1}}, expanded.ToValues())
	assert.Equal(t, []any{0, 0, 1}, expanded.Index().ToValues())
}

func TestSlice_LabelWindow(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{10}, {20}, {30}, {40}}, []any{1, 2, 3, 4})
	require.NoError(t, err)

	window := df.Slice(2, 4, nil)
	assert.Equal(t, [][]any{{20}, {30}}, window.ToValues())
	assert.Equal(t, []any{2, 3}, window.Index().ToValues())
}

func TestReverse(t *testing.T) {
	df := sampleFrame()
	r := df.Reverse()
	assert.Equal(t, [][]any{{2, "b"}, {1, "a"}}, r.ToValues())
	assert.Equal(t, []any{1, 0}, r.Index().ToValues())
}

func TestConcat_AppendsRows(t *testing.T) {
	a := New([]string{"n"}, [][]any{{1}, {2}})
	b := New([]string{"n"}, [][]any{{3}})
	joined := a.Concat(b)
	assert.Equal(t, [][]any{{1}, {2}, {3}}, joined.ToValues())
	assert.Equal(t, []any{0, 1, 0}, joined.Index().ToValues())
}

func TestHeadTail(t *testing.T) {
	df := New([]string{"n"}, [][]any{{1}, {2}, {3}, {4}})
	assert.Equal(t, [][]any{{1}, {2}}, df.Head(2).ToValues())
	assert.Equal(t, [][]any{{3}, {4}}, df.Tail(2).ToValues())
	assert.Equal(t, []any{2, 3}, df.Tail(2).Index().ToValues())
}

func TestReindex(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{1}, {2}}, []any{"a", "b"})
	require.NoError(t, err)

	re, err := df.Reindex(index.FromLabels("", []any{"b", "zz"}))
	require.NoError(t, err)
	assert.Equal(t, [][]any{{2}, {nil}}, re.ToValues())
	assert.Equal(t, []any{"b", "zz"}, re.Index().ToValues())
}

func TestReindex_DuplicateSourceLabel(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{1}, {2}}, []any{"a", "a"})
	require.NoError(t, err)

	_, err = df.Reindex(index.FromLabels("", []any{"a"}))
	assert.ErrorIs(t, err, liberrors.ErrDuplicateKey)
}

func TestToObjects(t *testing.T) {
	df := sampleFrame()
	assert.Equal(t, []Row{{"n": 1, "s": "a"}, {"n": 2, "s": "b"}}, df.ToObjects())
}

func TestToPairs(t *testing.T) {
	df := sampleFrame()
	assert.Equal(t, []Pair{
		{Label: 0, Row: []any{1, "a"}},
		{Label: 1, Row: []any{2, "b"}},
	}, df.ToPairs())
}

func TestFirstLast(t *testing.T) {
	df := sampleFrame()
	first, err := df.First()
	require.NoError(t, err)
	assert.Equal(t, Row{"n": 1, "s": "a"}, first)

	last, err := df.Last()
	require.NoError(t, err)
	assert.Equal(t, Row{"n": 2, "s": "b"}, last)

	empty := New([]string{"n"}, nil)
	_, err = empty.First()
	assert.ErrorIs(t, err, liberrors.ErrEmptySequence)
	_, err = empty.Last()
	assert.ErrorIs(t, err, liberrors.ErrEmptySequence)
}

func TestAt(t *testing.T) {
	df, err := FromPairs([]string{"n"}, [][]any{{1}, {2}}, []any{"a", "b"})
	require.NoError(t, err)

	row, ok := df.At("b")
	require.True(t, ok)
	assert.Equal(t, Row{"n": 2}, row)

	_, ok = df.At("zz")
	assert.False(t, ok)
}

func TestBake_Idempotent(t *testing.T) {
	df := sampleFrame().Where(func(r Row) bool { return r["n"].(int) > 1 })
	baked := df.Bake()
	assert.Equal(t, df.ToValues(), baked.ToValues())
	assert.Equal(t, df.Index().ToValues(), baked.Index().ToValues())

	twice := baked.Bake()
	assert.Equal(t, baked.ToValues(), twice.ToValues())
	assert.Equal(t, baked.Index().ToValues(), twice.Index().ToValues())
}

func TestFromObjects_InfersSortedColumnNames(t *testing.T) {
	df := FromObjects([]Row{{"b": 2, "a": 1}, {"b": 4, "a": 3}})
	assert.Equal(t, []string{"a", "b"}, df.GetColumnNames())
	assert.Equal(t, [][]any{{1, 2}, {3, 4}}, df.ToValues())
}

func TestFromColumns_ZipsSeriesInLockstep(t *testing.T) {
	n := series.New("n", []any{1, 2})
	s := series.New("s", []any{"a", "b", "extra"})
	df := FromColumns(n, s)

	assert.Equal(t, []string{"n", "s"}, df.GetColumnNames())
	// Frame ends at the shortest column.
	assert.Equal(t, [][]any{{1, "a"}, {2, "b"}}, df.ToValues())
	assert.Same(t, n.Index(), df.Index())
}

func TestInflate_UsesSeriesNameOrConfig(t *testing.T) {
	s := series.New("heights", []any{170, 180})
	df := Inflate(s)
	assert.Equal(t, []string{"heights"}, df.GetColumnNames())
	assert.Equal(t, [][]any{{170}, {180}}, df.ToValues())
	assert.Same(t, s.Index(), df.Index())

	unnamed := Inflate(series.New("", []any{1}))
	assert.Equal(t, []string{"Value"}, unnamed.GetColumnNames())
}

func TestDeflate_RowSelector(t *testing.T) {
	df := sampleFrame()
	s := df.Deflate("combo", func(r Row) any { return r["s"].(string) })
	assert.Equal(t, "combo", s.Name())
	assert.Equal(t, []any{"a", "b"}, s.ToValues())
	assert.Same(t, df.Index(), s.Index())
}

func TestDeflate_ThenInflate_RoundTripsValues(t *testing.T) {
	df := sampleFrame()
	s := df.Deflate("n", func(r Row) any { return r["n"] })
	back := Inflate(s)
	assert.Equal(t, [][]any{{1}, {2}}, back.ToValues())
}

func TestFromSource_LazyNames(t *testing.T) {
	namesCalls := 0
	df := FromSource(func() []string {
		namesCalls++
		return []string{"x"}
	}, func() iterator.Iterator {
		return iterator.NewSlice([]any{[]any{1}})
	}, nil)

	assert.Zero(t, namesCalls)
	assert.Equal(t, []string{"x"}, df.GetColumnNames())
	assert.Positive(t, namesCalls)
}

func TestWhere_NoMemoization(t *testing.T) {
	calls := 0
	df := sampleFrame().Where(func(r Row) bool {
		calls++
		return true
	})
	_ = df.ToValues()
	first := calls
	_ = df.ToValues()
	assert.Equal(t, 2*first, calls)
}
