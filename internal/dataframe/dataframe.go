// Package dataframe implements the table unit of the library: a lazily
// produced row sequence (each row an ordered slice of cells, positionally
// aligned with a lazily computed column-name sequence) paired with an Index.
// Rows stay positional internally; the keyed Row map exists only at the
// boundary, for predicates and ToObjects.
package dataframe

import (
	"sort"

	"github.com/egret-data/egret/internal/config"
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/keymap"
	"github.com/egret-data/egret/internal/series"
)

// Row is the keyed form of a row, built at the boundary from the ordered
// cell slice and the column names.
type Row map[string]any

// Pair is one (label, row) element of a realized frame.
type Pair struct {
	Label any
	Row   []any
}

// DataFrame is a named-column lazy row sequence plus its Index.
type DataFrame struct {
	names func() []string
	rows  iterator.Source // Current() is []any, one cell per column
	index *index.Index
}

// New creates a DataFrame over realized rows with the auto-generated 0..n-1
// index. Rows are ordered cell slices aligned with columnNames.
func New(columnNames []string, rows [][]any) *DataFrame {
	names := append([]string(nil), columnNames...)
	return &DataFrame{
		names: func() []string { return names },
		rows:  rowsSource(rows),
		index: index.Positional(len(rows)),
	}
}

// FromPairs creates a DataFrame over parallel row and label slices.
func FromPairs(columnNames []string, rows [][]any, labels []any) (*DataFrame, error) {
	if len(rows) != len(labels) {
		return nil, errors.NewShapeMismatchError("FromPairs", len(rows), len(labels))
	}
	names := append([]string(nil), columnNames...)
	values := boxRows(rows)
	return &DataFrame{
		names: func() []string { return names },
		rows: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(values, labels)
			return it
		},
		index: index.FromLabels("", labels),
	}, nil
}

// FromSource creates a DataFrame over a row cursor producer. A nil ix
// derives the index from the producer's own positions; names may be lazy
// when a construction must peek rows to know them.
func FromSource(names func() []string, src iterator.Source, ix *index.Index) *DataFrame {
	if ix == nil {
		ix = index.New("", func() iterator.Iterator {
			return iterator.Indexes(src())
		})
	}
	return &DataFrame{names: names, rows: src, index: ix}
}

// FromObjects creates a DataFrame from keyed rows. Column names are inferred
// lazily by peeking the first row; keys are ordered alphabetically since Go
// maps carry no insertion order.
func FromObjects(objects []Row) *DataFrame {
	names := func() []string {
		if len(objects) == 0 {
			return nil
		}
		keys := make([]string, 0, len(objects[0]))
		for k := range objects[0] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}
	df := &DataFrame{
		index: index.Positional(len(objects)),
	}
	df.names = memoizeNames(names)
	df.rows = func() iterator.Iterator {
		cols := df.names()
		rows := make([]any, len(objects))
		for i, obj := range objects {
			row := make([]any, len(cols))
			for j, name := range cols {
				row[j] = obj[name]
			}
			rows[i] = row
		}
		return iterator.NewSlice(rows)
	}
	return df
}

// FromColumns creates a DataFrame by zipping column series in lockstep. The
// frame ends at the shortest column; the index is the first column's,
// shared by reference.
func FromColumns(columns ...*series.Series) *DataFrame {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name()
	}
	var ix *index.Index
	if len(columns) > 0 {
		ix = columns[0].Index()
	} else {
		ix = index.Positional(0)
	}
	return &DataFrame{
		names: func() []string { return names },
		rows: func() iterator.Iterator {
			its := make([]iterator.Iterator, len(columns))
			for i, col := range columns {
				its[i] = col.Iterator()
			}
			return iterator.Multi(its...)
		},
		index: ix,
	}
}

// Inflate lifts a series into a one-column DataFrame. An unnamed series gets
// the configured generated column name.
func Inflate(s *series.Series) *DataFrame {
	name := s.Name()
	if name == "" {
		name = config.GetGlobalConfig().GeneratedColumnName
	}
	return &DataFrame{
		names: func() []string { return []string{name} },
		rows: func() iterator.Iterator {
			return iterator.Select(s.Iterator(), func(v any) any {
				return []any{v}
			})
		},
		index: s.Index(),
	}
}

func rowsSource(rows [][]any) iterator.Source {
	values := boxRows(rows)
	return func() iterator.Iterator { return iterator.NewSlice(values) }
}

func boxRows(rows [][]any) []any {
	values := make([]any, len(rows))
	for i, r := range rows {
		values[i] = r
	}
	return values
}

// memoizeNames caches a lazy column-name computation after its first call.
func memoizeNames(names func() []string) func() []string {
	var cached []string
	done := false
	return func() []string {
		if !done {
			cached = names()
			done = true
		}
		return cached
	}
}

// GetColumnNames returns the ordered column names.
func (df *DataFrame) GetColumnNames() []string { return df.names() }

// GetColumnIndex returns the position of the named column, or -1 when the
// column does not exist.
func (df *DataFrame) GetColumnIndex(name string) int {
	for i, n := range df.names() {
		if n == name {
			return i
		}
	}
	return -1
}

// Index returns the frame index, shared by reference.
func (df *DataFrame) Index() *index.Index { return df.index }

// Iterator returns a fresh, independently positioned row cursor.
func (df *DataFrame) Iterator() iterator.Iterator { return df.rows() }

// GetSeries derives the named column as a series. The cell projection runs
// through the row cursor and the frame's index is shared by reference. A
// missing column yields an empty series; ExpectSeries is the erroring form.
func (df *DataFrame) GetSeries(name string) *series.Series {
	col := df.GetColumnIndex(name)
	if col < 0 {
		return series.New(name, nil)
	}
	rows := df.rows
	return series.FromSource(name, func() iterator.Iterator {
		return iterator.Select(rows(), func(row any) any {
			cells := row.([]any)
			if col >= len(cells) {
				return nil
			}
			return cells[col]
		})
	}, df.index)
}

// ExpectSeries is GetSeries for callers that require the column to exist.
func (df *DataFrame) ExpectSeries(name string) (*series.Series, error) {
	if df.GetColumnIndex(name) < 0 {
		return nil, errors.NewMissingColumnError("ExpectSeries", name)
	}
	return df.GetSeries(name), nil
}

// Deflate reduces the frame to a series through a per-row selector.
func (df *DataFrame) Deflate(name string, selector func(Row) any) *series.Series {
	names, rows := df.names, df.rows
	return series.FromSource(name, func() iterator.Iterator {
		cols := names()
		return iterator.Select(rows(), func(row any) any {
			return selector(zipRow(cols, row.([]any)))
		})
	}, df.index)
}

// zipRow builds the keyed row form. It is rebuilt on every call; filtering
// is deliberately not memoized.
func zipRow(names []string, cells []any) Row {
	row := make(Row, len(names))
	for i, name := range names {
		if i < len(cells) {
			row[name] = cells[i]
		}
	}
	return row
}

// pairs produces fresh (label, row) lockstep cursors.
func (df *DataFrame) pairs() iterator.Source {
	rows, ix := df.rows, df.index
	return func() iterator.Iterator {
		return iterator.Multi(ix.Iterator(), rows())
	}
}

func pairLabel(p any) any { return p.([]any)[0] }
func pairRow(p any) any   { return p.([]any)[1] }

// fromPairSource splits a (label, row) cursor producer back into a frame.
// Row chain and index chain each rebuild the pair chain independently.
func (df *DataFrame) fromPairSource(src iterator.Source) *DataFrame {
	return &DataFrame{
		names: df.names,
		rows: func() iterator.Iterator {
			return iterator.Select(src(), pairRow)
		},
		index: index.New(df.index.Name(), func() iterator.Iterator {
			return iterator.Select(src(), pairLabel)
		}),
	}
}

// Skip drops the first n rows.
func (df *DataFrame) Skip(n int) *DataFrame {
	rows := df.rows
	return &DataFrame{
		names: df.names,
		rows: func() iterator.Iterator {
			return iterator.Skip(rows(), n)
		},
		index: df.index.Skip(n),
	}
}

// Take keeps at most the first n rows.
func (df *DataFrame) Take(n int) *DataFrame {
	rows := df.rows
	return &DataFrame{
		names: df.names,
		rows: func() iterator.Iterator {
			return iterator.Take(rows(), n)
		},
		index: df.index.Take(n),
	}
}

// rowPredicate adapts a keyed-row predicate to the positional pair cursor.
func (df *DataFrame) rowPredicate(pred func(Row) bool) func(any) bool {
	names := df.names
	return func(p any) bool {
		return pred(zipRow(names(), pairRow(p).([]any)))
	}
}

// SkipWhile drops rows while pred holds. The predicate sees the keyed row
// form; the retained index stays synchronized through the paired cursor.
func (df *DataFrame) SkipWhile(pred func(Row) bool) *DataFrame {
	pairSrc := df.pairs()
	rowPred := df.rowPredicate(pred)
	return df.fromPairSource(func() iterator.Iterator {
		return iterator.SkipWhile(pairSrc(), rowPred)
	})
}

// TakeWhile keeps rows while pred holds.
func (df *DataFrame) TakeWhile(pred func(Row) bool) *DataFrame {
	pairSrc := df.pairs()
	rowPred := df.rowPredicate(pred)
	return df.fromPairSource(func() iterator.Iterator {
		return iterator.TakeWhile(pairSrc(), rowPred)
	})
}

// Where keeps only the rows satisfying pred. Labels of surviving rows are
// retained, not renumbered, and the filter re-runs on each terminal read.
func (df *DataFrame) Where(pred func(Row) bool) *DataFrame {
	pairSrc := df.pairs()
	rowPred := df.rowPredicate(pred)
	return df.fromPairSource(func() iterator.Iterator {
		return iterator.Where(pairSrc(), rowPred)
	})
}

// Select transforms each row through fn. Column names of the result are
// inferred lazily by peeking the first transformed row, ordered
// alphabetically.
func (df *DataFrame) Select(fn func(Row) Row) *DataFrame {
	srcNames, rows, ix := df.names, df.rows, df.index

	transform := func(row any) Row {
		return fn(zipRow(srcNames(), row.([]any)))
	}
	names := memoizeNames(func() []string {
		it := rows()
		if !it.Next() {
			return nil
		}
		first := transform(it.Current())
		keys := make([]string, 0, len(first))
		for k := range first {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	})

	out := &DataFrame{index: ix}
	out.names = names
	out.rows = func() iterator.Iterator {
		cols := names()
		return iterator.Select(rows(), func(row any) any {
			obj := transform(row)
			cells := make([]any, len(cols))
			for i, name := range cols {
				cells[i] = obj[name]
			}
			return cells
		})
	}
	return out
}

// SelectMany expands each row into the keyed rows fn returns, every
// replacement row carrying the source row's label. Result columns are
// inferred from the first replacement row.
func (df *DataFrame) SelectMany(fn func(Row) []Row) *DataFrame {
	srcNames := df.names
	pairSrc := df.pairs()

	expand := func(p any) []Row {
		return fn(zipRow(srcNames(), pairRow(p).([]any)))
	}
	names := memoizeNames(func() []string {
		it := pairSrc()
		for it.Next() {
			objs := expand(it.Current())
			if len(objs) == 0 {
				continue
			}
			keys := make([]string, 0, len(objs[0]))
			for k := range objs[0] {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return keys
		}
		return nil
	})

	expanded := func() iterator.Iterator {
		cols := names()
		return iterator.SelectMany(pairSrc(), func(p any) []any {
			label := pairLabel(p)
			objs := expand(p)
			out := make([]any, len(objs))
			for i, obj := range objs {
				cells := make([]any, len(cols))
				for j, name := range cols {
					cells[j] = obj[name]
				}
				out[i] = []any{label, cells}
			}
			return out
		})
	}

	out := df.fromPairSource(expanded)
	out.names = names
	return out
}

// Slice keeps the half-open label window start <= label < end under less.
func (df *DataFrame) Slice(start, end any, less func(label, bound any) bool) *DataFrame {
	if less == nil {
		less = index.DefaultLess
	}
	pairSrc := df.pairs()
	return df.fromPairSource(func() iterator.Iterator {
		windowed := iterator.SkipWhile(pairSrc(), func(p any) bool {
			return less(pairLabel(p), start)
		})
		return iterator.TakeWhile(windowed, func(p any) bool {
			return less(pairLabel(p), end)
		})
	})
}

// Reverse yields the rows in reverse order, labels travelling with rows.
func (df *DataFrame) Reverse() *DataFrame {
	pairSrc := df.pairs()
	return df.fromPairSource(func() iterator.Iterator {
		ps := iterator.Drain(pairSrc())
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
		return iterator.NewSlice(ps)
	})
}

// Concat appends the other frames' rows after the receiver's. Columns are
// taken from the receiver; labels are each source's own.
func (df *DataFrame) Concat(others ...*DataFrame) *DataFrame {
	sources := make([]iterator.Source, 0, len(others)+1)
	sources = append(sources, df.pairs())
	for _, o := range others {
		sources = append(sources, o.pairs())
	}
	return df.fromPairSource(func() iterator.Iterator {
		its := make([]iterator.Iterator, len(sources))
		for i, src := range sources {
			its[i] = src()
		}
		return iterator.Concat(its...)
	})
}

// Head keeps the first n rows.
func (df *DataFrame) Head(n int) *DataFrame { return df.Take(n) }

// Tail keeps the last n rows, eagerly counting the frame first.
func (df *DataFrame) Tail(n int) *DataFrame {
	count := df.Count()
	if n >= count {
		return df
	}
	return df.Skip(count - n)
}

// Reindex returns a frame whose index is newIx, with rows looked up by label
// from the receiver. The lookup is built eagerly at the call; a duplicated
// source label fails here. Labels absent from the source map to nil rows.
func (df *DataFrame) Reindex(newIx *index.Index) (*DataFrame, error) {
	if newIx == nil {
		return nil, errors.NewInvalidArgumentError("Reindex", "new index must not be nil")
	}

	oldPairs := iterator.Drain(df.pairs()())
	m := keymap.New(len(oldPairs))
	for _, p := range oldPairs {
		pv := p.([]any)
		if err := m.Put("Reindex", pv[0], pv[1]); err != nil {
			return nil, err
		}
	}

	width := len(df.names())
	labels := newIx.ToValues()
	rows := make([]any, len(labels))
	for i, label := range labels {
		if v, ok := m.Get(label); ok {
			rows[i] = v
		} else {
			rows[i] = make([]any, width)
		}
	}
	return &DataFrame{
		names: df.names,
		rows: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(rows, labels)
			return it
		},
		index: newIx,
	}, nil
}

// Bake drains the frame into realized slice-backed producers, including the
// column names.
func (df *DataFrame) Bake() *DataFrame {
	names := append([]string(nil), df.names()...)
	rows := iterator.Drain(df.rows())
	labels := iterator.Drain(df.index.Iterator())
	return &DataFrame{
		names: func() []string { return names },
		rows: func() iterator.Iterator {
			it, err := iterator.NewSliceWithLabels(rows, labels)
			if err != nil {
				return iterator.NewSlice(rows)
			}
			return it
		},
		index: index.FromLabels(df.index.Name(), labels),
	}
}

// ToValues realizes the rows as ordered cell slices.
func (df *DataFrame) ToValues() [][]any {
	var out [][]any
	it := df.rows()
	for it.Next() {
		out = append(out, it.Current().([]any))
	}
	return out
}

// ToObjects realizes the rows in keyed form.
func (df *DataFrame) ToObjects() []Row {
	names := df.names()
	var out []Row
	it := df.rows()
	for it.Next() {
		out = append(out, zipRow(names, it.Current().([]any)))
	}
	return out
}

// ToPairs realizes the (label, row) sequence.
func (df *DataFrame) ToPairs() []Pair {
	var out []Pair
	it := df.pairs()()
	for it.Next() {
		pv := it.Current().([]any)
		out = append(out, Pair{Label: pv[0], Row: pv[1].([]any)})
	}
	return out
}

// Count walks the row sequence to exhaustion.
func (df *DataFrame) Count() int { return iterator.Count(df.rows()) }

// First returns the first row in keyed form.
func (df *DataFrame) First() (Row, error) {
	it := df.rows()
	if !it.Next() {
		return nil, errors.NewEmptySequenceError("First")
	}
	return zipRow(df.names(), it.Current().([]any)), nil
}

// Last returns the final row in keyed form, walking the frame to exhaustion.
func (df *DataFrame) Last() (Row, error) {
	it := df.rows()
	var last []any
	found := false
	for it.Next() {
		last = it.Current().([]any)
		found = true
	}
	if !found {
		return nil, errors.NewEmptySequenceError("Last")
	}
	return zipRow(df.names(), last), nil
}

// At returns the keyed row at the first occurrence of label.
func (df *DataFrame) At(label any) (Row, bool) {
	key := keymap.KeyOf(label)
	it := df.pairs()()
	for it.Next() {
		pv := it.Current().([]any)
		if keymap.KeyOf(pv[0]) == key {
			return zipRow(df.names(), pv[1].([]any)), true
		}
	}
	return nil, false
}
