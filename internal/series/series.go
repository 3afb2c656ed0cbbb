// Package series implements the column unit of the library: a single named
// lazily-produced value sequence paired with an Index. Operators never
// mutate; each returns a new Series whose value and index producers wrap the
// prior producers in combinator cursors. When an operator filters or windows
// by value, the value chain and the index chain are both rebuilt over a
// paired (label, value) cursor so they advance in lockstep under any
// composition.
package series

import (
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/keymap"
)

// Pair is one (label, value) element of a realized series.
type Pair struct {
	Label any
	Value any
}

// Series is a named lazy value sequence plus its Index.
type Series struct {
	name   string
	values iterator.Source
	index  *index.Index
}

// New creates a Series over a value slice with the auto-generated 0..n-1
// index.
func New(name string, values []any) *Series {
	return &Series{
		name:   name,
		values: func() iterator.Iterator { return iterator.NewSlice(values) },
		index:  index.Positional(len(values)),
	}
}

// FromPairs creates a Series over parallel value and label slices. The two
// must have equal length.
func FromPairs(name string, values, labels []any) (*Series, error) {
	if len(values) != len(labels) {
		return nil, errors.NewShapeMismatchError("FromPairs", len(values), len(labels))
	}
	return &Series{
		name: name,
		values: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(values, labels)
			return it
		},
		index: index.FromLabels("", labels),
	}, nil
}

// FromSource creates a Series over a value cursor producer. A nil ix derives
// the index from the producer's own positions.
func FromSource(name string, src iterator.Source, ix *index.Index) *Series {
	if ix == nil {
		ix = index.New("", func() iterator.Iterator {
			return iterator.Indexes(src())
		})
	}
	return &Series{name: name, values: src, index: ix}
}

// Name returns the series name.
func (s *Series) Name() string { return s.name }

// Rename returns a series with a new name sharing the receiver's producers.
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, values: s.values, index: s.index}
}

// Index returns the series index, shared by reference.
func (s *Series) Index() *index.Index { return s.index }

// Iterator returns a fresh, independently positioned value cursor.
func (s *Series) Iterator() iterator.Iterator { return s.values() }

// pairs produces fresh (label, value) lockstep cursors.
func (s *Series) pairs() iterator.Source {
	values, ix := s.values, s.index
	return func() iterator.Iterator {
		return iterator.Multi(ix.Iterator(), values())
	}
}

func pairLabel(p any) any { return p.([]any)[0] }
func pairValue(p any) any { return p.([]any)[1] }

// fromPairSource splits a (label, value) cursor producer back into a Series.
// The value chain and the index chain each rebuild the pair chain
// independently, which keeps them in lockstep by construction.
func fromPairSource(name, indexName string, src iterator.Source) *Series {
	return &Series{
		name: name,
		values: func() iterator.Iterator {
			return iterator.Select(src(), pairValue)
		},
		index: index.New(indexName, func() iterator.Iterator {
			return iterator.Select(src(), pairLabel)
		}),
	}
}

// Skip drops the first n elements.
func (s *Series) Skip(n int) *Series {
	values := s.values
	return &Series{
		name: s.name,
		values: func() iterator.Iterator {
			return iterator.Skip(values(), n)
		},
		index: s.index.Skip(n),
	}
}

// Take keeps at most the first n elements.
func (s *Series) Take(n int) *Series {
	values := s.values
	return &Series{
		name: s.name,
		values: func() iterator.Iterator {
			return iterator.Take(values(), n)
		},
		index: s.index.Take(n),
	}
}

// SkipWhile drops elements while pred holds on the value. The retained
// labels travel with their values through a paired cursor.
func (s *Series) SkipWhile(pred func(any) bool) *Series {
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		return iterator.SkipWhile(pairSrc(), func(p any) bool {
			return pred(pairValue(p))
		})
	})
}

// TakeWhile keeps elements while pred holds on the value.
func (s *Series) TakeWhile(pred func(any) bool) *Series {
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		return iterator.TakeWhile(pairSrc(), func(p any) bool {
			return pred(pairValue(p))
		})
	})
}

// Where keeps only the elements satisfying pred. Labels of surviving
// elements are retained, not renumbered. The filter is re-run on each
// terminal read; nothing is memoized.
func (s *Series) Where(pred func(any) bool) *Series {
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		return iterator.Where(pairSrc(), func(p any) bool {
			return pred(pairValue(p))
		})
	})
}

// Select transforms each value through fn, keeping the index shared by
// reference.
func (s *Series) Select(fn func(any) any) *Series {
	values := s.values
	return &Series{
		name: s.name,
		values: func() iterator.Iterator {
			return iterator.Select(values(), fn)
		},
		index: s.index,
	}
}

// SelectMany expands each value into the sequence fn returns. Every
// replacement element carries the source element's label.
func (s *Series) SelectMany(fn func(any) []any) *Series {
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		return iterator.SelectMany(pairSrc(), func(p any) []any {
			label := pairLabel(p)
			expanded := fn(pairValue(p))
			out := make([]any, len(expanded))
			for i, v := range expanded {
				out[i] = []any{label, v}
			}
			return out
		})
	})
}

// Slice keeps the half-open label window start <= label < end under less.
// A nil less falls back to the default dynamic ordering.
func (s *Series) Slice(start, end any, less func(label, bound any) bool) *Series {
	if less == nil {
		less = index.DefaultLess
	}
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		windowed := iterator.SkipWhile(pairSrc(), func(p any) bool {
			return less(pairLabel(p), start)
		})
		return iterator.TakeWhile(windowed, func(p any) bool {
			return less(pairLabel(p), end)
		})
	})
}

// Reverse yields the elements in reverse order, labels travelling with their
// values. The source is drained on first traversal of the result.
func (s *Series) Reverse() *Series {
	pairSrc := s.pairs()
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		ps := iterator.Drain(pairSrc())
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
		return iterator.NewSlice(ps)
	})
}

// Concat appends the other series after the receiver. Labels are each
// source's own; they are not renumbered.
func (s *Series) Concat(others ...*Series) *Series {
	sources := make([]iterator.Source, 0, len(others)+1)
	sources = append(sources, s.pairs())
	for _, o := range others {
		sources = append(sources, o.pairs())
	}
	return fromPairSource(s.name, s.index.Name(), func() iterator.Iterator {
		its := make([]iterator.Iterator, len(sources))
		for i, src := range sources {
			its[i] = src()
		}
		return iterator.Concat(its...)
	})
}

// Head keeps the first n elements.
func (s *Series) Head(n int) *Series { return s.Take(n) }

// Tail keeps the last n elements. This is intentionally eager: it counts the
// full sequence before skipping, since no window from the end exists without
// either buffering or a count.
func (s *Series) Tail(n int) *Series {
	count := s.Count()
	if n >= count {
		return s
	}
	return s.Skip(count - n)
}

// Reindex returns a series whose index is newIx, with values looked up by
// label from the receiver. The lookup is built eagerly at the call so a
// duplicated source label fails here, not during a later terminal read.
// Labels absent from the source map to nil values.
func (s *Series) Reindex(newIx *index.Index) (*Series, error) {
	if newIx == nil {
		return nil, errors.NewInvalidArgumentError("Reindex", "new index must not be nil")
	}

	oldPairs := iterator.Drain(s.pairs()())
	m := keymap.New(len(oldPairs))
	for _, p := range oldPairs {
		pv := p.([]any)
		if err := m.Put("Reindex", pv[0], pv[1]); err != nil {
			return nil, err
		}
	}

	labels := newIx.ToValues()
	values := make([]any, len(labels))
	for i, label := range labels {
		if v, ok := m.Get(label); ok {
			values[i] = v
		}
	}
	return &Series{
		name: s.name,
		values: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(values, labels)
			return it
		},
		index: newIx,
	}, nil
}

// Bake drains the series into realized slice-backed producers, so subsequent
// reads re-cursor over the slices instead of recomputing the chain.
func (s *Series) Bake() *Series {
	values := iterator.Drain(s.values())
	labels := iterator.Drain(s.index.Iterator())
	return &Series{
		name: s.name,
		values: func() iterator.Iterator {
			it, err := iterator.NewSliceWithLabels(values, labels)
			if err != nil {
				// Index and values drifted out of lockstep upstream.
				return iterator.NewSlice(values)
			}
			return it
		},
		index: index.FromLabels(s.index.Name(), labels),
	}
}

// ToValues realizes the value sequence.
func (s *Series) ToValues() []any { return iterator.Drain(s.values()) }

// ToPairs realizes the (label, value) sequence.
func (s *Series) ToPairs() []Pair {
	var out []Pair
	it := s.pairs()()
	for it.Next() {
		pv := it.Current().([]any)
		out = append(out, Pair{Label: pv[0], Value: pv[1]})
	}
	return out
}

// Count walks the value sequence to exhaustion.
func (s *Series) Count() int { return iterator.Count(s.values()) }

// First returns the first value.
func (s *Series) First() (any, error) {
	it := s.values()
	if !it.Next() {
		return nil, errors.NewEmptySequenceError("First")
	}
	return it.Current(), nil
}

// Last returns the final value, walking the sequence to exhaustion.
func (s *Series) Last() (any, error) {
	it := s.values()
	var last any
	found := false
	for it.Next() {
		last = it.Current()
		found = true
	}
	if !found {
		return nil, errors.NewEmptySequenceError("Last")
	}
	return last, nil
}

// At returns the value at the first occurrence of label.
func (s *Series) At(label any) (any, bool) {
	key := keymap.KeyOf(label)
	it := s.pairs()()
	for it.Next() {
		pv := it.Current().([]any)
		if keymap.KeyOf(pv[0]) == key {
			return pv[1], true
		}
	}
	return nil, false
}

// Aggregate folds the values with fn, seeding from the first element.
func (s *Series) Aggregate(fn func(acc, value any) any) (any, error) {
	it := s.values()
	if !it.Next() {
		return nil, errors.NewEmptySequenceError("Aggregate")
	}
	acc := it.Current()
	for it.Next() {
		acc = fn(acc, it.Current())
	}
	return acc, nil
}

// Fold folds the values with fn starting from seed. An empty series yields
// the seed.
func (s *Series) Fold(seed any, fn func(acc, value any) any) any {
	acc := seed
	it := s.values()
	for it.Next() {
		acc = fn(acc, it.Current())
	}
	return acc
}

// Window splits the series into consecutive non-overlapping windows of n
// elements; the final window may be shorter. Each window is itself a Series
// and the outer label is the window ordinal.
func (s *Series) Window(n int) (*Series, error) {
	if n <= 0 {
		return nil, errors.NewInvalidArgumentError("Window", "window size must be positive")
	}
	name := s.name
	pairSrc := s.pairs()
	return FromSource(name, func() iterator.Iterator {
		var windows []any
		var values, labels []any
		flush := func() {
			if len(values) == 0 {
				return
			}
			w, _ := FromPairs(name, values, labels)
			windows = append(windows, w.Bake())
			values, labels = nil, nil
		}
		it := pairSrc()
		for it.Next() {
			pv := it.Current().([]any)
			labels = append(labels, pv[0])
			values = append(values, pv[1])
			if len(values) == n {
				flush()
			}
		}
		flush()
		return iterator.NewSlice(windows)
	}, nil), nil
}
