// Package index implements the logical row-label sequence of a Series or
// DataFrame. An Index is structurally a series of labels with no parallel
// value layer: a name plus a producer of fresh label cursors, never mutated
// after construction. Derived indexes wrap new producers around the old one.
package index

import (
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/order"
)

// Index is a named lazy label sequence.
type Index struct {
	name   string
	source iterator.Source
}

// New creates an Index over a label cursor producer.
func New(name string, source iterator.Source) *Index {
	return &Index{name: name, source: source}
}

// FromLabels creates a realized Index over a label slice.
func FromLabels(name string, labels []any) *Index {
	return &Index{name: name, source: func() iterator.Iterator {
		return iterator.NewSlice(labels)
	}}
}

// Positional creates the auto-generated 0..n-1 Index.
func Positional(n int) *Index {
	return &Index{name: "", source: func() iterator.Iterator {
		return iterator.Range(n)
	}}
}

// Name returns the index name.
func (ix *Index) Name() string { return ix.name }

// Iterator returns a fresh, independently positioned label cursor.
func (ix *Index) Iterator() iterator.Iterator { return ix.source() }

// ToValues realizes the label sequence.
func (ix *Index) ToValues() []any { return iterator.Drain(ix.source()) }

// Count walks the label sequence to exhaustion.
func (ix *Index) Count() int { return iterator.Count(ix.source()) }

// First returns the first label.
func (ix *Index) First() (any, error) {
	it := ix.source()
	if !it.Next() {
		return nil, errors.NewEmptySequenceError("First")
	}
	return it.Current(), nil
}

// Last returns the final label, walking the sequence to exhaustion.
func (ix *Index) Last() (any, error) {
	it := ix.source()
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

func (ix *Index) derive(wrap func(iterator.Iterator) iterator.Iterator) *Index {
	src := ix.source
	return &Index{name: ix.name, source: func() iterator.Iterator {
		return wrap(src())
	}}
}

// Skip drops the first n labels.
func (ix *Index) Skip(n int) *Index {
	return ix.derive(func(it iterator.Iterator) iterator.Iterator {
		return iterator.Skip(it, n)
	})
}

// Take keeps at most the first n labels.
func (ix *Index) Take(n int) *Index {
	return ix.derive(func(it iterator.Iterator) iterator.Iterator {
		return iterator.Take(it, n)
	})
}

// SkipWhile drops labels while pred holds.
func (ix *Index) SkipWhile(pred func(any) bool) *Index {
	return ix.derive(func(it iterator.Iterator) iterator.Iterator {
		return iterator.SkipWhile(it, pred)
	})
}

// TakeWhile keeps labels while pred holds.
func (ix *Index) TakeWhile(pred func(any) bool) *Index {
	return ix.derive(func(it iterator.Iterator) iterator.Iterator {
		return iterator.TakeWhile(it, pred)
	})
}

// Slice keeps the half-open label window start <= label < end under less.
// A nil less falls back to the default dynamic ordering.
func (ix *Index) Slice(start, end any, less func(label, bound any) bool) *Index {
	if less == nil {
		less = DefaultLess
	}
	return ix.derive(func(it iterator.Iterator) iterator.Iterator {
		windowed := iterator.SkipWhile(it, func(label any) bool {
			return less(label, start)
		})
		return iterator.TakeWhile(windowed, func(label any) bool {
			return less(label, end)
		})
	})
}

// Reverse yields the labels in reverse order. The source is drained on first
// traversal of the derived index.
func (ix *Index) Reverse() *Index {
	src := ix.source
	return &Index{name: ix.name, source: func() iterator.Iterator {
		labels, positions := iterator.DrainBoth(src())
		for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
			labels[i], labels[j] = labels[j], labels[i]
			positions[i], positions[j] = positions[j], positions[i]
		}
		it, _ := iterator.NewSliceWithLabels(labels, positions)
		return it
	}}
}

// Bake drains the index into a realized slice-backed Index, so subsequent
// traversals re-cursor over the slice instead of recomputing the chain.
func (ix *Index) Bake() *Index {
	labels, positions := iterator.DrainBoth(ix.source())
	return &Index{name: ix.name, source: func() iterator.Iterator {
		it, _ := iterator.NewSliceWithLabels(labels, positions)
		return it
	}}
}

// Order sorts the labels ascending.
func (ix *Index) Order() *Index {
	return ix.orderBy(func(value, _ any) any { return value }, order.Ascending)
}

// OrderDescending sorts the labels descending.
func (ix *Index) OrderDescending() *Index {
	return ix.orderBy(func(value, _ any) any { return value }, order.Descending)
}

// OrderByIndex sorts the labels by their cursor positions ascending.
func (ix *Index) OrderByIndex() *Index {
	return ix.orderBy(func(_, label any) any { return label }, order.Ascending)
}

// OrderByIndexDescending sorts the labels by their cursor positions descending.
func (ix *Index) OrderByIndexDescending() *Index {
	return ix.orderBy(func(_, label any) any { return label }, order.Descending)
}

func (ix *Index) orderBy(selector order.Selector, dir order.Direction) *Index {
	// Selector is library-built here, so command construction cannot fail.
	cmd := order.Command{Selector: selector, Direction: dir}
	src := ix.source
	exec := order.NewExecution(func() iterator.Iterator {
		return iterator.Multi(iterator.Indexes(src()), src())
	}, order.NewBatch(cmd), 0)

	return &Index{name: ix.name, source: func() iterator.Iterator {
		it, _ := iterator.NewSliceWithLabels(exec.Values(), exec.Labels())
		return it
	}}
}

// DefaultLess is the label comparison slice bounds use when no predicate is
// supplied.
func DefaultLess(label, bound any) bool {
	return order.Compare(label, bound) < 0
}
