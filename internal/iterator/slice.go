package iterator

import "github.com/egret-data/egret/internal/errors"

// SliceIterator adapts a realized in-memory slice to the cursor protocol,
// optionally carrying a parallel slice of position labels. Without labels,
// positions are the element offsets 0..n-1.
type SliceIterator struct {
	values []any
	labels []any // nil means positional
	pos    int   // -1 before the first Next
}

// NewSlice returns a cursor over values with positional labels.
func NewSlice(values []any) *SliceIterator {
	return &SliceIterator{values: values, pos: -1}
}

// NewSliceWithLabels returns a cursor over values whose positions are taken
// from labels. The two slices must have equal length.
func NewSliceWithLabels(values, labels []any) (*SliceIterator, error) {
	if len(values) != len(labels) {
		return nil, errors.NewShapeMismatchError("NewSliceWithLabels", len(values), len(labels))
	}
	return &SliceIterator{values: values, labels: labels, pos: -1}, nil
}

func (it *SliceIterator) Next() bool {
	if it.pos+1 >= len(it.values) {
		it.pos = len(it.values)
		return false
	}
	it.pos++
	return true
}

func (it *SliceIterator) Current() any {
	if it.pos < 0 || it.pos >= len(it.values) {
		return nil
	}
	return it.values[it.pos]
}

func (it *SliceIterator) CurrentIndex() any {
	if it.pos < 0 || it.pos >= len(it.values) {
		return nil
	}
	if it.labels != nil {
		return it.labels[it.pos]
	}
	return it.pos
}

// Realize drains the cursor from its current position to completion into a
// freshly allocated slice, consuming the cursor.
func (it *SliceIterator) Realize() []any {
	return Drain(it)
}

// Range returns a cursor over the ints 0..n-1.
func Range(n int) *SliceIterator {
	values := make([]any, n)
	for i := range values {
		values[i] = i
	}
	return NewSlice(values)
}
