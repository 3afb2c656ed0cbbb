// Package iterator implements the pull-based cursor protocol the rest of the
// library is built on: a stateful traversal object paired with the combinator
// set (skip, take, filter, project, flatten, concatenate, zip) that every
// Series and DataFrame operation composes from.
//
// Usage:
//
//	it := iterator.NewSlice([]any{1, 2, 3})
//	for it.Next() {
//	    v := it.Current()
//	    // process v
//	}
//
// Values and positions are dynamically typed; nil stands for "no value".
package iterator

// Iterator is the cursor contract. Next moves to the next element and reports
// whether a current element now exists. Once Next has returned false it keeps
// returning false.
//
// Current and CurrentIndex are valid only after a Next call that returned
// true. Before the first Next call, and after Next has returned false, both
// return nil rather than failing. Every combinator in this package preserves
// that rule, so chains compose without per-stage checks.
type Iterator interface {
	// Next advances to the next element. Returns true if the iterator is now
	// positioned on an element, false if the sequence is exhausted.
	Next() bool

	// Current returns the element at the current position, or nil when the
	// iterator is not positioned.
	Current() any

	// CurrentIndex returns the logical position (label) of the current
	// element, or nil when the iterator is not positioned.
	CurrentIndex() any
}

// Source produces a fresh, independently positioned Iterator on each call.
// All lazy entities hold Sources rather than Iterators so they can be
// traversed repeatedly.
type Source func() Iterator

// Drain advances it to exhaustion and collects the values.
func Drain(it Iterator) []any {
	var out []any
	for it.Next() {
		out = append(out, it.Current())
	}
	return out
}

// DrainIndexes advances it to exhaustion and collects the positions.
func DrainIndexes(it Iterator) []any {
	var out []any
	for it.Next() {
		out = append(out, it.CurrentIndex())
	}
	return out
}

// Count advances it to exhaustion and returns the number of elements.
func Count(it Iterator) int {
	n := 0
	for it.Next() {
		n++
	}
	return n
}
