// Package order implements the batched multi-key sort engine shared by
// Index, Series, and DataFrame. A sort is described by an immutable batch of
// (selector, direction) commands accumulated through orderBy/thenBy chaining;
// execution is deferred until the sorted entity is first realized, and the
// sorted pair sequence is cached so later reads of values or index reuse it.
package order

import (
	"sort"

	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/iterator"
)

// Direction is the sort direction of a single command.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Selector extracts the sort key from a (value, label) pair.
type Selector func(value, label any) any

// Command is one sort key: a selector plus its direction.
type Command struct {
	Selector  Selector
	Direction Direction
}

// NewCommand validates and builds a sort command. A nil selector fails fast
// with InvalidArgument, before any deferral.
func NewCommand(op string, selector Selector, dir Direction) (Command, error) {
	if selector == nil {
		return Command{}, errors.NewInvalidArgumentError(op, "sort selector must not be nil")
	}
	if dir != Ascending && dir != Descending {
		return Command{}, errors.NewInvalidArgumentError(op, "unknown sort direction")
	}
	return Command{Selector: selector, Direction: dir}, nil
}

// Batch is the ordered list of sort keys. Batches are persistent: Extend
// returns a new batch sharing no mutable state with the receiver.
type Batch struct {
	cmds []Command
}

// NewBatch starts a batch with a single primary sort command.
func NewBatch(cmd Command) Batch {
	return Batch{cmds: []Command{cmd}}
}

// Extend returns a new batch with cmd appended as a tie-breaking key. The
// receiver is untouched.
func (b Batch) Extend(cmd Command) Batch {
	cmds := make([]Command, 0, len(b.cmds)+1)
	cmds = append(cmds, b.cmds...)
	cmds = append(cmds, cmd)
	return Batch{cmds: cmds}
}

// Len returns the number of sort keys in the batch.
func (b Batch) Len() int { return len(b.cmds) }

// Pair is one (label, value) element of the sorted result.
type Pair struct {
	Label any
	Value any
}

// Execution is the deferred, memoized application of a batch to a paired
// (index, values) source. The first call to Pairs drains the source, applies
// the batch as a stable multi-key sort, and caches the result; subsequent
// calls reuse the cache without re-sorting. The cache is written at most once
// and nothing else mutates an Execution, which is what makes the
// single-threaded memoization safe.
type Execution struct {
	source     iterator.Source // Multi(index, values) cursor producer
	batch      Batch
	bufferHint int
	done       bool
	pairs      []Pair
}

// NewExecution builds a deferred sort over source, a producer of
// Multi(index, values) cursors.
func NewExecution(source iterator.Source, batch Batch, bufferHint int) *Execution {
	return &Execution{source: source, batch: batch, bufferHint: bufferHint}
}

// Batch returns the command batch this execution applies.
func (e *Execution) Batch() Batch { return e.batch }

// Pairs realizes the sorted (label, value) sequence, computing it on first use.
func (e *Execution) Pairs() []Pair {
	if e.done {
		return e.pairs
	}
	hint := e.bufferHint
	if hint < 0 {
		hint = 0
	}
	pairs := make([]Pair, 0, hint)
	it := e.source()
	for it.Next() {
		pv, _ := it.Current().([]any)
		if len(pv) == 2 {
			pairs = append(pairs, Pair{Label: pv[0], Value: pv[1]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return e.less(pairs[i], pairs[j])
	})
	e.pairs = pairs
	e.done = true
	return e.pairs
}

// Values returns the sorted values.
func (e *Execution) Values() []any {
	pairs := e.Pairs()
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return out
}

// Labels returns the sorted labels.
func (e *Execution) Labels() []any {
	pairs := e.Pairs()
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = p.Label
	}
	return out
}

// less compares two pairs under the batch: the first key is primary and each
// subsequent key breaks ties in chained order.
func (e *Execution) less(a, b Pair) bool {
	for _, cmd := range e.batch.cmds {
		ka := cmd.Selector(a.Value, a.Label)
		kb := cmd.Selector(b.Value, b.Label)
		c := Compare(ka, kb)
		if c == 0 {
			continue
		}
		if cmd.Direction == Descending {
			return c > 0
		}
		return c < 0
	}
	return false
}
