package series

import (
	"github.com/egret-data/egret/internal/config"
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/order"
)

// OrderedSeries is a sorted view of a series. It behaves as a Series whose
// producers read from the deferred sort execution, and extends the sort batch
// through ThenBy chaining. Extending returns a new OrderedSeries; the
// receiver's batch is untouched.
type OrderedSeries struct {
	*Series
	base  *Series
	batch order.Batch
}

func newOrderedSeries(base *Series, batch order.Batch) *OrderedSeries {
	cfg := config.GetGlobalConfig()
	exec := order.NewExecution(base.pairs(), batch, cfg.SortBufferHint)

	sorted := &Series{
		name: base.name,
		values: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(exec.Values(), exec.Labels())
			return it
		},
		index: index.New(base.index.Name(), func() iterator.Iterator {
			return iterator.NewSlice(exec.Labels())
		}),
	}
	return &OrderedSeries{Series: sorted, base: base, batch: batch}
}

func valueSelector(selector func(any) any) order.Selector {
	return func(value, _ any) any { return selector(value) }
}

func labelSelector(value, label any) any { return label }

func (s *Series) orderBy(op string, selector order.Selector, dir order.Direction) (*OrderedSeries, error) {
	cmd, err := order.NewCommand(op, selector, dir)
	if err != nil {
		return nil, err
	}
	return newOrderedSeries(s, order.NewBatch(cmd)), nil
}

// OrderBy sorts the series ascending by selector(value). The sort is
// deferred until the result is first realized and memoized after that.
func (s *Series) OrderBy(selector func(any) any) (*OrderedSeries, error) {
	if selector == nil {
		return nil, errors.NewInvalidArgumentError("OrderBy", "sort selector must not be nil")
	}
	return s.orderBy("OrderBy", valueSelector(selector), order.Ascending)
}

// OrderByDescending sorts the series descending by selector(value).
func (s *Series) OrderByDescending(selector func(any) any) (*OrderedSeries, error) {
	if selector == nil {
		return nil, errors.NewInvalidArgumentError("OrderByDescending", "sort selector must not be nil")
	}
	return s.orderBy("OrderByDescending", valueSelector(selector), order.Descending)
}

// OrderByIndex sorts the series ascending by its index labels.
func (s *Series) OrderByIndex() *OrderedSeries {
	os, _ := s.orderBy("OrderByIndex", labelSelector, order.Ascending)
	return os
}

// OrderByIndexDescending sorts the series descending by its index labels.
func (s *Series) OrderByIndexDescending() *OrderedSeries {
	os, _ := s.orderBy("OrderByIndexDescending", labelSelector, order.Descending)
	return os
}

func (o *OrderedSeries) thenBy(op string, selector order.Selector, dir order.Direction) (*OrderedSeries, error) {
	cmd, err := order.NewCommand(op, selector, dir)
	if err != nil {
		return nil, err
	}
	return newOrderedSeries(o.base, o.batch.Extend(cmd)), nil
}

// ThenBy adds selector(value) ascending as a tie-breaking sort key.
func (o *OrderedSeries) ThenBy(selector func(any) any) (*OrderedSeries, error) {
	if selector == nil {
		return nil, errors.NewInvalidArgumentError("ThenBy", "sort selector must not be nil")
	}
	return o.thenBy("ThenBy", valueSelector(selector), order.Ascending)
}

// ThenByDescending adds selector(value) descending as a tie-breaking sort key.
func (o *OrderedSeries) ThenByDescending(selector func(any) any) (*OrderedSeries, error) {
	if selector == nil {
		return nil, errors.NewInvalidArgumentError("ThenByDescending", "sort selector must not be nil")
	}
	return o.thenBy("ThenByDescending", valueSelector(selector), order.Descending)
}

// ThenByIndex adds the index label ascending as a tie-breaking sort key.
func (o *OrderedSeries) ThenByIndex() *OrderedSeries {
	os, _ := o.thenBy("ThenByIndex", labelSelector, order.Ascending)
	return os
}
