package dataframe

import (
	"fmt"

	"github.com/egret-data/egret/internal/config"
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/order"
)

// OrderedDataFrame is a sorted view of a frame, extendable with tie-breaking
// keys through ThenBy chaining. Extending returns a new OrderedDataFrame;
// the receiver's batch is untouched.
type OrderedDataFrame struct {
	*DataFrame
	base  *DataFrame
	batch order.Batch
}

func newOrderedDataFrame(base *DataFrame, batch order.Batch) *OrderedDataFrame {
	cfg := config.GetGlobalConfig()
	exec := order.NewExecution(base.pairs(), batch, cfg.SortBufferHint)

	sorted := &DataFrame{
		names: base.names,
		rows: func() iterator.Iterator {
			it, _ := iterator.NewSliceWithLabels(exec.Values(), exec.Labels())
			return it
		},
		index: index.New(base.index.Name(), func() iterator.Iterator {
			return iterator.NewSlice(exec.Labels())
		}),
	}
	return &OrderedDataFrame{DataFrame: sorted, base: base, batch: batch}
}

// normalizeSelector turns the accepted selector forms into a row-key
// selector at call time: a column name (MissingColumn if absent), a column
// position (InvalidArgument if out of range), a keyed-row func, a positional
// row func, or a raw engine selector.
func (df *DataFrame) normalizeSelector(op string, selector any) (order.Selector, error) {
	switch sel := selector.(type) {
	case string:
		col := df.GetColumnIndex(sel)
		if col < 0 {
			return nil, errors.NewMissingColumnError(op, sel)
		}
		return cellSelector(col), nil
	case int:
		if sel < 0 || sel >= len(df.names()) {
			return nil, errors.NewInvalidArgumentError(op,
				fmt.Sprintf("column position %d out of range", sel))
		}
		return cellSelector(sel), nil
	case func(Row) any:
		if sel == nil {
			return nil, errors.NewInvalidArgumentError(op, "sort selector must not be nil")
		}
		names := df.names
		return func(value, _ any) any {
			return sel(zipRow(names(), value.([]any)))
		}, nil
	case func([]any) any:
		if sel == nil {
			return nil, errors.NewInvalidArgumentError(op, "sort selector must not be nil")
		}
		return func(value, _ any) any {
			return sel(value.([]any))
		}, nil
	case order.Selector:
		if sel == nil {
			return nil, errors.NewInvalidArgumentError(op, "sort selector must not be nil")
		}
		return sel, nil
	default:
		return nil, errors.NewInvalidArgumentError(op,
			fmt.Sprintf("unsupported sort selector type %T", selector))
	}
}

func cellSelector(col int) order.Selector {
	return func(value, _ any) any {
		cells := value.([]any)
		if col >= len(cells) {
			return nil
		}
		return cells[col]
	}
}

func rowLabelSelector(_, label any) any { return label }

func (df *DataFrame) orderBy(op string, selector any, dir order.Direction) (*OrderedDataFrame, error) {
	sel, err := df.normalizeSelector(op, selector)
	if err != nil {
		return nil, err
	}
	cmd, err := order.NewCommand(op, sel, dir)
	if err != nil {
		return nil, err
	}
	return newOrderedDataFrame(df, order.NewBatch(cmd)), nil
}

// OrderBy sorts the frame ascending by selector: a column name, a column
// position, or a row-selector func. Normalization and validation happen at
// the call; the sort itself is deferred until first realization and
// memoized after that.
func (df *DataFrame) OrderBy(selector any) (*OrderedDataFrame, error) {
	return df.orderBy("OrderBy", selector, order.Ascending)
}

// OrderByDescending sorts the frame descending by selector.
func (df *DataFrame) OrderByDescending(selector any) (*OrderedDataFrame, error) {
	return df.orderBy("OrderByDescending", selector, order.Descending)
}

// OrderByIndex sorts the frame ascending by its index labels.
func (df *DataFrame) OrderByIndex() *OrderedDataFrame {
	cmd := order.Command{Selector: rowLabelSelector, Direction: order.Ascending}
	return newOrderedDataFrame(df, order.NewBatch(cmd))
}

// OrderByIndexDescending sorts the frame descending by its index labels.
func (df *DataFrame) OrderByIndexDescending() *OrderedDataFrame {
	cmd := order.Command{Selector: rowLabelSelector, Direction: order.Descending}
	return newOrderedDataFrame(df, order.NewBatch(cmd))
}

func (o *OrderedDataFrame) thenBy(op string, selector any, dir order.Direction) (*OrderedDataFrame, error) {
	sel, err := o.base.normalizeSelector(op, selector)
	if err != nil {
		return nil, err
	}
	cmd, err := order.NewCommand(op, sel, dir)
	if err != nil {
		return nil, err
	}
	return newOrderedDataFrame(o.base, o.batch.Extend(cmd)), nil
}

// ThenBy adds selector ascending as a tie-breaking sort key.
func (o *OrderedDataFrame) ThenBy(selector any) (*OrderedDataFrame, error) {
	return o.thenBy("ThenBy", selector, order.Ascending)
}

// ThenByDescending adds selector descending as a tie-breaking sort key.
func (o *OrderedDataFrame) ThenByDescending(selector any) (*OrderedDataFrame, error) {
	return o.thenBy("ThenByDescending", selector, order.Descending)
}
