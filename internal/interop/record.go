// Package interop converts between baked frames and Apache Arrow records,
// the library's columnar interchange boundary. Conversion is eager: the
// frame is realized before the record is built, and a constructed frame
// copies the record's cells rather than holding the Arrow buffers alive.
package interop

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/egret-data/egret/internal/dataframe"
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/series"
)

// ToRecord realizes df and builds an Arrow record from its columns. Column
// types are inferred per column: integers map to int64, floats to float64,
// bools to boolean, everything else to utf8; nil cells become nulls. The
// caller owns the returned record and must Release it.
func ToRecord(df *dataframe.DataFrame) (arrow.Record, error) {
	if df == nil {
		return nil, errors.NewInvalidArgumentError("ToRecord", "dataframe must not be nil")
	}
	names := df.GetColumnNames()
	rows := df.ToValues()

	mem := memory.NewGoAllocator()
	fields := make([]arrow.Field, len(names))
	cols := make([]arrow.Array, len(names))
	for i, name := range names {
		column := make([]any, len(rows))
		for j, row := range rows {
			if i < len(row) {
				column[j] = row[i]
			}
		}
		arr, dt := buildArray(mem, column)
		fields[i] = arrow.Field{Name: name, Type: dt, Nullable: true}
		cols[i] = arr
	}

	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, cols, int64(len(rows)))
	for _, col := range cols {
		col.Release()
	}
	return rec, nil
}

// FromRecord builds a realized frame copying rec's cells. Null cells become
// nil values.
func FromRecord(rec arrow.Record) (*dataframe.DataFrame, error) {
	if rec == nil {
		return nil, errors.NewInvalidArgumentError("FromRecord", "record must not be nil")
	}
	schema := rec.Schema()
	names := make([]string, len(schema.Fields()))
	for i, f := range schema.Fields() {
		names[i] = f.Name
	}

	numRows := int(rec.NumRows())
	rows := make([][]any, numRows)
	for j := range rows {
		rows[j] = make([]any, len(names))
	}
	for i := range names {
		column, err := readArray(rec.Column(i))
		if err != nil {
			return nil, err
		}
		for j, v := range column {
			rows[j][i] = v
		}
	}
	return dataframe.New(names, rows), nil
}

// SeriesToArray realizes s into a single Arrow array.
func SeriesToArray(s *series.Series) (arrow.Array, error) {
	if s == nil {
		return nil, errors.NewInvalidArgumentError("SeriesToArray", "series must not be nil")
	}
	mem := memory.NewGoAllocator()
	arr, _ := buildArray(mem, s.ToValues())
	return arr, nil
}

// SeriesFromArray builds a realized series copying arr's cells.
func SeriesFromArray(name string, arr arrow.Array) (*series.Series, error) {
	values, err := readArray(arr)
	if err != nil {
		return nil, err
	}
	return series.New(name, values), nil
}

func buildArray(mem memory.Allocator, values []any) (arrow.Array, arrow.DataType) {
	switch inferType(values) {
	case arrow.INT64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			n, _ := asInt64(v)
			b.Append(n)
		}
		return b.NewArray(), arrow.PrimitiveTypes.Int64
	case arrow.FLOAT64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			f, _ := asFloat64(v)
			b.Append(f)
		}
		return b.NewArray(), arrow.PrimitiveTypes.Float64
	case arrow.BOOL:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			b.Append(v.(bool))
		}
		return b.NewArray(), arrow.FixedWidthTypes.Boolean
	default:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, v := range values {
			if v == nil {
				b.AppendNull()
				continue
			}
			if s, ok := v.(string); ok {
				b.Append(s)
			} else {
				b.Append(fmt.Sprint(v))
			}
		}
		return b.NewArray(), arrow.BinaryTypes.String
	}
}

func readArray(arr arrow.Array) ([]any, error) {
	out := make([]any, arr.Len())
	switch typed := arr.(type) {
	case *array.Int64:
		for i := range out {
			if !typed.IsNull(i) {
				out[i] = typed.Value(i)
			}
		}
	case *array.Float64:
		for i := range out {
			if !typed.IsNull(i) {
				out[i] = typed.Value(i)
			}
		}
	case *array.Boolean:
		for i := range out {
			if !typed.IsNull(i) {
				out[i] = typed.Value(i)
			}
		}
	case *array.String:
		for i := range out {
			if !typed.IsNull(i) {
				out[i] = typed.Value(i)
			}
		}
	default:
		return nil, errors.NewInvalidArgumentError("FromRecord",
			fmt.Sprintf("unsupported arrow array type %s", arr.DataType().Name()))
	}
	return out, nil
}

// inferType picks the narrowest Arrow type covering every non-nil value.
// Integers widen to float64 when mixed with floats; any other mix falls back
// to utf8.
func inferType(values []any) arrow.Type {
	sawInt, sawFloat, sawBool, sawOther := false, false, false, false
	empty := true
	for _, v := range values {
		if v == nil {
			continue
		}
		empty = false
		switch {
		case isInt(v):
			sawInt = true
		case isFloat(v):
			sawFloat = true
		default:
			if _, ok := v.(bool); ok {
				sawBool = true
			} else {
				sawOther = true
			}
		}
	}
	switch {
	case empty, sawOther:
		return arrow.STRING
	case sawBool && !sawInt && !sawFloat:
		return arrow.BOOL
	case sawBool:
		return arrow.STRING
	case sawFloat:
		return arrow.FLOAT64
	default:
		return arrow.INT64
	}
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}
