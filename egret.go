// Package egret provides a lazily-evaluated, column-oriented tabular data
// library: tables (DataFrame) and typed columns (Series) modeled as
// compositions of pull-based cursors, with relational operators (filter,
// project, sort, slice, window, aggregate) that defer evaluation until a
// terminal read. This package is the sole public API for the library.
package egret

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/egret-data/egret/internal/config"
	"github.com/egret-data/egret/internal/dataframe"
	"github.com/egret-data/egret/internal/errors"
	"github.com/egret-data/egret/internal/index"
	"github.com/egret-data/egret/internal/interop"
	"github.com/egret-data/egret/internal/iterator"
	"github.com/egret-data/egret/internal/series"
	"github.com/egret-data/egret/internal/version"
)

// Core entity types.
type (
	// Iterator is the pull-based cursor contract over any lazy sequence.
	Iterator = iterator.Iterator
	// Index is the logical row-label sequence of a Series or DataFrame.
	Index = index.Index
	// Series is a single named lazy value sequence plus its Index.
	Series = series.Series
	// OrderedSeries is a sorted series extendable with ThenBy keys.
	OrderedSeries = series.OrderedSeries
	// DataFrame is a named-column lazy row sequence plus its Index.
	DataFrame = dataframe.DataFrame
	// OrderedDataFrame is a sorted frame extendable with ThenBy keys.
	OrderedDataFrame = dataframe.OrderedDataFrame
	// Row is the keyed form of a frame row, used at API boundaries.
	Row = dataframe.Row
	// Config is the library-wide configuration.
	Config = config.Config
	// Error is the structured library error carrying a condition kind.
	Error = errors.Error
)

// Condition sentinels for errors.Is checks.
var (
	ErrInvalidArgument = errors.ErrInvalidArgument
	ErrShapeMismatch   = errors.ErrShapeMismatch
	ErrEmptySequence   = errors.ErrEmptySequence
	ErrDuplicateKey    = errors.ErrDuplicateKey
	ErrMissingColumn   = errors.ErrMissingColumn
)

// NewSeries creates a Series over a value slice with the auto-generated
// 0..n-1 index.
func NewSeries(name string, values []any) *Series {
	return series.New(name, values)
}

// NewSeriesFromPairs creates a Series over parallel value and label slices.
func NewSeriesFromPairs(name string, values, labels []any) (*Series, error) {
	return series.FromPairs(name, values, labels)
}

// NewSeriesFromSource creates a Series over a cursor producer; a nil index
// derives labels from the producer's own positions.
func NewSeriesFromSource(name string, src func() Iterator, ix *Index) *Series {
	return series.FromSource(name, src, ix)
}

// NewIndex creates an Index over a label cursor producer.
func NewIndex(name string, src func() Iterator) *Index {
	return index.New(name, src)
}

// NewIndexFromLabels creates a realized Index over a label slice.
func NewIndexFromLabels(name string, labels []any) *Index {
	return index.FromLabels(name, labels)
}

// NewDataFrame creates a DataFrame over realized rows, each row an ordered
// cell slice aligned with columnNames.
func NewDataFrame(columnNames []string, rows [][]any) *DataFrame {
	return dataframe.New(columnNames, rows)
}

// NewDataFrameFromPairs creates a DataFrame over parallel row and label
// slices.
func NewDataFrameFromPairs(columnNames []string, rows [][]any, labels []any) (*DataFrame, error) {
	return dataframe.FromPairs(columnNames, rows, labels)
}

// NewDataFrameFromObjects creates a DataFrame from keyed rows, inferring
// column names from the first row.
func NewDataFrameFromObjects(objects []Row) *DataFrame {
	return dataframe.FromObjects(objects)
}

// NewDataFrameFromColumns creates a DataFrame by zipping column series in
// lockstep.
func NewDataFrameFromColumns(columns ...*Series) *DataFrame {
	return dataframe.FromColumns(columns...)
}

// Inflate lifts a series into a one-column DataFrame.
func Inflate(s *Series) *DataFrame {
	return dataframe.Inflate(s)
}

// Column looks up a frame column as a series, honoring the strict lookup
// setting: with StrictColumnLookup a missing column is an error, otherwise
// it yields an empty series.
func Column(df *DataFrame, name string) (*Series, error) {
	if config.GetGlobalConfig().StrictColumnLookup {
		return df.ExpectSeries(name)
	}
	return df.GetSeries(name), nil
}

// ToRecord realizes a frame into an Apache Arrow record.
func ToRecord(df *DataFrame) (arrow.Record, error) {
	return interop.ToRecord(df)
}

// FromRecord builds a realized frame from an Apache Arrow record.
func FromRecord(rec arrow.Record) (*DataFrame, error) {
	return interop.FromRecord(rec)
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return config.NewConfig()
}

// SetConfig installs the library-wide configuration.
func SetConfig(c Config) {
	config.SetGlobalConfig(c)
}

// GetConfig returns the current library-wide configuration.
func GetConfig() Config {
	return config.GetGlobalConfig()
}

// LoadConfigFromFile loads configuration from a YAML file.
func LoadConfigFromFile(filename string) (Config, error) {
	return config.LoadFromFile(filename)
}

// LoadConfigFromEnv loads configuration from EGRET_* environment variables,
// falling back to defaults for unset keys.
func LoadConfigFromEnv() Config {
	return config.LoadFromEnv()
}

// VersionString returns the formatted build version information.
func VersionString() string {
	return version.Info().String()
}
