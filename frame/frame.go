package frame

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrEmptyName is returned when a column is added with an empty name.
	ErrEmptyName = errors.New("frame: column name is empty")
	// ErrDuplicateColumn is returned when a column name is added twice.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")
	// ErrRowMismatch is returned when a column's length differs from the
	// frame's row count.
	ErrRowMismatch = errors.New("frame: column length does not match row count")
	// ErrUnknownColumn is returned when a named column does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column")
	// ErrColumnKind is returned when a column is accessed as the wrong kind,
	// e.g. reading a factor column through Numeric.
	ErrColumnKind = errors.New("frame: column has wrong kind")
	// ErrBadLevels is returned for an invalid explicit level set: empty,
	// repeated levels, or observed values outside the declared levels.
	ErrBadLevels = errors.New("frame: invalid level set")
)

type columnKind uint8

const (
	kindNumeric columnKind = 0x1
	kindFactor  columnKind = 0x2
)

type column struct {
	kind   columnKind
	nums   []float64
	labels []string
	levels []string // sorted distinct labels, factor columns only
}

// Frame is a column-ordered table of observations.
//
// The zero value is not usable; create frames with New.
type Frame struct {
	names []string
	cols  map[string]*column
	rows  int
}

// New creates an empty frame.
//
// The first column added fixes the row count; every later column must have
// the same length.
func New() *Frame {
	return &Frame{cols: make(map[string]*column)}
}

func (f *Frame) add(name string, length int, col *column) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, exists := f.cols[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if len(f.names) > 0 && length != f.rows {
		return fmt.Errorf("%w: column %q has %d values, frame has %d rows",
			ErrRowMismatch, name, length, f.rows)
	}

	f.rows = length
	f.names = append(f.names, name)
	f.cols[name] = col

	return nil
}

// AddNumeric appends a numeric column. The values are copied.
func (f *Frame) AddNumeric(name string, values []float64) error {
	return f.add(name, len(values), &column{
		kind: kindNumeric,
		nums: slices.Clone(values),
	})
}

// AddFactor appends a factor (categorical) column. The values are copied
// and the level set is the sorted list of distinct values.
func (f *Frame) AddFactor(name string, values []string) error {
	levels := slices.Clone(values)
	sort.Strings(levels)
	levels = slices.Compact(levels)

	return f.addFactor(name, values, levels)
}

// AddFactorWithLevels appends a factor column with an explicit level set.
//
// The given level order is kept as-is, so callers can declare levels that
// do not occur in the data (e.g. a reference level absent from a small
// sample) or pick a reference other than the lexicographically first
// value. Every observed value must be a declared level.
func (f *Frame) AddFactorWithLevels(name string, values, levels []string) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: column %q has an empty level set", ErrBadLevels, name)
	}
	set := make(map[string]bool, len(levels))
	for _, level := range levels {
		if set[level] {
			return fmt.Errorf("%w: column %q repeats level %q", ErrBadLevels, name, level)
		}
		set[level] = true
	}
	for _, v := range values {
		if !set[v] {
			return fmt.Errorf("%w: column %q has value %q outside its levels", ErrBadLevels, name, v)
		}
	}

	return f.addFactor(name, values, slices.Clone(levels))
}

func (f *Frame) addFactor(name string, values, levels []string) error {
	return f.add(name, len(values), &column{
		kind:   kindFactor,
		labels: slices.Clone(values),
		levels: levels,
	})
}

// NumRows returns the number of observations.
func (f *Frame) NumRows() int {
	return f.rows
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.names)
}

// Names returns the column names in insertion order.
func (f *Frame) Names() []string {
	return slices.Clone(f.names)
}

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// IsFactor reports whether the named column exists and is a factor.
func (f *Frame) IsFactor(name string) bool {
	col, ok := f.cols[name]
	return ok && col.kind == kindFactor
}

// Numeric returns a copy of the named numeric column.
func (f *Frame) Numeric(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.kind != kindNumeric {
		return nil, fmt.Errorf("%w: %q is a factor, not numeric", ErrColumnKind, name)
	}

	return slices.Clone(col.nums), nil
}

// Factor returns a copy of the named factor column's labels.
func (f *Frame) Factor(name string) ([]string, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.kind != kindFactor {
		return nil, fmt.Errorf("%w: %q is numeric, not a factor", ErrColumnKind, name)
	}

	return slices.Clone(col.labels), nil
}

// Levels returns the sorted distinct values of the named factor column.
func (f *Frame) Levels(name string) ([]string, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.kind != kindFactor {
		return nil, fmt.Errorf("%w: %q is numeric, not a factor", ErrColumnKind, name)
	}

	return slices.Clone(col.levels), nil
}

// String returns a short summary of the frame shape.
func (f *Frame) String() string {
	return fmt.Sprintf("Frame{Rows: %d, Cols: %d}", f.rows, len(f.names))
}
