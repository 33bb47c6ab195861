package frame

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// Frame is an ordered set of named categorical columns with a uniform row
// count. Column order is preserved across Clone and transform operations so
// output columns always line up with input columns.
type Frame struct {
	names  []string
	cols   map[string][]string
	numRow int
}

// New creates an empty frame.
//
// Columns are added with AddColumn; the first column added determines the
// frame's row count.
func New() *Frame {
	return &Frame{
		cols: make(map[string][]string),
	}
}

// AddColumn appends a named categorical column to the frame.
//
// The first column establishes the frame's row count; every subsequent column
// must match it. The values slice is retained, not copied.
//
// Returns:
//   - error: ErrColumnMismatch if the name is already present,
//     ErrRowCountMismatch if the value count differs from the frame's rows.
func (f *Frame) AddColumn(name string, values []string) error {
	if _, ok := f.cols[name]; ok {
		return fmt.Errorf("%w: duplicate column %q", errs.ErrColumnMismatch, name)
	}
	if len(f.names) > 0 && len(values) != f.numRow {
		return fmt.Errorf("%w: column %q has %d rows, frame has %d",
			errs.ErrRowCountMismatch, name, len(values), f.numRow)
	}

	if len(f.names) == 0 {
		f.numRow = len(values)
	}
	f.names = append(f.names, name)
	f.cols[name] = values

	return nil
}

// Column returns the values of the named column.
//
// The returned slice is the frame's backing storage, not a copy. Mutating it
// mutates the frame; use Clone first when the original must stay intact.
func (f *Frame) Column(name string) ([]string, bool) {
	values, ok := f.cols[name]
	return values, ok
}

// ColumnNames returns the column names in insertion order.
// The returned slice is a copy and may be modified by the caller.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int {
	return f.numRow
}

// NumCols returns the number of columns in the frame.
func (f *Frame) NumCols() int {
	return len(f.names)
}

// Clone returns a deep copy of the frame. Column values are copied, so
// mutations of the clone never reach the original.
func (f *Frame) Clone() *Frame {
	clone := &Frame{
		names:  make([]string, len(f.names)),
		cols:   make(map[string][]string, len(f.cols)),
		numRow: f.numRow,
	}
	copy(clone.names, f.names)
	for name, values := range f.cols {
		dup := make([]string, len(values))
		copy(dup, values)
		clone.cols[name] = dup
	}

	return clone
}
