package frame

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// NumericFrame is an ordered set of named float64 columns. It is the output
// shape of every encoding transform: one row per input row, in input order.
type NumericFrame struct {
	names  []string
	cols   map[string][]float64
	numRow int
}

// NewNumeric creates an empty numeric frame.
func NewNumeric() *NumericFrame {
	return &NumericFrame{
		cols: make(map[string][]float64),
	}
}

// AddColumn appends a named numeric column to the frame.
//
// Returns:
//   - error: ErrColumnMismatch on duplicate names, ErrRowCountMismatch if the
//     value count differs from the established row count.
func (f *NumericFrame) AddColumn(name string, values []float64) error {
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
// The returned slice is the frame's backing storage, not a copy.
func (f *NumericFrame) Column(name string) ([]float64, bool) {
	values, ok := f.cols[name]
	return values, ok
}

// ColumnNames returns the column names in insertion order.
// The returned slice is a copy and may be modified by the caller.
func (f *NumericFrame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)

	return names
}

// NumRows returns the number of rows in the frame.
func (f *NumericFrame) NumRows() int {
	return f.numRow
}

// NumCols returns the number of columns in the frame.
func (f *NumericFrame) NumCols() int {
	return len(f.names)
}
