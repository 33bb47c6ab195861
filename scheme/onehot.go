package scheme

import (
	"fmt"
	"sort"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// OneHotEncoder expands each categorical column into one 0/1 indicator
// column per category observed at fit time.
//
// Output columns are named "column=category" and emitted in fit-time column
// order with categories sorted, so the output schema is deterministic.
// Categories unseen during fit produce all-zero indicators at transform time.
//
// Fitted state lives in exported fields for snapshot encoding; treat them as
// read-only.
type OneHotEncoder struct {
	// Columns is the fit-time column order.
	Columns []string
	// Categories maps column name to its sorted unique categories.
	Categories map[string][]string
	// Fitted reports whether Fit completed.
	Fitted bool
}

var _ Strategy = (*OneHotEncoder)(nil)

// NewOneHotEncoder creates an unfitted one-hot encoder.
//
// The encoder consumes no scheme-specific configuration; opts are validated
// and otherwise ignored so shared pipeline options remain forwardable.
func NewOneHotEncoder(opts ...Option) (*OneHotEncoder, error) {
	if _, err := newConfig(opts...); err != nil {
		return nil, err
	}

	return &OneHotEncoder{}, nil
}

// Fit records the sorted unique categories of every column in x.
//
// The target series is unused by one-hot encoding but still validated for
// row alignment so all strategies share one fit contract.
func (e *OneHotEncoder) Fit(x *frame.Frame, y frame.Series) error {
	if err := validateFitInput(x, y); err != nil {
		return err
	}

	e.Columns = x.ColumnNames()
	e.Categories = make(map[string][]string, len(e.Columns))
	for _, name := range e.Columns {
		values, _ := x.Column(name)
		seen := make(map[string]struct{})
		for _, v := range values {
			seen[v] = struct{}{}
		}
		categories := make([]string, 0, len(seen))
		for c := range seen {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		e.Categories[name] = categories
	}
	e.Fitted = true

	return nil
}

// Transform expands x into indicator columns using the fit-time categories.
func (e *OneHotEncoder) Transform(x *frame.Frame) (*frame.NumericFrame, error) {
	if !e.Fitted {
		return nil, fmt.Errorf("%w: onehot encoder", errs.ErrNotFitted)
	}
	if err := requireColumns(x, e.Columns); err != nil {
		return nil, err
	}

	out := frame.NewNumeric()
	for _, name := range e.Columns {
		values, _ := x.Column(name)
		for _, category := range e.Categories[name] {
			indicator := make([]float64, len(values))
			for i, v := range values {
				if v == category {
					indicator[i] = 1
				}
			}
			if err := out.AddColumn(name+"="+category, indicator); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
