package scheme

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// LeaveOneOutEncoder keeps per-category target sums and counts learned at
// fit time and encodes each category with the smoothed aggregate estimate:
//
//	encoded = (sum + smoothing*prior) / (count + smoothing)
//
// The reduced sum/count statistics are what a leave-one-out scheme needs to
// exclude an individual row's own target during training-time encoding.
// Transform has no access to the target, so it applies the full aggregate;
// this keeps the transform deterministic and makes FitTransform equal to
// Fit followed by Transform. Categories unseen at fit time encode to the
// global prior.
//
// Fitted state lives in exported fields for snapshot encoding; treat them as
// read-only.
type LeaveOneOutEncoder struct {
	// Smoothing is the prior weight applied when encoding.
	Smoothing float64
	// Columns is the fit-time column order.
	Columns []string
	// Sums maps column name to category to the summed target values.
	Sums map[string]map[string]float64
	// Counts maps column name to category to the category row count.
	Counts map[string]map[string]float64
	// Prior is the global target mean, used for unseen categories.
	Prior float64
	// Fitted reports whether Fit completed.
	Fitted bool
}

var _ Strategy = (*LeaveOneOutEncoder)(nil)

// NewLeaveOneOutEncoder creates an unfitted leave-one-out encoder.
// WithSmoothing overrides the default prior weight.
func NewLeaveOneOutEncoder(opts ...Option) (*LeaveOneOutEncoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &LeaveOneOutEncoder{Smoothing: cfg.Smoothing}, nil
}

// Fit accumulates per-category target sums and counts for every column in x.
func (e *LeaveOneOutEncoder) Fit(x *frame.Frame, y frame.Series) error {
	if err := validateFitInput(x, y); err != nil {
		return err
	}

	e.Prior = stat.Mean(y.Values, nil)
	e.Columns = x.ColumnNames()
	e.Sums = make(map[string]map[string]float64, len(e.Columns))
	e.Counts = make(map[string]map[string]float64, len(e.Columns))

	for _, name := range e.Columns {
		values, _ := x.Column(name)
		sums := make(map[string]float64)
		counts := make(map[string]float64)
		for i, v := range values {
			sums[v] += y.Values[i]
			counts[v]++
		}
		e.Sums[name] = sums
		e.Counts[name] = counts
	}
	e.Fitted = true

	return nil
}

// Transform encodes every category of x with its smoothed aggregate
// estimate, falling back to the global prior for unseen categories.
func (e *LeaveOneOutEncoder) Transform(x *frame.Frame) (*frame.NumericFrame, error) {
	if !e.Fitted {
		return nil, fmt.Errorf("%w: leave-one-out encoder", errs.ErrNotFitted)
	}
	if err := requireColumns(x, e.Columns); err != nil {
		return nil, err
	}

	out := frame.NewNumeric()
	for _, name := range e.Columns {
		values, _ := x.Column(name)
		sums := e.Sums[name]
		counts := e.Counts[name]
		encoded := make([]float64, len(values))
		for i, v := range values {
			count, ok := counts[v]
			if !ok {
				encoded[i] = e.Prior
				continue
			}
			encoded[i] = (sums[v] + e.Smoothing*e.Prior) / (count + e.Smoothing)
		}
		if err := out.AddColumn(name, encoded); err != nil {
			return nil, err
		}
	}

	return out, nil
}
