package scheme

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// TargetEncoder replaces each category with the smoothed mean of the target
// over the rows carrying that category:
//
//	encoded = (n*mean + smoothing*prior) / (n + smoothing)
//
// where n is the category's row count and prior is the global target mean.
// Smoothing pulls rare categories toward the prior, limiting target leakage
// from small groups. Categories unseen at fit time encode to the prior.
//
// Fitted state lives in exported fields for snapshot encoding; treat them as
// read-only.
type TargetEncoder struct {
	// Smoothing is the prior weight applied during fitting.
	Smoothing float64
	// Columns is the fit-time column order.
	Columns []string
	// Encodings maps column name to category to its encoded value.
	Encodings map[string]map[string]float64
	// Prior is the global target mean, used for unseen categories.
	Prior float64
	// Fitted reports whether Fit completed.
	Fitted bool
}

var _ Strategy = (*TargetEncoder)(nil)

// NewTargetEncoder creates an unfitted target-mean encoder.
// WithSmoothing overrides the default prior weight.
func NewTargetEncoder(opts ...Option) (*TargetEncoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &TargetEncoder{Smoothing: cfg.Smoothing}, nil
}

// Fit learns the smoothed per-category target means of every column in x.
func (e *TargetEncoder) Fit(x *frame.Frame, y frame.Series) error {
	if err := validateFitInput(x, y); err != nil {
		return err
	}

	e.Prior = stat.Mean(y.Values, nil)
	e.Columns = x.ColumnNames()
	e.Encodings = make(map[string]map[string]float64, len(e.Columns))

	for _, name := range e.Columns {
		values, _ := x.Column(name)
		sums := make(map[string]float64)
		counts := make(map[string]float64)
		for i, v := range values {
			sums[v] += y.Values[i]
			counts[v]++
		}

		encoded := make(map[string]float64, len(sums))
		for category, sum := range sums {
			n := counts[category]
			encoded[category] = (sum + e.Smoothing*e.Prior) / (n + e.Smoothing)
		}
		e.Encodings[name] = encoded
	}
	e.Fitted = true

	return nil
}

// Transform maps every category of x to its learned encoding, falling back
// to the global prior for categories unseen during fit.
func (e *TargetEncoder) Transform(x *frame.Frame) (*frame.NumericFrame, error) {
	if !e.Fitted {
		return nil, fmt.Errorf("%w: target encoder", errs.ErrNotFitted)
	}
	if err := requireColumns(x, e.Columns); err != nil {
		return nil, err
	}

	out := frame.NewNumeric()
	for _, name := range e.Columns {
		values, _ := x.Column(name)
		encodings := e.Encodings[name]
		encoded := make([]float64, len(values))
		for i, v := range values {
			if value, ok := encodings[v]; ok {
				encoded[i] = value
			} else {
				encoded[i] = e.Prior
			}
		}
		if err := out.AddColumn(name, encoded); err != nil {
			return nil, err
		}
	}

	return out, nil
}
