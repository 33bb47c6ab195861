package scheme

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// WOEEncoder replaces each category with its weight of evidence against a
// binary target:
//
//	woe = ln( ((events_c + r) / (events + 2r)) / ((nonEvents_c + r) / (nonEvents + 2r)) )
//
// where events are rows with target 1 and r is the additive regularization
// keeping the log odds finite for categories observed with only one target
// class. Categories unseen at fit time encode to 0, i.e. no evidence.
//
// Fit rejects target series containing values other than 0 and 1.
//
// Fitted state lives in exported fields for snapshot encoding; treat them as
// read-only.
type WOEEncoder struct {
	// Regularization is the additive count applied to event totals.
	Regularization float64
	// Columns is the fit-time column order.
	Columns []string
	// Weights maps column name to category to its weight of evidence.
	Weights map[string]map[string]float64
	// Fitted reports whether Fit completed.
	Fitted bool
}

var _ Strategy = (*WOEEncoder)(nil)

// NewWOEEncoder creates an unfitted weight-of-evidence encoder.
// WithRegularization overrides the default additive count.
func NewWOEEncoder(opts ...Option) (*WOEEncoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &WOEEncoder{Regularization: cfg.Regularization}, nil
}

// Fit learns the per-category weight of evidence of every column in x
// against the binary target y.
func (e *WOEEncoder) Fit(x *frame.Frame, y frame.Series) error {
	if err := validateFitInput(x, y); err != nil {
		return err
	}
	for _, v := range y.Values {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: found value %v", errs.ErrNonBinaryTarget, v)
		}
	}

	events := floats.Sum(y.Values)
	nonEvents := float64(y.Len()) - events
	r := e.Regularization

	e.Columns = x.ColumnNames()
	e.Weights = make(map[string]map[string]float64, len(e.Columns))

	for _, name := range e.Columns {
		values, _ := x.Column(name)
		categoryEvents := make(map[string]float64)
		categoryCounts := make(map[string]float64)
		for i, v := range values {
			categoryEvents[v] += y.Values[i]
			categoryCounts[v]++
		}

		weights := make(map[string]float64, len(categoryCounts))
		for category, count := range categoryCounts {
			good := categoryEvents[category]
			bad := count - good
			eventRate := (good + r) / (events + 2*r)
			nonEventRate := (bad + r) / (nonEvents + 2*r)
			weights[category] = math.Log(eventRate / nonEventRate)
		}
		e.Weights[name] = weights
	}
	e.Fitted = true

	return nil
}

// Transform maps every category of x to its weight of evidence; categories
// unseen during fit encode to 0.
func (e *WOEEncoder) Transform(x *frame.Frame) (*frame.NumericFrame, error) {
	if !e.Fitted {
		return nil, fmt.Errorf("%w: woe encoder", errs.ErrNotFitted)
	}
	if err := requireColumns(x, e.Columns); err != nil {
		return nil, err
	}

	out := frame.NewNumeric()
	for _, name := range e.Columns {
		values, _ := x.Column(name)
		weights := e.Weights[name]
		encoded := make([]float64, len(values))
		for i, v := range values {
			encoded[i] = weights[v] // unseen categories map to zero evidence
		}
		if err := out.AddColumn(name, encoded); err != nil {
			return nil, err
		}
	}

	return out, nil
}
