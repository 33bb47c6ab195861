package scheme

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/options"
)

// Strategy is the capability contract every encoding scheme implements.
//
// Fit learns the category-to-numeric mapping from a prepared frame and a
// row-aligned target series, mutating only the strategy's own state. Transform
// applies the learned mapping and returns a numeric frame with the same row
// count and row order as its input.
//
// Implementations must return an error wrapping errs.ErrNotFitted from
// Transform when Fit has not completed, and must keep their fitted state in
// exported fields (or implement gob encoding themselves) so a fitted strategy
// survives a snapshot round-trip.
type Strategy interface {
	Fit(x *frame.Frame, y frame.Series) error
	Transform(x *frame.Frame) (*frame.NumericFrame, error)
}

// Default smoothing and regularization applied when no option overrides them.
const (
	DefaultSmoothing      = 20.0
	DefaultRegularization = 0.5
)

// Config carries scheme-specific tuning forwarded verbatim from pipeline
// construction to the strategy factory. Fields not consumed by a given
// strategy are ignored by it.
type Config struct {
	// Smoothing blends category statistics toward the global prior for the
	// target and leave-one-out strategies. Higher values pull rare
	// categories harder toward the prior.
	Smoothing float64
	// Regularization is the additive count applied to event/non-event
	// totals in the woe strategy, keeping log odds finite for categories
	// observed with only one target class.
	Regularization float64
}

// Option is a functional option for scheme-specific configuration.
type Option = options.Option[*Config]

// WithSmoothing sets the smoothing weight for the target and leave-one-out
// strategies.
func WithSmoothing(smoothing float64) Option {
	return options.New(func(cfg *Config) error {
		if smoothing < 0 {
			return fmt.Errorf("smoothing must be non-negative, got %v", smoothing)
		}
		cfg.Smoothing = smoothing

		return nil
	})
}

// WithRegularization sets the additive regularization for the woe strategy.
func WithRegularization(regularization float64) Option {
	return options.New(func(cfg *Config) error {
		if regularization <= 0 {
			return fmt.Errorf("regularization must be positive, got %v", regularization)
		}
		cfg.Regularization = regularization

		return nil
	})
}

// newConfig builds a Config with defaults, then applies opts in order.
func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Smoothing:      DefaultSmoothing,
		Regularization: DefaultRegularization,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateFitInput checks the shared preconditions of every built-in Fit:
// a non-empty frame and a row-aligned target series.
func validateFitInput(x *frame.Frame, y frame.Series) error {
	if x == nil || x.NumCols() == 0 || x.NumRows() == 0 {
		return errs.ErrEmptyFrame
	}
	if y.Len() != x.NumRows() {
		return fmt.Errorf("%w: frame has %d rows, target has %d",
			errs.ErrRowCountMismatch, x.NumRows(), y.Len())
	}

	return nil
}

// requireColumns checks that every fit-time column is present in x.
func requireColumns(x *frame.Frame, columns []string) error {
	for _, name := range columns {
		if _, ok := x.Column(name); !ok {
			return fmt.Errorf("%w: column %q seen at fit time is absent", errs.ErrColumnMismatch, name)
		}
	}

	return nil
}
