package pipeline

import (
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/options"
	"github.com/arloliu/catenc/missing"
	"github.com/arloliu/catenc/profile"
	"github.com/arloliu/catenc/scheme"
)

// Phase labels used for the profiled regions around strategy calls.
const (
	PhaseFit       = "fit"
	PhaseTransform = "transform"
)

// Manager owns one encoding strategy and one missing-value handler and
// sequences fit/transform calls through both, in that order. Construction
// resolves the strategy from the scheme registry; the resolved strategy is
// fixed for the manager's lifetime, so later registrations never retarget an
// existing manager.
//
// A Manager is not thread-safe.
type Manager struct {
	scheme      string
	strategy    scheme.Strategy
	handler     *missing.Handler
	profiler    *profile.Profiler
	compression format.CompressionType
}

// New constructs an unfitted manager for the named encoding scheme.
//
// Exactly one strategy is instantiated (with any forwarded scheme options)
// and exactly one handler (with the configured sentinel). No data is read.
//
// Returns:
//   - *Manager: The constructed manager.
//   - error: ErrUnknownScheme if the name is not registered, or an option or
//     factory error. Nothing is partially constructed on failure.
func New(schemeName string, opts ...Option) (*Manager, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	strategy, err := scheme.New(schemeName, cfg.schemeOpts...)
	if err != nil {
		return nil, err
	}

	profiler := cfg.profiler
	if profiler == nil {
		profiler = profile.New()
	}

	return &Manager{
		scheme:      schemeName,
		strategy:    strategy,
		handler:     missing.New(missing.WithSentinel(cfg.sentinel)),
		profiler:    profiler,
		compression: cfg.compression,
	}, nil
}

// Fit fits the handler and then the strategy on x and the row-aligned
// target y.
//
// The handler's FitTransform runs first, producing the prepared frame the
// strategy fits on; the strategy therefore never observes raw missing-value
// sentinels. The strategy call runs inside a profiled "fit" region whose
// measurement is recorded on every exit path.
//
// Errors from either collaborator propagate unwrapped. Fit is not atomic: a
// strategy failure leaves the handler fitted. Rebuild the manager rather
// than retrying on a partially fitted one.
//
// Returns the manager itself to support chained usage:
//
//	out, err := mgr.Fit(x, y)
//	...
//	numeric, err := out.Transform(x)
func (m *Manager) Fit(x *frame.Frame, y frame.Series) (*Manager, error) {
	prepared, err := m.handler.FitTransform(x)
	if err != nil {
		return nil, err
	}

	region := m.profiler.Start(PhaseFit)
	defer region.End()

	if err := m.strategy.Fit(prepared, y); err != nil {
		return nil, err
	}

	return m, nil
}

// Transform encodes x into a numeric frame using the fitted handler and
// strategy.
//
// The handler's Transform runs first, applying the fill rules learned during
// Fit; the strategy then encodes the prepared frame inside a profiled
// "transform" region. The output has the same row count and row order as x,
// and the call is deterministic: repeated transforms of the same frame yield
// identical output.
//
// Calling Transform before a successful Fit returns an error wrapping
// errs.ErrNotFitted, raised by the collaborator that is unfit.
func (m *Manager) Transform(x *frame.Frame) (*frame.NumericFrame, error) {
	prepared, err := m.handler.Transform(x)
	if err != nil {
		return nil, err
	}

	region := m.profiler.Start(PhaseTransform)
	defer region.End()

	return m.strategy.Transform(prepared)
}

// FitTransform fits on (x, y) and then transforms the original x.
//
// The transform step re-runs missing-value preparation on x rather than
// reusing the prepared frame from the fit step. The redundant handler pass
// buys an exact guarantee: FitTransform(x, y) equals Fit(x, y) followed by
// Transform(x), column for column and row for row.
func (m *Manager) FitTransform(x *frame.Frame, y frame.Series) (*frame.NumericFrame, error) {
	if _, err := m.Fit(x, y); err != nil {
		return nil, err
	}

	return m.Transform(x)
}

// Scheme returns the registry name the manager was constructed with.
func (m *Manager) Scheme() string {
	return m.scheme
}

// Strategy returns the owned strategy instance.
func (m *Manager) Strategy() scheme.Strategy {
	return m.strategy
}

// Handler returns the owned missing-value handler.
func (m *Manager) Handler() *missing.Handler {
	return m.handler
}

// Profiler returns the profiler recording the manager's fit and transform
// phases.
func (m *Manager) Profiler() *profile.Profiler {
	return m.profiler
}
