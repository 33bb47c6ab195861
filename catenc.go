// Package catenc transforms categorical columns of tabular data into numeric
// representations for downstream statistical modeling.
//
// The library is an orchestration layer over pluggable encoding strategies:
// a registry maps scheme names to strategy factories, a Manager sequences
// missing-value normalization and encoding through a uniform fit/transform
// lifecycle, profiled regions measure the two expensive phases, and versioned
// snapshots persist a fitted pipeline so it reloads with identical transform
// output.
//
// # Core Features
//
//   - Four built-in encoding schemes: onehot, target, leave_one_out, woe
//   - Open registry: new schemes plug in at runtime without library changes
//   - Missing-value normalization always precedes encoding, at fit and at
//     transform time
//   - Scoped time/allocation profiling around fit and transform
//   - Versioned, checksummed, optionally compressed snapshots (Zstd, S2,
//     LZ4) with exact round-trip of fitted state
//
// # Basic Usage
//
// Fitting and applying an encoding pipeline:
//
//	import "github.com/arloliu/catenc"
//
//	x := frame.New()
//	x.AddColumn("city", []string{"tokyo", "osaka", "tokyo"})
//	y := frame.NewSeries("churn", []float64{1, 0, 1})
//
//	mgr, _ := catenc.NewManager("target")
//	numeric, _ := mgr.FitTransform(x, y)
//
// Persisting and reloading the fitted pipeline:
//
//	_ = mgr.Save("churn-encoder.cenc")
//	restored, _ := catenc.Load("churn-encoder.cenc")
//	same, _ := restored.Transform(x) // identical to numeric
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pipeline
// and scheme packages, simplifying the most common use cases. For
// fine-grained control (custom sentinels, profiler injection, snapshot
// compression), use the pipeline package directly.
package catenc

import (
	"github.com/arloliu/catenc/internal/hash"
	"github.com/arloliu/catenc/pipeline"
	"github.com/arloliu/catenc/scheme"
)

// NewManager creates an unfitted encoding manager for the named scheme.
//
// Parameters:
//   - schemeName: A registered scheme name ("onehot", "target",
//     "leave_one_out", "woe", or any name added via Register)
//   - opts: Optional configuration (see pipeline.Option)
//
// Returns:
//   - *pipeline.Manager: The created manager.
//   - error: errs.ErrUnknownScheme if the name is not registered.
//
// Example:
//
//	mgr, err := catenc.NewManager("woe",
//	    pipeline.WithSchemeOptions(scheme.WithRegularization(1.0)),
//	)
func NewManager(schemeName string, opts ...pipeline.Option) (*pipeline.Manager, error) {
	return pipeline.New(schemeName, opts...)
}

// NewDefaultManager creates a manager with the default scheme (onehot) and
// default settings. Use this when any numeric representation will do and no
// target-dependent statistics are wanted.
func NewDefaultManager(opts ...pipeline.Option) (*pipeline.Manager, error) {
	return pipeline.New(pipeline.DefaultScheme, opts...)
}

// Register makes a strategy factory available under the given scheme name
// for all managers constructed afterwards. See scheme.Register for the
// registration and snapshot-codec contract.
func Register(name string, factory scheme.Factory) {
	scheme.Register(name, factory)
}

// Load reconstructs a manager from a snapshot file written by Manager.Save.
//
// The scheme persisted in the snapshot must be registered in this process,
// otherwise Load fails with errs.ErrUnknownScheme.
func Load(path string, opts ...pipeline.Option) (*pipeline.Manager, error) {
	return pipeline.Load(path, opts...)
}

// SchemeID converts a scheme name to its 64-bit xxHash64 identifier.
//
// Scheme names are short strings; the hash gives callers a fixed-size key
// for metrics, caches, or log correlation without carrying the name around.
func SchemeID(name string) uint64 {
	return hash.ID(name)
}
