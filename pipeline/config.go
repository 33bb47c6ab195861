package pipeline

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
	"github.com/arloliu/catenc/missing"
	"github.com/arloliu/catenc/profile"
	"github.com/arloliu/catenc/scheme"
)

// DefaultScheme is the encoding scheme used when the caller does not pick one.
const DefaultScheme = scheme.OneHot

// config collects construction-time settings for a Manager.
type config struct {
	profiler    *profile.Profiler
	sentinel    string
	schemeOpts  []scheme.Option
	compression format.CompressionType
}

// Option is a functional option for Manager construction.
type Option = options.Option[*config]

// WithProfiler injects a caller-owned profiler instead of a fresh one,
// letting several pipelines aggregate into shared phase statistics.
func WithProfiler(profiler *profile.Profiler) Option {
	return options.NoError(func(cfg *config) {
		cfg.profiler = profiler
	})
}

// WithSentinel sets the cell value the missing-value handler treats as
// missing. Defaults to missing.DefaultSentinel.
func WithSentinel(sentinel string) Option {
	return options.NoError(func(cfg *config) {
		cfg.sentinel = sentinel
	})
}

// WithSchemeOptions forwards scheme-specific options verbatim to the
// strategy factory, e.g. scheme.WithSmoothing for the target scheme.
func WithSchemeOptions(opts ...scheme.Option) Option {
	return options.NoError(func(cfg *config) {
		cfg.schemeOpts = append(cfg.schemeOpts, opts...)
	})
}

// WithSnapshotCompression selects the codec applied to snapshot payloads on
// Save. Defaults to Zstd.
func WithSnapshotCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// defaultConfig returns the construction defaults applied before options.
func defaultConfig() *config {
	return &config{
		sentinel:    missing.DefaultSentinel,
		compression: format.CompressionZstd,
	}
}
