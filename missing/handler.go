// Package missing normalizes missing-value sentinels in categorical columns
// before encoding.
//
// The Handler learns a per-column fill value (the most frequent non-missing
// category) during fit, then replaces every sentinel cell with that fill on
// later transforms. Encoding strategies downstream therefore never observe
// the raw sentinel.
package missing

import (
	"fmt"
	"sort"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/options"
)

// DefaultSentinel is the cell value treated as missing when no sentinel is
// configured. It mirrors the not-a-number convention of numeric tabular
// tooling rendered into a categorical string cell.
const DefaultSentinel = "NaN"

// fallbackFill is the replacement used when a column contains no observable
// category at fit time (every cell missing).
const fallbackFill = "unknown"

// Handler replaces missing-value sentinels with per-column fill values
// learned at fit time.
//
// Fields are exported so a fitted handler round-trips through the snapshot
// payload codec; callers should treat them as read-only.
//
// A Handler is not thread-safe.
type Handler struct {
	// Sentinel is the cell value denoting a missing entry.
	Sentinel string
	// Fill maps column name to the learned replacement category.
	Fill map[string]string
	// Fitted reports whether fill values have been learned.
	Fitted bool
}

// Option is a functional option for configuring a Handler.
type Option = options.Option[*Handler]

// WithSentinel sets the cell value denoting a missing entry.
func WithSentinel(sentinel string) Option {
	return options.NoError(func(h *Handler) {
		h.Sentinel = sentinel
	})
}

// New creates an unfitted handler.
//
// By default cells equal to DefaultSentinel are treated as missing; override
// with WithSentinel. The available options cannot fail, so New never does.
func New(opts ...Option) *Handler {
	h := &Handler{Sentinel: DefaultSentinel}
	_ = options.Apply(h, opts...)

	return h
}

// FitTransform learns per-column fill values from x and returns a copy of x
// with every sentinel cell replaced.
//
// The fill value for a column is its most frequent non-sentinel category;
// ties break on the lexicographically smallest category so fitting is
// deterministic. A column with no non-sentinel cells falls back to a fixed
// placeholder category.
//
// The input frame is not mutated.
func (h *Handler) FitTransform(x *frame.Frame) (*frame.Frame, error) {
	h.Fill = make(map[string]string, x.NumCols())

	for _, name := range x.ColumnNames() {
		values, _ := x.Column(name)
		h.Fill[name] = h.mostFrequent(values)
	}
	h.Fitted = true

	return h.replace(x)
}

// Transform returns a copy of x with sentinel cells replaced using the fill
// values learned during FitTransform.
//
// Returns:
//   - error: ErrNotFitted if FitTransform has not completed,
//     ErrColumnMismatch if x lacks a column seen at fit time.
func (h *Handler) Transform(x *frame.Frame) (*frame.Frame, error) {
	if !h.Fitted {
		return nil, fmt.Errorf("%w: missing handler", errs.ErrNotFitted)
	}
	for name := range h.Fill {
		if _, ok := x.Column(name); !ok {
			return nil, fmt.Errorf("%w: column %q seen at fit time is absent", errs.ErrColumnMismatch, name)
		}
	}

	return h.replace(x)
}

// mostFrequent returns the modal non-sentinel value, breaking count ties on
// the smaller string.
func (h *Handler) mostFrequent(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		if v == h.Sentinel {
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return fallbackFill
	}

	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	best := categories[0]
	for _, c := range categories[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}

	return best
}

// replace returns a clone of x with sentinel cells substituted for columns
// that have a learned fill value. Columns unknown to the handler pass
// through unchanged.
func (h *Handler) replace(x *frame.Frame) (*frame.Frame, error) {
	prepared := x.Clone()
	for name, fill := range h.Fill {
		values, ok := prepared.Column(name)
		if !ok {
			continue
		}
		for i, v := range values {
			if v == h.Sentinel {
				values[i] = fill
			}
		}
	}

	return prepared, nil
}
