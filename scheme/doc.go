// Package scheme defines the encoder-strategy contract, the process-wide
// scheme registry, and the built-in categorical encoding strategies.
//
// A Strategy learns a category-to-numeric mapping from a prepared frame and
// a row-aligned target series, then applies that mapping to later frames.
// Four strategies ship built in:
//
//   - onehot: one 0/1 indicator column per (column, category)
//   - target: smoothed per-category mean of the target
//   - leave_one_out: per-category aggregate estimate with smoothing
//   - woe: weight of evidence against a binary target
//
// Additional strategies plug in through Register, which makes them available
// to every pipeline constructed afterwards and registers their concrete type
// for snapshot round-trips.
//
// The registry is a plain map: populate it during program startup (init
// functions are the usual place) before any concurrent construction. The
// package provides no synchronization of its own.
package scheme
