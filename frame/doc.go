// Package frame provides the minimal tabular data model used by catenc.
//
// A Frame is an ordered collection of named categorical (string) columns with
// a uniform row count. A Series is a row-aligned numeric label vector used at
// fit time. A NumericFrame is the numeric output of an encoding transform:
// ordered named float64 columns with the same row count and row order as the
// input Frame.
//
// Frames are not thread-safe. Each frame instance should be used by a single
// goroutine at a time.
package frame
