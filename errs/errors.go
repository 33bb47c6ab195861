// Package errs defines the sentinel errors shared across catenc packages.
//
// Callers should match errors with errors.Is; most errors returned by catenc
// wrap one of these sentinels with additional context via fmt.Errorf and the
// %w verb.
package errs

import "errors"

var (
	// ErrUnknownScheme indicates the requested encoding scheme name has no
	// registered factory. Returned at manager construction and snapshot load.
	ErrUnknownScheme = errors.New("unknown encoding scheme")

	// ErrNotFitted indicates Transform was called before a successful Fit.
	ErrNotFitted = errors.New("not fitted")

	// ErrRowCountMismatch indicates a column or label series does not match
	// the frame's row count.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrColumnMismatch indicates the input frame is missing a column that
	// was present during fit, or contains a duplicate column name.
	ErrColumnMismatch = errors.New("column mismatch")

	// ErrEmptyFrame indicates a fit or transform was attempted on a frame
	// with no columns or no rows.
	ErrEmptyFrame = errors.New("empty frame")

	// ErrNonBinaryTarget indicates the label series contains values other
	// than 0 and 1 where a binary target is required.
	ErrNonBinaryTarget = errors.New("target is not binary")

	// ErrInvalidSnapshot indicates the snapshot data is malformed: wrong
	// magic number, truncated header, or undecodable payload.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrChecksumMismatch indicates the snapshot payload checksum does not
	// match the header, i.e. the payload was corrupted or truncated.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrUnsupportedVersion indicates the snapshot was written by a newer
	// format version than this library understands.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidCompression indicates an unknown compression type in
	// configuration or in a snapshot header.
	ErrInvalidCompression = errors.New("invalid compression type")
)
