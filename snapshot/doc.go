// Package snapshot defines the persisted format of a fitted encoding
// pipeline.
//
// A snapshot is a fixed binary header followed by a gob-encoded, optionally
// compressed payload:
//
//	offset  size  field
//	0       4     magic number ("CENC")
//	4       2     format version
//	6       1     payload compression type
//	7       1     reserved (zero)
//	8       8     xxHash64 checksum of the stored payload bytes
//	16      4     stored payload size in bytes
//	20      2     scheme name length
//	22      n     scheme name (UTF-8)
//
// All multi-byte header fields are little-endian. The scheme name is stored
// explicitly in the header rather than re-derived from the decoded strategy
// type, so loading resolves the scheme through the same registry lookup as
// ordinary construction.
//
// The format version is written on every save. Readers reject versions newer
// than their own; older versions (including 0, the pre-versioning legacy
// default) decode with the current logic, as no incompatible revision exists
// yet.
package snapshot
