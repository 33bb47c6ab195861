// Package compress provides the compression codecs applied to catenc
// snapshot payloads.
//
// A fitted encoding pipeline serializes into a gob payload that is often
// highly repetitive (category names, per-category statistics), so compression
// pays off quickly for wide categorical data. Four codecs are available:
//
//   - None: pass-through, for tiny pipelines or debugging
//   - Zstd: best ratio, recommended for archival snapshots
//   - S2: fastest, good default for frequently rewritten snapshots
//   - LZ4: balanced speed and ratio
//
// Codecs are selected through format.CompressionType and resolved with
// GetCodec or CreateCodec. All implementations are safe for concurrent use.
package compress
