package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd gives the best compression ratio of the available codecs, making it
// the right choice when snapshots are written once and archived: per-category
// statistics tables compress 5:1 to 15:1 depending on cardinality.
//
// Two implementations exist behind build tags: a pure-Go implementation
// (klauspost/compress/zstd, the default) and a cgo implementation
// (valyala/gozstd, enabled with -tags gozstd when cgo is available).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
