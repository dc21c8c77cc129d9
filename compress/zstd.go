package compress

// ZstdCompressor provides Zstandard compression, favoring ratio over speed.
// Best for a cache expected to hold many long-lived entries (e.g. a client
// connected to a server for a long session, accumulating routing tables and
// field-key lists).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
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
