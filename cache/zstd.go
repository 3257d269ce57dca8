package cache

// ZstdCompressor compresses cache entries with Zstandard, favoring
// compression ratio over speed. Best suited for archiving decoded results of
// large DEX files where re-parsing cost outweighs compression latency.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
