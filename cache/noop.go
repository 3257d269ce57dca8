package cache

// NoOpCompressor bypasses compression entirely, returning input data as-is.
// Useful when the assembled File is small enough that compression overhead
// outweighs the space savings, or for benchmarking the cache layer in
// isolation from any compression algorithm.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
