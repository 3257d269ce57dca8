// Package cache provides a content-hash-keyed decode cache for assembled DEX
// files, so that re-parsing an unchanged .dex blob can be skipped entirely.
// Cache entries are gob-encoded and optionally compressed with one of several
// general-purpose algorithms before being stored.
package cache

import "fmt"

// CompressionType selects the algorithm used to compress a cache entry
// before it is stored.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores entries uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd uses Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 uses the S2 Snappy variant.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 uses LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a cache entry's serialized bytes before storage.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed cache entry to its serialized form.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("cache: unsupported compression type: %s", compressionType)
}
