package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/arloliu/dex/internal/hash"
	"github.com/arloliu/dex/internal/options"
	"github.com/arloliu/dex/internal/pool"
)

// entry is the gob-encoded, optionally compressed unit stored per key.
type entry struct {
	// Compression records which Codec compressed Payload, so Get can pick
	// the matching decompressor even if the Store's configured compression
	// changes between a Put and a later Get.
	Compression CompressionType
	Payload     []byte
}

// Option configures a Store.
type Option = options.Option[*config]

type config struct {
	compression CompressionType
}

// WithCompression selects the algorithm used to compress entries before
// they are stored. Defaults to CompressionNone.
func WithCompression(compression CompressionType) Option {
	return options.NoError[*config](func(c *config) {
		c.compression = compression
	})
}

// Store is a content-hash-keyed cache of gob-encoded values, intended to
// hold the result of decoding a DEX image so that re-parsing an unchanged
// .dex blob can be skipped. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	entries  map[uint64]entry
	codec    Codec
	compType CompressionType
}

// New creates an empty Store. By default entries are stored uncompressed;
// pass WithCompression to enable one of the built-in codecs.
func New(opts ...Option) (*Store, error) {
	cfg := &config{compression: CompressionNone}
	if err := options.Apply[*config](cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Store{
		entries:  make(map[uint64]entry),
		codec:    codec,
		compType: cfg.compression,
	}, nil
}

// ContentHash computes the content-hash key a Store uses to address the decoded
// form of the given raw DEX bytes. Callers key a Put/Get pair on the same
// source bytes to skip re-decoding an unchanged file.
func ContentHash(dexData []byte) uint64 {
	return hash.ID(string(dexData))
}

// Put gob-encodes value, compresses it per the Store's configured codec,
// and stores it under key, replacing any existing entry.
func (s *Store) Put(key uint64, value any) error {
	buf := pool.GetCacheEntryBuffer()
	defer pool.PutCacheEntryBuffer(buf)

	if err := gob.NewEncoder(buf).Encode(value); err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	payload, err := s.codec.Compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("cache: compress: %w", err)
	}
	// The codec may return a slice backed by buf, which goes back to the pool.
	payload = bytes.Clone(payload)

	s.mu.Lock()
	s.entries[key] = entry{Compression: s.compType, Payload: payload}
	s.mu.Unlock()

	return nil
}

// Get decodes the value stored under key into dst, a pointer to the
// destination type. It reports false if key is absent.
func (s *Store) Get(key uint64, dst any) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	codec, err := GetCodec(e.Compression)
	if err != nil {
		return false, err
	}

	raw, err := codec.Decompress(e.Payload)
	if err != nil {
		return false, fmt.Errorf("cache: decompress: %w", err)
	}

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(dst); err != nil {
		return false, fmt.Errorf("cache: decode: %w", err)
	}

	return true, nil
}

// Delete removes the entry stored under key, if any.
func (s *Store) Delete(key uint64) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of entries currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
