// Package reader implements a seekable little-endian byte reader tailored to
// the DEX container format: fixed-width primitives, LEB128 variable-length
// integers, MUTF-8 strings, offset/alignment bookkeeping, and the
// save-seek-restore pattern DEX uses to follow optional offset fields.
package reader

import (
	"math"

	"github.com/arloliu/dex/endian"
	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/internal/options"
)

// HeaderSize is the fixed size of the DEX header, and the minimum valid value
// for any non-zero offset into the file.
const HeaderSize = 112

// Reader reads little-endian primitives from an in-memory DEX image,
// tracking a single cursor position.
type Reader struct {
	data     []byte
	pos      int
	engine   endian.EndianEngine
	lenient  bool // accept nonzero "unused" bytes instead of failing
}

// Option configures a Reader at construction time.
type Option = options.Option[*Reader]

// WithEndian overrides the byte-order engine used for multi-byte reads. DEX
// files are always little-endian on disk; this exists for symmetry with the
// rest of the decoder's pluggable-endianness design.
func WithEndian(e endian.EndianEngine) Option {
	return options.NoError[*Reader](func(r *Reader) {
		r.engine = e
	})
}

// WithLenientUnused makes the reader ignore nonzero bytes in fields the DEX
// spec declares unused (Ø) instead of returning errs.ErrUnusedNonZero.
func WithLenientUnused() Option {
	return options.NoError[*Reader](func(r *Reader) {
		r.lenient = true
	})
}

// New creates a Reader over data. The cursor starts at offset 0.
func New(data []byte, opts ...Option) *Reader {
	r := &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
	_ = options.Apply[*Reader](r, opts...)

	return r
}

// Len returns the total number of bytes in the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Tell returns the current cursor position.
func (r *Reader) Tell() int {
	return r.pos
}

// SeekAbsolute moves the cursor to an absolute byte offset. The offset may
// point past the end of the buffer; this only fails on the next read.
func (r *Reader) SeekAbsolute(offset int) {
	r.pos = offset
}

// Align advances the cursor to the next multiple of n, a no-op if already
// aligned.
func (r *Reader) Align(n int) {
	if rem := r.pos % n; rem != 0 {
		r.pos += n - rem
	}
}

// ReadExact reads exactly n bytes and advances the cursor, failing with
// errs.ErrTruncation if fewer are available.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errs.ErrTruncation
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// SplitU8 reads one byte and returns (low nibble, high nibble).
func (r *Reader) SplitU8() (uint8, uint8, error) {
	b, err := r.U8()
	if err != nil {
		return 0, 0, err
	}

	return b & 0x0f, b >> 4, nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// I16 reads a little-endian int16.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()

	return int16(v), err
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()

	return int32(v), err
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// I64 reads a little-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()

	return int64(v), err
}

// F32 reads a little-endian IEEE-754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()

	return math.Float32frombits(v), err
}

// F64 reads a little-endian IEEE-754 float64.
func (r *Reader) F64() (float64, error) {
	v, err := r.U64()

	return math.Float64frombits(v), err
}

// AssertUnused reads one byte and requires it be zero unless the reader was
// constructed with WithLenientUnused.
func (r *Reader) AssertUnused() error {
	b, err := r.U8()
	if err != nil {
		return err
	}
	if b != 0 && !r.lenient {
		return errs.ErrUnusedNonZero
	}

	return nil
}

// AssertUnusedU16 is AssertUnused for a 16-bit unused field.
func (r *Reader) AssertUnusedU16() error {
	v, err := r.U16()
	if err != nil {
		return err
	}
	if v != 0 && !r.lenient {
		return errs.ErrUnusedNonZero
	}

	return nil
}

// AssertUnusedU32 is AssertUnused for a 32-bit unused field.
func (r *Reader) AssertUnusedU32() error {
	v, err := r.U32()
	if err != nil {
		return err
	}
	if v != 0 && !r.lenient {
		return errs.ErrUnusedNonZero
	}

	return nil
}

// WithOffset saves the cursor, seeks to off, runs fn, and restores the
// cursor. It returns (false, nil) without calling fn when off == 0 (the DEX
// "absent optional" sentinel), and fails with errs.ErrOutOfBounds when
// off is nonzero but below HeaderSize. The bool return reports whether fn
// ran.
func (r *Reader) WithOffset(off uint32, fn func() error) (bool, error) {
	if off == 0 {
		return false, nil
	}
	if off < HeaderSize {
		return false, errs.ErrOutOfBounds
	}

	saved := r.pos
	r.pos = int(off)
	err := fn()
	r.pos = saved

	return true, err
}
