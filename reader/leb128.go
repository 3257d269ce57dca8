package reader

import "github.com/arloliu/dex/errs"

// Uleb128 reads an unsigned Little-Endian Base-128 integer: bytes are read
// while the continuation bit (bit 7) is set, and their low 7 bits
// accumulated little-end-first. Fails if the value does not fit in 32 bits
// or the encoding runs past 5 bytes.
func (r *Reader) Uleb128() (uint32, error) {
	var result uint32
	for i := 0; ; i++ {
		if i == 5 {
			return 0, errs.ErrOutOfBounds
		}
		b, err := r.U8()
		if err != nil {
			return 0, err
		}
		if i == 4 && b&0x70 != 0 {
			return 0, errs.ErrOutOfBounds
		}
		result |= uint32(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			break
		}
	}

	return result, nil
}

// Sleb128 reads a signed Little-Endian Base-128 integer: same accumulation as
// Uleb128, but the result is sign-extended from bit 6 of the final
// (continuation-free) byte. Fails if the encoding runs past 5 bytes.
func (r *Reader) Sleb128() (int32, error) {
	var result int32
	var shift uint
	var b uint8
	var err error
	for {
		if shift >= 35 {
			return 0, errs.ErrOutOfBounds
		}
		b, err = r.U8()
		if err != nil {
			return 0, err
		}
		result |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 32 && b&0x40 != 0 {
		result |= -1 << shift
	}

	return result, nil
}
