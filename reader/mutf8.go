package reader

import (
	"unicode/utf16"

	"github.com/arloliu/dex/errs"
)

// MUTF8String decodes exactly codeUnitCount UTF-16 code units from a
// Java-modified UTF-8 byte stream at the current cursor, per the classical
// single-/two-/three-byte MUTF-8 rules:
//
//   - a lone 0x00 byte is illegal (embedded NUL is encoded as the two-byte
//     overlong form C0 80);
//   - a two-byte form that decodes to a value < 0x80 (other than the 0x00
//     special case above) is an illegal overlong encoding;
//   - a three-byte form that decodes to a value < 0x800 is an illegal
//     overlong encoding.
//
// It returns the raw bytes consumed and the string reconstructed via
// UTF-16-to-UTF-8 conversion (not lenient UTF-8 decoding of the raw bytes).
func (r *Reader) MUTF8String(codeUnitCount int) (string, []byte, error) {
	start := r.pos
	units := make([]uint16, 0, codeUnitCount)

	for len(units) < codeUnitCount {
		b0, err := r.U8()
		if err != nil {
			return "", nil, err
		}

		switch {
		case b0 == 0x00:
			return "", nil, &errs.Utf8Error{Byte: b0, Offset: r.pos - start - 1}

		case b0&0x80 == 0x00: // 1-byte: 0xxxxxxx
			units = append(units, uint16(b0))

		case b0&0xe0 == 0xc0: // 2-byte: 110xxxxx 10xxxxxx
			b1, err := r.U8()
			if err != nil {
				return "", nil, err
			}
			if b1&0xc0 != 0x80 {
				return "", nil, &errs.Utf8Error{Byte: b1, Offset: r.pos - start - 1}
			}
			v := uint16(b0&0x1f)<<6 | uint16(b1&0x3f)
			if v != 0 && v < 0x80 {
				return "", nil, &errs.Utf8Error{Byte: b0, Offset: r.pos - start - 2}
			}
			units = append(units, v)

		case b0&0xf0 == 0xe0: // 3-byte: 1110xxxx 10xxxxxx 10xxxxxx
			b1, err := r.U8()
			if err != nil {
				return "", nil, err
			}
			if b1&0xc0 != 0x80 {
				return "", nil, &errs.Utf8Error{Byte: b1, Offset: r.pos - start - 1}
			}
			b2, err := r.U8()
			if err != nil {
				return "", nil, err
			}
			if b2&0xc0 != 0x80 {
				return "", nil, &errs.Utf8Error{Byte: b2, Offset: r.pos - start - 1}
			}
			v := uint16(b0&0x0f)<<12 | uint16(b1&0x3f)<<6 | uint16(b2&0x3f)
			if v < 0x800 {
				return "", nil, &errs.Utf8Error{Byte: b0, Offset: r.pos - start - 3}
			}
			units = append(units, v)

		default:
			return "", nil, &errs.Utf8Error{Byte: b0, Offset: r.pos - start - 1}
		}
	}

	raw := r.data[start:r.pos]
	s := string(utf16.Decode(units))

	return s, raw, nil
}
