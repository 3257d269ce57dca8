// Package errs defines the sentinel errors returned by every decoding stage
// of this module: the byte reader, the instruction decoder, and the section
// decoders. Callers should compare with errors.Is, or errors.As against the
// detail types below when structured context is needed.
package errs

import "errors"

var (
	// ErrIO indicates the underlying byte source failed or returned fewer
	// bytes than requested.
	ErrIO = errors.New("dex: io error")

	// ErrBadMagic indicates the DEX magic prefix did not match "dex\n".
	ErrBadMagic = errors.New("dex: bad magic")

	// ErrBadVersion indicates the 4-byte version field was not three ASCII
	// digits followed by a NUL.
	ErrBadVersion = errors.New("dex: bad version")

	// ErrBadEndianTag indicates the header's endian_tag field was neither
	// the forward nor reversed endian constant.
	ErrBadEndianTag = errors.New("dex: bad endian tag")

	// ErrBadUtf8 indicates a MUTF-8 byte stream violated one of the three
	// structural decoding rules. See Utf8Error for the offending byte.
	ErrBadUtf8 = errors.New("dex: bad mutf-8 encoding")

	// ErrTruncation indicates EOF was reached in the middle of a structured
	// read.
	ErrTruncation = errors.New("dex: truncated data")

	// ErrOutOfBounds indicates an offset below the header, an index at or
	// beyond its section's bound, or a payload size inconsistent with the
	// stream.
	ErrOutOfBounds = errors.New("dex: out of bounds")

	// ErrUnknownOpcode indicates the decoded opcode byte has no entry in the
	// opcode table for the active mode. See OpcodeError for the value.
	ErrUnknownOpcode = errors.New("dex: unknown opcode")

	// ErrUnknownFormat indicates an instruction format tag had no decoding
	// rule. Reaching this error indicates a bug in the opcode table.
	ErrUnknownFormat = errors.New("dex: unknown instruction format")

	// ErrBadEncodedValue indicates an EncodedValue's value_arg violated the
	// per-value_type constraint table. See EncodedValueError for detail.
	ErrBadEncodedValue = errors.New("dex: bad encoded value")

	// ErrUnusedNonZero indicates a byte specified as unused (Ø) in the DEX
	// spec was observed nonzero while the reader is in strict mode.
	ErrUnusedNonZero = errors.New("dex: unused byte is nonzero")

	// ErrBadTypeCode indicates a MapItem carried a type-code with no known
	// meaning.
	ErrBadTypeCode = errors.New("dex: bad map type code")
)

// Utf8Error carries the byte and string-relative offset that violated MUTF-8
// structural decoding, wrapping ErrBadUtf8.
type Utf8Error struct {
	Byte   byte
	Offset int
}

func (e *Utf8Error) Error() string {
	return ErrBadUtf8.Error()
}

func (e *Utf8Error) Unwrap() error {
	return ErrBadUtf8
}

// OpcodeError carries the numeric value that failed opcode lookup, wrapping
// ErrUnknownOpcode.
type OpcodeError struct {
	Value uint16
}

func (e *OpcodeError) Error() string {
	return ErrUnknownOpcode.Error()
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// EncodedValueError carries the value_type/value_arg pair that violated the
// constraint table, wrapping ErrBadEncodedValue.
type EncodedValueError struct {
	ValueType uint8
	ValueArg  uint8
}

func (e *EncodedValueError) Error() string {
	return ErrBadEncodedValue.Error()
}

func (e *EncodedValueError) Unwrap() error {
	return ErrBadEncodedValue
}

// TypeCodeError carries the raw uint16 value that failed map type-code
// validation, wrapping ErrBadTypeCode.
type TypeCodeError struct {
	Value uint16
}

func (e *TypeCodeError) Error() string {
	return ErrBadTypeCode.Error()
}

func (e *TypeCodeError) Unwrap() error {
	return ErrBadTypeCode
}
