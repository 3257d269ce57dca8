// Package section implements the per-entity decoders for every top-level DEX
// table: header, string/type/proto/field/method ids, class defs and data,
// code items, type lists, the annotation family, encoded values, call sites,
// and method handles.
package section

import (
	"fmt"

	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/reader"
)

// HeaderSize is the fixed byte size of the DEX header.
const HeaderSize = 0x70

const (
	endianConstant        uint32 = 0x12345678
	reverseEndianConstant uint32 = 0x78563412
)

var dexFileMagicPrefix = [4]byte{0x64, 0x65, 0x78, 0x0a} // "dex\n"

// Header is the fixed 112-byte DEX header.
type Header struct {
	Version       uint32
	Checksum      uint32
	Signature     [20]byte
	FileSize      uint32
	HeaderSize    uint32
	EndianTag     uint32
	LinkSize      uint32
	LinkOff       uint32
	MapOff        uint32
	StringIDsSize uint32
	StringIDsOff  uint32
	TypeIDsSize   uint32
	TypeIDsOff    uint32
	ProtoIDsSize  uint32
	ProtoIDsOff   uint32
	FieldIDsSize  uint32
	FieldIDsOff   uint32
	MethodIDsSize uint32
	MethodIDsOff  uint32
	ClassDefsSize uint32
	ClassDefsOff  uint32
	DataSize      uint32
	DataOff       uint32
}

// IsBigEndian reports whether the header's endian_tag is the reversed
// constant, i.e. the file was produced on a big-endian host.
func (h *Header) IsBigEndian() bool {
	return h.EndianTag == reverseEndianConstant
}

func verifyMagicAndVersion(magic [8]byte) (uint32, error) {
	if magic[0] != dexFileMagicPrefix[0] || magic[1] != dexFileMagicPrefix[1] ||
		magic[2] != dexFileMagicPrefix[2] || magic[3] != dexFileMagicPrefix[3] {
		return 0, errs.ErrBadMagic
	}
	if magic[7] != 0x00 {
		return 0, errs.ErrBadVersion
	}

	var version uint32
	for _, d := range magic[4:7] {
		if d < '0' || d > '9' {
			return 0, errs.ErrBadVersion
		}
		version = version*10 + uint32(d-'0')
	}

	return version, nil
}

// ParseHeader reads and validates the Header at r's current cursor, aligning
// to 4 bytes first.
func ParseHeader(r *reader.Reader) (*Header, error) {
	r.Align(4)

	magicBytes, err := r.ReadExact(8)
	if err != nil {
		return nil, err
	}
	var magic [8]byte
	copy(magic[:], magicBytes)

	version, err := verifyMagicAndVersion(magic)
	if err != nil {
		return nil, err
	}

	h := &Header{Version: version}

	if h.Checksum, err = r.U32(); err != nil {
		return nil, err
	}
	sig, err := r.ReadExact(20)
	if err != nil {
		return nil, err
	}
	copy(h.Signature[:], sig)

	fields := []*uint32{
		&h.FileSize, &h.HeaderSize, &h.EndianTag,
		&h.LinkSize, &h.LinkOff, &h.MapOff,
		&h.StringIDsSize, &h.StringIDsOff,
		&h.TypeIDsSize, &h.TypeIDsOff,
		&h.ProtoIDsSize, &h.ProtoIDsOff,
		&h.FieldIDsSize, &h.FieldIDsOff,
		&h.MethodIDsSize, &h.MethodIDsOff,
		&h.ClassDefsSize, &h.ClassDefsOff,
		&h.DataSize, &h.DataOff,
	}
	for _, f := range fields {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		*f = v
	}

	if h.EndianTag != endianConstant && h.EndianTag != reverseEndianConstant {
		return nil, errs.ErrBadEndianTag
	}
	if h.HeaderSize != HeaderSize {
		return nil, fmt.Errorf("header: %w", errs.ErrOutOfBounds)
	}

	return h, nil
}
