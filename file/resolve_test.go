package file_test

import (
	"testing"

	"github.com/arloliu/dex/file"
	"github.com/arloliu/dex/section"
	"github.com/stretchr/testify/require"
)

// uleb128 encodes small (<128) values as a single ULEB128 byte, sufficient
// for the tiny string lengths used in this test's fixture.
func uleb128(v int) []byte {
	return []byte{byte(v)}
}

func stringDataBytes(s string) []byte {
	return append(uleb128(len(s)), []byte(s)...)
}

// padTo4 right-pads b with zero bytes until its length is a multiple of 4,
// matching the alignment ParseMapList/ParseCodeItem expect of their offset.
func padTo4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0x00)
	}

	return b
}

// buildResolvableDex constructs a minimal but non-empty DEX image with one
// string_data/string_ids/type_ids/field_ids/method_ids/class_defs/code
// entry each, wired together for the file package's resolve helpers.
func buildResolvableDex(t *testing.T) ([]byte, uint32) {
	t.Helper()

	pos := 0x70 // sections start right after the fixed header

	stringData := []byte{}
	stringData = append(stringData, stringDataBytes("Lfoo;")...)
	stringData = append(stringData, stringDataBytes("bar")...)
	stringDataOff := pos
	stringOffsets := []uint32{
		uint32(stringDataOff),                                 // "Lfoo;"
		uint32(stringDataOff + len(stringDataBytes("Lfoo;"))), // "bar"
	}
	stringData = padTo4(stringData)
	pos += len(stringData)

	var stringIDs []byte
	for _, off := range stringOffsets {
		stringIDs = append(stringIDs, u32le(off)...)
	}
	stringIDsOff := pos
	pos += len(stringIDs)

	typeIDs := u32le(0) // type[0].descriptor_idx = string[0] ("Lfoo;")
	typeIDsOff := pos
	pos += len(typeIDs)

	var fieldIDs []byte
	fieldIDs = append(fieldIDs, 0x00, 0x00) // class_idx
	fieldIDs = append(fieldIDs, 0x00, 0x00) // type_idx
	fieldIDs = append(fieldIDs, u32le(1)...) // name_idx = "bar"
	fieldIDsOff := pos
	pos += len(fieldIDs)

	var methodIDs []byte
	methodIDs = append(methodIDs, 0x00, 0x00) // class_idx
	methodIDs = append(methodIDs, 0x00, 0x00) // proto_idx
	methodIDs = append(methodIDs, u32le(1)...) // name_idx = "bar"
	methodIDsOff := pos
	pos += len(methodIDs)

	var classDefs []byte
	classDefs = append(classDefs, u32le(0)...)          // class_idx
	classDefs = append(classDefs, u32le(0)...)          // access_flags
	classDefs = append(classDefs, u32le(file.NoIndexValue)...) // superclass_idx = NO_INDEX
	classDefs = append(classDefs, u32le(0)...)          // interfaces_off
	classDefs = append(classDefs, u32le(file.NoIndexValue)...) // source_file_idx = NO_INDEX
	classDefs = append(classDefs, u32le(0)...)          // annotations_off
	classDefs = append(classDefs, u32le(0)...)          // class_data_off
	classDefs = append(classDefs, u32le(0)...)          // static_values_off
	classDefsOff := pos
	pos += len(classDefs)

	// return-void: format10x, opcode 0x0e, unused high byte 0x00.
	code := []byte{
		0x01, 0x00, // registers_size
		0x00, 0x00, // ins_size
		0x00, 0x00, // outs_size
		0x00, 0x00, // tries_size
	}
	code = append(code, u32le(0)...) // debug_info_off
	code = append(code, u32le(1)...) // insns_size (code units)
	code = append(code, 0x0e, 0x00)  // return-void
	codeOff := pos
	code = padTo4(code)
	pos += len(code)

	requiredTypes := []uint16{
		0x0000, 0x0001, 0x0002, 0x0003, 0x0004, 0x0005, 0x0006,
		0x2001, 0x2003, 0x1001, 0x2002, 0x2004, 0x2000, 0x2005,
		0x1003, 0x1002, 0x2006, 0x1000,
	}
	offFor := map[uint16]uint32{
		0x0001: uint32(stringIDsOff),
		0x0002: uint32(typeIDsOff),
		0x0004: uint32(fieldIDsOff),
		0x0005: uint32(methodIDsOff),
		0x0006: uint32(classDefsOff),
		0x2001: uint32(codeOff),
		0x2002: uint32(stringDataOff),
	}
	sizeFor := map[uint16]uint32{
		0x0001: uint32(len(stringOffsets)),
		0x0002: 1,
		0x0004: 1,
		0x0005: 1,
		0x0006: 1,
		0x2001: 1,
		0x2002: uint32(len(stringOffsets)),
	}

	var mapList []byte
	mapList = append(mapList, u32le(uint32(len(requiredTypes)))...)
	for _, tc := range requiredTypes {
		mapList = append(mapList, mapItemBytes(tc, sizeFor[tc], offFor[tc])...)
	}
	mapOff := pos

	var h []byte
	h = append(h, 0x64, 0x65, 0x78, 0x0a)
	h = append(h, '0', '3', '5', 0x00)
	h = append(h, u32le(0)...)
	h = append(h, make([]byte, 20)...)
	h = append(h, u32le(0)...) // file_size, patched below
	h = append(h, u32le(0x70)...)
	h = append(h, u32le(0x12345678)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(uint32(mapOff))...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	h = append(h, u32le(0)...)
	require.Len(t, h, 0x70)

	data := append(h, stringData...)
	data = append(data, stringIDs...)
	data = append(data, typeIDs...)
	data = append(data, fieldIDs...)
	data = append(data, methodIDs...)
	data = append(data, classDefs...)
	data = append(data, code...)
	data = append(data, mapList...)
	binaryPatchFileSize(data)

	return data, uint32(codeOff)
}

func TestResolveStringAndType(t *testing.T) {
	data, _ := buildResolvableDex(t)
	f, err := file.Parse(data)
	require.NoError(t, err)

	s, ok := f.String(file.NewIndex[section.StringDataItem](0))
	require.True(t, ok)
	require.Equal(t, "Lfoo;", s)

	desc, ok := f.TypeDescriptor(file.NewIndex[section.TypeIDItem](0))
	require.True(t, ok)
	require.Equal(t, "Lfoo;", desc)

	_, ok = f.String(file.NewIndex[section.StringDataItem](99))
	require.False(t, ok)
}

func TestResolveFieldAndMethodName(t *testing.T) {
	data, _ := buildResolvableDex(t)
	f, err := file.Parse(data)
	require.NoError(t, err)

	class, typ, name, ok := f.FieldName(file.NewIndex[section.FieldIDItem](0))
	require.True(t, ok)
	require.Equal(t, "Lfoo;", class)
	require.Equal(t, "Lfoo;", typ)
	require.Equal(t, "bar", name)

	class, name, ok = f.MethodName(file.NewIndex[section.MethodIDItem](0))
	require.True(t, ok)
	require.Equal(t, "Lfoo;", class)
	require.Equal(t, "bar", name)
}

func TestResolveClassHasNoSuperclassOrSourceFile(t *testing.T) {
	data, _ := buildResolvableDex(t)
	f, err := file.Parse(data)
	require.NoError(t, err)
	require.Len(t, f.ClassDefs, 1)

	def := &f.ClassDefs[0]
	desc, ok := f.ClassDescriptor(def)
	require.True(t, ok)
	require.Equal(t, "Lfoo;", desc)

	_, ok = f.SuperclassDescriptor(def)
	require.False(t, ok)

	_, ok = f.SourceFile(def)
	require.False(t, ok)
}

func TestResolveCodeItemAt(t *testing.T) {
	data, codeOff := buildResolvableDex(t)
	f, err := file.Parse(data)
	require.NoError(t, err)
	require.Len(t, f.Code, 1)

	item, ok := f.CodeItemAt(file.NewOffset[section.CodeItem](codeOff))
	require.True(t, ok)
	require.Same(t, f.Code[0], item)

	_, ok = f.CodeItemAt(file.NewOffset[section.CodeItem](codeOff + 4))
	require.False(t, ok)
}
