package section

import "github.com/arloliu/dex/reader"

// StringIDItem is one entry of the string_ids table: an offset to a
// StringDataItem.
type StringIDItem struct {
	StringDataOff uint32
}

// ParseStringIDItem reads one StringIDItem at r's current cursor.
func ParseStringIDItem(r *reader.Reader) (StringIDItem, error) {
	off, err := r.U32()
	if err != nil {
		return StringIDItem{}, err
	}

	return StringIDItem{StringDataOff: off}, nil
}

// StringDataItem is the MUTF-8 payload a StringIDItem points at: the decoded
// UTF-16 code unit count, the string's value, and the exact bytes consumed.
type StringDataItem struct {
	UTF16Size int
	Value     string
	RawBytes  []byte
}

// ParseStringDataItem reads one StringDataItem at r's current cursor.
func ParseStringDataItem(r *reader.Reader) (StringDataItem, error) {
	size, err := r.Uleb128()
	if err != nil {
		return StringDataItem{}, err
	}
	value, raw, err := r.MUTF8String(int(size))
	if err != nil {
		return StringDataItem{}, err
	}

	return StringDataItem{UTF16Size: int(size), Value: value, RawBytes: raw}, nil
}

// TypeIDItem is one entry of the type_ids table: an index into string_ids
// naming the type's descriptor.
type TypeIDItem struct {
	DescriptorIdx uint32
}

// ParseTypeIDItem reads one TypeIDItem at r's current cursor.
func ParseTypeIDItem(r *reader.Reader) (TypeIDItem, error) {
	idx, err := r.U32()
	if err != nil {
		return TypeIDItem{}, err
	}

	return TypeIDItem{DescriptorIdx: idx}, nil
}

// ProtoIDItem is one entry of the proto_ids table: shorty descriptor, return
// type, and optional parameter type list.
type ProtoIDItem struct {
	ShortyIdx     uint32
	ReturnTypeIdx uint32
	ParametersOff uint32
}

// ParseProtoIDItem reads one ProtoIDItem at r's current cursor.
func ParseProtoIDItem(r *reader.Reader) (ProtoIDItem, error) {
	shorty, err := r.U32()
	if err != nil {
		return ProtoIDItem{}, err
	}
	retType, err := r.U32()
	if err != nil {
		return ProtoIDItem{}, err
	}
	params, err := r.U32()
	if err != nil {
		return ProtoIDItem{}, err
	}

	return ProtoIDItem{ShortyIdx: shorty, ReturnTypeIdx: retType, ParametersOff: params}, nil
}

// FieldIDItem is one entry of the field_ids table.
type FieldIDItem struct {
	ClassIdx uint16
	TypeIdx  uint16
	NameIdx  uint32
}

// ParseFieldIDItem reads one FieldIDItem at r's current cursor.
func ParseFieldIDItem(r *reader.Reader) (FieldIDItem, error) {
	classIdx, err := r.U16()
	if err != nil {
		return FieldIDItem{}, err
	}
	typeIdx, err := r.U16()
	if err != nil {
		return FieldIDItem{}, err
	}
	nameIdx, err := r.U32()
	if err != nil {
		return FieldIDItem{}, err
	}

	return FieldIDItem{ClassIdx: classIdx, TypeIdx: typeIdx, NameIdx: nameIdx}, nil
}

// MethodIDItem is one entry of the method_ids table.
type MethodIDItem struct {
	ClassIdx uint16
	ProtoIdx uint16
	NameIdx  uint32
}

// ParseMethodIDItem reads one MethodIDItem at r's current cursor.
func ParseMethodIDItem(r *reader.Reader) (MethodIDItem, error) {
	classIdx, err := r.U16()
	if err != nil {
		return MethodIDItem{}, err
	}
	protoIdx, err := r.U16()
	if err != nil {
		return MethodIDItem{}, err
	}
	nameIdx, err := r.U32()
	if err != nil {
		return MethodIDItem{}, err
	}

	return MethodIDItem{ClassIdx: classIdx, ProtoIdx: protoIdx, NameIdx: nameIdx}, nil
}
