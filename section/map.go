package section

import (
	"fmt"

	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/reader"
)

func errBadTypeCode(value uint16) error {
	return &errs.TypeCodeError{Value: value}
}

func errMissingMapEntry(typ TypeCode) error {
	return fmt.Errorf("map: missing required entry %#04x: %w", uint16(typ), errs.ErrOutOfBounds)
}

// TypeCode identifies a DEX map-list entry's entity kind.
type TypeCode uint16

const (
	TypeHeaderItem               TypeCode = 0x0000
	TypeStringIDItem             TypeCode = 0x0001
	TypeTypeIDItem               TypeCode = 0x0002
	TypeProtoIDItem              TypeCode = 0x0003
	TypeFieldIDItem              TypeCode = 0x0004
	TypeMethodIDItem             TypeCode = 0x0005
	TypeClassDefItem             TypeCode = 0x0006
	TypeCallSiteIDItem           TypeCode = 0x0007
	TypeMethodHandleItem         TypeCode = 0x0008
	TypeMapList                  TypeCode = 0x1000
	TypeTypeList                 TypeCode = 0x1001
	TypeAnnotationSetRefList     TypeCode = 0x1002
	TypeAnnotationSetItem        TypeCode = 0x1003
	TypeClassDataItem            TypeCode = 0x2000
	TypeCodeItem                 TypeCode = 0x2001
	TypeStringDataItem           TypeCode = 0x2002
	TypeDebugInfoItem            TypeCode = 0x2003
	TypeAnnotationItem           TypeCode = 0x2004
	TypeEncodedArrayItem         TypeCode = 0x2005
	TypeAnnotationsDirectoryItem TypeCode = 0x2006
	TypeHiddenapiClassDataItem   TypeCode = 0xF000
)

var validTypeCodes = map[TypeCode]bool{
	TypeHeaderItem: true, TypeStringIDItem: true, TypeTypeIDItem: true,
	TypeProtoIDItem: true, TypeFieldIDItem: true, TypeMethodIDItem: true,
	TypeClassDefItem: true, TypeCallSiteIDItem: true, TypeMethodHandleItem: true,
	TypeMapList: true, TypeTypeList: true, TypeAnnotationSetRefList: true,
	TypeAnnotationSetItem: true, TypeClassDataItem: true, TypeCodeItem: true,
	TypeStringDataItem: true, TypeDebugInfoItem: true, TypeAnnotationItem: true,
	TypeEncodedArrayItem: true, TypeAnnotationsDirectoryItem: true,
	TypeHiddenapiClassDataItem: true,
}

// MapItem is one entry of a MapList: which entity kind occupies a section,
// how many there are, and where the section starts.
type MapItem struct {
	ItemType TypeCode
	Size     uint32
	Offset   uint32
}

// ParseMapItem reads one MapItem at r's current cursor.
func ParseMapItem(r *reader.Reader) (MapItem, error) {
	typeValue, err := r.U16()
	if err != nil {
		return MapItem{}, err
	}
	itemType := TypeCode(typeValue)
	if !validTypeCodes[itemType] {
		return MapItem{}, errBadTypeCode(typeValue)
	}
	if err := r.AssertUnusedU16(); err != nil {
		return MapItem{}, err
	}
	size, err := r.U32()
	if err != nil {
		return MapItem{}, err
	}
	offset, err := r.U32()
	if err != nil {
		return MapItem{}, err
	}

	return MapItem{ItemType: itemType, Size: size, Offset: offset}, nil
}

// MapList is the section catalogue: every top-level section's type, count,
// and file offset.
type MapList struct {
	Size uint32
	List []MapItem
}

// ParseMapList reads a MapList at r's current cursor, aligning to 4 bytes
// first.
func ParseMapList(r *reader.Reader) (*MapList, error) {
	r.Align(4)

	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	list := make([]MapItem, size)
	for i := range list {
		item, err := ParseMapItem(r)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	return &MapList{Size: size, List: list}, nil
}

// Item returns the MapItem for typ, if present.
func (m *MapList) Item(typ TypeCode) (MapItem, bool) {
	for _, i := range m.List {
		if i.ItemType == typ {
			return i, true
		}
	}

	return MapItem{}, false
}

// Map is the by-type-code projection of a MapList: the authoritative section
// catalogue consulted by the File Assembler. Call-site, method-handle, and
// hiddenapi-class-data entries are optional.
type Map struct {
	HeaderItem               MapItem
	StringIDItem             MapItem
	TypeIDItem               MapItem
	ProtoIDItem              MapItem
	FieldIDItem              MapItem
	MethodIDItem             MapItem
	ClassDefItem             MapItem
	CodeItem                 MapItem
	DebugInfoItem            MapItem
	TypeList                 MapItem
	StringDataItem           MapItem
	AnnotationItem           MapItem
	ClassDataItem            MapItem
	EncodedArrayItem         MapItem
	AnnotationSetItem        MapItem
	AnnotationSetRefList     MapItem
	AnnotationsDirectoryItem MapItem
	MapListItem              MapItem
	CallSiteIDItem           *MapItem
	MethodHandleItem         *MapItem
	HiddenapiClassDataItem   *MapItem
}

// BuildMap projects the MapList into a Map, by-type-code.
func (m *MapList) BuildMap() (*Map, error) {
	mp := &Map{}
	required := []struct {
		typ TypeCode
		dst *MapItem
	}{
		{TypeHeaderItem, &mp.HeaderItem},
		{TypeStringIDItem, &mp.StringIDItem},
		{TypeTypeIDItem, &mp.TypeIDItem},
		{TypeProtoIDItem, &mp.ProtoIDItem},
		{TypeFieldIDItem, &mp.FieldIDItem},
		{TypeMethodIDItem, &mp.MethodIDItem},
		{TypeClassDefItem, &mp.ClassDefItem},
		{TypeCodeItem, &mp.CodeItem},
		{TypeDebugInfoItem, &mp.DebugInfoItem},
		{TypeTypeList, &mp.TypeList},
		{TypeStringDataItem, &mp.StringDataItem},
		{TypeAnnotationItem, &mp.AnnotationItem},
		{TypeClassDataItem, &mp.ClassDataItem},
		{TypeEncodedArrayItem, &mp.EncodedArrayItem},
		{TypeAnnotationSetItem, &mp.AnnotationSetItem},
		{TypeAnnotationSetRefList, &mp.AnnotationSetRefList},
		{TypeAnnotationsDirectoryItem, &mp.AnnotationsDirectoryItem},
		{TypeMapList, &mp.MapListItem},
	}
	for _, req := range required {
		item, ok := m.Item(req.typ)
		if !ok {
			return nil, errMissingMapEntry(req.typ)
		}
		*req.dst = item
	}

	if item, ok := m.Item(TypeCallSiteIDItem); ok {
		mp.CallSiteIDItem = &item
	}
	if item, ok := m.Item(TypeMethodHandleItem); ok {
		mp.MethodHandleItem = &item
	}
	if item, ok := m.Item(TypeHiddenapiClassDataItem); ok {
		mp.HiddenapiClassDataItem = &item
	}

	return mp, nil
}
