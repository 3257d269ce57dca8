package section

import "github.com/arloliu/dex/reader"

// TypeItem is one entry of a TypeList: an index into type_ids.
type TypeItem struct {
	TypeIdx uint16
}

// ParseTypeItem reads one TypeItem at r's current cursor.
func ParseTypeItem(r *reader.Reader) (TypeItem, error) {
	idx, err := r.U16()
	if err != nil {
		return TypeItem{}, err
	}

	return TypeItem{TypeIdx: idx}, nil
}

// TypeList is an interfaces_off / parameters_off target: an ordered list of
// type references, 4-byte aligned.
type TypeList struct {
	Size uint32
	List []TypeItem
}

// ParseTypeList reads a TypeList at r's current cursor, aligning to 4 bytes
// first.
func ParseTypeList(r *reader.Reader) (*TypeList, error) {
	r.Align(4)

	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	list := make([]TypeItem, size)
	for i := range list {
		item, err := ParseTypeItem(r)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	return &TypeList{Size: size, List: list}, nil
}
