package section

import "github.com/arloliu/dex/reader"

// NoIndex is the sentinel value meaning "absent" for a class_def_item's
// superclass_idx and source_file_idx fields.
const NoIndex uint32 = 0xffffffff

// ClassDefItem is one entry of the class_defs table: everything a class
// declares, as raw indices and offsets. No cross-reference resolution is
// performed here.
type ClassDefItem struct {
	ClassIdx        uint32
	AccessFlags     uint32
	SuperclassIdx   uint32
	InterfacesOff   uint32
	SourceFileIdx   uint32
	AnnotationsOff  uint32
	ClassDataOff    uint32
	StaticValuesOff uint32
}

// ParseClassDefItem reads one ClassDefItem at r's current cursor.
func ParseClassDefItem(r *reader.Reader) (ClassDefItem, error) {
	var c ClassDefItem
	fields := []*uint32{
		&c.ClassIdx, &c.AccessFlags, &c.SuperclassIdx, &c.InterfacesOff,
		&c.SourceFileIdx, &c.AnnotationsOff, &c.ClassDataOff, &c.StaticValuesOff,
	}
	for _, f := range fields {
		v, err := r.U32()
		if err != nil {
			return ClassDefItem{}, err
		}
		*f = v
	}

	return c, nil
}

// EncodedField is one field of a class_data_item's static or instance field
// list: a ULEB128 delta against the previous entry's field_ids index (0 for
// the first entry), not a resolved absolute index.
type EncodedField struct {
	FieldIdxDiff uint32
	AccessFlags  uint32
}

// ParseEncodedField reads one EncodedField at r's current cursor.
func ParseEncodedField(r *reader.Reader) (EncodedField, error) {
	diff, err := r.Uleb128()
	if err != nil {
		return EncodedField{}, err
	}
	access, err := r.Uleb128()
	if err != nil {
		return EncodedField{}, err
	}

	return EncodedField{FieldIdxDiff: diff, AccessFlags: access}, nil
}

// EncodedMethod is one method of a class_data_item's direct or virtual
// method list: a ULEB128 delta against the previous entry's method_ids index,
// plus an offset to its CodeItem (0 if abstract or native).
type EncodedMethod struct {
	MethodIdxDiff uint32
	AccessFlags   uint32
	CodeOff       uint32
}

// ParseEncodedMethod reads one EncodedMethod at r's current cursor.
func ParseEncodedMethod(r *reader.Reader) (EncodedMethod, error) {
	diff, err := r.Uleb128()
	if err != nil {
		return EncodedMethod{}, err
	}
	access, err := r.Uleb128()
	if err != nil {
		return EncodedMethod{}, err
	}
	codeOff, err := r.Uleb128()
	if err != nil {
		return EncodedMethod{}, err
	}

	return EncodedMethod{MethodIdxDiff: diff, AccessFlags: access, CodeOff: codeOff}, nil
}

// ClassDataItem is a class's field and method tables, in delta-encoded form.
type ClassDataItem struct {
	StaticFieldsSize   uint32
	InstanceFieldsSize uint32
	DirectMethodsSize  uint32
	VirtualMethodsSize uint32
	StaticFields       []EncodedField
	InstanceFields     []EncodedField
	DirectMethods      []EncodedMethod
	VirtualMethods     []EncodedMethod
}

// ParseClassDataItem reads a ClassDataItem at r's current cursor.
func ParseClassDataItem(r *reader.Reader) (*ClassDataItem, error) {
	staticFieldsSize, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	instanceFieldsSize, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	directMethodsSize, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	virtualMethodsSize, err := r.Uleb128()
	if err != nil {
		return nil, err
	}

	staticFields, err := parseEncodedFields(r, staticFieldsSize)
	if err != nil {
		return nil, err
	}
	instanceFields, err := parseEncodedFields(r, instanceFieldsSize)
	if err != nil {
		return nil, err
	}
	directMethods, err := parseEncodedMethods(r, directMethodsSize)
	if err != nil {
		return nil, err
	}
	virtualMethods, err := parseEncodedMethods(r, virtualMethodsSize)
	if err != nil {
		return nil, err
	}

	return &ClassDataItem{
		StaticFieldsSize:   staticFieldsSize,
		InstanceFieldsSize: instanceFieldsSize,
		DirectMethodsSize:  directMethodsSize,
		VirtualMethodsSize: virtualMethodsSize,
		StaticFields:       staticFields,
		InstanceFields:     instanceFields,
		DirectMethods:      directMethods,
		VirtualMethods:     virtualMethods,
	}, nil
}

func parseEncodedFields(r *reader.Reader, n uint32) ([]EncodedField, error) {
	out := make([]EncodedField, n)
	for i := range out {
		f, err := ParseEncodedField(r)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}

	return out, nil
}

func parseEncodedMethods(r *reader.Reader, n uint32) ([]EncodedMethod, error) {
	out := make([]EncodedMethod, n)
	for i := range out {
		m, err := ParseEncodedMethod(r)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}
