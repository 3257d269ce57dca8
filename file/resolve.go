package file

import "github.com/arloliu/dex/section"

// String resolves a zero-based string_ids index to its decoded value. This
// is the single-file lookup needed to read descriptors, names, and other
// string-referencing fields; it performs no cross-file linking.
func (f *File) String(idx Index[section.StringDataItem]) (string, bool) {
	if idx.IsAbsent() || idx.Value() >= uint32(len(f.StringData)) {
		return "", false
	}

	return f.StringData[idx.Value()].Value, true
}

// TypeDescriptor resolves a zero-based type_ids index to its type descriptor
// string (e.g. "Ljava/lang/Object;").
func (f *File) TypeDescriptor(idx Index[section.TypeIDItem]) (string, bool) {
	if idx.IsAbsent() || idx.Value() >= uint32(len(f.TypeIDs)) {
		return "", false
	}

	return f.String(NewIndex[section.StringDataItem](f.TypeIDs[idx.Value()].DescriptorIdx))
}

// FieldName resolves a zero-based field_ids index to its declaring class
// descriptor, type descriptor, and name.
func (f *File) FieldName(idx Index[section.FieldIDItem]) (class, typ, name string, ok bool) {
	if idx.IsAbsent() || idx.Value() >= uint32(len(f.FieldIDs)) {
		return "", "", "", false
	}
	fid := f.FieldIDs[idx.Value()]

	class, classOK := f.TypeDescriptor(NewIndex[section.TypeIDItem](uint32(fid.ClassIdx)))
	typ, typOK := f.TypeDescriptor(NewIndex[section.TypeIDItem](uint32(fid.TypeIdx)))
	name, nameOK := f.String(NewIndex[section.StringDataItem](fid.NameIdx))

	return class, typ, name, classOK && typOK && nameOK
}

// MethodName resolves a zero-based method_ids index to its declaring class
// descriptor and name. The method's prototype (shorty/return/parameters) is
// reachable via ProtoIDs[MethodIDs[idx].ProtoIdx] for callers that need it.
func (f *File) MethodName(idx Index[section.MethodIDItem]) (class, name string, ok bool) {
	if idx.IsAbsent() || idx.Value() >= uint32(len(f.MethodIDs)) {
		return "", "", false
	}
	mid := f.MethodIDs[idx.Value()]

	class, classOK := f.TypeDescriptor(NewIndex[section.TypeIDItem](uint32(mid.ClassIdx)))
	name, nameOK := f.String(NewIndex[section.StringDataItem](mid.NameIdx))

	return class, name, classOK && nameOK
}

// ClassDescriptor resolves a ClassDefItem's class_idx to its type descriptor.
func (f *File) ClassDescriptor(def *section.ClassDefItem) (string, bool) {
	return f.TypeDescriptor(NewIndex[section.TypeIDItem](def.ClassIdx))
}

// SuperclassDescriptor resolves a ClassDefItem's superclass_idx to its type
// descriptor. Returns false if the class has no superclass (NoIndex, as with
// java.lang.Object).
func (f *File) SuperclassDescriptor(def *section.ClassDefItem) (string, bool) {
	idx := NewIndex[section.TypeIDItem](def.SuperclassIdx)
	if idx.IsAbsent() {
		return "", false
	}

	return f.TypeDescriptor(idx)
}

// SourceFile resolves a ClassDefItem's source_file_idx to its file name.
// Returns false if no debugging information is available (NoIndex).
func (f *File) SourceFile(def *section.ClassDefItem) (string, bool) {
	idx := NewIndex[section.StringDataItem](def.SourceFileIdx)
	if idx.IsAbsent() {
		return "", false
	}

	return f.String(idx)
}

// CodeItemAt resolves a code_off field (as recorded on an EncodedMethod) to
// the parsed CodeItem at that offset, if the File's code section contains
// one originating there.
func (f *File) CodeItemAt(off Offset[section.CodeItem]) (*section.CodeItem, bool) {
	if off.IsAbsent() {
		return nil, false
	}
	for _, c := range f.codeOffsets {
		if c.off == off.Value() {
			return c.item, true
		}
	}

	return nil, false
}
