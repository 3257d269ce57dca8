package section

import "github.com/arloliu/dex/reader"

// FieldAnnotation associates one field_ids index with its annotation set.
type FieldAnnotation struct {
	FieldIdx       uint32
	AnnotationsOff uint32
}

// ParseFieldAnnotation reads one FieldAnnotation at r's current cursor.
func ParseFieldAnnotation(r *reader.Reader) (FieldAnnotation, error) {
	fieldIdx, err := r.U32()
	if err != nil {
		return FieldAnnotation{}, err
	}
	off, err := r.U32()
	if err != nil {
		return FieldAnnotation{}, err
	}

	return FieldAnnotation{FieldIdx: fieldIdx, AnnotationsOff: off}, nil
}

// MethodAnnotation associates one method_ids index with its annotation set.
type MethodAnnotation struct {
	MethodIdx      uint32
	AnnotationsOff uint32
}

// ParseMethodAnnotation reads one MethodAnnotation at r's current cursor.
func ParseMethodAnnotation(r *reader.Reader) (MethodAnnotation, error) {
	methodIdx, err := r.U32()
	if err != nil {
		return MethodAnnotation{}, err
	}
	off, err := r.U32()
	if err != nil {
		return MethodAnnotation{}, err
	}

	return MethodAnnotation{MethodIdx: methodIdx, AnnotationsOff: off}, nil
}

// ParameterAnnotation associates one method_ids index with the annotation
// sets of its parameters (via an AnnotationSetRefList).
type ParameterAnnotation struct {
	MethodIdx      uint32
	AnnotationsOff uint32
}

// ParseParameterAnnotation reads one ParameterAnnotation at r's current
// cursor.
func ParseParameterAnnotation(r *reader.Reader) (ParameterAnnotation, error) {
	methodIdx, err := r.U32()
	if err != nil {
		return ParameterAnnotation{}, err
	}
	off, err := r.U32()
	if err != nil {
		return ParameterAnnotation{}, err
	}

	return ParameterAnnotation{MethodIdx: methodIdx, AnnotationsOff: off}, nil
}

// AnnotationsDirectoryItem is a class's annotations: on the class itself,
// and optionally on its fields, methods, and method parameters.
type AnnotationsDirectoryItem struct {
	ClassAnnotationsOff     uint32
	FieldsSize              uint32
	AnnotatedMethodsSize    uint32
	AnnotatedParametersSize uint32
	FieldAnnotations        []FieldAnnotation
	MethodAnnotations       []MethodAnnotation
	ParameterAnnotations    []ParameterAnnotation
}

// ParseAnnotationsDirectoryItem reads an AnnotationsDirectoryItem at r's
// current cursor, aligning to 4 bytes first.
func ParseAnnotationsDirectoryItem(r *reader.Reader) (*AnnotationsDirectoryItem, error) {
	r.Align(4)

	classAnnotationsOff, err := r.U32()
	if err != nil {
		return nil, err
	}
	fieldsSize, err := r.U32()
	if err != nil {
		return nil, err
	}
	annotatedMethodsSize, err := r.U32()
	if err != nil {
		return nil, err
	}
	annotatedParametersSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	var fieldAnnotations []FieldAnnotation
	for i := uint32(0); i < fieldsSize; i++ {
		fa, err := ParseFieldAnnotation(r)
		if err != nil {
			return nil, err
		}
		fieldAnnotations = append(fieldAnnotations, fa)
	}

	var methodAnnotations []MethodAnnotation
	for i := uint32(0); i < annotatedMethodsSize; i++ {
		ma, err := ParseMethodAnnotation(r)
		if err != nil {
			return nil, err
		}
		methodAnnotations = append(methodAnnotations, ma)
	}

	var parameterAnnotations []ParameterAnnotation
	for i := uint32(0); i < annotatedParametersSize; i++ {
		pa, err := ParseParameterAnnotation(r)
		if err != nil {
			return nil, err
		}
		parameterAnnotations = append(parameterAnnotations, pa)
	}

	return &AnnotationsDirectoryItem{
		ClassAnnotationsOff:     classAnnotationsOff,
		FieldsSize:              fieldsSize,
		AnnotatedMethodsSize:    annotatedMethodsSize,
		AnnotatedParametersSize: annotatedParametersSize,
		FieldAnnotations:        fieldAnnotations,
		MethodAnnotations:       methodAnnotations,
		ParameterAnnotations:    parameterAnnotations,
	}, nil
}

// AnnotationSetRefItem points at one AnnotationSetItem within an
// AnnotationSetRefList; the offset is 0 when the corresponding parameter
// carries no annotations.
type AnnotationSetRefItem struct {
	AnnotationsOff uint32
}

// ParseAnnotationSetRefItem reads one AnnotationSetRefItem at r's current
// cursor.
func ParseAnnotationSetRefItem(r *reader.Reader) (AnnotationSetRefItem, error) {
	off, err := r.U32()
	if err != nil {
		return AnnotationSetRefItem{}, err
	}

	return AnnotationSetRefItem{AnnotationsOff: off}, nil
}

// AnnotationSetRefList is a method's per-parameter annotation set list.
type AnnotationSetRefList struct {
	Size uint32
	List []AnnotationSetRefItem
}

// ParseAnnotationSetRefList reads an AnnotationSetRefList at r's current
// cursor, aligning to 4 bytes first.
func ParseAnnotationSetRefList(r *reader.Reader) (*AnnotationSetRefList, error) {
	r.Align(4)

	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	list := make([]AnnotationSetRefItem, size)
	for i := range list {
		item, err := ParseAnnotationSetRefItem(r)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	return &AnnotationSetRefList{Size: size, List: list}, nil
}

// AnnotationOffItem points at one AnnotationItem within an AnnotationSetItem.
type AnnotationOffItem struct {
	AnnotationOff uint32
}

// ParseAnnotationOffItem reads one AnnotationOffItem at r's current cursor.
func ParseAnnotationOffItem(r *reader.Reader) (AnnotationOffItem, error) {
	off, err := r.U32()
	if err != nil {
		return AnnotationOffItem{}, err
	}

	return AnnotationOffItem{AnnotationOff: off}, nil
}

// AnnotationSetItem is an unordered set of annotations, each an offset to an
// AnnotationItem.
type AnnotationSetItem struct {
	Size    uint32
	Entries []AnnotationOffItem
}

// ParseAnnotationSetItem reads an AnnotationSetItem at r's current cursor,
// aligning to 4 bytes first.
func ParseAnnotationSetItem(r *reader.Reader) (*AnnotationSetItem, error) {
	r.Align(4)

	size, err := r.U32()
	if err != nil {
		return nil, err
	}
	entries := make([]AnnotationOffItem, size)
	for i := range entries {
		item, err := ParseAnnotationOffItem(r)
		if err != nil {
			return nil, err
		}
		entries[i] = item
	}

	return &AnnotationSetItem{Size: size, Entries: entries}, nil
}

// AnnotationVisibility is the visibility byte of an AnnotationItem.
type AnnotationVisibility uint8

const (
	VisibilityBuild   AnnotationVisibility = 0x00
	VisibilityRuntime AnnotationVisibility = 0x01
	VisibilitySystem  AnnotationVisibility = 0x02
)

// AnnotationItem is one encoded annotation plus its visibility.
type AnnotationItem struct {
	Visibility AnnotationVisibility
	Annotation *EncodedAnnotation
}

// ParseAnnotationItem reads an AnnotationItem at r's current cursor.
func ParseAnnotationItem(r *reader.Reader) (*AnnotationItem, error) {
	visibility, err := r.U8()
	if err != nil {
		return nil, err
	}
	ann, err := ParseEncodedAnnotation(r)
	if err != nil {
		return nil, err
	}

	return &AnnotationItem{Visibility: AnnotationVisibility(visibility), Annotation: ann}, nil
}
