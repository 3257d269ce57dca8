package section_test

import (
	"testing"

	"github.com/arloliu/dex/reader"
	"github.com/arloliu/dex/section"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotationSetItem(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // size = 1
		0x20, 0x00, 0x00, 0x00, // annotation_off
	}
	r := reader.New(data)
	set, err := section.ParseAnnotationSetItem(r)
	require.NoError(t, err)
	require.EqualValues(t, 1, set.Size)
	require.Len(t, set.Entries, 1)
	require.EqualValues(t, 0x20, set.Entries[0].AnnotationOff)
}

func TestParseAnnotationItem(t *testing.T) {
	data := []byte{
		0x01, // visibility = RUNTIME
		0x00, // encoded_annotation.type_idx = 0
		0x00, // encoded_annotation.size = 0
	}
	r := reader.New(data)
	item, err := section.ParseAnnotationItem(r)
	require.NoError(t, err)
	require.Equal(t, section.VisibilityRuntime, item.Visibility)
	require.Empty(t, item.Annotation.Elements)
}

func TestParseAnnotationsDirectoryItem(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00, // class_annotations_off
		0x01, 0x00, 0x00, 0x00, // fields_size = 1
		0x00, 0x00, 0x00, 0x00, // annotated_methods_size = 0
		0x00, 0x00, 0x00, 0x00, // annotated_parameters_size = 0
		0x03, 0x00, 0x00, 0x00, // field_annotations[0].field_idx
		0x40, 0x00, 0x00, 0x00, // field_annotations[0].annotations_off
	}
	r := reader.New(data)
	dir, err := section.ParseAnnotationsDirectoryItem(r)
	require.NoError(t, err)
	require.Len(t, dir.FieldAnnotations, 1)
	require.EqualValues(t, 3, dir.FieldAnnotations[0].FieldIdx)
	require.Empty(t, dir.MethodAnnotations)
}

func TestParseAnnotationSetRefList(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // size = 1
		0x00, 0x00, 0x00, 0x00, // annotations_off (absent)
	}
	r := reader.New(data)
	refList, err := section.ParseAnnotationSetRefList(r)
	require.NoError(t, err)
	require.Len(t, refList.List, 1)
	require.EqualValues(t, 0, refList.List[0].AnnotationsOff)
}
