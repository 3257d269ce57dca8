package file

import (
	"fmt"

	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/instruction"
	"github.com/arloliu/dex/internal/options"
	"github.com/arloliu/dex/opcode"
	"github.com/arloliu/dex/reader"
	"github.com/arloliu/dex/section"
)

// File is the fully assembled, immutable result of parsing one DEX image:
// the header, the map list, and every section the map catalogues, decoded in
// full. No cross-file linking or symbolic resolution is performed; indices
// and offsets are left exactly as they appear on disk.
type File struct {
	Header  *section.Header
	MapList *section.MapList

	StringIDs             []section.StringIDItem
	StringData            []section.StringDataItem
	TypeIDs               []section.TypeIDItem
	ProtoIDs              []section.ProtoIDItem
	FieldIDs              []section.FieldIDItem
	MethodIDs             []section.MethodIDItem
	ClassDefs             []section.ClassDefItem
	Code                  []*section.CodeItem
	DebugInfo             []*section.DebugInfoItem
	TypeLists             []*section.TypeList
	Annotations           []*section.AnnotationItem
	ClassData             []*section.ClassDataItem
	EncodedArrays         []*section.EncodedArray
	AnnotationSets        []*section.AnnotationSetItem
	AnnotationSetRefLists []*section.AnnotationSetRefList
	AnnotationDirectories []*section.AnnotationsDirectoryItem

	CallSiteIDs   []section.CallSiteIDItem
	MethodHandles []*section.MethodHandleItem

	// codeOffsets records each CodeItem's starting byte offset, in parse
	// order, so CodeItemAt can resolve an EncodedMethod.CodeOff back to its
	// parsed instruction stream.
	codeOffsets []codeOffset
}

type codeOffset struct {
	off  uint32
	item *section.CodeItem
}

// Option configures a Parse run.
type Option = options.Option[*config]

type config struct {
	mode opcode.Mode
}

// WithMode selects which side of a colliding opcode value the embedded
// instruction.Decoder resolves to. Defaults to opcode.ModeDEX.
func WithMode(mode opcode.Mode) Option {
	return options.NoError[*config](func(c *config) {
		c.mode = mode
	})
}

func parseSectionAt[T any](r *reader.Reader, off, size uint32, one func(*reader.Reader) (T, error)) ([]T, error) {
	out := make([]T, size)
	_, err := r.WithOffset(off, func() error {
		for i := range out {
			v, err := one(r)
			if err != nil {
				return err
			}
			out[i] = v
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Parse assembles a File from a complete in-memory DEX image.
func Parse(data []byte, opts ...Option) (*File, error) {
	cfg := &config{mode: opcode.ModeDEX}
	if err := options.Apply[*config](cfg, opts...); err != nil {
		return nil, err
	}
	dec := instruction.NewDecoder(instruction.WithMode(cfg.mode))

	r := reader.New(data)

	header, err := section.ParseHeader(r)
	if err != nil {
		return nil, fmt.Errorf("file: header: %w", err)
	}

	var mapList *section.MapList
	if _, err := r.WithOffset(header.MapOff, func() error {
		mapList, err = section.ParseMapList(r)
		return err
	}); err != nil {
		return nil, fmt.Errorf("file: map list: %w", err)
	}
	if mapList == nil {
		return nil, fmt.Errorf("file: map list: %w", errs.ErrOutOfBounds)
	}

	m, err := mapList.BuildMap()
	if err != nil {
		return nil, fmt.Errorf("file: map: %w", err)
	}

	stringIDs, err := parseSectionAt(r, m.StringIDItem.Offset, m.StringIDItem.Size, section.ParseStringIDItem)
	if err != nil {
		return nil, fmt.Errorf("file: string_ids: %w", err)
	}

	stringData := make([]section.StringDataItem, len(stringIDs))
	for i, id := range stringIDs {
		var item section.StringDataItem
		if _, err := r.WithOffset(id.StringDataOff, func() error {
			item, err = section.ParseStringDataItem(r)
			return err
		}); err != nil {
			return nil, fmt.Errorf("file: string_data[%d]: %w", i, err)
		}
		stringData[i] = item
	}

	typeIDs, err := parseSectionAt(r, m.TypeIDItem.Offset, m.TypeIDItem.Size, section.ParseTypeIDItem)
	if err != nil {
		return nil, fmt.Errorf("file: type_ids: %w", err)
	}
	protoIDs, err := parseSectionAt(r, m.ProtoIDItem.Offset, m.ProtoIDItem.Size, section.ParseProtoIDItem)
	if err != nil {
		return nil, fmt.Errorf("file: proto_ids: %w", err)
	}
	fieldIDs, err := parseSectionAt(r, m.FieldIDItem.Offset, m.FieldIDItem.Size, section.ParseFieldIDItem)
	if err != nil {
		return nil, fmt.Errorf("file: field_ids: %w", err)
	}
	methodIDs, err := parseSectionAt(r, m.MethodIDItem.Offset, m.MethodIDItem.Size, section.ParseMethodIDItem)
	if err != nil {
		return nil, fmt.Errorf("file: method_ids: %w", err)
	}
	classDefs, err := parseSectionAt(r, m.ClassDefItem.Offset, m.ClassDefItem.Size, section.ParseClassDefItem)
	if err != nil {
		return nil, fmt.Errorf("file: class_defs: %w", err)
	}

	var codeOffsets []codeOffset
	code, err := parseSectionAt(r, m.CodeItem.Offset, m.CodeItem.Size, func(r *reader.Reader) (*section.CodeItem, error) {
		r.Align(4)
		start := uint32(r.Tell())
		item, err := section.ParseCodeItem(r, dec)
		if err != nil {
			return nil, err
		}
		codeOffsets = append(codeOffsets, codeOffset{off: start, item: item})

		return item, nil
	})
	if err != nil {
		return nil, fmt.Errorf("file: code: %w", err)
	}

	debugInfo, err := parseSectionAt(r, m.DebugInfoItem.Offset, m.DebugInfoItem.Size, section.ParseDebugInfoItem)
	if err != nil {
		return nil, fmt.Errorf("file: debug_info: %w", err)
	}

	typeLists, err := parseSectionAt(r, m.TypeList.Offset, m.TypeList.Size, section.ParseTypeList)
	if err != nil {
		return nil, fmt.Errorf("file: type_lists: %w", err)
	}

	annotations, err := parseSectionAt(r, m.AnnotationItem.Offset, m.AnnotationItem.Size, section.ParseAnnotationItem)
	if err != nil {
		return nil, fmt.Errorf("file: annotations: %w", err)
	}

	classData, err := parseSectionAt(r, m.ClassDataItem.Offset, m.ClassDataItem.Size, section.ParseClassDataItem)
	if err != nil {
		return nil, fmt.Errorf("file: class_data: %w", err)
	}

	encodedArrays, err := parseSectionAt(r, m.EncodedArrayItem.Offset, m.EncodedArrayItem.Size, section.ParseEncodedArray)
	if err != nil {
		return nil, fmt.Errorf("file: encoded_arrays: %w", err)
	}

	annotationSets, err := parseSectionAt(r, m.AnnotationSetItem.Offset, m.AnnotationSetItem.Size, section.ParseAnnotationSetItem)
	if err != nil {
		return nil, fmt.Errorf("file: annotation_sets: %w", err)
	}

	annotationSetRefLists, err := parseSectionAt(r, m.AnnotationSetRefList.Offset, m.AnnotationSetRefList.Size, section.ParseAnnotationSetRefList)
	if err != nil {
		return nil, fmt.Errorf("file: annotation_set_ref_lists: %w", err)
	}

	annotationDirectories, err := parseSectionAt(r, m.AnnotationsDirectoryItem.Offset, m.AnnotationsDirectoryItem.Size, section.ParseAnnotationsDirectoryItem)
	if err != nil {
		return nil, fmt.Errorf("file: annotation_directories: %w", err)
	}

	var callSiteIDs []section.CallSiteIDItem
	if m.CallSiteIDItem != nil {
		callSiteIDs, err = parseSectionAt(r, m.CallSiteIDItem.Offset, m.CallSiteIDItem.Size, section.ParseCallSiteIDItem)
		if err != nil {
			return nil, fmt.Errorf("file: call_site_ids: %w", err)
		}
	}

	var methodHandles []*section.MethodHandleItem
	if m.MethodHandleItem != nil {
		methodHandles, err = parseSectionAt(r, m.MethodHandleItem.Offset, m.MethodHandleItem.Size, section.ParseMethodHandleItem)
		if err != nil {
			return nil, fmt.Errorf("file: method_handles: %w", err)
		}
	}

	return &File{
		Header:                header,
		MapList:               mapList,
		StringIDs:             stringIDs,
		StringData:            stringData,
		TypeIDs:               typeIDs,
		ProtoIDs:              protoIDs,
		FieldIDs:              fieldIDs,
		MethodIDs:             methodIDs,
		ClassDefs:             classDefs,
		Code:                  code,
		DebugInfo:             debugInfo,
		TypeLists:             typeLists,
		Annotations:           annotations,
		ClassData:             classData,
		EncodedArrays:         encodedArrays,
		AnnotationSets:        annotationSets,
		AnnotationSetRefLists: annotationSetRefLists,
		AnnotationDirectories: annotationDirectories,
		CallSiteIDs:           callSiteIDs,
		MethodHandles:         methodHandles,
		codeOffsets:           codeOffsets,
	}, nil
}
