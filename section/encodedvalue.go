package section

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/reader"
)

// EncodedValueKind tags which field of EncodedValue is populated.
type EncodedValueKind uint8

const (
	KindByte EncodedValueKind = iota
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindMethodType
	KindMethodHandle
	KindString
	KindType
	KindField
	KindMethod
	KindEnum
	KindArray
	KindAnnotation
	KindNull
	KindBoolean
)

// EncodedValue is a tagged union over every value_type the encoded_value
// format supports. Exactly one of the typed fields is meaningful, selected by
// Kind.
type EncodedValue struct {
	Kind EncodedValueKind

	Byte   uint8
	Short  int16
	Char   uint16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	MethodTypeIdx   uint32
	MethodHandleIdx uint32
	StringIdx       uint32
	TypeIdx         uint32
	FieldIdx        uint32
	MethodIdx       uint32
	EnumFieldIdx    uint32

	Array      *EncodedArray
	Annotation *EncodedAnnotation
	Boolean    bool
}

func readSizedLE(r *reader.Reader, n int) (uint64, error) {
	b, err := r.ReadExact(n)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[:], b)

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ParseEncodedValue reads one EncodedValue at r's current cursor, validating
// value_arg against the per-value_type constraint table.
func ParseEncodedValue(r *reader.Reader) (EncodedValue, error) {
	tag, err := r.U8()
	if err != nil {
		return EncodedValue{}, err
	}
	valueType := tag & 0x1f
	valueArg := int((tag & 0xe0) >> 5)

	checkArg := func(max int) error {
		if valueArg < 0 || valueArg > max {
			return &errs.EncodedValueError{ValueType: valueType, ValueArg: tag}
		}

		return nil
	}

	switch valueType {
	case 0x00: // byte
		if err := checkArg(0); err != nil {
			return EncodedValue{}, err
		}
		v, err := r.U8()
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindByte, Byte: v}, nil

	case 0x02: // short
		if err := checkArg(1); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindShort, Short: int16(v)}, nil

	case 0x03: // char
		if err := checkArg(1); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindChar, Char: uint16(v)}, nil

	case 0x04: // int
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindInt, Int: int32(v)}, nil

	case 0x06: // long
		if err := checkArg(7); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindLong, Long: int64(v)}, nil

	case 0x10: // float, right-zero-padded into the low bytes of a 4-byte field
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindFloat, Float: math.Float32frombits(uint32(v))}, nil

	case 0x11: // double, right-zero-padded into the low bytes of an 8-byte field
		if err := checkArg(7); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindDouble, Double: math.Float64frombits(v)}, nil

	case 0x15: // method type
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindMethodType, MethodTypeIdx: uint32(v)}, nil

	case 0x16: // method handle
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindMethodHandle, MethodHandleIdx: uint32(v)}, nil

	case 0x17: // string
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindString, StringIdx: uint32(v)}, nil

	case 0x18: // type
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindType, TypeIdx: uint32(v)}, nil

	case 0x19: // field
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindField, FieldIdx: uint32(v)}, nil

	case 0x1a: // method
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindMethod, MethodIdx: uint32(v)}, nil

	case 0x1b: // enum
		if err := checkArg(3); err != nil {
			return EncodedValue{}, err
		}
		v, err := readSizedLE(r, valueArg+1)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindEnum, EnumFieldIdx: uint32(v)}, nil

	case 0x1c: // array
		if err := checkArg(0); err != nil {
			return EncodedValue{}, err
		}
		arr, err := ParseEncodedArray(r)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindArray, Array: arr}, nil

	case 0x1d: // annotation
		if err := checkArg(0); err != nil {
			return EncodedValue{}, err
		}
		ann, err := ParseEncodedAnnotation(r)
		if err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindAnnotation, Annotation: ann}, nil

	case 0x1e: // null
		if err := checkArg(0); err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindNull}, nil

	case 0x1f: // boolean
		if err := checkArg(1); err != nil {
			return EncodedValue{}, err
		}

		return EncodedValue{Kind: KindBoolean, Boolean: valueArg == 1}, nil

	default:
		return EncodedValue{}, &errs.EncodedValueError{ValueType: valueType, ValueArg: tag}
	}
}

// EncodedArray is a ULEB128-counted list of EncodedValues.
type EncodedArray struct {
	Size   uint32
	Values []EncodedValue
}

// ParseEncodedArray reads an EncodedArray at r's current cursor.
func ParseEncodedArray(r *reader.Reader) (*EncodedArray, error) {
	size, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	values := make([]EncodedValue, size)
	for i := range values {
		v, err := ParseEncodedValue(r)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return &EncodedArray{Size: size, Values: values}, nil
}

// AnnotationElement is one name/value pair of an EncodedAnnotation.
type AnnotationElement struct {
	NameIdx uint32
	Value   EncodedValue
}

// ParseAnnotationElement reads one AnnotationElement at r's current cursor.
func ParseAnnotationElement(r *reader.Reader) (AnnotationElement, error) {
	nameIdx, err := r.Uleb128()
	if err != nil {
		return AnnotationElement{}, err
	}
	value, err := ParseEncodedValue(r)
	if err != nil {
		return AnnotationElement{}, err
	}

	return AnnotationElement{NameIdx: nameIdx, Value: value}, nil
}

// EncodedAnnotation is a type plus a ULEB128-counted list of named elements,
// shared by the encoded_annotation encoded-value kind and the top-level
// annotation_item.
type EncodedAnnotation struct {
	TypeIdx  uint32
	Size     uint32
	Elements []AnnotationElement
}

// ParseEncodedAnnotation reads an EncodedAnnotation at r's current cursor.
func ParseEncodedAnnotation(r *reader.Reader) (*EncodedAnnotation, error) {
	typeIdx, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	size, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	elements := make([]AnnotationElement, size)
	for i := range elements {
		el, err := ParseAnnotationElement(r)
		if err != nil {
			return nil, err
		}
		elements[i] = el
	}

	return &EncodedAnnotation{TypeIdx: typeIdx, Size: size, Elements: elements}, nil
}
