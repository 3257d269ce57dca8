package section

import (
	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/reader"
)

// CallSiteIDItem is one entry of the optional call_site_ids table: an offset
// to a CallSiteItem.
type CallSiteIDItem struct {
	CallSiteOff uint32
}

// ParseCallSiteIDItem reads one CallSiteIDItem at r's current cursor.
func ParseCallSiteIDItem(r *reader.Reader) (CallSiteIDItem, error) {
	off, err := r.U32()
	if err != nil {
		return CallSiteIDItem{}, err
	}

	return CallSiteIDItem{CallSiteOff: off}, nil
}

// CallSiteItem is a call site's bootstrap arguments, encoded as an
// EncodedArray: method handle, method name, method type, then any extra
// arguments.
type CallSiteItem struct {
	Values *EncodedArray
}

// ParseCallSiteItem reads a CallSiteItem at r's current cursor.
func ParseCallSiteItem(r *reader.Reader) (*CallSiteItem, error) {
	arr, err := ParseEncodedArray(r)
	if err != nil {
		return nil, err
	}

	return &CallSiteItem{Values: arr}, nil
}

// MethodHandleType is the method_handle_type_item's type code.
type MethodHandleType uint16

const (
	MethodHandleStaticPut         MethodHandleType = 0x00
	MethodHandleStaticGet         MethodHandleType = 0x01
	MethodHandleInstancePut       MethodHandleType = 0x02
	MethodHandleInstanceGet       MethodHandleType = 0x03
	MethodHandleInvokeStatic      MethodHandleType = 0x04
	MethodHandleInvokeInstance    MethodHandleType = 0x05
	MethodHandleInvokeConstructor MethodHandleType = 0x06
	MethodHandleInvokeDirect      MethodHandleType = 0x07
	MethodHandleInvokeInterface   MethodHandleType = 0x08
)

func (t MethodHandleType) valid() bool {
	return t <= MethodHandleInvokeInterface
}

// MethodHandleItem is one entry of the optional method_handles table: a
// method-handle kind plus the field_ids/method_ids index it targets.
type MethodHandleItem struct {
	MethodHandleType MethodHandleType
	FieldOrMethodID  uint16
}

// ParseMethodHandleItem reads one MethodHandleItem at r's current cursor,
// aligning to 4 bytes first.
func ParseMethodHandleItem(r *reader.Reader) (*MethodHandleItem, error) {
	r.Align(4)

	typeValue, err := r.U16()
	if err != nil {
		return nil, err
	}
	if err := r.AssertUnusedU16(); err != nil {
		return nil, err
	}
	fieldOrMethodID, err := r.U16()
	if err != nil {
		return nil, err
	}
	if err := r.AssertUnusedU16(); err != nil {
		return nil, err
	}

	mht := MethodHandleType(typeValue)
	if !mht.valid() {
		return nil, errs.ErrBadTypeCode
	}

	return &MethodHandleItem{MethodHandleType: mht, FieldOrMethodID: fieldOrMethodID}, nil
}
