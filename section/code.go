package section

import (
	"github.com/arloliu/dex/instruction"
	"github.com/arloliu/dex/reader"
)

// TryItem describes one try block's covered address range and its handler
// list offset within the owning CodeItem's handlers.
type TryItem struct {
	StartAddr  uint32
	InsnCount  uint16
	HandlerOff uint16
}

// ParseTryItem reads one TryItem at r's current cursor.
func ParseTryItem(r *reader.Reader) (TryItem, error) {
	start, err := r.U32()
	if err != nil {
		return TryItem{}, err
	}
	count, err := r.U16()
	if err != nil {
		return TryItem{}, err
	}
	handlerOff, err := r.U16()
	if err != nil {
		return TryItem{}, err
	}

	return TryItem{StartAddr: start, InsnCount: count, HandlerOff: handlerOff}, nil
}

// EncodedTypeAddrPair maps a caught exception type to the bytecode address of
// its handler.
type EncodedTypeAddrPair struct {
	TypeIdx uint32
	Addr    uint32
}

// ParseEncodedTypeAddrPair reads one EncodedTypeAddrPair at r's current
// cursor.
func ParseEncodedTypeAddrPair(r *reader.Reader) (EncodedTypeAddrPair, error) {
	typeIdx, err := r.Uleb128()
	if err != nil {
		return EncodedTypeAddrPair{}, err
	}
	addr, err := r.Uleb128()
	if err != nil {
		return EncodedTypeAddrPair{}, err
	}

	return EncodedTypeAddrPair{TypeIdx: typeIdx, Addr: addr}, nil
}

// EncodedCatchHandler is one try block's handler list: typed handlers plus an
// optional catch-all address.
type EncodedCatchHandler struct {
	Size         int32
	Handlers     []EncodedTypeAddrPair
	CatchAllAddr *uint32
}

// ParseEncodedCatchHandler reads one EncodedCatchHandler at r's current
// cursor. A non-positive size means a catch-all handler follows the typed
// handlers; abs(size) gives the typed handler count either way.
func ParseEncodedCatchHandler(r *reader.Reader) (EncodedCatchHandler, error) {
	size, err := r.Sleb128()
	if err != nil {
		return EncodedCatchHandler{}, err
	}
	count := size
	if count < 0 {
		count = -count
	}
	handlers := make([]EncodedTypeAddrPair, count)
	for i := range handlers {
		pair, err := ParseEncodedTypeAddrPair(r)
		if err != nil {
			return EncodedCatchHandler{}, err
		}
		handlers[i] = pair
	}

	var catchAll *uint32
	if size <= 0 {
		addr, err := r.Uleb128()
		if err != nil {
			return EncodedCatchHandler{}, err
		}
		catchAll = &addr
	}

	return EncodedCatchHandler{Size: size, Handlers: handlers, CatchAllAddr: catchAll}, nil
}

// EncodedCatchHandlerList is a CodeItem's full exception-handler table.
type EncodedCatchHandlerList struct {
	Size uint32
	List []EncodedCatchHandler
}

// ParseEncodedCatchHandlerList reads an EncodedCatchHandlerList at r's
// current cursor.
func ParseEncodedCatchHandlerList(r *reader.Reader) (*EncodedCatchHandlerList, error) {
	size, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	list := make([]EncodedCatchHandler, size)
	for i := range list {
		h, err := ParseEncodedCatchHandler(r)
		if err != nil {
			return nil, err
		}
		list[i] = h
	}

	return &EncodedCatchHandlerList{Size: size, List: list}, nil
}

// CodeItem is a method's bytecode body: register/parameter counts, the
// decoded instruction stream, and an optional try/catch handler table.
type CodeItem struct {
	RegistersSize uint16
	InsSize       uint16
	OutsSize      uint16
	TriesSize     uint16
	DebugInfoOff  uint32
	Insns         []instruction.Instruction
	Padding       *uint16
	Tries         []TryItem
	Handlers      *EncodedCatchHandlerList
}

// ParseCodeItem reads a CodeItem at r's current cursor using dec to decode
// each instruction, aligning to 4 bytes first and aligning again after the
// optional try/catch tables.
func ParseCodeItem(r *reader.Reader, dec *instruction.Decoder) (*CodeItem, error) {
	r.Align(4)

	registersSize, err := r.U16()
	if err != nil {
		return nil, err
	}
	insSize, err := r.U16()
	if err != nil {
		return nil, err
	}
	outsSize, err := r.U16()
	if err != nil {
		return nil, err
	}
	triesSize, err := r.U16()
	if err != nil {
		return nil, err
	}
	debugInfoOff, err := r.U32()
	if err != nil {
		return nil, err
	}
	insnsSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	start := r.Tell()
	end := start + int(insnsSize)*2
	var insns []instruction.Instruction
	for r.Tell() < end {
		inst, err := dec.ParseInstruction(r)
		if err != nil {
			return nil, err
		}
		insns = append(insns, inst)
	}

	var padding *uint16
	var tries []TryItem
	var handlers *EncodedCatchHandlerList
	if triesSize != 0 {
		if insnsSize%2 != 0 {
			pad, err := r.U16()
			if err != nil {
				return nil, err
			}
			padding = &pad
		}

		tries = make([]TryItem, triesSize)
		for i := range tries {
			ti, err := ParseTryItem(r)
			if err != nil {
				return nil, err
			}
			tries[i] = ti
		}

		handlers, err = ParseEncodedCatchHandlerList(r)
		if err != nil {
			return nil, err
		}
	}

	r.Align(4)

	return &CodeItem{
		RegistersSize: registersSize,
		InsSize:       insSize,
		OutsSize:      outsSize,
		TriesSize:     triesSize,
		DebugInfoOff:  debugInfoOff,
		Insns:         insns,
		Padding:       padding,
		Tries:         tries,
		Handlers:      handlers,
	}, nil
}
