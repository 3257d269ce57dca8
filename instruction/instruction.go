// Package instruction decodes single Dalvik bytecode instructions from a
// reader.Reader, dispatching on the opcode table's declared format to apply
// the matching operand-layout byte recipe.
package instruction

import (
	"github.com/arloliu/dex/format"
	"github.com/arloliu/dex/opcode"
)

// NoOperand is the operand shape of format 10x: no operands beyond the
// asserted-zero unused byte.
type NoOperand struct{}

// TwoNibble is the operand shape of formats 12x and 11n: two 4-bit operands
// packed into one byte.
type TwoNibble struct{ A, B uint8 }

// OneByte is the operand shape of formats 11x and 10t: a single 8-bit
// operand.
type OneByte struct{ AA uint8 }

// U16Only is the operand shape of format 20t: a single 16-bit operand,
// preceded by an asserted-zero unused byte.
type U16Only struct{ AAAA uint16 }

// ByteU16 is the operand shape of formats 20bc, 22x, 21t, 21s, 21c: an 8-bit
// operand followed by a 16-bit operand.
type ByteU16 struct {
	AA   uint8
	BBBB uint16
}

// ConstHigh16 is the operand shape of format 21ih: an 8-bit register operand,
// the raw 16-bit payload, and the payload zero-extended into the high 16 bits
// of a 32-bit constant.
type ConstHigh16 struct {
	AA         uint8
	RawPayload uint16
	Expanded   int32
}

// ConstWideHigh16 is the operand shape of format 21lh: an 8-bit register
// operand, the raw 16-bit payload, and the payload sign-extended into the
// high 16 bits of a 64-bit constant.
type ConstWideHigh16 struct {
	AA         uint8
	RawPayload uint16
	Expanded   int64
}

// ThreeByte is the operand shape of formats 23x and 22b: three 8-bit
// operands.
type ThreeByte struct{ AA, BB, CC uint8 }

// NibbleU16 is the operand shape of formats 22t, 22s, 22c, 22cs: two 4-bit
// operands followed by a 16-bit operand.
type NibbleU16 struct {
	A, B uint8
	CCCC uint16
}

// U32Only is the operand shape of format 30t: a single 32-bit operand,
// preceded by an asserted-zero unused byte.
type U32Only struct{ AAAAAAAA uint32 }

// TwoU16 is the operand shape of format 32x: two 16-bit operands, preceded by
// an asserted-zero unused byte.
type TwoU16 struct{ AAAA, BBBB uint16 }

// ByteU32 is the operand shape of formats 31i, 31t, 31c: an 8-bit operand
// followed by a 32-bit operand.
type ByteU32 struct {
	AA       uint8
	BBBBBBBB uint32
}

// Invoke35 is the operand shape of formats 35c, 35ms, 35mi: up to five
// argument registers plus a 16-bit reference index, in the Dalvik invoke
// nibble layout (A=count, G,F,E,D,C=registers).
type Invoke35 struct {
	A, G       uint8
	BBBB       uint16
	F, E, D, C uint8
}

// InvokeRange is the operand shape of formats 3rc, 3rms, 3rmi: an argument
// count, a 16-bit reference index, and the first of a contiguous register
// range.
type InvokeRange struct {
	AA   uint8
	BBBB uint16
	CCCC uint16
}

// Invoke45cc is the operand shape of format 45cc (invoke-polymorphic): the
// Invoke35 layout plus a trailing 16-bit method-proto reference.
type Invoke45cc struct {
	A, G       uint8
	BBBB       uint16
	F, E, D, C uint8
	HHHH       uint16
}

// Invoke4rcc is the operand shape of format 4rcc (invoke-polymorphic/range):
// the InvokeRange layout plus a trailing 16-bit method-proto reference.
type Invoke4rcc struct {
	AA   uint8
	BBBB uint16
	CCCC uint16
	DDDD uint16
}

// WideLiteral is the operand shape of format 51l (const-wide): an 8-bit
// register operand and a 64-bit literal.
type WideLiteral struct {
	AA               uint8
	BBBBBBBBBBBBBBBB uint64
}

// PackedSwitchPayloadData is the decoded body of a packed-switch-payload
// pseudo-instruction.
type PackedSwitchPayloadData struct {
	Size     uint16
	FirstKey int32
	Targets  []int32
}

// SparseSwitchPayloadData is the decoded body of a sparse-switch-payload
// pseudo-instruction.
type SparseSwitchPayloadData struct {
	Size    uint16
	Keys    []int32
	Targets []int32
}

// ArrayPayloadData is the decoded body of a fill-array-data / array-payload
// pseudo-instruction.
type ArrayPayloadData struct {
	ElementWidth uint16
	Size         uint32
	Data         []byte
}

// Instruction is one decoded Dalvik instruction: the matched Opcode plus
// exactly one populated operand-shape field, selected by Opcode.Format.
type Instruction struct {
	Opcode opcode.Opcode

	NoOperand       *NoOperand
	TwoNibble       *TwoNibble
	OneByte         *OneByte
	U16Only         *U16Only
	ByteU16         *ByteU16
	ConstHigh16     *ConstHigh16
	ConstWideHigh16 *ConstWideHigh16
	ThreeByte       *ThreeByte
	NibbleU16       *NibbleU16
	U32Only         *U32Only
	TwoU16          *TwoU16
	ByteU32         *ByteU32
	Invoke35        *Invoke35
	InvokeRange     *InvokeRange
	Invoke45cc      *Invoke45cc
	Invoke4rcc      *Invoke4rcc
	WideLiteral     *WideLiteral

	PackedSwitchPayload *PackedSwitchPayloadData
	SparseSwitchPayload *SparseSwitchPayloadData
	ArrayPayload        *ArrayPayloadData
}

// CodeUnits returns the number of 16-bit code units this instruction
// occupies in the stream, matching the cursor advance of ParseInstruction.
func (i Instruction) CodeUnits() uint32 {
	switch i.Opcode.Format {
	case format.PackedSwitchPayload:
		p := i.PackedSwitchPayload
		return uint32(4 + 2*int(p.Size))
	case format.SparseSwitchPayload:
		p := i.SparseSwitchPayload
		return uint32(2 + 4*int(p.Size))
	case format.ArrayPayload:
		p := i.ArrayPayload
		dataUnits := (uint32(p.ElementWidth)*p.Size + 1) / 2
		return 4 + dataUnits
	default:
		return uint32(i.Opcode.Format.Size())
	}
}
