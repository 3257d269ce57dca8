package instruction

import (
	"github.com/arloliu/dex/errs"
	"github.com/arloliu/dex/format"
	"github.com/arloliu/dex/internal/options"
	"github.com/arloliu/dex/opcode"
	"github.com/arloliu/dex/reader"
)

// Decoder decodes Dalvik instructions from a reader.Reader, one at a time,
// consulting the opcode table under a fixed Mode (strict DEX or ODEX) for the
// lifetime of the Decoder.
type Decoder struct {
	mode opcode.Mode
}

// Option configures a Decoder at construction time.
type Option = options.Option[*Decoder]

// WithMode selects which side of a colliding opcode value the Decoder
// resolves to. Defaults to opcode.ModeDEX.
func WithMode(mode opcode.Mode) Option {
	return options.NoError[*Decoder](func(d *Decoder) {
		d.mode = mode
	})
}

// NewDecoder creates a Decoder. Default mode is opcode.ModeDEX.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{mode: opcode.ModeDEX}
	_ = options.Apply[*Decoder](d, opts...)

	return d
}

// ParseInstruction decodes one instruction at r's current cursor, advancing
// the cursor past it.
func (d *Decoder) ParseInstruction(r *reader.Reader) (Instruction, error) {
	opLo, err := r.U8()
	if err != nil {
		return Instruction{}, err
	}

	var opValue uint16
	if opLo == 0 {
		opHi, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		if opHi != 0 {
			opValue = uint16(opHi) << 8
		} else {
			// True nop: rewind so the second zero byte is read again as the
			// unused half of the 10x layout.
			r.SeekAbsolute(r.Tell() - 1)
			opValue = 0
		}
	} else {
		opValue = uint16(opLo)
	}

	op, ok := opcode.Lookup(opValue, d.mode)
	if !ok {
		return Instruction{}, &errs.OpcodeError{Value: opValue}
	}

	inst := Instruction{Opcode: op}

	switch op.Format {
	case format.Format10x:
		if err := r.AssertUnused(); err != nil {
			return Instruction{}, err
		}
		inst.NoOperand = &NoOperand{}

	case format.Format12x, format.Format11n:
		a, b, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		inst.TwoNibble = &TwoNibble{A: a, B: b}

	case format.Format11x, format.Format10t:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		inst.OneByte = &OneByte{AA: aa}

	case format.Format20t:
		if err := r.AssertUnused(); err != nil {
			return Instruction{}, err
		}
		aaaa, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.U16Only = &U16Only{AAAA: aaaa}

	case format.Format20bc, format.Format22x, format.Format21t, format.Format21s, format.Format21c:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.ByteU16 = &ByteU16{AA: aa, BBBB: bbbb}

	case format.Format21ih:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.ConstHigh16 = &ConstHigh16{
			AA:         aa,
			RawPayload: bbbb,
			Expanded:   int32(uint32(bbbb) << 16),
		}

	case format.Format21lh:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.ConstWideHigh16 = &ConstWideHigh16{
			AA:         aa,
			RawPayload: bbbb,
			Expanded:   int64(uint64(bbbb) << 48),
		}

	case format.Format23x, format.Format22b:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bb, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		cc, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		inst.ThreeByte = &ThreeByte{AA: aa, BB: bb, CC: cc}

	case format.Format22t, format.Format22s, format.Format22c, format.Format22cs:
		a, b, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		cccc, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.NibbleU16 = &NibbleU16{A: a, B: b, CCCC: cccc}

	case format.Format30t:
		if err := r.AssertUnused(); err != nil {
			return Instruction{}, err
		}
		v, err := r.U32()
		if err != nil {
			return Instruction{}, err
		}
		inst.U32Only = &U32Only{AAAAAAAA: v}

	case format.Format32x:
		if err := r.AssertUnused(); err != nil {
			return Instruction{}, err
		}
		aaaa, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.TwoU16 = &TwoU16{AAAA: aaaa, BBBB: bbbb}

	case format.Format31i, format.Format31t, format.Format31c:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		v, err := r.U32()
		if err != nil {
			return Instruction{}, err
		}
		inst.ByteU32 = &ByteU32{AA: aa, BBBBBBBB: v}

	case format.Format35c, format.Format35ms, format.Format35mi:
		a, g, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		f, e, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		dd, c, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		inst.Invoke35 = &Invoke35{A: a, G: g, BBBB: bbbb, F: f, E: e, D: dd, C: c}

	case format.Format3rc, format.Format3rms, format.Format3rmi:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		cccc, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.InvokeRange = &InvokeRange{AA: aa, BBBB: bbbb, CCCC: cccc}

	case format.Format45cc:
		a, g, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		f, e, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		dd, c, err := r.SplitU8()
		if err != nil {
			return Instruction{}, err
		}
		hhhh, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.Invoke45cc = &Invoke45cc{A: a, G: g, BBBB: bbbb, F: f, E: e, D: dd, C: c, HHHH: hhhh}

	case format.Format4rcc:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		bbbb, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		cccc, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		dddd, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		inst.Invoke4rcc = &Invoke4rcc{AA: aa, BBBB: bbbb, CCCC: cccc, DDDD: dddd}

	case format.Format51l:
		aa, err := r.U8()
		if err != nil {
			return Instruction{}, err
		}
		v, err := r.U64()
		if err != nil {
			return Instruction{}, err
		}
		inst.WideLiteral = &WideLiteral{AA: aa, BBBBBBBBBBBBBBBB: v}

	case format.PackedSwitchPayload:
		size, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		firstKey, err := r.I32()
		if err != nil {
			return Instruction{}, err
		}
		targets := make([]int32, size)
		for i := range targets {
			targets[i], err = r.I32()
			if err != nil {
				return Instruction{}, err
			}
		}
		inst.PackedSwitchPayload = &PackedSwitchPayloadData{Size: size, FirstKey: firstKey, Targets: targets}

	case format.SparseSwitchPayload:
		size, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		keys := make([]int32, size)
		for i := range keys {
			keys[i], err = r.I32()
			if err != nil {
				return Instruction{}, err
			}
		}
		targets := make([]int32, size)
		for i := range targets {
			targets[i], err = r.I32()
			if err != nil {
				return Instruction{}, err
			}
		}
		inst.SparseSwitchPayload = &SparseSwitchPayloadData{Size: size, Keys: keys, Targets: targets}

	case format.ArrayPayload:
		elementWidth, err := r.U16()
		if err != nil {
			return Instruction{}, err
		}
		size, err := r.U32()
		if err != nil {
			return Instruction{}, err
		}
		total := uint64(elementWidth) * uint64(size)
		data, err := r.ReadExact(int(total))
		if err != nil {
			return Instruction{}, err
		}
		dataCopy := append([]byte(nil), data...)
		if total%2 != 0 {
			if _, err := r.U8(); err != nil {
				return Instruction{}, err
			}
		}
		inst.ArrayPayload = &ArrayPayloadData{ElementWidth: elementWidth, Size: size, Data: dataCopy}

	default:
		return Instruction{}, errs.ErrUnknownFormat
	}

	return inst, nil
}
