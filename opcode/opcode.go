// Package opcode provides the static Dalvik opcode catalogue: for every
// numeric opcode value, its mnemonic, reference kind, instruction format, and
// behavioral flag bitset, plus a mode-aware reverse lookup from numeric value
// to Opcode.
package opcode

import (
	"sync"

	"github.com/arloliu/dex/format"
)

// ReferenceKind identifies which id-table an opcode's reference operand
// indexes, if any.
type ReferenceKind uint8

const (
	RefNone ReferenceKind = iota
	RefString
	RefType
	RefField
	RefMethod
	RefMethodProto
	RefCallSite
	RefMethodHandle
)

func (k ReferenceKind) String() string {
	switch k {
	case RefNone:
		return "none"
	case RefString:
		return "string"
	case RefType:
		return "type"
	case RefField:
		return "field"
	case RefMethod:
		return "method"
	case RefMethodProto:
		return "method_proto"
	case RefCallSite:
		return "call_site"
	case RefMethodHandle:
		return "method_handle"
	default:
		return "unknown"
	}
}

// Flags is a bitset of an opcode's behavioral attributes.
type Flags uint32

const (
	FlagCanThrow Flags = 1 << iota
	FlagOdexOnly
	FlagCanContinue
	FlagSetsResult
	FlagSetsRegister
	FlagSetsWideRegister
	FlagQuickFieldAccessor
	FlagVolatileFieldAccessor
	FlagStaticFieldAccessor
	FlagJumboOpcode
	FlagCanInitializeReference
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// With returns f with mask's bits set.
func (f Flags) With(mask Flags) Flags {
	return f | mask
}

// Without returns f with mask's bits cleared.
func (f Flags) Without(mask Flags) Flags {
	return f &^ mask
}

// Opcode is one entry of the Dalvik opcode table.
type Opcode struct {
	Value    uint16
	Mnemonic string
	Ref      ReferenceKind
	// Ref2 is the secondary reference kind, valid only when HasRef2 is true.
	// Currently only invoke-polymorphic and invoke-polymorphic/range carry a
	// secondary MethodProto reference alongside their primary Method one.
	Ref2    ReferenceKind
	HasRef2 bool
	Format  format.Format
	Flags   Flags
}

// Mode selects which of a colliding pair of opcode values (shared between an
// ODEX-only opcode and a standard-DEX opcode) populates the reverse lookup
// map. The canonical table collides at six values: 0xf0, 0xfa, 0xfb, 0xfc,
// 0xfd, 0xfe.
type Mode uint8

const (
	// ModeDEX resolves collisions in favor of the standard-DEX opcode.
	ModeDEX Mode = iota
	// ModeODEX resolves collisions in favor of the ODEX-only opcode.
	ModeODEX
)

var (
	dexReverse  map[uint16]Opcode
	odexReverse map[uint16]Opcode
	buildOnce   sync.Once
)

func buildReverseMaps() {
	dexReverse = make(map[uint16]Opcode, len(table))
	odexReverse = make(map[uint16]Opcode, len(table))

	byValue := make(map[uint16][]Opcode, len(table))
	for _, op := range table {
		byValue[op.Value] = append(byValue[op.Value], op)
	}

	for value, entries := range byValue {
		if len(entries) == 1 {
			dexReverse[value] = entries[0]
			odexReverse[value] = entries[0]
			continue
		}

		// Colliding value. The common case is one standard-DEX opcode paired
		// with one ODEX-only opcode, disambiguated by Mode. 0xf0 is the one
		// exception in the canonical table: two ODEX-only opcodes share it
		// (invoke-direct-empty and invoke-object-init/range), indistinguishable
		// by Mode alone; the first in table order wins odexReverse and
		// dexReverse has no entry for that value.
		var dexEntry, odexEntry *Opcode
		for i := range entries {
			e := &entries[i]
			if e.Flags.Has(FlagOdexOnly) {
				if odexEntry == nil {
					odexEntry = e
				}
			} else if dexEntry == nil {
				dexEntry = e
			}
		}
		if odexEntry != nil {
			odexReverse[value] = *odexEntry
		}
		if dexEntry != nil {
			dexReverse[value] = *dexEntry
		}
	}
}

// Lookup finds the Opcode for a numeric value under the given Mode. It
// reports ok=false if no entry exists for that value in that mode.
func Lookup(value uint16, mode Mode) (Opcode, bool) {
	buildOnce.Do(buildReverseMaps)

	var op Opcode
	var ok bool
	if mode == ModeODEX {
		op, ok = odexReverse[value]
	} else {
		op, ok = dexReverse[value]
	}

	return op, ok
}

// All returns the full static opcode table in canonical order. The returned
// slice must not be mutated by callers.
func All() []Opcode {
	return table
}
