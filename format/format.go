// Package format enumerates the Dalvik bytecode instruction formats: the
// closed set of operand layouts every opcode is tagged with.
package format

import "fmt"

// Format identifies one of the 33 fixed instruction layouts, one of the 3
// variable-length payload pseudo-formats, or the catch-all
// UnresolvedOdexInstruction tag for ODEX opcodes this decoder recognizes but
// does not further decode.
type Format uint8

const (
	Format10t Format = iota
	Format10x
	Format11n
	Format11x
	Format12x
	Format20bc
	Format20t
	Format21c
	Format21ih
	Format21lh
	Format21s
	Format21t
	Format22b
	Format22c
	Format22cs
	Format22s
	Format22t
	Format22x
	Format23x
	Format30t
	Format31c
	Format31i
	Format31t
	Format32x
	Format35c
	Format35mi
	Format35ms
	Format3rc
	Format3rmi
	Format3rms
	Format45cc
	Format4rcc
	Format51l
	ArrayPayload
	PackedSwitchPayload
	SparseSwitchPayload
	UnresolvedOdexInstruction
)

type attrs struct {
	name    string
	size    int // code units; -1 for variable-size payload formats
	payload bool
}

var table = map[Format]attrs{
	Format10t:                 {"10t", 1, false},
	Format10x:                 {"10x", 1, false},
	Format11n:                 {"11n", 1, false},
	Format11x:                 {"11x", 1, false},
	Format12x:                 {"12x", 1, false},
	Format20bc:                {"20bc", 2, false},
	Format20t:                 {"20t", 2, false},
	Format21c:                 {"21c", 2, false},
	Format21ih:                {"21ih", 2, false},
	Format21lh:                {"21lh", 2, false},
	Format21s:                 {"21s", 2, false},
	Format21t:                 {"21t", 2, false},
	Format22b:                 {"22b", 2, false},
	Format22c:                 {"22c", 2, false},
	Format22cs:                {"22cs", 2, false},
	Format22s:                 {"22s", 2, false},
	Format22t:                 {"22t", 2, false},
	Format22x:                 {"22x", 2, false},
	Format23x:                 {"23x", 2, false},
	Format30t:                 {"30t", 3, false},
	Format31c:                 {"31c", 3, false},
	Format31i:                 {"31i", 3, false},
	Format31t:                 {"31t", 3, false},
	Format32x:                 {"32x", 3, false},
	Format35c:                 {"35c", 3, false},
	Format35mi:                {"35mi", 3, false},
	Format35ms:                {"35ms", 3, false},
	Format3rc:                 {"3rc", 3, false},
	Format3rmi:                {"3rmi", 3, false},
	Format3rms:                {"3rms", 3, false},
	Format45cc:                {"45cc", 4, false},
	Format4rcc:                {"4rcc", 4, false},
	Format51l:                 {"51l", 5, false},
	ArrayPayload:              {"array-payload", -1, true},
	PackedSwitchPayload:       {"packed-switch-payload", -1, true},
	SparseSwitchPayload:       {"sparse-switch-payload", -1, true},
	UnresolvedOdexInstruction: {"unresolved-odex-instruction", -1, false},
}

// Size returns the format's fixed size in 16-bit code units, or -1 for
// variable-size payload formats whose size depends on their contents.
func (f Format) Size() int {
	return table[f].size
}

// IsPayload reports whether f is one of the three in-stream payload
// pseudo-formats (ArrayPayload, PackedSwitchPayload, SparseSwitchPayload).
func (f Format) IsPayload() bool {
	return table[f].payload
}

// String returns the Dalvik-spec name of the format, e.g. "35c", "22t".
func (f Format) String() string {
	if a, ok := table[f]; ok {
		return a.name
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}
