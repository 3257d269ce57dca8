// Code generated from the canonical Dalvik opcode table; do not hand-edit
// the entries slice without re-deriving them from the source table.

package opcode

import "github.com/arloliu/dex/format"

var table = []Opcode{
	{Value: 0x00, Mnemonic: "nop", Ref: RefNone, Format: format.Format10x, Flags: FlagCanContinue},
	{Value: 0x01, Mnemonic: "move", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x02, Mnemonic: "move/from16", Ref: RefNone, Format: format.Format22x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x03, Mnemonic: "move/16", Ref: RefNone, Format: format.Format32x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x04, Mnemonic: "move-wide", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x05, Mnemonic: "move-wide/from16", Ref: RefNone, Format: format.Format22x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x06, Mnemonic: "move-wide/16", Ref: RefNone, Format: format.Format32x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x07, Mnemonic: "move-object", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x08, Mnemonic: "move-object/from16", Ref: RefNone, Format: format.Format22x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x09, Mnemonic: "move-object/16", Ref: RefNone, Format: format.Format32x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x0a, Mnemonic: "move-result", Ref: RefNone, Format: format.Format11x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x0b, Mnemonic: "move-result-wide", Ref: RefNone, Format: format.Format11x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x0c, Mnemonic: "move-result-object", Ref: RefNone, Format: format.Format11x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x0d, Mnemonic: "move-exception", Ref: RefNone, Format: format.Format11x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x0e, Mnemonic: "return-void", Ref: RefNone, Format: format.Format10x, Flags: 0},
	{Value: 0x0f, Mnemonic: "return", Ref: RefNone, Format: format.Format11x, Flags: 0},
	{Value: 0x10, Mnemonic: "return-wide", Ref: RefNone, Format: format.Format11x, Flags: 0},
	{Value: 0x11, Mnemonic: "return-object", Ref: RefNone, Format: format.Format11x, Flags: 0},
	{Value: 0x12, Mnemonic: "const/4", Ref: RefNone, Format: format.Format11n, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x13, Mnemonic: "const/16", Ref: RefNone, Format: format.Format21s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x14, Mnemonic: "const", Ref: RefNone, Format: format.Format31i, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x15, Mnemonic: "const/high16", Ref: RefNone, Format: format.Format21ih, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x16, Mnemonic: "const-wide/16", Ref: RefNone, Format: format.Format21s, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x17, Mnemonic: "const-wide/32", Ref: RefNone, Format: format.Format31i, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x18, Mnemonic: "const-wide", Ref: RefNone, Format: format.Format51l, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x19, Mnemonic: "const-wide/high16", Ref: RefNone, Format: format.Format21lh, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x1a, Mnemonic: "const-string", Ref: RefString, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x1b, Mnemonic: "const-string/jumbo", Ref: RefString, Format: format.Format31c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x1c, Mnemonic: "const-class", Ref: RefType, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x1d, Mnemonic: "monitor-enter", Ref: RefNone, Format: format.Format11x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x1e, Mnemonic: "monitor-exit", Ref: RefNone, Format: format.Format11x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x1f, Mnemonic: "check-cast", Ref: RefType, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x20, Mnemonic: "instance-of", Ref: RefType, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x21, Mnemonic: "array-length", Ref: RefNone, Format: format.Format12x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x22, Mnemonic: "new-instance", Ref: RefType, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x23, Mnemonic: "new-array", Ref: RefType, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x24, Mnemonic: "filled-new-array", Ref: RefType, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x25, Mnemonic: "filled-new-array/range", Ref: RefType, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x26, Mnemonic: "fill-array-data", Ref: RefNone, Format: format.Format31t, Flags: FlagCanContinue},
	{Value: 0x27, Mnemonic: "throw", Ref: RefNone, Format: format.Format11x, Flags: FlagCanThrow},
	{Value: 0x28, Mnemonic: "goto", Ref: RefNone, Format: format.Format10t, Flags: 0},
	{Value: 0x29, Mnemonic: "goto/16", Ref: RefNone, Format: format.Format20t, Flags: 0},
	{Value: 0x2a, Mnemonic: "goto/32", Ref: RefNone, Format: format.Format30t, Flags: 0},
	{Value: 0x2b, Mnemonic: "packed-switch", Ref: RefNone, Format: format.Format31t, Flags: FlagCanContinue},
	{Value: 0x2c, Mnemonic: "sparse-switch", Ref: RefNone, Format: format.Format31t, Flags: FlagCanContinue},
	{Value: 0x2d, Mnemonic: "cmpl-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x2e, Mnemonic: "cmpg-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x2f, Mnemonic: "cmpl-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x30, Mnemonic: "cmpg-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x31, Mnemonic: "cmp-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x32, Mnemonic: "if-eq", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x33, Mnemonic: "if-ne", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x34, Mnemonic: "if-lt", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x35, Mnemonic: "if-ge", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x36, Mnemonic: "if-gt", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x37, Mnemonic: "if-le", Ref: RefNone, Format: format.Format22t, Flags: FlagCanContinue},
	{Value: 0x38, Mnemonic: "if-eqz", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x39, Mnemonic: "if-nez", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x3a, Mnemonic: "if-ltz", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x3b, Mnemonic: "if-gez", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x3c, Mnemonic: "if-gtz", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x3d, Mnemonic: "if-lez", Ref: RefNone, Format: format.Format21t, Flags: FlagCanContinue},
	{Value: 0x44, Mnemonic: "aget", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x45, Mnemonic: "aget-wide", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x46, Mnemonic: "aget-object", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x47, Mnemonic: "aget-boolean", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x48, Mnemonic: "aget-byte", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x49, Mnemonic: "aget-char", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x4a, Mnemonic: "aget-short", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x4b, Mnemonic: "aput", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x4c, Mnemonic: "aput-wide", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x4d, Mnemonic: "aput-object", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x4e, Mnemonic: "aput-boolean", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x4f, Mnemonic: "aput-byte", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x50, Mnemonic: "aput-char", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x51, Mnemonic: "aput-short", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x52, Mnemonic: "iget", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x53, Mnemonic: "iget-wide", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x54, Mnemonic: "iget-object", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x55, Mnemonic: "iget-boolean", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x56, Mnemonic: "iget-byte", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x57, Mnemonic: "iget-char", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x58, Mnemonic: "iget-short", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x59, Mnemonic: "iput", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5a, Mnemonic: "iput-wide", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5b, Mnemonic: "iput-object", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5c, Mnemonic: "iput-boolean", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5d, Mnemonic: "iput-byte", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5e, Mnemonic: "iput-char", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x5f, Mnemonic: "iput-short", Ref: RefField, Format: format.Format22c, Flags: FlagCanThrow | FlagCanContinue},
	{Value: 0x60, Mnemonic: "sget", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x61, Mnemonic: "sget-wide", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister | FlagStaticFieldAccessor},
	{Value: 0x62, Mnemonic: "sget-object", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x63, Mnemonic: "sget-boolean", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x64, Mnemonic: "sget-byte", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x65, Mnemonic: "sget-char", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x66, Mnemonic: "sget-short", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0x67, Mnemonic: "sput", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x68, Mnemonic: "sput-wide", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x69, Mnemonic: "sput-object", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x6a, Mnemonic: "sput-boolean", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x6b, Mnemonic: "sput-byte", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x6c, Mnemonic: "sput-char", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x6d, Mnemonic: "sput-short", Ref: RefField, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x6e, Mnemonic: "invoke-virtual", Ref: RefMethod, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x6f, Mnemonic: "invoke-super", Ref: RefMethod, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x70, Mnemonic: "invoke-direct", Ref: RefMethod, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult | FlagCanInitializeReference},
	{Value: 0x71, Mnemonic: "invoke-static", Ref: RefMethod, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x72, Mnemonic: "invoke-interface", Ref: RefMethod, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x74, Mnemonic: "invoke-virtual/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x75, Mnemonic: "invoke-super/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x76, Mnemonic: "invoke-direct/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult | FlagCanInitializeReference},
	{Value: 0x77, Mnemonic: "invoke-static/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x78, Mnemonic: "invoke-interface/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0x7b, Mnemonic: "neg-int", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x7c, Mnemonic: "not-int", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x7d, Mnemonic: "neg-long", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x7e, Mnemonic: "not-long", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x7f, Mnemonic: "neg-float", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x80, Mnemonic: "neg-double", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x81, Mnemonic: "int-to-long", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x82, Mnemonic: "int-to-float", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x83, Mnemonic: "int-to-double", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x84, Mnemonic: "long-to-int", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x85, Mnemonic: "long-to-float", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x86, Mnemonic: "long-to-double", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x87, Mnemonic: "float-to-int", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x88, Mnemonic: "float-to-long", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x89, Mnemonic: "float-to-double", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x8a, Mnemonic: "double-to-int", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x8b, Mnemonic: "double-to-long", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x8c, Mnemonic: "double-to-float", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x8d, Mnemonic: "int-to-byte", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x8e, Mnemonic: "int-to-char", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x8f, Mnemonic: "int-to-short", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x90, Mnemonic: "add-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x91, Mnemonic: "sub-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x92, Mnemonic: "mul-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x93, Mnemonic: "div-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x94, Mnemonic: "rem-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0x95, Mnemonic: "and-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x96, Mnemonic: "or-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x97, Mnemonic: "xor-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x98, Mnemonic: "shl-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x99, Mnemonic: "shr-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x9a, Mnemonic: "ushr-int", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0x9b, Mnemonic: "add-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x9c, Mnemonic: "sub-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x9d, Mnemonic: "mul-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x9e, Mnemonic: "div-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0x9f, Mnemonic: "rem-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa0, Mnemonic: "and-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa1, Mnemonic: "or-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa2, Mnemonic: "xor-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa3, Mnemonic: "shl-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa4, Mnemonic: "shr-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa5, Mnemonic: "ushr-long", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xa6, Mnemonic: "add-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xa7, Mnemonic: "sub-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xa8, Mnemonic: "mul-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xa9, Mnemonic: "div-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xaa, Mnemonic: "rem-float", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xab, Mnemonic: "add-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xac, Mnemonic: "sub-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xad, Mnemonic: "mul-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xae, Mnemonic: "div-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xaf, Mnemonic: "rem-double", Ref: RefNone, Format: format.Format23x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xb0, Mnemonic: "add-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb1, Mnemonic: "sub-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb2, Mnemonic: "mul-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb3, Mnemonic: "div-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xb4, Mnemonic: "rem-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xb5, Mnemonic: "and-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb6, Mnemonic: "or-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb7, Mnemonic: "xor-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb8, Mnemonic: "shl-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xb9, Mnemonic: "shr-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xba, Mnemonic: "ushr-int/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xbb, Mnemonic: "add-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xbc, Mnemonic: "sub-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xbd, Mnemonic: "mul-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xbe, Mnemonic: "div-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xbf, Mnemonic: "rem-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc0, Mnemonic: "and-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc1, Mnemonic: "or-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc2, Mnemonic: "xor-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc3, Mnemonic: "shl-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc4, Mnemonic: "shr-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc5, Mnemonic: "ushr-long/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xc6, Mnemonic: "add-float/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xc7, Mnemonic: "sub-float/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xc8, Mnemonic: "mul-float/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xc9, Mnemonic: "div-float/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xca, Mnemonic: "rem-float/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xcb, Mnemonic: "add-double/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xcc, Mnemonic: "sub-double/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xcd, Mnemonic: "mul-double/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xce, Mnemonic: "div-double/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xcf, Mnemonic: "rem-double/2addr", Ref: RefNone, Format: format.Format12x, Flags: FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xd0, Mnemonic: "add-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd1, Mnemonic: "rsub-int", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd2, Mnemonic: "mul-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd3, Mnemonic: "div-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xd4, Mnemonic: "rem-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xd5, Mnemonic: "and-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd6, Mnemonic: "or-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd7, Mnemonic: "xor-int/lit16", Ref: RefNone, Format: format.Format22s, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd8, Mnemonic: "add-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xd9, Mnemonic: "rsub-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xda, Mnemonic: "mul-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xdb, Mnemonic: "div-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xdc, Mnemonic: "rem-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xdd, Mnemonic: "and-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xde, Mnemonic: "or-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xdf, Mnemonic: "xor-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xe0, Mnemonic: "shl-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xe1, Mnemonic: "shr-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xe2, Mnemonic: "ushr-int/lit8", Ref: RefNone, Format: format.Format22b, Flags: FlagCanContinue | FlagSetsRegister},
	{Value: 0xe3, Mnemonic: "iget-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xe4, Mnemonic: "iput-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue},
	{Value: 0xe5, Mnemonic: "sget-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0xe6, Mnemonic: "sput-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0xe7, Mnemonic: "iget-object-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xe8, Mnemonic: "iget-wide-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister},
	{Value: 0xe9, Mnemonic: "iput-wide-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue},
	{Value: 0xea, Mnemonic: "sget-wide-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagSetsWideRegister | FlagStaticFieldAccessor},
	{Value: 0xeb, Mnemonic: "sput-wide-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0xed, Mnemonic: "throw-verification-error", Ref: RefNone, Format: format.Format20bc, Flags: FlagOdexOnly | FlagCanThrow},
	{Value: 0xee, Mnemonic: "execute-inline", Ref: RefNone, Format: format.Format35mi, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xef, Mnemonic: "execute-inline/range", Ref: RefNone, Format: format.Format3rmi, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xf0, Mnemonic: "invoke-direct-empty", Ref: RefMethod, Format: format.Format35c, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult | FlagCanInitializeReference},
	{Value: 0xf0, Mnemonic: "invoke-object-init/range", Ref: RefMethod, Format: format.Format3rc, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult | FlagCanInitializeReference},
	{Value: 0x73, Mnemonic: "return-void-no-barrier", Ref: RefNone, Format: format.Format10x, Flags: FlagOdexOnly},
	{Value: 0xfa, Mnemonic: "invoke-super-quick", Ref: RefNone, Format: format.Format35ms, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfb, Mnemonic: "invoke-super-quick/range", Ref: RefNone, Format: format.Format3rms, Flags: FlagOdexOnly | FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfc, Mnemonic: "iput-object-volatile", Ref: RefField, Format: format.Format22c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue},
	{Value: 0xfd, Mnemonic: "sget-object-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagSetsRegister | FlagStaticFieldAccessor},
	{Value: 0xfe, Mnemonic: "sput-object-volatile", Ref: RefField, Format: format.Format21c, Flags: FlagOdexOnly | FlagVolatileFieldAccessor | FlagCanThrow | FlagCanContinue | FlagStaticFieldAccessor},
	{Value: 0x100, Mnemonic: "packed-switch-payload", Ref: RefNone, Format: format.PackedSwitchPayload, Flags: 0},
	{Value: 0x200, Mnemonic: "sparse-switch-payload", Ref: RefNone, Format: format.SparseSwitchPayload, Flags: 0},
	{Value: 0x300, Mnemonic: "array-payload", Ref: RefNone, Format: format.ArrayPayload, Flags: 0},
	{Value: 0xfa, Mnemonic: "invoke-polymorphic", Ref: RefMethod, Ref2: RefMethodProto, HasRef2: true, Format: format.Format45cc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfb, Mnemonic: "invoke-polymorphic/range", Ref: RefMethod, Ref2: RefMethodProto, HasRef2: true, Format: format.Format4rcc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfc, Mnemonic: "invoke-custom", Ref: RefCallSite, Format: format.Format35c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfd, Mnemonic: "invoke-custom/range", Ref: RefCallSite, Format: format.Format3rc, Flags: FlagCanThrow | FlagCanContinue | FlagSetsResult},
	{Value: 0xfe, Mnemonic: "const-method-handle", Ref: RefMethodHandle, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
	{Value: 0xff, Mnemonic: "const-method-type", Ref: RefMethodProto, Format: format.Format21c, Flags: FlagCanThrow | FlagCanContinue | FlagSetsRegister},
}

