// Package dex provides a structural decoder for the Dalvik Executable (DEX)
// container format used by Android applications, plus a decoder for Dalvik
// bytecode instructions embedded in a DEX image.
//
// The decoder reads a complete .dex file into the fully assembled section
// tables described by the format: the header, the map list, string/type/
// proto/field/method identifier tables, class definitions, code items (with
// their instructions decoded), debug info, type lists, annotations, and the
// optional call-site and method-handle tables introduced for invoke-custom
// and invoke-polymorphic support.
//
// # Core Features
//
//   - Full structural parse of the DEX container: header, map list, and
//     every section it catalogues
//   - Dalvik bytecode decoding for every code item, including the packed/
//     sparse switch payload and fill-array-data pseudo-instructions
//   - In-file index and offset resolution (string/type/field/method names,
//     class descriptors, code item lookup by offset) without cross-file
//     linking
//   - Optional decode caching keyed by content hash, with selectable
//     compression for cached entries
//
// # Basic Usage
//
// Parsing a DEX image and resolving a class's descriptor:
//
//	import "github.com/arloliu/dex"
//
//	data, err := os.ReadFile("classes.dex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := dex.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i := range f.ClassDefs {
//	    desc, _ := f.ClassDescriptor(&f.ClassDefs[i])
//	    fmt.Println(desc)
//	}
//
// # Package Structure
//
// This package is a thin convenience wrapper around file.Parse. For
// fine-grained control over opcode mode selection, use the file package
// directly; for decoding a standalone instruction stream, use the
// instruction package; for caching decoded files across repeated runs, use
// the cache package.
package dex

import (
	"github.com/arloliu/dex/file"
	"github.com/arloliu/dex/opcode"
)

// Option configures a Parse run. See file.Option for the full set of
// available options.
type Option = file.Option

// WithMode selects which side of a colliding Dalvik opcode value the
// decoder resolves to: opcode.ModeDEX (the default) or opcode.ModeODEX.
func WithMode(mode opcode.Mode) Option {
	return file.WithMode(mode)
}

// Parse reads a complete in-memory DEX image and returns the fully
// assembled File: the header, the map list, and every section the map
// catalogues, with embedded code decoded into instructions.
//
// Parse does not verify or execute the decoded bytecode, and it performs no
// cross-file linking; callers working with a multi-dex application must
// parse and resolve each DEX image independently.
//
// Example:
//
//	f, err := dex.Parse(data, dex.WithMode(opcode.ModeODEX))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(data []byte, opts ...Option) (*file.File, error) {
	return file.Parse(data, opts...)
}
