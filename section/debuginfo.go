package section

import "github.com/arloliu/dex/reader"

// DebugInfoItem is the partial debug_info_item this module models: the
// starting line number and the raw ULEB128p1-encoded parameter name indices.
// The opcode-stream that follows (DBG_* bytes) is out of scope; only the
// fixed-shape prefix is decoded.
type DebugInfoItem struct {
	LineStart      uint32
	ParametersSize uint32
	ParameterNames []uint32
}

// ParseDebugInfoItem reads a DebugInfoItem's fixed prefix at r's current
// cursor. Each parameter name entry is ULEB128p1: 0 means NO_INDEX, any other
// value n means string index n-1.
func ParseDebugInfoItem(r *reader.Reader) (*DebugInfoItem, error) {
	lineStart, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	paramsSize, err := r.Uleb128()
	if err != nil {
		return nil, err
	}
	names := make([]uint32, paramsSize)
	for i := range names {
		v, err := r.Uleb128()
		if err != nil {
			return nil, err
		}
		names[i] = v
	}

	return &DebugInfoItem{LineStart: lineStart, ParametersSize: paramsSize, ParameterNames: names}, nil
}

// ParameterNameIndex decodes one ULEB128p1 parameter-name entry: (0, false)
// means NO_INDEX (absent), otherwise (value-1, true).
func ParameterNameIndex(raw uint32) (uint32, bool) {
	if raw == 0 {
		return 0, false
	}

	return raw - 1, true
}
