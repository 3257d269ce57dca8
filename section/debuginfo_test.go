package section_test

import (
	"testing"

	"github.com/arloliu/dex/reader"
	"github.com/arloliu/dex/section"
	"github.com/stretchr/testify/require"
)

func TestParseDebugInfoItem(t *testing.T) {
	data := []byte{
		0x01,       // line_start = 1
		0x02,       // parameters_size = 2
		0x00,       // parameter_names[0] = NO_INDEX
		0x05,       // parameter_names[1] = idx 4
	}
	r := reader.New(data)
	item, err := section.ParseDebugInfoItem(r)
	require.NoError(t, err)
	require.EqualValues(t, 1, item.LineStart)
	require.EqualValues(t, 2, item.ParametersSize)
	require.Len(t, item.ParameterNames, 2)

	_, ok := section.ParameterNameIndex(item.ParameterNames[0])
	require.False(t, ok)

	idx, ok := section.ParameterNameIndex(item.ParameterNames[1])
	require.True(t, ok)
	require.EqualValues(t, 4, idx)
}
